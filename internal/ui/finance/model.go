// Package finance renders the budget summary, the vendor cost
// breakdown, and the invoice list.
package finance

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/sitetrack/internal/keys"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/stats"
	"github.com/nhle/sitetrack/internal/theme"
)

// Model is the finance view Bubble Tea model.
type Model struct {
	items   []model.FinanceItem
	summary stats.Summary
	cursor  int
	keys    *keys.KeyMap
	width   int
	height  int
}

// New creates a finance view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetSnapshot replaces the displayed items and recomputes the summary.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.items = snap.FinanceItems
	m.summary = stats.Compute(snap)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the finance item under the cursor, or nil.
func (m Model) Selected() *model.FinanceItem {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the finance view.
func (m Model) View() string {
	var lines []string
	lines = append(lines, m.renderSummary())

	if allocation := m.renderVendors(); allocation != "" {
		lines = append(lines, allocation)
	}

	lines = append(lines, m.renderItems())
	lines = append(lines, "",
		theme.HelpStyle.Render("n new · e edit · x delete"))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderSummary() string {
	s := m.summary
	remaining := s.TotalBudget - s.SpentBudget

	spentStyle := lipgloss.NewStyle().Foreground(theme.ColorGreen)
	if s.SpentPercent > 100 {
		spentStyle = spentStyle.Foreground(theme.ColorRed)
	} else if s.SpentPercent > 80 {
		spentStyle = spentStyle.Foreground(theme.ColorOrange)
	}

	return theme.TitleStyle.Render("Budget") + "\n" +
		fmt.Sprintf("Total %s   Spent %s   Remaining %s",
			stats.FormatCurrency(s.TotalBudget),
			spentStyle.Render(fmt.Sprintf("%s (%d%%)",
				stats.FormatCurrency(s.SpentBudget), s.SpentPercent)),
			stats.FormatCurrency(remaining)) + "\n"
}

func (m Model) renderVendors() string {
	if len(m.summary.Vendors) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Top Vendors"))
	for _, share := range m.summary.Vendors {
		vendor := share.Vendor
		if vendor == "" {
			vendor = "(no vendor)"
		}
		lines = append(lines, fmt.Sprintf("%-20s %10s  %3d%%",
			vendor, stats.FormatCurrency(share.Amount), share.Percent))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderItems() string {
	if len(m.items) == 0 {
		return theme.DimmedStyle.Render("No invoices yet. Press n to record one.")
	}

	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Invoices"))

	for i, item := range m.items {
		line := fmt.Sprintf("%-10s %-24s %-16s %10s %s",
			item.Date, item.Name, item.Vendor,
			stats.FormatCurrency(item.Total),
			theme.FinanceStatusStyle(item.Status).Render(item.Status))

		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(line))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
