// Package contractors renders the contractor directory with ratings
// and engagement status.
package contractors

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/sitetrack/internal/keys"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/theme"
)

// Model is the contractors view Bubble Tea model.
type Model struct {
	contractors []model.Contractor
	cursor      int
	keys        *keys.KeyMap
	width       int
	height      int
}

// New creates a contractors view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetSnapshot replaces the displayed contractors, keeping the cursor in range.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.contractors = snap.Contractors
	if m.cursor >= len(m.contractors) {
		m.cursor = len(m.contractors) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the contractor under the cursor, or nil.
func (m Model) Selected() *model.Contractor {
	if len(m.contractors) == 0 || m.cursor >= len(m.contractors) {
		return nil
	}
	c := m.contractors[m.cursor]
	return &c
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
			if m.cursor < len(m.contractors)-1 {
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

// View renders the contractor list.
func (m Model) View() string {
	if len(m.contractors) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			theme.DimmedStyle.Render("No contractors yet. Press n to add one."))
	}

	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Contractors"), "")

	for i, c := range m.contractors {
		line := fmt.Sprintf("%-24s %-18s %s %s",
			c.Name, c.Specialty, stars(c.Rating),
			theme.ContractorStatusStyle(c.Status).Render(c.Status))

		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(line))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(line))
		}
	}

	if selected := m.Selected(); selected != nil {
		var details []string
		if selected.Phone != "" {
			details = append(details, selected.Phone)
		}
		if selected.Email != "" {
			details = append(details, selected.Email)
		}
		if len(details) > 0 {
			lines = append(lines, "", theme.DimmedStyle.Render(strings.Join(details, "  ·  ")))
		}
	}

	lines = append(lines, "",
		theme.HelpStyle.Render("n new · e edit · x delete"))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
