// Package issues renders the site issue tracker with priority and
// resolution status.
package issues

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/sitetrack/internal/keys"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/theme"
)

// Model is the issues view Bubble Tea model.
type Model struct {
	issues []model.Issue
	cursor int
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates an issues view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetSnapshot replaces the displayed issues, keeping the cursor in range.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.issues = snap.Issues
	if m.cursor >= len(m.issues) {
		m.cursor = len(m.issues) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the issue under the cursor, or nil.
func (m Model) Selected() *model.Issue {
	if len(m.issues) == 0 || m.cursor >= len(m.issues) {
		return nil
	}
	issue := m.issues[m.cursor]
	return &issue
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
			if m.cursor < len(m.issues)-1 {
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

// View renders the issue list, newest first.
func (m Model) View() string {
	if len(m.issues) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			theme.DimmedStyle.Render("No issues reported. Press n to file one."))
	}

	open := 0
	for _, issue := range m.issues {
		if issue.Status != model.IssueResolved {
			open++
		}
	}

	var lines []string
	lines = append(lines,
		theme.TitleStyle.Render("Issues")+"  "+
			theme.DimmedStyle.Render(fmt.Sprintf("%d open of %d", open, len(m.issues))),
		"")

	for i, issue := range m.issues {
		line := fmt.Sprintf("%s %-32s %s  %s",
			theme.IssuePriorityStyle(issue.Priority).Render(priorityMarker(issue.Priority)),
			issue.Title,
			theme.IssueStatusStyle(issue.Status).Render(issue.Status),
			theme.DimmedStyle.Render(issue.CreatedDate))

		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(line))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(line))
		}
	}

	if selected := m.Selected(); selected != nil {
		var details []string
		if selected.Description != "" {
			details = append(details, selected.Description)
		}
		if selected.ResolvedDate != "" {
			details = append(details, "resolved "+selected.ResolvedDate)
		}
		if len(details) > 0 {
			lines = append(lines, "", theme.DimmedStyle.Render(strings.Join(details, "  ·  ")))
		}
	}

	lines = append(lines, "",
		theme.HelpStyle.Render("n new · e edit · x delete · r resolve"))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func priorityMarker(priority string) string {
	switch priority {
	case model.IssuePriorityHigh:
		return "!!!"
	case model.IssuePriorityMedium:
		return " !!"
	default:
		return "  !"
	}
}
