// Package settings renders project metadata, appearance preferences,
// backup actions, and the AI journal.
package settings

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

// ToggleDarkModeMsg asks the app to flip the persisted theme preference.
type ToggleDarkModeMsg struct{}

// EditProjectMsg asks the app to open the project metadata form.
type EditProjectMsg struct{}

// ExportBackupMsg asks the app to open the export form.
type ExportBackupMsg struct{}

// ImportBackupMsg asks the app to open the import form.
type ImportBackupMsg struct{}

// ClearAILogsMsg asks the app to wipe the AI journal.
type ClearAILogsMsg struct{}

const journalPreview = 5

// Model is the settings view Bubble Tea model.
type Model struct {
	snapshot *model.Snapshot
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a settings view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetSnapshot replaces the displayed state.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.snapshot = snap
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles settings actions.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "m":
		return m, func() tea.Msg { return ToggleDarkModeMsg{} }
	case "e":
		return m, func() tea.Msg { return EditProjectMsg{} }
	case "b":
		return m, func() tea.Msg { return ExportBackupMsg{} }
	case "l":
		return m, func() tea.Msg { return ImportBackupMsg{} }
	case "x":
		return m, func() tea.Msg { return ClearAILogsMsg{} }
	}
	return m, nil
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the settings view.
func (m Model) View() string {
	if m.snapshot == nil {
		return theme.DimmedStyle.Render("Loading settings...")
	}

	sections := []string{
		m.renderProject(),
		m.renderAppearance(),
		m.renderBackup(),
		m.renderJournal(),
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderProject() string {
	p := m.snapshot.Project

	rows := []struct{ label, value string }{
		{"Name", p.Name},
		{"Location", p.Location},
		{"Owner", p.Owner},
		{"Start date", p.StartDate},
		{"Total budget", stats.FormatCurrency(p.Budget)},
	}

	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Project"))
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = theme.DimmedStyle.Render("not set")
		}
		lines = append(lines, fmt.Sprintf("%-22s %s", row.label, value))
	}
	lines = append(lines, theme.HelpStyle.Render("e edit project details"))
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderAppearance() string {
	mode := "light"
	if m.snapshot.DarkMode {
		mode = "dark"
	}
	return theme.TitleStyle.Render("Appearance") + "\n" +
		fmt.Sprintf("Theme: %s  %s", mode,
			theme.HelpStyle.Render("m toggle")) + "\n"
}

func (m Model) renderBackup() string {
	return theme.TitleStyle.Render("Backup") + "\n" +
		theme.HelpStyle.Render("b export to JSON · l import from JSON") + "\n"
}

func (m Model) renderJournal() string {
	logs := m.snapshot.AILogs

	var lines []string
	lines = append(lines, theme.TitleStyle.Render(
		fmt.Sprintf("AI Journal (%d entries)", len(logs))))

	if len(logs) == 0 {
		lines = append(lines, theme.DimmedStyle.Render("No AI activity recorded yet."))
		return strings.Join(lines, "\n")
	}

	shown := logs
	if len(shown) > journalPreview {
		shown = shown[:journalPreview]
	}
	for _, entry := range shown {
		content := entry.Content
		if len(content) > 80 {
			content = content[:77] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s  %-16s %s",
			theme.DimmedStyle.Render(entry.Time),
			entry.Type,
			content))
	}
	lines = append(lines, theme.HelpStyle.Render("x clear journal"))
	return strings.Join(lines, "\n")
}
