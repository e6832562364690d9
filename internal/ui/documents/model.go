// Package documents renders the project document library grouped by
// category.
package documents

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/sitetrack/internal/keys"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/theme"
)

// Model is the documents view Bubble Tea model.
type Model struct {
	documents []model.ProjectDocument
	cursor    int
	keys      *keys.KeyMap
	width     int
	height    int
}

// New creates a documents view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetSnapshot replaces the displayed documents, keeping the cursor in range.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.documents = snap.Documents
	if m.cursor >= len(m.documents) {
		m.cursor = len(m.documents) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the document under the cursor, or nil.
func (m Model) Selected() *model.ProjectDocument {
	if len(m.documents) == 0 || m.cursor >= len(m.documents) {
		return nil
	}
	d := m.documents[m.cursor]
	return &d
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
			if m.cursor < len(m.documents)-1 {
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

// View renders the document list, newest first.
func (m Model) View() string {
	if len(m.documents) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			theme.DimmedStyle.Render("No documents yet. Press n to register one."))
	}

	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Documents"), "")

	for i, d := range m.documents {
		size := d.FileSize
		if size == "" {
			size = "-"
		}
		line := fmt.Sprintf("%-28s %-12s %8s  %s",
			d.Name,
			theme.DimmedStyle.Render(d.Category),
			size,
			theme.DimmedStyle.Render(d.UploadDate))

		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(line))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(line))
		}
	}

	lines = append(lines, "",
		theme.HelpStyle.Render("n new · x delete"))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}
