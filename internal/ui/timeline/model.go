// Package timeline renders the construction schedule as a selectable
// list of steps with their status, progress, and contractor details.
package timeline

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/sitetrack/internal/keys"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/theme"
)

// Model is the timeline view Bubble Tea model.
type Model struct {
	steps  []model.TimelineStep
	cursor int
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a timeline view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetSnapshot replaces the displayed steps, keeping the cursor in range.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.steps = snap.TimelineSteps
	if m.cursor >= len(m.steps) {
		m.cursor = len(m.steps) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the step under the cursor, or nil.
func (m Model) Selected() *model.TimelineStep {
	if len(m.steps) == 0 || m.cursor >= len(m.steps) {
		return nil
	}
	step := m.steps[m.cursor]
	return &step
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
			if m.cursor < len(m.steps)-1 {
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

// View renders the timeline.
func (m Model) View() string {
	if len(m.steps) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			theme.DimmedStyle.Render("No timeline steps yet. Press n to add the first phase."))
	}

	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Construction Timeline"), "")

	for i, step := range m.steps {
		marker := "○"
		switch step.Status {
		case model.StepCompleted:
			marker = "●"
		case model.StepCurrent:
			marker = "◐"
		}

		line := fmt.Sprintf("%s %-24s %s", marker, step.Label,
			theme.StepStatusStyle(step.Status).Render(step.Status))
		if step.Status == model.StepCurrent {
			line += fmt.Sprintf(" %d%%", step.Progress)
		}
		if step.Date != "" {
			line += "  " + theme.DimmedStyle.Render(step.Date)
		}

		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(line))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(line))
		}
	}

	if selected := m.Selected(); selected != nil {
		var details []string
		if selected.Contractor != "" {
			details = append(details, "Contractor: "+selected.Contractor)
		}
		if selected.Estimate != "" {
			details = append(details, "Estimate: "+selected.Estimate)
		}
		if len(details) > 0 {
			lines = append(lines, "", theme.DimmedStyle.Render(strings.Join(details, "  ·  ")))
		}
	}

	lines = append(lines, "",
		theme.HelpStyle.Render("n new · e edit · x delete · r advance status"))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}
