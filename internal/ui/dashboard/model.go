// Package dashboard renders the project overview: headline figures,
// the timeline strip, budget burn, risk alerts, and the latest site
// photos.
package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/risk"
	"github.com/nhle/sitetrack/internal/stats"
	"github.com/nhle/sitetrack/internal/theme"
)

const recentPhotoCount = 5

// Model is the dashboard Bubble Tea model.
type Model struct {
	snapshot *model.Snapshot
	summary  stats.Summary
	alerts   []risk.Alert
	width    int
	height   int
}

// New creates a dashboard model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetSnapshot recomputes the derived figures for a fresh snapshot.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.snapshot = snap
	m.summary = stats.Compute(snap)
	m.alerts = risk.Evaluate(snap)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the dashboard.
func (m Model) View() string {
	if m.snapshot == nil {
		return theme.DimmedStyle.Render("Loading project data...")
	}

	sections := []string{
		m.renderProjectHeader(),
		m.renderStatCards(),
		m.renderTimelineStrip(),
		m.renderAlerts(),
		m.renderRecentPhotos(),
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderProjectHeader() string {
	p := m.snapshot.Project

	name := p.Name
	if name == "" {
		name = "Unnamed project"
	}

	line := theme.TitleStyle.Render(name)
	var details []string
	if p.Location != "" {
		details = append(details, p.Location)
	}
	if p.Owner != "" {
		details = append(details, "owner: "+p.Owner)
	}
	if p.StartDate != "" {
		details = append(details, "started "+p.StartDate)
	}
	if len(details) > 0 {
		line += "  " + theme.DimmedStyle.Render(strings.Join(details, " · "))
	}
	return line + "\n"
}

func (m Model) renderStatCards() string {
	s := m.summary

	onTrack := theme.StepStatusStyle(model.StepCompleted).Render("on track")
	if !s.OnTrack {
		onTrack = theme.FinanceStatusStyle(model.FinanceOverdue).Render("behind")
	}

	progress := theme.PanelStyle.Render(fmt.Sprintf(
		"Progress\n%d%%  (%d/%d steps)\n~%d days left  %s",
		s.ProgressPercent, s.CompletedSteps, s.TotalSteps, s.RemainingDays, onTrack))

	budget := theme.PanelStyle.Render(fmt.Sprintf(
		"Budget\n%s spent of %s  (%d%%)\n%s",
		stats.FormatCurrency(s.SpentBudget),
		stats.FormatCurrency(s.TotalBudget),
		s.SpentPercent,
		renderBar(s.SpentPercent, 24)))

	openIssues := 0
	for _, issue := range m.snapshot.Issues {
		if issue.Status != model.IssueResolved {
			openIssues++
		}
	}
	issues := theme.PanelStyle.Render(fmt.Sprintf(
		"Issues\n%d open\n%d total", openIssues, len(m.snapshot.Issues)))

	return lipgloss.JoinHorizontal(lipgloss.Top, progress, " ", budget, " ", issues) + "\n"
}

func (m Model) renderTimelineStrip() string {
	if len(m.snapshot.TimelineSteps) == 0 {
		return theme.DimmedStyle.Render("No timeline steps yet. Press t, then n to add one.") + "\n"
	}

	var parts []string
	for _, step := range m.snapshot.TimelineSteps {
		marker := "○"
		switch step.Status {
		case model.StepCompleted:
			marker = "●"
		case model.StepCurrent:
			marker = "◐"
		}
		parts = append(parts, theme.StepStatusStyle(step.Status).Render(marker+" "+step.Label))
	}

	return theme.TitleStyle.Render("Timeline") + "\n" +
		strings.Join(parts, theme.DimmedStyle.Render(" — ")) + "\n"
}

func (m Model) renderAlerts() string {
	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Risk Alerts"))
	for _, alert := range m.alerts {
		lines = append(lines,
			theme.SeverityStyle(alert.Severity).Render(alert.Severity)+
				" "+alert.Title+
				"  "+theme.DimmedStyle.Render(alert.Description))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderRecentPhotos() string {
	photos := m.snapshot.DailyPhotos
	if len(photos) == 0 {
		return theme.DimmedStyle.Render("No site photos yet. Press n to add one.")
	}
	if len(photos) > recentPhotoCount {
		photos = photos[:recentPhotoCount]
	}

	var lines []string
	lines = append(lines, theme.TitleStyle.Render("Latest Photos"))
	for _, photo := range photos {
		line := "• " + photo.Timestamp
		if photo.Phase != "" {
			line += "  " + photo.Phase
		}
		if photo.AITag != "" {
			line += "  " + theme.StepStatusStyle(model.StepCurrent).Render(photo.AITag)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderBar draws a fixed-width burn bar. The bar is clamped at 100%
// even when the underlying percentage is not.
func renderBar(percent, width int) string {
	clamped := percent
	if clamped > 100 {
		clamped = 100
	}
	if clamped < 0 {
		clamped = 0
	}

	filled := clamped * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := lipgloss.NewStyle().Foreground(theme.ColorGreen)
	if percent > 100 {
		style = style.Foreground(theme.ColorRed)
	} else if percent > 80 {
		style = style.Foreground(theme.ColorOrange)
	}
	return style.Render(bar)
}
