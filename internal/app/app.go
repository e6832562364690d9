// Package app holds the root Bubble Tea model: view routing, the
// layout frame, and the glue between the UI views and the store.
package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	aiservice "github.com/nhle/sitetrack/internal/ai"
	"github.com/nhle/sitetrack/internal/credential"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/stats"
	"github.com/nhle/sitetrack/internal/store"
	"github.com/nhle/sitetrack/internal/ui"
	aiview "github.com/nhle/sitetrack/internal/ui/ai"
	"github.com/nhle/sitetrack/internal/ui/command"
	"github.com/nhle/sitetrack/internal/ui/contractors"
	"github.com/nhle/sitetrack/internal/ui/dashboard"
	"github.com/nhle/sitetrack/internal/ui/documents"
	"github.com/nhle/sitetrack/internal/ui/finance"
	"github.com/nhle/sitetrack/internal/ui/forms"
	helpview "github.com/nhle/sitetrack/internal/ui/help"
	"github.com/nhle/sitetrack/internal/ui/issues"
	"github.com/nhle/sitetrack/internal/ui/settings"
	"github.com/nhle/sitetrack/internal/ui/timeline"

	"github.com/nhle/sitetrack/internal/keys"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewTimeline
	ViewFinance
	ViewContractors
	ViewDocuments
	ViewIssues
	ViewSettings
	ViewAI
	ViewHelp
	ViewCommand
	ViewForm
)

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	keys         *keys.KeyMap
	assistant    *aiservice.Assistant

	snapshot *model.Snapshot
	summary  stats.Summary

	dashboardView   dashboard.Model
	timelineView    timeline.Model
	financeView     finance.Model
	contractorsView contractors.Model
	documentsView   documents.Model
	issuesView      issues.Model
	settingsView    settings.Model
	aiView          aiview.Model
	helpView        helpview.Model
	commandView     command.Model
	formView        forms.Model

	ready  bool
	notice *model.Notification
}

// New creates a new root application model with the given store and
// AI configuration.
func New(s store.Store, aiModel string, aiMaxTokens int) Model {
	k := keys.DefaultKeyMap()
	assistant := loadAssistant(aiModel, aiMaxTokens)

	return Model{
		currentView:     ViewDashboard,
		store:           s,
		keys:            k,
		assistant:       assistant,
		dashboardView:   dashboard.New(80, 24),
		timelineView:    timeline.New(k, 80, 24),
		financeView:     finance.New(k, 80, 24),
		contractorsView: contractors.New(k, 80, 24),
		documentsView:   documents.New(k, 80, 24),
		issuesView:      issues.New(k, 80, 24),
		settingsView:    settings.New(k, 80, 24),
		aiView:          aiview.New(assistant, k, 80, 24),
		helpView:        helpview.New(k, 80, 24),
		commandView:     command.New(80, 24),
	}
}

// loadAssistant builds the AI assistant from the environment variable
// or the system keyring. Returns nil when no key is available.
func loadAssistant(aiModel string, maxTokens int) *aiservice.Assistant {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		var err error
		apiKey, err = credential.Get(credential.APIKeyName)
		if err != nil || apiKey == "" {
			return nil
		}
	}
	return aiservice.New(apiKey, aiModel, maxTokens)
}

// Init loads the initial snapshot.
func (m Model) Init() tea.Cmd {
	return m.loadSnapshot()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.dashboardView.SetSize(w, h)
		m.timelineView.SetSize(w, h)
		m.financeView.SetSize(w, h)
		m.contractorsView.SetSize(w, h)
		m.documentsView.SetSize(w, h)
		m.issuesView.SetSize(w, h)
		m.settingsView.SetSize(w, h)
		m.aiView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		m.formView.SetSize(w, h)
		return m.updateActiveView(msg)

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.setNotice(model.NotifyError, "Load failed", msg.err.Error())
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.summary = stats.Compute(msg.snapshot)
		m.dashboardView.SetSnapshot(msg.snapshot)
		m.timelineView.SetSnapshot(msg.snapshot)
		m.financeView.SetSnapshot(msg.snapshot)
		m.contractorsView.SetSnapshot(msg.snapshot)
		m.documentsView.SetSnapshot(msg.snapshot)
		m.issuesView.SetSnapshot(msg.snapshot)
		m.settingsView.SetSnapshot(msg.snapshot)
		m.aiView.SetSnapshot(msg.snapshot)
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.setNotice(model.NotifyError, "Error", msg.err.Error())
		} else if msg.verb != "" {
			m.setNotice(model.NotifySuccess, "Saved", msg.verb)
		}
		return m, m.loadSnapshot()

	case photoAnalyzedMsg:
		if msg.err != nil {
			m.setNotice(model.NotifyWarning, "Analysis failed", msg.err.Error())
			return m, m.loadSnapshot()
		}
		return m, tea.Batch(
			m.writePhotoTag(msg.photoID, msg.tag),
			m.appendAILog(model.AILogImage, msg.analysis),
		)

	case exportDoneMsg:
		if msg.err != nil {
			m.setNotice(model.NotifyError, "Export failed", msg.err.Error())
		} else {
			m.setNotice(model.NotifySuccess, "Exported", "backup written to "+msg.path)
		}
		return m, nil

	case importDoneMsg:
		if msg.err != nil {
			m.setNotice(model.NotifyError, "Import failed", msg.err.Error())
			return m, nil
		}
		m.setNotice(model.NotifySuccess, "Imported", "backup restored from "+msg.path)
		return m, m.loadSnapshot()

	// --- forms ---

	case forms.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case forms.StepSavedMsg:
		m.currentView = m.previousView
		return m, m.saveStep(msg.Step, msg.Edit)

	case forms.FinanceSavedMsg:
		m.currentView = m.previousView
		return m, m.saveFinanceItem(msg.Item, msg.Edit)

	case forms.ContractorSavedMsg:
		m.currentView = m.previousView
		return m, m.saveContractor(msg.Contractor, msg.Edit)

	case forms.DocumentSavedMsg:
		m.currentView = m.previousView
		return m, m.saveDocument(msg.Document)

	case forms.IssueSavedMsg:
		m.currentView = m.previousView
		return m, m.saveIssue(msg.Issue, msg.Edit)

	case forms.PhotoSavedMsg:
		m.currentView = m.previousView
		return m, m.savePhoto(msg.Photo, msg.Analyze)

	case forms.ProjectSavedMsg:
		m.currentView = m.previousView
		return m, m.saveProject(msg.Info)

	case forms.ExportRequestedMsg:
		m.currentView = m.previousView
		return m, m.exportBackup(msg.Path)

	case forms.ImportRequestedMsg:
		m.currentView = m.previousView
		return m, m.importBackup(msg.Path)

	// --- settings actions ---

	case settings.ToggleDarkModeMsg:
		return m, m.toggleDarkMode()

	case settings.EditProjectMsg:
		if m.snapshot == nil {
			return m, nil
		}
		return m.openForm(forms.NewProjectForm(
			m.layout.ContentWidth(), m.layout.ContentHeight(), m.snapshot.Project))

	case settings.ExportBackupMsg:
		return m.openForm(forms.NewExportForm(
			m.layout.ContentWidth(), m.layout.ContentHeight(), defaultBackupPath()))

	case settings.ImportBackupMsg:
		return m.openForm(forms.NewImportForm(
			m.layout.ContentWidth(), m.layout.ContentHeight()))

	case settings.ClearAILogsMsg:
		return m, m.clearAILogs()

	// --- AI panel ---

	case aiview.AIPanelCloseMsg:
		m.aiView.Reset()
		m.currentView = m.previousView
		return m, nil

	case aiview.AILoggedMsg:
		return m, m.appendAILog(msg.Kind, msg.Content)

	case aiview.AIResponseMsg:
		var cmd tea.Cmd
		m.aiView, cmd = m.aiView.Update(msg)
		return m, cmd

	case command.CommandMsg:
		m.currentView = m.previousView
		return m.executeCommand(string(msg))

	case tea.KeyMsg:
		if handled, mdl, cmd := m.handleGlobalKey(msg); handled {
			return mdl, cmd
		}
	}

	return m.updateActiveView(msg)
}

// typing reports whether the active view owns the keyboard, in which
// case global single-letter shortcuts must not fire.
func (m Model) typing() bool {
	switch m.currentView {
	case ViewAI, ViewCommand, ViewForm:
		return true
	}
	return false
}

// handleGlobalKey processes application-wide shortcuts. It returns
// handled=false for keys the active view should see instead.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, m, tea.Quit
	}

	if m.currentView == ViewCommand {
		switch msg.String() {
		case "esc", ":":
			m.currentView = m.previousView
			return true, m, nil
		}
	}

	if m.typing() {
		return false, m, nil
	}
	m.notice = nil

	switch msg.String() {
	case "q":
		return true, m, tea.Quit

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return true, m, nil

	case ":":
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return true, m, m.commandView.Focus()

	case "a":
		m.previousView = m.currentView
		m.currentView = ViewAI
		return true, m, m.aiView.Focus()

	case "o":
		m.currentView = ViewDashboard
		return true, m, nil
	case "t":
		m.currentView = ViewTimeline
		return true, m, nil
	case "f":
		m.currentView = ViewFinance
		return true, m, nil
	case "c":
		m.currentView = ViewContractors
		return true, m, nil
	case "d":
		m.currentView = ViewDocuments
		return true, m, nil
	case "i":
		m.currentView = ViewIssues
		return true, m, nil
	case "s":
		if m.currentView == ViewSettings {
			return true, m, nil
		}
		m.currentView = ViewSettings
		return true, m, nil

	case "esc":
		if m.currentView != ViewDashboard {
			m.currentView = ViewDashboard
			return true, m, nil
		}
		return true, m, nil
	}

	return m.handleActionKey(msg)
}

// handleActionKey routes the record shortcuts (new, edit, delete,
// resolve) for the collection views.
func (m Model) handleActionKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()

	switch msg.String() {
	case "n":
		switch m.currentView {
		case ViewDashboard:
			mdl, cmd := m.openForm(forms.NewPhotoForm(w, h))
			return true, mdl, cmd
		case ViewTimeline:
			mdl, cmd := m.openForm(forms.NewStepForm(w, h, nil))
			return true, mdl, cmd
		case ViewFinance:
			mdl, cmd := m.openForm(forms.NewFinanceForm(w, h, nil))
			return true, mdl, cmd
		case ViewContractors:
			mdl, cmd := m.openForm(forms.NewContractorForm(w, h, nil))
			return true, mdl, cmd
		case ViewDocuments:
			mdl, cmd := m.openForm(forms.NewDocumentForm(w, h))
			return true, mdl, cmd
		case ViewIssues:
			mdl, cmd := m.openForm(forms.NewIssueForm(w, h, nil))
			return true, mdl, cmd
		}

	case "e":
		switch m.currentView {
		case ViewTimeline:
			if step := m.timelineView.Selected(); step != nil {
				mdl, cmd := m.openForm(forms.NewStepForm(w, h, step))
				return true, mdl, cmd
			}
		case ViewFinance:
			if item := m.financeView.Selected(); item != nil {
				mdl, cmd := m.openForm(forms.NewFinanceForm(w, h, item))
				return true, mdl, cmd
			}
		case ViewContractors:
			if c := m.contractorsView.Selected(); c != nil {
				mdl, cmd := m.openForm(forms.NewContractorForm(w, h, c))
				return true, mdl, cmd
			}
		case ViewIssues:
			if issue := m.issuesView.Selected(); issue != nil {
				mdl, cmd := m.openForm(forms.NewIssueForm(w, h, issue))
				return true, mdl, cmd
			}
		}

	case "x":
		switch m.currentView {
		case ViewTimeline:
			if step := m.timelineView.Selected(); step != nil {
				return true, m, m.deleteStep(step.ID)
			}
		case ViewFinance:
			if item := m.financeView.Selected(); item != nil {
				return true, m, m.deleteFinanceItem(item.ID)
			}
		case ViewContractors:
			if c := m.contractorsView.Selected(); c != nil {
				return true, m, m.deleteContractor(c.ID)
			}
		case ViewDocuments:
			if doc := m.documentsView.Selected(); doc != nil {
				return true, m, m.deleteDocument(doc.ID)
			}
		case ViewIssues:
			if issue := m.issuesView.Selected(); issue != nil {
				return true, m, m.deleteIssue(issue.ID)
			}
		}

	case "r":
		switch m.currentView {
		case ViewTimeline:
			if step := m.timelineView.Selected(); step != nil {
				return true, m, m.advanceStep(*step)
			}
		case ViewIssues:
			if issue := m.issuesView.Selected(); issue != nil {
				return true, m, m.resolveIssue(issue.ID)
			}
		}
	}

	return false, m, nil
}

// openForm switches to the form view with the given form.
func (m Model) openForm(form forms.Model) (tea.Model, tea.Cmd) {
	if m.currentView != ViewForm {
		m.previousView = m.currentView
	}
	m.currentView = ViewForm
	m.formView = form
	return m, m.formView.Init()
}

// executeCommand handles a command string from the command palette.
func (m Model) executeCommand(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "quit", "q":
		return m, tea.Quit
	case "overview", "dashboard":
		m.currentView = ViewDashboard
		return m, nil
	case "timeline":
		m.currentView = ViewTimeline
		return m, nil
	case "finance", "budget":
		m.currentView = ViewFinance
		return m, nil
	case "contractors":
		m.currentView = ViewContractors
		return m, nil
	case "documents":
		m.currentView = ViewDocuments
		return m, nil
	case "issues":
		m.currentView = ViewIssues
		return m, nil
	case "settings":
		m.currentView = ViewSettings
		return m, nil
	case "export", "backup":
		return m.openForm(forms.NewExportForm(
			m.layout.ContentWidth(), m.layout.ContentHeight(), defaultBackupPath()))
	case "import", "restore":
		return m.openForm(forms.NewImportForm(
			m.layout.ContentWidth(), m.layout.ContentHeight()))
	case "dark", "light", "theme":
		return m, m.toggleDarkMode()
	case "refresh":
		return m, m.loadSnapshot()
	default:
		m.setNotice(model.NotifyWarning, "Unknown command", cmd)
		return m, nil
	}
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewTimeline:
		m.timelineView, cmd = m.timelineView.Update(msg)
	case ViewFinance:
		m.financeView, cmd = m.financeView.Update(msg)
	case ViewContractors:
		m.contractorsView, cmd = m.contractorsView.Update(msg)
	case ViewDocuments:
		m.documentsView, cmd = m.documentsView.Update(msg)
	case ViewIssues:
		m.issuesView, cmd = m.issuesView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case ViewAI:
		m.aiView, cmd = m.aiView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewForm:
		m.formView, cmd = m.formView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := "SiteTrack"
	if m.snapshot != nil && m.snapshot.Project.Name != "" {
		title = "SiteTrack — " + m.snapshot.Project.Name
	}

	header := m.layout.RenderHeader(title, m.headerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTimeline:
		return m.timelineView.View()
	case ViewFinance:
		return m.financeView.View()
	case ViewContractors:
		return m.contractorsView.View()
	case ViewDocuments:
		return m.documentsView.View()
	case ViewIssues:
		return m.issuesView.View()
	case ViewSettings:
		return m.settingsView.View()
	case ViewAI:
		return m.aiView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewForm:
		return m.formView.View()
	default:
		return ""
	}
}

// headerStatus summarizes progress and budget in the header's right side.
func (m Model) headerStatus() string {
	if m.snapshot == nil {
		return "loading"
	}
	track := "on track"
	if !m.summary.OnTrack {
		track = "behind"
	}
	return fmt.Sprintf("%d%% done · %d%% spent · %s",
		m.summary.ProgressPercent, m.summary.SpentPercent, track)
}

// statusLine returns the status bar content: the latest notification
// when present, otherwise keyboard hints for the active view.
func (m Model) statusLine() string {
	if m.notice != nil {
		return fmt.Sprintf("%s: %s", m.notice.Title, m.notice.Message)
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewAI:
		return "enter send | ctrl+p forecast | esc close"
	case ViewForm:
		return "enter submit | esc cancel"
	case ViewSettings:
		return "e edit project | m theme | b export | l import | x clear AI journal | esc back"
	case ViewTimeline:
		return "n new | e edit | x delete | r advance | o overview | q quit"
	case ViewIssues:
		return "n new | e edit | x delete | r resolve | o overview | q quit"
	case ViewDocuments:
		return "n new | x delete | o overview | q quit"
	default:
		return "o t f c d i s views | n new | a AI | : command | ? help | q quit"
	}
}

// setNotice replaces the transient status bar notification.
func (m *Model) setNotice(kind, title, message string) {
	m.notice = model.NewNotification(kind, title, message)
}
