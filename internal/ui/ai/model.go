package ai

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	aiservice "github.com/nhle/sitetrack/internal/ai"
	"github.com/nhle/sitetrack/internal/keys"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/stats"
	"github.com/nhle/sitetrack/internal/theme"
)

// AIPanelCloseMsg signals the parent to close the AI panel.
type AIPanelCloseMsg struct{}

// AIResponseMsg carries the assistant's answer (or failure) for one
// request.
type AIResponseMsg struct {
	Kind string // model.AILogChat or model.AILogPrediction
	Text string
	Err  error
}

// AILoggedMsg asks the parent to append an entry to the AI journal.
type AILoggedMsg struct {
	Kind    string
	Content string
}

// displayMessage represents a message rendered in the conversation viewport.
type displayMessage struct {
	Role    string
	Content string
}

// Model is the AI panel Bubble Tea model providing the chat interface
// and the progress-prediction quick action.
type Model struct {
	assistant *aiservice.Assistant
	snapshot  *model.Snapshot
	input     textarea.Model
	viewport  viewport.Model
	messages  []displayMessage
	waiting   bool
	keys      *keys.KeyMap
	width     int
	height    int
	noAPIKey  bool
}

// New creates a new AI panel model. If assistant is nil (no API key),
// the panel displays a configuration prompt instead.
func New(
	assistant *aiservice.Assistant,
	k *keys.KeyMap,
	width, height int,
) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about your project..."
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.SetWidth(width - 4)
	ta.SetHeight(3)
	ta.CharLimit = 2000
	ta.Focus()

	vpHeight := height - 8 // space for input area + borders
	if vpHeight < 4 {
		vpHeight = 4
	}

	vp := viewport.New(width-4, vpHeight)
	vp.Style = lipgloss.NewStyle()

	return Model{
		assistant: assistant,
		input:     ta,
		viewport:  vp,
		messages:  make([]displayMessage, 0),
		keys:      k,
		width:     width,
		height:    height,
		noAPIKey:  assistant == nil,
	}
}

// Init returns the initial command for the AI panel.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// SetSnapshot updates the project state sent as chat context.
func (m *Model) SetSnapshot(snap *model.Snapshot) {
	m.snapshot = snap
}

// Update handles messages for the AI panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AIResponseMsg:
		return m.handleResponse(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmds []tea.Cmd

	var taCmd tea.Cmd
	m.input, taCmd = m.input.Update(msg)
	if taCmd != nil {
		cmds = append(cmds, taCmd)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input for the AI panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.waiting {
			return m, nil
		}
		return m, func() tea.Msg {
			return AIPanelCloseMsg{}
		}

	case "ctrl+p":
		if m.noAPIKey || m.waiting || m.snapshot == nil {
			return m, nil
		}
		m.messages = append(m.messages, displayMessage{
			Role:    "You",
			Content: "Predict the project completion from the current timeline and budget.",
		})
		m.waiting = true
		m.refreshViewport()
		return m, m.predictProgress()

	case "enter":
		if m.noAPIKey || m.waiting {
			return m, nil
		}

		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}

		m.input.Reset()
		m.messages = append(m.messages, displayMessage{
			Role:    "You",
			Content: text,
		})
		m.waiting = true
		m.refreshViewport()

		return m, m.sendMessage(text)
	}

	// Let textarea handle other keys
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResponse appends the assistant's answer and forwards it to the
// journal. Failures render as a system message instead of crashing the
// panel.
func (m Model) handleResponse(msg AIResponseMsg) (Model, tea.Cmd) {
	m.waiting = false

	if msg.Err != nil {
		m.messages = append(m.messages, displayMessage{
			Role:    "System",
			Content: "The assistant is unavailable right now. Check your API key and connection.",
		})
		m.refreshViewport()
		return m, nil
	}

	m.messages = append(m.messages, displayMessage{
		Role:    "Assistant",
		Content: msg.Text,
	})
	m.refreshViewport()

	kind := msg.Kind
	content := msg.Text
	return m, func() tea.Msg {
		return AILoggedMsg{Kind: kind, Content: content}
	}
}

// sendMessage returns a command that sends the user's question with
// the serialized project context.
func (m Model) sendMessage(text string) tea.Cmd {
	assistant := m.assistant
	projectContext := ""
	if m.snapshot != nil {
		projectContext = aiservice.BuildProjectContext(m.snapshot)
	}

	return func() tea.Msg {
		answer, err := assistant.Chat(context.Background(), text, projectContext)
		return AIResponseMsg{Kind: model.AILogChat, Text: answer, Err: err}
	}
}

// predictProgress returns a command that runs the completion forecast.
func (m Model) predictProgress() tea.Cmd {
	assistant := m.assistant
	steps := m.snapshot.TimelineSteps
	budget := m.snapshot.Project.Budget
	spent := stats.SpentBudget(m.snapshot.FinanceItems)

	return func() tea.Msg {
		answer, err := assistant.PredictProgress(context.Background(), steps, budget, spent)
		return AIResponseMsg{Kind: model.AILogPrediction, Text: answer, Err: err}
	}
}

// refreshViewport re-renders the conversation content and scrolls to bottom.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

// renderConversation builds the conversation display string.
func (m Model) renderConversation() string {
	if len(m.messages) == 0 && !m.noAPIKey {
		return lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("Ask me about your schedule, budget, or contractors. " +
				"Press ctrl+p for a completion forecast.")
	}

	var sections []string

	roleStyle := lipgloss.NewStyle().Bold(true)
	userStyle := roleStyle.Foreground(theme.ColorBlue)
	assistantStyle := roleStyle.Foreground(theme.ColorGreen)
	systemStyle := roleStyle.Foreground(theme.ColorRed)
	contentStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	for _, msg := range m.messages {
		var label string
		switch msg.Role {
		case "You":
			label = userStyle.Render("You:")
		case "Assistant":
			label = assistantStyle.Render("Assistant:")
		case "System":
			label = systemStyle.Render("System:")
		default:
			label = roleStyle.Render(msg.Role + ":")
		}

		sections = append(sections, label)
		sections = append(sections, contentStyle.Render(msg.Content))
		sections = append(sections, "")
	}

	if m.waiting {
		thinkingStyle := lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true)
		sections = append(sections, thinkingStyle.Render("..."))
	}

	return strings.Join(sections, "\n")
}

// View renders the AI panel.
func (m Model) View() string {
	if m.noAPIKey {
		return m.renderNoAPIKey()
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("AI Assistant")

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(
		strings.Repeat("─", min(m.width-6, 80)),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.viewport.View(),
		separator,
		m.input.View(),
	)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(content)
}

// renderNoAPIKey shows a message when the API key is not configured.
func (m Model) renderNoAPIKey() string {
	style := lipgloss.NewStyle().
		Width(m.width - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	msg := "AI Assistant requires an Anthropic API key.\n\n" +
		"To configure, store your API key in the system keyring:\n" +
		"  sitetrack credential set-api-key\n\n" +
		"Or set the ANTHROPIC_API_KEY environment variable.\n\n" +
		"Press Esc to go back."

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(style.Render(msg))
}

// SetSize updates the AI panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 4)

	vpHeight := height - 8
	if vpHeight < 4 {
		vpHeight = 4
	}
	m.viewport.Width = width - 4
	m.viewport.Height = vpHeight
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Reset clears the conversation.
func (m *Model) Reset() {
	m.messages = m.messages[:0]
	m.waiting = false
	m.input.Reset()
	m.refreshViewport()
}
