// Package tui is the interactive console client: type a question, see the
// answer and its citations. It talks to the responder directly, no HTTP in
// between.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inquiry/internal/domain"
)

// AnswerPort is the TUI-facing subset of the responder.
type AnswerPort interface {
	Answer(ctx context.Context, question string) domain.Response
}

// Model is the Bubble Tea model for the console client.
type Model struct {
	responder AnswerPort
	input     textinput.Model
	viewport  viewport.Model
	status    string
	ready     bool
}

// New creates a new console model.
func New(responder AnswerPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about the Somnair device and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{responder: responder, input: ti, viewport: vp, status: "Ready. Type a question."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header + status + query box + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-ah)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				resp := m.responder.Answer(context.Background(), q)
				m.status = "Answered."
				if resp.Note != "" {
					m.status = "Answered (" + resp.Note + ")."
				}
				m.viewport.SetContent(renderResponse(q, resp))
				m.input.Reset()
				return m, nil
			}
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the console layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Somnair Inquiry Console")
	answer := answerBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + answer + "\n" + input + "\n" + status
}

var (
	answerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	citationStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func renderResponse(question string, resp domain.Response) string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("Q: " + question))
	b.WriteString("\n\n")
	b.WriteString(resp.Answer)
	if len(resp.Citations) > 0 {
		b.WriteString("\n\n")
		b.WriteString(citationStyle.Render(strings.Join(resp.Citations, "\n")))
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
