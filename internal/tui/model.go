// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/verte-zerg/typetheme/internal/model"
	"github.com/verte-zerg/typetheme/internal/report"
	"github.com/verte-zerg/typetheme/internal/session"
)

// resetDueMsg fires once the post-submit delay for a round has passed.
type resetDueMsg struct {
	id uuid.UUID
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	ctrl       *session.Controller
	resetDelay time.Duration
	input      textinput.Model

	width  int
	height int

	acknowledging bool
	ackRound      uuid.UUID
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	overflowStyle    = incorrectStyle.Copy().Strikethrough(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Copy().Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	activeTabStyle   = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	submitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#141414")).
			Background(lipgloss.Color("#C89A3A")).
			Padding(0, 2)
	submitDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E6E6E")).
				Background(lipgloss.Color("#2A2A2A")).
				Padding(0, 2)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// NewModel constructs a typing TUI model around a session controller.
func NewModel(ctrl *session.Controller, resetDelay time.Duration) *Model {
	if resetDelay <= 0 {
		resetDelay = model.DefaultResetDelay
	}
	in := textinput.New()
	in.Placeholder = "Start typing here..."
	in.Prompt = "> "
	in.Focus()
	return &Model{
		ctrl:       ctrl,
		resetDelay: resetDelay,
		input:      in,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.contentWidth()-len(m.input.Prompt)-1, 1)
		return m, nil
	case resetDueMsg:
		state := m.ctrl.State()
		if state.ID == msg.id && state.Completed {
			m.acknowledging = true
			m.ackRound = msg.id
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.acknowledging {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
			m.acknowledge()
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.selectTheme(1)
		return m, nil
	case tea.KeyShiftTab:
		m.selectTheme(-1)
		return m, nil
	case tea.KeyEnter:
		return m, m.submit()
	}
	if m.ctrl.State().Completed {
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.ctrl.Input(value)
	}
	return m, cmd
}

func (m *Model) selectTheme(step int) {
	state := m.ctrl.State()
	next := m.ctrl.Pool().Next(state.Theme, step)
	m.ctrl.SelectTheme(next)
	m.resetInput()
}

func (m *Model) submit() tea.Cmd {
	if !m.ctrl.CanSubmit() {
		return nil
	}
	if _, err := m.ctrl.Submit(); err != nil {
		logErrf("failed to submit: %v\n", err)
		return nil
	}
	m.input.Blur()
	id := m.ctrl.State().ID
	return tea.Tick(m.resetDelay, func(time.Time) tea.Msg {
		return resetDueMsg{id: id}
	})
}

func (m *Model) acknowledge() {
	m.acknowledging = false
	if m.ctrl.ResetIfCurrent(m.ackRound) {
		m.resetInput()
	}
	m.ackRound = uuid.Nil
}

func (m *Model) resetInput() {
	m.input.Reset()
	m.input.Focus()
}

// View implements tea.Model.
func (m *Model) View() string {
	state := m.ctrl.State()
	if state.Sample == "" {
		return ""
	}
	if m.acknowledging {
		return m.renderModal(state)
	}
	width := m.contentWidth()
	sections := []string{
		titleStyle.Render("Interactive Typing Game"),
		m.renderTabs(state.Theme),
		labelStyle.Render("Text:"),
		m.renderSample(state, width),
		m.input.View(),
		m.renderResults(state),
		m.renderSubmit(state),
	}
	content := lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n\n"))
	footer := footerStyle.Render(m.footerText(state))
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	return max(int(float64(m.width)*0.70), 1)
}

func (m *Model) renderTabs(active model.Theme) string {
	themes := m.ctrl.Pool().Themes()
	tabs := make([]string, 0, len(themes))
	for _, theme := range themes {
		style := inactiveTabStyle
		if theme == active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(titleCase(string(theme))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderSample(state session.State, width int) string {
	target := []rune(state.Sample)
	typed := []rune(state.Input)
	cursorIndex := -1
	if !state.Completed && len(typed) < len(target) {
		cursorIndex = len(typed)
	}
	return wrapStyledRunes(buildStyledRunes(target, typed, cursorIndex), width)
}

func (m *Model) renderResults(state session.State) string {
	r := state.Result
	feedback := ""
	if state.HasResult {
		feedback = r.Feedback().String()
	}
	lines := []string{
		labelStyle.Render("Accuracy: ") + valueStyle.Render(fmt.Sprintf("%.2f%%", r.Accuracy)),
		labelStyle.Render("Words Per Minute (WPM): ") + valueStyle.Render(fmt.Sprintf("%.2f", r.WPM)),
		labelStyle.Render("Time Taken: ") + valueStyle.Render(fmt.Sprintf("%.2f seconds", r.ElapsedSeconds)),
		labelStyle.Render("Feedback: ") + valueStyle.Render(feedback),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSubmit(state session.State) string {
	if state.CanSubmit() {
		return submitStyle.Render("Submit")
	}
	return submitDisabledStyle.Render("Submit")
}

func (m *Model) renderModal(state session.State) string {
	lines := report.ResultLines(state.Result)
	lines = append(lines, "", footerStyle.Render("enter: continue"))
	box := modalStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) footerText(state session.State) string {
	segments := []string{"tab: theme", "enter: submit", "esc: quit"}
	switch {
	case state.Completed:
		segments = append([]string{"Round complete"}, "esc: quit")
	case state.Running:
		segments = append([]string{fmt.Sprintf("%d/%d chars", len([]rune(state.Input)), len([]rune(state.Sample)))}, segments...)
	}
	return strings.Join(segments, "  ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
