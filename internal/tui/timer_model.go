package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tomato/internal/notify"
	"github.com/balkashynov/tomato/internal/pomodoro"
)

// Controller is the part of the driver the TUI needs
type Controller interface {
	Start() error
	Pause() error
	Resume() error
	Stop() error
	Skip() error
	State() pomodoro.State
}

// Feed is a NotificationSink that hands completions to the TUI without
// blocking the driver loop
type Feed struct {
	ch chan pomodoro.Completion
}

// NewFeed creates a feed buffering up to size completions
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 1
	}
	return &Feed{ch: make(chan pomodoro.Completion, size)}
}

// PhaseCompleted implements driver.NotificationSink
func (f *Feed) PhaseCompleted(done pomodoro.Completion) {
	select {
	case f.ch <- done:
	default:
	}
}

// TimerModel represents the TUI model for the pomodoro timer
type TimerModel struct {
	width  int
	height int

	ctrl    Controller
	updates <-chan pomodoro.State
	feed    *Feed

	state     pomodoro.State
	lastDone  *pomodoro.Completion
	err       error
	autoStart bool
	keys      keyMap
	help      help.Model
}

// stateMsg carries a snapshot published by the driver
type stateMsg pomodoro.State

// completedMsg carries a natural phase completion
type completedMsg pomodoro.Completion

// updatesClosedMsg is sent when the driver closed the subscription
type updatesClosedMsg struct{}

// controlErrMsg reports a failed control call
type controlErrMsg struct{ err error }

// NewTimerModel creates a new timer TUI model
func NewTimerModel(ctrl Controller, updates <-chan pomodoro.State, feed *Feed, autoStart bool) TimerModel {
	return TimerModel{
		ctrl:      ctrl,
		updates:   updates,
		feed:      feed,
		state:     ctrl.State(),
		autoStart: autoStart,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForState(m.updates), waitForCompletion(m.feed)}
	if m.autoStart {
		cmds = append(cmds, control(m.ctrl.Start))
	}
	return tea.Batch(cmds...)
}

func waitForState(updates <-chan pomodoro.State) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return stateMsg(s)
	}
}

func waitForCompletion(feed *Feed) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		return completedMsg(<-feed.ch)
	}
}

// control runs a driver call off the bubbletea loop; the driver loop may be
// busy delivering to sinks and must never wait on Update
func control(fn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return controlErrMsg{err: err}
		}
		return nil
	}
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = pomodoro.State(msg)
		return m, waitForState(m.updates)

	case completedMsg:
		done := pomodoro.Completion(msg)
		m.lastDone = &done
		return m, waitForCompletion(m.feed)

	case updatesClosedMsg:
		// Driver is gone, nothing left to control
		return m, tea.Quit

	case controlErrMsg:
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.err = nil
			return m, control(m.toggleAction())
		case key.Matches(msg, m.keys.Skip):
			m.err = nil
			return m, control(m.ctrl.Skip)
		case key.Matches(msg, m.keys.Stop):
			m.err = nil
			m.lastDone = nil
			return m, control(m.ctrl.Stop)
		}
	}

	return m, nil
}

// toggleAction picks start, pause or resume from the last known state
func (m TimerModel) toggleAction() func() error {
	switch m.state.Mode {
	case pomodoro.Running:
		return m.ctrl.Pause
	case pomodoro.Paused:
		return m.ctrl.Resume
	default:
		return m.ctrl.Start
	}
}

// State returns the last state the model rendered
func (m TimerModel) State() pomodoro.State {
	return m.state
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(m.help.View(m.keys))

	// Available height for content (total minus help bar and gap)
	contentHeight := m.height - lipgloss.Height(helpBar) - 1

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTimerPanel(m.width, contentHeight),
		helpBar,
	)
}

// renderTimerPanel renders the centered timer panel
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string
	s := m.state

	accent := ColorPrimaryText
	if !s.Idle() {
		accent = phaseColor(s.Phase)
	}

	// Phase header
	headerText := "🍅  TOMATO  🍅"
	if !s.Idle() {
		headerText = fmt.Sprintf("🍅  %s  🍅", strings.ToUpper(s.Phase.Title()))
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render(headerText))

	// Big clock display
	clockColor := accent
	if s.Paused() {
		clockColor = ColorWarning
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(clockColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, clockStyle.Render(renderBigClock(pomodoro.FormatRemaining(s.Remaining))))

	// Status and progress
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, statusStyle.Render(s.StatusText()))

	if !s.Idle() {
		components = append(components, statusStyle.Render(renderProgressBar(s.Progress(), min(width-8, 40), accent)))
	}

	if s.CurrentSession > 0 {
		sessionText := fmt.Sprintf("Session %d · %d completed", s.CurrentSession, s.CompletedSessions)
		components = append(components, statusStyle.Italic(true).Render(sessionText))
	} else if s.CompletedSessions > 0 {
		components = append(components, statusStyle.Italic(true).Render(fmt.Sprintf("%d completed", s.CompletedSessions)))
	}

	// Last completion toast
	if m.lastDone != nil {
		title, body := notify.Message(*m.lastDone)
		toastStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(phaseColor(m.lastDone.Phase))).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)
		toast := toastStyle.Render(title + "\n" + body)
		components = append(components, lipgloss.PlaceHorizontal(width, lipgloss.Center, toast))
	}

	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, errStyle.Render("Error: "+m.err.Error()))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderProgressBar draws the elapsed fraction of the phase
func renderProgressBar(progress float64, width int, color string) string {
	if width <= 0 {
		return ""
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// bigDigits is ASCII art for each clock glyph, five rows of five columns
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders a MM:SS or H:MM:SS string as ASCII art
func renderBigClock(timeStr string) string {
	var lines [5]strings.Builder

	for _, char := range timeStr {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := range art {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ") // Space between digits
		}
	}

	rows := make([]string, len(lines))
	for i := range lines {
		rows[i] = lines[i].String()
	}
	return strings.Join(rows, "\n")
}
