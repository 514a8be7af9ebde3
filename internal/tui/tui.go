package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/tomato/internal/pomodoro"
)

// RunTimerTUI runs the timer TUI until the user quits. With autoStart the
// first focus session begins immediately.
func RunTimerTUI(ctrl Controller, updates <-chan pomodoro.State, feed *Feed, autoStart bool) error {
	model := NewTimerModel(ctrl, updates, feed, autoStart)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Show a summary after the TUI closes
	final := ctrl.State()
	if m, ok := finalModel.(TimerModel); ok && m.err != nil {
		fmt.Printf("❌ Error: %v\n", m.err)
	}
	fmt.Printf("🍅 %d focus session(s) completed\n", final.CompletedSessions)

	return nil
}
