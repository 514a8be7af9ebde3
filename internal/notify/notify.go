// Package notify holds NotificationSink implementations for phase completions.
//
// Every sink swallows its own failures: the driver calls them synchronously
// and a broken notifier must never stall the timer.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/balkashynov/tomato/internal/db"
	"github.com/balkashynov/tomato/internal/driver"
	"github.com/balkashynov/tomato/internal/pomodoro"
)

// Multi fans a completion out to several sinks in order
type Multi []driver.NotificationSink

func (m Multi) PhaseCompleted(done pomodoro.Completion) {
	for _, sink := range m {
		if sink != nil {
			sink.PhaseCompleted(done)
		}
	}
}

// Log writes completions to a structured logger
type Log struct {
	Logger *slog.Logger
}

func (l Log) PhaseCompleted(done pomodoro.Completion) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("phase complete", "phase", done.Phase, "session", done.Session)
}

// Bell rings the terminal bell
type Bell struct {
	Out io.Writer
}

func (b Bell) PhaseCompleted(pomodoro.Completion) {
	if b.Out == nil {
		return
	}
	_, _ = fmt.Fprint(b.Out, "\a")
}

// History stores completions in the history database
type History struct {
	Config pomodoro.Config
	Logger *slog.Logger
	Now    func() time.Time
}

func (h History) PhaseCompleted(done pomodoro.Completion) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	if _, err := db.RecordCompletion(done, h.Config.Duration(done.Phase), now()); err != nil {
		logger := h.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("failed to record completion", "phase", done.Phase, "error", err)
	}
}

// Message returns the notification title and body for a completed phase
func Message(done pomodoro.Completion) (title, body string) {
	switch done.Phase {
	case pomodoro.Focus:
		return "Focus time is over!", fmt.Sprintf("Session %d complete, time for a break", done.Session)
	case pomodoro.ShortBreak:
		return "Short break is over!", "Rested up, ready for the next focus session"
	default:
		return "Long break is over!", "Rested up, ready to start a new cycle"
	}
}
