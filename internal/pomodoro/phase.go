package pomodoro

import (
	"fmt"
	"time"
)

// Phase is one timed interval of the focus/break cycle
type Phase int

const (
	Focus Phase = iota
	ShortBreak
	LongBreak
)

// String returns the machine name used in logs and storage
func (p Phase) String() string {
	switch p {
	case Focus:
		return "focus"
	case ShortBreak:
		return "short_break"
	case LongBreak:
		return "long_break"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Title returns the human readable phase name
func (p Phase) Title() string {
	switch p {
	case Focus:
		return "Focus"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	default:
		return p.String()
	}
}

// IsBreak reports whether the phase is a short or long break
func (p Phase) IsBreak() bool {
	return p == ShortBreak || p == LongBreak
}

// ParsePhase converts a stored phase name back into a Phase
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "focus":
		return Focus, nil
	case "short_break":
		return ShortBreak, nil
	case "long_break":
		return LongBreak, nil
	}
	return Focus, fmt.Errorf("unknown phase %q", s)
}

// Mode is the run mode of the clock
type Mode int

const (
	Idle Mode = iota
	Running
	Paused
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is a read-only snapshot of the clock
type State struct {
	Mode              Mode
	Phase             Phase // meaningful only when not Idle
	Remaining         time.Duration
	PhaseDuration     time.Duration
	CurrentSession    int
	CompletedSessions int
}

// Idle reports whether no cycle is in progress
func (s State) Idle() bool { return s.Mode == Idle }

// Running reports whether the clock is counting down
func (s State) Running() bool { return s.Mode == Running }

// Paused reports whether the countdown is frozen
func (s State) Paused() bool { return s.Mode == Paused }

// Progress returns the elapsed fraction of the active phase in [0, 1]
func (s State) Progress() float64 {
	if s.Mode == Idle {
		return 0
	}
	if s.PhaseDuration <= 0 {
		return 1
	}
	progress := float64(s.PhaseDuration-s.Remaining) / float64(s.PhaseDuration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// StatusText describes the mode and phase, e.g. "Focus - running"
func (s State) StatusText() string {
	if s.Mode == Idle {
		return "Ready"
	}
	return fmt.Sprintf("%s - %s", s.Phase.Title(), s.Mode)
}

// Title is a compact one-line summary suitable for a status bar
func (s State) Title() string {
	switch s.Mode {
	case Running:
		return fmt.Sprintf("%s %s", FormatRemaining(s.Remaining), shortLabel(s.Phase))
	case Paused:
		return fmt.Sprintf("%s %s (paused)", FormatRemaining(s.Remaining), shortLabel(s.Phase))
	default:
		return "🍅 Ready"
	}
}

func shortLabel(p Phase) string {
	if p == Focus {
		return "focus"
	}
	return "break"
}

// FormatRemaining renders a duration as MM:SS, or H:MM:SS past an hour
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Completion reports a phase that ran out naturally
type Completion struct {
	Phase   Phase
	Session int // session number before the clock advanced
}
