package tui

import "github.com/balkashynov/tomato/internal/pomodoro"

// Color constants for tomato TUI theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (titles, clock when idle)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Phase Colors
	ColorFocus      = "#EF4444" // Tomato red
	ColorShortBreak = "#22C55E" // Green
	ColorLongBreak  = "#A78BFA" // Bright purple

	// State Colors
	ColorError   = "#EF4444" // Operation errors
	ColorWarning = "#F59E0B" // Paused
)

// phaseColor returns the accent color for a phase
func phaseColor(p pomodoro.Phase) string {
	switch p {
	case pomodoro.ShortBreak:
		return ColorShortBreak
	case pomodoro.LongBreak:
		return ColorLongBreak
	default:
		return ColorFocus
	}
}
