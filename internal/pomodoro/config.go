package pomodoro

import (
	"fmt"
	"time"
)

// Config holds the phase durations and the long break cadence.
// It is supplied once and never mutated by the clock.
type Config struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	// Tick is the amount one Tick call removes from the remaining time
	Tick time.Duration

	// SessionsPerLongBreak is how many focus sessions run before a long break
	SessionsPerLongBreak int
}

// DefaultConfig returns the classic 25/5/15 schedule with a long break every 4 sessions
func DefaultConfig() Config {
	return Config{
		Focus:                25 * time.Minute,
		ShortBreak:           5 * time.Minute,
		LongBreak:            15 * time.Minute,
		Tick:                 time.Second,
		SessionsPerLongBreak: 4,
	}
}

// ConfigError reports an invalid configuration field
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s must be positive, got %s", e.Field, e.Value)
}

// Validate rejects zero or negative durations and cadence
func (c Config) Validate() error {
	durations := []struct {
		field string
		value time.Duration
	}{
		{"focus", c.Focus},
		{"short_break", c.ShortBreak},
		{"long_break", c.LongBreak},
		{"tick", c.Tick},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return &ConfigError{Field: d.field, Value: d.value.String()}
		}
	}
	if c.SessionsPerLongBreak < 1 {
		return &ConfigError{Field: "sessions_per_long_break", Value: fmt.Sprint(c.SessionsPerLongBreak)}
	}
	return nil
}

// Duration returns the configured length of a phase
func (c Config) Duration(p Phase) time.Duration {
	switch p {
	case ShortBreak:
		return c.ShortBreak
	case LongBreak:
		return c.LongBreak
	default:
		return c.Focus
	}
}
