// Package pomodoro implements the focus/break phase state machine.
//
// The Clock has no notion of wall-clock time. It only moves forward when
// its owner calls Tick, and every control operation is a total function:
// calls that make no sense in the current mode are silent no-ops.
package pomodoro

import "time"

// Clock tracks the active phase, its remaining time and the session counters.
// It is not safe for concurrent use; a single owner drives it.
type Clock struct {
	config Config

	mode              Mode
	phase             Phase
	remaining         time.Duration
	currentSession    int
	completedSessions int
}

// New creates an idle clock after validating the configuration
func New(config Config) (*Clock, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Clock{config: config}, nil
}

// Config returns the configuration the clock was built with
func (c *Clock) Config() Config {
	return c.config
}

// State returns a snapshot of the current state
func (c *Clock) State() State {
	s := State{
		Mode:              c.mode,
		Phase:             c.phase,
		Remaining:         c.remaining,
		CurrentSession:    c.currentSession,
		CompletedSessions: c.completedSessions,
	}
	if c.mode != Idle {
		s.PhaseDuration = c.config.Duration(c.phase)
	}
	return s
}

// Start begins session 1 in Focus. Only valid when idle.
func (c *Clock) Start() bool {
	if c.mode != Idle {
		return false
	}
	c.currentSession = 1
	c.enter(Focus)
	return true
}

// Pause freezes a running phase without touching the remaining time
func (c *Clock) Pause() bool {
	if c.mode != Running {
		return false
	}
	c.mode = Paused
	return true
}

// Resume continues a paused phase
func (c *Clock) Resume() bool {
	if c.mode != Paused {
		return false
	}
	c.mode = Running
	return true
}

// Stop returns to idle from any mode. The completed session count is a
// lifetime counter and survives.
func (c *Clock) Stop() bool {
	changed := c.mode != Idle
	c.mode = Idle
	c.phase = Focus
	c.remaining = 0
	c.currentSession = 0
	return changed
}

// Skip advances to the next phase immediately without reporting a completion
func (c *Clock) Skip() bool {
	if c.mode == Idle {
		return false
	}
	c.advance()
	return true
}

// Tick removes one unit from a running phase. When the phase runs out it
// advances exactly once and reports what completed.
func (c *Clock) Tick() (Completion, bool) {
	if c.mode != Running {
		return Completion{}, false
	}

	c.remaining -= c.config.Tick
	if c.remaining > 0 {
		return Completion{}, false
	}
	c.remaining = 0

	done := Completion{Phase: c.phase, Session: c.currentSession}
	c.advance()
	return done, true
}

// advance moves from the current phase to the next one and starts it running
func (c *Clock) advance() {
	switch c.phase {
	case Focus:
		c.completedSessions++
		if c.currentSession%c.config.SessionsPerLongBreak == 0 {
			c.enter(LongBreak)
		} else {
			c.enter(ShortBreak)
		}
	default:
		c.currentSession++
		c.enter(Focus)
	}
}

func (c *Clock) enter(p Phase) {
	c.phase = p
	c.remaining = c.config.Duration(p)
	c.mode = Running
}
