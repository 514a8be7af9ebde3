package pomodoro

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig counts in whole seconds: focus=3, short=2, long=5, long break every 2
func testConfig() Config {
	return Config{
		Focus:                3 * time.Second,
		ShortBreak:           2 * time.Second,
		LongBreak:            5 * time.Second,
		Tick:                 time.Second,
		SessionsPerLongBreak: 2,
	}
}

func newTestClock(t *testing.T, cfg Config) *Clock {
	t.Helper()
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

// tickN ticks n times and returns every completion reported along the way
func tickN(c *Clock, n int) []Completion {
	var out []Completion
	for i := 0; i < n; i++ {
		if done, ok := c.Tick(); ok {
			out = append(out, done)
		}
	}
	return out
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero focus", func(c *Config) { c.Focus = 0 }, "focus"},
		{"negative short break", func(c *Config) { c.ShortBreak = -time.Second }, "short_break"},
		{"zero long break", func(c *Config) { c.LongBreak = 0 }, "long_break"},
		{"zero tick", func(c *Config) { c.Tick = 0 }, "tick"},
		{"zero cadence", func(c *Config) { c.SessionsPerLongBreak = 0 }, "sessions_per_long_break"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			c, err := New(cfg)
			require.Error(t, err)
			assert.Nil(t, c)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNew_StartsIdle(t *testing.T) {
	c := newTestClock(t, testConfig())
	s := c.State()

	assert.Equal(t, Idle, s.Mode)
	assert.Zero(t, s.Remaining)
	assert.Zero(t, s.CurrentSession)
	assert.Zero(t, s.CompletedSessions)
}

func TestStart(t *testing.T) {
	c := newTestClock(t, testConfig())

	require.True(t, c.Start())
	s := c.State()
	assert.Equal(t, Running, s.Mode)
	assert.Equal(t, Focus, s.Phase)
	assert.Equal(t, 3*time.Second, s.Remaining)
	assert.Equal(t, 1, s.CurrentSession)

	// Second start is a no-op
	tickN(c, 1)
	assert.False(t, c.Start())
	assert.Equal(t, 2*time.Second, c.State().Remaining)

	c.Pause()
	assert.False(t, c.Start())
	assert.Equal(t, Paused, c.State().Mode)
}

func TestFullCycleScenario(t *testing.T) {
	c := newTestClock(t, testConfig())
	c.Start()

	done := tickN(c, 3)
	require.Len(t, done, 1)
	assert.Equal(t, Completion{Phase: Focus, Session: 1}, done[0])
	s := c.State()
	assert.Equal(t, Running, s.Mode)
	assert.Equal(t, ShortBreak, s.Phase)
	assert.Equal(t, 2*time.Second, s.Remaining)
	assert.Equal(t, 1, s.CompletedSessions)

	done = tickN(c, 2)
	require.Len(t, done, 1)
	assert.Equal(t, Completion{Phase: ShortBreak, Session: 1}, done[0])
	s = c.State()
	assert.Equal(t, Focus, s.Phase)
	assert.Equal(t, 2, s.CurrentSession)
	assert.Equal(t, 3*time.Second, s.Remaining)

	done = tickN(c, 3)
	require.Len(t, done, 1)
	assert.Equal(t, Completion{Phase: Focus, Session: 2}, done[0])
	s = c.State()
	assert.Equal(t, LongBreak, s.Phase)
	assert.Equal(t, 5*time.Second, s.Remaining)
	assert.Equal(t, 2, s.CompletedSessions)

	done = tickN(c, 5)
	require.Len(t, done, 1)
	assert.Equal(t, Completion{Phase: LongBreak, Session: 2}, done[0])
	s = c.State()
	assert.Equal(t, Focus, s.Phase)
	assert.Equal(t, 3, s.CurrentSession)
}

func TestTick_RemainingMonotonicAndNonNegative(t *testing.T) {
	c := newTestClock(t, testConfig())
	c.Start()

	prev := c.State()
	for i := 0; i < 40; i++ {
		_, completed := c.Tick()
		s := c.State()
		assert.GreaterOrEqual(t, s.Remaining, time.Duration(0))
		if !completed {
			assert.Equal(t, prev.Phase, s.Phase)
			assert.Less(t, s.Remaining, prev.Remaining)
		}
		prev = s
	}
}

func TestTick_NoOpUnlessRunning(t *testing.T) {
	c := newTestClock(t, testConfig())

	_, ok := c.Tick()
	assert.False(t, ok)
	assert.Equal(t, Idle, c.State().Mode)

	c.Start()
	c.Pause()
	for i := 0; i < 10; i++ {
		_, ok = c.Tick()
		assert.False(t, ok)
	}
	assert.Equal(t, 3*time.Second, c.State().Remaining)
}

func TestPauseResume(t *testing.T) {
	c := newTestClock(t, testConfig())

	assert.False(t, c.Pause(), "pause while idle")
	assert.False(t, c.Resume(), "resume while idle")

	c.Start()
	tickN(c, 2)

	require.True(t, c.Pause())
	assert.Equal(t, Paused, c.State().Mode)
	assert.Equal(t, time.Second, c.State().Remaining)
	assert.False(t, c.Pause(), "double pause")

	require.True(t, c.Resume())
	assert.Equal(t, Running, c.State().Mode)
	assert.False(t, c.Resume(), "double resume")

	// Completion is the same as if never paused
	done, ok := c.Tick()
	require.True(t, ok)
	assert.Equal(t, Completion{Phase: Focus, Session: 1}, done)
}

func TestStop_KeepsCompletedSessions(t *testing.T) {
	c := newTestClock(t, testConfig())
	c.Start()
	tickN(c, 3)
	require.Equal(t, 1, c.State().CompletedSessions)

	assert.True(t, c.Stop())
	s := c.State()
	assert.Equal(t, Idle, s.Mode)
	assert.Zero(t, s.Remaining)
	assert.Zero(t, s.CurrentSession)
	assert.Equal(t, 1, s.CompletedSessions)

	assert.False(t, c.Stop(), "stop while idle")
}

func TestStopThenStart_ReproducesInitialSequence(t *testing.T) {
	c := newTestClock(t, testConfig())
	c.Start()
	tickN(c, 7)
	c.Stop()

	require.True(t, c.Start())
	s := c.State()
	assert.Equal(t, Running, s.Mode)
	assert.Equal(t, Focus, s.Phase)
	assert.Equal(t, 1, s.CurrentSession)
	assert.Equal(t, 3*time.Second, s.Remaining)
}

func TestSkip(t *testing.T) {
	c := newTestClock(t, testConfig())

	assert.False(t, c.Skip(), "skip while idle")

	c.Start()
	tickN(c, 1)
	require.True(t, c.Skip())
	s := c.State()
	assert.Equal(t, ShortBreak, s.Phase)
	assert.Equal(t, 2*time.Second, s.Remaining)
	assert.Equal(t, 1, s.CompletedSessions)

	// Skipping from paused advances and resumes running
	c.Pause()
	require.True(t, c.Skip())
	s = c.State()
	assert.Equal(t, Running, s.Mode)
	assert.Equal(t, Focus, s.Phase)
	assert.Equal(t, 2, s.CurrentSession)

	require.True(t, c.Skip())
	assert.Equal(t, LongBreak, c.State().Phase)
	assert.Equal(t, 2, c.State().CompletedSessions)
}

func TestLongBreakCadence(t *testing.T) {
	for _, every := range []int{1, 2, 3, 4} {
		cfg := testConfig()
		cfg.SessionsPerLongBreak = every
		c := newTestClock(t, cfg)
		c.Start()

		for session := 1; session <= 8; session++ {
			require.Equal(t, Focus, c.State().Phase)
			require.Equal(t, session, c.State().CurrentSession)
			c.Skip()

			want := ShortBreak
			if session%every == 0 {
				want = LongBreak
			}
			assert.Equal(t, want, c.State().Phase, "every=%d session=%d", every, session)
			c.Skip()
		}
	}
}

func TestCompletedSessions_OnlyGrowsLeavingFocus(t *testing.T) {
	c := newTestClock(t, testConfig())
	c.Start()
	c.Pause()
	c.Resume()
	assert.Zero(t, c.State().CompletedSessions)

	tickN(c, 3) // focus done
	assert.Equal(t, 1, c.State().CompletedSessions)

	tickN(c, 2) // short break done
	assert.Equal(t, 1, c.State().CompletedSessions)

	c.Skip() // focus skipped
	assert.Equal(t, 2, c.State().CompletedSessions)

	c.Stop()
	assert.Equal(t, 2, c.State().CompletedSessions)
}

func TestZeroLengthPhase_AdvancesOncePerTick(t *testing.T) {
	// Bypass validation to exercise the clamp path with a zero break
	cfg := testConfig()
	cfg.ShortBreak = 0
	c := &Clock{config: cfg}
	c.Start()

	tickN(c, 3)
	require.Equal(t, ShortBreak, c.State().Phase)
	assert.Zero(t, c.State().Remaining)

	done, ok := c.Tick()
	require.True(t, ok)
	assert.Equal(t, Completion{Phase: ShortBreak, Session: 1}, done)
	s := c.State()
	assert.Equal(t, Focus, s.Phase)
	assert.Equal(t, 2, s.CurrentSession)
	assert.Equal(t, 3*time.Second, s.Remaining)
}

func TestTick_UnevenUnitClampsToZero(t *testing.T) {
	cfg := testConfig()
	cfg.Focus = 2500 * time.Millisecond
	c := newTestClock(t, cfg)
	c.Start()

	assert.Empty(t, tickN(c, 2))
	assert.Equal(t, 500*time.Millisecond, c.State().Remaining)

	done, ok := c.Tick()
	require.True(t, ok)
	assert.Equal(t, Focus, done.Phase)
	assert.Equal(t, ShortBreak, c.State().Phase)
}
