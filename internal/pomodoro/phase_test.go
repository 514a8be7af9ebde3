package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_StringRoundTrip(t *testing.T) {
	for _, p := range []Phase{Focus, ShortBreak, LongBreak} {
		parsed, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePhase("nap")
	assert.Error(t, err)
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59 * time.Second, "00:59"},
		{25 * time.Minute, "25:00"},
		{61*time.Minute + 5*time.Second, "1:01:05"},
		{1500 * time.Millisecond, "00:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRemaining(tt.in), "duration %s", tt.in)
	}
}

func TestState_Text(t *testing.T) {
	idle := State{}
	assert.Equal(t, "Ready", idle.StatusText())
	assert.Equal(t, "🍅 Ready", idle.Title())

	running := State{Mode: Running, Phase: Focus, Remaining: 90 * time.Second}
	assert.Equal(t, "Focus - running", running.StatusText())
	assert.Equal(t, "01:30 focus", running.Title())

	paused := State{Mode: Paused, Phase: LongBreak, Remaining: 5 * time.Minute}
	assert.Equal(t, "Long break - paused", paused.StatusText())
	assert.Equal(t, "05:00 break (paused)", paused.Title())
}

func TestState_Progress(t *testing.T) {
	assert.Zero(t, State{}.Progress())

	s := State{Mode: Running, Remaining: 15 * time.Second, PhaseDuration: 60 * time.Second}
	assert.InDelta(t, 0.75, s.Progress(), 1e-9)

	s = State{Mode: Running, Remaining: 0, PhaseDuration: 0}
	assert.Equal(t, 1.0, s.Progress())
}
