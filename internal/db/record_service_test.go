package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/tomato/internal/pomodoro"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Initialize(filepath.Join(t.TempDir(), "nested", "history.db")))
	t.Cleanup(func() {
		_ = Close()
	})
}

func TestRecordCompletion_RequiresInitialize(t *testing.T) {
	require.NoError(t, Close())

	_, err := RecordCompletion(pomodoro.Completion{Phase: pomodoro.Focus, Session: 1}, time.Minute, time.Now())
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = GetRecentRecords(5)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestRecordCompletion(t *testing.T) {
	setupDB(t)
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	record, err := RecordCompletion(pomodoro.Completion{Phase: pomodoro.Focus, Session: 3}, 25*time.Minute, at)
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "focus", record.Phase)
	assert.Equal(t, 3, record.Session)
	assert.Equal(t, 25*time.Minute, record.Duration())
}

func TestQueries(t *testing.T) {
	setupDB(t)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	entries := []struct {
		phase  pomodoro.Phase
		offset time.Duration
	}{
		{pomodoro.Focus, 0},
		{pomodoro.ShortBreak, 25 * time.Minute},
		{pomodoro.Focus, 30 * time.Minute},
		{pomodoro.LongBreak, 55 * time.Minute},
		{pomodoro.Focus, 26 * time.Hour},
	}
	for i, e := range entries {
		_, err := RecordCompletion(pomodoro.Completion{Phase: e.phase, Session: i + 1}, 5*time.Minute, base.Add(e.offset))
		require.NoError(t, err)
	}

	inRange, err := GetRecordsInRange(base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, inRange, 4)
	assert.Equal(t, "focus", inRange[0].Phase)
	assert.Equal(t, "long_break", inRange[3].Phase)

	recent, err := GetRecentRecords(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 5, recent[0].Session)
	assert.Equal(t, 4, recent[1].Session)

	all, err := GetRecentRecords(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	count, err := CountFocusSince(base.Add(time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
