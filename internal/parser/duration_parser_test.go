package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"25", 25 * time.Minute},
		{" 5 ", 5 * time.Minute},
		{"25m", 25 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"90s", 90 * time.Second},
		{"25 minutes", 25 * time.Minute},
		{"1 minute", time.Minute},
		{"30 sec", 30 * time.Second},
		{"2 Hours", 2 * time.Hour},
		{"15min", 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "0", "-5m", "500ms", "25 fortnights", "48h"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			assert.Error(t, err)
		})
	}
}

func TestParseDuration_RejectsOverflow(t *testing.T) {
	// The first two wrap int64 into the 1s..24h range if multiplied unchecked
	tests := []string{
		"307445734561825861",
		"5124095576030432 hours",
		"307445734561825861 min",
		"9223372036854775807 sec",
		"1441",
		"25 hours",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			d, err := ParseDuration(input)
			assert.Error(t, err)
			assert.Zero(t, d)
		})
	}
}

func TestParseDuration_UpperBound(t *testing.T) {
	d, err := ParseDuration("1440")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	d, err = ParseDuration("24 hours")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{25 * time.Minute, "25m"},
		{90 * time.Second, "1m30s"},
		{90 * time.Minute, "1h30m"},
		{2 * time.Hour, "2h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}
