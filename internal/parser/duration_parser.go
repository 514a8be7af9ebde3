package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxDuration = 24 * time.Hour

var relativeDurationRegex = regexp.MustCompile(`^(\d+)\s*(s|sec|secs|second|seconds|m|min|mins|minute|minutes|h|hr|hrs|hour|hours)$`)

// ParseDuration parses a phase length
// Supported formats:
// - Go durations (e.g., "25m", "1h30m", "90s")
// - bare numbers as minutes (e.g., "25")
// - X unit (e.g., "25 minutes", "1 hour", "30 sec")
func ParseDuration(input string) (time.Duration, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("empty duration")
	}

	// Bare number means minutes
	if minutes, err := strconv.Atoi(input); err == nil {
		return scale(minutes, time.Minute)
	}

	if d, err := parseUnitDuration(input); err == nil {
		return checkDuration(d)
	}

	if d, err := time.ParseDuration(input); err == nil {
		return checkDuration(d)
	}

	return 0, fmt.Errorf("invalid duration %q. Use: 25m, 1h30m, 90s, 25 or 25 minutes", input)
}

// parseUnitDuration parses "X unit" formats like "25 minutes"
func parseUnitDuration(input string) (time.Duration, error) {
	matches := relativeDurationRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid relative duration format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "s", "sec", "secs", "second", "seconds":
		return scale(amount, time.Second)
	case "m", "min", "mins", "minute", "minutes":
		return scale(amount, time.Minute)
	default:
		return scale(amount, time.Hour)
	}
}

// scale multiplies amount by unit, rejecting amounts past the upper bound
// before the multiplication can overflow
func scale(amount int, unit time.Duration) (time.Duration, error) {
	if amount > int(maxDuration/unit) {
		return 0, fmt.Errorf("duration must be at most %s, got %d x %s", maxDuration, amount, unit)
	}
	return checkDuration(time.Duration(amount) * unit)
}

// checkDuration keeps phase lengths within one second and one day
func checkDuration(d time.Duration) (time.Duration, error) {
	if d < time.Second {
		return 0, fmt.Errorf("duration must be at least 1s, got %s", d)
	}
	if d > maxDuration {
		return 0, fmt.Errorf("duration must be at most %s, got %s", maxDuration, d)
	}
	return d, nil
}

// FormatDuration formats a phase length compactly, e.g. "25m", "1h30m", "90s"
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	d = d.Round(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)

	if hours == 0 && minutes == 0 {
		return fmt.Sprintf("%ds", seconds)
	}

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if seconds > 0 {
		fmt.Fprintf(&b, "%ds", seconds)
	}
	return b.String()
}
