package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tomato/internal/db"
	"github.com/balkashynov/tomato/internal/models"
	"github.com/balkashynov/tomato/internal/parser"
	"github.com/balkashynov/tomato/internal/pomodoro"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus time for the current week",
	Long: `Show completed focus sessions and focus time per day for the current
calendar week (Monday to Sunday).

Example output:
  Day        Sessions   Focus
  ---------  --------  ------
  Mon               4    1h40m
  Tue               6    2h30m
  ...
  Total            10    4h10m`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := withHistoryDB(); err != nil {
			return err
		}
		defer db.Close()

		now := time.Now()
		weekStart := getWeekStart(now)
		records, err := db.GetRecordsInRange(weekStart, now)
		if err != nil {
			return fmt.Errorf("failed to get records: %w", err)
		}

		today, err := db.CountFocusSince(startOfDay(now))
		if err != nil {
			return fmt.Errorf("failed to count today's sessions: %w", err)
		}

		printStats(cmd.OutOrStdout(), summarizeWeek(records, weekStart), today)
		return nil
	},
}

// dayStats is the focus total for one day of the week
type dayStats struct {
	Day      time.Weekday
	Sessions int
	Focus    time.Duration
}

// weekStats holds the focus totals for Monday through Sunday
type weekStats struct {
	Start time.Time
	Days  [7]dayStats
}

func (w weekStats) totals() (int, time.Duration) {
	var sessions int
	var focus time.Duration
	for _, d := range w.Days {
		sessions += d.Sessions
		focus += d.Focus
	}
	return sessions, focus
}

// getWeekStart returns the start of the calendar week (Monday) for the given time
func getWeekStart(t time.Time) time.Time {
	weekday := t.Weekday()
	daysFromMonday := int(weekday - time.Monday)
	if weekday == time.Sunday {
		daysFromMonday = 6 // Sunday is 6 days from Monday
	}

	return startOfDay(t.AddDate(0, 0, -daysFromMonday))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// summarizeWeek groups focus records by weekday; breaks are ignored
func summarizeWeek(records []models.PhaseRecord, weekStart time.Time) weekStats {
	stats := weekStats{Start: weekStart}
	for i := range stats.Days {
		stats.Days[i].Day = time.Weekday((i + 1) % 7)
	}

	for _, record := range records {
		if record.Phase != pomodoro.Focus.String() {
			continue
		}
		// Convert to 0-6 with Monday=0
		index := (int(record.CompletedAt.In(weekStart.Location()).Weekday()) + 6) % 7
		stats.Days[index].Sessions++
		stats.Days[index].Focus += record.Duration()
	}

	return stats
}

func printStats(out io.Writer, stats weekStats, today int64) {
	sessions, focus := stats.totals()
	if sessions == 0 {
		fmt.Fprintln(out, "No focus sessions completed this week.")
		return
	}

	fmt.Fprintf(out, "%-9s  %8s  %8s\n", "Day", "Sessions", "Focus")
	fmt.Fprintf(out, "%s  %s  %s\n", strings.Repeat("-", 9), strings.Repeat("-", 8), strings.Repeat("-", 8))

	for _, day := range stats.Days {
		if day.Sessions == 0 {
			fmt.Fprintf(out, "%-9s  %8s  %8s\n", day.Day.String()[:3], "-", "-")
			continue
		}
		fmt.Fprintf(out, "%-9s  %8d  %8s\n", day.Day.String()[:3], day.Sessions, parser.FormatDuration(day.Focus))
	}

	fmt.Fprintf(out, "%s  %s  %s\n", strings.Repeat("-", 9), strings.Repeat("-", 8), strings.Repeat("-", 8))
	fmt.Fprintf(out, "%-9s  %8d  %8s\n", "Total", sessions, parser.FormatDuration(focus))

	fmt.Fprintf(out, "\n🍅 %d session(s) today\n", today)
	fmt.Fprintf(out, "Week of %s to %s\n",
		stats.Start.Format("Jan 2"),
		stats.Start.AddDate(0, 0, 6).Format("Jan 2, 2006"))
}
