package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tomato/internal/db"
	"github.com/balkashynov/tomato/internal/models"
	"github.com/balkashynov/tomato/internal/parser"
	"github.com/balkashynov/tomato/internal/pomodoro"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"log"},
	Short:   "List completed phases",
	Long:    "List the most recently completed focus sessions and breaks, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := withHistoryDB(); err != nil {
			return err
		}
		defer db.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := db.GetRecentRecords(limit)
		if err != nil {
			return fmt.Errorf("fetch history: %w", err)
		}

		printHistory(cmd.OutOrStdout(), records)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of records to show (0 for all)")
}

// withHistoryDB opens the history database named in the config
func withHistoryDB() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return db.Initialize(cfg.History.Path)
}

func printHistory(out io.Writer, records []models.PhaseRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No completed phases yet. Use 'tomato start' to begin your first session.")
		return
	}

	// Print table header
	fmt.Fprintf(out, "%-17s %-12s %-8s %s\n", "COMPLETED", "PHASE", "SESSION", "LENGTH")
	fmt.Fprintln(out, strings.Repeat("-", 48))

	for _, record := range records {
		phase := record.Phase
		if p, err := pomodoro.ParsePhase(record.Phase); err == nil {
			phase = p.Title()
		}

		fmt.Fprintf(out, "%-17s %-12s %-8d %s\n",
			record.CompletedAt.Local().Format("2006-01-02 15:04"),
			phase,
			record.Session,
			parser.FormatDuration(record.Duration()))
	}
}
