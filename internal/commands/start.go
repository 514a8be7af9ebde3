package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tomato/internal/config"
	"github.com/balkashynov/tomato/internal/db"
	"github.com/balkashynov/tomato/internal/driver"
	"github.com/balkashynov/tomato/internal/logging"
	"github.com/balkashynov/tomato/internal/notify"
	"github.com/balkashynov/tomato/internal/platform"
	"github.com/balkashynov/tomato/internal/pomodoro"
	"github.com/balkashynov/tomato/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a pomodoro cycle",
	Long: `Start a pomodoro cycle. Opens the interactive timer by default, use --no-ui
to run in the foreground and print phase changes instead.

Durations accept minutes ("25"), units ("25 min", "90 sec") or Go durations ("1m30s").

Examples:
  tomato start                      # 25m focus, 5m short break, 15m long break
  tomato start --focus 50 --short 10
  tomato start --sessions 3 --no-ui # Long break after every third session`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyStartFlags(cmd, cfg); err != nil {
			return err
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		return runStart(cmd.Context(), cfg, noUI, cmd.OutOrStdout())
	},
}

func init() {
	addStartFlags(startCmd)
}

func addStartFlags(cmd *cobra.Command) {
	cmd.Flags().String("focus", "", "Focus session length")
	cmd.Flags().String("short", "", "Short break length")
	cmd.Flags().String("long", "", "Long break length")
	cmd.Flags().Int("sessions", 0, "Focus sessions per long break")
	cmd.Flags().Bool("no-ui", false, "Run without the interactive timer")
	cmd.Flags().Bool("no-history", false, "Do not record completed phases")
	cmd.Flags().Bool("no-desktop", false, "Disable desktop notifications")
	cmd.Flags().Bool("no-bell", false, "Disable the terminal bell")
	cmd.Flags().Bool("no-keep-awake", false, "Allow the system to sleep during a cycle")
}

// applyStartFlags overrides config values with explicitly set flags
func applyStartFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("focus") {
		cfg.Focus, _ = flags.GetString("focus")
	}
	if flags.Changed("short") {
		cfg.ShortBreak, _ = flags.GetString("short")
	}
	if flags.Changed("long") {
		cfg.LongBreak, _ = flags.GetString("long")
	}
	if flags.Changed("sessions") {
		cfg.SessionsPerLongBreak, _ = flags.GetInt("sessions")
	}

	if off, _ := flags.GetBool("no-history"); off {
		cfg.History.Enabled = false
	}
	if off, _ := flags.GetBool("no-desktop"); off {
		cfg.Notifications.Desktop = false
	}
	if off, _ := flags.GetBool("no-bell"); off {
		cfg.Notifications.Bell = false
	}
	if off, _ := flags.GetBool("no-keep-awake"); off {
		cfg.KeepAwake = false
	}

	// Surface bad values before the timer starts
	_, err := cfg.ClockConfig()
	return err
}

// openLogger opens the configured log file. Headless runs fall back to
// stderr, the TUI owns the terminal so it falls back to discarding.
func openLogger(cfg *config.Config, headless bool) (*slog.Logger, func() error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, level)
	if err == nil {
		return logger, closeLog
	}

	fallback := io.Discard
	if headless {
		fallback = os.Stderr
	}
	fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	return logging.New(fallback, level), func() error { return nil }
}

func runStart(ctx context.Context, cfg *config.Config, headless bool, out io.Writer) error {
	clockCfg, err := cfg.ClockConfig()
	if err != nil {
		return err
	}
	clock, err := pomodoro.New(clockCfg)
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(cfg, headless)
	defer closeLog()

	historyEnabled := false
	if cfg.History.Enabled {
		if err := db.Initialize(cfg.History.Path); err != nil {
			logger.Warn("history disabled", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			defer db.Close()
			historyEnabled = true
		}
	}

	sinks, feed, desktop := buildSinks(cfg, clockCfg, logger, historyEnabled, headless, out)
	if desktop != nil {
		defer desktop.Wait()
	}

	var activity driver.Activity = driver.NopActivity{}
	if cfg.KeepAwake {
		activity = platform.NewInhibitor(logger)
	}

	d := driver.New(clock,
		driver.WithSink(sinks),
		driver.WithActivity(activity),
		driver.WithLogger(logger),
	)
	defer d.Close()

	logger.Info("cycle configured",
		"focus", clockCfg.Focus,
		"short_break", clockCfg.ShortBreak,
		"long_break", clockCfg.LongBreak,
		"sessions_per_long_break", clockCfg.SessionsPerLongBreak,
	)

	if headless {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runHeadless(ctx, d, out)
	}

	return tui.RunTimerTUI(d, d.Subscribe(16), feed, true)
}

// buildSinks assembles the completion sinks for a run. The TUI gets a feed
// instead of printed lines, and no bell since bubbletea owns the terminal.
func buildSinks(cfg *config.Config, clockCfg pomodoro.Config, logger *slog.Logger, history, headless bool, out io.Writer) (notify.Multi, *tui.Feed, *notify.Desktop) {
	sinks := notify.Multi{notify.Log{Logger: logger}}

	if history {
		sinks = append(sinks, notify.History{Config: clockCfg, Logger: logger})
	}

	var desktop *notify.Desktop
	if cfg.Notifications.Desktop {
		desktop = notify.NewDesktop(nil, logger)
		sinks = append(sinks, desktop)
	}

	if !headless {
		feed := tui.NewFeed(4)
		return append(sinks, feed), feed, desktop
	}

	if cfg.Notifications.Bell {
		sinks = append(sinks, notify.Bell{Out: out})
	}
	return append(sinks, printCompletions(out)), nil, desktop
}

// printCompletions prints the notification text for each natural completion
func printCompletions(out io.Writer) driver.NotificationSink {
	return driver.SinkFunc(func(done pomodoro.Completion) {
		title, body := notify.Message(done)
		fmt.Fprintf(out, "🔔 %s %s\n", title, body)
	})
}

// headlessDriver is the part of the driver used without the TUI
type headlessDriver interface {
	Start() error
	Stop() error
	State() pomodoro.State
	Subscribe(buffer int) <-chan pomodoro.State
}

// runHeadless starts a cycle and prints every phase or mode change until ctx
// is cancelled or the driver shuts down
func runHeadless(ctx context.Context, d headlessDriver, out io.Writer) error {
	updates := d.Subscribe(16)
	if err := d.Start(); err != nil {
		return err
	}

	var last pomodoro.State
	printed := false
	for {
		select {
		case <-ctx.Done():
			if err := d.Stop(); err != nil {
				return err
			}
			fmt.Fprintf(out, "⏹️  Stopped. %d focus session(s) completed\n", d.State().CompletedSessions)
			return nil

		case s, ok := <-updates:
			if !ok {
				return nil
			}
			if line, changed := describeTransition(last, s, printed); changed {
				fmt.Fprintln(out, line)
				printed = true
			}
			last = s
		}
	}
}

// describeTransition returns a line for s when it differs from prev in
// mode, phase or session. Plain countdown ticks are not reported.
func describeTransition(prev, s pomodoro.State, printed bool) (string, bool) {
	if printed && prev.Mode == s.Mode && prev.Phase == s.Phase && prev.CurrentSession == s.CurrentSession {
		return "", false
	}
	if s.Idle() {
		return "⏹️  Ready", true
	}
	return fmt.Sprintf("⏱️  %s (%s) · session %d", s.StatusText(), pomodoro.FormatRemaining(s.Remaining), s.CurrentSession), true
}
