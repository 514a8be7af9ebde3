package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/balkashynov/tomato/internal/pomodoro"
)

// CommandRunner runs an external command
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Desktop posts a desktop notification using the platform tool
// (notify-send on linux, osascript on darwin)
type Desktop struct {
	runner  CommandRunner
	goos    string
	timeout time.Duration
	logger  *slog.Logger

	pending sync.WaitGroup
}

// NewDesktop creates a desktop notifier. A nil runner uses ExecRunner.
func NewDesktop(runner CommandRunner, logger *slog.Logger) *Desktop {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Desktop{
		runner:  runner,
		goos:    runtime.GOOS,
		timeout: 3 * time.Second,
		logger:  logger,
	}
}

func (d *Desktop) PhaseCompleted(done pomodoro.Completion) {
	title, body := Message(done)
	name, args, ok := d.command(title, body)
	if !ok {
		d.logger.Debug("desktop notifications unsupported", "os", d.goos)
		return
	}

	// The driver calls sinks on its loop; a slow notification daemon must
	// not hold up the next tick
	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.runner.Run(ctx, name, args...); err != nil {
			d.logger.Warn("desktop notification failed", "error", err)
		}
	}()
}

// Wait blocks until every notification in flight has been posted or timed out
func (d *Desktop) Wait() {
	d.pending.Wait()
}

func (d *Desktop) command(title, body string) (string, []string, bool) {
	switch d.goos {
	case "linux", "freebsd", "openbsd":
		return "notify-send", []string{"--app-name=tomato", title, body}, true
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q sound name \"default\"", body, title)
		return "osascript", []string{"-e", script}, true
	default:
		return "", nil, false
	}
}
