package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
)

// ErrInhibitUnsupported indicates sleep prevention is not available on this system.
var ErrInhibitUnsupported = errors.New("sleep inhibition unsupported")

// Inhibitor keeps the machine awake while a timer cycle runs by holding a
// child process of the platform inhibit tool.
type Inhibitor struct {
	name   string
	args   []string
	logger *slog.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewInhibitor returns an inhibitor for the current platform
func NewInhibitor(logger *slog.Logger) *Inhibitor {
	name, args := inhibitCommand()
	return newInhibitor(name, args, logger)
}

func newInhibitor(name string, args []string, logger *slog.Logger) *Inhibitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inhibitor{name: name, args: args, logger: logger}
}

// Begin starts the inhibit process. Calling it twice keeps the first process.
func (i *Inhibitor) Begin() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.cmd != nil {
		return nil
	}
	if i.name == "" {
		return ErrInhibitUnsupported
	}
	path, err := exec.LookPath(i.name)
	if err != nil {
		return fmt.Errorf("%w: %s not found", ErrInhibitUnsupported, i.name)
	}

	cmd := exec.Command(path, i.args...)
	startInGroup(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", i.name, err)
	}
	i.cmd = cmd
	go func() {
		_ = cmd.Wait()
	}()

	i.logger.Debug("sleep inhibited", "tool", i.name, "pid", cmd.Process.Pid)
	return nil
}

// End releases the inhibit process if one is held
func (i *Inhibitor) End() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.cmd == nil {
		return
	}
	if err := killGroup(i.cmd); err != nil {
		i.logger.Warn("release sleep inhibitor", "error", err)
	}
	i.cmd = nil
}

// Active reports whether an inhibit process is held
func (i *Inhibitor) Active() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.cmd != nil
}
