// Package driver runs a pomodoro.Clock against real time.
//
// All clock access happens on a single loop goroutine. Control calls are
// marshalled onto it and ticks are only read from the currently armed
// ticker, so a paused or stopped driver never processes a tick.
package driver

import (
	"log/slog"
	"sync"
	"time"

	"github.com/balkashynov/tomato/internal/pomodoro"
)

// Option configures a Driver
type Option func(*Driver)

// WithSink sets the completion sink. Use notify.Multi to fan out.
func WithSink(sink NotificationSink) Option {
	return func(d *Driver) {
		if sink != nil {
			d.sink = sink
		}
	}
}

// WithActivity sets the activity held while a cycle is in progress
func WithActivity(activity Activity) Option {
	return func(d *Driver) {
		if activity != nil {
			d.activity = activity
		}
	}
}

// WithTickSource replaces the real time tick source
func WithTickSource(source TickSource) Option {
	return func(d *Driver) {
		if source != nil {
			d.source = source
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

type request struct {
	fn    func() error
	reply chan error
}

// Driver feeds ticks into a clock and reports natural completions
type Driver struct {
	clock    *pomodoro.Clock
	source   TickSource
	sink     NotificationSink
	activity Activity
	logger   *slog.Logger

	requests  chan request
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	// owned by the loop goroutine
	ticker      Ticker
	holding     bool
	subscribers []chan pomodoro.State
}

// New starts the driver loop for clock. Call Close to release it.
func New(clock *pomodoro.Clock, opts ...Option) *Driver {
	d := &Driver{
		clock:    clock,
		source:   RealTime{},
		sink:     SinkFunc(func(pomodoro.Completion) {}),
		activity: NopActivity{},
		logger:   slog.Default(),
		requests: make(chan request),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	go d.loop()
	return d
}

// Start begins a new cycle at Focus session 1. No-op unless idle.
func (d *Driver) Start() error {
	return d.do(func() error {
		if !d.clock.State().Idle() {
			return nil
		}
		ticker, err := d.arm()
		if err != nil {
			return &TickError{Op: "start", Err: err}
		}
		d.clock.Start()
		d.ticker = ticker

		if err := d.activity.Begin(); err != nil {
			d.logger.Warn("begin activity failed", "error", err)
		} else {
			d.holding = true
		}

		d.logger.Info("timer started", "focus", d.clock.Config().Focus)
		d.publish()
		return nil
	})
}

// Pause disarms the tick source and freezes the running phase
func (d *Driver) Pause() error {
	return d.do(func() error {
		if !d.clock.State().Running() {
			return nil
		}
		d.disarm()
		d.clock.Pause()

		d.logger.Info("timer paused", "remaining", d.clock.State().Remaining)
		d.publish()
		return nil
	})
}

// Resume re-arms the tick source and continues a paused phase
func (d *Driver) Resume() error {
	return d.do(func() error {
		if !d.clock.State().Paused() {
			return nil
		}
		ticker, err := d.arm()
		if err != nil {
			return &TickError{Op: "resume", Err: err}
		}
		d.clock.Resume()
		d.ticker = ticker

		d.logger.Info("timer resumed", "remaining", d.clock.State().Remaining)
		d.publish()
		return nil
	})
}

// Stop disarms the tick source and resets the clock to idle
func (d *Driver) Stop() error {
	return d.do(func() error {
		d.disarm()
		changed := d.clock.Stop()
		d.release()

		if changed {
			d.logger.Info("timer stopped", "completed_sessions", d.clock.State().CompletedSessions)
			d.publish()
		}
		return nil
	})
}

// Skip jumps to the next phase without notifying the sink. A skipped phase
// starts with a freshly armed ticker. No-op when idle.
func (d *Driver) Skip() error {
	return d.do(func() error {
		before := d.clock.State()
		if before.Idle() {
			return nil
		}
		ticker, err := d.arm()
		if err != nil {
			return &TickError{Op: "skip", Err: err}
		}
		d.disarm()
		d.clock.Skip()
		d.ticker = ticker

		after := d.clock.State()
		d.logger.Info("phase skipped", "from", before.Phase, "to", after.Phase, "session", after.CurrentSession)
		d.publish()
		return nil
	})
}

// State returns the current clock snapshot
func (d *Driver) State() pomodoro.State {
	var s pomodoro.State
	err := d.do(func() error {
		s = d.clock.State()
		return nil
	})
	if err != nil {
		// loop has exited, nothing else touches the clock
		return d.clock.State()
	}
	return s
}

// Subscribe returns a channel receiving a snapshot after every transition,
// starting with the current state. Slow subscribers miss intermediate
// updates rather than block the loop, but the newest snapshot always lands.
// The channel is closed by Close.
func (d *Driver) Subscribe(buffer int) <-chan pomodoro.State {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan pomodoro.State, buffer)
	err := d.do(func() error {
		d.subscribers = append(d.subscribers, ch)
		ch <- d.clock.State()
		return nil
	})
	if err != nil {
		close(ch)
	}
	return ch
}

// Close stops the loop, ends any held activity and closes subscriptions.
// The clock state is left as is.
func (d *Driver) Close() {
	d.closeOnce.Do(func() {
		close(d.quit)
	})
	<-d.done
}

func (d *Driver) do(fn func() error) error {
	req := request{fn: fn, reply: make(chan error, 1)}
	select {
	case d.requests <- req:
	case <-d.done:
		return ErrClosed
	}
	return <-req.reply
}

func (d *Driver) loop() {
	defer close(d.done)

	for {
		var tickC <-chan time.Time
		if d.ticker != nil {
			tickC = d.ticker.C()
		}

		select {
		case <-d.quit:
			d.shutdown()
			return
		case req := <-d.requests:
			req.reply <- req.fn()
		case <-tickC:
			d.tick()
		}
	}
}

func (d *Driver) tick() {
	if !d.clock.State().Running() {
		d.logger.Debug("discarding tick while not running")
		return
	}

	if done, ok := d.clock.Tick(); ok {
		d.logger.Info("phase completed", "phase", done.Phase, "session", done.Session)
		d.sink.PhaseCompleted(done)
	}
	d.publish()
}

func (d *Driver) arm() (Ticker, error) {
	return d.source.Arm(d.clock.Config().Tick)
}

func (d *Driver) disarm() {
	if d.ticker == nil {
		return
	}
	d.ticker.Stop()
	d.ticker = nil
}

func (d *Driver) release() {
	if !d.holding {
		return
	}
	d.activity.End()
	d.holding = false
}

func (d *Driver) publish() {
	s := d.clock.State()
	for _, ch := range d.subscribers {
		select {
		case ch <- s:
			continue
		default:
		}
		// Subscriber is behind: replace its oldest snapshot so the
		// newest one is never the one lost
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}

func (d *Driver) shutdown() {
	d.disarm()
	d.release()
	for _, ch := range d.subscribers {
		close(ch)
	}
	d.subscribers = nil
}
