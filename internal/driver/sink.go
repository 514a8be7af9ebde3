package driver

import "github.com/balkashynov/tomato/internal/pomodoro"

// NotificationSink receives natural phase completions. It is called
// synchronously on the driver loop and must not call back into the driver.
type NotificationSink interface {
	PhaseCompleted(done pomodoro.Completion)
}

// SinkFunc adapts a plain function to NotificationSink
type SinkFunc func(done pomodoro.Completion)

func (f SinkFunc) PhaseCompleted(done pomodoro.Completion) { f(done) }

// Activity is held for as long as a cycle is in progress, e.g. to keep
// the machine from sleeping
type Activity interface {
	Begin() error
	End()
}

// NopActivity does nothing
type NopActivity struct{}

func (NopActivity) Begin() error { return nil }
func (NopActivity) End()         {}
