package driver

import (
	"fmt"
	"time"
)

// Ticker is an armed tick source. Stop must release it; after Stop no
// further value is read from C by the driver.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickSource arms repeating tickers
type TickSource interface {
	Arm(interval time.Duration) (Ticker, error)
}

// RealTime arms tickers backed by the runtime timer
type RealTime struct{}

// Arm starts a time.Ticker at the given interval
func (RealTime) Arm(interval time.Duration) (Ticker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("non-positive tick interval %s", interval)
	}
	return &realTicker{t: time.NewTicker(interval)}, nil
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }
