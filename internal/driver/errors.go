package driver

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by control calls after Close
var ErrClosed = errors.New("driver closed")

// TickError reports a failure to arm the tick source. The clock state is
// left exactly as it was before the failed operation.
type TickError struct {
	Op  string // "start", "resume", "skip"
	Err error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("%s: arm tick source: %v", e.Op, e.Err)
}

func (e *TickError) Unwrap() error {
	return e.Err
}
