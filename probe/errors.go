package probe

import (
	"fmt"
	"time"
)

// TimeoutError reports that a liveness check did not complete within its
// budget. The in-flight query is not cancelled; the probe simply stops
// waiting for it.
type TimeoutError struct {
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout of %dms exceeded", e.Budget.Milliseconds())
}

// ConnectError reports a failed document-store side connection attempt. Its
// message is the underlying driver message verbatim, which is considered
// safe diagnostic text and is surfaced in the status record as-is.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	if e.Err == nil {
		return "connection attempt failed"
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}
