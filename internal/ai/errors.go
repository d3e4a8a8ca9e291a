package ai

import "fmt"

// UnavailableError indicates the oracle service could not be reached or
// failed outright. Callers may retry; this package never retries
// internally.
type UnavailableError struct {
	Op    string
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("oracle unavailable during %s: %v", e.Op, e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// ResponseError indicates the oracle answered but its output could not be
// parsed into the expected shape. For numeric scores the caller recovers
// locally by defaulting to 0, which is surfaced separately in telemetry
// so it is never mistaken for a genuine zero.
type ResponseError struct {
	Op    string
	Raw   string
	Cause error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid oracle response during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("invalid oracle response during %s", e.Op)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
