package backlog

import "fmt"

// Error is a failed outbound call to the Backlog API. It carries the
// operation name and, when the request reached the backend, the HTTP
// status — enough context to diagnose after the fact.
type Error struct {
	// Op describes the attempted operation, e.g. "get project DEV".
	Op string
	// Status is the HTTP status code, or 0 when the request never
	// completed (transport failure).
	Status int
	// Message is the backend-supplied error message, if any.
	Message string
	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("backlog: %s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("backlog: %s: %s (status %d)", e.Op, e.Message, e.Status)
	default:
		return fmt.Sprintf("backlog: %s: unexpected status %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }
