package errorsx

import (
	"errors"
)

// Wrap attaches a status code and reason to a cause in one call. If cause is
// nil, an opaque cause is created. The original cause stays reachable for
// errors.Is / errors.As via Unwrap().
func Wrap(cause error, statusCode int, reason string) *ErrorContext {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return NewBuilder(cause).
		WithStatusCode(statusCode).
		WithReason(reason).
		Build()
}

// Ensure converts any error to *ErrorContext.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *ErrorContext => returned as-is (same pointer)
//   - otherwise it becomes the cause of a fresh ErrorContext with no metadata
func Ensure(err error) *ErrorContext {
	if err == nil {
		return nil
	}

	var e *ErrorContext

	if errors.As(err, &e) {
		return e
	}

	return New(err)
}
