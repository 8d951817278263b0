package errorsx

import (
	"fmt"
	"maps"
	"strings"

	"github.com/next-trace/scg-support/contract"
)

// ErrorContext wraps an underlying cause with optional metadata.
//
// Fields:
//   - statusCode: HTTP-style numeric status (transport-agnostic until encoded)
//   - reason:     human-readable explanation of the failure
//   - status:     short status label, distinct from reason
//   - requestID:  id of the originating request
//   - debug:      internal diagnostic detail, never shown to end users
//   - details:    arbitrary string key/value metadata
//   - id:         identifier of this error instance
//
// Every field except the cause is optional. Unset is distinct from set-to-empty;
// the carrier accessors report presence via their boolean.
type ErrorContext struct {
	cause      error
	statusCode *int
	reason     *string
	status     *string
	requestID  *string
	debug      *string
	id         *string
	details    map[string]string
}

// compile-time guarantees that *ErrorContext implements every carrier
var (
	_ contract.StatusCodeCarrier = (*ErrorContext)(nil)
	_ contract.RequestIDCarrier  = (*ErrorContext)(nil)
	_ contract.ReasonCarrier     = (*ErrorContext)(nil)
	_ contract.DebugCarrier      = (*ErrorContext)(nil)
	_ contract.StatusCarrier     = (*ErrorContext)(nil)
	_ contract.DetailsCarrier    = (*ErrorContext)(nil)
	_ contract.IDCarrier         = (*ErrorContext)(nil)
)

// New wraps cause in an ErrorContext with all optional fields unset.
// It always succeeds; use NewBuilder to attach metadata.
func New(cause error) *ErrorContext {
	return &ErrorContext{cause: cause}
}

// ------ standard error interface

// Error renders "[<status> ][(<code>) ][<reason>: ]<cause message>".
// Absent fields and their delimiters are omitted entirely. The format is
// stable; downstream log tooling may parse it.
func (e *ErrorContext) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	if e.status != nil {
		b.WriteString(*e.status)
		b.WriteByte(' ')
	}

	if e.statusCode != nil {
		fmt.Fprintf(&b, "(%d) ", *e.statusCode)
	}

	if e.reason != nil {
		b.WriteString(*e.reason)
		b.WriteString(": ")
	}

	b.WriteString(e.cause.Error())

	return b.String()
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *ErrorContext) Unwrap() error { return e.cause }

// ------ carrier accessors

func (e *ErrorContext) StatusCode() (int, bool) { return deref(e.statusCode) }

func (e *ErrorContext) RequestID() (string, bool) { return deref(e.requestID) }

func (e *ErrorContext) Reason() (string, bool) { return deref(e.reason) }

func (e *ErrorContext) Debug() (string, bool) { return deref(e.debug) }

func (e *ErrorContext) Status() (string, bool) { return deref(e.status) }

func (e *ErrorContext) ID() (string, bool) { return deref(e.id) }

// Details returns a defensive copy; NEVER the internal map.
func (e *ErrorContext) Details() (map[string]string, bool) {
	if e.details == nil {
		return nil, false
	}

	return maps.Clone(e.details), true
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}

	return *p, true
}
