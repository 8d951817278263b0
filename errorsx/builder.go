package errorsx

import "maps"

// Builder accumulates optional metadata before producing an immutable
// ErrorContext. Methods are chainable and mutate the receiver intentionally;
// a Builder must have a single owner until Build is called.
//
// Build consumes the builder. With* calls on a consumed builder are no-ops
// so that misuse cannot reach the already-built value.
type Builder struct {
	ec *ErrorContext
}

// NewBuilder starts a builder around cause with all optional fields unset.
func NewBuilder(cause error) *Builder {
	return &Builder{ec: New(cause)}
}

// WithStatusCode sets the numeric status. Last write wins.
func (b *Builder) WithStatusCode(code int) *Builder {
	if b.ec != nil {
		b.ec.statusCode = &code
	}

	return b
}

// WithReason sets the human-readable explanation. Last write wins.
func (b *Builder) WithReason(reason string) *Builder {
	if b.ec != nil {
		b.ec.reason = &reason
	}

	return b
}

// WithStatus sets the short status label. Last write wins.
func (b *Builder) WithStatus(status string) *Builder {
	if b.ec != nil {
		b.ec.status = &status
	}

	return b
}

// WithRequestID sets the originating request id. Last write wins.
func (b *Builder) WithRequestID(requestID string) *Builder {
	if b.ec != nil {
		b.ec.requestID = &requestID
	}

	return b
}

// WithDebug sets the internal diagnostic detail. Last write wins.
func (b *Builder) WithDebug(debug string) *Builder {
	if b.ec != nil {
		b.ec.debug = &debug
	}

	return b
}

// WithID sets the identifier of the error instance. Last write wins.
func (b *Builder) WithID(id string) *Builder {
	if b.ec != nil {
		b.ec.id = &id
	}

	return b
}

// WithDetail sets a single detail key/value. The internal map is created on
// first use; an existing key is overwritten.
func (b *Builder) WithDetail(key, value string) *Builder {
	if b.ec == nil {
		return b
	}

	if b.ec.details == nil {
		b.ec.details = map[string]string{}
	}

	b.ec.details[key] = value

	return b
}

// WithDetails merges the provided map into the details: new keys are
// inserted, existing keys are overwritten. Nil or empty maps are ignored.
// The input map is cloned, never retained.
func (b *Builder) WithDetails(details map[string]string) *Builder {
	if b.ec == nil || len(details) == 0 {
		return b
	}

	if b.ec.details == nil {
		b.ec.details = make(map[string]string, len(details))
	}

	maps.Copy(b.ec.details, details)

	return b
}

// Build finalizes the ErrorContext and consumes the builder. The returned
// value is immutable; the builder keeps no reference to it.
func (b *Builder) Build() *ErrorContext {
	e := b.ec
	b.ec = nil

	return e
}
