// Package contract exposes the carrier interfaces used by other packages.
//
// A carrier is a read-only accessor for one optional metadata field on an
// error-like value. Generic handling code (HTTP response mapping, logging
// middleware) queries error values exclusively through these interfaces and
// never downcasts to a concrete type.
//
// Every accessor is total and side-effect-free. The boolean reports whether
// the field was ever set; false means "never set", which is distinct from
// "set to the zero value".
package contract

// StatusCodeCarrier reports an HTTP-style numeric status code.
type StatusCodeCarrier interface {
	StatusCode() (int, bool)
}

// RequestIDCarrier reports the id of the request the error originated from.
type RequestIDCarrier interface {
	RequestID() (string, bool)
}

// ReasonCarrier reports a human-readable explanation of the failure.
type ReasonCarrier interface {
	Reason() (string, bool)
}

// DebugCarrier reports internal diagnostic detail. The value is meant for
// operators and must not be shown to end users.
type DebugCarrier interface {
	Debug() (string, bool)
}

// StatusCarrier reports a short status label, distinct from the free-text
// reason (e.g. a canonical status phrase).
type StatusCarrier interface {
	Status() (string, bool)
}

// DetailsCarrier reports arbitrary structured metadata.
// Implementations must return a defensive copy, never the internal map.
type DetailsCarrier interface {
	Details() (map[string]string, bool)
}

// IDCarrier reports an identifier for the error instance itself, distinct
// from the request id.
type IDCarrier interface {
	ID() (string, bool)
}
