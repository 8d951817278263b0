package errorsx

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/next-trace/scg-support/contract"
)

const maxStackDepth = 32

// EnrichedError is a root error that records where it was created.
//
// The call-site location (file and line) is captured when NewEnriched or
// NewEnrichedBuilder is invoked and is fixed from then on. A short stack is
// captured at Build. Context annotations accumulate in the order they are
// added; the source link forms a singly-linked, acyclic cause chain.
type EnrichedError struct {
	message    string
	file       string
	line       int
	frames     []uintptr
	context    []string
	source     error
	statusCode *int
	status     *string
}

var (
	_ contract.StatusCodeCarrier = (*EnrichedError)(nil)
	_ contract.StatusCarrier     = (*EnrichedError)(nil)
	_ fmt.Formatter              = (*EnrichedError)(nil)
)

// NewEnriched creates a root error with just a message. The location is the
// line that called NewEnriched.
func NewEnriched(message string) *EnrichedError {
	return newEnrichedBuilder(message).Build()
}

// NewEnrichedBuilder starts a builder for an EnrichedError. The location is
// the line that called NewEnrichedBuilder, not the line that calls Build.
func NewEnrichedBuilder(message string) *EnrichedBuilder {
	return newEnrichedBuilder(message)
}

// Both exported constructors sit exactly one frame above this function, so
// skip 2 lands on the user's call site.
func newEnrichedBuilder(message string) *EnrichedBuilder {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}

	return &EnrichedBuilder{
		err: &EnrichedError{
			message: message,
			file:    file,
			line:    line,
		},
	}
}

// ------ standard error interface

// Error renders "<message>[ (<ctx1>, <ctx2>, ...)][: <source>]". Context
// annotations appear in the order they were added. The format is stable;
// downstream log tooling may parse it.
func (e *EnrichedError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.message)

	if len(e.context) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.context, ", "))
		b.WriteByte(')')
	}

	if e.source != nil {
		b.WriteString(": ")
		b.WriteString(e.source.Error())
	}

	return b.String()
}

// Unwrap exposes the source link so errors.Is / errors.As walk the chain.
func (e *EnrichedError) Unwrap() error { return e.source }

// Format implements fmt.Formatter. %v and %s equal Error(); %+v appends the
// call-site location and the frames captured at Build.
func (e *EnrichedError) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			io.WriteString(f, e.Error())
			fmt.Fprintf(f, "\n\tat %s:%d", e.file, e.line)

			frames := runtime.CallersFrames(e.frames)
			for {
				frame, more := frames.Next()
				fmt.Fprintf(f, "\n\t%s\n\t\t%s:%d", frame.Function, frame.File, frame.Line)

				if !more {
					break
				}
			}

			return
		}

		io.WriteString(f, e.Error())
	case 's':
		io.WriteString(f, e.Error())
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	}
}

// ------ accessors

// Message returns the root message without context or source.
func (e *EnrichedError) Message() string { return e.message }

// Context returns a copy of the context annotations, oldest first.
func (e *EnrichedError) Context() []string { return slices.Clone(e.context) }

// Location returns the file and line where the error was created.
func (e *EnrichedError) Location() (string, int) { return e.file, e.line }

// Source returns the linked prior error, or nil for a leaf.
func (e *EnrichedError) Source() error { return e.source }

func (e *EnrichedError) StatusCode() (int, bool) { return deref(e.statusCode) }

func (e *EnrichedError) Status() (string, bool) { return deref(e.status) }

// EnrichedBuilder accumulates context and links before producing an
// immutable EnrichedError. Build consumes the builder; With* calls on a
// consumed builder are no-ops.
type EnrichedBuilder struct {
	err *EnrichedError
}

// WithContext appends a context annotation. Annotations accumulate; they are
// never overwritten.
func (b *EnrichedBuilder) WithContext(context string) *EnrichedBuilder {
	if b.err != nil {
		b.err.context = append(b.err.context, context)
	}

	return b
}

// WithSource links a prior error as the source of this one. Last write wins.
func (b *EnrichedBuilder) WithSource(source error) *EnrichedBuilder {
	if b.err != nil {
		b.err.source = source
	}

	return b
}

// WithStatusCode sets the numeric status. Last write wins.
func (b *EnrichedBuilder) WithStatusCode(code int) *EnrichedBuilder {
	if b.err != nil {
		b.err.statusCode = &code
	}

	return b
}

// WithStatus sets the short status label. Last write wins.
func (b *EnrichedBuilder) WithStatus(status string) *EnrichedBuilder {
	if b.err != nil {
		b.err.status = &status
	}

	return b
}

// Build captures the stack, finalizes the EnrichedError and consumes the
// builder. The location stays the one captured at builder creation.
func (b *EnrichedBuilder) Build() *EnrichedError {
	e := b.err
	b.err = nil

	if e == nil {
		return nil
	}

	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	e.frames = pcs[:n]

	return e
}
