// Package xgxinput defines the error capabilities shared by every failure the
// input readers produce. It keeps two concerns apart:
//
//   - Details: a read-only view of one failure (where, what, why, retry).
//   - Error[E]: how a representation E is built from a failure and how it
//     absorbs the context of enclosing operations.
//
// Implementations MUST keep FromContext non-mutating: it returns a new value
// and leaves the receiver untouched, so shared error values stay safe without
// synchronization.
package xgxinput

import "io"

// Details is the uniform view over any failure kind.
type Details interface {
	// Input is the whole input that was being processed. It gives the bigger
	// picture around Span and may be widened as the failure propagates.
	Input() Span

	// Span is the specific section of input that caused the failure.
	Span() Span

	// Context is the operation that detected the failure.
	Context() Context

	// FoundValue is the offending value, if applicable.
	FoundValue() (Span, bool)

	// ExpectedValue is the exact value that was required, if applicable.
	ExpectedValue() (Span, bool)

	// Description writes a lowercase, unpunctuated fragment saying what went
	// wrong.
	Description(w io.Writer) error

	// RetryRequirement is the number of extra bytes needed before the read
	// could succeed. ok is false when no amount of input would help.
	RetryRequirement() (r RetryRequirement, ok bool)
}

// FromExpected is implemented by representations that can be built from each
// failure kind. Readers call it on the zero value of E.
type FromExpected[E any] interface {
	FromExpectedValue(ExpectedValue) E
	FromExpectedLength(ExpectedLength) E
	FromExpectedValid(ExpectedValid) E
}

// Error is the capability a reader's error type parameter must satisfy.
//
// FromContext wraps the failure with an enclosing operation and the input
// that operation was working on. The kind is unchanged. Fast representations
// return the receiver as is.
type Error[E any] interface {
	error
	FromExpected[E]
	FromContext(input Span, ctx Context) E
}
