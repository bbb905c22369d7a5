// wrap.go — the interchangeable error representations a reader can run with.
//
//   Fatal    zero-size; records only that reading failed.
//   Invalid  records the retry requirement and nothing else.
//   Verbose  keeps the full failure plus the chain of enclosing contexts.
//
// All three satisfy Error[E]. Which one a Reader[E] is instantiated with
// decides the cost of failure: for Fatal and Invalid, FromContext returns
// the receiver and context attachment does no work.
package xgxinput

import "io"

// -----------------------------------------------------------------------------
// Fatal
// -----------------------------------------------------------------------------

// Fatal is the cheapest representation. It never reports a retry
// requirement, so callers treat every failure as final.
type Fatal struct{}

func (Fatal) Error() string                              { return "invalid input" }
func (Fatal) FromExpectedValue(ExpectedValue) Fatal      { return Fatal{} }
func (Fatal) FromExpectedLength(ExpectedLength) Fatal    { return Fatal{} }
func (Fatal) FromExpectedValid(ExpectedValid) Fatal      { return Fatal{} }
func (f Fatal) FromContext(Span, Context) Fatal          { return f }
func (Fatal) RetryRequirement() (RetryRequirement, bool) { return 0, false }

// -----------------------------------------------------------------------------
// Invalid
// -----------------------------------------------------------------------------

// Invalid records whether, and by how much, more input could help.
// Converting it to error does not allocate while the requirement is below
// 256 bytes.
type Invalid struct {
	retry RetryRequirement
}

func invalidFrom(d Details) Invalid {
	r, ok := d.RetryRequirement()
	if !ok {
		return Invalid{}
	}
	return Invalid{retry: r}
}

func (Invalid) FromExpectedValue(e ExpectedValue) Invalid   { return invalidFrom(e) }
func (Invalid) FromExpectedLength(e ExpectedLength) Invalid { return invalidFrom(e) }
func (Invalid) FromExpectedValid(e ExpectedValid) Invalid   { return invalidFrom(e) }
func (i Invalid) FromContext(Span, Context) Invalid         { return i }

func (i Invalid) RetryRequirement() (RetryRequirement, bool) { return i.retry, i.retry > 0 }

// IsFatal reports whether no amount of extra input would help.
func (i Invalid) IsFatal() bool { return i.retry == 0 }

func (i Invalid) Error() string {
	if i.retry == 0 {
		return "invalid input"
	}
	return "invalid input: needs " + i.retry.String() + " more bytes to continue processing"
}

// -----------------------------------------------------------------------------
// Verbose
// -----------------------------------------------------------------------------

// Verbose keeps everything: the failure, the whole input it happened in, and
// the contexts of every enclosing operation that re-raised it.
type Verbose struct {
	expected Expected
	parents  contexts
}

// NewVerbose wraps a failure with an empty context chain.
func NewVerbose(e Expected) Verbose { return Verbose{expected: e} }

func (Verbose) FromExpectedValue(e ExpectedValue) Verbose {
	return Verbose{expected: ExpectedFromValue(e)}
}

func (Verbose) FromExpectedLength(e ExpectedLength) Verbose {
	return Verbose{expected: ExpectedFromLength(e)}
}

func (Verbose) FromExpectedValid(e ExpectedValid) Verbose {
	return Verbose{expected: ExpectedFromValid(e)}
}

// FromContext pushes ctx as the next outer context and widens the reported
// input to input when the current one lies inside it. It returns a NEW
// Verbose; v is not modified.
func (v Verbose) FromContext(input Span, ctx Context) Verbose {
	return Verbose{
		expected: v.expected.withInput(input),
		parents:  ctxCloneAppend(v.parents, ctx),
	}
}

// Expected returns the underlying failure.
func (v Verbose) Expected() Expected { return v.expected }

// Kind returns the kind of the underlying failure.
func (v Verbose) Kind() Kind { return v.expected.Kind() }

// ContextStack returns the failing operation followed by every enclosing
// context, innermost first.
func (v Verbose) ContextStack() ContextStack {
	return rootedStack{root: v.expected.Context(), parents: v.parents}
}

func (v Verbose) Input() Span                                { return v.expected.Input() }
func (v Verbose) Span() Span                                 { return v.expected.Span() }
func (v Verbose) Context() Context                           { return v.expected.Context() }
func (v Verbose) FoundValue() (Span, bool)                   { return v.expected.FoundValue() }
func (v Verbose) ExpectedValue() (Span, bool)                { return v.expected.ExpectedValue() }
func (v Verbose) RetryRequirement() (RetryRequirement, bool) { return v.expected.RetryRequirement() }

func (v Verbose) Description(w io.Writer) error { return v.expected.Description(w) }
