// construct.go — the three failure kinds and the closed union over them.
//
// Scope:
//   - ExpectedValue: an exact value was required and something else was found.
//   - ExpectedLength: too few or too many bytes.
//   - ExpectedValid: bytes were decoded but failed a validity check.
//   - Expected: a tagged union forwarding Details to the active kind through
//     a single dispatch function.
//
// Fields are set once, where the failure is detected. Afterwards only the
// whole input may change, and only by widening to an enclosing range
// (withInput).
package xgxinput

import "io"

// checkSpan enforces that a failing span lies inside the input it reports.
func checkSpan(span, input Span) {
	if !span.IsWithin(input) {
		panic("xgxinput: error span is not within its input")
	}
}

// -----------------------------------------------------------------------------
// ExpectedValue
// -----------------------------------------------------------------------------

// ExpectedValue reports a failed exact value requirement.
type ExpectedValue struct {
	value     Span
	span      Span
	input     Span
	operation Operation
}

// NewExpectedValue builds the failure raised when span, taken from input,
// did not equal value during operation.
func NewExpectedValue(operation string, value, span, input Span) ExpectedValue {
	checkSpan(span, input)
	return ExpectedValue{value: value, span: span, input: input, operation: Operation(operation)}
}

// Expected is the value that was required.
func (e ExpectedValue) Expected() Span { return e.value }

func (e ExpectedValue) Input() Span                 { return e.input }
func (e ExpectedValue) Span() Span                  { return e.span }
func (e ExpectedValue) Context() Context            { return e.operation }
func (e ExpectedValue) FoundValue() (Span, bool)    { return e.span, true }
func (e ExpectedValue) ExpectedValue() (Span, bool) { return e.value, true }
func (e ExpectedValue) Kind() Kind                  { return KindValue }

func (e ExpectedValue) Description(w io.Writer) error {
	_, err := io.WriteString(w, "found a different value to the exact expected")
	return err
}

func (e ExpectedValue) RetryRequirement() (RetryRequirement, bool) {
	return RetryFromHadAndNeeded(e.span.Len(), e.value.Len())
}

func (e ExpectedValue) withInput(input Span) ExpectedValue {
	if e.input.IsWithin(input) {
		e.input = input
	}
	return e
}

// -----------------------------------------------------------------------------
// ExpectedLength
// -----------------------------------------------------------------------------

// ExpectedLength reports a failed length requirement.
//
// When Max is absent the input was too short and more bytes may fix it.
// When Max is present the input overran a limit; waiting never helps.
type ExpectedLength struct {
	min       int
	max       int
	hasMax    bool
	span      Span
	input     Span
	operation Operation
}

// NewExpectedLength builds a "too short" failure: at least min bytes were
// required but only span was available.
func NewExpectedLength(operation string, min int, span, input Span) ExpectedLength {
	checkSpan(span, input)
	return ExpectedLength{min: min, span: span, input: input, operation: Operation(operation)}
}

// NewExpectedLengthRange builds an overrun failure: between min and max
// bytes were allowed and span did not fit.
func NewExpectedLengthRange(operation string, min, max int, span, input Span) ExpectedLength {
	checkSpan(span, input)
	return ExpectedLength{min: min, max: max, hasMax: true, span: span, input: input, operation: Operation(operation)}
}

// Min is the minimum length required. Use RetryRequirement to learn how many
// more bytes are needed from here.
func (e ExpectedLength) Min() int { return e.min }

// Max is the maximum length allowed, if there was one. A present Max means
// the input exceeded it.
func (e ExpectedLength) Max() (int, bool) { return e.max, e.hasMax }

// IsExact reports whether an exact length was required.
func (e ExpectedLength) IsExact() bool { return e.hasMax && e.min == e.max }

// Exact returns the exact length required, only when IsExact is true.
func (e ExpectedLength) Exact() (int, bool) {
	if e.IsExact() {
		return e.max, true
	}
	return 0, false
}

// IsFatal reports whether more input can never satisfy the requirement.
func (e ExpectedLength) IsFatal() bool { return e.hasMax }

// Exceeded reports whether the span is longer than Max. It separates "gave
// too much" from the other fatal shapes that RetryRequirement alone cannot.
func (e ExpectedLength) Exceeded() bool { return e.hasMax && e.span.Len() > e.max }

func (e ExpectedLength) Input() Span                 { return e.input }
func (e ExpectedLength) Span() Span                  { return e.span }
func (e ExpectedLength) Context() Context            { return e.operation }
func (e ExpectedLength) FoundValue() (Span, bool)    { return e.span, true }
func (e ExpectedLength) ExpectedValue() (Span, bool) { return Span{}, false }
func (e ExpectedLength) Kind() Kind                  { return KindLength }

func (e ExpectedLength) Description(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.str("found ")
	ew.count(e.span.Len())
	ew.str(" when ")
	switch {
	case e.min == 0 && e.hasMax:
		ew.str("at most ")
		ew.count(e.max)
	case !e.hasMax:
		ew.str("at least ")
		ew.count(e.min)
	case e.min == e.max:
		ew.str("exactly ")
		ew.count(e.min)
	default:
		ew.str("at least ")
		ew.count(e.min)
		ew.str(" and at most ")
		ew.count(e.max)
	}
	ew.str(" was expected")
	return ew.err
}

func (e ExpectedLength) RetryRequirement() (RetryRequirement, bool) {
	if e.IsFatal() {
		return 0, false
	}
	return RetryFromHadAndNeeded(e.span.Len(), e.min)
}

func (e ExpectedLength) withInput(input Span) ExpectedLength {
	if e.input.IsWithin(input) {
		e.input = input
	}
	return e
}

// -----------------------------------------------------------------------------
// ExpectedValid
// -----------------------------------------------------------------------------

// ExpectedValid reports a decoded value that failed a validity check.
type ExpectedValid struct {
	span      Span
	input     Span
	operation Operation
	expected  string
	retry     RetryRequirement
	canRetry  bool
}

// NewExpectedValid builds a validity failure. expected names the valid thing
// ("utf-8 code point"); retry is the caller's precomputed requirement and
// canRetry is false when more input cannot help.
func NewExpectedValid(operation, expected string, span, input Span, retry RetryRequirement, canRetry bool) ExpectedValid {
	checkSpan(span, input)
	return ExpectedValid{
		span:      span,
		input:     input,
		operation: Operation(operation),
		expected:  expected,
		retry:     retry,
		canRetry:  canRetry && retry > 0,
	}
}

// Expected names the thing that was expected to be valid.
func (e ExpectedValid) Expected() string { return e.expected }

func (e ExpectedValid) Input() Span                 { return e.input }
func (e ExpectedValid) Span() Span                  { return e.span }
func (e ExpectedValid) Context() Context            { return e.operation }
func (e ExpectedValid) FoundValue() (Span, bool)    { return e.span, true }
func (e ExpectedValid) ExpectedValue() (Span, bool) { return Span{}, false }
func (e ExpectedValid) Kind() Kind                  { return KindValid }

func (e ExpectedValid) Description(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.str("invalid ")
	ew.str(e.expected)
	return ew.err
}

func (e ExpectedValid) RetryRequirement() (RetryRequirement, bool) {
	return e.retry, e.canRetry
}

func (e ExpectedValid) withInput(input Span) ExpectedValid {
	if e.input.IsWithin(input) {
		e.input = input
	}
	return e
}

// -----------------------------------------------------------------------------
// Expected (closed union)
// -----------------------------------------------------------------------------

// Expected holds exactly one of the three failure kinds.
type Expected struct {
	kind   Kind
	value  ExpectedValue
	length ExpectedLength
	valid  ExpectedValid
}

func ExpectedFromValue(e ExpectedValue) Expected   { return Expected{kind: KindValue, value: e} }
func ExpectedFromLength(e ExpectedLength) Expected { return Expected{kind: KindLength, length: e} }
func ExpectedFromValid(e ExpectedValid) Expected   { return Expected{kind: KindValid, valid: e} }

// details is the one dispatch point over the active kind. The zero Expected
// reads as an empty ExpectedValue.
func (e Expected) details() Details {
	switch e.kind {
	case KindLength:
		return e.length
	case KindValid:
		return e.valid
	default:
		return e.value
	}
}

// Kind returns the active kind. The zero Expected reports KindValue.
func (e Expected) Kind() Kind {
	if e.kind == "" {
		return KindValue
	}
	return e.kind
}

// AsValue returns the active ExpectedValue, if that is the kind.
func (e Expected) AsValue() (ExpectedValue, bool) { return e.value, e.Kind() == KindValue }

// AsLength returns the active ExpectedLength, if that is the kind.
func (e Expected) AsLength() (ExpectedLength, bool) { return e.length, e.kind == KindLength }

// AsValid returns the active ExpectedValid, if that is the kind.
func (e Expected) AsValid() (ExpectedValid, bool) { return e.valid, e.kind == KindValid }

func (e Expected) Input() Span                                { return e.details().Input() }
func (e Expected) Span() Span                                 { return e.details().Span() }
func (e Expected) Context() Context                           { return e.details().Context() }
func (e Expected) FoundValue() (Span, bool)                   { return e.details().FoundValue() }
func (e Expected) ExpectedValue() (Span, bool)                { return e.details().ExpectedValue() }
func (e Expected) Description(w io.Writer) error              { return e.details().Description(w) }
func (e Expected) RetryRequirement() (RetryRequirement, bool) { return e.details().RetryRequirement() }

func (e Expected) withInput(input Span) Expected {
	switch e.kind {
	case KindLength:
		e.length = e.length.withInput(input)
	case KindValid:
		e.valid = e.valid.withInput(input)
	default:
		e.value = e.value.withInput(input)
	}
	return e
}
