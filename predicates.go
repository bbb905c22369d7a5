// predicates.go — stdlib-aligned questions a caller asks at the boundary.
//
// Scope:
//   • Decide whether to fetch more bytes and retry, or give up.
//   • Recover the Details view from an error of any representation.
//   • errors.As so wrapped errors (fmt.Errorf("...: %w", err)) still answer.
package xgxinput

import "errors"

// retrier is implemented by every representation that can say how much more
// input would help.
type retrier interface {
	RetryRequirement() (RetryRequirement, bool)
}

// RetryRequirementOf returns the retry requirement carried by err, or false
// when err is nil, carries none, or is not from this package.
func RetryRequirementOf(err error) (RetryRequirement, bool) {
	if err == nil {
		return 0, false
	}
	var r retrier
	if errors.As(err, &r) {
		return r.RetryRequirement()
	}
	return 0, false
}

// IsFatal reports whether err is a failure that no amount of extra input
// would fix. A nil error is not fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	_, ok := RetryRequirementOf(err)
	return !ok
}

// DetailsOf returns the Details view of err when its representation keeps
// one (Verbose or a bare Expected kind).
func DetailsOf(err error) (Details, bool) {
	if err == nil {
		return nil, false
	}
	var d Details
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// KindOf returns the failure kind of err, or "" if it does not keep one.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// ContextStackOf returns the context chain of err when it keeps one.
func ContextStackOf(err error) (ContextStack, bool) {
	if err == nil {
		return nil, false
	}
	var s stacker
	if errors.As(err, &s) {
		return s.ContextStack(), true
	}
	return nil, false
}
