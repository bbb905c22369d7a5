// retry.go — how many more bytes a failed read needs before it could pass.
//
// A RetryRequirement is always positive. "Never" is reported as absence
// (ok == false), never as zero. Every length-based decision in the package
// goes through RetryFromHadAndNeeded.
package xgxinput

import "strconv"

// RetryRequirement is the number of additional bytes required before a
// failed read could plausibly succeed.
type RetryRequirement uint

// NewRetryRequirement returns n as a requirement, or false when n <= 0.
func NewRetryRequirement(n int) (RetryRequirement, bool) {
	if n <= 0 {
		return 0, false
	}
	return RetryRequirement(n), true
}

// RetryFromHadAndNeeded returns needed-had when had < needed. When the
// failure was not a shortage (had >= needed) there is no requirement.
func RetryFromHadAndNeeded(had, needed int) (RetryRequirement, bool) {
	if had >= needed {
		return 0, false
	}
	return NewRetryRequirement(needed - had)
}

// Continue returns the total length a caller should provide on retry given
// the length it had.
func (r RetryRequirement) Continue(had int) int { return had + int(r) }

func (r RetryRequirement) String() string {
	return strconv.FormatUint(uint64(r), 10)
}
