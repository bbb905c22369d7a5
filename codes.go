// codes.go — machine-readable names for the closed set of failure kinds.
//
// Conventions:
//   - Kinds are lowercase snake_case ASCII, stable across log lines.
//   - The set is closed; there is no registry for custom kinds.
package xgxinput

// Kind classifies a failure.
type Kind string

const (
	KindValue  Kind = "expected_value"
	KindLength Kind = "expected_length"
	KindValid  Kind = "expected_valid"
)

// allKinds is the ordered set of kinds. Unexported to avoid exposing mutable
// slice identity to callers.
var allKinds = []Kind{KindValue, KindLength, KindValid}

// Kinds returns a defensive copy of all kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// IsKnown reports whether k is one of the defined kinds.
func (k Kind) IsKnown() bool {
	switch k {
	case KindValue, KindLength, KindValid:
		return true
	default:
		return false
	}
}
