// context.go — operation labels and the ordered chain they form.
//
// Design:
//   • A Context is a cheap capability; the common implementation is an
//     Operation label, a plain string with no allocation.
//   • The stack is innermost first and append-only. Pushing returns a NEW
//     slice so values sharing a prefix never alias.
//   • Only the verbose representation carries a stack; fast ones hold none.
package xgxinput

// Context describes the operation that was in progress when a failure
// happened.
type Context interface {
	// Operation is a short static label, e.g. "read protocol".
	Operation() string
}

// Operation is a Context made of a label only.
type Operation string

func (o Operation) Operation() string { return string(o) }

// ContextStack is a walkable chain of contexts, innermost first.
type ContextStack interface {
	// Len is the number of entries.
	Len() int
	// At returns the entry at i, with 0 being the innermost.
	At(i int) Context
}

// contexts is the internal append-only representation of a stack.
type contexts []Context

func (c contexts) Len() int         { return len(c) }
func (c contexts) At(i int) Context { return c[i] }

// ctxCloneAppend returns a NEW slice with dst's contents followed by add.
func ctxCloneAppend(dst contexts, add Context) contexts {
	out := make(contexts, len(dst)+1)
	copy(out, dst)
	out[len(dst)] = add
	return out
}

// rootedStack presents a failure's own context followed by the contexts
// pushed while it propagated.
type rootedStack struct {
	root    Context
	parents contexts
}

func (s rootedStack) Len() int { return 1 + len(s.parents) }

func (s rootedStack) At(i int) Context {
	if i == 0 {
		return s.root
	}
	return s.parents[i-1]
}

// Walk calls fn for each entry of cs, innermost first, until fn returns false.
func Walk(cs ContextStack, fn func(i int, c Context) bool) {
	if cs == nil {
		return
	}
	for i := 0; i < cs.Len(); i++ {
		if !fn(i, cs.At(i)) {
			return
		}
	}
}
