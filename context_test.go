// context_test.go — verification of context stacks and input widening.
package xgxinput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func innerFailure() (Bytes, Verbose) {
	outer := NewBytes([]byte("hello<123>"))
	inner := outer.Sub(6, 9)
	err := Verbose{}.FromExpectedValue(
		NewExpectedValue("consume", Text("124").expectedSpan(), inner.Span, inner.Span))
	return outer, err
}

func TestCtxCloneAppend_NeverAliases(t *testing.T) {
	t.Parallel()

	base := make(contexts, 1, 4)
	base[0] = Operation("a")
	x := ctxCloneAppend(base, Operation("x"))
	y := ctxCloneAppend(base, Operation("y"))

	require.Equal(t, Operation("x"), x[1])
	require.Equal(t, Operation("y"), y[1])
	require.Len(t, base, 1)
}

func TestFromContext_WidensToEnclosingInput(t *testing.T) {
	t.Parallel()

	outer, err := innerFailure()
	wrapped := err.FromContext(outer.Span, Operation("read protocol"))

	require.Equal(t, outer.Span, wrapped.Input())
	require.Equal(t, err.Span(), wrapped.Span())
	// The receiver is left untouched.
	require.Equal(t, 3, err.Input().Len())
}

func TestFromContext_DoesNotNarrowOrJumpBuffers(t *testing.T) {
	t.Parallel()

	outer, err := innerFailure()
	wide := err.FromContext(outer.Span, Operation("outer"))

	// A narrower input is ignored.
	narrowed := wide.FromContext(outer.Sub(6, 9).Span, Operation("narrow"))
	require.Equal(t, outer.Span, narrowed.Input())

	// An equal-valued range of a different buffer is ignored.
	lookalike := NewBytes([]byte("hello<123>"))
	moved := wide.FromContext(lookalike.Span, Operation("lookalike"))
	require.Equal(t, outer.Span, moved.Input())
	require.True(t, moved.Input().IsWithin(outer.Span))
}

func TestFromContext_SameInputIsIdempotent(t *testing.T) {
	t.Parallel()

	_, err := innerFailure()
	wrapped := err.FromContext(err.Input(), Operation("again"))

	require.Equal(t, err.Input(), wrapped.Input())
	require.Equal(t, err.Span(), wrapped.Span())
	f1, _ := err.FoundValue()
	f2, _ := wrapped.FoundValue()
	require.Equal(t, f1, f2)
}

func TestContextStack_InnermostFirst(t *testing.T) {
	t.Parallel()

	outer, err := innerFailure()
	wrapped := err.
		FromContext(outer.Sub(0, 9).Span, Operation("read number")).
		FromContext(outer.Span, Operation("read protocol"))

	var got []string
	Walk(wrapped.ContextStack(), func(_ int, c Context) bool {
		got = append(got, c.Operation())
		return true
	})
	require.Equal(t, []string{"consume", "read number", "read protocol"}, got)

	// Walk stops when fn returns false.
	var first []string
	Walk(wrapped.ContextStack(), func(_ int, c Context) bool {
		first = append(first, c.Operation())
		return false
	})
	require.Equal(t, []string{"consume"}, first)
}

func TestFastRepresentations_IgnoreContext(t *testing.T) {
	t.Parallel()

	in := NewBytes([]byte("ab"))
	length := NewExpectedLength("take", 5, in.Span, in.Span)

	inv := Invalid{}.FromExpectedLength(length)
	require.Equal(t, inv, inv.FromContext(in.Span, Operation("outer")))
	r, ok := inv.RetryRequirement()
	require.True(t, ok)
	require.Equal(t, RetryRequirement(3), r)

	fatal := Fatal{}.FromExpectedLength(length)
	require.Equal(t, fatal, fatal.FromContext(in.Span, Operation("outer")))
	_, ok = fatal.RetryRequirement()
	require.False(t, ok)
}
