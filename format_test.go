package xgxinput

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const protocolReport = `error attempting to consume: found a different value to the exact expected
> "hello<123>"
         ^^^
additional:
  error offset: 6, error length: 3
found:
> "123"
expected:
> "124"
context backtrace:
  1. consume
  2. read protocol
`

func protocolError(t *testing.T) Verbose {
	t.Helper()
	var v Verbose
	require.ErrorAs(t, readProtocol[Verbose](NewBytes([]byte("hello<123>"))), &v)
	return v
}

func TestFormat_VerboseReport(t *testing.T) {
	t.Parallel()

	v := protocolError(t)
	require.Equal(t, protocolReport, fmt.Sprintf("%+v", v))
	require.Equal(t, protocolReport, v.Display().String())

	var buf bytes.Buffer
	n, err := v.Display().WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(protocolReport)), n)
	require.Equal(t, protocolReport, buf.String())
}

func TestFormat_RenderingIsStable(t *testing.T) {
	t.Parallel()

	v := protocolError(t)
	require.Equal(t, v.Display().String(), v.Display().String())
	require.Equal(t, fmt.Sprintf("%+v", v), fmt.Sprintf("%+v", v))
}

func TestFormat_ConciseAndQuoted(t *testing.T) {
	t.Parallel()

	v := protocolError(t)
	want := "error attempting to consume: found a different value to the exact expected"
	require.Equal(t, want, v.Error())
	require.Equal(t, want, fmt.Sprintf("%v", v))
	require.Equal(t, want, fmt.Sprintf("%s", v))
	require.Equal(t, fmt.Sprintf("%q", want), fmt.Sprintf("%q", v))
}

func TestFormat_BareKindHasNoBacktrace(t *testing.T) {
	t.Parallel()

	in := NewBytes([]byte("ab"))
	err := NewExpectedLength("take", 5, in.Span, in.Span)
	report := fmt.Sprintf("%+v", err)

	require.Equal(t, `error attempting to take: found 2 bytes when at least 5 bytes was expected
> "ab"
   ^^
additional:
  error offset: 0, error length: 2, retry requirement: 3 bytes
found:
> "ab"
`, report)
	require.NotContains(t, report, "context backtrace")
	require.NotContains(t, report, "expected:")
}

func TestFormat_EscapesNonPrintable(t *testing.T) {
	t.Parallel()

	in := NewBytes([]byte("a\x00\"\n"))
	err := NewExpectedValue("consume", Byte('b').expectedSpan(), in.Sub(1, 2).Span, in.Span)
	report := err.Display().String()

	require.Contains(t, report, `> "a\x00\"\n"`+"\n"+"    ^^^^\n")
}

func TestFormat_EmptySpanGetsOneCaret(t *testing.T) {
	t.Parallel()

	in := NewBytes([]byte("ab"))
	err := NewExpectedLength("take", 1, in.Sub(2, 2).Span, in.Span)
	require.Contains(t, err.Display().String(), "> \"ab\"\n     ^\n")
}

func TestFormat_LongInputIsWindowed(t *testing.T) {
	t.Parallel()

	buf := []byte(strings.Repeat("a", 200) + "X" + strings.Repeat("b", 200))
	in := NewBytes(buf)
	err := NewExpectedValue("consume", Byte('Y').expectedSpan(), in.Sub(200, 201).Span, in.Span)
	report := err.Display().String()

	lines := strings.Split(report, "\n")
	require.True(t, strings.HasPrefix(lines[1], `> ..."`))
	require.True(t, strings.HasSuffix(lines[1], `"...`))
	caret := strings.Index(lines[2], "^")
	require.Equal(t, byte('X'), lines[1][caret])
	require.Contains(t, report, "error offset: 200, error length: 1")
}

func TestFormat_WriteErrorsPropagate(t *testing.T) {
	t.Parallel()

	v := protocolError(t)
	_, err := v.Display().WriteTo(failingWriter{})
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("write refused") }
