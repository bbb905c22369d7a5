// format.go — human-readable rendering of failures.
//
// Behavior:
//
//   %s, %v   → concise single line:
//                error attempting to <operation>: <description>
//   %+v      → full report:
//                error attempting to consume: found a different value to the exact expected
//                > "hello<123>"
//                         ^^^
//                additional:
//                  error offset: 6, error length: 3
//                found:
//                > "123"
//                expected:
//                > "124"
//                context backtrace:
//                  1. consume
//                  2. read protocol
//   %q       → quoted concise string.
//
// Rendering writes straight to the destination through a small stack buffer
// and is deterministic for identical inputs. Bytes outside printable ASCII
// are escaped, so the output is not meant to be parsed back.
package xgxinput

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DisplayWindow is the maximum number of input bytes shown in a report.
// Longer inputs are cut around the failing span and marked with "...".
const DisplayWindow = 64

// stacker is implemented by representations that carry a context stack.
type stacker interface {
	ContextStack() ContextStack
}

// Display renders a failure.
type Display struct {
	details Details
	stack   ContextStack
}

// NewDisplay returns a renderer for d. If d carries a context stack it is
// included in the report.
func NewDisplay(d Details) Display {
	out := Display{details: d}
	if s, ok := d.(stacker); ok {
		out.stack = s.ContextStack()
	}
	return out
}

// WriteTo writes the full report to w.
func (d Display) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := writeReport(cw, d.details, d.stack)
	return cw.n, err
}

// String returns the full report.
func (d Display) String() string {
	var sb strings.Builder
	_ = writeReport(&sb, d.details, d.stack)
	return sb.String()
}

func (d Display) Format(s fmt.State, verb rune) {
	formatDetails(s, verb, d.details, d.stack)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// errWriter latches the first write error so sequences of writes read
// straight through.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) str(s string) {
	if ew.err == nil {
		_, ew.err = io.WriteString(ew.w, s)
	}
}

func (ew *errWriter) bytes(b []byte) {
	if ew.err == nil {
		_, ew.err = ew.w.Write(b)
	}
}

func (ew *errWriter) num(n int) {
	var buf [20]byte
	ew.bytes(strconv.AppendInt(buf[:0], int64(n), 10))
}

// count writes "1 byte" or "n bytes".
func (ew *errWriter) count(n int) {
	ew.num(n)
	if n == 1 {
		ew.str(" byte")
	} else {
		ew.str(" bytes")
	}
}

func (ew *errWriter) repeat(b byte, n int) {
	var buf [32]byte
	for i := range buf {
		buf[i] = b
	}
	for n > 0 {
		k := min(n, len(buf))
		ew.bytes(buf[:k])
		n -= k
	}
}

// escapedWidth is the rendered width of b inside a quoted section.
func escapedWidth(b byte) int {
	switch {
	case b == '"' || b == '\\' || b == '\n' || b == '\r' || b == '\t':
		return 2
	case b >= 0x20 && b < 0x7f:
		return 1
	default:
		return 4
	}
}

const hexDigits = "0123456789abcdef"

// escaped writes raw with printable ASCII verbatim and everything else
// escaped.
func (ew *errWriter) escaped(raw []byte) {
	var buf [64]byte
	n := 0
	for _, b := range raw {
		if n+4 > len(buf) {
			ew.bytes(buf[:n])
			n = 0
		}
		switch {
		case b == '"' || b == '\\':
			buf[n], buf[n+1] = '\\', b
			n += 2
		case b == '\n':
			buf[n], buf[n+1] = '\\', 'n'
			n += 2
		case b == '\r':
			buf[n], buf[n+1] = '\\', 'r'
			n += 2
		case b == '\t':
			buf[n], buf[n+1] = '\\', 't'
			n += 2
		case b >= 0x20 && b < 0x7f:
			buf[n] = b
			n++
		default:
			buf[n], buf[n+1], buf[n+2], buf[n+3] = '\\', 'x', hexDigits[b>>4], hexDigits[b&0xf]
			n += 4
		}
	}
	ew.bytes(buf[:n])
}

// window picks the [start, end) range of an n byte input to display so
// that the failing offset is visible.
func window(n, at int) (int, int) {
	if n <= DisplayWindow {
		return 0, n
	}
	start := max(0, at-DisplayWindow/2)
	end := min(n, start+DisplayWindow)
	start = max(0, end-DisplayWindow)
	return start, end
}

// quotedLine writes `> "..."` for raw[start:end] and returns the column at
// which raw[start] was written.
func (ew *errWriter) quotedLine(raw []byte, start, end int) int {
	col := 2
	ew.str("> ")
	if start > 0 {
		ew.str("...")
		col += 3
	}
	ew.str(`"`)
	col++
	ew.escaped(raw[start:end])
	ew.str(`"`)
	if end < len(raw) {
		ew.str("...")
	}
	ew.str("\n")
	return col
}

// value writes a standalone value section.
func (ew *errWriter) value(title string, s Span) {
	raw := s.RawBytesUnchecked()
	ew.str(title)
	ew.str(":\n")
	ew.quotedLine(raw, 0, min(len(raw), DisplayWindow))
}

// writeConcise writes "error attempting to <op>: <description>".
func writeConcise(w io.Writer, d Details) error {
	ew := &errWriter{w: w}
	ew.str("error attempting to ")
	ew.str(d.Context().Operation())
	ew.str(": ")
	if ew.err != nil {
		return ew.err
	}
	return d.Description(w)
}

func writeReport(w io.Writer, d Details, stack ContextStack) error {
	if err := writeConcise(w, d); err != nil {
		return err
	}
	ew := &errWriter{w: w}
	ew.str("\n")

	input, span := d.Input(), d.Span()
	raw := input.RawBytesUnchecked()
	off, ok := span.OffsetIn(input)
	if !ok {
		off = 0
	}
	start, end := window(len(raw), off)
	col := ew.quotedLine(raw, start, end)

	pad := col
	for _, b := range raw[start:min(off, end)] {
		pad += escapedWidth(b)
	}
	carets := 0
	for _, b := range raw[min(off, end):min(off+span.Len(), end)] {
		carets += escapedWidth(b)
	}
	ew.repeat(' ', pad)
	ew.repeat('^', max(carets, 1))
	ew.str("\n")

	ew.str("additional:\n  error offset: ")
	ew.num(off)
	ew.str(", error length: ")
	ew.num(span.Len())
	if r, ok := d.RetryRequirement(); ok {
		ew.str(", retry requirement: ")
		ew.count(int(r))
	}
	ew.str("\n")

	if found, ok := d.FoundValue(); ok {
		ew.value("found", found)
	}
	if expected, ok := d.ExpectedValue(); ok {
		ew.value("expected", expected)
	}

	if stack != nil && stack.Len() > 0 {
		ew.str("context backtrace:\n")
		Walk(stack, func(i int, c Context) bool {
			ew.str("  ")
			ew.num(i + 1)
			ew.str(". ")
			ew.str(c.Operation())
			ew.str("\n")
			return ew.err == nil
		})
	}
	return ew.err
}

// conciseString is the Error() text of d.
func conciseString(d Details) string {
	var sb strings.Builder
	_ = writeConcise(&sb, d)
	return sb.String()
}

func formatDetails(s fmt.State, verb rune, d Details, stack ContextStack) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_ = writeReport(s, d, stack)
			return
		}
		_ = writeConcise(s, d)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", conciseString(d))
	default:
		_ = writeConcise(s, d)
	}
}

// -----------------------------------------------------------------------------
// error / fmt.Formatter / Display for each failure type
// -----------------------------------------------------------------------------

func (e ExpectedValue) Error() string                 { return conciseString(e) }
func (e ExpectedValue) Display() Display              { return NewDisplay(e) }
func (e ExpectedValue) Format(s fmt.State, verb rune) { formatDetails(s, verb, e, nil) }

func (e ExpectedLength) Error() string                 { return conciseString(e) }
func (e ExpectedLength) Display() Display              { return NewDisplay(e) }
func (e ExpectedLength) Format(s fmt.State, verb rune) { formatDetails(s, verb, e, nil) }

func (e ExpectedValid) Error() string                 { return conciseString(e) }
func (e ExpectedValid) Display() Display              { return NewDisplay(e) }
func (e ExpectedValid) Format(s fmt.State, verb rune) { formatDetails(s, verb, e, nil) }

func (e Expected) Error() string                 { return conciseString(e) }
func (e Expected) Display() Display              { return NewDisplay(e) }
func (e Expected) Format(s fmt.State, verb rune) { formatDetails(s, verb, e, nil) }

func (v Verbose) Error() string    { return conciseString(v) }
func (v Verbose) Display() Display { return NewDisplay(v) }

func (v Verbose) Format(s fmt.State, verb rune) {
	formatDetails(s, verb, v, v.ContextStack())
}
