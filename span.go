// span.go — borrowed, zero-copy views over a caller-owned buffer.
//
// Model:
//   - A Span is (root buffer, offset, length). The root is the buffer handed
//     to NewBytes/NewString for one top-level parse; every sub-range keeps a
//     reference to that same root.
//   - Containment is offset-range inclusion within the same root. Two spans
//     with equal bytes at different locations are never within each other.
//   - The buffer must not be mutated once reading begins. Nothing here copies
//     or owns byte storage.
//
// Raw access goes through RawBytesUnchecked only, so every place that escapes
// the span model is visible in review.
package xgxinput

import (
	"unicode/utf8"
	"unsafe"
)

// Span is a read-only view of a contiguous byte range of one root buffer.
// The zero Span is an empty range with no root.
type Span struct {
	root []byte
	off  int
	n    int
}

// Bytes is a raw byte input.
type Bytes struct{ Span }

// String is an input whose bytes are guaranteed to be valid UTF-8.
type String struct{ Span }

// NewBytes returns an input over the whole of buf. buf is borrowed.
func NewBytes(buf []byte) Bytes {
	return Bytes{Span{root: buf, n: len(buf)}}
}

// NewString returns a text input over s without copying it.
// It panics if s is not valid UTF-8; use Bytes.ToString for untrusted text.
func NewString(s string) String {
	if !utf8.ValidString(s) {
		panic("xgxinput: NewString called with invalid utf-8")
	}
	return String{Span{root: stringBytes(s), n: len(s)}}
}

// stringBytes aliases the bytes of s. The result must never be written.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Len returns the number of bytes in the span.
func (s Span) Len() int { return s.n }

// IsEmpty reports whether the span has no bytes.
func (s Span) IsEmpty() bool { return s.n == 0 }

// Sub narrows the span to [start, end) relative to its own start.
// It panics if the range is not within the span.
func (s Span) Sub(start, end int) Span {
	if start < 0 || end < start || end > s.n {
		panic("xgxinput: span bounds are invalid")
	}
	return Span{root: s.root, off: s.off + start, n: end - start}
}

// IsWithin reports whether s lies inside other in the same root buffer.
func (s Span) IsWithin(other Span) bool {
	if !sameRoot(s.root, other.root) {
		return false
	}
	return s.off >= other.off && s.off+s.n <= other.off+other.n
}

// OffsetIn returns the offset of s relative to the start of parent, or
// false when s is not within parent.
func (s Span) OffsetIn(parent Span) (int, bool) {
	if !s.IsWithin(parent) {
		return 0, false
	}
	return s.off - parent.off, true
}

// RawBytesUnchecked returns the bytes of the span. The slice aliases the
// caller's buffer; it must not be modified or retained beyond the buffer.
func (s Span) RawBytesUnchecked() []byte {
	return s.root[s.off : s.off+s.n : s.off+s.n]
}

func sameRoot(a, b []byte) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b) && len(a) == len(b)
}

// Sub narrows the input to [start, end).
func (b Bytes) Sub(start, end int) Bytes { return Bytes{b.Span.Sub(start, end)} }

// Split returns the first n bytes and the rest. It panics if n > Len().
func (b Bytes) Split(n int) (Bytes, Bytes) {
	return b.Sub(0, n), b.Sub(n, b.n)
}

// ToString converts the input to text. On invalid UTF-8 it returns an
// ExpectedValid whose retry requirement is set when the input only ends in
// a truncated code point.
func (b Bytes) ToString() (String, error) {
	if err, bad := b.checkUTF8(); bad {
		return String{}, err
	}
	return String{b.Span}, nil
}

func (b Bytes) checkUTF8() (ExpectedValid, bool) {
	raw := b.RawBytesUnchecked()
	for i := 0; i < len(raw); {
		if raw[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(raw[i:])
		if r != utf8.RuneError || size > 1 {
			i += size
			continue
		}
		err := ExpectedValid{
			span:      b.Span.Sub(i, b.n),
			input:     b.Span,
			operation: "convert input to string",
			expected:  "utf-8 code point",
		}
		if !utf8.FullRune(raw[i:]) {
			err.retry, err.canRetry = RetryFromHadAndNeeded(len(raw)-i, utf8SeqLen(raw[i]))
		}
		return err, true
	}
	return ExpectedValid{}, false
}

// utf8SeqLen returns the sequence length announced by a UTF-8 lead byte.
func utf8SeqLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// Sub narrows the text input to [start, end). Both bounds must fall on
// code point boundaries.
func (s String) Sub(start, end int) String {
	sp := s.Span.Sub(start, end)
	raw := s.Span.RawBytesUnchecked()
	if (start < len(raw) && !utf8.RuneStart(raw[start])) || (end < len(raw) && !utf8.RuneStart(raw[end])) {
		panic("xgxinput: string span splits a code point")
	}
	return String{sp}
}

// AsBytes returns the raw byte view of the text.
func (s String) AsBytes() Bytes { return Bytes{s.Span} }

// FirstRune returns the first code point of the text.
func (s String) FirstRune() (rune, bool) {
	if s.n == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRune(s.RawBytesUnchecked())
	return r, true
}

// CutPrefix returns s without p and true when p prefixes s. Otherwise it
// returns s unchanged and false.
func (s String) CutPrefix(p StringPrefix) (String, bool) {
	if !p.IsPrefixOfString(s) {
		return s, false
	}
	return s.Sub(p.PrefixLen(), s.n), true
}
