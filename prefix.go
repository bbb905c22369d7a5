// prefix.go — literal candidates that can be matched at the start of an input.
//
// The candidate set is closed: Byte, Rune, Literal, Text and Array. Each
// knows how to test itself against an input and how to present itself as
// the expected value of a failed match. Pointers to candidates satisfy the
// same interfaces through Go method sets, so owned and borrowed candidates
// are interchangeable.
package xgxinput

import (
	"bytes"
	"unicode/utf8"
	"unsafe"
)

// BytesPrefix is a candidate that can prefix a byte input.
type BytesPrefix interface {
	// IsPrefixOfBytes reports whether the candidate is a prefix of in.
	IsPrefixOfBytes(in Bytes) bool
	// PrefixLen is the encoded length of the candidate in bytes.
	PrefixLen() int

	expectedSpan() Span
}

// StringPrefix is a candidate that can prefix a text input.
type StringPrefix interface {
	IsPrefixOfString(in String) bool
	PrefixLen() int

	expectedSpan() Span
}

// IsPrefixOf reports whether p prefixes in. It is the generic entry point
// used by literal-consuming reads.
func IsPrefixOf[P BytesPrefix](p P, in Bytes) bool { return p.IsPrefixOfBytes(in) }

// byteTable backs the expected value of Byte candidates so that a failed
// single byte match never allocates.
var byteTable = func() (t [256]byte) {
	for i := range t {
		t[i] = byte(i)
	}
	return t
}()

// Byte matches a single byte.
type Byte byte

func (b Byte) IsPrefixOfBytes(in Bytes) bool {
	return in.n > 0 && in.RawBytesUnchecked()[0] == byte(b)
}

func (b Byte) PrefixLen() int { return 1 }

func (b Byte) expectedSpan() Span {
	return Span{root: byteTable[:], off: int(b), n: 1}
}

// Rune matches a single code point. Against a byte input it is compared by
// its UTF-8 encoding. A Rune that is not a valid code point (a surrogate or
// a value above utf8.MaxRune) prefixes nothing and has length 0.
type Rune rune

func (r Rune) IsPrefixOfBytes(in Bytes) bool {
	if !utf8.ValidRune(rune(r)) {
		return false
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], rune(r))
	return bytes.HasPrefix(in.RawBytesUnchecked(), enc[:n])
}

func (r Rune) IsPrefixOfString(in String) bool {
	if !utf8.ValidRune(rune(r)) {
		return false
	}
	first, ok := in.FirstRune()
	return ok && first == rune(r)
}

func (r Rune) PrefixLen() int { return max(utf8.RuneLen(rune(r)), 0) }

func (r Rune) expectedSpan() Span {
	if r >= 0 && r < utf8.RuneSelf {
		return Byte(r).expectedSpan()
	}
	if !utf8.ValidRune(rune(r)) {
		return Span{}
	}
	s := string(rune(r))
	return Span{root: stringBytes(s), n: len(s)}
}

// Literal matches an exact byte sequence.
type Literal []byte

func (l Literal) IsPrefixOfBytes(in Bytes) bool {
	return bytes.HasPrefix(in.RawBytesUnchecked(), l)
}

func (l Literal) PrefixLen() int { return len(l) }

func (l Literal) expectedSpan() Span { return NewBytes(l).Span }

// Text matches an exact string, against either input flavor.
type Text string

func (t Text) IsPrefixOfBytes(in Bytes) bool {
	return bytes.HasPrefix(in.RawBytesUnchecked(), stringBytes(string(t)))
}

// IsPrefixOfString also requires that t ends on a code point boundary of in.
func (t Text) IsPrefixOfString(in String) bool {
	if !t.IsPrefixOfBytes(in.AsBytes()) {
		return false
	}
	raw := in.RawBytesUnchecked()
	return len(t) == len(raw) || utf8.RuneStart(raw[len(t)])
}

func (t Text) PrefixLen() int { return len(t) }

func (t Text) expectedSpan() Span {
	return Span{root: stringBytes(string(t)), n: len(t)}
}

// arrayN is the set of fixed array sizes usable as Array candidates.
type arrayN interface {
	[1]byte | [2]byte | [3]byte | [4]byte | [5]byte | [6]byte | [7]byte | [8]byte |
		[9]byte | [10]byte | [11]byte | [12]byte | [13]byte | [14]byte | [15]byte | [16]byte |
		[17]byte | [18]byte | [19]byte | [20]byte | [21]byte | [22]byte | [23]byte | [24]byte |
		[25]byte | [26]byte | [27]byte | [28]byte | [29]byte | [30]byte | [31]byte | [32]byte |
		[64]byte | [128]byte | [256]byte
}

// Array matches a fixed-size byte array.
type Array[A arrayN] struct{ v A }

// ArrayOf wraps a fixed-size byte array as a candidate.
func ArrayOf[A arrayN](a A) Array[A] { return Array[A]{v: a} }

func (a Array[A]) IsPrefixOfBytes(in Bytes) bool {
	return bytes.HasPrefix(in.RawBytesUnchecked(), a.bytes())
}

func (a Array[A]) PrefixLen() int { return len(a.v) }

func (a Array[A]) expectedSpan() Span {
	b := a.bytes()
	return Span{root: b, n: len(b)}
}

func (a *Array[A]) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.v)), len(a.v))
}
