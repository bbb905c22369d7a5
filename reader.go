// reader.go — a cursor over a byte input, generic over its error
// representation.
//
// A Reader[E] reports every failure by building one of the Expected kinds
// from spans of its input and handing it to the zero value of E. The same
// parsing code therefore runs as a cheap check (E = Fatal or Invalid) or as a
// fully diagnostic one (E = Verbose) depending only on the type argument.
//
// Reads never allocate on success and never buffer: when input runs short
// the failure's retry requirement tells the caller how much more to fetch
// before calling ReadAll again.
package xgxinput

import (
	"bytes"
	"encoding/binary"
)

// Reader consumes a Bytes input from the front.
type Reader[E Error[E]] struct {
	input Bytes
	pos   int
}

// NewReader returns a reader positioned at the start of in.
func NewReader[E Error[E]](in Bytes) *Reader[E] {
	return &Reader[E]{input: in}
}

// ReadAll runs fn over in and requires that it consumes every byte. Left
// over bytes yield a fatal ExpectedLength ("at most 0 bytes").
func ReadAll[E Error[E]](in Bytes, fn func(r *Reader[E]) error) error {
	r := NewReader[E](in)
	if err := fn(r); err != nil {
		return err
	}
	if !r.AtEnd() {
		var zero E
		return zero.FromExpectedLength(NewExpectedLengthRange("read all", 0, 0, r.Remaining().Span, in.Span))
	}
	return nil
}

// ReadPartial runs fn over in and returns whatever fn left unread.
func ReadPartial[E Error[E]](in Bytes, fn func(r *Reader[E]) error) (Bytes, error) {
	r := NewReader[E](in)
	if err := fn(r); err != nil {
		return Bytes{}, err
	}
	return r.Remaining(), nil
}

// Context runs fn and wraps any escaping failure with operation and the
// reader's whole input. Errors that are not E pass through unchanged.
func (r *Reader[E]) Context(operation string, fn func(r *Reader[E]) error) error {
	err := fn(r)
	if err == nil {
		return nil
	}
	if e, ok := err.(E); ok {
		return e.FromContext(r.input.Span, Operation(operation))
	}
	return err
}

// Input returns the whole input the reader was created over.
func (r *Reader[E]) Input() Bytes { return r.input }

// Remaining returns the unread input.
func (r *Reader[E]) Remaining() Bytes { return r.input.Sub(r.pos, r.input.Len()) }

// AtEnd reports whether every byte has been read.
func (r *Reader[E]) AtEnd() bool { return r.pos == r.input.Len() }

// Peek returns the next byte without consuming it.
func (r *Reader[E]) Peek() (byte, bool) {
	if r.AtEnd() {
		return 0, false
	}
	return r.input.RawBytesUnchecked()[r.pos], true
}

func (r *Reader[E]) advance(n int) Bytes {
	out := r.input.Sub(r.pos, r.pos+n)
	r.pos += n
	return out
}

func checkCount(n int) {
	if n < 0 {
		panic("xgxinput: negative read length")
	}
}

func (r *Reader[E]) short(operation string, need int) E {
	var zero E
	return zero.FromExpectedLength(NewExpectedLength(operation, need, r.Remaining().Span, r.input.Span))
}

// Take reads exactly n bytes. It panics if n is negative.
func (r *Reader[E]) Take(n int) (Bytes, error) {
	checkCount(n)
	if r.Remaining().Len() < n {
		return Bytes{}, r.short("take", n)
	}
	return r.advance(n), nil
}

// Skip discards exactly n bytes. It panics if n is negative.
func (r *Reader[E]) Skip(n int) error {
	checkCount(n)
	if r.Remaining().Len() < n {
		return r.short("skip", n)
	}
	r.pos += n
	return nil
}

// TakeWhile reads bytes while pred holds. It never fails.
func (r *Reader[E]) TakeWhile(pred func(b byte) bool) Bytes {
	raw := r.Remaining().RawBytesUnchecked()
	n := 0
	for n < len(raw) && pred(raw[n]) {
		n++
	}
	return r.advance(n)
}

// TakeUntil reads bytes up to, but not including, the first b. When b is
// absent it reads everything left. It never fails.
func (r *Reader[E]) TakeUntil(b byte) Bytes {
	raw := r.Remaining().RawBytesUnchecked()
	n := bytes.IndexByte(raw, b)
	if n < 0 {
		n = len(raw)
	}
	return r.advance(n)
}

// TakeRemaining reads everything left.
func (r *Reader[E]) TakeRemaining() Bytes {
	return r.advance(r.Remaining().Len())
}

// Consume reads p, failing with an ExpectedValue when the input does not
// start with it.
func (r *Reader[E]) Consume(p BytesPrefix) error {
	rem := r.Remaining()
	if p.IsPrefixOfBytes(rem) {
		r.pos += p.PrefixLen()
		return nil
	}
	span := rem.Span.Sub(0, min(p.PrefixLen(), rem.Len()))
	var zero E
	return zero.FromExpectedValue(NewExpectedValue("consume", p.expectedSpan(), span, r.input.Span))
}

// ConsumeByte reads b.
func (r *Reader[E]) ConsumeByte(b byte) error { return r.Consume(Byte(b)) }

// TakeString reads n bytes that must be valid UTF-8. A code point cut off by
// the end of the whole input is reported as retryable. It panics if n is
// negative.
func (r *Reader[E]) TakeString(n int) (String, error) {
	checkCount(n)
	if r.Remaining().Len() < n {
		return String{}, r.short("take string", n)
	}
	taken := r.input.Sub(r.pos, r.pos+n)
	bad, failed := taken.checkUTF8()
	if !failed {
		r.pos += n
		return String{taken.Span}, nil
	}
	retry, canRetry := bad.RetryRequirement()
	if r.pos+n < r.input.Len() {
		canRetry = false
	}
	var zero E
	return String{}, zero.FromExpectedValid(
		NewExpectedValid("take string", bad.Expected(), bad.Span(), r.input.Span, retry, canRetry))
}

// ReadU8 reads one byte.
func (r *Reader[E]) ReadU8() (uint8, error) {
	b, ok := r.Peek()
	if !ok {
		return 0, r.short("read u8", 1)
	}
	r.pos++
	return b, nil
}

// ReadU16BE reads a big-endian uint16.
func (r *Reader[E]) ReadU16BE() (uint16, error) {
	if r.Remaining().Len() < 2 {
		return 0, r.short("read u16be", 2)
	}
	return binary.BigEndian.Uint16(r.advance(2).RawBytesUnchecked()), nil
}

// ReadU32BE reads a big-endian uint32.
func (r *Reader[E]) ReadU32BE() (uint32, error) {
	if r.Remaining().Len() < 4 {
		return 0, r.short("read u32be", 4)
	}
	return binary.BigEndian.Uint32(r.advance(4).RawBytesUnchecked()), nil
}
