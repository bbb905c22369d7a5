package xgxinput

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestPrefix_Bytes(t *testing.T) {
	t.Parallel()

	hello := NewBytes([]byte("hello"))
	accent := NewBytes([]byte("été"))

	cases := []struct {
		name string
		p    BytesPrefix
		in   Bytes
		want bool
	}{
		{"byte match", Byte('h'), hello, true},
		{"byte mismatch", Byte('e'), hello, false},
		{"byte on empty", Byte('h'), NewBytes(nil), false},
		{"ascii rune", Rune('h'), hello, true},
		{"multi-byte rune", Rune('é'), accent, true},
		{"multi-byte rune mismatch", Rune('è'), accent, false},
		{"surrogate rune", Rune(0xD800), NewBytes([]byte("\xef\xbf\xbdZ")), false},
		{"rune above max", Rune(utf8.MaxRune + 1), NewBytes([]byte("\xef\xbf\xbd")), false},
		{"negative rune", Rune(-1), hello, false},
		{"literal", Literal("hel"), hello, true},
		{"literal longer than input", Literal("hello!"), hello, false},
		{"empty literal", Literal(nil), hello, true},
		{"text", Text("he"), hello, true},
		{"text not at start", Text("llo"), hello, false},
		{"array", ArrayOf([3]byte{'h', 'e', 'l'}), hello, true},
		{"array mismatch", ArrayOf([2]byte{'e', 'l'}), hello, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.p.IsPrefixOfBytes(tc.in))
			require.Equal(t, tc.want, IsPrefixOf(tc.p, tc.in))
		})
	}
}

func TestPrefix_String(t *testing.T) {
	t.Parallel()

	in := NewString("éclair")
	require.True(t, Rune('é').IsPrefixOfString(in))
	require.False(t, Rune('e').IsPrefixOfString(in))
	require.False(t, Rune('é').IsPrefixOfString(NewString("")))
	require.False(t, Rune(0xD800).IsPrefixOfString(NewString("\uFFFD")))
	require.True(t, Text("écl").IsPrefixOfString(in))
	require.False(t, Text("clair").IsPrefixOfString(in))
	require.False(t, Text("\xc3").IsPrefixOfString(in))
}

func TestPrefix_PointerCandidatesSatisfyCapability(t *testing.T) {
	t.Parallel()

	hello := NewBytes([]byte("hello"))
	b := Byte('h')
	lit := Literal("he")
	arr := ArrayOf([1]byte{'h'})

	for _, p := range []BytesPrefix{&b, &lit, &arr} {
		require.True(t, p.IsPrefixOfBytes(hello))
	}
	r := Rune('h')
	var sp StringPrefix = &r
	require.True(t, sp.IsPrefixOfString(NewString("hello")))
}

func TestPrefix_LenAndExpectedSpan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		p    BytesPrefix
		want string
	}{
		{Byte('x'), "x"},
		{Rune('x'), "x"},
		{Rune('é'), "é"},
		{Literal("124"), "124"},
		{Text("124"), "124"},
		{ArrayOf([3]byte{'1', '2', '4'}), "124"},
		{Rune(0xD800), ""},
		{Rune(-1), ""},
	}
	for _, tc := range cases {
		require.Equal(t, len(tc.want), tc.p.PrefixLen())
		require.Equal(t, tc.want, string(tc.p.expectedSpan().RawBytesUnchecked()))
	}
}

func TestString_CutPrefix(t *testing.T) {
	t.Parallel()

	in := NewString("éclair")
	rest, ok := in.CutPrefix(Rune('é'))
	require.True(t, ok)
	require.Equal(t, "clair", string(rest.RawBytesUnchecked()))
	require.True(t, rest.IsWithin(in.Span))

	rest, ok = rest.CutPrefix(Text("cla"))
	require.True(t, ok)
	require.Equal(t, "ir", string(rest.RawBytesUnchecked()))

	same, ok := in.CutPrefix(Text("clair"))
	require.False(t, ok)
	require.Equal(t, in, same)

	same, ok = in.CutPrefix(Rune(0xD800))
	require.False(t, ok)
	require.Equal(t, in, same)
}
