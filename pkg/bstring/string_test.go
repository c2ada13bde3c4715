package bstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bounded/pkg/types"
	"github.com/mesh-intelligence/bounded/pkg/vector"
)

// panicErr runs f and returns the error it panicked with, or nil.
func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

// segments flattens a split result into Go strings.
func segments(v *vector.Vector[*String]) []string {
	out := []string{}
	for _, s := range v.All() {
		out = append(out, s.String())
	}
	return out
}

func TestConstructors(t *testing.T) {
	empty := New(16)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 16, empty.Cap())

	s := From(32, "hello")
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 32, s.Cap())

	lit := Literal("héllo")
	assert.Equal(t, len("héllo"), lit.Cap())
	assert.Equal(t, lit.Cap(), lit.Len())

	raw := FromBytes(8, []byte{'o', 'k'})
	assert.Equal(t, "ok", raw.String())
}

func TestFromOverflowPanics(t *testing.T) {
	err := panicErr(t, func() { From(3, "four") })
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)

	err = panicErr(t, func() { FromBytes(1, []byte("ab")) })
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
}

func TestFromUTF8(t *testing.T) {
	valid := vector.FromSlice(10, []byte("añb"))
	s, err := FromUTF8(valid)
	require.NoError(t, err)
	assert.Equal(t, "añb", s.String())
	assert.Equal(t, 10, s.Cap())

	invalid := vector.FromSlice(10, []byte{'a', 0xff, 'b'})
	s, err = FromUTF8(invalid)
	assert.ErrorIs(t, err, types.ErrInvalidUTF8)
	assert.Nil(t, s)
}

func TestText(t *testing.T) {
	text, err := From(8, "abc").Text()
	require.NoError(t, err)
	assert.Equal(t, "abc", text)

	_, err = FromBytes(8, []byte{0xc3}).Text()
	assert.ErrorIs(t, err, types.ErrInvalidUTF8)
}

func TestGet(t *testing.T) {
	s := From(8, "ab")
	b, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, byte('b'), b)

	_, ok = s.Get(2)
	assert.False(t, ok)
}

func TestStartsEndsWith(t *testing.T) {
	s := From(16, "[value]")
	assert.True(t, s.StartsWith('['))
	assert.False(t, s.StartsWith(']'))
	assert.True(t, s.EndsWith(']'))
	assert.False(t, s.EndsWith('['))

	empty := New(4)
	assert.False(t, empty.StartsWith('a'))
	assert.False(t, empty.EndsWith('a'))
}

func TestIsWhitespace(t *testing.T) {
	s := From(16, " \t\n\f\rx\v")
	for i := range 5 {
		assert.True(t, s.IsWhitespace(i), "index %d", i)
	}
	assert.False(t, s.IsWhitespace(5))
	assert.False(t, s.IsWhitespace(6), "vertical tab is not ASCII whitespace")

	err := panicErr(t, func() { s.IsWhitespace(7) })
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *String
		want bool
	}{
		{name: "same bytes", a: From(8, "abc"), b: From(8, "abc"), want: true},
		{name: "different capacity", a: From(8, "abc"), b: Literal("abc"), want: true},
		{name: "repeated bytes", a: From(8, "aaaa"), b: From(8, "aaaa"), want: true},
		{name: "both empty", a: New(2), b: New(5), want: true},
		{name: "different length", a: From(8, "abc"), b: From(8, "ab"), want: false},
		{name: "one byte differs", a: From(8, "abc"), b: From(8, "abd"), want: false},
		{name: "nil other", a: From(8, "abc"), b: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		pattern string
		want    bool
	}{
		{name: "suffix pattern", s: "text, pattern", pattern: "pattern", want: true},
		{name: "pattern longer than string", s: "text", pattern: "pattern", want: false},
		{name: "empty pattern", s: "text", pattern: "", want: true},
		{name: "empty string empty pattern", s: "", pattern: "", want: true},
		{name: "whole string", s: "text", pattern: "text", want: true},
		{name: "prefix", s: "text", pattern: "te", want: true},
		{name: "middle", s: "text", pattern: "ex", want: true},
		{name: "absent", s: "text", pattern: "xt!", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From(32, tt.s).Contains(tt.pattern))
		})
	}
}

func TestFind(t *testing.T) {
	s := From(32, "hello world! so so")

	tests := []struct {
		name    string
		pattern string
		want    int
		found   bool
	}{
		{name: "inner match", pattern: "o s", want: 14, found: true},
		{name: "prefix", pattern: "hello", want: 0, found: true},
		{name: "first of repeats", pattern: "so", want: 13, found: true},
		{name: "suffix", pattern: "so so", want: 13, found: true},
		{name: "empty pattern", pattern: "", found: false},
		{name: "missing", pattern: "xyz", found: false},
		{name: "longer than string", pattern: "hello world! so so!", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Find(tt.pattern)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFindScenario(t *testing.T) {
	got, ok := From(32, "helo so").Find("o s")
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestFindChar(t *testing.T) {
	s := From(16, "a=b=c")
	got, ok := s.FindChar('=')
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = s.FindChar('#')
	assert.False(t, ok)
}

func TestPushChar(t *testing.T) {
	s := New(8)
	s.PushChar('a')
	s.PushChar('é')
	s.PushChar('€')

	assert.Equal(t, "aé€", s.String())
	assert.Equal(t, 1+2+3, s.Len())
}

func TestPushCharOverflowIsAtomic(t *testing.T) {
	s := From(3, "ab")

	err := panicErr(t, func() { s.PushChar('é') })
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Equal(t, "ab", s.String())
}

func TestPushStr(t *testing.T) {
	s := From(16, "ab")
	s.PushStr("cñd")
	assert.Equal(t, "abcñd", s.String())

	raw := New(4)
	raw.PushStr(string([]byte{'x', 0xff}))
	assert.Equal(t, []byte{'x', 0xff}, raw.Bytes())

	err := panicErr(t, func() { s.PushStr("0123456789abc") })
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Equal(t, "abcñd", s.String())
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "both sides", in: "   hello world\t", want: "hello world"},
		{name: "nothing to trim", in: "hello", want: "hello"},
		{name: "all whitespace", in: " \t\r\n ", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "inner whitespace kept", in: "\na  b\n", want: "a  b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := From(32, tt.in)
			trimmed := s.Trim()
			assert.Equal(t, tt.want, trimmed.String())
			assert.Equal(t, s.Cap(), trimmed.Cap())
			assert.True(t, trimmed.Trim().Equal(trimmed), "Trim must be idempotent")
			assert.Equal(t, tt.in, s.String(), "source must be unchanged")
		})
	}
}

func TestSlice(t *testing.T) {
	s := From(16, "hello world")

	assert.Equal(t, "hello", s.Slice(0, 5).String())
	assert.Equal(t, "world", s.Slice(6, 11).String())
	assert.Equal(t, "", s.Slice(3, 3).String())

	rebuilt := New(16)
	rebuilt.PushStr(s.Slice(0, 4).String())
	rebuilt.PushStr(s.Slice(4, 11).String())
	assert.True(t, rebuilt.Equal(s))

	err := panicErr(t, func() { s.Slice(0, 12) })
	assert.ErrorIs(t, err, types.ErrInvalidRange)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		pattern string
		want    []string
	}{
		{name: "single space", in: "hello world! so so", pattern: " ", want: []string{"hello", "world!", "so", "so"}},
		{name: "multi-byte pattern", in: "a, b, c", pattern: ", ", want: []string{"a", "b", "c"}},
		{name: "no match", in: "abc", pattern: ",", want: []string{"abc"}},
		{name: "pattern longer than string", in: "abc", pattern: "abcd", want: []string{"abc"}},
		{name: "leading delimiter", in: ",a", pattern: ",", want: []string{"", "a"}},
		{name: "consecutive delimiters", in: "a,,b", pattern: ",", want: []string{"a", "", "b"}},
		{name: "trailing delimiter", in: "a,b,", pattern: ",", want: []string{"a", "b"}},
		{name: "non-overlapping", in: "aaaa", pattern: "aa", want: []string{"", ""}},
		{name: "empty pattern", in: "abc", pattern: "", want: []string{}},
		{name: "empty string", in: "", pattern: ",", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(32, tt.in).Split(tt.pattern)
			assert.Equal(t, tt.want, segments(got))
		})
	}
}

func TestSplitChar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "spaces", in: "hello world! so so", want: []string{"hello", "world!", "so", "so"}},
		{name: "no delimiter", in: "abc", want: []string{"abc"}},
		{name: "leading delimiter absorbed", in: " ab cd", want: []string{"ab", "cd"}},
		{name: "consecutive delimiters", in: "a  b", want: []string{"a", "", "b"}},
		{name: "trailing delimiter kept in last segment", in: "a b ", want: []string{"a", "b "}},
		{name: "single byte", in: "x", want: []string{"x"}},
		{name: "single delimiter", in: " ", want: []string{" "}},
		{name: "empty", in: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(32, tt.in).SplitChar(' ')
			assert.Equal(t, tt.want, segments(got))
		})
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		from, to string
		want     string
	}{
		{name: "single byte", in: "hello world", from: "h", to: "a", want: "aello world"},
		{name: "every occurrence", in: "so so so", from: "so", to: "no", want: "no no no"},
		{name: "longer replacement", in: "a-b", from: "-", to: "--", want: "a--b"},
		{name: "removal", in: "a-b-c", from: "-", to: "", want: "abc"},
		{name: "non-overlapping", in: "aaa", from: "aa", to: "b", want: "ba"},
		{name: "match at end", in: "xyab", from: "ab", to: "!", want: "xy!"},
		{name: "no match", in: "abc", from: "z", to: "y", want: "abc"},
		{name: "empty from is identity", in: "abc", from: "", to: "zz", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := From(32, tt.in)
			got := s.Replace(tt.from, tt.to)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, s.Cap(), got.Cap())
		})
	}
}

func TestReplaceOverflowPanics(t *testing.T) {
	s := Literal("aaa")
	err := panicErr(t, func() { s.Replace("a", "bb") })
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Equal(t, "aaa", s.String())
}

func TestTrimThenReplace(t *testing.T) {
	s := Literal("   hello world\t").Trim().Replace("h", "a")
	text, err := s.Text()
	require.NoError(t, err)
	assert.Equal(t, "aello world", text)
}

func TestClone(t *testing.T) {
	s := From(8, "ab")
	c := s.Clone()
	c.PushChar('c')

	assert.Equal(t, "ab", s.String())
	assert.Equal(t, "abc", c.String())
}
