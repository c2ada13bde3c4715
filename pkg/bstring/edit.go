package bstring

import (
	"unicode/utf8"

	"github.com/mesh-intelligence/bounded/pkg/vector"
)

// PushChar appends the UTF-8 encoding of c.
// Panics with types.ErrCapacityExceeded, before writing any byte, if the
// encoding does not fit.
func (s *String) PushChar(c rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], c)
	s.pushBytes(buf[:n])
}

// PushStr appends each character of text in order. Bytes of text that do
// not form valid UTF-8 are appended unchanged.
// Panics with types.ErrCapacityExceeded, before writing any byte, if text
// does not fit.
func (s *String) PushStr(text string) {
	s.reserve(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			s.data.Push(text[i])
		} else {
			s.PushChar(r)
		}
		i += size
	}
}

// Trim returns a copy with leading and trailing ASCII whitespace removed.
func (s *String) Trim() *String {
	start, end := 0, s.Len()
	for start < end && s.IsWhitespace(start) {
		start++
	}
	for end > start && s.IsWhitespace(end-1) {
		end--
	}
	return s.Slice(start, end)
}

// Slice returns the bytes in [start, end) as a new string.
// Panics with types.ErrInvalidRange unless 0 <= start <= end <= Len().
func (s *String) Slice(start, end int) *String {
	return fromVector(s.data.Slice(start, end))
}

// Split cuts s around every non-overlapping occurrence of pattern, scanning
// left to right. Empty segments between or before delimiters are kept; the
// remainder after the last delimiter is kept only if it is non-empty.
// An empty pattern yields no segments.
func (s *String) Split(pattern string) *vector.Vector[*String] {
	n := s.Len()
	out := vector.New[*String](n + 1)
	if len(pattern) == 0 {
		return out
	}

	start, i := 0, 0
	for i+len(pattern) <= n {
		if !s.matchAt(i, pattern) {
			i++
			continue
		}
		out.Push(s.Slice(start, i))
		start = i + len(pattern)
		i = start
	}
	if start < n {
		out.Push(s.Slice(start, n))
	}
	return out
}

// SplitChar cuts s at every byte equal to byte(c). A delimiter at index 0 is
// absorbed instead of producing an empty first segment, and the final byte
// is never treated as a delimiter, so the last segment always ends with it.
// An empty string yields no segments.
func (s *String) SplitChar(c rune) *vector.Vector[*String] {
	n := s.Len()
	out := vector.New[*String](n + 1)
	if n == 0 {
		return out
	}

	delim := byte(c)
	b := s.Bytes()
	start := 0
	for i := 0; i < n-1; i++ {
		if b[i] != delim {
			continue
		}
		if i == 0 {
			start = 1
			continue
		}
		out.Push(s.Slice(start, i))
		start = i + 1
	}
	out.Push(s.Slice(start, n))
	return out
}

// Replace returns a copy of s with every non-overlapping occurrence of from,
// scanning left to right, replaced by to. An empty from matches nowhere.
// The result keeps the receiver's capacity and panics with
// types.ErrCapacityExceeded if the replacement does not fit.
func (s *String) Replace(from, to string) *String {
	if len(from) == 0 {
		return s.Clone()
	}

	out := New(s.Cap())
	b := s.Bytes()
	replacement := []byte(to)
	for i := 0; i < len(b); {
		if i+len(from) <= len(b) && s.matchAt(i, from) {
			out.pushBytes(replacement)
			i += len(from)
			continue
		}
		out.pushBytes(b[i : i+1])
		i++
	}
	return out
}
