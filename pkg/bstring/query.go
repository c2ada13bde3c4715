package bstring

import (
	"fmt"
	"unicode/utf8"

	"github.com/mesh-intelligence/bounded/pkg/types"
)

// Bytes returns a read-only view of the string's bytes.
func (s *String) Bytes() []byte {
	return s.data.AsSlice()
}

// Text returns the content as a Go string. It returns an error wrapping
// types.ErrInvalidUTF8 if the bytes are not valid UTF-8.
func (s *String) Text() (string, error) {
	b := s.Bytes()
	if !utf8.Valid(b) {
		return "", fmt.Errorf("as text: %w", types.ErrInvalidUTF8)
	}
	return string(b), nil
}

// String returns the raw bytes converted to a Go string, valid or not.
func (s *String) String() string {
	return string(s.Bytes())
}

// Len returns the length in bytes.
func (s *String) Len() int {
	return s.data.Len()
}

// Cap returns the fixed capacity in bytes.
func (s *String) Cap() int {
	return s.data.Cap()
}

// IsEmpty reports whether the string has no bytes.
func (s *String) IsEmpty() bool {
	return s.data.IsEmpty()
}

// Get returns the byte at index, or false when index is out of range.
func (s *String) Get(index int) (byte, bool) {
	return s.data.Get(index)
}

// StartsWith reports whether the first byte equals byte(c). Only single-byte
// characters compare meaningfully. An empty string never starts with anything.
func (s *String) StartsWith(c rune) bool {
	first, ok := s.Get(0)
	return ok && first == byte(c)
}

// EndsWith reports whether the last byte equals byte(c). It has the same
// single-byte limitation as StartsWith.
func (s *String) EndsWith(c rune) bool {
	last, ok := s.Get(s.Len() - 1)
	return ok && last == byte(c)
}

// IsWhitespace reports whether the byte at index is ASCII whitespace.
// Panics with types.ErrIndexOutOfRange if index is outside [0, Len()).
func (s *String) IsWhitespace(index int) bool {
	b, ok := s.Get(index)
	if !ok {
		panic(fmt.Errorf("%w: %d of length %d", types.ErrIndexOutOfRange, index, s.Len()))
	}
	return isASCIISpace(b)
}

// Equal reports whether s and other hold the same bytes. Capacity is not
// compared.
func (s *String) Equal(other *String) bool {
	if other == nil || s.Len() != other.Len() {
		return false
	}
	a, b := s.Bytes(), other.Bytes()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy with the same capacity.
func (s *String) Clone() *String {
	return fromVector(s.data.Clone())
}

// isASCIISpace matches space, tab, line feed, form feed and carriage return.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
