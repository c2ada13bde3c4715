// Package bstring provides String, a byte string with a capacity fixed at
// construction, stored in a single vector.Vector[byte].
//
// String operates on bytes, not code points. Only FromUTF8 and Text check
// that the content is valid UTF-8; PushChar and PushStr append whatever
// encoding they are given. Derived strings (Trim, Slice, Split, Replace)
// are new values independent of the receiver and share its capacity.
package bstring

import (
	"fmt"
	"unicode/utf8"

	"github.com/mesh-intelligence/bounded/pkg/types"
	"github.com/mesh-intelligence/bounded/pkg/vector"
)

// String is a bounded byte string.
type String struct {
	data *vector.Vector[byte]
}

// New returns an empty string that can hold up to capacity bytes.
func New(capacity int) *String {
	return &String{data: vector.New[byte](capacity)}
}

// From returns a string of the given capacity holding the bytes of text.
// Panics with types.ErrCapacityExceeded if text does not fit.
func From(capacity int, text string) *String {
	s := New(capacity)
	s.pushBytes([]byte(text))
	return s
}

// Literal returns a string sized to hold exactly text.
func Literal(text string) *String {
	return From(len(text), text)
}

// FromBytes returns a string holding b without validating it as UTF-8.
// It is meant for callers that already know b is valid; invalid content
// surfaces later as an error from Text.
// Panics with types.ErrCapacityExceeded if b does not fit.
func FromBytes(capacity int, b []byte) *String {
	s := New(capacity)
	s.pushBytes(b)
	return s
}

// FromUTF8 validates the live bytes of v and returns a string with the same
// capacity. Invalid input returns an error wrapping types.ErrInvalidUTF8.
func FromUTF8(v *vector.Vector[byte]) (*String, error) {
	b := v.AsSlice()
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("from utf8: %w", types.ErrInvalidUTF8)
	}
	return FromBytes(v.Cap(), b), nil
}

// fromVector wraps an existing byte vector without copying.
func fromVector(v *vector.Vector[byte]) *String {
	return &String{data: v}
}

// reserve panics with types.ErrCapacityExceeded unless n more bytes fit.
func (s *String) reserve(n int) {
	if s.data.Len()+n > s.data.Cap() {
		panic(fmt.Errorf("%w: %d + %d bytes exceeds capacity %d",
			types.ErrCapacityExceeded, s.data.Len(), n, s.data.Cap()))
	}
}

// pushBytes appends b after checking that all of it fits.
func (s *String) pushBytes(b []byte) {
	s.reserve(len(b))
	for _, c := range b {
		s.data.Push(c)
	}
}
