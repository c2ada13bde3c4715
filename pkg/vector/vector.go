// Package vector provides Vector, a sequence container whose capacity is
// fixed when it is constructed.
//
// Storage for every slot is allocated once, up front, and never grows.
// Slots in [0, Len()) are live; the remaining slots hold the zero value of T
// and are never handed out. Operations that would exceed the capacity or read
// outside a valid range panic with an error wrapping a sentinel from
// pkg/types.
package vector

import (
	"fmt"
	"iter"

	"github.com/mesh-intelligence/bounded/pkg/types"
)

// Vector is a bounded, index-addressable sequence of T.
// Copying a Vector value shares its storage; use Clone for an independent copy.
type Vector[T any] struct {
	data   []T
	length int
}

// New returns an empty vector that can hold up to capacity elements.
// Panics with types.ErrCapacityInvalid if capacity is negative.
func New[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		panic(fmt.Errorf("%w: %d", types.ErrCapacityInvalid, capacity))
	}
	return &Vector[T]{data: make([]T, capacity)}
}

// FromSlice returns a vector of the given capacity holding the leading
// elements of values. Elements beyond capacity are dropped silently.
func FromSlice[T any](capacity int, values []T) *Vector[T] {
	v := New[T](capacity)
	v.length = copy(v.data, values)
	return v
}

// Of returns a vector sized to hold exactly the given values.
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(len(values), values)
}

// Push appends value at index Len().
// Panics with types.ErrCapacityExceeded if the vector is full; the vector is
// left unchanged in that case.
func (v *Vector[T]) Push(value T) {
	if err := v.TryPush(value); err != nil {
		panic(err)
	}
}

// TryPush appends value like Push but reports a full vector as an error
// wrapping types.ErrCapacityExceeded instead of panicking.
func (v *Vector[T]) TryPush(value T) error {
	if v.length >= len(v.data) {
		return fmt.Errorf("%w: vector holds %d elements", types.ErrCapacityExceeded, len(v.data))
	}
	v.data[v.length] = value
	v.length++
	return nil
}

// Get returns the element at index and true, or the zero value and false
// when index is outside [0, Len()).
func (v *Vector[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.length {
		var zero T
		return zero, false
	}
	return v.data[index], true
}

// Set overwrites the element at index. Indices outside [0, Len()) are
// ignored: Set never extends the vector.
func (v *Vector[T]) Set(index int, value T) {
	if index < 0 || index >= v.length {
		return
	}
	v.data[index] = value
}

// Slice returns a new vector of the same capacity holding the elements in
// [start, end). Panics with types.ErrInvalidRange unless
// 0 <= start <= end <= Len().
func (v *Vector[T]) Slice(start, end int) *Vector[T] {
	if start < 0 || start > end || end > v.length {
		panic(fmt.Errorf("%w: [%d, %d) of length %d", types.ErrInvalidRange, start, end, v.length))
	}
	return FromSlice(len(v.data), v.data[start:end])
}

// Resize returns a new vector with the given capacity holding every element
// of v in order. Panics with types.ErrCapacityShrink if capacity is smaller
// than Cap().
func (v *Vector[T]) Resize(capacity int) *Vector[T] {
	if capacity < len(v.data) {
		panic(fmt.Errorf("%w: %d < %d", types.ErrCapacityShrink, capacity, len(v.data)))
	}
	return FromSlice(capacity, v.AsSlice())
}

// Clone returns an independent copy of v with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(len(v.data), v.AsSlice())
}

// AsSlice returns a view of the live elements. The view's capacity is
// clipped to its length, so appending to it never writes into v.
// Callers must treat the view as read-only.
func (v *Vector[T]) AsSlice() []T {
	return v.data[:v.length:v.length]
}

// All yields each live element together with its index.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.length {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// IsFull reports whether another Push would fail.
func (v *Vector[T]) IsFull() bool {
	return v.length == len(v.data)
}

// String formats the live elements the way fmt prints a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.AsSlice())
}
