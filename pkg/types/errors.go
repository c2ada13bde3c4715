package types

import "errors"

// Fatal container errors. Operations that cannot complete within a fixed
// capacity or a valid range panic with an error wrapping one of these.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrCapacityInvalid  = errors.New("capacity must not be negative")
	ErrCapacityShrink   = errors.New("new capacity is smaller than current")
	ErrInvalidRange     = errors.New("invalid range")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// Recoverable container errors, returned as values.
var (
	ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")
)

// Snapshot store errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrNotFound    = errors.New("snapshot not found")
	ErrInvalidID   = errors.New("invalid snapshot ID")
	ErrInvalidName = errors.New("invalid snapshot name")
)
