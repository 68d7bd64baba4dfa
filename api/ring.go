// Package api
// Author: momentics@gmail.com
//
// Typed ring buffer contract layered over the byte ring.

package api

// TypedBuffer converts element counts into byte spans over a ByteBuffer.
type TypedBuffer[T any] interface {
	// Push appends one element, returns false if it could not be written whole.
	Push(v T) bool
	// PushMany appends a slice, returns elements written (0 on overflow).
	PushMany(vs []T) int
	// Pop removes the oldest element, ok false if empty.
	Pop() (T, bool)
	// PopMany removes and returns n elements, ok false on insufficient data.
	PopMany(n int) ([]T, bool)
	// Peek returns a borrowed view of n elements without releasing them.
	Peek(n int) ([]T, bool)
	// Flush releases up to n previously peeked elements, returns count released.
	Flush(n int) int
	// RemoveAll forces the buffer back to empty.
	RemoveAll()

	// Count returns elements currently buffered.
	Count() int
	// Capacity returns the fixed element capacity.
	Capacity() int
	// Available returns elements that can still be written.
	Available() int

	IsEmpty() bool
	IsFull() bool
}
