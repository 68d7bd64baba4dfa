// File: buffer/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed SPSC buffer adapter. One producer calls the push family, one
// consumer the pop/peek/flush family; the byte ring underneath orders
// publication. Overflow and underflow inherit the byte ring's
// clear-whole policy, so callers should check Count and Available
// before sizing requests.

package buffer

import (
	"fmt"
	"math"
	"os"
	"unsafe"

	"github.com/momentics/mirrorbuf/api"
	"github.com/momentics/mirrorbuf/ring"
)

// Ensure compile-time interface compliance.
var _ api.TypedBuffer[int] = (*Ring[int])(nil)

// Ring is a fixed-capacity typed ring over one exclusively owned
// ByteRing. T must be a pointer-free type: element bytes live in the
// mapped region, which the garbage collector does not scan.
type Ring[T any] struct {
	br       *ring.ByteRing
	elemSize int
}

// New allocates a typed ring holding at least minElems elements.
// The byte capacity is rounded up so it is simultaneously a page
// multiple and an element-size multiple. Fails when the count exceeds
// the representable byte range or the mirror mapping cannot be made.
func New[T any](minElems int) (*Ring[T], error) {
	var zero T
	es := int(unsafe.Sizeof(zero))
	if es == 0 {
		return nil, fmt.Errorf("buffer: %w", api.ErrZeroSizedElement)
	}
	if minElems <= 0 {
		return nil, fmt.Errorf("buffer: %w: element count %d", api.ErrInvalidArgument, minElems)
	}
	if minElems > math.MaxInt/es {
		return nil, fmt.Errorf("buffer: %w: %d elements of %d bytes", api.ErrCapacityExceeded, minElems, es)
	}
	// Go guarantees sizeof is a multiple of alignof, so an element-size
	// multiple offset into the page-aligned mapping is always aligned
	// for T, including after wraparound through the mirror.
	gran := lcm(os.Getpagesize(), es)
	minBytes := minElems * es
	capBytes := (minBytes + gran - 1) / gran * gran
	if capBytes < minBytes {
		return nil, fmt.Errorf("buffer: %w", api.ErrCapacityExceeded)
	}
	br, err := ring.New(capBytes)
	if err != nil {
		return nil, err
	}
	return &Ring[T]{br: br, elemSize: es}, nil
}

// Push appends one element. Returns false only when the element could
// not be written whole, which post-construction means the ring was
// full or disabled.
func (rb *Ring[T]) Push(v T) bool {
	src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), rb.elemSize)
	return rb.br.Write(src) == rb.elemSize
}

// PushMany appends a slice of elements and returns how many were
// written. Empty input is a no-op returning 0. A request exceeding the
// free space clears the ring per the overflow policy and writes 0
// elements, never a partial prefix.
func (rb *Ring[T]) PushMany(vs []T) int {
	if len(vs) == 0 {
		return 0
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*rb.elemSize)
	return rb.br.Write(src) / rb.elemSize
}

// Pop removes and returns the oldest element, ok false if empty.
func (rb *Ring[T]) Pop() (T, bool) {
	var out T
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&out)), rb.elemSize)
	if rb.br.Read(dst) != rb.elemSize {
		var zero T
		return zero, false
	}
	return out, true
}

// PopMany removes and returns n elements in order. When fewer than n
// are available the result is nil, false; note that requesting more
// than Count while the ring is non-empty trips the underflow policy
// and clears it.
func (rb *Ring[T]) PopMany(n int) ([]T, bool) {
	if n <= 0 {
		return nil, false
	}
	out := make([]T, n)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*rb.elemSize)
	if rb.br.Read(dst) != n*rb.elemSize {
		return nil, false
	}
	return out, true
}

// Peek returns a borrowed view of the oldest n elements without
// releasing them; Flush commits the release. The view aliases ring
// memory and stays valid until the next Flush, RemoveAll, or Close.
// Same availability policy as PopMany.
func (rb *Ring[T]) Peek(n int) ([]T, bool) {
	if n <= 0 {
		return nil, false
	}
	view, ok := rb.br.ReadView(n * rb.elemSize)
	if !ok {
		return nil, false
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&view[0])), n), true
}

// Flush releases up to n previously peeked elements and returns how
// many were actually released.
func (rb *Ring[T]) Flush(n int) int {
	if n <= 0 {
		return 0
	}
	return rb.br.Consume(n*rb.elemSize) / rb.elemSize
}

// RemoveAll forces the ring back to empty from any state.
func (rb *Ring[T]) RemoveAll() { rb.br.Clear() }

// Count returns elements currently buffered.
func (rb *Ring[T]) Count() int { return rb.br.Len() / rb.elemSize }

// Capacity returns the fixed element capacity.
func (rb *Ring[T]) Capacity() int { return rb.br.Cap() / rb.elemSize }

// Available returns elements that can still be written.
func (rb *Ring[T]) Available() int { return rb.br.Free() / rb.elemSize }

// IsEmpty reports whether no elements are buffered.
func (rb *Ring[T]) IsEmpty() bool { return rb.br.IsEmpty() }

// IsFull reports whether every element slot is occupied.
func (rb *Ring[T]) IsFull() bool { return rb.br.IsFull() }

// Head returns the producer offset in element units.
func (rb *Ring[T]) Head() int { return rb.br.Head() / rb.elemSize }

// Tail returns the consumer offset in element units.
func (rb *Ring[T]) Tail() int { return rb.br.Tail() / rb.elemSize }

// ElemSize returns the byte stride of one element.
func (rb *Ring[T]) ElemSize() int { return rb.elemSize }

// SetRecorder installs an event recorder on the underlying byte ring.
// Must be called before the ring is shared.
func (rb *Ring[T]) SetRecorder(rec api.EventRecorder) { rb.br.SetRecorder(rec) }

// Stats returns the underlying byte ring counters.
func (rb *Ring[T]) Stats() api.Stats { return rb.br.Stats() }

// Bytes exposes the underlying byte ring for probe registration.
func (rb *Ring[T]) Bytes() *ring.ByteRing { return rb.br }

// Close releases the mapping exactly once.
func (rb *Ring[T]) Close() error { return rb.br.Close() }

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
