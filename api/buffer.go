// Package api
// Author: momentics
//
// Byte-granular mirrored ring buffer contract for single-producer,
// single-consumer data exchange.
//
// The second half of the backing region aliases the first, so every
// read and write is a single contiguous span regardless of where the
// head or tail sits. Overflow and underflow clear the buffer whole:
// the design prefers fresh data over stale data, never a partial copy.

package api

// ByteBuffer is the byte-addressed ring contract.
type ByteBuffer interface {
	// Write copies src at the head and publishes it. A request larger
	// than the free space is an overflow: the buffer is cleared whole
	// and nothing is written. Returns bytes actually written.
	Write(src []byte) int

	// ReadView returns a contiguous borrowed view of n bytes at the
	// tail without releasing them. The view is valid until the next
	// Consume, Clear, or Close. A request larger than the used space
	// is an underflow: the buffer is cleared and ok is false.
	ReadView(n int) (view []byte, ok bool)

	// Consume releases up to n previously viewed bytes back to the
	// writable pool, capped at what is actually pending.
	Consume(n int) int

	// Read copies len(dst) bytes out and releases them in one step.
	Read(dst []byte) int

	// Clear releases every used byte in one step.
	Clear()

	// Len returns bytes currently holding unread data.
	Len() int
	// Cap returns the fixed byte capacity.
	Cap() int
	// Free returns bytes available for writing.
	Free() int

	IsEmpty() bool
	IsFull() bool
}

// Stats aggregates byte ring accounting counters.
type Stats struct {
	BytesWritten uint64
	BytesRead    uint64
	Overflows    uint64
	Underflows   uint64
	Clears       uint64
}
