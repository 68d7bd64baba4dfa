// File: ring/bytering.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ByteRing is a lock-free byte ring for one producer and one consumer.
// The producer owns the write counter, the consumer owns the read
// counter; each store publishes the memory operations before it.

package ring

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/momentics/mirrorbuf/api"
	"github.com/momentics/mirrorbuf/internal/mirror"
)

// Ensure compile-time interface compliance.
var _ api.ByteBuffer = (*ByteRing)(nil)

// ByteRing is a fixed-capacity byte ring over a mirrored region.
type ByteRing struct {
	region   *mirror.Region
	buf      []byte // 2*capacity view, second half aliases the first
	capacity int

	widx atomic.Uint64 // total bytes ever written, producer-owned
	_    [64]byte      // Padding for hot/cold separation
	ridx atomic.Uint64 // total bytes ever released, consumer-owned
	_    [64]byte      // Padding to separate counters

	// pending counts bytes handed out via ReadView and not yet
	// consumed. Consumer-owned, no atomics needed.
	pending int

	enabled atomic.Bool
	rec     api.EventRecorder

	bytesIn    atomic.Uint64
	bytesOut   atomic.Uint64
	overflows  atomic.Uint64
	underflows atomic.Uint64
	clears     atomic.Uint64

	closeOnce sync.Once
}

// New allocates a byte ring of at least minSize bytes, rounded up to a
// page multiple. Fails when the mirror mapping cannot be established
// within its retry budget.
func New(minSize int) (*ByteRing, error) {
	if minSize <= 0 {
		return nil, fmt.Errorf("ring: %w: size %d", api.ErrInvalidArgument, minSize)
	}
	region, err := mirror.Map(minSize)
	if err != nil {
		return nil, fmt.Errorf("ring: %w: %v", api.ErrMappingFailed, err)
	}
	r := &ByteRing{
		region:   region,
		buf:      region.Bytes(),
		capacity: region.Size(),
	}
	r.enabled.Store(true)
	return r, nil
}

// SetRecorder installs an event recorder. Must be called before the
// ring is shared between producer and consumer.
func (r *ByteRing) SetRecorder(rec api.EventRecorder) { r.rec = rec }

func (r *ByteRing) record(ev api.Event) {
	if r.rec != nil {
		r.rec.Record(ev)
	}
}

// Write copies src at the head and publishes it. A request exceeding
// the free space is an overflow: the ring records it, clears itself
// whole, and writes nothing. No partial prefix is ever committed.
// Returns bytes actually written; 0 when disabled.
func (r *ByteRing) Write(src []byte) int {
	if !r.enabled.Load() || len(src) == 0 {
		return 0
	}
	n := len(src)
	w := r.widx.Load()
	free := r.capacity - int(w-r.ridx.Load())
	if n > free {
		r.overflows.Add(1)
		r.record(api.Event{Kind: api.EventOverflow, Requested: n, Available: free})
		r.Clear()
		return 0
	}
	off := int(w % uint64(r.capacity))
	copy(r.buf[off:off+n], src[:n])
	r.region.Sync(off, off+n)
	// Publish after the copy: the counter store is what makes the
	// bytes visible to the consumer.
	r.widx.Store(w + uint64(n))
	r.bytesIn.Add(uint64(n))
	return n
}

// ReadView returns a contiguous borrowed view of n bytes at the tail
// without releasing them; Consume commits the release. The view stays
// valid until the next Consume, Clear, or Close. A request exceeding
// the used space is an underflow: the ring records it, clears itself,
// and returns ok false. Empty or disabled rings return ok false
// without clearing.
func (r *ByteRing) ReadView(n int) ([]byte, bool) {
	if !r.enabled.Load() || n <= 0 {
		return nil, false
	}
	rd := r.ridx.Load()
	used := int(r.widx.Load() - rd)
	if used == 0 {
		return nil, false
	}
	if n > used {
		r.underflows.Add(1)
		r.record(api.Event{Kind: api.EventUnderflow, Requested: n, Available: used})
		r.Clear()
		return nil, false
	}
	off := int(rd % uint64(r.capacity))
	r.pending = n
	return r.buf[off : off+n], true
}

// Consume releases up to n previously viewed bytes back to writable
// space, capped at what is actually pending. Returns bytes released.
func (r *ByteRing) Consume(n int) int {
	if n <= 0 {
		return 0
	}
	for {
		rd := r.ridx.Load()
		used := int(r.widx.Load() - rd)
		if r.pending > used {
			// A concurrent clear dropped the viewed bytes.
			r.pending = used
		}
		m := n
		if m > r.pending {
			m = r.pending
		}
		if m == 0 {
			return 0
		}
		// Free capacity only after the caller is done with the view.
		// An overflow clear on the producer side can move ridx under
		// us; the CAS guarantees a stale release never moves the
		// counter backwards past it.
		if r.ridx.CompareAndSwap(rd, rd+uint64(m)) {
			r.pending -= m
			r.bytesOut.Add(uint64(m))
			return m
		}
	}
}

// Read copies len(dst) bytes out of the ring and releases them in one
// step. Same underflow policy as ReadView.
func (r *ByteRing) Read(dst []byte) int {
	view, ok := r.ReadView(len(dst))
	if !ok {
		return 0
	}
	copy(dst, view)
	return r.Consume(len(dst))
}

// Clear releases every used byte in one step. Capacity is untouched.
func (r *ByteRing) Clear() {
	rd := r.ridx.Load()
	w := r.widx.Load()
	if w != rd {
		// ridx never exceeds widx and only this side's counterpart can
		// race us, so storing the current widx cannot move ridx back.
		r.ridx.Store(w)
		r.record(api.Event{Kind: api.EventClear, Available: int(w - rd)})
	}
	r.clears.Add(1)
}

// Len returns bytes currently holding unread data.
func (r *ByteRing) Len() int {
	return int(r.widx.Load() - r.ridx.Load())
}

// Cap returns the fixed byte capacity.
func (r *ByteRing) Cap() int { return r.capacity }

// Free returns bytes available for writing.
func (r *ByteRing) Free() int { return r.capacity - r.Len() }

// IsEmpty reports whether no unread bytes are buffered.
func (r *ByteRing) IsEmpty() bool { return r.Len() == 0 }

// IsFull reports whether every byte slot is occupied.
func (r *ByteRing) IsFull() bool { return r.Len() == r.capacity }

// Head returns the producer offset into the primary half.
func (r *ByteRing) Head() int { return int(r.widx.Load() % uint64(r.capacity)) }

// Tail returns the consumer offset into the primary half.
func (r *ByteRing) Tail() int { return int(r.ridx.Load() % uint64(r.capacity)) }

// Mirrored reports whether the backing region uses a hardware alias.
func (r *ByteRing) Mirrored() bool { return r.region.Mirrored() }

// Enable re-arms a disabled ring.
func (r *ByteRing) Enable() { r.enabled.Store(true) }

// Disable makes every operation a no-op until Enable.
func (r *ByteRing) Disable() { r.enabled.Store(false) }

// Enabled reports the current state.
func (r *ByteRing) Enabled() bool { return r.enabled.Load() }

// Stats returns a snapshot of the accounting counters.
func (r *ByteRing) Stats() api.Stats {
	return api.Stats{
		BytesWritten: r.bytesIn.Load(),
		BytesRead:    r.bytesOut.Load(),
		Overflows:    r.overflows.Load(),
		Underflows:   r.underflows.Load(),
		Clears:       r.clears.Load(),
	}
}

// Close disables the ring and releases the mapping exactly once.
// Outstanding views become invalid. Subsequent calls return
// api.ErrBufferClosed.
func (r *ByteRing) Close() error {
	err := api.ErrBufferClosed
	r.closeOnce.Do(func() {
		r.enabled.Store(false)
		err = r.region.Close()
	})
	return err
}
