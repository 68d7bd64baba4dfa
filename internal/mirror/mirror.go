// File: internal/mirror/mirror.go
// Author: momentics <momentics@gmail.com>
//
// Platform-independent Region type and page rounding. The platform
// mapRegion implementations live in the build-tagged siblings.

package mirror

import (
	"fmt"
	"os"
	"sync"
)

// maxMapAttempts bounds retries of the whole mapping sequence. Placing
// two views at a fixed address can lose a race against a concurrent
// allocation in the address space; one retry budget covers all backends.
const maxMapAttempts = 3

// Region owns 2*Size bytes of address space in which the second half
// aliases the first. On backends without true aliasing the second half
// is replicated in software via Sync.
type Region struct {
	data     []byte // length 2*size
	size     int
	mirrored bool
	closeFn  func() error
	once     sync.Once
}

// Map establishes a mirrored region of at least minSize bytes, rounded
// up to a page multiple. It retries the mapping sequence up to
// maxMapAttempts times before failing.
func Map(minSize int) (*Region, error) {
	if minSize <= 0 {
		return nil, fmt.Errorf("mirror: invalid size %d", minSize)
	}
	size := RoundToPages(minSize)
	var lastErr error
	for attempt := 0; attempt < maxMapAttempts; attempt++ {
		r, err := mapRegion(size)
		if err == nil {
			return r, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("mirror: mapping failed after %d attempts: %w", maxMapAttempts, lastErr)
}

// RoundToPages rounds n up to the next multiple of the OS page size.
func RoundToPages(n int) int {
	page := os.Getpagesize()
	return (n + page - 1) / page * page
}

// Bytes returns the full 2*Size view.
func (r *Region) Bytes() []byte { return r.data }

// Size returns the logical capacity (half the mapped length).
func (r *Region) Size() int { return r.size }

// Mirrored reports whether the second half is a true virtual alias.
func (r *Region) Mirrored() bool { return r.mirrored }

// Sync replicates the span [lo, hi) into the opposite half. On mapped
// backends the hardware alias makes this a no-op. Callers invoke it
// after every write so reads stay single-span on every platform.
func (r *Region) Sync(lo, hi int) {
	if r.mirrored || lo >= hi {
		return
	}
	if lo < r.size {
		end := hi
		if end > r.size {
			end = r.size
		}
		copy(r.data[r.size+lo:r.size+end], r.data[lo:end])
	}
	if hi > r.size {
		start := lo
		if start < r.size {
			start = r.size
		}
		copy(r.data[start-r.size:hi-r.size], r.data[start:hi])
	}
}

// Close releases the region exactly once.
func (r *Region) Close() error {
	var err error
	r.once.Do(func() {
		if r.closeFn != nil {
			err = r.closeFn()
		}
		r.data = nil
	})
	return err
}
