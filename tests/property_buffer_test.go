// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_buffer_test.go — Property-based tests for the typed ring.
package tests

import (
	"math/rand"
	"testing"

	"github.com/momentics/mirrorbuf/buffer"
)

// Randomized push/pop/peek/flush sequences checked against a slice
// model. Requests never exceed Count, so the clear-on-underflow policy
// stays out of the way and FIFO order must hold exactly.
func TestBufferPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		rb, err := buffer.New[int](64)
		if err != nil {
			t.Fatalf("buffer.New failed: %v", err)
		}

		var model []int
		capElems := rb.Capacity()

		for i := 0; i < 5000; i++ {
			switch rnd.Intn(4) {
			case 0: // push one
				val := rnd.Intn(100000)
				if len(model) < capElems {
					if !rb.Push(val) {
						t.Fatalf("Push failed with %d free slots", capElems-len(model))
					}
					model = append(model, val)
				}
			case 1: // push a block
				n := rnd.Intn(8) + 1
				if n > capElems-len(model) {
					n = capElems - len(model)
				}
				if n > 0 {
					block := make([]int, n)
					for j := range block {
						block[j] = rnd.Intn(100000)
					}
					if got := rb.PushMany(block); got != n {
						t.Fatalf("PushMany wrote %d of %d", got, n)
					}
					model = append(model, block...)
				}
			case 2: // pop one
				v, ok := rb.Pop()
				if ok != (len(model) > 0) {
					t.Fatalf("Pop ok=%v with model size %d", ok, len(model))
				}
				if ok {
					if v != model[0] {
						t.Fatalf("Pop=%d, want %d", v, model[0])
					}
					model = model[1:]
				}
			case 3: // peek then flush a prefix
				if len(model) > 0 {
					n := rnd.Intn(len(model)) + 1
					view, ok := rb.Peek(n)
					if !ok {
						t.Fatalf("Peek(%d) declined with Count=%d", n, rb.Count())
					}
					for j := 0; j < n; j++ {
						if view[j] != model[j] {
							t.Fatalf("peeked[%d]=%d, want %d", j, view[j], model[j])
						}
					}
					if got := rb.Flush(n); got != n {
						t.Fatalf("Flush released %d of %d", got, n)
					}
					model = model[n:]
				}
			}

			if rb.Count() != len(model) {
				t.Fatalf("Invariant failed: Count=%d, model=%d", rb.Count(), len(model))
			}
			if rb.Count() < 0 || rb.Count() > capElems {
				t.Fatalf("Count out of bounds: %d", rb.Count())
			}
			if rb.IsEmpty() != (len(model) == 0) {
				t.Fatalf("IsEmpty=%v with model size %d", rb.IsEmpty(), len(model))
			}
		}
		rb.Close()
	}
}
