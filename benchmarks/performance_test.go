// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for mirrorbuf components.

package benchmarks

import (
	"runtime"
	"testing"

	"github.com/momentics/mirrorbuf/buffer"
	"github.com/momentics/mirrorbuf/internal/mirror"
	"github.com/momentics/mirrorbuf/ring"
)

// BenchmarkMirrorMap measures the full map/unmap cycle including the
// double-mapping retry machinery.
func BenchmarkMirrorMap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r, err := mirror.Map(1 << 16)
		if err != nil {
			b.Fatal(err)
		}
		r.Close()
	}
}

// BenchmarkByteRingWriteRead streams 4 KiB chunks through the byte ring.
func BenchmarkByteRingWriteRead(b *testing.B) {
	r, err := ring.New(1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	chunk := make([]byte, 4096)
	b.SetBytes(int64(len(chunk)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r.Write(chunk) != len(chunk) {
			b.Fatal("write failed")
		}
		if r.Read(chunk) != len(chunk) {
			b.Fatal("read failed")
		}
	}
}

// BenchmarkByteRingView measures the zero-copy view path against the
// copy-out path.
func BenchmarkByteRingView(b *testing.B) {
	r, err := ring.New(1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	chunk := make([]byte, 4096)
	b.SetBytes(int64(len(chunk)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Write(chunk)
		view, ok := r.ReadView(len(chunk))
		if !ok {
			b.Fatal("view failed")
		}
		_ = view[len(view)-1]
		r.Consume(len(chunk))
	}
}

// BenchmarkTypedPushPop measures single-element hand-off latency.
func BenchmarkTypedPushPop(b *testing.B) {
	rb, err := buffer.New[int64](1024)
	if err != nil {
		b.Fatal(err)
	}
	defer rb.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.Push(int64(i))
		rb.Pop()
	}
}

// BenchmarkTypedBulk measures block transfer through the typed layer.
func BenchmarkTypedBulk(b *testing.B) {
	rb, err := buffer.New[int32](1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	defer rb.Close()

	block := make([]int32, 1024)
	b.SetBytes(int64(len(block) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.PushMany(block)
		if _, ok := rb.PopMany(len(block)); !ok {
			b.Fatal("pop failed")
		}
	}
}

// BenchmarkSPSCThroughput runs one producer and one consumer goroutine
// across the ring, the supported concurrency pattern.
func BenchmarkSPSCThroughput(b *testing.B) {
	rb, err := buffer.New[uint64](4096)
	if err != nil {
		b.Fatal(err)
	}
	defer rb.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := 0; n < b.N; {
			if rb.Available() == 0 {
				runtime.Gosched()
				continue
			}
			if rb.Push(uint64(n)) {
				n++
			}
		}
	}()

	b.ResetTimer()
	for n := 0; n < b.N; {
		if _, ok := rb.Pop(); ok {
			n++
		} else {
			runtime.Gosched()
		}
	}
	<-done
}
