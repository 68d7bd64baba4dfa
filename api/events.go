// File: api/events.go
// Package api defines buffer lifecycle event types for mirrorbuf.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// EventKind classifies a buffer state transition worth recording.
type EventKind int

const (
	// EventOverflow is emitted when a write request exceeds free space.
	EventOverflow EventKind = iota
	// EventUnderflow is emitted when a read request exceeds used space.
	EventUnderflow
	// EventClear is emitted when the buffer is cleared whole.
	EventClear
)

// String returns a human-readable event kind name.
func (k EventKind) String() string {
	switch k {
	case EventOverflow:
		return "overflow"
	case EventUnderflow:
		return "underflow"
	case EventClear:
		return "clear"
	}
	return "unknown"
}

// Event captures one overflow, underflow, or clear transition.
type Event struct {
	Kind      EventKind
	Requested int // bytes requested by the failing operation
	Available int // bytes available when the request arrived
}

// EventRecorder receives buffer events. Implementations must be safe
// for calls from both the producer and the consumer side.
type EventRecorder interface {
	Record(ev Event)
}
