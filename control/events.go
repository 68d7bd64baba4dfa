// control/events.go
// Author: momentics <momentics@gmail.com>
//
// Bounded journal of recent buffer events for post-hoc diagnostics.
// Overflow and underflow clear data by design, so the journal is often
// the only trace of why a consumer saw an empty ring.

package control

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/mirrorbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.EventRecorder = (*EventJournal)(nil)

// EventJournal retains the most recent buffer events up to a fixed bound.
type EventJournal struct {
	mu    sync.Mutex
	q     *queue.Queue
	bound int
}

// NewEventJournal creates a journal keeping at most bound events.
func NewEventJournal(bound int) *EventJournal {
	if bound <= 0 {
		bound = 64
	}
	return &EventJournal{
		q:     queue.New(),
		bound: bound,
	}
}

// Record appends an event, evicting the oldest once the bound is hit.
// Safe for calls from both ring sides.
func (j *EventJournal) Record(ev api.Event) {
	j.mu.Lock()
	j.q.Add(ev)
	for j.q.Length() > j.bound {
		j.q.Remove()
	}
	j.mu.Unlock()
}

// Len returns the number of retained events.
func (j *EventJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}

// Snapshot returns retained events oldest first.
func (j *EventJournal) Snapshot() []api.Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]api.Event, 0, j.q.Length())
	for i := 0; i < j.q.Length(); i++ {
		out = append(out, j.q.Get(i).(api.Event))
	}
	return out
}
