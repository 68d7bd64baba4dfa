// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, debug introspection, and event journaling for
// mirrorbuf rings.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics telemetry registry with atomic snapshot reads
//   - Debug hooks and probe registration for ring internals
//   - Bounded journal of overflow/underflow/clear events
//
// This package never sits on the data path; rings publish counters and
// the registry reads them on demand.
package control
