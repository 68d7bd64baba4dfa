// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for ring inspection.

package control

import (
	"sync"

	"github.com/momentics/mirrorbuf/api"
	"github.com/momentics/mirrorbuf/ring"
)

// Ensure compile-time interface compliance.
var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RegisterRingProbes attaches standard introspection hooks for one
// byte ring under the given name prefix.
func RegisterRingProbes(dp *DebugProbes, name string, r *ring.ByteRing) {
	dp.RegisterProbe(name+".used", func() any { return r.Len() })
	dp.RegisterProbe(name+".free", func() any { return r.Free() })
	dp.RegisterProbe(name+".capacity", func() any { return r.Cap() })
	dp.RegisterProbe(name+".mirrored", func() any { return r.Mirrored() })
	dp.RegisterProbe(name+".stats", func() any { return r.Stats() })
}
