// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry and ring state reflector.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

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

// RingState is the subset of ring state a probe reports.
type RingState interface {
	Len() int
	Cap() int
	Cursors() (head, tail int)
}

// RegisterRing exposes name.len, name.cap, name.head and name.tail.
// Probes read the ring directly, so the caller must serialize DumpState with
// ring mutation when the ring itself is not synchronized.
func RegisterRing(dp api.Debug, name string, r RingState) {
	dp.RegisterProbe(name+".len", func() any { return r.Len() })
	dp.RegisterProbe(name+".cap", func() any { return r.Cap() })
	dp.RegisterProbe(name+".head", func() any { h, _ := r.Cursors(); return h })
	dp.RegisterProbe(name+".tail", func() any { _, t := r.Cursors(); return t })
}
