// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/ring"
)

// StreamPool hands out ring streams of one fixed configuration.
type StreamPool struct {
	cfg  control.Config
	pool *SyncPool[*ring.Stream]
}

var _ ObjectPool[*ring.Stream] = (*StreamPool)(nil)

// NewStreamPool validates cfg up front so Get cannot fail. opts apply to
// every stream the pool creates.
func NewStreamPool(cfg control.Config, opts ...ring.StreamOption) (*StreamPool, error) {
	if _, err := ring.NewStreamFromConfig(cfg, opts...); err != nil {
		return nil, err
	}
	sp := &StreamPool{cfg: cfg}
	sp.pool = NewSyncPool(func() *ring.Stream {
		s, err := ring.NewStreamFromConfig(cfg, opts...)
		if err != nil {
			panic(err)
		}
		return s
	}, (*ring.Stream).Reset)
	return sp, nil
}

// Get returns an empty stream.
func (sp *StreamPool) Get() *ring.Stream { return sp.pool.Get() }

// Put resets s and returns it to the pool. s must not be used afterwards.
func (sp *StreamPool) Put(s *ring.Stream) { sp.pool.Put(s) }

// Config returns the configuration streams are built with.
func (sp *StreamPool) Config() control.Config { return sp.cfg }
