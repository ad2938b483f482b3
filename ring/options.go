// File: ring/options.go
// Package ring defines functional options for Stream.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ring/control"
)

// StreamOption customizes stream initialization.
type StreamOption func(*Stream)

// WithMetrics records produced/consumed/wrap counters into mr.
func WithMetrics(mr *control.MetricsRegistry) StreamOption {
	return func(s *Stream) {
		s.metrics = mr
	}
}

// WithLogger attaches a logger for I/O errors and state transitions.
func WithLogger(log zerolog.Logger) StreamOption {
	return func(s *Stream) {
		s.log = log
	}
}

// WithChunkSize caps how many bytes a single ReadFrom/WriteTo call moves per
// underlying Read/Write. Zero means the whole block.
func WithChunkSize(n int) StreamOption {
	return func(s *Stream) {
		s.chunk = n
	}
}
