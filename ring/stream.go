// File: ring/stream.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stream adapts a byte Buffer to the io interfaces. ReadFrom and WriteTo hand
// the ring blocks straight to the peer reader/writer, so no staging copy is
// made on that path.

package ring

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

// maxEmptyReads bounds consecutive (0, nil) reads in ReadFrom.
const maxEmptyReads = 100

var (
	_ io.Reader     = (*Stream)(nil)
	_ io.Writer     = (*Stream)(nil)
	_ io.ReaderFrom = (*Stream)(nil)
	_ io.WriterTo   = (*Stream)(nil)
)

// Stream is a byte ring with io semantics. Not safe for concurrent use.
type Stream struct {
	buf     *Buffer[byte]
	chunk   int
	metrics *control.MetricsRegistry
	log     zerolog.Logger

	// reported is the length last folded into MetricLen.
	reported int
}

// NewStream creates a stream over a fresh ring of capacity bytes.
func NewStream(capacity int, opts ...StreamOption) (*Stream, error) {
	buf, err := NewBuffer[byte](capacity)
	if err != nil {
		return nil, err
	}
	s := &Stream{buf: buf, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.chunk < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "stream: negative chunk size").
			WithContext("chunk", s.chunk)
	}
	if s.metrics != nil {
		s.metrics.Set(control.MetricCap, capacity)
	}
	return s, nil
}

// NewStreamFromConfig builds a stream sized by cfg.
func NewStreamFromConfig(cfg control.Config, opts ...StreamOption) (*Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewStream(cfg.Capacity, append([]StreamOption{WithChunkSize(cfg.ChunkSize)}, opts...)...)
}

// Buffer exposes the underlying ring for block-level access.
func (s *Stream) Buffer() *Buffer[byte] { return s.buf }

// Len returns buffered bytes.
func (s *Stream) Len() int { return s.buf.Len() }

// Free returns writable bytes.
func (s *Stream) Free() int { return s.buf.Free() }

// Cap returns the ring capacity.
func (s *Stream) Cap() int { return s.buf.Cap() }

// Reset discards buffered bytes.
func (s *Stream) Reset() {
	s.buf.Clear()
	s.gauge()
}

// Write buffers as much of p as fits. A short write returns api.ErrBufferFull.
func (s *Stream) Write(p []byte) (int, error) {
	tail := s.buf.tail
	n := s.buf.Write(p)
	s.produced(tail, n)
	if n < len(p) {
		return n, api.ErrBufferFull
	}
	return n, nil
}

// Read drains up to len(p) bytes. An empty stream reports io.EOF.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.buf.Empty() {
		return 0, io.EOF
	}
	n := s.buf.Read(p)
	s.consumed(n)
	return n, nil
}

// ReadOnce issues a single r.Read into the first free block and commits what
// it returns. It reads nothing when the ring is full.
func (s *Stream) ReadOnce(r io.Reader) (int, error) {
	block, _ := s.buf.FreeBlocks()
	if len(block) == 0 {
		return 0, nil
	}
	block = s.limit(block)
	tail := s.buf.tail
	n, err := r.Read(block)
	if n < 0 || n > len(block) {
		return 0, api.NewError(api.ErrCodeInternal, "ring: reader returned invalid count").
			WithContext("n", n)
	}
	s.buf.Produce(n)
	s.produced(tail, n)
	return n, err
}

// ReadFrom reads from r directly into the free blocks until r reports io.EOF
// or the ring is full. io.EOF is not returned as an error.
func (s *Stream) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	empty := 0
	for !s.buf.Full() {
		n, err := s.ReadOnce(r)
		total += int64(n)
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			s.log.Debug().Err(err).Int64("n", total).Msg("ring stream read failed")
			return total, err
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return total, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
	return total, nil
}

// WriteTo writes the used blocks to w until the ring is empty.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for !s.buf.Empty() {
		block, _ := s.buf.UsedBlocks()
		block = s.limit(block)
		n, err := w.Write(block)
		if n < 0 || n > len(block) {
			return total, api.NewError(api.ErrCodeInternal, "ring: writer returned invalid count").
				WithContext("n", n)
		}
		s.buf.Consume(n)
		s.consumed(n)
		total += int64(n)
		if err != nil {
			s.log.Debug().Err(err).Int64("n", total).Msg("ring stream write failed")
			return total, err
		}
		if n < len(block) {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

func (s *Stream) limit(block []byte) []byte {
	if s.chunk > 0 && len(block) > s.chunk {
		return block[:s.chunk]
	}
	return block
}

// produced records a commit of n bytes made when the tail was at tail.
func (s *Stream) produced(tail, n int) {
	if n == 0 {
		return
	}
	if s.metrics != nil {
		s.metrics.Add(control.MetricProduced, int64(n))
		if tail+n >= s.buf.Cap() {
			s.metrics.Add(control.MetricWraps, 1)
		}
	}
	s.gauge()
	if s.buf.Full() {
		s.log.Trace().Int("cap", s.buf.Cap()).Msg("ring stream full")
	}
}

func (s *Stream) consumed(n int) {
	if n == 0 {
		return
	}
	if s.metrics != nil {
		s.metrics.Add(control.MetricConsumed, int64(n))
	}
	s.gauge()
}

// gauge folds this stream's length change into the shared MetricLen total.
func (s *Stream) gauge() {
	if s.metrics != nil {
		s.metrics.Add(control.MetricLen, int64(s.buf.Len()-s.reported))
		s.reported = s.buf.Len()
	}
}
