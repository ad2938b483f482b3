// Package framing
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Record-preserving staging over a byte ring. Payload bytes live in a
// ring.Buffer; record boundaries are kept in a FIFO of lengths, so records
// are stored back to back with no header bytes in the ring.

package framing

import (
	"io"

	"github.com/eapache/queue"
	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ring stages whole records. Not safe for concurrent use.
type Ring struct {
	buf  *ring.Buffer[byte]
	lens *queue.Queue
	log  zerolog.Logger
}

// New allocates a record ring holding up to capacity payload bytes.
func New(capacity int, log zerolog.Logger) (*Ring, error) {
	buf, err := ring.NewBuffer[byte](capacity)
	if err != nil {
		return nil, err
	}
	return &Ring{buf: buf, lens: queue.New(), log: log}, nil
}

// Records returns the number of complete records staged.
func (r *Ring) Records() int { return r.lens.Length() }

// Len returns staged payload bytes.
func (r *Ring) Len() int { return r.buf.Len() }

// Free returns remaining payload capacity.
func (r *Ring) Free() int { return r.buf.Free() }

// WriteRecord stages p as one record. The record is rejected whole when it
// does not fit.
func (r *Ring) WriteRecord(p []byte) error {
	if len(p) == 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "framing: empty record")
	}
	if len(p) > r.buf.Free() {
		r.log.Debug().Int("n", len(p)).Int("free", r.buf.Free()).Msg("record does not fit")
		return api.NewError(api.ErrCodeResourceExhausted, "framing: record exceeds free space").
			WithContext("n", len(p)).
			WithContext("free", r.buf.Free())
	}
	r.buf.Write(p)
	r.lens.Add(len(p))
	return nil
}

// PeekLen returns the length of the next record.
func (r *Ring) PeekLen() (int, bool) {
	if r.lens.Length() == 0 {
		return 0, false
	}
	return r.lens.Peek().(int), true
}

// Next returns the next record as up to two spans aliasing the ring, without
// consuming it. The spans are valid until the next mutating call.
func (r *Ring) Next() (b1, b2 []byte, ok bool) {
	n, ok := r.PeekLen()
	if !ok {
		return nil, nil, false
	}
	b1, b2 = r.buf.UsedBlocks()
	if len(b1) >= n {
		return b1[:n], nil, true
	}
	return b1, b2[:n-len(b1)], true
}

// ReadRecord copies the next record into dst and consumes it. It returns
// io.EOF when no record is staged and io.ErrShortBuffer, leaving the record
// in place, when dst is too small.
func (r *Ring) ReadRecord(dst []byte) (int, error) {
	n, ok := r.PeekLen()
	if !ok {
		return 0, io.EOF
	}
	if len(dst) < n {
		return 0, io.ErrShortBuffer
	}
	r.buf.Read(dst[:n])
	r.lens.Remove()
	return n, nil
}

// Discard drops the next record and returns its length.
func (r *Ring) Discard() (int, error) {
	n, ok := r.PeekLen()
	if !ok {
		return 0, io.EOF
	}
	r.buf.Consume(n)
	r.lens.Remove()
	return n, nil
}

// Reset drops all records.
func (r *Ring) Reset() {
	r.buf.Clear()
	for r.lens.Length() > 0 {
		r.lens.Remove()
	}
}
