// File: ring/locked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Locked serializes access to a Buffer with a mutex. It is the supported way
// to share a ring between a producer and a consumer goroutine.

package ring

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Locked[any])(nil)

// Locked is a mutex-guarded Buffer.
type Locked[T any] struct {
	mu  sync.Mutex
	buf *Buffer[T]
}

// NewLocked allocates a guarded ring of the given capacity.
func NewLocked[T any](capacity int) (*Locked[T], error) {
	buf, err := NewBuffer[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{buf: buf}, nil
}

// Enqueue adds an item; returns false if full.
func (l *Locked[T]) Enqueue(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Push(item)
}

// Dequeue removes and returns the oldest item; ok is false if empty.
func (l *Locked[T]) Dequeue() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Pop()
}

// Len returns the number of items.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Len()
}

// Cap returns the fixed capacity.
func (l *Locked[T]) Cap() int {
	return l.buf.Cap()
}

// Cursors returns head and tail under the lock.
func (l *Locked[T]) Cursors() (head, tail int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Cursors()
}

// Produce hands the free blocks to fill while holding the lock and commits
// the count it returns. fn must not retain the slices or return more than
// len(b1)+len(b2).
func (l *Locked[T]) Produce(fn func(b1, b2 []T) int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	b1, b2 := l.buf.FreeBlocks()
	n := fn(b1, b2)
	l.buf.Produce(n)
	return n
}

// Consume hands the used blocks to drain while holding the lock and releases
// the count it returns.
func (l *Locked[T]) Consume(fn func(b1, b2 []T) int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	b1, b2 := l.buf.UsedBlocks()
	n := fn(b1, b2)
	l.buf.Consume(n)
	return n
}

// Write copies src into the ring and returns the count taken.
func (l *Locked[T]) Write(src []T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(src)
}

// Read moves up to len(dst) items out of the ring.
func (l *Locked[T]) Read(dst []T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Read(dst)
}
