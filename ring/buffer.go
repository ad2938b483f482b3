// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is the synchronous single-owner ring. All positions are physical
// indices into storage; head/tail advance by at most Capacity per step, so a
// single subtraction keeps them in range.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.BlockRing[byte] = (*Buffer[byte])(nil)

// Buffer is a fixed-capacity circular buffer of T.
type Buffer[T any] struct {
	storage []T
	head    int
	tail    int
	size    int
}

// NewBuffer allocates a ring holding up to capacity elements.
func NewBuffer[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring capacity must be positive").
			WithContext("capacity", capacity)
	}
	return &Buffer[T]{storage: make([]T, capacity)}, nil
}

// MustBuffer is NewBuffer that panics on an invalid capacity.
func MustBuffer[T any](capacity int) *Buffer[T] {
	b, err := NewBuffer[T](capacity)
	if err != nil {
		panic(err)
	}
	return b
}

// wrap folds a position that may have run past the end of storage.
func (b *Buffer[T]) wrap(p int) int {
	if p >= len(b.storage) {
		p -= len(b.storage)
	}
	return p
}

// At returns the element at logical offset n from the front.
func (b *Buffer[T]) At(n int) (T, error) {
	p, err := b.Ref(n)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref is At returning a pointer into storage for in-place update.
func (b *Buffer[T]) Ref(n int) (*T, error) {
	if n < 0 || n >= b.size {
		return nil, api.NewError(api.ErrCodeOutOfRange, "ring: offset out of range").
			WithContext("offset", n).
			WithContext("len", b.size)
	}
	return &b.storage[b.wrap(b.head+n)], nil
}

// Index returns a pointer to the element at logical offset n without a bounds
// check against Len. The caller guarantees n < Len.
func (b *Buffer[T]) Index(n int) *T {
	checkIndex(n, b.size)
	return &b.storage[b.wrap(b.head+n)]
}

// Front returns the oldest element. Undefined on an empty buffer.
func (b *Buffer[T]) Front() *T {
	checkNotEmpty(b.size, "front")
	return &b.storage[b.head]
}

// Back returns the newest element. Undefined on an empty buffer.
func (b *Buffer[T]) Back() *T {
	checkNotEmpty(b.size, "back")
	p := b.head + b.size - 1
	if p < 0 {
		p += len(b.storage)
	}
	return &b.storage[b.wrap(p)]
}

// Empty reports whether no slots are occupied.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// Full reports whether every slot is occupied.
func (b *Buffer[T]) Full() bool { return b.size == len(b.storage) }

// Len returns the number of occupied slots.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.storage) }

// Free returns Cap() - Len().
func (b *Buffer[T]) Free() int { return len(b.storage) - b.size }

// Cursors returns the physical head and tail positions.
func (b *Buffer[T]) Cursors() (head, tail int) { return b.head, b.tail }

// Fill overwrites every slot with v and marks the buffer full, ordered from
// physical position 0.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.storage {
		b.storage[i] = v
	}
	b.head, b.tail = 0, 0
	b.size = len(b.storage)
}

// Clear empties the buffer. Storage is left as is.
func (b *Buffer[T]) Clear() {
	b.head, b.tail = 0, 0
	b.size = 0
}

// FreeBlocks returns the writable region as up to two spans, the first
// starting at the tail. Their combined length is Free().
func (b *Buffer[T]) FreeBlocks() ([]T, []T) {
	if b.size == len(b.storage) {
		return nil, nil
	}
	if b.tail >= b.head {
		// [....head----tail....] free at the end and possibly the start
		first := b.storage[b.tail:len(b.storage):len(b.storage)]
		if b.head == 0 {
			return first, nil
		}
		return first, b.storage[0:b.head:b.head]
	}
	// [----tail....head----] free run is contiguous
	return b.storage[b.tail:b.head:b.head], nil
}

// UsedBlocks returns the readable region as up to two spans, the first
// starting at the head. Their combined length is Len().
func (b *Buffer[T]) UsedBlocks() ([]T, []T) {
	if b.size == 0 {
		return nil, nil
	}
	if b.head < b.tail {
		return b.storage[b.head:b.tail:b.tail], nil
	}
	// [----tail....head----] occupied run wraps (or the ring is full)
	first := b.storage[b.head:len(b.storage):len(b.storage)]
	if b.tail == 0 {
		return first, nil
	}
	return first, b.storage[0:b.tail:b.tail]
}

// Produce commits n elements written into the free blocks. n must not exceed
// Free(); this is not checked in default builds.
func (b *Buffer[T]) Produce(n int) {
	checkCommit(n, len(b.storage)-b.size, "produce")
	b.tail = b.wrap(b.tail + n)
	b.size += n
}

// Consume releases n elements from the front. n must not exceed Len(); this
// is not checked in default builds.
func (b *Buffer[T]) Consume(n int) {
	checkCommit(n, b.size, "consume")
	b.head = b.wrap(b.head + n)
	b.size -= n
}
