// File: ring/elements.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-element and bulk copy helpers built on the block interface.

package ring

// Push appends v at the tail; returns false if full.
func (b *Buffer[T]) Push(v T) bool {
	free, _ := b.FreeBlocks()
	if len(free) == 0 {
		return false
	}
	free[0] = v
	b.Produce(1)
	return true
}

// Pop removes and returns the oldest element; ok is false if empty.
func (b *Buffer[T]) Pop() (v T, ok bool) {
	used, _ := b.UsedBlocks()
	if len(used) == 0 {
		return v, false
	}
	v = used[0]
	b.Consume(1)
	return v, true
}

// Write copies as much of src as fits into the free blocks and commits it.
// It returns the number of elements taken.
func (b *Buffer[T]) Write(src []T) int {
	b1, b2 := b.FreeBlocks()
	n := copy(b1, src)
	n += copy(b2, src[n:])
	b.Produce(n)
	return n
}

// Read moves up to len(dst) elements from the front into dst.
func (b *Buffer[T]) Read(dst []T) int {
	n := b.Peek(dst)
	b.Consume(n)
	return n
}

// Peek copies up to len(dst) elements from the front without consuming.
func (b *Buffer[T]) Peek(dst []T) int {
	b1, b2 := b.UsedBlocks()
	n := copy(dst, b1)
	n += copy(dst[n:], b2)
	return n
}

// AppendTo appends the occupied elements to dst in logical order.
func (b *Buffer[T]) AppendTo(dst []T) []T {
	b1, b2 := b.UsedBlocks()
	dst = append(dst, b1...)
	return append(dst, b2...)
}
