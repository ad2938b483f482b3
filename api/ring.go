// Package api
// Author: momentics@gmail.com
//
// Ring buffer contracts shared by the core buffer and its wrappers.

package api

// Ring is a bounded FIFO contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// BlockRing exposes the free and used regions of a ring as at most two
// contiguous spans each, for scatter/gather producers and consumers.
//
// Returned slices alias the ring storage and are valid only until the next
// mutating call.
type BlockRing[T any] interface {
	// FreeBlocks returns writable spans ordered from the tail.
	FreeBlocks() ([]T, []T)
	// UsedBlocks returns readable spans ordered from the head.
	UsedBlocks() ([]T, []T)
	// Produce commits n elements written into the free spans.
	Produce(n int)
	// Consume releases n elements read from the used spans.
	Consume(n int)
	Len() int
	Cap() int
}
