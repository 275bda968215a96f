// Package rawblock owns contiguous runs of element slots sized for a fixed
// capacity. A Block hands out slot addresses and transfers ownership, but it
// never runs element lifecycle hooks; the container above it decides which
// slots hold live elements and is responsible for destroying them before a
// Block is released or replaced.
package rawblock

import "fmt"

// Block is an exclusively owned run of capacity slots. The zero value is the
// null block (capacity 0, no storage). Blocks must not be copied; ownership
// moves only through Swap.
//
// Slots that do not hold a live element always hold the zero value of T. The
// owner maintains this invariant by zeroing slots on move-out and destroy, so
// a freshly allocated run (which Go zeroes) and a vacated slot look the same.
type Block[T any] struct {
	slots []T
}

// New allocates a run of capacity slots with no live elements. A capacity of
// zero yields the null block without allocating. A negative capacity is an
// allocation failure.
func New[T any](capacity int) (Block[T], error) {
	if capacity < 0 {
		return Block[T]{}, fmt.Errorf("rawblock: invalid capacity %d", capacity)
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}
	return Block[T]{slots: make([]T, capacity)}, nil
}

// At returns the address of slot i. The address may be used for placement or
// reading regardless of whether the slot holds a live element; i must be in
// [0, capacity).
func (b *Block[T]) At(i int) *T {
	return &b.slots[i]
}

// Cap returns the number of slots the block can hold.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// Swap exchanges block ownership with other in constant time. It cannot fail.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the slot run, returning the block to the null state. Live
// elements must already have been destroyed by the owner.
func (b *Block[T]) Release() {
	b.slots = nil
}
