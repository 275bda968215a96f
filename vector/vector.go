// Package vector provides a generic, contiguous, growable sequence container
// built on an exclusively owned raw slot block. Capacity is reserved
// separately from element placement: slots past the live count stay at the
// zero value until an element is placed there, growth doubles capacity, and
// whole-block relocation picks between moving and copying so that a failed
// element operation never loses elements or leaves them duplicated.
//
// Element lifecycle is configurable per container through clone, move, and
// destroy hooks. Containers without hooks treat elements as plain values and
// none of their operations can fail except for allocation.
//
// A Vector is not safe for concurrent use; callers needing shared access must
// serialize externally.
package vector

import (
	"fmt"

	"github.com/deploymenttheory/go-vector/internal/rawblock"
)

// Vector is a sequence of live elements occupying the front slots of an
// exclusively owned block. The zero value is NOT ready to use; construct with
// New or NewWithSize so options apply.
type Vector[T any] struct {
	block rawblock.Block[T]
	size  int
	gen   uint64 // bumped whenever storage is replaced or exchanged
	opts  options[T]
}

// New returns an empty container. No storage is allocated until the first
// element arrives or Reserve is called.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(&v.opts)
	}
	return v
}

// NewWithSize returns a container holding n default (zero-value) elements in
// storage sized exactly for n.
func NewWithSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	block, err := v.newBlock(n)
	if err != nil {
		return nil, err
	}
	v.block.Swap(&block)
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the current storage can hold without
// reallocating.
func (v *Vector[T]) Cap() int {
	return v.block.Cap()
}

// At returns the value of element i. The index must be in [0, Len); anything
// else is a programming error and panics.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
	return *v.block.At(i)
}

// Ref returns the address of element i for in-place reads and writes. The
// address is valid only until the next operation that may relocate storage.
// The index must be in [0, Len).
func (v *Vector[T]) Ref(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
	return v.block.At(i)
}

// Get is the checked accessor: it returns the value of element i and true, or
// the zero value and false when i is out of range. Use At when the index is
// known to be valid and the bounds check is unwanted.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, false
	}
	return *v.block.At(i), true
}

// Swap exchanges the entire contents of two containers, storage, size, and
// lifecycle hooks included, in constant time. It cannot fail. Both
// containers' iterators are invalidated.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.block.Swap(&other.block)
	v.size, other.size = other.size, v.size
	v.opts, other.opts = other.opts, v.opts
	v.gen++
	other.gen++
}

// Clone returns an independent copy: storage sized exactly to Len, each
// element cloned in order. If any clone fails, everything constructed so far
// is destroyed and the new storage released; the source is never affected.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{opts: v.opts}
	block, err := out.newBlock(v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		c, err := v.cloneValue(*v.block.At(i))
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				out.destroySlot(block.At(j))
			}
			block.Release()
			return nil, fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		*block.At(i) = c
	}
	out.block.Swap(&block)
	out.size = v.size
	return out, nil
}

// CopyFrom replaces the contents of v with a copy of rhs's contents,
// lifecycle hooks included.
//
// When rhs does not fit in the current storage a complete temporary copy is
// built first and swapped in, so a failure partway leaves v untouched. When
// it fits, storage is reused in place: the overlapping prefix is reassigned
// element-wise, a shrinking tail is destroyed, a growing tail is
// clone-constructed into the trailing slots, and the size is updated last. A
// clone failure on the in-place path leaves v valid with the elements
// assigned so far.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.block.Cap() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Clear()
		return nil
	}

	overlap := min(v.size, rhs.size)
	for i := 0; i < overlap; i++ {
		c, err := rhs.cloneValue(*rhs.block.At(i))
		if err != nil {
			return fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		v.destroySlot(v.block.At(i))
		*v.block.At(i) = c
	}
	if rhs.size < v.size {
		for i := rhs.size; i < v.size; i++ {
			v.destroySlot(v.block.At(i))
		}
	} else {
		for i := v.size; i < rhs.size; i++ {
			c, err := rhs.cloneValue(*rhs.block.At(i))
			if err != nil {
				for j := i - 1; j >= v.size; j-- {
					v.destroySlot(v.block.At(j))
				}
				return fmt.Errorf("vector: clone element %d: %w", i, err)
			}
			*v.block.At(i) = c
		}
	}
	v.opts = rhs.opts
	v.size = rhs.size
	return nil
}

// MoveFrom takes over rhs's contents in constant time, destroying v's own
// elements first. rhs is left empty and remains fully reusable. It cannot
// fail.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Clear()
	v.block.Release()
	v.Swap(rhs)
}

// Clear destroys every live element and resets the size to zero. Capacity is
// retained.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.destroySlot(v.block.At(i))
	}
	v.size = 0
}

// newBlock allocates storage for the requested capacity, honoring the
// allocation budget.
func (v *Vector[T]) newBlock(capacity int) (rawblock.Block[T], error) {
	if v.opts.maxCap > 0 && capacity > v.opts.maxCap {
		return rawblock.Block[T]{}, fmt.Errorf("%w: capacity %d exceeds budget %d", ErrAllocation, capacity, v.opts.maxCap)
	}
	block, err := rawblock.New[T](capacity)
	if err != nil {
		return rawblock.Block[T]{}, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	return block, nil
}

// grownCapacity returns the next capacity when the current storage is full:
// geometric doubling, starting at one.
func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return v.size * 2
}

func (v *Vector[T]) cloneValue(val T) (T, error) {
	if v.opts.clone == nil {
		return val, nil
	}
	return v.opts.clone(val)
}

func (v *Vector[T]) moveOut(src *T) T {
	if v.opts.move != nil {
		return v.opts.move(src)
	}
	val := *src
	var zero T
	*src = zero
	return val
}

func (v *Vector[T]) destroySlot(p *T) {
	if v.opts.destroy != nil {
		v.opts.destroy(p)
	}
	var zero T
	*p = zero
}

// relocate transfers the live elements into dst. Elements before pivot keep
// their index; when hole is true, elements at pivot and beyond land one slot
// to the right, leaving dst's pivot slot for a new element the caller places
// itself. With the move strategy relocation cannot fail. With the copy
// strategy the originals stay untouched until every clone has succeeded; on
// failure the clones made so far are destroyed and the error returned, with
// dst left for the caller to release.
func (v *Vector[T]) relocate(dst *rawblock.Block[T], pivot int, hole bool) error {
	slot := func(i int) int {
		if hole && i >= pivot {
			return i + 1
		}
		return i
	}

	if v.opts.relocateByMove() {
		for i := 0; i < v.size; i++ {
			*dst.At(slot(i)) = v.moveOut(v.block.At(i))
		}
		return nil
	}

	for i := 0; i < v.size; i++ {
		c, err := v.opts.clone(*v.block.At(i))
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.destroySlot(dst.At(slot(j)))
			}
			return fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		*dst.At(slot(i)) = c
	}
	return nil
}

// adoptBlock destroys whatever remains in the old storage (live elements
// after a copy relocation, moved-from husks after a move relocation), swaps
// dst in, and releases the old block. Iterators are invalidated.
func (v *Vector[T]) adoptBlock(dst *rawblock.Block[T]) {
	for i := 0; i < v.size; i++ {
		v.destroySlot(v.block.At(i))
	}
	v.block.Swap(dst)
	dst.Release()
	v.gen++
}
