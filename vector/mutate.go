package vector

import "fmt"

// PushBack appends a copy of val. The stored element goes through the clone
// hook, so a clone failure leaves the container unchanged.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.EmplaceBack(func() (T, error) { return v.cloneValue(val) })
	return err
}

// MoveBack appends by moving the element out of *src, which is left reset.
// Only allocation can fail, in which case *src is untouched.
func (v *Vector[T]) MoveBack(src *T) error {
	if v.size == v.block.Cap() {
		// Grow before disturbing the source so an allocation failure
		// changes nothing.
		if err := v.growForAppend(); err != nil {
			return err
		}
	}
	_, err := v.EmplaceBack(func() (T, error) { return v.moveOut(src), nil })
	return err
}

// EmplaceBack appends an element constructed in place by build and returns
// its address. When the storage is full, new storage is acquired and the new
// element is constructed into it before anything is relocated; a failure at
// any step leaves the container exactly as it was.
func (v *Vector[T]) EmplaceBack(build func() (T, error)) (*T, error) {
	if v.size < v.block.Cap() {
		val, err := build()
		if err != nil {
			return nil, fmt.Errorf("vector: construct element: %w", err)
		}
		*v.block.At(v.size) = val
		v.size++
		return v.block.At(v.size - 1), nil
	}

	dst, err := v.newBlock(v.grownCapacity())
	if err != nil {
		return nil, err
	}
	val, err := build()
	if err != nil {
		dst.Release()
		return nil, fmt.Errorf("vector: construct element: %w", err)
	}
	*dst.At(v.size) = val
	if err := v.relocate(&dst, 0, false); err != nil {
		v.destroySlot(dst.At(v.size))
		dst.Release()
		return nil, err
	}
	v.adoptBlock(&dst)
	v.size++
	return v.block.At(v.size - 1), nil
}

// PopBack destroys the last element. The container must not be empty.
func (v *Vector[T]) PopBack() {
	v.destroySlot(v.block.At(v.size - 1))
	v.size--
}

// Insert places a copy of val before position i, shifting the elements from
// i onward one slot to the right. i must be in [0, Len]; i == Len appends.
func (v *Vector[T]) Insert(i int, val T) error {
	_, err := v.Emplace(i, func() (T, error) { return v.cloneValue(val) })
	return err
}

// Emplace constructs an element in place before position i and returns its
// address. build runs before any element moves, so a construction failure
// leaves the container unchanged on both the in-place and the regrow path.
func (v *Vector[T]) Emplace(i int, build func() (T, error)) (*T, error) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", i, v.size))
	}
	if i == v.size {
		return v.EmplaceBack(build)
	}

	if v.size < v.block.Cap() {
		val, err := build()
		if err != nil {
			return nil, fmt.Errorf("vector: construct element: %w", err)
		}
		// Open the gap back to front: the last element moves into the
		// trailing raw slot, then each element slides one slot right.
		last := v.size - 1
		*v.block.At(v.size) = v.moveOut(v.block.At(last))
		for j := last; j > i; j-- {
			*v.block.At(j) = v.moveOut(v.block.At(j - 1))
		}
		*v.block.At(i) = val
		v.size++
		return v.block.At(i), nil
	}

	dst, err := v.newBlock(v.grownCapacity())
	if err != nil {
		return nil, err
	}
	val, err := build()
	if err != nil {
		dst.Release()
		return nil, fmt.Errorf("vector: construct element: %w", err)
	}
	// The new element lands at its final index; the prefix and suffix are
	// relocated around it.
	*dst.At(i) = val
	if err := v.relocate(&dst, i, true); err != nil {
		v.destroySlot(dst.At(i))
		dst.Release()
		return nil, err
	}
	v.adoptBlock(&dst)
	v.size++
	return v.block.At(i), nil
}

// Erase removes the element at position i, sliding the elements after it one
// slot to the left and destroying the vacated last slot. It returns i, which
// now refers to the element that followed the erased one (or equals Len when
// the last element was erased). i must be in [0, Len).
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", i, v.size))
	}
	for j := i; j+1 < v.size; j++ {
		v.destroySlot(v.block.At(j))
		*v.block.At(j) = v.moveOut(v.block.At(j + 1))
	}
	v.destroySlot(v.block.At(v.size - 1))
	v.size--
	return i
}

// Reserve guarantees storage for at least n elements. Anything at or below
// the current capacity is a no-op; otherwise storage sized exactly for n is
// acquired and every element relocated with the selected strategy. Len never
// changes.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.block.Cap() {
		return nil
	}
	dst, err := v.newBlock(n)
	if err != nil {
		return err
	}
	if err := v.relocate(&dst, 0, false); err != nil {
		dst.Release()
		return err
	}
	v.adoptBlock(&dst)
	return nil
}

// Resize sets the element count to n, reserving storage first. Growth fills
// the new trailing slots with default (zero-value) elements; shrinking
// destroys the tail beyond n.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: resize to negative size %d", n))
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if n < v.size {
		for i := n; i < v.size; i++ {
			v.destroySlot(v.block.At(i))
		}
	}
	// Trailing slots below the new size already hold zero values, which are
	// the default elements.
	v.size = n
	return nil
}

// growForAppend reallocates to the grown capacity without adding an element.
func (v *Vector[T]) growForAppend() error {
	dst, err := v.newBlock(v.grownCapacity())
	if err != nil {
		return err
	}
	if err := v.relocate(&dst, 0, false); err != nil {
		dst.Release()
		return err
	}
	v.adoptBlock(&dst)
	return nil
}
