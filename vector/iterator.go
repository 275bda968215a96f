package vector

// Iterator walks the elements from first to one past last. Obtain a fresh one
// from Iter each time; iteration is restartable but not reusable. An iterator
// observes the storage generation it was created under: once the container
// replaces or exchanges its storage, Next reports false and Stale reports
// true.
type Iterator[T any] struct {
	v   *Vector[T]
	gen uint64
	i   int
}

// Iter returns an iterator positioned before the first element.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{v: v, gen: v.gen, i: -1}
}

// Next advances to the next element. It returns false past the last element
// or when the iterator has gone stale.
func (it *Iterator[T]) Next() bool {
	if it.gen != it.v.gen {
		return false
	}
	it.i++
	return it.i < it.v.size
}

// Stale reports whether the container's storage has been replaced since the
// iterator was obtained.
func (it *Iterator[T]) Stale() bool {
	return it.gen != it.v.gen
}

// Index returns the position of the current element.
func (it *Iterator[T]) Index() int {
	return it.i
}

// Value returns the current element's value.
func (it *Iterator[T]) Value() T {
	return *it.v.block.At(it.i)
}

// Ref returns the current element's address, valid only until the next
// operation that may relocate storage.
func (it *Iterator[T]) Ref() *T {
	return it.v.block.At(it.i)
}

// Each calls fn for every element in order until fn returns false. The
// container must not be mutated from inside fn.
func (v *Vector[T]) Each(fn func(i int, el *T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.block.At(i)) {
			return
		}
	}
}
