package vector

// CloneFunc duplicates an element for copy construction and copy assignment.
// It may fail; a failed clone leaves the source untouched.
type CloneFunc[T any] func(T) (T, error)

// MoveFunc transfers an element out of src, returning the transferred value.
// It must leave *src holding no resources so that destroying or overwriting
// the source slot afterwards is safe. By its signature a move cannot fail.
type MoveFunc[T any] func(src *T) T

// DestroyFunc releases the resources held by an element. It must be safe to
// call on zero values and on moved-from values; the container zeroes the slot
// after the hook returns.
type DestroyFunc[T any] func(*T)

type options[T any] struct {
	clone   CloneFunc[T]
	move    MoveFunc[T]
	destroy DestroyFunc[T]
	maxCap  int // 0 means unbounded
}

// Option configures a Vector at construction time.
type Option[T any] func(*options[T])

// WithClone installs the element copy hook. Without it elements are copied by
// assignment, which cannot fail.
func WithClone[T any](fn CloneFunc[T]) Option[T] {
	return func(o *options[T]) { o.clone = fn }
}

// WithMove installs the element move hook. Without it elements move by
// assignment followed by zeroing the source.
func WithMove[T any](fn MoveFunc[T]) Option[T] {
	return func(o *options[T]) { o.move = fn }
}

// WithDestroy installs the element destruction hook. Without it a destroyed
// slot is simply zeroed.
func WithDestroy[T any](fn DestroyFunc[T]) Option[T] {
	return func(o *options[T]) { o.destroy = fn }
}

// WithMaxCapacity caps the total slot capacity the container may allocate.
// Any growth past n fails with ErrAllocation and leaves the container
// unchanged.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(o *options[T]) { o.maxCap = n }
}

// relocateByMove reports whether whole-block relocation uses the move
// strategy. Moves cannot fail, so they are preferred whenever a move hook is
// present; without a clone hook copying is plain assignment and cannot fail
// either, so moving is equally safe and cheaper. Only when a failing clone is
// the sole explicit lifecycle hook does relocation copy, keeping the
// originals intact until every clone has succeeded.
func (o *options[T]) relocateByMove() bool {
	return o.move != nil || o.clone == nil
}
