package vector

import "errors"

// ErrAllocation reports that a storage request could not be satisfied, either
// because the requested capacity is invalid or because it would exceed the
// container's allocation budget. Operations that fail with ErrAllocation
// leave the container unchanged.
var ErrAllocation = errors.New("vector: allocation failed")
