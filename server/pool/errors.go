package pool

import "errors"

var (
	// ErrExhausted indicates that the pool has no block left that can serve
	// the request. The pool never falls back to the general-purpose
	// allocator; callers decide how to surface the failure.
	ErrExhausted = errors.New("pool: exhausted")

	// ErrNeedSmall indicates a non-positive allocation size.
	ErrNeedSmall = errors.New("pool: need must be >= 1 byte")

	// ErrTooLarge indicates a request larger than the biggest block class.
	ErrTooLarge = errors.New("pool: request exceeds largest block class")

	// ErrBadRef indicates an invalid or out-of-bounds block reference.
	ErrBadRef = errors.New("pool: bad block reference")

	// ErrNotAllocated indicates a Free of a block that is not currently
	// allocated (double free).
	ErrNotAllocated = errors.New("pool: block is not allocated")

	// ErrBadCapacity indicates a capacity below the minimum block size.
	ErrBadCapacity = errors.New("pool: capacity too small")
)
