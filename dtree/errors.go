package dtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("dtree: invalid configuration")
	// ErrConcurrentModification signals that the tree was mutated while an
	// iterator constructed against an earlier version was still in use.
	ErrConcurrentModification = errors.New("dtree: concurrent modification during iteration")
	// ErrInvalidIteratorState signals that Current was called before the
	// first Next, or after the sequence was exhausted.
	ErrInvalidIteratorState = errors.New("dtree: iterator read out of state")
)
