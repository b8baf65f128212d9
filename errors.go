package spatial

import (
	"github.com/Apostolique/Apos.Spatial/dtree"
)

// These are the same sentinel values dtree uses, not copies, so
// errors.Is(err, spatial.ErrConcurrentModification) works transparently on
// errors returned from this package without callers needing to import
// dtree themselves.
var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = dtree.ErrInvalidConfig
	// ErrConcurrentModification signals that a tree was mutated while an
	// iterator built against an earlier version was still in use.
	ErrConcurrentModification = dtree.ErrConcurrentModification
	// ErrInvalidIteratorState signals Current was read before the first
	// Next or after exhaustion.
	ErrInvalidIteratorState = dtree.ErrInvalidIteratorState
)
