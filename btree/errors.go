package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrCursorExhausted signals access to a cursor which has reached its end.
	ErrCursorExhausted = errors.New("btree: cursor exhausted")
	// ErrInvalidTree signals a violated structural invariant (see Tree.Check).
	ErrInvalidTree = errors.New("btree: invariant violated")
)
