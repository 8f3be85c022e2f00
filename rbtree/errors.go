package rbtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for the package's recoverable, user-visible failure modes:
// bounds violations, precondition violations, and iterator invalidation.
// Wrap with fmt.Errorf("%w: ...") when adding context.
var (
	// ErrIndexOutOfRange is returned by index-addressed operations when the
	// requested index does not lie in [0, Len()).
	ErrIndexOutOfRange = errors.New("rbtree: index out of range")

	// ErrConcurrentModification is the sentinel an iterator's WasInvalidated
	// flag corresponds to; iterators never return this as an error, they set
	// a flag and end the sequence (see Iterator.WasInvalidated).
	ErrConcurrentModification = errors.New("rbtree: concurrent modification")

	// ErrUnsupportedOperation is returned by insertion-order operations
	// (InsertionIterator, ReverseInsertionIterator) called on a tree that was
	// not constructed with order tracking enabled.
	ErrUnsupportedOperation = errors.New("rbtree: unsupported operation")
)

// InvariantError reports that an internal consistency check failed: a
// rotation was asked to pivot around a node missing the required child, or
// the double-black fixup after a deletion found no sibling for the hole.
//
// Detecting this poisons the tree (see Tree.Poisoned): later mutating calls
// return without touching node links that may already be inconsistent.
type InvariantError struct {
	// Invariant names the violated invariant, e.g. "rotate: missing pivot
	// child" or "fix-after-delete: missing sibling".
	Invariant string
	// Detail gives node-local context (a key, a direction, a color) useful
	// for debugging; it carries no guarantee about the Tree's internal
	// representation.
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rbtree: internal invariant violated: %s", e.Invariant)
	}
	return fmt.Sprintf("rbtree: internal invariant violated: %s (%s)", e.Invariant, e.Detail)
}

func invariantErrorf(invariant, format string, args ...any) *InvariantError {
	return &InvariantError{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}
