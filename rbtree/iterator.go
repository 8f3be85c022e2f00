package rbtree

import "iter"

// Iterator walks a Tree's elements one at a time. It is fail-fast: any
// mutation of the tree since the iterator was created invalidates it. A
// stale call to Next returns false instead of panicking, and WasInvalidated
// distinguishes "invalidated" from "exhausted" for callers that care.
//
// An Iterator is not safe for concurrent use, and does not itself hold any
// lock; package concurrent's wrapper serializes access to the tree an
// Iterator reads from.
type Iterator[K, V any] struct {
	tree        *Tree[K, V]
	epoch       uint64
	cur         *node[K, V]
	dir         direction
	invalidated bool
	started     bool
}

// WasInvalidated reports whether this iterator stopped because the tree was
// mutated during iteration, as opposed to running out of elements normally.
func (it *Iterator[K, V]) WasInvalidated() bool {
	return it.invalidated
}

// Next advances the iterator and reports whether a further element is
// available. Call Key/Value to read the current element after a true
// return.
func (it *Iterator[K, V]) Next() bool {
	if it.tree.epoch != it.epoch {
		it.invalidated = true
		it.cur = nil
		return false
	}
	if !it.started {
		it.started = true
	} else if it.cur != nil {
		it.cur = it.cur.walk(it.dir)
	}
	return it.cur != nil
}

// Key returns the current element's key. Only valid after Next returns true.
func (it *Iterator[K, V]) Key() K {
	return it.cur.key
}

// Value returns the current element's value. Only valid after Next returns
// true.
func (it *Iterator[K, V]) Value() V {
	return it.cur.val
}

// Iterator returns a forward (ascending key order) fail-fast iterator. O(1)
// to create; each Next is amortized O(1), O(log n) worst case.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, epoch: t.epoch, cur: t.first, dir: right}
}

// ReverseIterator returns a backward (descending key order) fail-fast
// iterator.
func (t *Tree[K, V]) ReverseIterator() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, epoch: t.epoch, cur: t.last, dir: left}
}

// All returns a range-over-func sequence of key/value pairs in ascending
// key order. Iteration stops early if the tree is mutated from within the
// range body's own yield; the sequence has no WasInvalidated flag, so that
// ending looks the same as running out of elements. Range-over-func
// bodies run synchronously between yields, so that case can only arise from
// a reentrant call on the same goroutine.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns a range-over-func sequence of key/value pairs in
// descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.ReverseIterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// insertionIterator walks the insertion-order list instead of the tree.
type insertionIterator[K, V any] struct {
	tree        *Tree[K, V]
	epoch       uint64
	cur         *node[K, V]
	forward     bool
	invalidated bool
	started     bool
}

// WasInvalidated reports whether this iterator stopped because the tree was
// mutated during iteration.
func (it *insertionIterator[K, V]) WasInvalidated() bool {
	return it.invalidated
}

// Next advances the iterator and reports whether a further element is
// available.
func (it *insertionIterator[K, V]) Next() bool {
	if it.tree.epoch != it.epoch {
		it.invalidated = true
		it.cur = nil
		return false
	}
	if !it.started {
		it.started = true
	} else if it.cur != nil {
		if it.forward {
			it.cur = it.cur.orderNext
		} else {
			it.cur = it.cur.orderPrev
		}
	}
	return it.cur != nil
}

// Key returns the current element's key. Only valid after Next returns true.
func (it *insertionIterator[K, V]) Key() K {
	return it.cur.key
}

// Value returns the current element's value. Only valid after Next returns
// true.
func (it *insertionIterator[K, V]) Value() V {
	return it.cur.val
}

// InsertionIterator returns a fail-fast iterator over elements in the order
// they were first inserted (an element's position is preserved across value
// replacement, and across being relocated by a two-child deletion's
// successor swap). Returns ErrUnsupportedOperation if the tree was not
// constructed with order tracking enabled.
func (t *Tree[K, V]) InsertionIterator() (*insertionIterator[K, V], error) {
	if !t.trackOrder {
		return nil, ErrUnsupportedOperation
	}
	return &insertionIterator[K, V]{tree: t, epoch: t.epoch, cur: t.head, forward: true}, nil
}

// ReverseInsertionIterator returns a fail-fast iterator over elements in
// the reverse of their first-insertion order. Returns
// ErrUnsupportedOperation if the tree was not constructed with order
// tracking enabled.
func (t *Tree[K, V]) ReverseInsertionIterator() (*insertionIterator[K, V], error) {
	if !t.trackOrder {
		return nil, ErrUnsupportedOperation
	}
	return &insertionIterator[K, V]{tree: t, epoch: t.epoch, cur: t.tail, forward: false}, nil
}

// InsertionOrder returns a range-over-func sequence of key/value pairs in
// first-insertion order. The sequence yields nothing, without error, if the
// tree does not track insertion order; check TracksOrder first if that
// distinction matters to the caller.
func (t *Tree[K, V]) InsertionOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it, err := t.InsertionIterator()
		if err != nil {
			return
		}
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
