// Package concurrent wraps the single-writer rbtree.Tree core with a
// readers-writer lock: any number of concurrent readers, or one writer
// exclusive of all else, with every write linearizable.
package concurrent

import (
	"sync"

	"github.com/cobalthq/ordtree/cmp"
	"github.com/cobalthq/ordtree/rbtree"
)

// Tree wraps an *rbtree.Tree so every exported method is safe for
// concurrent use. The zero Tree is not usable; construct one with New or
// Wrap.
type Tree[K, V any] struct {
	base *rbtree.Tree[K, V]
	lock sync.RWMutex
}

// New creates an empty, concurrency-safe tree ordered by K's natural order.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return Wrap[K, V](rbtree.New[K, V]())
}

// NewWith creates an empty, concurrency-safe tree ordered by the given
// comparator.
func NewWith[K, V any](c cmp.Comparator[K]) *Tree[K, V] {
	return Wrap[K, V](rbtree.NewWith[K, V](c))
}

// Wrap adds a readers-writer lock around an existing *rbtree.Tree. The
// caller must not use base directly again afterward; every access to it
// must now go through the returned Tree, or the lock's guarantees are void.
func Wrap[K, V any](base *rbtree.Tree[K, V]) *Tree[K, V] {
	return &Tree[K, V]{base: base}
}

// Insert inserts or replaces key/val, as rbtree.Tree.Insert.
func (t *Tree[K, V]) Insert(key K, val V) rbtree.Outcome[V] {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.base.Insert(key, val)
}

// Get returns the value for key, as rbtree.Tree.Get.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Get(key)
}

// Has reports whether key is present, as rbtree.Tree.Has.
func (t *Tree[K, V]) Has(key K) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Has(key)
}

// Remove deletes key, as rbtree.Tree.Remove.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.base.Remove(key)
}

// RemoveAt deletes the element at rank i, as rbtree.Tree.RemoveAt.
func (t *Tree[K, V]) RemoveAt(i int) (K, V, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.base.RemoveAt(i)
}

// At returns the key and value at rank i, as rbtree.Tree.At.
func (t *Tree[K, V]) At(i int) (K, V, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.At(i)
}

// IndexOf returns key's rank, as rbtree.Tree.IndexOf.
func (t *Tree[K, V]) IndexOf(key K) (int, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.IndexOf(key)
}

// Floor returns the greatest key <= key, as rbtree.Tree.Floor.
func (t *Tree[K, V]) Floor(key K) (K, V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Floor(key)
}

// Ceiling returns the smallest key >= key, as rbtree.Tree.Ceiling.
func (t *Tree[K, V]) Ceiling(key K) (K, V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Ceiling(key)
}

// First returns the smallest key, as rbtree.Tree.First.
func (t *Tree[K, V]) First() (K, V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.First()
}

// Last returns the largest key, as rbtree.Tree.Last.
func (t *Tree[K, V]) Last() (K, V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Last()
}

// Len returns the number of elements, as rbtree.Tree.Len.
func (t *Tree[K, V]) Len() int {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Len()
}

// Empty reports whether the tree is empty, as rbtree.Tree.Empty.
func (t *Tree[K, V]) Empty() bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Empty()
}

// Clear removes every element, as rbtree.Tree.Clear.
func (t *Tree[K, V]) Clear() {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.base.Clear()
}

// Poisoned returns the InvariantError that poisoned the underlying tree, if
// any.
func (t *Tree[K, V]) Poisoned() error {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.Poisoned()
}

// Range calls f for every element in ascending key order, holding a read
// lock for the whole call so the view f sees is consistent even under
// concurrent writers. f must not call back into this Tree, since doing so
// deadlocks: the lock this package uses is not reentrant. Range stops early
// if f returns false.
func (t *Tree[K, V]) Range(f func(key K, val V) bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	for k, v := range t.base.All() {
		if !f(k, v) {
			return
		}
	}
}

// RangeBackward is Range in descending key order.
func (t *Tree[K, V]) RangeBackward(f func(key K, val V) bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	for k, v := range t.base.Backward() {
		if !f(k, v) {
			return
		}
	}
}

// Snapshot returns an unwrapped, independent copy of the current contents,
// safe to iterate or mutate without holding this Tree's lock. Built on
// rbtree.Tree.DeepCopy, taken under a read lock for a consistent view.
func (t *Tree[K, V]) Snapshot() *rbtree.Tree[K, V] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.base.DeepCopy()
}
