package rbtree

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
)

// parallelCopyThreshold is the subtree size above which DeepCopy dispatches
// a subtree's copy to the worker pool instead of copying it on the calling
// goroutine. Below it, pool dispatch overhead would dwarf the copy itself.
const parallelCopyThreshold = 4096

var (
	copyPoolOnce sync.Once
	copyPool     pond.Pool
)

// pool lazily creates the package's shared worker pool. It is never torn
// down, since a data structure library has no shutdown hook to hang one off
// of.
func pool() pond.Pool {
	copyPoolOnce.Do(func() {
		n := runtime.NumCPU()
		if n < 1 {
			n = 1
		}
		copyPool = pond.NewPool(n)
	})
	return copyPool
}

// DeepCopy returns a tree with the same comparator, order-tracking setting,
// and elements as t, sharing no node with t. Mutating the copy never
// affects t or vice versa.
//
// Element values are copied by assignment, not by any user-supplied clone
// function, so callers whose V is itself a pointer or contains one get a
// shallow copy of that value, same as any other Go assignment.
//
// Every node whose subtree is larger than parallelCopyThreshold hands its
// left subtree's copy to the package's worker pool while copying its right
// subtree itself; subtrees at or below the threshold copy sequentially. The
// call always blocks until the whole copy is complete.
func (t *Tree[K, V]) DeepCopy() *Tree[K, V] {
	cp := &Tree[K, V]{
		cmp:        t.cmp,
		trackOrder: t.trackOrder,
		size:       t.size,
	}
	if t.root == nil {
		return cp
	}

	var mapping *copyMap[K, V]
	if t.trackOrder {
		mapping = newCopyMap[K, V]()
	}

	cp.root = copyNodeParallel(t.root, nil, mapping)
	cp.first = leftmost(cp.root)
	cp.last = rightmost(cp.root)

	if t.trackOrder {
		for orig := t.head; orig != nil; orig = orig.orderNext {
			cp.appendOrder(mapping.lookup(orig))
		}
	}

	return cp
}

// copyMap records the original-to-copy node correspondence built up during
// a (possibly parallel) DeepCopy, so the insertion-order list, which has no
// relationship to tree shape, can be relinked in a second pass over the copy
// once the structural copy is complete.
type copyMap[K, V any] struct {
	mu sync.Mutex
	m  map[*node[K, V]]*node[K, V]
}

func newCopyMap[K, V any]() *copyMap[K, V] {
	return &copyMap[K, V]{m: make(map[*node[K, V]]*node[K, V])}
}

func (c *copyMap[K, V]) record(orig, cp *node[K, V]) {
	c.mu.Lock()
	c.m[orig] = cp
	c.mu.Unlock()
}

func (c *copyMap[K, V]) lookup(orig *node[K, V]) *node[K, V] {
	c.mu.Lock()
	cp := c.m[orig]
	c.mu.Unlock()
	return cp
}

// copyNodeParallel copies the subtree rooted at n, dispatching the left
// child's copy to the worker pool and copying the right child on the calling
// goroutine when n's subtree is large enough to be worth the dispatch, and
// otherwise recursing sequentially (including for
// every descendant of a node copied sequentially: fanning out below the top
// level would mostly submit pool tasks smaller than their own scheduling
// overhead). mapping is nil when the source tree doesn't track insertion
// order.
func copyNodeParallel[K, V any](n, parent *node[K, V], mapping *copyMap[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	cp := &node[K, V]{key: n.key, val: n.val, parent: parent, meta: n.meta}
	if mapping != nil {
		mapping.record(n, cp)
	}

	if n.size() <= parallelCopyThreshold {
		cp.left = copyNodeSequential(n.left, cp, mapping)
		cp.right = copyNodeSequential(n.right, cp, mapping)
		return cp
	}

	var left, right *node[K, V]
	task := pool().Submit(func() { left = copyNodeParallel(n.left, cp, mapping) })
	right = copyNodeParallel(n.right, cp, mapping)
	if err := task.Wait(); err != nil {
		// The only way a copy task fails is a panic inside it, which would
		// mean a bug in this package, not a caller-recoverable condition;
		// let it surface the same way an unparallelized copy's panic would.
		panic(err)
	}
	cp.left, cp.right = left, right
	return cp
}

func copyNodeSequential[K, V any](n, parent *node[K, V], mapping *copyMap[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	cp := &node[K, V]{key: n.key, val: n.val, parent: parent, meta: n.meta}
	if mapping != nil {
		mapping.record(n, cp)
	}
	cp.left = copyNodeSequential(n.left, cp, mapping)
	cp.right = copyNodeSequential(n.right, cp, mapping)
	return cp
}

func leftmost[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
