package rbtree

// order.go maintains the insertion-order doubly-linked list that coexists
// with the tree structure on order-tracking trees (Tree.trackOrder), letting
// InsertionIterator walk elements in the order they were first inserted
// regardless of key order. The list is a plain sequence of node pointers
// threaded through orderPrev/orderNext; it is untouched on trees that don't
// track order.

// appendOrder links n onto the tail of the insertion-order list. No-op if
// the tree doesn't track order.
func (t *Tree[K, V]) appendOrder(n *node[K, V]) {
	if !t.trackOrder {
		return
	}
	n.orderPrev = t.tail
	n.orderNext = nil
	if t.tail != nil {
		t.tail.orderNext = n
	} else {
		t.head = n
	}
	t.tail = n
}

// unlinkOrder removes n from the insertion-order list. No-op if the tree
// doesn't track order.
func (t *Tree[K, V]) unlinkOrder(n *node[K, V]) {
	if !t.trackOrder {
		return
	}
	if n.orderPrev != nil {
		n.orderPrev.orderNext = n.orderNext
	} else {
		t.head = n.orderNext
	}
	if n.orderNext != nil {
		n.orderNext.orderPrev = n.orderPrev
	} else {
		t.tail = n.orderPrev
	}
	n.orderPrev, n.orderNext = nil, nil
}

// swapOrderPositions exchanges a's and b's positions in the insertion-order
// list, leaving their payloads (already swapped by the caller in deleteNode)
// untouched. Used when a two-child deletion swaps an element's storage slot
// with its in-order successor: the successor's payload moves up to replace
// the deleted key, and the successor's element should still report the
// insertion order it originally held, so the two nodes trade list positions
// and each position stays with the payload it belongs to. No-op if the tree
// doesn't track order.
func (t *Tree[K, V]) swapOrderPositions(a, b *node[K, V]) {
	if !t.trackOrder {
		return
	}
	if a == b {
		return
	}

	aPrev, aNext := a.orderPrev, a.orderNext
	bPrev, bNext := b.orderPrev, b.orderNext

	// Detach both, then relink in whichever relative order survives, handling
	// the adjacent case (a and b are neighbors in the list) by patching the
	// link that would otherwise point a node at itself.
	if aNext == b {
		a.orderPrev, a.orderNext = b, bNext
		b.orderPrev, b.orderNext = aPrev, a
	} else if bNext == a {
		b.orderPrev, b.orderNext = a, aNext
		a.orderPrev, a.orderNext = bPrev, b
	} else {
		a.orderPrev, a.orderNext = bPrev, bNext
		b.orderPrev, b.orderNext = aPrev, aNext
	}

	relink := func(n *node[K, V]) {
		if n.orderPrev != nil {
			n.orderPrev.orderNext = n
		} else {
			t.head = n
		}
		if n.orderNext != nil {
			n.orderNext.orderPrev = n
		} else {
			t.tail = n
		}
	}
	relink(a)
	relink(b)
}
