package rbtree

// rotate performs a left (dir == left) or right (dir == right) rotation
// around n, returning the node that takes n's former position. Fails with an
// InvariantError if the required child (right for a left rotation, left for
// a right rotation) is absent, since a rotation can never legally be asked
// for without it. Preserves invariant 6 and restores invariant 5 for the
// affected nodes via recount.
//
// rotate is purely structural: it never touches color. Insert- and
// delete-fixup both call it and then assign colors explicitly, and the two
// fixups don't assign colors the same way around a rotation (in particular
// the delete-fixup's close-red-far-black case recolors the pivot and its
// child independently rather than swapping them), so baking a swap into the
// primitive itself would fight the calling sites instead of serving them.
func (t *Tree[K, V]) rotate(n *node[K, V], dir direction) (*node[K, V], *InvariantError) {
	pivot := n.child(dir.opposite())
	if pivot == nil {
		return nil, invariantErrorf("rotate: missing pivot child", "node key=%v dir=%v", n.key, dir)
	}

	parent := n.parent
	t.replaceNode(n, pivot)

	n.setChild(dir.opposite(), pivot.child(dir))
	pivot.setChild(dir, n)

	n.setSize(1 + n.left.size() + n.right.size())
	pivot.setSize(1 + pivot.left.size() + pivot.right.size())
	recount(parent)

	return pivot, nil
}

// fixAfterInsert restores invariants 1-3 after n has been linked in as a red
// leaf. It ascends iteratively, recoloring through red uncles and performing
// at most one rotation pair once it finds a black (or absent) uncle,
// terminating with the root black.
func (t *Tree[K, V]) fixAfterInsert(n *node[K, V]) error {
	for {
		parent := n.parent
		if parent == nil {
			n.setBlack()
			return nil
		}
		if parent.isBlack() {
			return nil
		}

		grandparent := parent.parent
		if grandparent == nil {
			// parent is red and the root; recoloring it black is sufficient.
			parent.setBlack()
			return nil
		}

		pDir := parent.directionFromParent()
		uncle := grandparent.child(pDir.opposite())

		if uncle.isRed() {
			parent.setBlack()
			uncle.setBlack()
			grandparent.setRed()
			n = grandparent
			continue
		}

		if n.directionFromParent() != pDir {
			// n is "inside" the grandparent/parent/n path; rotate parent out
			// from under n first so the outer case below applies uniformly.
			if _, err := t.rotate(parent, pDir); err != nil {
				return t.poisonAndReturn(err)
			}
			n, parent = parent, n
		}

		if _, err := t.rotate(grandparent, pDir.opposite()); err != nil {
			return t.poisonAndReturn(err)
		}
		parent.setBlack()
		grandparent.setRed()
		return nil
	}
}

// deleteState names the states of the double-black fixup state machine.
type deleteState int

const (
	stateDoubleBlack deleteState = iota
	stateDone
)

// fixAfterDelete restores invariant 3 after a black node has been spliced out
// from position `side` of `parent`, leaving a "double-black" hole there. It
// runs the standard four-case double-black analysis: red sibling, both
// nephews black, a red close nephew with a black far nephew, and a red far
// nephew, looping back to retry a case against a new sibling as the hole
// moves up the tree.
func (t *Tree[K, V]) fixAfterDelete(parent *node[K, V], side direction) error {
	state := stateDoubleBlack

	for state == stateDoubleBlack {
		sibling := parent.child(side.opposite())
		if sibling == nil {
			return t.poisonAndReturn(invariantErrorf("fix-after-delete: missing sibling", "parent key=%v side=%v", parent.key, side))
		}
		closeNephew := sibling.child(side)
		farNephew := sibling.child(side.opposite())

		switch {
		case sibling.isRed():
			// Red sibling: rotate it up to be the hole's new grandparent,
			// recolor, and retry with the same (now black) sibling's child
			// as the new sibling.
			if _, err := t.rotate(parent, side); err != nil {
				return t.poisonAndReturn(err)
			}
			parent.setRed()
			sibling.setBlack()
			continue

		case sibling.isBlack() && closeNephew.isBlack() && farNephew.isBlack():
			sibling.setRed()
			if parent.isRed() {
				parent.setBlack()
				state = stateDone
				break
			}
			// Move the hole up to the parent; if the parent is itself the
			// root there is nothing left to balance.
			grandparent := parent.parent
			if grandparent == nil {
				state = stateDone
				break
			}
			parentSide := parent.directionFromParent()
			parent = grandparent
			side = parentSide
			continue

		case closeNephew.isRed() && farNephew.isBlack():
			if _, err := t.rotate(sibling, side.opposite()); err != nil {
				return t.poisonAndReturn(err)
			}
			sibling.setRed()
			closeNephew.setBlack()
			continue

		default: // farNephew is red.
			if _, err := t.rotate(parent, side); err != nil {
				return t.poisonAndReturn(err)
			}
			sibling.setColorOf(parent)
			parent.setBlack()
			farNephew.setBlack()
			state = stateDone
		}
	}

	return nil
}
