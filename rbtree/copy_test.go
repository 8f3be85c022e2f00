package rbtree

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestDeepCopyIndependence(t *testing.T) {
	tr := New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 9} {
		tr.Insert(k, fmt.Sprintf("v%d", k))
	}

	cp := tr.DeepCopy()
	if cp.Len() != tr.Len() {
		t.Fatalf("copy Len() = %d, want %d", cp.Len(), tr.Len())
	}

	cp.Insert(100, "new")
	if tr.Has(100) {
		t.Fatalf("mutating the copy affected the original")
	}

	tr.Insert(200, "new")
	if cp.Has(200) {
		t.Fatalf("mutating the original affected the copy")
	}

	if _, err := validateTreeAny(cp.root); err != nil {
		t.Fatalf("copy violates invariants: %v", err)
	}
}

func TestDeepCopyPreservesOrder(t *testing.T) {
	tr := NewOrdered[int, string]()
	insertOrder := []int{9, 2, 7, 1, 5}
	for _, k := range insertOrder {
		tr.Insert(k, fmt.Sprintf("v%d", k))
	}

	cp := tr.DeepCopy()
	it, err := cp.InsertionIterator()
	if err != nil {
		t.Fatalf("InsertionIterator(): %v", err)
	}
	var got []int
	for it.Next() {
		got = append(got, it.Key())
	}
	if len(got) != len(insertOrder) {
		t.Fatalf("got %v, want %v", got, insertOrder)
	}
	for i := range insertOrder {
		if got[i] != insertOrder[i] {
			t.Fatalf("got %v, want %v", got, insertOrder)
		}
	}
}

func TestDeepCopyLarge(t *testing.T) {
	// Exercises the parallel top-level copy path (parallelCopyThreshold).
	tr := New[int, int]()
	rng := rand.New(rand.NewSource(7))
	const n = parallelCopyThreshold*2 + 500
	seen := map[int]bool{}
	for len(seen) < n {
		k := rng.Int()
		if seen[k] {
			continue
		}
		seen[k] = true
		tr.Insert(k, k*2)
	}

	cp := tr.DeepCopy()
	if cp.Len() != tr.Len() {
		t.Fatalf("copy Len() = %d, want %d", cp.Len(), tr.Len())
	}
	for k := range seen {
		v, ok := cp.Get(k)
		if !ok || v != k*2 {
			t.Fatalf("copy Get(%d) = %d, %v, want %d, true", k, v, ok, k*2)
		}
	}
	if _, err := validateTreeGeneric(cp.root); err != nil {
		t.Fatalf("large copy violates invariants: %v", err)
	}
}

// validateTreeAny forwards to validateNode for tree_test.go's int/string
// instantiation; validateTreeGeneric repeats validateNode's checks, except
// parent/child mutuality, for an int/int tree.
func validateTreeAny(n *node[int, string]) (int, error) {
	return validateNode(n)
}

func validateTreeGeneric(n *node[int, int]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if n.isRed() {
		if n.left.isRed() || n.right.isRed() {
			return 0, fmt.Errorf("node %v is red with a red child", n.key)
		}
	}
	if n.left != nil && n.key <= n.left.key {
		return 0, fmt.Errorf("node %v has left child %v", n.key, n.left.key)
	}
	if n.right != nil && n.key >= n.right.key {
		return 0, fmt.Errorf("node %v has right child %v", n.key, n.right.key)
	}
	if want := 1 + n.left.size() + n.right.size(); n.size() != want {
		return 0, fmt.Errorf("node %v size %v, want %v", n.key, n.size(), want)
	}
	bhLeft, err := validateTreeGeneric(n.left)
	if err != nil {
		return 0, err
	}
	bhRight, err := validateTreeGeneric(n.right)
	if err != nil {
		return 0, err
	}
	if bhLeft != bhRight {
		return 0, fmt.Errorf("node %v black-height mismatch: %v vs %v", n.key, bhLeft, bhRight)
	}
	bh := bhLeft
	if n.isBlack() {
		bh++
	}
	return bh, nil
}
