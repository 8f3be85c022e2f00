package rbtree

import (
	"fmt"
	"testing"
)

func TestIteratorForwardReverse(t *testing.T) {
	tr := New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 9} {
		tr.Insert(k, fmt.Sprintf("v%d", k))
	}

	var forward []int
	it := tr.Iterator()
	for it.Next() {
		forward = append(forward, it.Key())
	}
	want := []int{1, 3, 5, 8, 9}
	if len(forward) != len(want) {
		t.Fatalf("forward = %v, want %v", forward, want)
	}
	for i := range want {
		if forward[i] != want[i] {
			t.Fatalf("forward = %v, want %v", forward, want)
		}
	}

	var backward []int
	rit := tr.ReverseIterator()
	for rit.Next() {
		backward = append(backward, rit.Key())
	}
	for i := range want {
		if backward[i] != want[len(want)-1-i] {
			t.Fatalf("backward = %v, want reverse of %v", backward, want)
		}
	}
}

func TestIteratorEmptyTree(t *testing.T) {
	tr := New[int, string]()
	it := tr.Iterator()
	if it.Next() {
		t.Fatalf("Next() on empty tree returned true")
	}
	if it.WasInvalidated() {
		t.Fatalf("WasInvalidated() true on an exhausted (not invalidated) empty iterator")
	}
}

func TestIteratorFailFast(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(1, "a")
	tr.Insert(2, "b")
	tr.Insert(3, "c")

	it := tr.Iterator()
	if !it.Next() {
		t.Fatalf("Next() = false on first call")
	}

	tr.Insert(4, "d")

	if it.Next() {
		t.Fatalf("Next() after concurrent mutation returned true")
	}
	if !it.WasInvalidated() {
		t.Fatalf("WasInvalidated() = false after concurrent mutation")
	}
}

func TestInsertionIteratorUnsupported(t *testing.T) {
	tr := New[int, string]()
	if _, err := tr.InsertionIterator(); err != ErrUnsupportedOperation {
		t.Fatalf("InsertionIterator() err = %v, want ErrUnsupportedOperation", err)
	}
}

func TestInsertionIteratorOrder(t *testing.T) {
	tr := NewOrdered[int, string]()
	insertOrder := []int{5, 1, 9, 3, 7}
	for _, k := range insertOrder {
		tr.Insert(k, fmt.Sprintf("v%d", k))
	}

	it, err := tr.InsertionIterator()
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

func TestInsertionOrderSurvivesSuccessorSwap(t *testing.T) {
	// Delete a node with two children so deleteNode must swap payload (and
	// order position) with the in-order successor; the deleted key's
	// insertion position must be what disappears from the list, while the
	// successor's key keeps its own original position.
	tr := NewOrdered[int, string]()
	for _, k := range []int{5, 2, 8, 1, 3, 7, 9} {
		tr.Insert(k, fmt.Sprintf("v%d", k))
	}
	insertOrder := []int{5, 2, 8, 1, 3, 7, 9}

	tr.Remove(5) // has two children; successor is 7.

	it, err := tr.InsertionIterator()
	if err != nil {
		t.Fatalf("InsertionIterator(): %v", err)
	}
	var got []int
	for it.Next() {
		got = append(got, it.Key())
	}

	var want []int
	for _, k := range insertOrder {
		if k != 5 {
			want = append(want, k)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAllAndBackward(t *testing.T) {
	tr := New[int, string]()
	for _, k := range []int{2, 1, 3} {
		tr.Insert(k, fmt.Sprintf("v%d", k))
	}

	var got []int
	for k := range tr.All() {
		got = append(got, k)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("All() = %v", got)
	}

	got = nil
	for k := range tr.Backward() {
		got = append(got, k)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("Backward() = %v", got)
	}

	count := 0
	for range tr.All() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("All() early break ran %d iterations, want 1", count)
	}
}
