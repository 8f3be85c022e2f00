// Package treeset provides an ordered set built on package rbtree: a
// red-black tree of elements mapped to a zero-size marker value, with set
// algebra (Union, Intersect, Difference, SymmetricDifference) built on
// iteration and membership probes. Intersect iterates the smaller operand
// and probes the larger one.
package treeset

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/cobalthq/ordtree/cmp"
	"github.com/cobalthq/ordtree/rbtree"
)

var present = struct{}{}

// parallelScanThreshold is the combined element count above which Intersect
// splits its probing pass across this package's worker pool instead of
// running on the calling goroutine. The other combinators always run on the
// calling goroutine.
const parallelScanThreshold = 8192

// Set is a red-black-tree-backed set of ordered elements.
type Set[T any] struct {
	tree *rbtree.Tree[T, struct{}]
}

// New creates a set ordered by T's natural order holding the given values
// (empty if none are given).
func New[T cmp.Ordered](values ...T) *Set[T] {
	return NewWith[T](cmp.Natural[T](), values...)
}

// NewWith creates a set ordered by the given comparator holding the given
// values (empty if none are given).
func NewWith[T any](c cmp.Comparator[T], values ...T) *Set[T] {
	s := &Set[T]{tree: rbtree.NewWith[T, struct{}](c)}
	s.Add(values...)
	return s
}

// Add inserts one or more elements into the set.
func (s *Set[T]) Add(values ...T) {
	for _, v := range values {
		s.tree.Insert(v, present)
	}
}

// Remove deletes one or more elements from the set.
func (s *Set[T]) Remove(values ...T) {
	for _, v := range values {
		s.tree.Remove(v)
	}
}

// Contains reports whether every given element is present. Returns true
// when called with no arguments, since a set is trivially a superset of the
// empty set.
func (s *Set[T]) Contains(values ...T) bool {
	for _, v := range values {
		if !s.tree.Has(v) {
			return false
		}
	}
	return true
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Empty reports whether the set contains no elements.
func (s *Set[T]) Empty() bool {
	return s.tree.Empty()
}

// Clear removes every element from the set.
func (s *Set[T]) Clear() {
	s.tree.Clear()
}

// Values returns every element in ascending order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}

// Iter returns an iterator over the set's elements in ascending order.
func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// DeepCopy returns an independent copy of the set.
func (s *Set[T]) DeepCopy() *Set[T] {
	return &Set[T]{tree: s.tree.DeepCopy()}
}

// Equals reports whether s and other contain the same elements under the
// same comparator. Two sets built with different comparator values are
// never equal, even if their elements happen to coincide, since comparators
// aren't comparable for equality in general, so identity of the comparator
// function is the only check available.
func (s *Set[T]) Equals(other *Set[T]) bool {
	if !sameComparator(s, other) {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}
	return s.Contains(other.Values()...)
}

// sameComparator reports whether two sets share the same comparator
// function, the precondition every combinator below requires before its
// result can mean anything.
func sameComparator[T any](a, b *Set[T]) bool {
	return reflect.ValueOf(a.tree.Comparator()).Pointer() == reflect.ValueOf(b.tree.Comparator()).Pointer()
}

// smallerFirst returns s and other in ascending size order, for iterating
// the smaller operand of a combinator.
func smallerFirst[T any](s, other *Set[T]) (small, large *Set[T]) {
	if s.Len() <= other.Len() {
		return s, other
	}
	return other, s
}

// Union returns a new set containing every element of s or other. Returns
// an empty set if the two sets don't share a comparator.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	res := NewWith[T](s.tree.Comparator())
	if !sameComparator(s, other) {
		return res
	}
	for v := range s.Iter() {
		res.Add(v)
	}
	for v := range other.Iter() {
		res.Add(v)
	}
	return res
}

// UnionWith adds every element of other into s in place.
func (s *Set[T]) UnionWith(other *Set[T]) {
	if !sameComparator(s, other) {
		return
	}
	for v := range other.Iter() {
		s.Add(v)
	}
}

// Intersect returns a new set containing only elements present in both s
// and other. Returns an empty set if the two sets don't share a
// comparator.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	res := NewWith[T](s.tree.Comparator())
	if !sameComparator(s, other) {
		return res
	}
	small, large := smallerFirst(s, other)
	probe(small, large, parallelScanThreshold, func(v T, inLarge bool) {
		if inLarge {
			res.tree.Insert(v, present)
		}
	})
	return res
}

// IntersectWith removes from s every element not also present in other.
func (s *Set[T]) IntersectWith(other *Set[T]) {
	if !sameComparator(s, other) {
		s.Clear()
		return
	}
	for _, v := range s.Values() {
		if !other.Contains(v) {
			s.Remove(v)
		}
	}
}

// Difference (alias Subtract) returns a new set containing elements of s
// that are not in other. Returns an empty set if the two sets don't share a
// comparator.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	res := NewWith[T](s.tree.Comparator())
	if !sameComparator(s, other) {
		return res
	}
	for v := range s.Iter() {
		if !other.Contains(v) {
			res.Add(v)
		}
	}
	return res
}

// Subtract is an alias for Difference, named after the in-place operation
// it pairs with (SubtractFrom).
func (s *Set[T]) Subtract(other *Set[T]) *Set[T] {
	return s.Difference(other)
}

// SubtractFrom removes from s every element present in other.
func (s *Set[T]) SubtractFrom(other *Set[T]) {
	if !sameComparator(s, other) {
		return
	}
	for _, v := range other.Values() {
		s.Remove(v)
	}
}

// SymmetricDifference returns a new set containing elements in exactly one
// of s and other. Returns an empty set if the two sets don't share a
// comparator.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	res := NewWith[T](s.tree.Comparator())
	if !sameComparator(s, other) {
		return res
	}
	for v := range s.Iter() {
		if !other.Contains(v) {
			res.Add(v)
		}
	}
	for v := range other.Iter() {
		if !s.Contains(v) {
			res.Add(v)
		}
	}
	return res
}

var (
	_ json.Marshaler   = (*Set[string])(nil)
	_ json.Unmarshaler = (*Set[string])(nil)
)

// MarshalJSON encodes the set as a JSON array of its elements in ascending
// order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON replaces the set's contents with the elements decoded from
// a JSON array. The set's comparator is unchanged.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("treeset: unmarshal: %w", err)
	}
	s.Clear()
	s.Add(elements...)
	return nil
}

// String renders the set's elements in ascending order for debugging.
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteString("Set{")
	first := true
	for v := range s.Iter() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("}")
	return b.String()
}
