// Package treemap provides an ordered map built directly on package rbtree.
// Since rbtree.Tree is already generic over separate key and value types, the
// map needs no Entry[K,V] wrapper type to get an ordered key/value
// container; it stores values as the tree's value type directly.
package treemap

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cobalthq/ordtree/cmp"
	"github.com/cobalthq/ordtree/rbtree"
)

// Map is a red-black-tree-backed ordered map.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V]
}

// New creates an empty map ordered by K's natural order.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: rbtree.New[K, V]()}
}

// NewWith creates an empty map ordered by the given comparator.
func NewWith[K, V any](c cmp.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{tree: rbtree.NewWith[K, V](c)}
}

// NewOrdered creates an empty map ordered by K's natural order that
// additionally tracks insertion order (see InsertionOrder).
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: rbtree.NewOrdered[K, V]()}
}

// NewOrderedWith creates an empty, order-tracking map ordered by the given
// comparator.
func NewOrderedWith[K, V any](c cmp.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{tree: rbtree.NewOrderedWith[K, V](c)}
}

// Put inserts or replaces the value for key.
func (m *Map[K, V]) Put(key K, val V) {
	m.tree.Insert(key, val)
}

// Get returns the value for key and true, or the zero value and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Has(key)
}

// Delete removes key, returning its value and true if it was present.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	return m.tree.Remove(key)
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Empty reports whether the map contains no entries.
func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

// Clear removes every entry from the map.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	for k := range m.tree.All() {
		out = append(out, k)
	}
	return out
}

// Values returns every value, ordered by its key.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.Len())
	for _, v := range m.tree.All() {
		out = append(out, v)
	}
	return out
}

// All returns an iterator over key/value pairs in ascending key order.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return m.tree.All()
}

// InsertionOrder returns an iterator over key/value pairs in first-insertion
// order. Yields nothing if the map was not constructed with NewOrdered or
// NewOrderedWith.
func (m *Map[K, V]) InsertionOrder() func(yield func(K, V) bool) {
	return m.tree.InsertionOrder()
}

// First returns the smallest key and its value.
func (m *Map[K, V]) First() (K, V, bool) {
	return m.tree.First()
}

// Last returns the largest key and its value.
func (m *Map[K, V]) Last() (K, V, bool) {
	return m.tree.Last()
}

// Floor returns the greatest key <= key, and its value.
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	return m.tree.Floor(key)
}

// Ceiling returns the smallest key >= key, and its value.
func (m *Map[K, V]) Ceiling(key K) (K, V, bool) {
	return m.tree.Ceiling(key)
}

// At returns the key and value at zero-based rank i in key order.
func (m *Map[K, V]) At(i int) (K, V, error) {
	return m.tree.At(i)
}

// IndexOf returns key's zero-based rank in key order.
func (m *Map[K, V]) IndexOf(key K) (int, bool) {
	return m.tree.IndexOf(key)
}

// DeepCopy returns an independent copy of the map.
func (m *Map[K, V]) DeepCopy() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.DeepCopy()}
}

var (
	_ json.Marshaler   = (*Map[string, int])(nil)
	_ json.Unmarshaler = (*Map[string, int])(nil)
)

// MarshalJSON and UnmarshalJSON exchange a plain JSON object. JSON object
// keys are always strings, so a map whose K isn't already a string (or
// fmt.Stringer-compatible via %v) round-trips through its %v rendering
// rather than its original type; callers needing lossless non-string keys
// should marshal Keys() and Values() themselves instead.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	obj := make(map[string]V, m.Len())
	for k, v := range m.tree.All() {
		obj[fmt.Sprintf("%v", k)] = v
	}
	return json.Marshal(obj)
}

// UnmarshalJSON replaces the map's contents by decoding a JSON object. A
// string K takes each key as-is; any other K is parsed via fmt.Sscan.
// Returns an error if any key fails to parse as K.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var obj map[string]V
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("treemap: unmarshal: %w", err)
	}
	m.Clear()
	for ks, v := range obj {
		var k K
		if ps, isString := any(&k).(*string); isString {
			*ps = ks
		} else if _, err := fmt.Sscan(ks, &k); err != nil {
			return fmt.Errorf("treemap: decode key %q: %w", ks, err)
		}
		m.Put(k, v)
	}
	return nil
}

// String renders the map's entries in ascending key order, in the style of
// Go's own map formatting.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	for k, v := range m.tree.All() {
		if !first {
			b.WriteRune(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteRune(']')
	return b.String()
}

// GoString renders the map as a Go composite literal, for use with %#v.
func (m *Map[K, V]) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%T{", m)
	first := true
	for k, v := range m.tree.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%#v:%#v", k, v)
	}
	b.WriteRune('}')
	return b.String()
}
