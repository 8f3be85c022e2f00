package treeset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobalthq/ordtree/treeset"
)

func TestAddContainsRemove(t *testing.T) {
	s := treeset.New[int]()
	s.Add(1, 2, 3)
	assert.True(t, s.Contains(1, 2, 3))
	assert.False(t, s.Contains(4))
	assert.Equal(t, 3, s.Len())

	s.Remove(2)
	assert.False(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())
}

func TestValuesOrdered(t *testing.T) {
	s := treeset.New[int](5, 1, 3, 2, 4)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values())
}

func TestUnion(t *testing.T) {
	a := treeset.New[int](1, 2, 3)
	b := treeset.New[int](3, 4, 5)

	u := a.Union(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, u.Values())
}

func TestIntersect(t *testing.T) {
	a := treeset.New[int](1, 2, 3, 4)
	b := treeset.New[int](3, 4, 5, 6)

	i := a.Intersect(b)
	assert.Equal(t, []int{3, 4}, i.Values())
}

func TestDifference(t *testing.T) {
	a := treeset.New[int](1, 2, 3, 4)
	b := treeset.New[int](3, 4, 5, 6)

	d := a.Difference(b)
	assert.Equal(t, []int{1, 2}, d.Values())
}

func TestSymmetricDifference(t *testing.T) {
	a := treeset.New[int](1, 2, 3)
	b := treeset.New[int](2, 3, 4)

	sd := a.SymmetricDifference(b)
	assert.Equal(t, []int{1, 4}, sd.Values())
}

func TestInPlaceCombinators(t *testing.T) {
	a := treeset.New[int](1, 2, 3)
	b := treeset.New[int](3, 4, 5)

	a.UnionWith(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Values())

	a = treeset.New[int](1, 2, 3, 4)
	a.IntersectWith(treeset.New[int](3, 4, 5))
	assert.Equal(t, []int{3, 4}, a.Values())

	a = treeset.New[int](1, 2, 3, 4)
	a.SubtractFrom(treeset.New[int](3, 4))
	assert.Equal(t, []int{1, 2}, a.Values())
}

func TestCombinatorsRequireSharedComparator(t *testing.T) {
	a := treeset.New[int](1, 2, 3)
	b := treeset.NewWith[int](func(x, y int) int { return y - x }, 1, 2, 3)

	assert.True(t, a.Union(b).Empty())
	assert.False(t, a.Equals(b))
}

func TestEquals(t *testing.T) {
	a := treeset.New[int](1, 2, 3)
	b := treeset.New[int](3, 2, 1)
	c := treeset.New[int](1, 2)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestDeepCopyIndependence(t *testing.T) {
	a := treeset.New[int](1, 2, 3)
	cp := a.DeepCopy()
	cp.Add(4)
	assert.False(t, a.Contains(4))
}

func TestJSONRoundTrip(t *testing.T) {
	a := treeset.New[int](3, 1, 2)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(data))

	b := treeset.New[int]()
	require.NoError(t, json.Unmarshal(data, b))
	assert.Equal(t, []int{1, 2, 3}, b.Values())
}

func TestIntersectParallelPath(t *testing.T) {
	a := treeset.New[int]()
	b := treeset.New[int]()
	const n = 10000
	for i := 0; i < n; i++ {
		a.Add(i)
		if i%2 == 0 {
			b.Add(i)
		}
	}

	i := a.Intersect(b)
	assert.Equal(t, n/2, i.Len())
	for v := range i.Iter() {
		assert.Equal(t, 0, v%2)
	}
}
