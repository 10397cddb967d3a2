package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinctIndices(t *testing.T) {
	rng := NewRNG(4711)

	for _, tc := range []struct{ k, n int }{{0, 0}, {1, 1}, {8, 10}, {8, 1000}, {100, 100}} {
		idx := rng.DistinctIndices(tc.k, tc.n)
		require.Len(t, idx, tc.k)

		seen := make(map[int]bool, tc.k)
		for _, ix := range idx {
			assert.GreaterOrEqual(t, ix, 0)
			assert.Less(t, ix, tc.n)
			assert.False(t, seen[ix], "repeated index %d", ix)
			seen[ix] = true
		}
	}

	assert.Panics(t, func() { rng.DistinctIndices(3, 2) })
}

func TestIndicesWithDuplicate(t *testing.T) {
	rng := NewRNG(4711)

	for _, tc := range []struct{ k, n int }{{2, 1}, {2, 10}, {9, 4}, {50, 1000}} {
		idx := rng.IndicesWithDuplicate(tc.k, tc.n)
		require.Len(t, idx, tc.k)

		seen := make(map[int]bool, tc.k)
		dup := false
		for _, ix := range idx {
			assert.Less(t, ix, tc.n)
			dup = dup || seen[ix]
			seen[ix] = true
		}
		assert.True(t, dup)
	}

	assert.Panics(t, func() { rng.IndicesWithDuplicate(1, 10) })
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	a := rng.DistinctIndices(5, 50)
	rng.Reset()
	b := rng.DistinctIndices(5, 50)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestSequence(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Sequence(4))
	assert.Empty(t, Sequence(0))
}
