package visited

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSet(t *testing.T, v Set) {
	t.Helper()

	assert.False(t, v.Visited(1))
	assert.False(t, v.Visited(5))

	assert.False(t, v.TestAndVisit(1))
	assert.True(t, v.Visited(1))
	assert.False(t, v.Visited(5))
	assert.True(t, v.TestAndVisit(1))

	assert.False(t, v.TestAndVisit(5))
	assert.True(t, v.Visited(1))
	assert.True(t, v.Visited(5))

	v.Reset()
	assert.False(t, v.Visited(1))
	assert.False(t, v.Visited(5))

	assert.False(t, v.TestAndVisit(1))
	assert.True(t, v.Visited(1))
	assert.False(t, v.Visited(5))

	// beyond the initial capacity
	assert.False(t, v.TestAndVisit(1<<20))
	assert.True(t, v.TestAndVisit(1<<20))
	assert.True(t, v.Visited(1))
}

func TestDense(t *testing.T) {
	testSet(t, NewDense(10))
}

func TestSparse(t *testing.T) {
	testSet(t, NewSparse())
}

func TestDense_Resize(t *testing.T) {
	v := NewDense(2)
	assert.False(t, v.TestAndVisit(1))

	assert.False(t, v.TestAndVisit(130)) // Should grow
	assert.True(t, v.Visited(130))
	assert.True(t, v.Visited(1))
	assert.Equal(t, 2, v.Len())
}

func TestDense_NegativeCapacity(t *testing.T) {
	v := NewDense(-3)
	assert.False(t, v.Visited(0))
	assert.False(t, v.TestAndVisit(0))
	assert.True(t, v.Visited(0))
}

func TestSparse_LargeKeys(t *testing.T) {
	v := NewSparse()
	keys := []uint64{0, 1 << 32, 1<<40 + 7, 1<<62 - 1}
	for _, k := range keys {
		assert.False(t, v.TestAndVisit(k))
	}
	for _, k := range keys {
		assert.True(t, v.TestAndVisit(k))
	}
	assert.Equal(t, len(keys), v.Len())

	v.Reset()
	assert.Equal(t, 0, v.Len())
}

func BenchmarkDense_TestAndVisit(b *testing.B) {
	v := NewDense(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for id := uint64(0); id < 64; id++ {
			v.TestAndVisit(id * 13 % 1024)
		}
		v.Reset()
	}
}

func BenchmarkSparse_TestAndVisit(b *testing.B) {
	v := NewSparse()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for id := uint64(0); id < 64; id++ {
			v.TestAndVisit(id * 1_000_003)
		}
		v.Reset()
	}
}
