package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a value in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// DistinctIndices returns k distinct values in [0, n) in random order.
// It panics if k > n.
func (r *RNG) DistinctIndices(k, n int) []int {
	if k > n {
		panic("testutil: cannot draw more distinct indices than the buffer holds")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if k*4 >= n {
		return r.rand.Perm(n)[:k]
	}
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		ix := r.rand.Intn(n)
		if _, ok := seen[ix]; ok {
			continue
		}
		seen[ix] = struct{}{}
		out = append(out, ix)
	}
	return out
}

// IndicesWithDuplicate returns k values in [0, n) of which at least two are
// equal. It panics if k < 2 or n < 1.
func (r *RNG) IndicesWithDuplicate(k, n int) []int {
	if k < 2 || n < 1 {
		panic("testutil: a duplicate needs k >= 2 and n >= 1")
	}
	out := r.DistinctIndices(min(k-1, n), n)
	for len(out) < k {
		out = append(out, out[r.Intn(len(out))])
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sequence returns a buffer of n ints holding 0..n-1.
func Sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
