// Package testutil provides testing utilities for mutelems.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG that generates index sets with known properties.
//
//	rng := testutil.NewRNG(seed)
//	idx := rng.DistinctIndices(8, 100)      // 8 distinct values in [0, 100)
//	dup := rng.IndicesWithDuplicate(8, 100) // at least one repeated value
package testutil
