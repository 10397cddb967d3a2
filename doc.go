// Package mutelems hands out simultaneous pointers to distinct elements of a
// single slice.
//
// Go lets any number of pointers address the same element. Code that wants to
// update several elements through independent handles, and rely on those
// handles never aliasing, has to prove that the positions are distinct. This
// package does that check once, up front, and only then builds the pointers.
// It generalizes splitting a slice into two halves to an arbitrary set of
// individual elements.
//
// # Quick Start
//
//	a := []uint8{1, 2, 3, 4}
//
//	es, err := mutelems.MutElems(a, 1, 3)
//	if err != nil {
//	    return err
//	}
//	*es[0] = 5
//	*es[1] = 7
//	// a == [1 5 3 7]
//
// Fixed-size arrays are addressed through a[:], which shares storage:
//
//	b := [4]uint8{1, 2, 3, 4}
//	var all [4]*uint8
//	mutelems.AsMutElems(all[:], b[:])
//	*all[1] = 5
//
// Slices of runtime length use AsMutElemsVec:
//
//	ptrs := mutelems.AsMutElemsVec(a)
//
// # Validation
//
// Every index must lie in [0, len(s)) and no index may repeat. Bounds are
// checked first, duplicates second, and on failure no pointer is created:
//
//	_, err := mutelems.MutElems(a, 1, 1)
//	errors.Is(err, mutelems.ErrDuplicateIndex) // true
//
//	_, err = mutelems.MutElems(a, 4)
//	var be *mutelems.IndexBoundError
//	errors.As(err, &be) // be.Position == 0, be.Index == 4, be.Length == 4
//
// Duplicate detection picks a strategy from the number of indices k and the
// buffer length n: a direct comparison for pairs, an allocation-free pairwise
// scan for small k, a bitset over n when n is small relative to k, and a
// roaring bitmap otherwise. All strategies report the same violation.
//
// # Configuration
//
// The package-level functions share a default Checker. Use New with options
// to log rejected index sets, collect metrics or tune the strategy
// thresholds:
//
//	metrics := &mutelems.BasicMetricsCollector{}
//	c := mutelems.New(
//	    mutelems.WithLogger(mutelems.NewTextLogger(slog.LevelDebug)),
//	    mutelems.WithMetricsCollector(metrics),
//	)
//	es, err := mutelems.MutElemsWith(c, a, 0, 2)
//
// # Lifetime
//
// The pointers address the slice's backing array. They stay valid while that
// array is in use, but once the slice is grown past its capacity, later
// writes through the slice no longer reach the old array. Validation says
// nothing about other aliases the caller keeps; the package is meant for
// single-goroutine use of the buffer.
package mutelems
