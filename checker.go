package mutelems

import (
	"time"

	"github.com/hupe1980/mutelems/internal/conv"
	"github.com/hupe1980/mutelems/internal/visited"
)

// Checker validates index sets against a buffer length.
//
// A Checker holds only its configuration, so it may be shared between
// goroutines. The buffers handed to MutElemsWith are not protected.
type Checker struct {
	opts options
}

var defaultChecker = New()

// New creates a Checker configured by opts.
func New(opts ...Option) *Checker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Checker{opts: o}
}

// Validate reports whether indices can be handed out as disjoint references
// into a buffer of length n. A negative n is treated as 0.
//
// Bounds are checked first: the error names the first index, scanning left to
// right, that is negative or >= n. Duplicates are checked second: the error
// names the earliest position that repeats a value seen before, and the
// position where that value first appeared.
func (c *Checker) Validate(n int, indices ...int) error {
	return c.validate("Validate", n, indices)
}

// Strategy returns the duplicate check used for k indices into a buffer of
// length n.
func (c *Checker) Strategy(k, n int) Strategy {
	switch {
	case k <= 1:
		return StrategyTrivial
	case k == 2:
		return StrategyPair
	case k <= c.opts.linearLimit:
		return StrategyLinear
	case n <= 0 || (n-1)/c.opts.denseFactor < k:
		// n <= denseFactor*k without overflowing.
		return StrategyDense
	default:
		return StrategySparse
	}
}

func (c *Checker) validate(op string, n int, indices []int) error {
	start := time.Now()
	n = max(n, 0)

	strategy := c.Strategy(len(indices), n)
	err := checkBounds(n, indices)
	if err == nil {
		err = checkDistinct(strategy, n, indices)
	}

	c.opts.metricsCollector.RecordValidate(len(indices), n, strategy, time.Since(start), err)
	if err != nil {
		c.opts.logger.WithOp(op).LogRejected(n, len(indices), strategy, err)
	}
	return err
}

func checkBounds(n int, indices []int) error {
	for pos, ix := range indices {
		if ix < 0 || ix >= n {
			return &IndexBoundError{Position: pos, Index: ix, Length: n}
		}
	}
	return nil
}

// checkDistinct expects indices that already passed checkBounds.
func checkDistinct(strategy Strategy, n int, indices []int) error {
	switch strategy {
	case StrategyTrivial:
		return nil
	case StrategyPair:
		if indices[0] == indices[1] {
			return &IndicesOverlapError{First: 0, Second: 1, Index: indices[0]}
		}
		return nil
	case StrategyLinear:
		for second := 1; second < len(indices); second++ {
			for first := 0; first < second; first++ {
				if indices[first] == indices[second] {
					return &IndicesOverlapError{First: first, Second: second, Index: indices[second]}
				}
			}
		}
		return nil
	case StrategyDense:
		return scanSet(visited.NewDense(n), n, indices)
	default:
		return scanSet(visited.NewSparse(), n, indices)
	}
}

func scanSet(set visited.Set, n int, indices []int) error {
	for pos, ix := range indices {
		key, err := conv.IndexToUint64(ix)
		if err != nil {
			return &IndexBoundError{Position: pos, Index: ix, Length: n}
		}
		if set.TestAndVisit(key) {
			return &IndicesOverlapError{First: firstPosition(indices[:pos], ix), Second: pos, Index: ix}
		}
	}
	return nil
}

func firstPosition(indices []int, ix int) int {
	for pos, v := range indices {
		if v == ix {
			return pos
		}
	}
	return -1
}
