package mutelems

import "fmt"

// Strategy identifies the duplicate check applied to an index set.
type Strategy uint8

const (
	// StrategyTrivial covers zero or one index: nothing can repeat.
	StrategyTrivial Strategy = iota
	// StrategyPair compares the two indices of a pair directly.
	StrategyPair
	// StrategyLinear compares every pair of indices without allocating.
	StrategyLinear
	// StrategyDense marks indices in a bitset sized to the buffer.
	StrategyDense
	// StrategySparse marks indices in a compressed roaring bitmap.
	StrategySparse

	numStrategies
)

func (s Strategy) String() string {
	switch s {
	case StrategyTrivial:
		return "trivial"
	case StrategyPair:
		return "pair"
	case StrategyLinear:
		return "linear"
	case StrategyDense:
		return "dense"
	case StrategySparse:
		return "sparse"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}
