package mutelems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c := New(WithMetricsCollector(metrics))
	buf := make([]int, 8)

	_, err := MutElemsWith(c, buf, 1, 3)
	require.NoError(t, err)
	_, err = MutElemsWith(c, buf, 1, 2, 3)
	require.NoError(t, err)
	_, err = MutElemsWith(c, buf, 1, 1)
	require.Error(t, err)
	_, err = MutElemsWith(c, buf, 8)
	require.Error(t, err)
	_, _, err = MutElemsPairWith(c, buf, 0, 7)
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(5), stats.ValidateCount)
	assert.Equal(t, int64(2+3+2+1+2), stats.IndicesTotal)
	assert.Equal(t, int64(1), stats.OutOfBoundsCount)
	assert.Equal(t, int64(1), stats.DuplicateCount)
	assert.Equal(t, map[Strategy]int64{
		StrategyTrivial: 1,
		StrategyPair:    3,
		StrategyLinear:  1,
	}, stats.StrategyCounts)
	assert.GreaterOrEqual(t, stats.ValidateAvgNanos, int64(0))
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.ValidateCount)
	assert.Zero(t, stats.ValidateAvgNanos)
	assert.Empty(t, stats.StrategyCounts)
}
