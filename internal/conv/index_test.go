package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexToUint64(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		got, err := IndexToUint64(0)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("max int", func(t *testing.T) {
		got, err := IndexToUint64(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := IndexToUint64(-1)
		assert.Error(t, err)
	})
}
