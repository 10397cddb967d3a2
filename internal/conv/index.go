package conv

import "fmt"

// IndexToUint64 converts a non-negative index to uint64.
func IndexToUint64(i int) (uint64, error) {
	if i < 0 {
		return 0, fmt.Errorf("index %d cannot be converted to uint64 (negative)", i)
	}
	return uint64(i), nil
}
