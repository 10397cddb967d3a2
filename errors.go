package mutelems

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is matched by every *IndexBoundError.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrDuplicateIndex is matched by every *IndicesOverlapError.
	ErrDuplicateIndex = errors.New("duplicate index")
)

// IndexBoundError indicates that a requested index does not address an
// element of the target buffer.
//
// errors.Is(err, ErrIndexOutOfBounds) reports true for this error.
type IndexBoundError struct {
	// Position of the out-of-bounds index in the index list.
	Position int
	// Index is the offending index value.
	Index int
	// Length is the number of elements in the target; a valid index is
	// in [0, Length).
	Length int
}

func (e *IndexBoundError) Error() string {
	return fmt.Sprintf("index %d is %d, but target length is %d", e.Position, e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *IndexBoundError) Is(target error) bool { return target == ErrIndexOutOfBounds }

// IndicesOverlapError indicates a repeated value in the index list.
//
// errors.Is(err, ErrDuplicateIndex) reports true for this error.
type IndicesOverlapError struct {
	// First position of the repeated index in the index list.
	First int
	// Second position of the repeated index in the index list.
	Second int
	// Index is the repeated value.
	Index int
}

func (e *IndicesOverlapError) Error() string {
	return fmt.Sprintf("indices %d and %d are both %d", e.First, e.Second, e.Index)
}

// Is reports whether target is ErrDuplicateIndex.
func (e *IndicesOverlapError) Is(target error) bool { return target == ErrDuplicateIndex }
