package visited

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Sparse tracks seen indices in a compressed roaring64 bitmap.
type Sparse struct {
	bm *roaring64.Bitmap
}

var _ Set = (*Sparse)(nil)

// NewSparse creates an empty sparse set.
func NewSparse() *Sparse {
	return &Sparse{bm: roaring64.New()}
}

// TestAndVisit implements Set.
func (s *Sparse) TestAndVisit(id uint64) bool {
	return !s.bm.CheckedAdd(id)
}

// Visited implements Set.
func (s *Sparse) Visited(id uint64) bool {
	return s.bm.Contains(id)
}

// Reset implements Set.
func (s *Sparse) Reset() {
	s.bm.Clear()
}

// Len returns the number of ids seen since the last reset.
func (s *Sparse) Len() int {
	return int(s.bm.GetCardinality())
}
