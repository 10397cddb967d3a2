package visited

// Set records which indices have been seen.
type Set interface {
	// TestAndVisit marks id as seen and reports whether it was ALREADY seen.
	TestAndVisit(id uint64) bool
	// Visited reports whether id has been seen.
	Visited(id uint64) bool
	// Reset forgets all seen ids.
	Reset()
}

// Dense tracks seen indices using a bitset and a dirty list for fast reset.
type Dense struct {
	bits  []uint64
	dirty []uint64
}

var _ Set = (*Dense)(nil)

// NewDense creates a dense set able to hold ids in [0, capacity) without growing.
func NewDense(capacity int) *Dense {
	if capacity < 0 {
		capacity = 0
	}
	return &Dense{
		bits:  make([]uint64, (capacity+63)/64),
		dirty: make([]uint64, 0, 16),
	}
}

// TestAndVisit implements Set.
func (v *Dense) TestAndVisit(id uint64) bool {
	wordIdx := int(id >> 6)
	bitMask := uint64(1) << (id & 63)

	if wordIdx >= len(v.bits) {
		v.grow(wordIdx + 1)
	}

	if v.bits[wordIdx]&bitMask != 0 {
		return true
	}
	v.bits[wordIdx] |= bitMask
	v.dirty = append(v.dirty, id)
	return false
}

// Visited implements Set.
func (v *Dense) Visited(id uint64) bool {
	wordIdx := int(id >> 6)
	if wordIdx >= len(v.bits) {
		return false
	}
	return v.bits[wordIdx]&(uint64(1)<<(id&63)) != 0
}

// Reset clears only the words touched since the last reset.
func (v *Dense) Reset() {
	for _, id := range v.dirty {
		v.bits[id>>6] &^= uint64(1) << (id & 63)
	}
	v.dirty = v.dirty[:0]
}

// Len returns the number of ids seen since the last reset.
func (v *Dense) Len() int { return len(v.dirty) }

func (v *Dense) grow(newLen int) {
	newCap := max(len(v.bits)*2, newLen)
	newBits := make([]uint64, newCap)
	copy(newBits, v.bits)
	v.bits = newBits
}
