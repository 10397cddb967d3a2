package mutelems

// MutElems returns a pointer to s[indices[i]] for every i, in the order of
// indices.
//
// All indices must be in [0, len(s)) and pairwise distinct, so that no two of
// the returned pointers address the same element. Otherwise MutElems returns
// a nil slice and an *IndexBoundError or *IndicesOverlapError; bounds are
// checked before duplicates. An empty index list yields an empty slice.
//
// The pointers address the backing array of s and stay valid as long as the
// caller does not reslice past capacity and reallocate. Writes through them
// are visible through s.
func MutElems[S ~[]T, T any](s S, indices ...int) ([]*T, error) {
	return MutElemsWith(defaultChecker, s, indices...)
}

// MutElemsWith is MutElems using the configuration of c.
// A nil c uses the package defaults.
func MutElemsWith[S ~[]T, T any](c *Checker, s S, indices ...int) ([]*T, error) {
	if c == nil {
		c = defaultChecker
	}
	if err := c.validate("MutElems", len(s), indices); err != nil {
		return nil, err
	}
	return refs[T](s, indices), nil
}

// MutElemsPair returns pointers to s[i] and s[j]. It fails like MutElems when
// either index is out of bounds or i == j.
func MutElemsPair[S ~[]T, T any](s S, i, j int) (*T, *T, error) {
	return MutElemsPairWith(defaultChecker, s, i, j)
}

// MutElemsPairWith is MutElemsPair using the configuration of c.
// A nil c uses the package defaults.
func MutElemsPairWith[S ~[]T, T any](c *Checker, s S, i, j int) (*T, *T, error) {
	if c == nil {
		c = defaultChecker
	}
	if err := c.validate("MutElemsPair", len(s), []int{i, j}); err != nil {
		return nil, nil, err
	}
	return &s[i], &s[j], nil
}

// AsMutElems stores a pointer to s[i] in dst[i] for every element both slices
// cover and returns the number of pointers stored, min(len(dst), len(s)).
//
// It is meant for fixed-size arrays, where both lengths are the same
// constant:
//
//	a := [4]uint8{1, 2, 3, 4}
//	var es [4]*uint8
//	mutelems.AsMutElems(es[:], a[:])
func AsMutElems[T any](dst []*T, s []T) int {
	n := min(len(dst), len(s))
	for i := range n {
		dst[i] = &s[i]
	}
	return n
}

// AsMutElemsVec returns a pointer to every element of s in index order.
// It never fails; an empty s yields an empty slice.
func AsMutElemsVec[S ~[]T, T any](s S) []*T {
	out := make([]*T, len(s))
	AsMutElems[T](out, s)
	return out
}

// Validate reports whether indices can be passed to MutElems for a buffer of
// length n. See Checker.Validate.
func Validate(n int, indices ...int) error {
	return defaultChecker.Validate(n, indices...)
}

// refs must only be called with indices that passed validation against len(s).
func refs[T any](s []T, indices []int) []*T {
	out := make([]*T, len(indices))
	for i, ix := range indices {
		out[i] = &s[ix]
	}
	return out
}
