// Package visited provides presence sets for detecting repeated buffer indices.
//
// Two implementations share the Set interface:
//
//   - Dense: a flat bitset sized to the buffer length with a dirty list for
//     fast reset. Cheap when the buffer is small relative to the index count.
//   - Sparse: a compressed roaring64 bitmap whose memory follows the number of
//     indices seen rather than the buffer length.
//
// Neither implementation is safe for concurrent use.
package visited
