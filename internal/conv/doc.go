// Package conv provides checked conversions between buffer indices and the
// unsigned keys used by the presence sets in internal/visited.
//
// Indices are Go ints. A negative index has no unsigned representation and is
// reported instead of wrapping around.
package conv
