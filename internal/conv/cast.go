package conv

import (
	"fmt"
	"math"
)

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Span converts an on-disk (offset, size) pair into the half-open range
// [start, end) and reports whether it lies within [0, limit].
// It never overflows, whatever the input.
func Span(offset, size uint64, limit int) (start, end int, ok bool) {
	if limit < 0 {
		return 0, 0, false
	}
	l := uint64(limit)
	if offset > l || size > l-offset {
		return 0, 0, false
	}
	return int(offset), int(offset + size), true
}

// FitsTable reports whether a header of headerSize bytes followed by count
// entries of entrySize bytes fits within limit bytes.
func FitsTable(headerSize, entrySize int, count uint64, limit int) bool {
	if limit < headerSize || entrySize <= 0 {
		return false
	}
	return count <= uint64((limit-headerSize)/entrySize)
}
