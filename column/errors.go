package column

import (
	"errors"
	"fmt"
)

var (
	// ErrLayoutViolation is the kind of every *LayoutError.
	ErrLayoutViolation = errors.New("column: layout violation")

	// ErrOutOfBounds is returned when an index is outside [0, Len()).
	ErrOutOfBounds = errors.New("column: index out of bounds")
)

// LayoutError reports a mapped file that does not match the expected layout.
type LayoutError struct {
	Path   string
	Size   int // mapped length in bytes
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("column: %s: %s (mapped size %d)", e.Path, e.Reason, e.Size)
}

// Is reports ErrLayoutViolation as a match.
func (e *LayoutError) Is(target error) bool { return target == ErrLayoutViolation }

func outOfBounds(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, i, n)
}
