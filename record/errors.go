package record

import "errors"

var (
	// ErrTruncatedRecord is returned by ReadRecord when the input ends before
	// all requested columns of a started record were reached.
	ErrTruncatedRecord = errors.New("record: truncated record")

	// ErrInvalidColumns is returned when column indices are negative or not
	// strictly increasing.
	ErrInvalidColumns = errors.New("record: columns must be non-negative and strictly increasing")
)

// Columns validates cols and returns them unchanged.
func Columns(cols ...int) ([]int, error) {
	if len(cols) == 0 {
		return nil, ErrInvalidColumns
	}
	prev := -1
	for _, col := range cols {
		if col <= prev {
			return nil, ErrInvalidColumns
		}
		prev = col
	}
	return cols, nil
}
