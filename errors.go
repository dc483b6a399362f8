package scanio

import (
	"errors"
	"fmt"

	"github.com/hupe1980/scanio/column"
	"github.com/hupe1980/scanio/mmap"
	"github.com/hupe1980/scanio/record"
	"github.com/hupe1980/scanio/scan"
)

var (
	// ErrIO reports a failed open, stat, map, flush or close.
	ErrIO = mmap.ErrIO

	// ErrLayoutViolation reports a column file that does not match its layout.
	ErrLayoutViolation = column.ErrLayoutViolation

	// ErrMalformedNumber reports a field that is not a number of the
	// requested type.
	ErrMalformedNumber = scan.ErrMalformedNumber

	// ErrNumberOverflow reports a numeric field outside the target type's range.
	ErrNumberOverflow = scan.ErrNumberOverflow

	// ErrTruncatedRecord reports input that ends inside a record.
	ErrTruncatedRecord = record.ErrTruncatedRecord

	// ErrInvalidColumns reports a column selection that is not strictly
	// increasing and non-negative.
	ErrInvalidColumns = record.ErrInvalidColumns

	// ErrOutOfBounds reports an index or region outside a column or mapping.
	ErrOutOfBounds = column.ErrOutOfBounds
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Bounds unification.
	if errors.Is(err, mmap.ErrOutOfBounds) && !errors.Is(err, ErrOutOfBounds) {
		return fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	}

	return err
}
