package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is returned when a numeric field does not start with a digit
	// or contains non-numeric bytes.
	ErrMalformedNumber = errors.New("scan: malformed number")

	// ErrNumberOverflow is returned when a numeric field exceeds the target type.
	ErrNumberOverflow = errors.New("scan: number out of range")
)

// NumberError describes a failed numeric conversion at a cursor offset.
type NumberError struct {
	Offset int
	Field  string
	cause  error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%v at offset %d: %q", e.cause, e.Offset, e.Field)
}

func (e *NumberError) Unwrap() error { return e.cause }

func numberError(cause error, offset int, field []byte) error {
	const maxField = 32
	if len(field) > maxField {
		field = field[:maxField]
	}
	return &NumberError{Offset: offset, Field: string(field), cause: cause}
}
