package scan

import (
	"errors"
	"strconv"
	"unsafe"
)

// Value is the set of types a Parser can produce.
type Value interface {
	uint64 | int64 | float64 | []byte | string
}

// Parser converts the field at a cursor into a typed value.
//
// A field ends at the nearer of the field delimiter and the record
// terminator. On success the cursor is left on that byte, which is the
// position record.Reader expects a column callback to stop at.
//
// Conversion rules:
//   - uint64: digits only
//   - int64: optional leading '+' or '-', then digits
//   - float64: strconv.ParseFloat syntax
//   - []byte, string: zero-copy view of the field, possibly empty
//
// Empty numeric fields are malformed. On error the cursor does not move.
//
// []byte and string values alias the cursor's buffer. When that buffer is a
// mapping they are valid only until the mapping is closed; copy them (for
// example with strings.Clone) to keep them longer.
type Parser[T Value] struct {
	delim byte
	term  byte
}

// NewParser returns a parser for fields separated by delim and records
// terminated by term.
func NewParser[T Value](delim, term byte) Parser[T] {
	return Parser[T]{delim: delim, term: term}
}

// Parse reads one field at c.
func (p Parser[T]) Parse(c *Cursor) (T, error) {
	start := c.pos
	FindEither(c, p.delim, p.term)
	field := c.buf[start:c.pos:c.pos]

	var out T
	var err error
	switch dst := any(&out).(type) {
	case *uint64:
		*dst, err = parseUintField(field)
	case *int64:
		*dst, err = parseIntField(field)
	case *float64:
		*dst, err = parseFloatField(field)
	case *[]byte:
		*dst = field
	case *string:
		*dst = unsafe.String(unsafe.SliceData(field), len(field))
	}
	if err != nil {
		c.pos = start
		var zero T
		return zero, numberError(err, start, field)
	}
	return out, nil
}

func parseFloatField(field []byte) (float64, error) {
	if len(field) == 0 {
		return 0, ErrMalformedNumber
	}
	v, err := strconv.ParseFloat(unsafe.String(unsafe.SliceData(field), len(field)), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrNumberOverflow
		}
		return 0, ErrMalformedNumber
	}
	return v, nil
}
