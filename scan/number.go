package scan

import "math"

// ParseUint reads the run of ASCII digits at the cursor as an unsigned
// integer. It stops at the first non-digit byte (the field's sentinel,
// typically a delimiter) or at Limit, leaving the cursor on that byte.
//
// The first byte must be a digit; otherwise ErrMalformedNumber is returned
// and the cursor does not move. Values above math.MaxUint64 return
// ErrNumberOverflow, also without moving the cursor.
func ParseUint(c *Cursor) (uint64, error) {
	v, n, err := parseDigits(c.buf[c.pos:])
	if err != nil {
		return 0, numberError(err, c.pos, c.buf[c.pos:c.pos+n])
	}
	c.pos += n
	return v, nil
}

// parseDigits returns the value of the leading digit run of b and its length.
func parseDigits(b []byte) (uint64, int, error) {
	if len(b) == 0 || !isDigit(b[0]) {
		return 0, min(len(b), 1), ErrMalformedNumber
	}
	var v uint64
	i := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		d := uint64(b[i] - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, i + 1, ErrNumberOverflow
		}
		v = v*10 + d
	}
	return v, i, nil
}

func parseUintField(field []byte) (uint64, error) {
	v, n, err := parseDigits(field)
	if err != nil {
		return 0, err
	}
	if n != len(field) {
		return 0, ErrMalformedNumber
	}
	return v, nil
}

func parseIntField(field []byte) (int64, error) {
	neg := false
	if len(field) > 0 && (field[0] == '-' || field[0] == '+') {
		neg = field[0] == '-'
		field = field[1:]
	}
	u, err := parseUintField(field)
	if err != nil {
		return 0, err
	}
	if neg {
		if u > uint64(math.MaxInt64)+1 {
			return 0, ErrNumberOverflow
		}
		return -int64(u-1) - 1, nil
	}
	if u > math.MaxInt64 {
		return 0, ErrNumberOverflow
	}
	return int64(u), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
