package scan

import "github.com/hupe1980/scanio/internal/simd"

// Find advances c to the first occurrence of delim in [Pos, Limit), or to
// Limit if there is none. A cursor already positioned on delim does not move.
func Find(c *Cursor, delim byte) {
	buf, i, limit := c.buf, c.pos, len(c.buf)

	for i+simd.LaneSize < limit {
		if mask := simd.EqualMask(buf[i:], delim); mask != 0 {
			c.pos = i + simd.FirstSet(mask)
			return
		}
		i += simd.LaneSize
	}

	for i < limit && buf[i] != delim {
		i++
	}
	c.pos = i
}

// FindNth advances c to the n-th (1-based) occurrence of delim in
// [Pos, Limit). If fewer than n occurrences exist the cursor ends at Limit.
// FindNth(c, d, 1) always lands where Find(c, d) does; n < 1 is treated as 1.
func FindNth(c *Cursor, delim byte, n int) {
	if n < 1 {
		n = 1
	}
	buf, i, limit := c.buf, c.pos, len(c.buf)

	for i+simd.LaneSize < limit {
		mask := simd.EqualMask(buf[i:], delim)
		if hits := simd.Count(mask); hits < n {
			n -= hits
			i += simd.LaneSize
			continue
		}
		c.pos = i + simd.NthSet(mask, n)
		return
	}

	for ; i < limit && n > 0; i++ {
		if buf[i] == delim {
			n--
		}
	}
	if n == 0 {
		// Step back onto the match consumed last.
		i--
	}
	c.pos = i
}

// FindEither advances c to the nearer occurrence of a or b, or to Limit.
// It is used to find the end of a field that may close with either the
// field delimiter or the record terminator.
func FindEither(c *Cursor, a, b byte) {
	buf, i, limit := c.buf, c.pos, len(c.buf)

	for i+simd.LaneSize < limit {
		if mask := simd.EqualMask2(buf[i:], a, b); mask != 0 {
			c.pos = i + simd.FirstSet(mask)
			return
		}
		i += simd.LaneSize
	}

	for i < limit && buf[i] != a && buf[i] != b {
		i++
	}
	c.pos = i
}

// Skip advances c past the next occurrence of delim, or to Limit.
func Skip(c *Cursor, delim byte) {
	Find(c, delim)
	if c.pos < len(c.buf) {
		c.pos++
	}
}

// Count returns the number of occurrences of delim in the unread bytes
// without moving the cursor.
func Count(c *Cursor, delim byte) int {
	buf, i, limit := c.buf, c.pos, len(c.buf)
	total := 0

	for i+simd.LaneSize <= limit {
		total += simd.Count(simd.EqualMask(buf[i:], delim))
		i += simd.LaneSize
	}
	for ; i < limit; i++ {
		if buf[i] == delim {
			total++
		}
	}
	return total
}
