package scan

// Cursor is a mutable, bounded view [Pos, Limit) over a byte buffer.
//
// The cursor borrows buf; it must not be used after the memory backing buf
// is released (e.g. after the owning mmap.File is closed). A Cursor is not
// safe for concurrent use.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor spanning the whole of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current start offset.
func (c *Cursor) Pos() int { return c.pos }

// Limit returns the exclusive end offset.
func (c *Cursor) Limit() int { return len(c.buf) }

// Len returns the number of unread bytes.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Done reports whether the cursor is exhausted.
func (c *Cursor) Done() bool { return c.pos >= len(c.buf) }

// Peek returns the byte at the cursor. ok is false when exhausted.
func (c *Cursor) Peek() (b byte, ok bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos], true
}

// Is reports whether the byte at the cursor equals b.
func (c *Cursor) Is(b byte) bool {
	return c.pos < len(c.buf) && c.buf[c.pos] == b
}

// Bytes returns the unread bytes without copying.
func (c *Cursor) Bytes() []byte {
	return c.buf[c.pos:]
}

// Buffer returns the whole underlying buffer.
func (c *Cursor) Buffer() []byte {
	return c.buf
}

// Advance moves the cursor n bytes forward, stopping at Limit.
func (c *Cursor) Advance(n int) {
	c.Seek(c.pos + n)
}

// Seek moves the cursor to pos, clamped to [0, Limit].
func (c *Cursor) Seek(pos int) {
	switch {
	case pos < 0:
		c.pos = 0
	case pos > len(c.buf):
		c.pos = len(c.buf)
	default:
		c.pos = pos
	}
}

// Reset rewinds the cursor to the start of the buffer.
func (c *Cursor) Reset() {
	c.pos = 0
}
