// Package scan implements cursor-based byte scanning over memory-mapped text.
//
// A Cursor is a bounded view [Pos, Limit) over a buffer that every scanner
// advances in place. Find and FindNth locate delimiter occurrences by
// comparing 32-byte lanes (see internal/simd) and finish with a scalar pass
// over the remaining tail, so buffers shorter than one lane are handled by
// the tail alone.
//
//	c := scan.NewCursor(data)
//	scan.FindNth(c, '|', 2) // c.Pos() is now the offset of the 2nd '|'
//
// ParseUint and Parser convert the field at the cursor into typed values.
// Byte and string results are zero-copy views into the scanned buffer and
// must not outlive it.
package scan
