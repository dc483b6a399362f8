// Package record walks delimited text one record at a time.
//
// A Reader positions a scan.Cursor at the first byte of each requested
// column and hands it to a callback. The callback owns the field: it must
// leave the cursor on the byte that ends the field (the delimiter, the
// terminator or the end of input), typically by calling scan.Find or a
// scan.Parser. The Reader then resumes skipping from there.
//
//	r := record.New(record.WithDelimiter('|'))
//	n, err := r.ReadFile("orders.tbl", []int{0, 4}, func(col int, c *scan.Cursor) {
//		v, _ := scan.NewParser[uint64]('|', '\n').Parse(c)
//		...
//	})
//
// Quoting and escaping are not recognized: delimiter and terminator bytes
// must never appear inside a field.
package record
