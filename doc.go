// Package scanio provides fast, low-level I/O for large delimited text
// files and pre-built binary columnar files.
//
// Files are memory mapped and scanned in place: no line splitting, no
// per-field allocation. The building blocks live in subpackages:
//
//   - scan: cursor, delimiter search and in-place number parsing
//   - record: column-selective record walking over a buffer or a file
//   - column: zero-copy fixed-stride and variable-length column views
//   - mmap: memory-mapped files with explicit lifetime
//   - parallel: fan-out helper with joined errors
//
// This package ties them together with logging, metrics and options.
//
// # Quick Start
//
//	s := scanio.New(scanio.WithDelimiter('|'))
//
//	var sum uint64
//	lines, err := s.ReadFile(ctx, "data.csv", []int{0, 3}, func(col int, c *scan.Cursor) {
//	    if col == 3 {
//	        v, _ := scan.ParseUint(c)
//	        sum += v
//	    }
//	})
//
// # Parallel Scans
//
// ReadFileParallel splits the mapping on record boundaries and runs one
// worker per partition. Callbacks run concurrently and receive the worker id
// so per-worker accumulators need no locking:
//
//	sums := make([]uint64, 8)
//	s := scanio.New(scanio.WithWorkers(8))
//	_, err := s.ReadFileParallel(ctx, path, []int{1}, func(w, col int, c *scan.Cursor) {
//	    v, _ := scan.ParseUint(c)
//	    sums[w] += v
//	})
//
// # Columnar Files
//
//	prices, err := scanio.OpenColumn[float64](ctx, "prices.col")
//	defer prices.Close()
//	cheap := prices.Select(func(p float64) bool { return p < 10 })
//
//	names, err := scanio.OpenStrings(ctx, "names.col")
//	defer names.Close()
//	name, err := names.String(0)
//
// Values returned by column views alias the mapping and must not be used
// after Close.
//
// # Errors
//
// Failures can be classified with errors.Is against ErrIO,
// ErrLayoutViolation, ErrMalformedNumber, ErrOutOfBounds, ErrTruncatedRecord
// and ErrInvalidColumns.
package scanio
