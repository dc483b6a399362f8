package record

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hupe1980/scanio/internal/simd"
	"github.com/hupe1980/scanio/mmap"
	"github.com/hupe1980/scanio/parallel"
	"github.com/hupe1980/scanio/scan"
	"golang.org/x/time/rate"
)

// ColumnFunc receives the cursor positioned at the first byte of column col.
// It must leave the cursor on the byte that ends the field.
type ColumnFunc func(col int, c *scan.Cursor)

// ColumnErrFunc is the fallible form of ColumnFunc used by ReadRecord.
type ColumnErrFunc func(col int, c *scan.Cursor) error

// WorkerColumnFunc is the ColumnFunc form used by ReadFileParallel. Cursor
// offsets are relative to the worker's partition.
type WorkerColumnFunc func(worker, col int, c *scan.Cursor)

// progressEvery is the number of records between progress checks.
const progressEvery = 1 << 16

// Reader walks delimited records. The zero value is not usable; use New.
// A Reader holds no per-scan state and may be shared between goroutines.
type Reader struct {
	delim            byte
	term             byte
	logger           *slog.Logger
	progressInterval time.Duration
}

// New creates a Reader for comma-delimited, newline-terminated records
// unless options say otherwise.
func New(optFns ...Option) *Reader {
	r := &Reader{
		delim:  DefaultDelimiter,
		term:   DefaultTerminator,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(r)
	}
	return r
}

// Delimiter returns the field delimiter byte.
func (r *Reader) Delimiter() byte { return r.delim }

// Terminator returns the record terminator byte.
func (r *Reader) Terminator() byte { return r.term }

// ReadLine visits the requested columns of the record at c and then moves c
// past the record's terminator. cols must be strictly increasing (see
// Columns); they are not re-validated here.
//
// ReadLine returns false, without calling fn for the column it was looking
// for, when the input ends before that column is reached. This is the end
// of input signal; a record cut short by the end of input is not counted.
func (r *Reader) ReadLine(c *scan.Cursor, cols []int, fn ColumnFunc) bool {
	ok, _ := r.walk(c, cols, func(col int, c *scan.Cursor) error {
		fn(col, c)
		return nil
	})
	return ok
}

// ReadRecord is the fallible form of ReadLine. It returns io.EOF when c is
// already exhausted, ErrTruncatedRecord when the input ends inside the
// record, or the first error returned by fn, which stops the walk.
func (r *Reader) ReadRecord(c *scan.Cursor, cols []int, fn ColumnErrFunc) error {
	if c.Done() {
		return io.EOF
	}
	ok, err := r.walk(c, cols, fn)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTruncatedRecord
	}
	return nil
}

func (r *Reader) walk(c *scan.Cursor, cols []int, fn ColumnErrFunc) (bool, error) {
	if c.Done() {
		return false, nil
	}

	skipped := 0
	for i, col := range cols {
		// Delimiters between the end of the previous field and this column.
		n := col - skipped
		switch {
		case n <= 0:
		case n == 1:
			scan.Find(c, r.delim)
		default:
			scan.FindNth(c, r.delim, n)
		}
		if c.Done() {
			return false, nil
		}
		if n > 0 {
			c.Advance(1)
		}

		if err := fn(col, c); err != nil {
			return false, err
		}
		skipped = col + 1

		if i == len(cols)-1 && c.Is(r.term) {
			c.Advance(1)
			return true, nil
		}
		c.Advance(1)
	}

	if !c.Done() && !c.Is(r.term) {
		scan.Find(c, r.term)
	}
	c.Advance(1)
	return true, nil
}

// ReadBuffer calls ReadLine over buf until the input is exhausted and
// returns the number of complete records.
func (r *Reader) ReadBuffer(buf []byte, cols []int, fn ColumnFunc) int {
	c := scan.NewCursor(buf)
	lines := 0
	for r.ReadLine(c, cols, fn) {
		lines++
	}
	return lines
}

// ReadFile maps path read-only and calls ReadLine until the input is
// exhausted. It returns the number of complete records. The mapping is
// released before ReadFile returns, including when fn panics, so bytes or
// strings fn takes from the cursor must be copied if they outlive the call.
func (r *Reader) ReadFile(path string, cols []int, fn ColumnFunc) (lines int, err error) {
	if _, err := Columns(cols...); err != nil {
		return 0, err
	}

	m, err := mmap.Open(path, mmap.WithAdvice(mmap.AccessSequential))
	if err != nil {
		return 0, fmt.Errorf("record: %w", err)
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("record: %w", cerr)
		}
	}()

	return r.Scan(m, cols, fn), nil
}

// Scan calls ReadLine over an open mapping until the input is exhausted and
// returns the number of complete records. cols are not re-validated.
func (r *Reader) Scan(m *mmap.File, cols []int, fn ColumnFunc) int {
	start := time.Now()
	c := scan.NewCursor(m.Bytes())

	var progress *rate.Sometimes
	if r.progressInterval > 0 {
		progress = &rate.Sometimes{Interval: r.progressInterval}
	}

	lines := 0
	for r.ReadLine(c, cols, fn) {
		lines++
		if progress != nil && lines%progressEvery == 0 {
			progress.Do(func() {
				r.logger.Info("scan progress",
					"path", m.Path(),
					"records", lines,
					"offset", c.Pos(),
					"size", c.Limit(),
				)
			})
		}
	}

	r.logger.Debug("scan completed",
		"path", m.Path(),
		"records", lines,
		"bytes", m.Size(),
		"kernel", simd.ActiveISA().String(),
		"duration", time.Since(start),
	)
	return lines
}

// ReadFileParallel maps path once, splits it into up to workers
// terminator-aligned partitions and scans them concurrently with
// parallel.Exec. fn is called from several goroutines and must be safe for
// concurrent use. A workers value <= 0 selects parallel.DefaultWorkers.
func (r *Reader) ReadFileParallel(path string, cols []int, fn WorkerColumnFunc, workers int) (lines int, err error) {
	if _, err := Columns(cols...); err != nil {
		return 0, err
	}

	m, err := mmap.Open(path, mmap.WithAdvice(mmap.AccessSequential))
	if err != nil {
		return 0, fmt.Errorf("record: %w", err)
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("record: %w", cerr)
		}
	}()

	return r.ScanParallel(m, cols, fn, workers)
}

// ScanParallel is the open-mapping form of ReadFileParallel.
func (r *Reader) ScanParallel(m *mmap.File, cols []int, fn WorkerColumnFunc, workers int) (int, error) {
	if workers <= 0 {
		workers = parallel.DefaultWorkers()
	}

	parts := Partition(m.Bytes(), workers, r.term)
	if len(parts) == 0 {
		return 0, nil
	}

	start := time.Now()
	counts := make([]int, len(parts))
	err := parallel.Exec(func(id, _ int) error {
		counts[id] = r.ReadBuffer(parts[id], cols, func(col int, c *scan.Cursor) {
			fn(id, col, c)
		})
		return nil
	}, len(parts))
	if err != nil {
		return 0, fmt.Errorf("record: %w", err)
	}

	lines := 0
	for _, n := range counts {
		lines += n
	}

	r.logger.Debug("parallel scan completed",
		"path", m.Path(),
		"records", lines,
		"workers", len(parts),
		"bytes", m.Size(),
		"duration", time.Since(start),
	)
	return lines, nil
}

// Partition splits buf into at most parts disjoint, non-empty slices that
// together cover buf. Every slice but the last ends just after a terminator,
// so no record straddles two slices.
func Partition(buf []byte, parts int, term byte) [][]byte {
	if len(buf) == 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}

	out := make([][]byte, 0, parts)
	c := scan.NewCursor(buf)
	prev := 0
	for i := 1; i < parts && prev < len(buf); i++ {
		lo, _ := parallel.Range(len(buf), i, parts)
		if lo <= prev {
			continue
		}
		// Start one byte early so a boundary that already follows a
		// terminator is kept as is.
		c.Seek(lo - 1)
		scan.Skip(c, term)
		if end := c.Pos(); end > prev {
			out = append(out, buf[prev:end:end])
			prev = end
		}
	}
	if prev < len(buf) {
		out = append(out, buf[prev:])
	}
	return out
}
