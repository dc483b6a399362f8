package scanio

import (
	"context"
	"time"

	"github.com/hupe1980/scanio/column"
	"github.com/hupe1980/scanio/mmap"
	"github.com/hupe1980/scanio/parallel"
	"github.com/hupe1980/scanio/record"
	"github.com/hupe1980/scanio/scan"
)

// ColumnFunc receives the cursor positioned at the first byte of column col.
// It must leave the cursor on the byte that ends the field.
type ColumnFunc = record.ColumnFunc

// WorkerColumnFunc is the ColumnFunc form used by parallel scans.
type WorkerColumnFunc = record.WorkerColumnFunc

// Scanner reads delimited files with a fixed configuration.
// A Scanner holds no per-scan state and may be shared between goroutines.
type Scanner struct {
	reader *record.Reader
	opts   options
}

// New creates a Scanner.
func New(optFns ...Option) *Scanner {
	o := applyOptions(optFns)
	return &Scanner{
		reader: record.New(
			record.WithDelimiter(o.delim),
			record.WithTerminator(o.term),
			record.WithLogger(o.logger.Logger),
			record.WithProgressInterval(o.progressInterval),
		),
		opts: o,
	}
}

// Reader returns the underlying record reader, for ReadLine or ReadBuffer
// over in-memory input.
func (s *Scanner) Reader() *record.Reader {
	return s.reader
}

// ReadFile maps path read-only and visits cols of every record in order.
// It returns the number of complete records. The mapping is closed before
// ReadFile returns; copy any field bytes fn needs to keep.
func (s *Scanner) ReadFile(ctx context.Context, path string, cols []int, fn ColumnFunc) (int, error) {
	return s.read(ctx, path, cols, func(m *mmap.File) (int, error) {
		return s.reader.Scan(m, cols, fn), nil
	})
}

// ReadFileParallel is ReadFile split across workers; see WithWorkers.
// fn is called concurrently and must be safe for concurrent use.
func (s *Scanner) ReadFileParallel(ctx context.Context, path string, cols []int, fn WorkerColumnFunc) (int, error) {
	workers := s.opts.workers
	if workers <= 0 {
		workers = parallel.DefaultWorkers()
	}
	return s.read(ctx, path, cols, func(m *mmap.File) (int, error) {
		return s.reader.ScanParallel(m, cols, fn, workers)
	})
}

func (s *Scanner) read(ctx context.Context, path string, cols []int, scanFn func(*mmap.File) (int, error)) (lines int, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	start := time.Now()
	var size int64
	defer func() {
		err = translateError(err)
		d := time.Since(start)
		s.opts.metricsCollector.RecordRead(lines, size, d, err)
		s.opts.logger.LogRead(ctx, path, lines, size, d, err)
	}()

	if _, err := record.Columns(cols...); err != nil {
		return 0, err
	}

	m, err := mmap.Open(path, mmap.WithAdvice(mmap.AccessSequential))
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	size = int64(m.Size())

	return scanFn(m)
}

// ParseField parses the field at c as T; see scan.Parser.
func ParseField[T scan.Value](c *scan.Cursor, optFns ...Option) (T, error) {
	o := applyOptions(optFns)
	v, err := scan.NewParser[T](o.delim, o.term).Parse(c)
	return v, translateError(err)
}

// OpenColumn maps path read-only as a packed column of T.
func OpenColumn[T column.Numeric](ctx context.Context, path string, optFns ...Option) (*column.Fixed[T], error) {
	o := applyOptions(optFns)

	start := time.Now()
	col, err := column.OpenFixed[T](path, mmap.WithAdvice(o.advice))
	err = translateError(err)
	o.metricsCollector.RecordOpen("fixed", time.Since(start), err)

	length := 0
	if col != nil {
		length = col.Len()
	}
	o.logger.LogOpen(ctx, "fixed", path, length, err)
	return col, err
}

// OpenStrings maps path read-only as a variable-length column. Only the
// header and slot table are checked; call Validate before using Unchecked.
func OpenStrings(ctx context.Context, path string, optFns ...Option) (*column.Strings, error) {
	o := applyOptions(optFns)

	start := time.Now()
	col, err := column.OpenStrings(path, mmap.WithAdvice(o.advice))
	err = translateError(err)
	o.metricsCollector.RecordOpen("strings", time.Since(start), err)

	length := 0
	if col != nil {
		length = col.Len()
	}
	o.logger.LogOpen(ctx, "strings", path, length, err)
	return col, err
}
