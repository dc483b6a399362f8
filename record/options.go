package record

import (
	"log/slog"
	"time"
)

// Defaults for Reader.
const (
	DefaultDelimiter  = ','
	DefaultTerminator = '\n'
)

// Option configures a Reader.
type Option func(*Reader)

// WithDelimiter sets the field delimiter byte.
func WithDelimiter(b byte) Option {
	return func(r *Reader) {
		r.delim = b
	}
}

// WithTerminator sets the record terminator byte.
func WithTerminator(b byte) Option {
	return func(r *Reader) {
		r.term = b
	}
}

// WithLogger sets the logger used for file-level events.
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		r.logger = l
	}
}

// WithProgressInterval logs scan progress at most once per interval while
// reading a file. Zero disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(r *Reader) {
		r.progressInterval = d
	}
}
