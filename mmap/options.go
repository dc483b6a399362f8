package mmap

import "os"

type options struct {
	writable bool
	create   bool
	perm     os.FileMode
	size     int64
	advice   AccessPattern
}

// Option configures Open.
type Option func(*options)

// WithWritable maps the file read-write (PROT_READ|PROT_WRITE, MAP_SHARED).
// Writes through Bytes() reach the file; use Flush to make them durable.
func WithWritable() Option {
	return func(o *options) {
		o.writable = true
	}
}

// WithCreate creates the file with perm if it does not exist.
// It implies WithWritable.
func WithCreate(perm os.FileMode) Option {
	return func(o *options) {
		o.create = true
		o.writable = true
		o.perm = perm
	}
}

// WithSize truncates or extends the file to size bytes before mapping it.
// Zero keeps the current file size. A nonzero size implies WithWritable.
func WithSize(size int64) Option {
	return func(o *options) {
		o.size = size
		if size != 0 {
			o.writable = true
		}
	}
}

// WithAdvice applies an access pattern hint right after mapping.
func WithAdvice(pattern AccessPattern) Option {
	return func(o *options) {
		o.advice = pattern
	}
}
