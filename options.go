package scanio

import (
	"time"

	"github.com/hupe1980/scanio/mmap"
	"github.com/hupe1980/scanio/record"
)

type options struct {
	delim            byte
	term             byte
	workers          int
	progressInterval time.Duration
	advice           mmap.AccessPattern
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		delim:            record.DefaultDelimiter,
		term:             record.DefaultTerminator,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures a Scanner or a column open.
type Option func(*options)

// WithDelimiter sets the field delimiter byte. Default ','.
func WithDelimiter(b byte) Option {
	return func(o *options) {
		o.delim = b
	}
}

// WithTerminator sets the record terminator byte. Default '\n'.
func WithTerminator(b byte) Option {
	return func(o *options) {
		o.term = b
	}
}

// WithWorkers sets the partition count for ReadFileParallel.
// If workers <= 0, parallel.DefaultWorkers is used.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithProgressInterval enables progress log records during long scans,
// at most one per interval. Zero disables them.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithAdvice sets the access pattern hint applied to column mappings.
// Record scans always advise sequential access.
func WithAdvice(pattern mmap.AccessPattern) Option {
	return func(o *options) {
		o.advice = pattern
	}
}

// WithLogger sets the logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
