package detlog

import "github.com/crimson-sun/detlog/internal/engine/filter"

type options struct {
	sourcePrefix string
	maxCount     int64
	threshold    int64
	top          int
}

// Option configures an analysis run.
type Option func(*options)

// WithSourcePrefix only admits sources starting with prefix (case-sensitive).
func WithSourcePrefix(prefix string) Option {
	return func(o *options) {
		o.sourcePrefix = prefix
	}
}

// WithMaxCount discards records with more than n detections as corrupt.
// A negative n disables the ceiling. Default: 200.
func WithMaxCount(n int64) Option {
	return func(o *options) {
		o.maxCount = n
	}
}

// WithoutMaxCount disables the data-cleaning ceiling.
func WithoutMaxCount() Option {
	return WithMaxCount(filter.NoMaxCount)
}

// WithThreshold sets the detection count at or above which a frame is
// counted as high. Default: 15.
func WithThreshold(n int64) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithTop sets how many of the highest-count frames to rank. Zero or a
// negative n disables ranking. Default: 10.
func WithTop(n int) Option {
	return func(o *options) {
		o.top = n
	}
}

func defaultOptions() options {
	return options{
		maxCount:  200,
		threshold: 15,
		top:       10,
	}
}
