package vector

import "go.uber.org/zap"

// Option configures a Vector at construction time.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	capacity int
}

// WithLogger sets the logger used to report reallocations.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCapacity reserves n slots up front. Size stays 0.
// Values <= 0 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: nopLogger}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
