package stack

import (
	"runtime"

	"go.uber.org/zap"
)

// Options configures the batch functions.
type Options struct {
	// Workers bounds the number of columns processed concurrently.
	Workers int
	// Logger receives progress and summary messages.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses one worker per available CPU and discards log output.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// WithWorkers sets the number of concurrent workers. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the defaults.
func ApplyOptions(opts ...Option) Options {
	o := DefaultOptions()

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
