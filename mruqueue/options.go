package mruqueue

import "github.com/datatrails/go-datatrails-common/logger"

// Options configures a Queue. The zero value is usable and logs nothing.
type Options struct {
	Log logger.Logger
}

type Option func(*Options)

// WithLogger sets the logger used to report the block layout and rejected
// arguments. Nothing is logged on the successful Fetch path.
func WithLogger(log logger.Logger) Option {
	return func(opts *Options) {
		opts.Log = log
	}
}

// NewOptions applies opts over the zero Options
func NewOptions(opts ...Option) Options {
	var options Options
	for _, o := range opts {
		o(&options)
	}
	return options
}
