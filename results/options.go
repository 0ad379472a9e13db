package results

import "log/slog"

// Option configures Read.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	maxRows int
}

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMaxRows limits the number of rows a document may contain. Zero or a
// negative value disables the limit.
func WithMaxRows(n int) Option {
	return func(opts *options) {
		opts.maxRows = n
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
