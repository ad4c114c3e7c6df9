package sigslot

import (
	"github.com/rs/zerolog"
)

type Options struct {
	name          string
	logger        *zerolog.Logger
	maxConcurrent int64
}

func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

type Option func(o *Options)

func defaultOptions() *Options {
	nopL := zerolog.Nop()
	return &Options{
		logger: &nopL,
	}
}

// WithName sets a name used in log output. The name carries no identity
// semantics; two signals with the same name are still distinct.
func WithName(name string) Option {
	return func(o *Options) {
		o.name = name
	}
}

// WithLogger sets the logger emissions are reported to at debug level.
// The default discards everything.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// WithMaxConcurrent bounds how many handlers of an Asynchronous signal run
// at once during a single Emit. Zero or negative means unbounded. It has no
// effect on Synchronous signals.
func WithMaxConcurrent(n int64) Option {
	return func(o *Options) {
		o.maxConcurrent = n
	}
}
