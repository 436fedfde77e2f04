package binding

import (
	"io"

	"github.com/joeycumines/stumpy"
)

// Option configures a Module at construction.
type Option interface {
	apply(*config)
}

type config struct {
	log *Logger
}

func resolveOptions(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o.apply(c)
	}
	if c.log == nil {
		c.log = stumpy.L.New(stumpy.L.WithStumpy())
	}
	return c
}

type withLoggerOption struct{ log *Logger }

func (o withLoggerOption) apply(c *config) { c.log = o.log }

// WithLogger injects the logger a Module logs command applications and
// contradictions through, so an embedder can redirect or silence it.
func WithLogger(log *Logger) Option {
	return withLoggerOption{log: log}
}

type withWriterOption struct{ w io.Writer }

func (o withWriterOption) apply(c *config) {
	c.log = stumpy.L.New(stumpy.L.WithStumpy(stumpy.WithWriter(o.w)))
}

// WithWriter is a convenience over WithLogger: builds the default
// stumpy-backed logger writing to w.
func WithWriter(w io.Writer) Option {
	return withWriterOption{w: w}
}
