package efile

import (
	"envi-binreader/envi/etype"
	"github.com/go-kit/log"
)

// Option configures Open and OpenWithHeader.
type Option func(*options)

type options struct {
	headerPath   string
	headerNaming HeaderNaming
	byteOrder    *etype.ByteOrder
	strictSize   bool
	logger       log.Logger
}

func defaultOptions() *options {
	return &options{
		headerNaming: NamingAuto,
		logger:       log.NewNopLogger(),
	}
}

// WithHeaderPath uses path as the header instead of deriving it from the binary file name.
func WithHeaderPath(path string) Option {
	return func(o *options) {
		o.headerPath = path
	}
}

func WithHeaderNaming(naming HeaderNaming) Option {
	return func(o *options) {
		o.headerNaming = naming
	}
}

// WithByteOrder overrides the "byte order" header key.
func WithByteOrder(order etype.ByteOrder) Option {
	return func(o *options) {
		o.byteOrder = &order
	}
}

// WithStrictSize makes a file size mismatch fail OpenWithHeader instead of
// being recorded in Diagnostics.
func WithStrictSize() Option {
	return func(o *options) {
		o.strictSize = true
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
