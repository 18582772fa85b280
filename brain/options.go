package brain

import (
	"io"
	"log/slog"
	"math"

	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// Option configures Detect, Convert, ForceFlip and Inspect.
type Option func(*options)

type options struct {
	native   Order
	maxSize  int
	maxDepth int
	logger   *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		native:   NativeOrder(),
		maxSize:  format.DefaultMaxSize,
		maxDepth: format.DefaultMaxDepth,
		logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithNativeOrder overrides the machine byte order that count readings are
// taken in. Only BigEndian and LittleEndian are accepted.
func WithNativeOrder(order Order) Option {
	return func(o *options) {
		if order.Valid() {
			o.native = order
		}
	}
}

// WithMaxSize sets the largest buffer accepted, in bytes (default 1 GiB).
// Zero or negative disables the limit.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithMaxDepth sets the deepest tree nesting accepted (default 4096).
// Zero or negative disables the limit.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithLogger sets the logger for detection tracing, which is written at
// debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
