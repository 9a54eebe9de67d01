package gcovblob

import (
	"fmt"

	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/internal/options"
	"github.com/arloliu/gcovblob/registry"
	"github.com/arloliu/gcovblob/sink"
)

// Option configures an Exporter.
type Option = options.Option[*config]

type config struct {
	capacity int
	sink     sink.Sink
	engine   endian.EndianEngine
}

func defaultConfig() *config {
	return &config{
		capacity: registry.DefaultCapacity,
		sink:     sink.Discard,
		engine:   endian.GetNativeEngine(),
	}
}

// WithRegistryCapacity sets how many files can be registered. Defaults to
// registry.DefaultCapacity.
func WithRegistryCapacity(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidRegistryCapacity, n)
		}
		c.capacity = n

		return nil
	})
}

// WithSink sets where the finished container goes. Defaults to sink.Discard.
func WithSink(s sink.Sink) Option {
	return options.New(func(c *config) error {
		if s == nil {
			return errs.ErrNilSink
		}
		c.sink = s

		return nil
	})
}

// WithByteOrder sets the byte order of the gcda words inside each record.
// The default is the host byte order, which is what gcov expects when it runs
// on a machine of the same endianness as the target.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(c *config) error {
		if engine == nil {
			return errs.ErrNilByteOrder
		}
		c.engine = engine

		return nil
	})
}

// WithLittleEndian lays out gcda words in little-endian order.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian lays out gcda words in big-endian order.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetBigEndianEngine()
	})
}
