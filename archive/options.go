package archive

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/gbfs/errs"
	"github.com/arloliu/gbfs/format"
	"github.com/arloliu/gbfs/internal/options"
	"github.com/arloliu/gbfs/section"
)

// Option configures Open.
type Option = options.Option[*config]

// config holds the settings Open applies while parsing.
type config struct {
	storeKind   format.StoreKind
	capacity    int
	lengthCheck bool
	logger      *slog.Logger
}

func defaultConfig() *config {
	return &config{
		storeKind:   format.StoreDynamic,
		lengthCheck: true,
	}
}

// WithDynamicStore holds the directory in a slice sized from the header's
// entry count. This is the default.
func WithDynamicStore() Option {
	return options.NoError(func(c *config) {
		c.storeKind = format.StoreDynamic
		c.capacity = 0
	})
}

// WithFixedCapacity holds the directory in capacity preallocated slots.
//
// Archives declaring more than capacity entries are rejected with
// *errs.TooManyEntriesError rather than truncated.
//
// Parameters:
//   - capacity: Slot count, 1 to section.MaxEntryCount
//
// Returns an option that fails with errs.ErrInvalidCapacity for an out-of-range capacity.
func WithFixedCapacity(capacity int) Option {
	return func(c *config) error {
		if capacity < 1 || capacity > section.MaxEntryCount {
			return fmt.Errorf("%w: %d (must be 1..%d)", errs.ErrInvalidCapacity, capacity, section.MaxEntryCount)
		}
		c.storeKind = format.StoreFixed
		c.capacity = capacity

		return nil
	}
}

// WithLengthCheck controls whether the header's total_len is checked against
// the buffer (default: true). When enabled, a declared length larger than the
// buffer fails with *errs.TruncatedError; trailing bytes past total_len are
// always accepted.
func WithLengthCheck(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.lengthCheck = enabled
	})
}

// WithLogger sets the logger used for debug output. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		c.logger = logger
	})
}
