package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate for out-of-range thresholds
var ErrInvalidConfig = errors.New("invalid layout config")

// Config holds the thresholds of every pipeline stage
type Config struct {
	// Line reconstruction configuration
	Line LineConfig

	// Header/footer detection configuration
	HeaderFooter HeaderFooterConfig

	// Block merging configuration
	Block BlockConfig

	// FilterHeadersFooters enables boilerplate removal before block merging
	FilterHeadersFooters bool
}

// DefaultConfig returns the default thresholds with header/footer filtering
// enabled
func DefaultConfig() Config {
	return Config{
		Line:                 DefaultLineConfig(),
		HeaderFooter:         DefaultHeaderFooterConfig(),
		Block:                DefaultBlockConfig(),
		FilterHeadersFooters: true,
	}
}

// Validate reports the first threshold that is out of range
func (c Config) Validate() error {
	switch {
	case c.Line.Tolerance < 0:
		return fmt.Errorf("%w: line tolerance %v must not be negative", ErrInvalidConfig, c.Line.Tolerance)
	case c.Line.SizePrecision < 0:
		return fmt.Errorf("%w: size precision %v must not be negative", ErrInvalidConfig, c.Line.SizePrecision)
	case c.Line.WordGapFactor < 0:
		return fmt.Errorf("%w: word gap factor %v must not be negative", ErrInvalidConfig, c.Line.WordGapFactor)
	case c.HeaderFooter.PositionTolerance <= 0:
		return fmt.Errorf("%w: position tolerance %v must be positive", ErrInvalidConfig, c.HeaderFooter.PositionTolerance)
	case c.HeaderFooter.RecurrenceThreshold < 0 || c.HeaderFooter.RecurrenceThreshold > 1:
		return fmt.Errorf("%w: recurrence threshold %v must be within [0, 1]", ErrInvalidConfig, c.HeaderFooter.RecurrenceThreshold)
	case c.HeaderFooter.MinPages < 2:
		return fmt.Errorf("%w: recurrence needs at least 2 pages, got %d", ErrInvalidConfig, c.HeaderFooter.MinPages)
	case c.Block.MergeGapFactor < 0:
		return fmt.Errorf("%w: merge gap factor %v must not be negative", ErrInvalidConfig, c.Block.MergeGapFactor)
	}
	return nil
}
