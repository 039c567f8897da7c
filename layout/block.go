package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/pdfoutline/model"
)

// BlockConfig holds configuration for block merging
type BlockConfig struct {
	// MergeGapFactor is the largest Top distance between consecutive lines,
	// as a multiple of their font size, for the lines to merge into one block.
	// Default: 1.5
	MergeGapFactor float64
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		MergeGapFactor: 1.5,
	}
}

// BlockMerger coalesces consecutive same-style lines into blocks
type BlockMerger struct {
	config BlockConfig
}

// NewBlockMerger creates a new block merger with default configuration
func NewBlockMerger() *BlockMerger {
	return &BlockMerger{
		config: DefaultBlockConfig(),
	}
}

// NewBlockMergerWithConfig creates a block merger with custom configuration
func NewBlockMergerWithConfig(config BlockConfig) *BlockMerger {
	return &BlockMerger{
		config: config,
	}
}

// Merge walks lines in reading order (page, then top) and extends the current
// block with the next line only when both share page, font size and font name
// and the next line is within MergeGapFactor x size below the last merged
// line. Blocks are returned in reading order.
func (m *BlockMerger) Merge(lines []model.Line) []model.Block {
	if len(lines) == 0 {
		return nil
	}

	ordered := make([]model.Line, len(lines))
	copy(ordered, lines)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Page != ordered[j].Page {
			return ordered[i].Page < ordered[j].Page
		}
		return ordered[i].Top < ordered[j].Top
	})

	var blocks []model.Block
	var parts []string
	var current model.Block
	var last model.Line

	flush := func() {
		current.Text = strings.Join(parts, " ")
		current.LineCount = len(parts)
		blocks = append(blocks, current)
	}

	for i, line := range ordered {
		if i > 0 && m.adjacent(last, line) {
			parts = append(parts, line.Text)
			last = line
			continue
		}
		if i > 0 {
			flush()
		}
		current = model.Block{
			Page:     line.Page,
			Top:      line.Top,
			Size:     line.Size,
			FontName: line.FontName,
		}
		parts = []string{line.Text}
		last = line
	}
	flush()

	return blocks
}

// adjacent reports whether next continues the block whose last line is prev
func (m *BlockMerger) adjacent(prev, next model.Line) bool {
	if prev.Page != next.Page || !prev.SameStyle(next) {
		return false
	}
	gap := next.Top - prev.Top
	return gap >= 0 && gap <= prev.Size*m.config.MergeGapFactor
}
