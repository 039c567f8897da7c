package layout

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/tsawler/pdfoutline/internal/stats"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/text"
)

// LineConfig holds configuration for line reconstruction
type LineConfig struct {
	// Tolerance is the maximum Top difference (points) between a character and
	// the first character of a line for both to share the line.
	// Default: 2
	Tolerance float64

	// SizePrecision is the step font sizes are rounded to, so that sizes such
	// as 11.96 and 12.0 compare equal. 0 disables rounding.
	// Default: 0.1
	SizePrecision float64

	// WordGapFactor inserts a space between two glyphs when the horizontal gap
	// exceeds this fraction of the font size. Only applies when the extractor
	// reports glyph widths. 0 disables gap spacing.
	// Default: 0.3
	WordGapFactor float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		Tolerance:     2.0,
		SizePrecision: 0.1,
		WordGapFactor: 0.3,
	}
}

// LineDetector reconstructs text lines from the characters of one page
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{
		config: config,
	}
}

// Detect groups the characters of a page into lines ordered top to bottom.
// Characters may arrive in any order. Lines that contain only whitespace are
// dropped.
func (d *LineDetector) Detect(page int, chars []model.Character) []model.Line {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]model.Character, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].Left < sorted[j].Left
	})

	var lines []model.Line
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].Top-sorted[start].Top <= d.config.Tolerance {
			continue
		}
		if line, ok := d.buildLine(page, sorted[start:i]); ok {
			lines = append(lines, line)
		}
		start = i
	}

	return lines
}

// buildLine assembles one cluster of characters into a line. Lines whose
// glyphs are mostly right-to-left are read from the right edge.
func (d *LineDetector) buildLine(page int, cluster []model.Character) (model.Line, bool) {
	top := cluster[0].Top

	sort.SliceStable(cluster, func(i, j int) bool {
		return cluster[i].Left < cluster[j].Left
	})
	rtl := lineDirection(cluster) == text.RTL
	if rtl {
		slices.Reverse(cluster)
		restoreLTRRuns(cluster)
	}

	sizes := stats.NewFrequency[float64]()
	fonts := stats.NewFrequency[string]()

	var sb strings.Builder
	for i, c := range cluster {
		glyph := text.NormalizeGlyph(c.Text)
		if i > 0 && d.isWordGap(cluster[i-1], c, rtl) && !text.EndsWithSpace(sb.String()) {
			sb.WriteByte(' ')
		}
		sb.WriteString(glyph)

		if text.IsBlank(glyph) {
			continue
		}
		sizes.Add(roundTo(c.Size, d.config.SizePrecision))
		fonts.Add(c.FontName)
	}

	assembled := text.CollapseSpaces(sb.String())
	if assembled == "" {
		return model.Line{}, false
	}

	size, _ := sizes.Mode(stats.FirstSeen[float64])
	font, _ := fonts.Mode(stats.FirstSeen[string])

	return model.Line{
		Page:     page,
		Top:      top,
		Text:     assembled,
		Size:     size,
		FontName: font,
	}, true
}

// isWordGap reports whether the horizontal gap between prev and next is wide
// enough to be a word boundary
func (d *LineDetector) isWordGap(prev, next model.Character, rtl bool) bool {
	if d.config.WordGapFactor <= 0 || prev.Width <= 0 {
		return false
	}
	gap := next.Left - prev.Right()
	if rtl {
		if next.Width <= 0 {
			return false
		}
		gap = math.Max(gap, prev.Left-next.Right())
	}
	size := math.Max(prev.Size, next.Size)
	return gap > size*d.config.WordGapFactor
}

// restoreLTRRuns puts runs of left-to-right glyphs inside a reversed
// right-to-left line back in left-to-right order, so numbers and Latin words
// keep their order
func restoreLTRRuns(cluster []model.Character) {
	for i := 0; i < len(cluster); {
		if !ltrGlyph(cluster[i]) {
			i++
			continue
		}
		j := i
		for j < len(cluster) && ltrGlyph(cluster[j]) {
			j++
		}
		slices.Reverse(cluster[i:j])
		i = j
	}
}

func ltrGlyph(c model.Character) bool {
	if text.IsBlank(c.Text) {
		return false
	}
	for _, r := range c.Text {
		if text.CharDirection(r) == text.RTL {
			return false
		}
	}
	return true
}

func lineDirection(cluster []model.Character) text.Direction {
	var sb strings.Builder
	for _, c := range cluster {
		sb.WriteString(c.Text)
	}
	return text.DetectDirection(sb.String())
}

// roundTo rounds v to the nearest multiple of step
func roundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	inv := 1 / step
	return math.Round(v*inv) / inv
}
