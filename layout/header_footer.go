package layout

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/pdfoutline/model"
)

var digitRun = regexp.MustCompile(`\d+`)

// HeaderFooterConfig holds configuration for header/footer detection
type HeaderFooterConfig struct {
	// PositionTolerance is the width of the vertical bands Top is rounded to
	// when comparing line positions across pages.
	// Default: 3 points
	PositionTolerance float64

	// RecurrenceThreshold is the minimum fraction of the document's pages a
	// line must recur on, at the same band with the same text, to be treated
	// as boilerplate (0.0 to 1.0).
	// Default: 0.5
	RecurrenceThreshold float64

	// MinPages is the minimum number of pages a line must recur on.
	// Default: 2
	MinPages int

	// MatchPageNumbers treats page number lines that differ only in their
	// digits ("Page 3", "Page 4") as the same text.
	// Default: false
	MatchPageNumbers bool
}

// DefaultHeaderFooterConfig returns sensible default configuration
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		PositionTolerance:   3.0,
		RecurrenceThreshold: 0.5,
		MinPages:            2,
		MatchPageNumbers:    false,
	}
}

// RecurringLine describes a line detected as a running header or footer
type RecurringLine struct {
	// Text is the text of the first occurrence
	Text string

	// Top is the rounded vertical band the line recurs at
	Top float64

	// Pages lists the 1-based pages the line appears on, ascending
	Pages []int
}

// bandKey identifies a line by its text and rounded vertical position
type bandKey struct {
	text string
	band float64
}

// BoilerplateTally accumulates line positions across the pages of one
// document and decides which lines are running headers or footers.
// A tally must not be shared between documents.
type BoilerplateTally struct {
	config    HeaderFooterConfig
	pageCount int
	pages     map[bandKey]map[int]bool
	first     map[bandKey]string
	order     []bandKey
}

// NewBoilerplateTally creates an empty tally for a document with pageCount
// pages
func NewBoilerplateTally(pageCount int, config HeaderFooterConfig) *BoilerplateTally {
	return &BoilerplateTally{
		config:    config,
		pageCount: pageCount,
		pages:     make(map[bandKey]map[int]bool),
		first:     make(map[bandKey]string),
	}
}

// Observe records the lines of one or more pages
func (t *BoilerplateTally) Observe(lines []model.Line) {
	for _, line := range lines {
		key := t.key(line)
		seen, ok := t.pages[key]
		if !ok {
			seen = make(map[int]bool)
			t.pages[key] = seen
			t.first[key] = line.Text
			t.order = append(t.order, key)
		}
		seen[line.Page] = true
	}
}

// Boilerplate reports whether line recurs often enough to be a header or
// footer
func (t *BoilerplateTally) Boilerplate(line model.Line) bool {
	return t.recurs(t.pages[t.key(line)])
}

// Filter returns lines without boilerplate, preserving order. Filtering an
// already filtered slice returns it unchanged.
func (t *BoilerplateTally) Filter(lines []model.Line) []model.Line {
	if t.pageCount < t.config.MinPages {
		return lines
	}

	filtered := make([]model.Line, 0, len(lines))
	for _, line := range lines {
		if !t.Boilerplate(line) {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// Recurring lists every boilerplate line detected so far, ordered by band and
// then by first appearance
func (t *BoilerplateTally) Recurring() []RecurringLine {
	var result []RecurringLine
	for _, key := range t.order {
		seen := t.pages[key]
		if !t.recurs(seen) {
			continue
		}

		pages := make([]int, 0, len(seen))
		for p := range seen {
			pages = append(pages, p)
		}
		sort.Ints(pages)

		result = append(result, RecurringLine{
			Text:  t.first[key],
			Top:   key.band,
			Pages: pages,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Top < result[j].Top
	})
	return result
}

// recurs applies the page-count and page-fraction thresholds
func (t *BoilerplateTally) recurs(seen map[int]bool) bool {
	if t.pageCount < t.config.MinPages || len(seen) < t.config.MinPages {
		return false
	}
	return float64(len(seen)) >= t.config.RecurrenceThreshold*float64(t.pageCount)
}

func (t *BoilerplateTally) key(line model.Line) bandKey {
	txt := strings.TrimSpace(line.Text)
	if t.config.MatchPageNumbers {
		if normalized := digitRun.ReplaceAllString(txt, "#"); isPageNumberPattern(normalized) {
			txt = normalized
		}
	}
	return bandKey{text: txt, band: band(line.Top, t.config.PositionTolerance)}
}

// band rounds top to the nearest multiple of tolerance
func band(top, tolerance float64) float64 {
	if tolerance <= 0 {
		return top
	}
	return math.Round(top/tolerance) * tolerance
}

// isPageNumberPattern checks if digit-normalized text looks like a page number
func isPageNumberPattern(normalizedText string) bool {
	patterns := []string{
		"#",           // Just a number
		"Page #",      // "Page 1"
		"- # -",       // "- 1 -"
		"# of #",      // "1 of 10"
		"Page # of #", // "Page 1 of 10"
		"#/#",         // "1/10"
		"p. #",        // "p. 1"
		"pg. #",       // "pg. 1"
	}

	trimmed := strings.TrimSpace(normalizedText)
	for _, pattern := range patterns {
		if strings.EqualFold(trimmed, pattern) {
			return true
		}
	}
	return false
}
