package pdfoutline

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/logging"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/reader"
)

// Extractor provides a fluent interface for extracting outlines from PDFs.
// Each configuration method returns a new Extractor instance, making it
// safe to derive several configurations from one base and to chain calls.
type Extractor struct {
	// Source
	filename string
	source   reader.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened

	// Configuration
	options ExtractOptions
}

// analysis holds the output of every pipeline stage for one document
type analysis struct {
	pageCount      int
	lines          []model.Line
	boilerplate    []layout.RecurringLine
	blocks         []model.Block
	classification *layout.Classification
	warnings       []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
	}
}

// ensureSource opens the PDF if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return err
	}
	e.source = r
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if !e.ownsSource || e.source == nil {
		return nil
	}

	var err error
	if c, ok := e.source.(io.Closer); ok {
		err = c.Close()
	}
	e.source = nil
	e.ownsSource = false
	e.sourceOpened = false
	return err
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages restricts extraction to the given pages (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	o, _, err := pdfoutline.Open("doc.pdf").Pages(1, 3, 5).Outline()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange restricts extraction to a range of pages (1-indexed, inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithConfig replaces every pipeline threshold at once.
func (e *Extractor) WithConfig(config layout.Config) *Extractor {
	newExt := e.clone()
	newExt.options.layout = config
	return newExt
}

// LineTolerance sets the vertical distance (points) within which characters
// are clustered into the same line.
func (e *Extractor) LineTolerance(points float64) *Extractor {
	newExt := e.clone()
	newExt.options.layout.Line.Tolerance = points
	return newExt
}

// RecurrenceThreshold sets the fraction of pages a line must repeat on, at the
// same position, to be dropped as a running header or footer.
func (e *Extractor) RecurrenceThreshold(fraction float64) *Extractor {
	newExt := e.clone()
	newExt.options.layout.HeaderFooter.RecurrenceThreshold = fraction
	return newExt
}

// PositionTolerance sets the band width used to compare line positions
// across pages.
func (e *Extractor) PositionTolerance(points float64) *Extractor {
	newExt := e.clone()
	newExt.options.layout.HeaderFooter.PositionTolerance = points
	return newExt
}

// MergeGapFactor sets the largest line distance, as a multiple of the font
// size, for adjacent same-style lines to merge into one block.
func (e *Extractor) MergeGapFactor(factor float64) *Extractor {
	newExt := e.clone()
	newExt.options.layout.Block.MergeGapFactor = factor
	return newExt
}

// MatchPageNumbers treats page number lines that differ only in their digits
// as the same running footer.
func (e *Extractor) MatchPageNumbers() *Extractor {
	newExt := e.clone()
	newExt.options.layout.HeaderFooter.MatchPageNumbers = true
	return newExt
}

// KeepHeadersFooters disables running header/footer removal.
func (e *Extractor) KeepHeadersFooters() *Extractor {
	newExt := e.clone()
	newExt.options.layout.FilterHeadersFooters = false
	return newExt
}

// DropDuplicates skips outline headings whose text repeats on the same page.
func (e *Extractor) DropDuplicates() *Extractor {
	newExt := e.clone()
	newExt.options.outline.DropDuplicates = true
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Outline extracts the title and leveled headings.
// This is a terminal operation that closes a reader opened by the Extractor.
//
// A document without any text larger than its body text yields an empty
// outline and a WarningNoStructure warning, not an error.
//
// Example:
//
//	o, warnings, err := pdfoutline.Open("document.pdf").Outline()
func (e *Extractor) Outline() (model.Outline, []Warning, error) {
	a, err := e.analyze()
	if err != nil {
		return model.Outline{}, nil, err
	}

	o := outline.Build(a.classification.Headings, e.options.outline)
	if o.Empty() {
		a.warnings = append(a.warnings, Warning{
			Type:    WarningNoStructure,
			Message: "no text larger than the body size; no structure detected",
		})
	}

	logging.Logger().Debug("outline built",
		slog.String("title", o.Title),
		slog.Int("headings", len(o.Headings)))

	return o, a.warnings, nil
}

// Headings returns every heading candidate, including the one that becomes
// the title, with levels ranked over all candidates.
// This is a terminal operation.
func (e *Extractor) Headings() ([]model.Heading, error) {
	a, err := e.analyze()
	if err != nil {
		return nil, err
	}
	return a.classification.Headings, nil
}

// Classify returns the body size and heading candidates.
// This is a terminal operation.
func (e *Extractor) Classify() (*layout.Classification, error) {
	a, err := e.analyze()
	if err != nil {
		return nil, err
	}
	return a.classification, nil
}

// Blocks returns the merged text blocks in reading order.
// This is a terminal operation.
func (e *Extractor) Blocks() ([]model.Block, error) {
	a, err := e.analyze()
	if err != nil {
		return nil, err
	}
	return a.blocks, nil
}

// Lines returns the reconstructed lines, without running headers and footers
// unless KeepHeadersFooters was set.
// This is a terminal operation.
func (e *Extractor) Lines() ([]model.Line, error) {
	a, err := e.analyze()
	if err != nil {
		return nil, err
	}
	return a.lines, nil
}

// Boilerplate returns the running headers and footers that were detected.
// This is a terminal operation.
func (e *Extractor) Boilerplate() ([]layout.RecurringLine, error) {
	a, err := e.analyze()
	if err != nil {
		return nil, err
	}
	return a.boilerplate, nil
}

// PageCount returns the number of pages in the document.
// This is a terminal operation.
func (e *Extractor) PageCount() (int, error) {
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	defer e.Close()

	return e.source.PageCount(), nil
}

// ============================================================================
// Pipeline
// ============================================================================

// analyze runs every stage over the selected pages. Characters are dropped as
// soon as the lines of their page are reconstructed.
func (e *Extractor) analyze() (*analysis, error) {
	cfg := e.options.layout
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := e.ensureSource(); err != nil {
		return nil, err
	}
	defer e.Close()

	pageNums, err := e.resolvePages()
	if err != nil {
		return nil, err
	}

	log := logging.Logger()
	a := &analysis{pageCount: len(pageNums)}

	lineDetector := layout.NewLineDetectorWithConfig(cfg.Line)
	tally := layout.NewBoilerplateTally(len(pageNums), cfg.HeaderFooter)

	for _, pageNum := range pageNums {
		chars, err := e.source.Characters(pageNum)
		if err != nil {
			return nil, err
		}

		lines := lineDetector.Detect(pageNum, chars)
		log.Debug("lines reconstructed",
			slog.Int("page", pageNum),
			slog.Int("characters", len(chars)),
			slog.Int("lines", len(lines)))

		if len(lines) == 0 {
			a.warnings = append(a.warnings, Warning{
				Type:    WarningEmptyPage,
				Page:    pageNum,
				Message: "no extractable text (image-only page?)",
			})
			continue
		}

		tally.Observe(lines)
		a.lines = append(a.lines, lines...)
	}

	if cfg.FilterHeadersFooters {
		before := len(a.lines)
		a.lines = tally.Filter(a.lines)
		a.boilerplate = tally.Recurring()
		log.Debug("headers and footers filtered",
			slog.Int("removed", before-len(a.lines)),
			slog.Int("patterns", len(a.boilerplate)))
	}

	a.blocks = layout.NewBlockMergerWithConfig(cfg.Block).Merge(a.lines)
	a.classification = layout.NewHeadingClassifier().Classify(a.blocks)

	log.Debug("headings classified",
		slog.Int("blocks", len(a.blocks)),
		slog.Float64("body_size", a.classification.BodySize),
		slog.Int("headings", len(a.classification.Headings)))

	return a, nil
}

// resolvePages returns the selected 1-based page numbers in ascending order.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.source.PageCount()

	if len(e.options.pages) == 0 {
		pageNums := make([]int, pageCount)
		for i := range pageNums {
			pageNums[i] = i + 1
		}
		return pageNums, nil
	}

	seen := make(map[int]bool)
	var pageNums []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pageNums = append(pageNums, p)
		}
	}

	sort.Ints(pageNums)
	return pageNums, nil
}
