package pdfoutline

import (
	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/outline"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Page selection (1-indexed, nil means all pages)
	pages []int

	// Thresholds for every pipeline stage
	layout layout.Config

	// Outline construction
	outline outline.Options
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:   nil,
		layout:  layout.DefaultConfig(),
		outline: outline.DefaultOptions(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		layout:  o.layout,
		outline: o.outline,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
