// Package pdfoutline provides a fluent API for extracting a title and a
// leveled heading outline from a PDF, using only typography cues (font size,
// font name and vertical position).
//
// Basic usage:
//
//	o, warnings, err := pdfoutline.Open("document.pdf").Outline()
//	if err != nil {
//	    // the PDF could not be opened or decoded
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfoutline.FormatWarnings(warnings))
//	}
//
// With options:
//
//	o, _, err := pdfoutline.Open("report.pdf").
//	    PageRange(1, 20).
//	    RecurrenceThreshold(0.3).
//	    MergeGapFactor(1.2).
//	    Outline()
//
// The stages of the pipeline are available individually in the layout and
// outline packages.
package pdfoutline

import (
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/reader"
)

// Open returns an Extractor for the PDF at filename. The file is opened
// lazily by the first terminal operation and closed when it returns.
//
// Example:
//
//	o, _, err := pdfoutline.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already opened character source.
// The caller is responsible for closing the source if it needs closing.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	o, _, err := pdfoutline.FromSource(r).Outline()
func FromSource(src reader.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfoutline.Must(pdfoutline.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a call to Outline() and panics if the
// error is non-nil. It discards warnings.
//
// Example:
//
//	o := pdfoutline.MustOutline(pdfoutline.Open("document.pdf").Outline())
func MustOutline(o model.Outline, _ []Warning, err error) model.Outline {
	if err != nil {
		panic(err)
	}
	return o
}
