package pdfoutline

import (
	"fmt"
	"strings"
)

// WarningType classifies non-fatal conditions found during extraction
type WarningType int

const (
	// WarningEmptyPage marks a page without extractable text, typically an
	// image-only (scanned) page
	WarningEmptyPage WarningType = iota
	// WarningNoStructure marks a document in which no text is larger than the
	// body text, so no title or headings were found
	WarningNoStructure
)

// String returns a short name for the warning type
func (t WarningType) String() string {
	switch t {
	case WarningEmptyPage:
		return "empty-page"
	case WarningNoStructure:
		return "no-structure"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition encountered while extracting an outline
type Warning struct {
	Type WarningType

	// Page is the 1-based page the warning refers to, or 0 for the document
	Page int

	Message string
}

// String formats the warning for display
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single line
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
