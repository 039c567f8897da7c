package reader

import (
	"fmt"

	"github.com/tsawler/pdfoutline/model"
)

// Source yields the characters of a document one page at a time. Pages are
// 1-based.
type Source interface {
	PageCount() int
	Characters(page int) ([]model.Character, error)
}

// MemorySource is a Source backed by characters already held in memory.
// Index 0 holds page 1.
type MemorySource struct {
	Name  string
	Pages [][]model.Character
}

// NewMemorySource creates a MemorySource from per-page characters
func NewMemorySource(pages ...[]model.Character) *MemorySource {
	return &MemorySource{Name: "memory", Pages: pages}
}

// PageCount returns the number of pages
func (m *MemorySource) PageCount() int {
	return len(m.Pages)
}

// Characters returns a copy of the characters on a 1-based page
func (m *MemorySource) Characters(page int) ([]model.Character, error) {
	if page < 1 || page > len(m.Pages) {
		return nil, &ExtractionError{Path: m.Name, Page: page, Err: fmt.Errorf("page out of range (1-%d)", len(m.Pages))}
	}
	return append([]model.Character(nil), m.Pages[page-1]...), nil
}
