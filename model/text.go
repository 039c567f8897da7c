package model

import "fmt"

// Character is a single glyph reported by the character extractor.
type Character struct {
	// Text is the glyph, or a ligature string such as "fi"
	Text string

	// Left is the X coordinate of the glyph's left edge
	Left float64

	// Top is the distance of the glyph baseline from the top of the page.
	// Larger values are further down the page.
	Top float64

	// Width is the advance width of the glyph (0 when unknown)
	Width float64

	// Size is the font size in points
	Size float64

	// FontName is the font's PostScript or resource name
	FontName string
}

// Right returns the X coordinate of the glyph's right edge
func (c Character) Right() float64 {
	return c.Left + c.Width
}

// Line is a reconstructed horizontal strip of text on one page
type Line struct {
	// Page is the 1-based page number
	Page int

	// Top is the representative vertical position of the line
	Top float64

	// Text is the concatenated text, left to right
	Text string

	// Size is the dominant font size on the line
	Size float64

	// FontName is the dominant font on the line
	FontName string
}

// SameStyle reports whether two lines share font size and font name
func (l Line) SameStyle(other Line) bool {
	return l.Size == other.Size && l.FontName == other.FontName
}

// String returns a compact debug representation of the line
func (l Line) String() string {
	return fmt.Sprintf("p%d@%.1f %.1fpt %s %q", l.Page, l.Top, l.Size, l.FontName, l.Text)
}

// Block is one or more consecutive same-style lines merged into a unit
type Block struct {
	// Page is the 1-based page number
	Page int

	// Top is the top of the first constituent line
	Top float64

	// Text is the constituent line texts joined by a single space
	Text string

	// Size is the font size shared by every constituent line
	Size float64

	// FontName is the font shared by every constituent line
	FontName string

	// LineCount is the number of lines merged into the block
	LineCount int
}

// Before reports whether b precedes other in reading order (page, then top)
func (b Block) Before(other Block) bool {
	if b.Page != other.Page {
		return b.Page < other.Page
	}
	return b.Top < other.Top
}
