package model

import "strconv"

// Heading is a block whose font size exceeds the body size
type Heading struct {
	Block

	// Level is the 1-based rank of the heading's size among the distinct
	// heading sizes, largest first
	Level int
}

// Label returns the outline level label, e.g. "H2"
func (h Heading) Label() string {
	return LevelLabel(h.Level)
}

// LevelLabel formats a 1-based level as "H<level>"
func LevelLabel(level int) string {
	return "H" + strconv.Itoa(level)
}

// OutlineEntry is a single heading in the final outline
type OutlineEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the document title plus its leveled headings in reading order.
// Headings is never nil for outlines produced by the outline package, so it
// always encodes as a JSON array.
type Outline struct {
	Title    string         `json:"title"`
	Headings []OutlineEntry `json:"outline"`
}

// Empty reports whether no structure was detected in the document
func (o Outline) Empty() bool {
	return o.Title == "" && len(o.Headings) == 0
}

// Depth returns the numeric level of the entry ("H3" -> 3), or 0 when the
// label is malformed
func (e OutlineEntry) Depth() int {
	if len(e.Level) < 2 || e.Level[0] != 'H' {
		return 0
	}
	n, err := strconv.Atoi(e.Level[1:])
	if err != nil || n < 1 {
		return 0
	}
	return n
}
