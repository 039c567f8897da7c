// Package model provides the intermediate representation used by the outline
// pipeline.
//
// Data flows through the types in this package strictly forward:
//
//	Character -> Line -> Block -> Heading -> Outline
//
// # Characters
//
// A [Character] is a single glyph (or ligature) as reported by the PDF
// character extractor, positioned by its left edge and the distance of its
// baseline from the top of the page.
//
// # Lines and Blocks
//
// A [Line] is a reconstructed horizontal strip of text at one vertical
// position on one page. A [Block] is one or more consecutive Lines sharing the
// same font size and font name, merged into a single heading or body unit.
//
// # Outline
//
// A [Heading] is a Block whose font size exceeds the document body size,
// annotated with a level. The final [Outline] holds the document title and the
// leveled heading entries in reading order, and marshals to JSON as:
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
package model
