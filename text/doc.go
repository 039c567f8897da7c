// Package text provides normalization of glyph text reported by PDF
// character extractors.
//
// Extractors report ligatures and presentation forms as single code points
// (for example U+FB01 "ﬁ"). [NormalizeGlyph] folds them to their
// compatibility decomposition so that reconstructed lines compare and export
// as plain text. [CollapseSpaces] squeezes runs of whitespace introduced when
// glyphs and synthesized word gaps are concatenated.
//
// [DetectDirection] reports the dominant writing direction of a run of
// glyphs, so that lines set in right-to-left scripts are assembled in
// reading order.
package text
