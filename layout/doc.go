// Package layout implements the stages of the outline pipeline that infer
// document structure from typography.
//
// The stages run strictly forward over one document:
//
//   - [LineDetector] clusters the characters of a page into lines
//   - [BoilerplateTally] finds lines that recur at the same position across
//     pages (running headers and footers) and filters them out
//   - [BlockMerger] merges adjacent same-style lines into blocks
//   - [HeadingClassifier] finds the body font size and ranks larger blocks
//     into heading levels
//
// Thresholds live in [Config]; [DefaultConfig] returns the defaults.
package layout
