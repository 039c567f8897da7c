// Package reader extracts positioned characters from PDF files.
//
// Decoding of the PDF byte stream is delegated to github.com/ledongthuc/pdf;
// this package adapts its output to [model.Character] values whose Top is
// measured downward from the top edge of the page.
//
// # Opening PDF Files
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for page := 1; page <= r.PageCount(); page++ {
//	    chars, err := r.Characters(page)
//	    ...
//	}
//
// # Errors
//
// Every failure to open or decode a document is reported as an
// [*ExtractionError]; panics raised by the decoder on malformed content are
// recovered and reported the same way.
//
// # Sources
//
// The outline pipeline consumes the [Source] interface. [MemorySource]
// implements it over characters held in memory, which is useful for tests and
// for characters produced by another extractor.
package reader
