// integration.go provides one-call helpers over the fluent Extractor
package pdfoutline

import (
	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/model"
)

// ExtractOutline extracts the outline of the PDF at path with default
// thresholds, discarding warnings.
//
// Example:
//
//	o, err := pdfoutline.ExtractOutline("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(o.Title)
//	for _, h := range o.Headings {
//	    fmt.Printf("%s %s (page %d)\n", h.Level, h.Text, h.Page)
//	}
func ExtractOutline(path string) (model.Outline, error) {
	return ExtractOutlineWithConfig(path, layout.DefaultConfig())
}

// ExtractOutlineWithConfig extracts the outline with custom thresholds
func ExtractOutlineWithConfig(path string, config layout.Config) (model.Outline, error) {
	o, _, err := Open(path).WithConfig(config).Outline()
	return o, err
}
