// Package outline turns classified headings into the final document outline
// and exports it.
//
// [Build] promotes the first heading in reading order to the title and emits
// the remaining headings with levels ranked over the remaining sizes. An
// [Exporter] writes the result as JSON (the canonical artifact), Markdown or
// an HTML navigation list.
//
//	o := outline.Build(classification.Headings, outline.DefaultOptions())
//	err := outline.NewExporter().ExportToFile(o, "document.json")
package outline
