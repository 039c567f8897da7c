package outline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pdfoutline/model"
)

// ExportFormat defines the available export formats
type ExportFormat int

const (
	// ExportFormatJSON exports {"title": ..., "outline": [...]}
	ExportFormatJSON ExportFormat = iota
	// ExportFormatMarkdown exports a title and a nested bullet list
	ExportFormatMarkdown
	// ExportFormatHTML exports a <nav> element with nested ordered lists
	ExportFormatHTML
)

// String returns a human-readable representation of the export format
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSON:
		return "json"
	case ExportFormatMarkdown:
		return "markdown"
	case ExportFormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSON:
		return ".json"
	case ExportFormatMarkdown:
		return ".md"
	case ExportFormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseExportFormat parses a format name as accepted on the command line
func ParseExportFormat(name string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return ExportFormatJSON, nil
	case "md", "markdown":
		return ExportFormatMarkdown, nil
	case "html":
		return ExportFormatHTML, nil
	default:
		return 0, fmt.Errorf("unknown export format %q", name)
	}
}

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format ExportFormat

	// Indent is the JSON indentation per level; empty writes compact JSON
	Indent string

	// EscapeHTML escapes <, > and & inside JSON strings
	EscapeHTML bool
}

// DefaultExportConfig returns sensible defaults for export configuration
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:     ExportFormatJSON,
		Indent:     "  ",
		EscapeHTML: false,
	}
}

// Exporter writes outlines in one of the supported formats
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultExportConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Export writes the outline to w
func (e *Exporter) Export(o model.Outline, w io.Writer) error {
	switch e.config.Format {
	case ExportFormatJSON:
		return e.exportJSON(o, w)
	case ExportFormatMarkdown:
		return e.exportMarkdown(o, w)
	case ExportFormatHTML:
		return e.exportHTML(o, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes the outline to a file. Nothing is left behind when
// encoding fails.
func (e *Exporter) ExportToFile(o model.Outline, filename string) error {
	var buf bytes.Buffer
	if err := e.Export(o, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// ExportToString exports the outline to a string
func (e *Exporter) ExportToString(o model.Outline) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(o, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSON writes the canonical {"title", "outline"} document
func (e *Exporter) exportJSON(o model.Outline, w io.Writer) error {
	if o.Headings == nil {
		o.Headings = []model.OutlineEntry{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(e.config.EscapeHTML)
	if e.config.Indent != "" {
		encoder.SetIndent("", e.config.Indent)
	}
	if err := encoder.Encode(o); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return nil
}

// exportMarkdown writes the title as a heading and entries as nested bullets
func (e *Exporter) exportMarkdown(o model.Outline, w io.Writer) error {
	var sb strings.Builder
	if o.Title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", o.Title)
	}
	for _, entry := range o.Headings {
		depth := entry.Depth()
		if depth < 1 {
			depth = 1
		}
		fmt.Fprintf(&sb, "%s- %s (p. %d)\n", strings.Repeat("  ", depth-1), entry.Text, entry.Page)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// exportHTML renders a <nav> with one nested <ol> per heading level
func (e *Exporter) exportHTML(o model.Outline, w io.Writer) error {
	nav := element(atom.Nav, html.Attribute{Key: "class", Val: "outline"})
	if o.Title != "" {
		h1 := element(atom.H1)
		h1.AppendChild(&html.Node{Type: html.TextNode, Data: o.Title})
		nav.AppendChild(h1)
	}

	root := element(atom.Ol)
	nav.AppendChild(root)
	stack := []*html.Node{root}

	for _, entry := range o.Headings {
		depth := entry.Depth()
		if depth < 1 {
			depth = 1
		}
		for len(stack) > depth {
			stack = stack[:len(stack)-1]
		}
		for len(stack) < depth {
			parent := stack[len(stack)-1]
			host := parent.LastChild
			if host == nil {
				host = element(atom.Li)
				parent.AppendChild(host)
			}
			ol := element(atom.Ol)
			host.AppendChild(ol)
			stack = append(stack, ol)
		}

		li := element(atom.Li, html.Attribute{Key: "data-page", Val: strconv.Itoa(entry.Page)})
		li.AppendChild(&html.Node{Type: html.TextNode, Data: entry.Text})
		stack[len(stack)-1].AppendChild(li)
	}

	if err := html.Render(w, nav); err != nil {
		return fmt.Errorf("rendering outline: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
