package outline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pdfoutline/model"
)

func sampleOutline() model.Outline {
	return model.Outline{
		Title: "Guide <draft>",
		Headings: []model.OutlineEntry{
			{Level: "H1", Text: "Intro", Page: 1},
			{Level: "H2", Text: "Scope & Goals", Page: 1},
			{Level: "H1", Text: "Usage", Page: 2},
		},
	}
}

func TestExportFormatString(t *testing.T) {
	tests := []struct {
		format ExportFormat
		name   string
		ext    string
	}{
		{ExportFormatJSON, "json", ".json"},
		{ExportFormatMarkdown, "markdown", ".md"},
		{ExportFormatHTML, "html", ".html"},
		{ExportFormat(99), "unknown", ".txt"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.format.FileExtension(); got != tt.ext {
			t.Errorf("FileExtension() = %q, want %q", got, tt.ext)
		}
	}
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ExportFormat
		wantErr  bool
	}{
		{"json", ExportFormatJSON, false},
		{"", ExportFormatJSON, false},
		{"MD", ExportFormatMarkdown, false},
		{"markdown", ExportFormatMarkdown, false},
		{"html", ExportFormatHTML, false},
		{"xml", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseExportFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseExportFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ParseExportFormat(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestExportJSONShape(t *testing.T) {
	out, err := NewExporter().ExportToString(sampleOutline())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(doc) != 2 {
		t.Errorf("expected exactly two top-level fields, got %v", doc)
	}
	if _, ok := doc["title"]; !ok {
		t.Error("missing title field")
	}
	if _, ok := doc["outline"]; !ok {
		t.Error("missing outline field")
	}
	if !strings.Contains(out, `"level": "H2"`) {
		t.Errorf("expected indented level field, got:\n%s", out)
	}
	if !strings.Contains(out, "Guide <draft>") {
		t.Errorf("HTML characters should not be escaped by default, got:\n%s", out)
	}
}

func TestExportJSONEmptyOutline(t *testing.T) {
	e := NewExporterWithConfig(ExportConfig{Format: ExportFormatJSON})
	out, err := e.ExportToString(model.Outline{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if strings.TrimSpace(out) != `{"title":"","outline":[]}` {
		t.Errorf("got %s, want {\"title\":\"\",\"outline\":[]}", out)
	}
}

func TestExportMarkdown(t *testing.T) {
	e := NewExporterWithConfig(ExportConfig{Format: ExportFormatMarkdown})
	out, err := e.ExportToString(sampleOutline())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := "# Guide <draft>\n\n- Intro (p. 1)\n  - Scope & Goals (p. 1)\n- Usage (p. 2)\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestExportHTML(t *testing.T) {
	e := NewExporterWithConfig(ExportConfig{Format: ExportFormatHTML})
	out, err := e.ExportToString(sampleOutline())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := `<nav class="outline"><h1>Guide &lt;draft&gt;</h1><ol>` +
		`<li data-page="1">Intro<ol><li data-page="1">Scope &amp; Goals</li></ol></li>` +
		`<li data-page="2">Usage</li></ol></nav>` + "\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestExportHTMLStartsDeep(t *testing.T) {
	o := model.Outline{Headings: []model.OutlineEntry{{Level: "H2", Text: "Deep", Page: 3}}}
	e := NewExporterWithConfig(ExportConfig{Format: ExportFormatHTML})
	out, err := e.ExportToString(o)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := `<nav class="outline"><ol><li><ol><li data-page="3">Deep</li></ol></li></ol></nav>` + "\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	e := NewExporterWithConfig(ExportConfig{Format: ExportFormat(42)})
	if _, err := e.ExportToString(sampleOutline()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := NewExporter().ExportToFile(sampleOutline(), path); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	var o model.Outline
	if err := json.Unmarshal(data, &o); err != nil {
		t.Fatalf("invalid JSON written: %v", err)
	}
	if o.Title != "Guide <draft>" || len(o.Headings) != 3 {
		t.Errorf("unexpected outline read back: %+v", o)
	}
}

func TestExportToFileUnsupportedLeavesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	e := NewExporterWithConfig(ExportConfig{Format: ExportFormat(42)})
	if err := e.ExportToFile(sampleOutline(), path); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written when export fails")
	}
}

func TestOutlineEntryDepth(t *testing.T) {
	tests := []struct {
		level    string
		expected int
	}{
		{"H1", 1},
		{"H12", 12},
		{"H0", 0},
		{"X1", 0},
		{"H", 0},
		{"Hx", 0},
	}

	for _, tt := range tests {
		if got := (model.OutlineEntry{Level: tt.level}).Depth(); got != tt.expected {
			t.Errorf("Depth(%q) = %d, want %d", tt.level, got, tt.expected)
		}
	}
}
