package reader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pdfoutline/internal/testpdf"
	"github.com/tsawler/pdfoutline/model"
)

// createTempFile creates a temporary file with the given content
func createTempFile(t *testing.T, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return tmpFile
}

func TestOpenNonExistent(t *testing.T) {
	_, err := Open("nonexistent.pdf")
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}

	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExtractionError, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected error to wrap os.ErrNotExist")
	}
}

func TestOpenInvalidHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"not a pdf", "hello world, not a PDF", "invalid PDF header"},
		{"too short", "%PDF", "header too short"},
		{"bad version", "%PDF-x.y\n", "invalid version format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(createTempFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			var extErr *ExtractionError
			if !errors.As(err, &extErr) {
				t.Fatalf("expected *ExtractionError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q does not contain %q", err, tt.errText)
			}
		})
	}
}

func TestPDFVersionString(t *testing.T) {
	v := PDFVersion{Major: 1, Minor: 7}
	if v.String() != "1.7" {
		t.Errorf("String() = %q, want 1.7", v.String())
	}
}

func TestReaderCharacters(t *testing.T) {
	path := testpdf.WriteFile(t, "doc.pdf",
		testpdf.Page{Runs: []testpdf.Run{
			{Text: "Title", X: 72, Y: 700, Size: 24, Font: testpdf.Bold},
			{Text: "body", X: 72, Y: 650, Size: 12},
		}},
		testpdf.Page{},
	)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	if r.Version().String() != "1.4" {
		t.Errorf("Version = %s, want 1.4", r.Version())
	}
	if r.PageCount() != 2 {
		t.Fatalf("PageCount = %d, want 2", r.PageCount())
	}

	chars, err := r.Characters(1)
	if err != nil {
		t.Fatalf("Characters(1) failed: %v", err)
	}
	if len(chars) != len("Title")+len("body") {
		t.Fatalf("got %d characters, want %d", len(chars), len("Titlebody"))
	}

	first := chars[0]
	if first.Text != "T" {
		t.Errorf("first glyph = %q, want T", first.Text)
	}
	if first.Size != 24 {
		t.Errorf("first glyph size = %v, want 24", first.Size)
	}
	if first.FontName != "Helvetica-Bold" {
		t.Errorf("first glyph font = %q, want Helvetica-Bold", first.FontName)
	}
	// media box is inherited from the page tree: 792 - 700
	if first.Top != 92 {
		t.Errorf("first glyph top = %v, want 92", first.Top)
	}

	empty, err := r.Characters(2)
	if err != nil {
		t.Fatalf("Characters(2) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no characters on blank page, got %d", len(empty))
	}
}

func TestReaderCharactersOutOfRange(t *testing.T) {
	path := testpdf.WriteFile(t, "one.pdf", testpdf.Page{})
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	for _, page := range []int{0, 2} {
		_, err := r.Characters(page)
		var extErr *ExtractionError
		if !errors.As(err, &extErr) {
			t.Fatalf("Characters(%d): expected *ExtractionError, got %v", page, err)
		}
		if extErr.Page != page {
			t.Errorf("ExtractionError.Page = %d, want %d", extErr.Page, page)
		}
	}
}

func TestCloseTwice(t *testing.T) {
	r, err := Open(testpdf.WriteFile(t, "close.pdf", testpdf.Page{}))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestExtractionErrorMessage(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		err      *ExtractionError
		expected string
	}{
		{&ExtractionError{Path: "a.pdf", Err: base}, "extract a.pdf: boom"},
		{&ExtractionError{Path: "a.pdf", Page: 3, Err: base}, "extract a.pdf page 3: boom"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("Error() = %q, want %q", got, tt.expected)
		}
		if !errors.Is(tt.err, base) {
			t.Error("expected Unwrap to expose the cause")
		}
	}
}

func TestMemorySource(t *testing.T) {
	src := NewMemorySource(
		[]model.Character{{Text: "a", Size: 12}},
		nil,
	)

	if src.PageCount() != 2 {
		t.Fatalf("PageCount = %d, want 2", src.PageCount())
	}

	chars, err := src.Characters(1)
	if err != nil {
		t.Fatalf("Characters(1) failed: %v", err)
	}
	chars[0].Text = "changed"
	again, _ := src.Characters(1)
	if again[0].Text != "a" {
		t.Error("Characters should return a copy")
	}

	if chars, err := src.Characters(2); err != nil || len(chars) != 0 {
		t.Errorf("Characters(2) = %v, %v; want empty, nil", chars, err)
	}
	if _, err := src.Characters(3); err == nil {
		t.Error("expected error for page out of range")
	}
}
