package reader

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfoutline/model"
)

// defaultPageHeight is used when a page has no usable /MediaBox (US Letter)
const defaultPageHeight = 792.0

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// PDFVersion represents a PDF version
type PDFVersion struct {
	Major int
	Minor int
}

// String returns the version as a string (e.g., "1.7")
func (v PDFVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Reader extracts positioned characters from a PDF file
type Reader struct {
	path    string
	file    *os.File
	pdf     *pdf.Reader
	version PDFVersion
}

// Ensure Reader implements Source
var _ Source = (*Reader)(nil)

// Open opens a PDF file and returns a Reader
func Open(filename string) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ExtractionError{Path: filename, Err: err}
	}

	r, err := NewReader(filename, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// NewReader creates a Reader over an already opened file. The name is only
// used in error messages. The Reader takes ownership of file.
func NewReader(name string, file *os.File) (*Reader, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, &ExtractionError{Path: name, Err: fmt.Errorf("failed to get file info: %w", err)}
	}

	version, err := parseHeader(file)
	if err != nil {
		return nil, &ExtractionError{Path: name, Err: err}
	}

	var pr *pdf.Reader
	err = guard(func() error {
		var openErr error
		pr, openErr = pdf.NewReader(file, info.Size())
		return openErr
	})
	if err != nil {
		return nil, &ExtractionError{Path: name, Err: fmt.Errorf("failed to load document: %w", err)}
	}

	return &Reader{
		path:    name,
		file:    file,
		pdf:     pr,
		version: version,
	}, nil
}

// Close closes the PDF file
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// Version returns the version declared in the file header
func (r *Reader) Version() PDFVersion {
	return r.version
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	n := 0
	if err := guard(func() error {
		n = r.pdf.NumPage()
		return nil
	}); err != nil {
		return 0
	}
	return n
}

// Characters returns the characters on a 1-based page, in the order the
// content stream draws them
func (r *Reader) Characters(page int) ([]model.Character, error) {
	if page < 1 || page > r.PageCount() {
		return nil, &ExtractionError{Path: r.path, Page: page, Err: fmt.Errorf("page out of range (1-%d)", r.PageCount())}
	}

	var chars []model.Character
	err := guard(func() error {
		p := r.pdf.Page(page)
		if p.V.IsNull() {
			return fmt.Errorf("page object not found")
		}

		top := pageTop(p)
		content := p.Content()
		chars = make([]model.Character, 0, len(content.Text))
		for _, t := range content.Text {
			if t.S == "" {
				continue
			}
			chars = append(chars, model.Character{
				Text:     t.S,
				Left:     t.X,
				Top:      top - t.Y,
				Width:    t.W,
				Size:     t.FontSize,
				FontName: t.Font,
			})
		}
		return nil
	})
	if err != nil {
		return nil, &ExtractionError{Path: r.path, Page: page, Err: err}
	}
	return chars, nil
}

// pageTop returns the upper Y bound of the page's (possibly inherited) media box
func pageTop(p pdf.Page) float64 {
	box := inherited(p.V, "MediaBox")
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return defaultPageHeight
	}
	lly, ury := box.Index(1).Float64(), box.Index(3).Float64()
	if ury < lly {
		ury = lly
	}
	if ury <= 0 {
		return defaultPageHeight
	}
	return ury
}

// inherited looks up key on a page node, walking /Parent links
func inherited(v pdf.Value, key string) pdf.Value {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		if val := v.Key(key); !val.IsNull() {
			return val
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}

// parseHeader parses the PDF header (%PDF-x.y)
func parseHeader(file *os.File) (PDFVersion, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return PDFVersion{}, fmt.Errorf("failed to seek to start: %w", err)
	}

	header := make([]byte, 8)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return PDFVersion{}, fmt.Errorf("failed to read header: %w", err)
	}
	if n < 8 {
		return PDFVersion{}, fmt.Errorf("header too short: %d bytes", n)
	}

	headerStr := string(header)
	if !strings.HasPrefix(headerStr, "%PDF-") {
		return PDFVersion{}, fmt.Errorf("invalid PDF header: %q", headerStr)
	}

	matches := versionPattern.FindStringSubmatch(headerStr[5:])
	if len(matches) < 3 {
		return PDFVersion{}, fmt.Errorf("invalid version format: %q", headerStr[5:])
	}

	var major, minor int
	fmt.Sscanf(matches[1], "%d", &major)
	fmt.Sscanf(matches[2], "%d", &minor)

	return PDFVersion{Major: major, Minor: minor}, nil
}

// guard runs fn, converting a panic raised by the decoding library into an
// error
func guard(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()
	return fn()
}
