package layout

import (
	"errors"
	"testing"

	"github.com/tsawler/pdfoutline/model"
)

// makeBlock creates a block for heading tests
func makeBlock(page int, top float64, text string, size float64) model.Block {
	return model.Block{Page: page, Top: top, Text: text, Size: size, FontName: "F", LineCount: 1}
}

func TestClassifyEmpty(t *testing.T) {
	c := NewHeadingClassifier().Classify(nil)
	if c.BodySize != 0 || c.HasStructure() {
		t.Errorf("expected empty classification, got %+v", c)
	}
}

func TestClassifyUniformDocument(t *testing.T) {
	blocks := []model.Block{makeBlock(1, 100, "Hello World", 20)}
	c := NewHeadingClassifier().Classify(blocks)
	if c.BodySize != 20 {
		t.Errorf("BodySize = %v, want 20", c.BodySize)
	}
	if c.HasStructure() {
		t.Errorf("uniform document should have no headings, got %v", c.Headings)
	}
}

func TestClassifyHeadingIffLarger(t *testing.T) {
	blocks := []model.Block{
		makeBlock(1, 50, "Title", 24),
		makeBlock(1, 100, "body", 12),
		makeBlock(1, 150, "small", 9),
		makeBlock(1, 200, "section", 18),
		makeBlock(2, 50, "body", 12),
		makeBlock(2, 100, "body", 12),
	}

	c := NewHeadingClassifier().Classify(blocks)
	if c.BodySize != 12 {
		t.Fatalf("BodySize = %v, want 12", c.BodySize)
	}

	isHeading := map[string]bool{}
	for _, h := range c.Headings {
		isHeading[h.Text] = true
	}
	for _, b := range blocks {
		if (b.Size > c.BodySize) != isHeading[b.Text] {
			t.Errorf("block %q size %v: heading=%v, want %v", b.Text, b.Size, isHeading[b.Text], b.Size > c.BodySize)
		}
	}
}

func TestClassifyDenseRanking(t *testing.T) {
	blocks := []model.Block{
		makeBlock(1, 10, "a", 24),
		makeBlock(1, 20, "b", 18),
		makeBlock(1, 30, "c", 18),
		makeBlock(1, 40, "d", 12),
		makeBlock(1, 50, "body", 10),
		makeBlock(1, 60, "body", 10),
		makeBlock(1, 70, "body", 10),
	}

	c := NewHeadingClassifier().Classify(blocks)

	expected := []struct {
		text  string
		label string
	}{
		{"a", "H1"},
		{"b", "H2"},
		{"c", "H2"},
		{"d", "H3"},
	}

	if len(c.Headings) != len(expected) {
		t.Fatalf("got %d headings, want %d", len(c.Headings), len(expected))
	}
	for i, want := range expected {
		h := c.Headings[i]
		if h.Text != want.text || h.Label() != want.label {
			t.Errorf("heading %d = %q %s, want %q %s", i, h.Text, h.Label(), want.text, want.label)
		}
	}
}

func TestClassifyBodyTieBreakPrefersLarger(t *testing.T) {
	blocks := []model.Block{
		makeBlock(1, 10, "small", 10),
		makeBlock(1, 20, "large", 12),
		makeBlock(1, 30, "small", 10),
		makeBlock(1, 40, "large", 12),
		makeBlock(1, 50, "heading", 16),
	}

	c := NewHeadingClassifier().Classify(blocks)
	if c.BodySize != 12 {
		t.Errorf("BodySize = %v, want 12 (ties resolve to the larger size)", c.BodySize)
	}
	if len(c.Headings) != 1 || c.Headings[0].Text != "heading" {
		t.Errorf("unexpected headings: %v", c.Headings)
	}
}

func TestClassifyReadingOrder(t *testing.T) {
	blocks := []model.Block{
		makeBlock(2, 10, "third", 18),
		makeBlock(1, 80, "second", 18),
		makeBlock(1, 20, "first", 24),
		makeBlock(1, 90, "body", 12),
		makeBlock(2, 90, "body", 12),
	}

	c := NewHeadingClassifier().Classify(blocks)
	want := []string{"first", "second", "third"}
	for i, h := range c.Headings {
		if h.Text != want[i] {
			t.Errorf("heading %d = %q, want %q", i, h.Text, want[i])
		}
	}
}

func TestRankSizes(t *testing.T) {
	levels := RankSizes([]model.Block{
		makeBlock(1, 0, "", 12),
		makeBlock(1, 0, "", 24),
		makeBlock(1, 0, "", 18),
		makeBlock(1, 0, "", 24),
	})
	want := map[float64]int{24: 1, 18: 2, 12: 3}
	if len(levels) != len(want) {
		t.Fatalf("levels = %v, want %v", levels, want)
	}
	for size, level := range want {
		if levels[size] != level {
			t.Errorf("level of %v = %d, want %d", size, levels[size], level)
		}
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative line tolerance", func(c *Config) { c.Line.Tolerance = -1 }},
		{"negative size precision", func(c *Config) { c.Line.SizePrecision = -0.1 }},
		{"negative word gap", func(c *Config) { c.Line.WordGapFactor = -1 }},
		{"zero position tolerance", func(c *Config) { c.HeaderFooter.PositionTolerance = 0 }},
		{"threshold above one", func(c *Config) { c.HeaderFooter.RecurrenceThreshold = 1.5 }},
		{"threshold below zero", func(c *Config) { c.HeaderFooter.RecurrenceThreshold = -0.1 }},
		{"single page recurrence", func(c *Config) { c.HeaderFooter.MinPages = 1 }},
		{"negative merge gap", func(c *Config) { c.Block.MergeGapFactor = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
