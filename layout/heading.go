package layout

import (
	"sort"

	"github.com/tsawler/pdfoutline/internal/stats"
	"github.com/tsawler/pdfoutline/model"
)

// Classification is the result of heading classification over a document
type Classification struct {
	// BodySize is the most frequent block font size (0 when there are no blocks)
	BodySize float64

	// Headings are the blocks larger than BodySize, in reading order
	Headings []model.Heading

	// Levels maps each distinct heading size to its level
	Levels map[float64]int
}

// HasStructure reports whether any heading was detected
func (c *Classification) HasStructure() bool {
	return len(c.Headings) > 0
}

// HeadingClassifier separates heading blocks from body text by font size
type HeadingClassifier struct{}

// NewHeadingClassifier creates a new heading classifier
func NewHeadingClassifier() *HeadingClassifier {
	return &HeadingClassifier{}
}

// Classify determines the body size and the leveled heading candidates.
//
// The body size is the mode of the block sizes. When several sizes are equally
// frequent the larger one is taken as the body size, so a tie never promotes
// ordinary text to a heading. Every block strictly larger than the body size
// is a heading; levels are the dense descending rank of the distinct heading
// sizes (largest size is level 1).
func (c *HeadingClassifier) Classify(blocks []model.Block) *Classification {
	result := &Classification{Levels: map[float64]int{}}
	if len(blocks) == 0 {
		return result
	}

	sizes := stats.NewFrequency[float64]()
	for _, b := range blocks {
		sizes.Add(b.Size)
	}
	result.BodySize, _ = sizes.Mode(stats.Larger[float64])

	var candidates []model.Block
	for _, b := range blocks {
		if b.Size > result.BodySize {
			candidates = append(candidates, b)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Before(candidates[j])
	})

	result.Levels = RankSizes(candidates)
	result.Headings = make([]model.Heading, len(candidates))
	for i, b := range candidates {
		result.Headings[i] = model.Heading{Block: b, Level: result.Levels[b.Size]}
	}

	return result
}

// RankSizes assigns each distinct block size a dense rank, largest first
// (the largest size gets 1)
func RankSizes(blocks []model.Block) map[float64]int {
	distinct := stats.NewFrequency[float64]()
	for _, b := range blocks {
		distinct.Add(b.Size)
	}

	sizes := distinct.Values()
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := make(map[float64]int, len(sizes))
	for i, s := range sizes {
		levels[s] = i + 1
	}
	return levels
}
