package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/model"
)

// Options controls outline construction
type Options struct {
	// DropDuplicates skips headings whose text (compared case-insensitively)
	// already appeared on the same page, including the title
	DropDuplicates bool
}

// DefaultOptions returns the default build options
func DefaultOptions() Options {
	return Options{}
}

// Build creates the outline from headings. The first heading in reading order
// (page, then top) becomes the title and is not repeated in the heading list.
// The remaining headings keep reading order and are labelled by the dense
// descending rank of their sizes among themselves, so the largest remaining
// size is always H1.
//
// Without headings the outline has an empty title and an empty, non-nil
// heading list.
func Build(headings []model.Heading, opts Options) model.Outline {
	result := model.Outline{Headings: []model.OutlineEntry{}}
	if len(headings) == 0 {
		return result
	}

	ordered := make([]model.Heading, len(headings))
	copy(ordered, headings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j].Block)
	})

	title := ordered[0]
	result.Title = title.Text

	seen := map[dedupeKey]bool{keyOf(title.Block): true}
	var rest []model.Block
	for _, h := range ordered[1:] {
		if opts.DropDuplicates {
			k := keyOf(h.Block)
			if seen[k] {
				continue
			}
			seen[k] = true
		}
		rest = append(rest, h.Block)
	}

	levels := layout.RankSizes(rest)
	for _, b := range rest {
		result.Headings = append(result.Headings, model.OutlineEntry{
			Level: model.LevelLabel(levels[b.Size]),
			Text:  b.Text,
			Page:  b.Page,
		})
	}

	return result
}

type dedupeKey struct {
	text string
	page int
}

func keyOf(b model.Block) dedupeKey {
	return dedupeKey{text: strings.ToLower(strings.TrimSpace(b.Text)), page: b.Page}
}
