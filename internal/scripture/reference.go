// Package scripture splits free-form text into plain runs and scripture
// references such as "John 3:16", "1 Corinthians 13:4-7" or "Psalm 23:1-6".
package scripture

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

var referencePattern = regexp.MustCompile(`\b(?:[123] )?[A-Z][a-z]+ \d+:\d+(?:-\d+)?\b`)

type Segment struct {
	Text      string `json:"text"`
	Reference bool   `json:"reference"`
}

// Segments yields the segments of text in order. Concatenating every
// segment's Text reproduces the input.
func Segments(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		pos := 0
		for _, loc := range referencePattern.FindAllStringIndex(text, -1) {
			if loc[0] > pos {
				if !yield(Segment{Text: text[pos:loc[0]]}) {
					return
				}
			}
			if !yield(Segment{Text: text[loc[0]:loc[1]], Reference: true}) {
				return
			}
			pos = loc[1]
		}
		if pos < len(text) {
			yield(Segment{Text: text[pos:]})
		}
	}
}

func Split(text string) []Segment {
	return slices.Collect(Segments(text))
}

// References returns only the reference tokens found in text.
func References(text string) []string {
	var refs []string
	for seg := range Segments(text) {
		if seg.Reference {
			refs = append(refs, seg.Text)
		}
	}
	return refs
}

// Paragraphs splits an insight on newlines and segments each paragraph.
// Blank lines are kept as empty paragraphs.
func Paragraphs(insight string) [][]Segment {
	lines := strings.Split(insight, "\n")
	paragraphs := make([][]Segment, 0, len(lines))
	for _, line := range lines {
		segs := Split(line)
		if segs == nil {
			segs = []Segment{}
		}
		paragraphs = append(paragraphs, segs)
	}
	return paragraphs
}
