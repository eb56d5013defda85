package segmenter

import (
	"github.com/rivo/uniseg"
)

// LatinSegmenter splits text on Unicode word boundaries (UAX #29).
// Whitespace runs and punctuation become their own units.
//
// With CamelCase set, words are further split at lowercase-to-uppercase
// transitions ("camelCase" -> "camel", "Case").
type LatinSegmenter struct {
	CamelCase bool
}

// Segment implements Segmenter.
func (s LatinSegmenter) Segment(text string) Units {
	return &latinUnits{rest: text, state: -1, camelCase: s.CamelCase}
}

type latinUnits struct {
	rest      string
	state     int
	camelCase bool
	sub       Units
}

func (l *latinUnits) Next() (string, bool) {
	for {
		if l.sub != nil {
			if unit, ok := l.sub.Next(); ok {
				return unit, true
			}
			l.sub = nil
		}
		if l.rest == "" {
			return "", false
		}

		var word string
		word, l.rest, l.state = uniseg.FirstWordInString(l.rest, l.state)
		if !l.camelCase || camelCaseBoundary(word) == 0 {
			return word, true
		}
		l.sub = SplitCamelCase(word)
	}
}
