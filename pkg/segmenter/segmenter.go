// Package segmenter splits text into lexical units.
//
// Text is cut into runs of one dominant script, a segmenter is picked for
// each run from a Registry, and the units of all runs are stitched into one
// lazy stream. Nothing is computed until the caller pulls the next unit.
package segmenter

import (
	"strings"
)

// Units is a single-pass sequence of lexical units.
//
// The units of one Segment call are contiguous, ordered slices of the
// segmented text: concatenated, they reproduce it exactly.
type Units interface {
	// Next returns the next unit, or false when the sequence is exhausted.
	Next() (string, bool)
}

// Segmenter splits text of one script into lexical units.
// Implementations must be stateless and safe for concurrent use.
type Segmenter interface {
	Segment(text string) Units
}

// Func adapts a function to the Segmenter interface.
type Func func(text string) Units

// Segment calls f(text).
func (f Func) Segment(text string) Units {
	return f(text)
}

// Collect drains u into a slice.
func Collect(u Units) []string {
	var out []string
	for {
		s, ok := u.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// boundaryUnits yields text cut at precomputed end offsets.
type boundaryUnits struct {
	text  string
	ends  []int
	start int
}

func newBoundaryUnits(text string, ends []int) *boundaryUnits {
	return &boundaryUnits{text: text, ends: ends}
}

func (b *boundaryUnits) Next() (string, bool) {
	if len(b.ends) == 0 {
		return "", false
	}
	end := b.ends[0]
	b.ends = b.ends[1:]
	unit := b.text[b.start:end]
	b.start = end
	return unit, true
}

// tile locates parts in text, in order, and returns the end offset of every
// unit needed to cover text: each part found, plus whatever text lies
// between or after them. Parts that cannot be found end the scan and the
// remainder becomes one unit.
func tile(text string, parts []string) []int {
	ends := make([]int, 0, len(parts)+1)
	pos := 0
	for _, p := range parts {
		if p == "" {
			continue
		}
		idx := strings.Index(text[pos:], p)
		if idx < 0 {
			break
		}
		if idx > 0 {
			ends = append(ends, pos+idx)
		}
		pos += idx + len(p)
		ends = append(ends, pos)
	}
	if pos < len(text) {
		ends = append(ends, len(text))
	}
	return ends
}

// collectEnds drains u and returns the end offset of each unit.
func collectEnds(u Units) []int {
	var ends []int
	pos := 0
	for {
		s, ok := u.Next()
		if !ok {
			return ends
		}
		pos += len(s)
		ends = append(ends, pos)
	}
}
