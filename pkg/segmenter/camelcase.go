package segmenter

import (
	"unicode"
)

// SplitCamelCase splits s where a lowercase letter (Ll) is immediately
// followed by an uppercase letter (Lu). Nonspacing marks (Mn) belong to the
// preceding letter and are skipped by the scan.
//
// The empty string yields one empty unit.
func SplitCamelCase(s string) Units {
	return &camelCaseUnits{rest: s}
}

type camelCaseUnits struct {
	rest string
	done bool
}

func (c *camelCaseUnits) Next() (string, bool) {
	if c.done {
		return "", false
	}
	if i := camelCaseBoundary(c.rest); i > 0 {
		unit := c.rest[:i]
		c.rest = c.rest[i:]
		return unit, true
	}
	c.done = true
	return c.rest, true
}

// camelCaseBoundary returns the byte offset of the first camelCase boundary
// in s, or 0 if there is none.
func camelCaseBoundary(s string) int {
	if len(s) < 2 {
		return 0
	}

	lastWasLower := false
	for i, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if lastWasLower && unicode.Is(unicode.Lu, r) {
			return i
		}
		lastWasLower = unicode.Is(unicode.Ll, r)
	}
	return 0
}
