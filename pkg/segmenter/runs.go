package segmenter

import (
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
)

// Runs splits text into maximal runs of one dominant script.
//
// The dominant script is the last non-Other script seen: digits,
// punctuation, whitespace and marks take the script of the text around
// them and never start a run on their own. Empty text yields one empty run.
type Runs struct {
	rest    string
	started bool
	current detection.Script
}

// NewRuns returns the runs of text.
func NewRuns(text string) *Runs {
	return &Runs{rest: text}
}

// Next returns the next run, or false when text is exhausted.
func (s *Runs) Next() (string, bool) {
	if s.rest == "" {
		if s.started {
			return "", false
		}
		s.started = true
		return "", true
	}
	s.started = true

	end := len(s.rest)
	var runKey detection.Script
	for i, r := range s.rest {
		key := s.key(r)
		if i == 0 {
			runKey = key
			continue
		}
		if key != runKey {
			end = i
			break
		}
	}

	run := s.rest[:end]
	s.rest = s.rest[end:]
	return run, true
}

// key returns the dominant script after r, updating it when r has a script
// of its own.
func (s *Runs) key(r rune) detection.Script {
	if script := detection.ScriptOf(r); script != detection.ScriptOther && script != s.current {
		s.current = script
	}
	return s.current
}
