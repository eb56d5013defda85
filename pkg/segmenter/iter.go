package segmenter

import (
	"iter"
	"unicode/utf8"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

type iterState uint8

const (
	stateNeedsRun iterState = iota
	stateDraining
	stateDone
)

// StrIter yields the lexical units of a whole text, run by run.
//
// Each run is detected, a segmenter is selected for it and its units are
// drained before the next run is touched. StrIter is single-pass and not
// safe for concurrent use.
type StrIter struct {
	runs     Runs
	current  Units
	run      detection.Run
	state    iterState
	registry *Registry
	detector detection.Detector
	allow    detection.AllowList
	// detectLanguage forces language detection on every run.
	detectLanguage bool

	script   detection.Script
	language detection.Language
}

func newStrIter(text string, d *Dispatcher) *StrIter {
	return &StrIter{
		runs:           Runs{rest: text},
		registry:       d.registry(),
		detector:       d.Detector,
		allow:          d.AllowList,
		detectLanguage: d.DetectLanguage,
	}
}

// Next returns the next unit, or false once every run is exhausted.
func (it *StrIter) Next() (string, bool) {
	for {
		switch it.state {
		case stateDraining:
			if unit, ok := it.current.Next(); ok {
				return unit, true
			}
			it.state = stateNeedsRun

		case stateNeedsRun:
			text, ok := it.runs.Next()
			if !ok {
				it.current = nil
				it.state = stateDone
				continue
			}
			it.run.Reset(text, it.allow, it.detector)
			it.current = it.registry.Select(&it.run).Segment(text)
			if it.detectLanguage {
				it.run.Language()
			}
			it.script = it.run.Script()
			it.language = it.run.DetectedLanguage()
			it.state = stateDraining

		default:
			return "", false
		}
	}
}

// Script returns the script of the run the last unit came from.
func (it *StrIter) Script() detection.Script {
	return it.script
}

// Language returns the language of the run the last unit came from, or
// LangUnd when selection did not need it.
func (it *StrIter) Language() detection.Language {
	return it.language
}

// All returns the remaining units as an iterator.
func (it *StrIter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			unit, ok := it.Next()
			if !ok || !yield(unit) {
				return
			}
		}
	}
}

// Collect drains the remaining units into a slice.
func (it *StrIter) Collect() []string {
	return Collect(it)
}

// TokenIter wraps a StrIter and positions each unit in the original text.
type TokenIter struct {
	inner     *StrIter
	charIndex int
	byteIndex int
}

// Next returns the next token, or false once the text is exhausted.
func (it *TokenIter) Next() (token.Token, bool) {
	lemma, ok := it.inner.Next()
	if !ok {
		return token.Token{}, false
	}

	charStart := it.charIndex
	byteStart := it.byteIndex
	it.charIndex += utf8.RuneCountInString(lemma)
	it.byteIndex += len(lemma)

	return token.Token{
		Lemma:     lemma,
		Script:    it.inner.script,
		Language:  it.inner.language,
		CharStart: charStart,
		CharEnd:   it.charIndex,
		ByteStart: byteStart,
		ByteEnd:   it.byteIndex,
	}, true
}

// All returns the remaining tokens as an iterator.
func (it *TokenIter) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := it.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Collect drains the remaining tokens into a slice.
func (it *TokenIter) Collect() []token.Token {
	var out []token.Token
	for tok := range it.All() {
		out = append(out, tok)
	}
	return out
}
