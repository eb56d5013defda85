// Package classifier assigns a Kind to normalized tokens.
package classifier

import (
	"strings"
	"unicode"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/lexicon"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

// hardSeparators end a sentence or paragraph.
var hardSeparators = map[rune]struct{}{
	'.': {}, '!': {}, '?': {}, ';': {},
	'\n': {}, '\r': {}, '\u2028': {}, '\u2029': {},
	'…': {}, '¶': {},
	'。': {}, '！': {}, '？': {}, '；': {}, '｡': {},
	'؟': {}, '۔': {}, '।': {}, '॥': {},
}

// Classifier sets token kinds. A token made only of whitespace,
// punctuation and symbols is a separator; a word found in the stop word
// list is a stop word; everything else is a word.
//
// A Classifier is safe for concurrent use.
type Classifier struct {
	stopWords *lexicon.Dictionary
}

// New creates a classifier. stopWords may be nil.
func New(stopWords *lexicon.Dictionary) *Classifier {
	return &Classifier{stopWords: stopWords}
}

// Classify sets tok.Kind from its lemma.
func (c *Classifier) Classify(tok *token.Token) {
	tok.Kind = c.KindOf(tok.Lemma)
}

// KindOf returns the kind of a lemma.
func (c *Classifier) KindOf(lemma string) token.Kind {
	if kind, ok := SeparatorKind(lemma); ok {
		return kind
	}
	if c.stopWords != nil && c.stopWords.Contains(lemma) {
		return token.StopWord
	}
	return token.Word
}

// SeparatorKind reports whether lemma is a separator and, if so, whether
// it is hard or soft. An empty lemma, e.g. one emptied by normalization,
// is a soft separator.
func SeparatorKind(lemma string) (token.Kind, bool) {
	if strings.ContainsFunc(lemma, isWordRune) {
		return token.Unknown, false
	}
	if strings.ContainsFunc(lemma, isHardSeparator) {
		return token.SeparatorHard, true
	}
	return token.SeparatorSoft, true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func isHardSeparator(r rune) bool {
	_, ok := hardSeparators[r]
	return ok
}
