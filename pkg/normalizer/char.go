package normalizer

import (
	"strings"
	"unicode"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

// ControlChar removes control characters other than whitespace.
type ControlChar struct{}

func isRemovableControl(r rune) bool {
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}

func (ControlChar) ShouldNormalize(tok *token.Token) bool {
	return strings.ContainsFunc(tok.Lemma, isRemovableControl)
}

func (ControlChar) NormalizeRune(r rune) Replacement {
	if isRemovableControl(r) {
		return Drop()
	}
	return Rune(r)
}

// quoteReplacements maps typographic quotes to ASCII.
var quoteReplacements = map[rune]rune{
	'„': '"',  // „ German opening quote
	'“': '"',  // “ left double quote
	'”': '"',  // ” right double quote
	'«': '"',  // « left-pointing double angle
	'»': '"',  // » right-pointing double angle
	'‘': '\'', // ‘ left single quote
	'’': '\'', // ’ right single quote
	'‚': '\'', // ‚ single low-9 quote
	'‹': '\'', // ‹ single left-pointing angle
	'›': '\'', // › single right-pointing angle
}

// Quote converts typographic quotes to ASCII.
type Quote struct{}

func (Quote) ShouldNormalize(tok *token.Token) bool {
	return strings.ContainsFunc(tok.Lemma, func(r rune) bool {
		_, ok := quoteReplacements[r]
		return ok
	})
}

func (Quote) NormalizeRune(r rune) Replacement {
	if replacement, ok := quoteReplacements[r]; ok {
		return Rune(replacement)
	}
	return Rune(r)
}

// Ligature expands æ to ae and œ to oe. Other ligatures (ﬁ, ĳ) are handled
// by compatibility decomposition.
type Ligature struct{}

func (Ligature) ShouldNormalize(tok *token.Token) bool {
	return strings.ContainsAny(tok.Lemma, "æÆœŒ")
}

func (Ligature) NormalizeRune(r rune) Replacement {
	switch r {
	case 'æ', 'Æ':
		return Str("ae")
	case 'œ', 'Œ':
		return Str("oe")
	}
	return Rune(r)
}

// Eszett converts ß to ss. NFKD leaves ß alone.
type Eszett struct{}

func (Eszett) ShouldNormalize(tok *token.Token) bool {
	return strings.ContainsAny(tok.Lemma, "ßẞ")
}

func (Eszett) NormalizeRune(r rune) Replacement {
	if r == 'ß' || r == 'ẞ' {
		return Str("ss")
	}
	return Rune(r)
}

// NonspacingMark removes combining marks (category Mn), e.g. the umlaut
// dots left over after decomposition. Only alphabetic scripts are touched:
// in abugidas such as Devanagari or Thai the marks are vowels.
type NonspacingMark struct{}

func (NonspacingMark) ShouldNormalize(tok *token.Token) bool {
	switch tok.Script {
	case detection.ScriptLatin, detection.ScriptGreek, detection.ScriptCyrillic:
		return strings.ContainsFunc(tok.Lemma, isNonspacingMark)
	}
	return false
}

func (NonspacingMark) NormalizeRune(r rune) Replacement {
	if isNonspacingMark(r) {
		return Drop()
	}
	return Rune(r)
}

func isNonspacingMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

const tatweel = 'ـ'

// Tatweel removes the Arabic kashida used for justification.
type Tatweel struct{}

func (Tatweel) ShouldNormalize(tok *token.Token) bool {
	return tok.Script == detection.ScriptArabic && strings.ContainsRune(tok.Lemma, tatweel)
}

func (Tatweel) NormalizeRune(r rune) Replacement {
	if r == tatweel {
		return Drop()
	}
	return Rune(r)
}
