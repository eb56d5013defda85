package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

// Lowercase lowercases the lemma. Turkish and Azerbaijani use their own
// dotted and dotless i rules when the token's language is known.
type Lowercase struct{}

func (Lowercase) ShouldNormalize(tok *token.Token) bool {
	return strings.ContainsFunc(tok.Lemma, func(r rune) bool {
		return unicode.IsUpper(r) || unicode.IsTitle(r)
	})
}

func (Lowercase) Normalize(tok *token.Token) {
	switch tok.Language {
	case detection.LangTur:
		// A Caser is stateful, so each call gets its own.
		setIfChanged(tok, cases.Lower(language.Turkish).String(tok.Lemma))
	case detection.LangAze:
		setIfChanged(tok, cases.Lower(language.Azerbaijani).String(tok.Lemma))
	default:
		setIfChanged(tok, strings.ToLower(tok.Lemma))
	}
}

// CompatibilityDecomposition applies Unicode NFKD: ä becomes a + U+0308,
// ﬁ becomes fi.
type CompatibilityDecomposition struct{}

func (CompatibilityDecomposition) ShouldNormalize(tok *token.Token) bool {
	return !norm.NFKD.IsNormalString(tok.Lemma)
}

func (CompatibilityDecomposition) Normalize(tok *token.Token) {
	setIfChanged(tok, norm.NFKD.String(tok.Lemma))
}

// Width folds fullwidth forms to their narrow equivalents and halfwidth
// katakana to wide ones: ＡＢＣ becomes ABC, ｶ becomes カ.
type Width struct{}

func (Width) ShouldNormalize(tok *token.Token) bool {
	return strings.ContainsFunc(tok.Lemma, func(r rune) bool {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianHalfwidth:
			return true
		}
		return false
	})
}

func (Width) Normalize(tok *token.Token) {
	setIfChanged(tok, width.Fold.String(tok.Lemma))
}

// Deunicode transliterates the lemma to ASCII.
type Deunicode struct{}

func (Deunicode) ShouldNormalize(tok *token.Token) bool {
	return strings.ContainsFunc(tok.Lemma, func(r rune) bool {
		return r >= utf8.RuneSelf
	})
}

func (Deunicode) Normalize(tok *token.Token) {
	setIfChanged(tok, unidecode.Unidecode(tok.Lemma))
}

// stemLanguages maps languages to their Snowball stemmer.
var stemLanguages = map[detection.Language]string{
	detection.LangDeu: "german",
	detection.LangEng: "english",
	detection.LangFra: "french",
	detection.LangHun: "hungarian",
	detection.LangNob: "norwegian",
	detection.LangRus: "russian",
	detection.LangSpa: "spanish",
	detection.LangSwe: "swedish",
}

// Stemmer reduces words to their Snowball stem. Tokens whose language was
// not detected, or has no stemmer, are left alone.
type Stemmer struct{}

func (Stemmer) ShouldNormalize(tok *token.Token) bool {
	if _, ok := stemLanguages[tok.Language]; !ok {
		return false
	}
	return strings.ContainsFunc(tok.Lemma, unicode.IsLetter)
}

func (Stemmer) Normalize(tok *token.Token) {
	stemmed, err := snowball.Stem(tok.Lemma, stemLanguages[tok.Language], true)
	if err != nil || stemmed == "" {
		return
	}
	setIfChanged(tok, stemmed)
}
