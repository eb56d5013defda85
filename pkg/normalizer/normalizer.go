// Package normalizer rewrites the lemmas of segmented tokens.
//
// A Normalizer is applied to a token only when its ShouldNormalize check
// passes, and a lemma is copied only when a normalizer actually changes it.
// Until then it stays a view into the analyzed text.
package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

// Normalizer rewrites the lemma of one token.
// Implementations must be safe for concurrent use.
type Normalizer interface {
	// ShouldNormalize reports whether Normalize can change tok.
	ShouldNormalize(tok *token.Token) bool
	Normalize(tok *token.Token)
}

// CharNormalizer rewrites a lemma one rune at a time.
// Wrap it with Chars to use it in a Pipeline.
type CharNormalizer interface {
	ShouldNormalize(tok *token.Token) bool
	NormalizeRune(r rune) Replacement
}

type replacementKind uint8

const (
	replaceRune replacementKind = iota
	replaceString
	replaceNothing
)

// Replacement is what a CharNormalizer produces for one rune: a rune, a
// string, or nothing at all.
type Replacement struct {
	kind replacementKind
	r    rune
	s    string
}

// Rune replaces a rune with r. Returning the input rune keeps it.
func Rune(r rune) Replacement {
	return Replacement{kind: replaceRune, r: r}
}

// Str replaces a rune with s, for mappings that change the length.
func Str(s string) Replacement {
	return Replacement{kind: replaceString, s: s}
}

// Drop removes a rune.
func Drop() Replacement {
	return Replacement{kind: replaceNothing}
}

func (rep Replacement) keeps(r rune) bool {
	return rep.kind == replaceRune && rep.r == r
}

func (rep Replacement) writeTo(b *strings.Builder) {
	switch rep.kind {
	case replaceRune:
		b.WriteRune(rep.r)
	case replaceString:
		b.WriteString(rep.s)
	}
}

// Chars adapts a CharNormalizer to the Normalizer interface.
func Chars(n CharNormalizer) Normalizer {
	return charAdapter{n}
}

type charAdapter struct {
	CharNormalizer
}

func (c charAdapter) Normalize(tok *token.Token) {
	if out, changed := mapRunes(tok.Lemma, c.NormalizeRune); changed {
		tok.SetLemma(out)
	}
}

// mapRunes applies f to every rune of s. Nothing is allocated until the
// first rune that f changes; if there is none, s is returned as is.
func mapRunes(s string, f func(rune) Replacement) (string, bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		rep := f(r)
		if rep.keeps(r) {
			i += size
			continue
		}

		var b strings.Builder
		b.Grow(len(s) + utf8.UTFMax)
		b.WriteString(s[:i])
		rep.writeTo(&b)
		for _, r := range s[i+size:] {
			f(r).writeTo(&b)
		}
		return b.String(), true
	}
	return s, false
}

// setIfChanged replaces the lemma only when s differs from it.
func setIfChanged(tok *token.Token, s string) {
	if s != tok.Lemma {
		tok.SetLemma(s)
	}
}
