// Package detection classifies text into writing systems and languages.
//
// Script classification is per code point and cheap. Language
// classification is statistical and expensive, so callers ask for it only
// when the script alone is not enough to pick a segmenter.
package detection

import (
	"strings"
	"unicode"
)

// Script identifies the writing system of a character or text run.
type Script uint8

const (
	// ScriptOther covers script-neutral characters: digits, punctuation,
	// whitespace, symbols and combining marks.
	ScriptOther Script = iota
	ScriptArabic
	ScriptArmenian
	ScriptBengali
	// ScriptCj groups Han ideographs with Hiragana, Katakana and Bopomofo.
	ScriptCj
	ScriptCyrillic
	ScriptDevanagari
	ScriptEthiopic
	ScriptGeorgian
	ScriptGreek
	ScriptGujarati
	ScriptGurmukhi
	ScriptHangul
	ScriptHebrew
	ScriptKannada
	ScriptKhmer
	ScriptLatin
	ScriptMalayalam
	ScriptMyanmar
	ScriptOriya
	ScriptSinhala
	ScriptTamil
	ScriptTelugu
	ScriptThai
)

var scriptNames = [...]string{
	ScriptOther:      "Other",
	ScriptArabic:     "Arabic",
	ScriptArmenian:   "Armenian",
	ScriptBengali:    "Bengali",
	ScriptCj:         "Cj",
	ScriptCyrillic:   "Cyrillic",
	ScriptDevanagari: "Devanagari",
	ScriptEthiopic:   "Ethiopic",
	ScriptGeorgian:   "Georgian",
	ScriptGreek:      "Greek",
	ScriptGujarati:   "Gujarati",
	ScriptGurmukhi:   "Gurmukhi",
	ScriptHangul:     "Hangul",
	ScriptHebrew:     "Hebrew",
	ScriptKannada:    "Kannada",
	ScriptKhmer:      "Khmer",
	ScriptLatin:      "Latin",
	ScriptMalayalam:  "Malayalam",
	ScriptMyanmar:    "Myanmar",
	ScriptOriya:      "Oriya",
	ScriptSinhala:    "Sinhala",
	ScriptTamil:      "Tamil",
	ScriptTelugu:     "Telugu",
	ScriptThai:       "Thai",
}

// String returns the name of the script.
func (s Script) String() string {
	if int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return "Other"
}

// MarshalText encodes the script as its name.
func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// scriptTables is ordered by how often the script shows up in indexed text,
// so the common cases exit the loop early.
var scriptTables = []struct {
	table  *unicode.RangeTable
	script Script
}{
	{unicode.Latin, ScriptLatin},
	{unicode.Han, ScriptCj},
	{unicode.Hiragana, ScriptCj},
	{unicode.Katakana, ScriptCj},
	{unicode.Cyrillic, ScriptCyrillic},
	{unicode.Arabic, ScriptArabic},
	{unicode.Hangul, ScriptHangul},
	{unicode.Greek, ScriptGreek},
	{unicode.Hebrew, ScriptHebrew},
	{unicode.Thai, ScriptThai},
	{unicode.Devanagari, ScriptDevanagari},
	{unicode.Bopomofo, ScriptCj},
	{unicode.Armenian, ScriptArmenian},
	{unicode.Bengali, ScriptBengali},
	{unicode.Ethiopic, ScriptEthiopic},
	{unicode.Georgian, ScriptGeorgian},
	{unicode.Gujarati, ScriptGujarati},
	{unicode.Gurmukhi, ScriptGurmukhi},
	{unicode.Kannada, ScriptKannada},
	{unicode.Khmer, ScriptKhmer},
	{unicode.Malayalam, ScriptMalayalam},
	{unicode.Myanmar, ScriptMyanmar},
	{unicode.Oriya, ScriptOriya},
	{unicode.Sinhala, ScriptSinhala},
	{unicode.Tamil, ScriptTamil},
	{unicode.Telugu, ScriptTelugu},
}

// ScriptOf returns the script of a single code point.
// Characters in the Unicode Common and Inherited scripts map to ScriptOther.
func ScriptOf(r rune) Script {
	if r < unicode.MaxASCII+1 {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return ScriptLatin
		}
		return ScriptOther
	}
	for _, st := range scriptTables {
		if unicode.Is(st.table, r) {
			return st.script
		}
	}
	return ScriptOther
}

// ScriptOfString returns the first non-Other script found in s,
// or ScriptOther when s has none.
func ScriptOfString(s string) Script {
	for _, r := range s {
		if script := ScriptOf(r); script != ScriptOther {
			return script
		}
	}
	return ScriptOther
}

// ScriptFromName returns the script with the given name, ignoring case.
func ScriptFromName(name string) (Script, bool) {
	for s, n := range scriptNames {
		if strings.EqualFold(n, name) {
			return Script(s), true
		}
	}
	return ScriptOther, false
}
