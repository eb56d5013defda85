package normalizer

import (
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
)

// Config toggles the individual normalizers of the standard pipelines.
type Config struct {
	ControlChars bool // remove control characters
	Decompose    bool // NFKD compatibility decomposition
	Width        bool // fold fullwidth and halfwidth forms
	Lowercase    bool
	Quotes       bool // typographic quotes to ASCII
	Ligatures    bool // æ → ae, œ → oe
	Eszett       bool // ß → ss
	StripMarks   bool // remove combining marks
	Tatweel      bool // remove Arabic kashida
	Deunicode    bool // transliterate to ASCII
	Stem         bool // Snowball stemming, for tokens with a known language
}

// DefaultConfig enables every normalizer except transliteration.
func DefaultConfig() Config {
	return Config{
		ControlChars: true,
		Decompose:    true,
		Width:        true,
		Lowercase:    true,
		Quotes:       true,
		Ligatures:    true,
		Eszett:       true,
		StripMarks:   true,
		Tatweel:      true,
		Deunicode:    false,
		Stem:         true,
	}
}

// BuildPipelines assembles the standard pipelines.
//
// Alphabetic scripts (Latin, Greek, Cyrillic) get the full folding chain.
// Arabic additionally strips tatweel. Every other script, including Cj and
// Hangul, gets the (Other, Other) chain, which never decomposes: NFKD would
// split Hangul syllables into jamo.
func BuildPipelines(cfg Config) *Pipelines {
	var base Pipeline
	if cfg.ControlChars {
		base = append(base, Chars(ControlChar{}))
	}
	if cfg.Width {
		base = append(base, Width{})
	}
	if cfg.Lowercase {
		base = append(base, Lowercase{})
	}
	if cfg.Quotes {
		base = append(base, Chars(Quote{}))
	}

	var alphabetic Pipeline
	if cfg.ControlChars {
		alphabetic = append(alphabetic, Chars(ControlChar{}))
	}
	if cfg.Decompose {
		alphabetic = append(alphabetic, CompatibilityDecomposition{})
	}
	if cfg.Width {
		alphabetic = append(alphabetic, Width{})
	}
	if cfg.Lowercase {
		alphabetic = append(alphabetic, Lowercase{})
	}
	if cfg.Quotes {
		alphabetic = append(alphabetic, Chars(Quote{}))
	}
	if cfg.Ligatures {
		alphabetic = append(alphabetic, Chars(Ligature{}))
	}
	if cfg.Eszett {
		alphabetic = append(alphabetic, Chars(Eszett{}))
	}
	if cfg.StripMarks {
		alphabetic = append(alphabetic, Chars(NonspacingMark{}))
	}
	if cfg.Deunicode {
		alphabetic = append(alphabetic, Deunicode{})
	}
	if cfg.Stem {
		alphabetic = append(alphabetic, Stemmer{})
	}

	arabic := append(Pipeline(nil), base...)
	if cfg.Tatweel {
		arabic = append(arabic, Chars(Tatweel{}))
	}

	return NewPipelines(map[Key]Pipeline{
		{detection.ScriptLatin, detection.LangOther}:    alphabetic,
		{detection.ScriptGreek, detection.LangOther}:    alphabetic,
		{detection.ScriptCyrillic, detection.LangOther}: alphabetic,
		{detection.ScriptArabic, detection.LangOther}:   arabic,
		{detection.ScriptOther, detection.LangOther}:    base,
	})
}
