package detection

import (
	"github.com/abadojack/whatlanggo"
)

// Detector classifies text. Implementations must be safe for concurrent use.
type Detector interface {
	// Script returns the dominant script of text.
	Script(text string) Script
	// Language returns the language of text, restricted by allow when it
	// has an entry for the script of text.
	Language(text string, allow AllowList) Language
}

// Default is the Detector used when none is configured. Scripts come from
// the Unicode script tables and languages from whatlanggo's trigram models.
type Default struct{}

// Script returns the first non-Other script in text.
func (Default) Script(text string) Script {
	return ScriptOfString(text)
}

// Language detects the language of text.
//
// When allow restricts the script of text to a single language, that
// language is returned without running the model. A detected language that
// allow does not permit yields LangOther.
func (d Default) Language(text string, allow AllowList) Language {
	script := d.Script(text)
	allowed := allow[script]
	if len(allowed) == 1 {
		return allowed[0]
	}

	var opts whatlanggo.Options
	if len(allowed) > 0 {
		opts.Whitelist = make(map[whatlanggo.Lang]bool, len(allowed))
		for _, l := range allowed {
			if wl, ok := toWhatlang(l); ok {
				opts.Whitelist[wl] = true
			}
		}
	}

	info := whatlanggo.DetectWithOptions(text, opts)
	if info.Lang < 0 {
		return LangOther
	}
	lang, ok := LanguageFromCode(info.Lang.Iso6393())
	if !ok || !allow.Allows(script, lang) {
		return LangOther
	}
	return lang
}

func toWhatlang(l Language) (whatlanggo.Lang, bool) {
	if !l.Detected() || l == LangOther {
		return 0, false
	}
	wl := whatlanggo.CodeToLang(l.Code())
	if wl < 0 {
		return 0, false
	}
	return wl, true
}
