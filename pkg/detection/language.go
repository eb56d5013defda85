package detection

import (
	"fmt"
	"strings"
)

// Language identifies the natural language of a text run.
//
// The zero value, LangUnd, means no language detection was performed.
// LangOther means detection ran but produced no usable answer.
type Language uint8

const (
	LangUnd Language = iota
	LangOther
	LangAfr
	LangAka
	LangAmh
	LangAra
	LangAze
	LangBel
	LangBen
	LangBul
	LangCat
	LangCes
	LangCmn
	LangDan
	LangDeu
	LangEll
	LangEng
	LangEpo
	LangEst
	LangFin
	LangFra
	LangGuj
	LangHeb
	LangHin
	LangHrv
	LangHun
	LangHye
	LangInd
	LangIta
	LangJav
	LangJpn
	LangKan
	LangKat
	LangKhm
	LangKor
	LangLat
	LangLav
	LangLit
	LangMal
	LangMar
	LangMkd
	LangMya
	LangNep
	LangNld
	LangNob
	LangOri
	LangPan
	LangPes
	LangPol
	LangPor
	LangRon
	LangRus
	LangSin
	LangSlk
	LangSlv
	LangSna
	LangSpa
	LangSrp
	LangSwe
	LangTam
	LangTel
	LangTgl
	LangTha
	LangTuk
	LangTur
	LangUkr
	LangUrd
	LangUzb
	LangVie
	LangYid
	LangZul
)

// languageCodes maps Language values to ISO 639-3 codes.
var languageCodes = [...]string{
	LangUnd:   "und",
	LangOther: "other",
	LangAfr:   "afr",
	LangAka:   "aka",
	LangAmh:   "amh",
	LangAra:   "ara",
	LangAze:   "aze",
	LangBel:   "bel",
	LangBen:   "ben",
	LangBul:   "bul",
	LangCat:   "cat",
	LangCes:   "ces",
	LangCmn:   "cmn",
	LangDan:   "dan",
	LangDeu:   "deu",
	LangEll:   "ell",
	LangEng:   "eng",
	LangEpo:   "epo",
	LangEst:   "est",
	LangFin:   "fin",
	LangFra:   "fra",
	LangGuj:   "guj",
	LangHeb:   "heb",
	LangHin:   "hin",
	LangHrv:   "hrv",
	LangHun:   "hun",
	LangHye:   "hye",
	LangInd:   "ind",
	LangIta:   "ita",
	LangJav:   "jav",
	LangJpn:   "jpn",
	LangKan:   "kan",
	LangKat:   "kat",
	LangKhm:   "khm",
	LangKor:   "kor",
	LangLat:   "lat",
	LangLav:   "lav",
	LangLit:   "lit",
	LangMal:   "mal",
	LangMar:   "mar",
	LangMkd:   "mkd",
	LangMya:   "mya",
	LangNep:   "nep",
	LangNld:   "nld",
	LangNob:   "nob",
	LangOri:   "ori",
	LangPan:   "pan",
	LangPes:   "pes",
	LangPol:   "pol",
	LangPor:   "por",
	LangRon:   "ron",
	LangRus:   "rus",
	LangSin:   "sin",
	LangSlk:   "slk",
	LangSlv:   "slv",
	LangSna:   "sna",
	LangSpa:   "spa",
	LangSrp:   "srp",
	LangSwe:   "swe",
	LangTam:   "tam",
	LangTel:   "tel",
	LangTgl:   "tgl",
	LangTha:   "tha",
	LangTuk:   "tuk",
	LangTur:   "tur",
	LangUkr:   "ukr",
	LangUrd:   "urd",
	LangUzb:   "uzb",
	LangVie:   "vie",
	LangYid:   "yid",
	LangZul:   "zul",
}

var languageFromCode = func() map[string]Language {
	m := make(map[string]Language, len(languageCodes))
	for i, code := range languageCodes {
		m[code] = Language(i)
	}
	return m
}()

// Code returns the ISO 639-3 code of the language.
// LangUnd and LangOther return "und" and "other".
func (l Language) Code() string {
	if int(l) < len(languageCodes) {
		return languageCodes[l]
	}
	return "other"
}

// String returns the ISO 639-3 code of the language.
func (l Language) String() string {
	return l.Code()
}

// MarshalText encodes the language as its code.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.Code()), nil
}

// Detected reports whether l is the result of a language detection.
func (l Language) Detected() bool {
	return l != LangUnd
}

// LanguageFromCode parses an ISO 639-3 code. Unknown codes return LangOther
// and false.
func LanguageFromCode(code string) (Language, bool) {
	l, ok := languageFromCode[code]
	if !ok || l == LangUnd {
		return LangOther, false
	}
	return l, true
}

// AllowList restricts, per script, which languages a Detector may return.
// Scripts without an entry are unrestricted.
type AllowList map[Script][]Language

// Allows reports whether l is permitted for script s.
func (a AllowList) Allows(s Script, l Language) bool {
	langs, ok := a[s]
	if !ok || len(langs) == 0 {
		return true
	}
	for _, allowed := range langs {
		if allowed == l {
			return true
		}
	}
	return false
}

// ParseAllowList parses an allow list of the form
// "latin=deu,eng;cj=cmn,jpn". Script names ignore case; languages are
// ISO 639-3 codes.
func ParseAllowList(s string) (AllowList, error) {
	allow := make(AllowList)
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, codes, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("allow list entry %q: missing '='", entry)
		}
		script, ok := ScriptFromName(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("allow list entry %q: unknown script %q", entry, name)
		}
		for _, code := range strings.Split(codes, ",") {
			code = strings.TrimSpace(code)
			lang, ok := LanguageFromCode(code)
			if !ok {
				return nil, fmt.Errorf("allow list entry %q: unknown language %q", entry, code)
			}
			allow[script] = append(allow[script], lang)
		}
	}
	return allow, nil
}
