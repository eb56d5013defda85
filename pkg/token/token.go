// Package token defines the lexical unit produced by segmentation.
package token

import (
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
)

// Kind classifies a token. Segmentation leaves every token Unknown;
// classification happens in a later stage.
type Kind uint8

const (
	Unknown Kind = iota
	Word
	StopWord
	SeparatorSoft
	SeparatorHard
)

var kindNames = [...]string{
	Unknown:       "unknown",
	Word:          "word",
	StopWord:      "stop_word",
	SeparatorSoft: "separator_soft",
	SeparatorHard: "separator_hard",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsSeparator reports whether k is a soft or hard separator.
func (k Kind) IsSeparator() bool {
	return k == SeparatorSoft || k == SeparatorHard
}

// Token is one lexical unit of an analyzed text.
//
// Offsets are relative to the original text: CharStart/CharEnd count code
// points, ByteStart/ByteEnd count UTF-8 bytes. Consecutive tokens of one
// analysis tile the text without gaps.
type Token struct {
	Lemma     string             `json:"lemma"`
	Script    detection.Script   `json:"script"`
	Language  detection.Language `json:"language"`
	Kind      Kind               `json:"kind"`
	CharStart int                `json:"char_start"`
	CharEnd   int                `json:"char_end"`
	ByteStart int                `json:"byte_start"`
	ByteEnd   int                `json:"byte_end"`

	owned bool
}

// SetLemma replaces the lemma with rewritten text.
func (t *Token) SetLemma(s string) {
	t.Lemma = s
	t.owned = true
}

// Owned reports whether the lemma was rewritten. An unowned lemma is a view
// into the original text.
func (t *Token) Owned() bool {
	return t.owned
}

// ByteLen returns the length of the token in the original text.
func (t *Token) ByteLen() int {
	return t.ByteEnd - t.ByteStart
}

// CharLen returns the number of code points of the token in the original text.
func (t *Token) CharLen() int {
	return t.CharEnd - t.CharStart
}

// Original returns the token's slice of the original text.
func (t *Token) Original(text string) string {
	return text[t.ByteStart:t.ByteEnd]
}

// IsWord reports whether the token was classified as a word.
func (t *Token) IsWord() bool {
	return t.Kind == Word
}

// IsStopWord reports whether the token was classified as a stop word.
func (t *Token) IsStopWord() bool {
	return t.Kind == StopWord
}

// IsSeparator reports whether the token was classified as a separator.
func (t *Token) IsSeparator() bool {
	return t.Kind.IsSeparator()
}
