package normalizer

import (
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

// Pipeline is an ordered chain of normalizers. Each stage sees the output
// of the previous one. The nil Pipeline leaves tokens untouched.
type Pipeline []Normalizer

// Apply runs every normalizer whose ShouldNormalize accepts tok.
func (p Pipeline) Apply(tok *token.Token) {
	for _, n := range p {
		if n.ShouldNormalize(tok) {
			n.Normalize(tok)
		}
	}
}

// Key identifies the (script, language) pair a pipeline is registered
// under.
type Key struct {
	Script   detection.Script
	Language detection.Language
}

// Pipelines holds one pipeline per (script, language) pair.
// It is immutable once built and safe for concurrent use.
type Pipelines struct {
	byKey map[Key]Pipeline
}

// NewPipelines copies byKey into a Pipelines.
func NewPipelines(byKey map[Key]Pipeline) *Pipelines {
	p := &Pipelines{byKey: make(map[Key]Pipeline, len(byKey))}
	for k, v := range byKey {
		p.byKey[k] = v
	}
	return p
}

// For returns the pipeline for a token of script and lang, trying
// (script, lang), then (script, Other), then (Other, Other). It returns nil
// when none is registered.
func (p *Pipelines) For(script detection.Script, lang detection.Language) Pipeline {
	if pipe, ok := p.byKey[Key{script, lang}]; ok {
		return pipe
	}
	if pipe, ok := p.byKey[Key{script, detection.LangOther}]; ok {
		return pipe
	}
	return p.byKey[Key{detection.ScriptOther, detection.LangOther}]
}

// Apply normalizes tok with the pipeline for its script and language.
func (p *Pipelines) Apply(tok *token.Token) {
	p.For(tok.Script, tok.Language).Apply(tok)
}

// Len returns the number of registered pipelines.
func (p *Pipelines) Len() int {
	return len(p.byKey)
}
