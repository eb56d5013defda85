// Package tokenizer chains segmentation, normalization and classification
// into one lazy token stream.
package tokenizer

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/classifier"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/lexicon"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/normalizer"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/segmenter"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

// Config holds tokenizer configuration.
type Config struct {
	// Cache memoizes dictionary segmenter and compound splits.
	Cache bool

	// CamelCase splits Latin words at lowercase-to-uppercase transitions.
	CamelCase bool

	// DetectLanguage detects the language of every run so tokens always
	// carry one. Language-specific normalizers such as stemming only fire
	// on tokens with a language.
	DetectLanguage bool

	// AllowList restricts the languages detection may return per script.
	AllowList detection.AllowList

	// Detector overrides the default script and language detector.
	Detector detection.Detector

	Normalizers normalizer.Config

	// StopWordsPath is a word-per-line file of stop words. A compiled FST
	// is kept next to it. StopWords is used when the path is empty.
	StopWordsPath string
	StopWords     []string

	// CompoundsPath is a word-per-line file of German compound components.
	// When set, German runs are decompounded.
	CompoundsPath string

	// Logger for construction and dictionary loading. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// DefaultConfig returns a config with caching, camelCase splitting and
// the default normalizers enabled.
func DefaultConfig() Config {
	return Config{
		Cache:       true,
		CamelCase:   true,
		Normalizers: normalizer.DefaultConfig(),
	}
}

// Tokenizer turns text into normalized, classified tokens.
// It is safe for concurrent use; the iterators it returns are not.
type Tokenizer struct {
	dispatcher segmenter.Dispatcher
	pipelines  *normalizer.Pipelines
	classifier *classifier.Classifier
	stopWords  *lexicon.Dictionary
	compounds  *lexicon.Dictionary
	logger     *slog.Logger
}

// New creates a tokenizer from cfg.
func New(cfg Config) (*Tokenizer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	t := &Tokenizer{logger: logger}

	var err error
	switch {
	case cfg.StopWordsPath != "":
		t.stopWords, err = lexicon.Open(cfg.StopWordsPath, logger)
	case len(cfg.StopWords) > 0:
		t.stopWords, err = lexicon.New(cfg.StopWords...)
	}
	if err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}

	if cfg.CompoundsPath != "" {
		t.compounds, err = lexicon.Open(cfg.CompoundsPath, logger)
		if err != nil {
			t.Close()
			return nil, fmt.Errorf("load compound components: %w", err)
		}
	}

	registry := segmenter.NewStandardRegistry(segmenter.Options{
		CamelCase: cfg.CamelCase,
		Cache:     cfg.Cache,
		Compounds: t.compounds,
		Logger:    logger,
	})

	t.dispatcher = segmenter.Dispatcher{
		Registry:       registry,
		Detector:       cfg.Detector,
		AllowList:      cfg.AllowList,
		DetectLanguage: cfg.DetectLanguage,
	}
	t.pipelines = normalizer.BuildPipelines(cfg.Normalizers)
	t.classifier = classifier.New(t.stopWords)

	logger.Debug("tokenizer ready",
		"segmenters", registry.Len(),
		"pipelines", t.pipelines.Len(),
		"stop_words", t.StopWordCount(),
		"compound_components", t.CompoundCount(),
	)
	return t, nil
}

// Tokenize returns the normalized and classified tokens of text.
// Nothing is computed until the iterator is advanced.
func (t *Tokenizer) Tokenize(text string) *Iter {
	return &Iter{inner: t.dispatcher.Segment(text), t: t}
}

// Segment returns the raw positioned tokens of text, neither normalized
// nor classified.
func (t *Tokenizer) Segment(text string) *segmenter.TokenIter {
	return t.dispatcher.Segment(text)
}

// SegmentStr returns the raw lexical units of text.
func (t *Tokenizer) SegmentStr(text string) *segmenter.StrIter {
	return t.dispatcher.SegmentStr(text)
}

// Terms returns the deduplicated lemmas of the words in text, in order of
// first appearance. Stop words and separators are left out.
func (t *Tokenizer) Terms(text string) []string {
	seen := make(map[string]struct{})
	var results []string

	for tok := range t.Tokenize(text).All() {
		if !tok.IsWord() {
			continue
		}
		if _, exists := seen[tok.Lemma]; exists {
			continue
		}
		seen[tok.Lemma] = struct{}{}
		results = append(results, tok.Lemma)
	}

	return results
}

// StopWordCount returns the number of stop words.
func (t *Tokenizer) StopWordCount() int {
	if t.stopWords == nil {
		return 0
	}
	return t.stopWords.WordCount()
}

// CompoundCount returns the number of compound components.
func (t *Tokenizer) CompoundCount() int {
	if t.compounds == nil {
		return 0
	}
	return t.compounds.WordCount()
}

// Close releases the dictionaries (call when done with tokenizer).
func (t *Tokenizer) Close() error {
	var errs []error
	if t.stopWords != nil {
		errs = append(errs, t.stopWords.Close())
	}
	if t.compounds != nil {
		errs = append(errs, t.compounds.Close())
	}
	return errors.Join(errs...)
}

// Iter yields normalized, classified tokens.
type Iter struct {
	inner *segmenter.TokenIter
	t     *Tokenizer
}

// Next returns the next token, or false once the text is exhausted.
func (it *Iter) Next() (token.Token, bool) {
	tok, ok := it.inner.Next()
	if !ok {
		return token.Token{}, false
	}
	it.t.pipelines.Apply(&tok)
	it.t.classifier.Classify(&tok)
	return tok, true
}

// All returns the remaining tokens as an iterator.
func (it *Iter) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := it.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Collect drains the remaining tokens into a slice.
func (it *Iter) Collect() []token.Token {
	var out []token.Token
	for tok := range it.All() {
		out = append(out, tok)
	}
	return out
}
