//go:build !no_japanese

package segmenter

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
)

// JapaneseSegmenter splits Japanese text into morphemes using kagome with
// the IPA dictionary. The dictionary is loaded once per process, on the
// first Segment call.
type JapaneseSegmenter struct {
	logger *slog.Logger
}

// NewJapaneseSegmenter creates a JapaneseSegmenter. A nil logger uses
// slog.Default().
func NewJapaneseSegmenter(logger *slog.Logger) JapaneseSegmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return JapaneseSegmenter{logger: logger}
}

var japaneseModel struct {
	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

func loadJapanese(logger *slog.Logger) (*tokenizer.Tokenizer, error) {
	japaneseModel.once.Do(func() {
		start := time.Now()
		tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		if err != nil {
			japaneseModel.err = err
			logger.Warn("japanese dictionary unavailable, falling back to word boundaries", "error", err)
			return
		}
		japaneseModel.tok = tok
		logger.Info("japanese dictionary loaded", "duration", time.Since(start))
	})
	return japaneseModel.tok, japaneseModel.err
}

// Segment implements Segmenter.
func (s JapaneseSegmenter) Segment(text string) Units {
	if text == "" {
		return newBoundaryUnits(text, nil)
	}
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	tok, err := loadJapanese(logger)
	if err != nil {
		return LatinSegmenter{}.Segment(text)
	}

	morphemes := tok.Tokenize(text)
	surfaces := make([]string, len(morphemes))
	for i, m := range morphemes {
		surfaces[i] = m.Surface
	}
	return newBoundaryUnits(text, tile(text, surfaces))
}

func japaneseEntries(opts Options) []Entry {
	return []Entry{
		{Key{detection.ScriptCj, detection.LangJpn}, opts.cached(NewJapaneseSegmenter(opts.Logger))},
	}
}
