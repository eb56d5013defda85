//go:build !no_chinese

package segmenter

import (
	"log/slog"
	"sync"
	"time"

	"github.com/go-ego/gse"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
)

// ChineseSegmenter splits Mandarin text into words using gse and its
// embedded dictionary. The dictionary is loaded once per process, on the
// first Segment call.
type ChineseSegmenter struct {
	logger *slog.Logger
}

// NewChineseSegmenter creates a ChineseSegmenter. A nil logger uses
// slog.Default().
func NewChineseSegmenter(logger *slog.Logger) ChineseSegmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return ChineseSegmenter{logger: logger}
}

var chineseModel struct {
	once sync.Once
	seg  *gse.Segmenter
	err  error
}

func loadChinese(logger *slog.Logger) (*gse.Segmenter, error) {
	chineseModel.once.Do(func() {
		start := time.Now()
		seg := new(gse.Segmenter)
		if err := seg.LoadDictEmbed("zh"); err != nil {
			chineseModel.err = err
			logger.Warn("chinese dictionary unavailable, falling back to word boundaries", "error", err)
			return
		}
		chineseModel.seg = seg
		logger.Info("chinese dictionary loaded", "duration", time.Since(start))
	})
	return chineseModel.seg, chineseModel.err
}

// Segment implements Segmenter.
func (s ChineseSegmenter) Segment(text string) Units {
	if text == "" {
		return newBoundaryUnits(text, nil)
	}
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	seg, err := loadChinese(logger)
	if err != nil {
		return LatinSegmenter{}.Segment(text)
	}
	return newBoundaryUnits(text, tile(text, seg.Cut(text, true)))
}

func chineseEntries(opts Options) []Entry {
	return []Entry{
		{Key{detection.ScriptCj, detection.LangCmn}, opts.cached(NewChineseSegmenter(opts.Logger))},
	}
}
