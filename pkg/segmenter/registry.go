package segmenter

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/lexicon"
)

// Key identifies the (script, language) pair a segmenter is registered
// under. A key with LangOther marks the default segmenter of its script.
type Key struct {
	Script   detection.Script
	Language detection.Language
}

// Entry registers a segmenter under a key.
type Entry struct {
	Key       Key
	Segmenter Segmenter
}

// Detection is what the selector needs to know about a run. The language
// is only requested when the script alone is ambiguous.
type Detection interface {
	Script() detection.Script
	Language() detection.Language
}

// Registry maps (script, language) pairs to segmenters.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	entries  map[Key]Segmenter
	byScript map[detection.Script][]Key
	fallback Segmenter
}

// NewRegistry builds a registry. fallback is used for scripts without any
// entry; a nil fallback means LatinSegmenter. Later entries replace earlier
// ones with the same key.
func NewRegistry(fallback Segmenter, entries ...Entry) *Registry {
	if fallback == nil {
		fallback = LatinSegmenter{}
	}
	r := &Registry{
		entries:  make(map[Key]Segmenter, len(entries)),
		byScript: make(map[detection.Script][]Key),
		fallback: fallback,
	}
	for _, e := range entries {
		if _, exists := r.entries[e.Key]; !exists {
			r.byScript[e.Key.Script] = append(r.byScript[e.Key.Script], e.Key)
		}
		r.entries[e.Key] = e.Segmenter
	}
	return r
}

// Select picks the segmenter for a run.
//
// A script with no entry uses the fallback and a script with one entry uses
// it directly, both without language detection. Otherwise the run's
// language is detected and looked up, falling back to the script's
// LangOther entry and then to the fallback.
func (r *Registry) Select(d Detection) Segmenter {
	script := d.Script()
	keys := r.byScript[script]
	switch len(keys) {
	case 0:
		return r.fallback
	case 1:
		return r.entries[keys[0]]
	}

	if seg, ok := r.entries[Key{script, d.Language()}]; ok {
		return seg
	}
	if seg, ok := r.entries[Key{script, detection.LangOther}]; ok {
		return seg
	}
	return r.fallback
}

// Lookup returns the segmenter registered under exactly (script, lang).
func (r *Registry) Lookup(script detection.Script, lang detection.Language) (Segmenter, bool) {
	seg, ok := r.entries[Key{script, lang}]
	return seg, ok
}

// Fallback returns the segmenter used for scripts without entries.
func (r *Registry) Fallback() Segmenter {
	return r.fallback
}

// Keys returns the registered keys ordered by script, then language.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Script != keys[j].Script {
			return keys[i].Script < keys[j].Script
		}
		return keys[i].Language < keys[j].Language
	})
	return keys
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// DefaultCacheSize is the number of runs a dictionary segmenter memoizes.
const DefaultCacheSize = 100_000

// Options configures the standard registry.
type Options struct {
	// CamelCase splits Latin words at lowercase-to-uppercase transitions.
	CamelCase bool

	// Cache memoizes dictionary segmenter output per run.
	Cache bool

	// CacheSize bounds each memo cache. Zero means DefaultCacheSize.
	CacheSize int

	// Compounds enables German compound decomposition at (Latin, deu).
	Compounds *lexicon.Dictionary

	// Logger for model loading. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		CamelCase: true,
		Cache:     true,
	}
}

// NewStandardRegistry builds the registry of every segmenter compiled into
// this build. LatinSegmenter is registered at (Latin, Other) and is the
// fallback.
func NewStandardRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	latin := LatinSegmenter{CamelCase: opts.CamelCase}
	entries := []Entry{
		{Key{detection.ScriptLatin, detection.LangOther}, latin},
	}
	entries = append(entries, chineseEntries(opts)...)
	entries = append(entries, japaneseEntries(opts)...)
	if opts.Compounds != nil {
		entries = append(entries, Entry{
			Key{detection.ScriptLatin, detection.LangDeu},
			NewDecompoundingSegmenter(opts.Compounds, latin, opts.Cache),
		})
	}

	return NewRegistry(latin, entries...)
}

// cached wraps seg in a memo cache when opts asks for one.
func (opts Options) cached(seg Segmenter) Segmenter {
	if !opts.Cache {
		return seg
	}
	return Cached(seg, opts.CacheSize)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewStandardRegistry(DefaultOptions())
})

// DefaultRegistry returns the process-wide registry built from
// DefaultOptions on first use.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
