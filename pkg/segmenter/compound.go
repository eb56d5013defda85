package segmenter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/lexicon"
)

// germanSuffixes are accepted on the final component of a compound.
var germanSuffixes = []string{
	"ungen", "schaft", "heiten", "keiten",
	"ung", "heit", "keit", "tion", "isch", "lich", "chen", "lein",
	"haft", "bar", "sam", "tum", "ig", "er", "en", "em", "es",
	"st", "nd", "te", "el", "le", "se", "ße", "ze",
	"e", "s", "n", "t",
}

var umlautReplacer = strings.NewReplacer(
	"ä", "a", "ö", "o", "ü", "u", "ß", "ss",
)

// DecompoundingSegmenter splits German compounds into dictionary components
// after word segmentation: "Brandschutzkonzept" -> "Brand", "schutz",
// "konzept". Components are slices of the original word, so case and
// offsets survive.
type DecompoundingSegmenter struct {
	dict  *lexicon.Dictionary
	words Segmenter
	cache *lru.Cache[string, []int]
}

// NewDecompoundingSegmenter creates a segmenter that cuts the units of
// words into components found in dict. With cache set, splits are memoized
// in an LRU of DefaultCacheSize words.
func NewDecompoundingSegmenter(dict *lexicon.Dictionary, words Segmenter, cache bool) *DecompoundingSegmenter {
	if words == nil {
		words = LatinSegmenter{}
	}
	c := &DecompoundingSegmenter{dict: dict, words: words}
	if cache {
		c.cache, _ = lru.New[string, []int](DefaultCacheSize)
	}
	return c
}

// Segment implements Segmenter.
func (c *DecompoundingSegmenter) Segment(text string) Units {
	return &compoundUnits{words: c.words.Segment(text), splitter: c}
}

// Decompose returns the components of word, or [word] if it can't be split.
func (c *DecompoundingSegmenter) Decompose(word string) []string {
	lens := c.split(word)
	if len(lens) < 2 {
		return []string{word}
	}
	parts := make([]string, len(lens))
	for i, n := range lens {
		end := runeOffset(word, n)
		parts[i] = word[:end]
		word = word[end:]
	}
	return parts
}

// split returns the rune length of each component, or nil.
func (c *DecompoundingSegmenter) split(word string) []int {
	lower := strings.Map(unicode.ToLower, word)

	if c.cache == nil {
		return c.splitUncached(lower)
	}

	if result, ok := c.cache.Get(lower); ok {
		return result
	}
	result := c.splitUncached(lower)
	c.cache.Add(lower, result)
	return result
}

// CacheLen returns the number of cached splits (0 if caching is disabled).
func (c *DecompoundingSegmenter) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// ClearCache clears the memoization cache.
func (c *DecompoundingSegmenter) ClearCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

func (c *DecompoundingSegmenter) splitUncached(word string) []int {
	runes := []rune(word)
	if len(runes) < 4 {
		return nil
	}

	lens := c.greedySplit(runes)
	if len(lens) < 2 {
		return nil
	}

	pos := 0
	for _, n := range lens {
		if !c.isValidWord(string(runes[pos : pos+n])) {
			return nil
		}
		pos += n
	}
	return lens
}

// greedySplit takes the longest dictionary prefix (minimum 2 runes) from
// left to right. Only the final component may match through a suffix.
func (c *DecompoundingSegmenter) greedySplit(runes []rune) []int {
	var lens []int

	for pos := 0; pos < len(runes); {
		found := false
		for length := len(runes) - pos; length >= 2; length-- {
			prefix := string(runes[pos : pos+length])

			var isValid bool
			if pos+length == len(runes) {
				isValid = c.isValidWord(prefix)
			} else {
				isValid = c.isWordInDict(prefix)
			}

			if isValid {
				lens = append(lens, length)
				pos += length
				found = true
				break
			}
		}

		if !found {
			return nil
		}
	}

	return lens
}

// isWordInDict checks direct lookup and umlaut-folded lookup only.
func (c *DecompoundingSegmenter) isWordInDict(word string) bool {
	if c.dict.Contains(word) {
		return true
	}
	folded := umlautReplacer.Replace(word)
	return folded != word && c.dict.Contains(folded)
}

// isValidWord is isWordInDict with a suffix-stripping fallback.
func (c *DecompoundingSegmenter) isValidWord(word string) bool {
	if c.isWordInDict(word) {
		return true
	}

	for _, suffix := range germanSuffixes {
		stem, ok := strings.CutSuffix(word, suffix)
		if !ok || utf8.RuneCountInString(stem) < 2 {
			continue
		}
		if c.isWordInDict(stem) {
			return true
		}
	}
	return false
}

type compoundUnits struct {
	words    Units
	splitter *DecompoundingSegmenter
	word     string
	pending  []int
}

func (u *compoundUnits) Next() (string, bool) {
	if len(u.pending) > 0 {
		end := runeOffset(u.word, u.pending[0])
		u.pending = u.pending[1:]
		unit := u.word[:end]
		u.word = u.word[end:]
		return unit, true
	}

	word, ok := u.words.Next()
	if !ok {
		return "", false
	}
	lens := u.splitter.split(word)
	if len(lens) < 2 {
		return word, true
	}
	u.word, u.pending = word, lens
	return u.Next()
}

// runeOffset returns the byte offset of the n-th rune of s.
func runeOffset(s string, n int) int {
	off := 0
	for i := 0; i < n && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
