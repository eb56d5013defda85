//go:build no_japanese

package segmenter

func japaneseEntries(Options) []Entry {
	return nil
}
