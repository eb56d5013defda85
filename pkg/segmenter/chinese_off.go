//go:build no_chinese

package segmenter

func chineseEntries(Options) []Entry {
	return nil
}
