package segmenter

import (
	"strings"
	"testing"
)

func TestCached(t *testing.T) {
	calls := 0
	seg := Cached(Func(func(text string) Units {
		calls++
		return LatinSegmenter{}.Segment(text)
	}), 8)

	first := Collect(seg.Segment("hello world"))
	second := Collect(seg.Segment("hello world"))
	expected := []string{"hello", " ", "world"}

	if !stringSliceEqual(first, expected) || !stringSliceEqual(second, expected) {
		t.Errorf("cached units = %q then %q, want %q", first, second, expected)
	}
	if calls != 1 {
		t.Errorf("inner segmenter called %d times, want 1", calls)
	}

	c := seg.(*cachedSegmenter)
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d, want 0", c.Len())
	}
}

func TestCached_LongRunsBypass(t *testing.T) {
	calls := 0
	seg := Cached(Func(func(text string) Units {
		calls++
		return LatinSegmenter{}.Segment(text)
	}), 8)

	long := strings.Repeat("word ", maxCachedRunLen)
	for i := 0; i < 3; i++ {
		if got := strings.Join(Collect(seg.Segment(long)), ""); got != long {
			t.Fatal("long run not reproduced")
		}
	}
	if calls != 3 {
		t.Errorf("inner segmenter called %d times, want 3", calls)
	}
	if n := seg.(*cachedSegmenter).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestCached_Empty(t *testing.T) {
	seg := Cached(LatinSegmenter{}, 0)
	if units := Collect(seg.Segment("")); len(units) != 0 {
		t.Errorf("Segment(\"\") = %q, want no units", units)
	}
}
