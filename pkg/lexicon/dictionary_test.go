package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDictionary_Contains(t *testing.T) {
	dict, err := New("Brand", "schutz", "konzept", "wärme")
	if err != nil {
		t.Fatalf("Failed to build dictionary: %v", err)
	}
	defer dict.Close()

	tests := []struct {
		input    string
		expected bool
	}{
		{"brand", true},
		{"BRAND", true},
		{"Wärme", true},
		{"warme", false},
		{"haus", false},
		{"", false},
	}

	for _, tt := range tests {
		result := dict.Contains(tt.input)
		if result != tt.expected {
			t.Errorf("Contains(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}

	if dict.WordCount() != 4 {
		t.Errorf("WordCount() = %d, want 4", dict.WordCount())
	}
}

func TestDictionary_AddRemove(t *testing.T) {
	dict, err := New("der", "die")
	if err != nil {
		t.Fatalf("Failed to build dictionary: %v", err)
	}
	defer dict.Close()

	if err := dict.AddWord("Das"); err != nil {
		t.Fatalf("AddWord error: %v", err)
	}
	if !dict.Contains("das") {
		t.Error("expected 'das' after AddWord")
	}

	if err := dict.RemoveWord("der"); err != nil {
		t.Fatalf("RemoveWord error: %v", err)
	}
	if dict.Contains("der") {
		t.Error("expected 'der' to be gone after RemoveWord")
	}
	if dict.WordCount() != 2 {
		t.Errorf("WordCount() = %d, want 2", dict.WordCount())
	}
}

func TestDictionary_Read(t *testing.T) {
	input := "# stop words\nthe\n\n  and \nOF\n"
	dict, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	defer dict.Close()

	for _, w := range []string{"the", "and", "of"} {
		if !dict.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if dict.Contains("# stop words") {
		t.Error("comment lines should be skipped")
	}
}

func TestDictionary_OpenPersists(t *testing.T) {
	dir := t.TempDir()
	txtPath := filepath.Join(dir, "stopwords.txt")
	if err := os.WriteFile(txtPath, []byte("the\nand\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dict, err := Open(txtPath, nil)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := dict.AddWord("of"); err != nil {
		t.Fatalf("AddWord error: %v", err)
	}
	if err := dict.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "stopwords.fst")); err != nil {
		t.Errorf("expected fst file next to word list: %v", err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "and\nof\nthe\n" {
		t.Errorf("word list = %q, want %q", data, "and\nof\nthe\n")
	}

	reopened, err := Open(txtPath, nil)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()
	if !reopened.Contains("of") {
		t.Error("expected persisted word 'of' after reopen")
	}
}

func TestDictionary_Closed(t *testing.T) {
	dict, err := New("a")
	if err != nil {
		t.Fatal(err)
	}
	dict.Close()

	if dict.Contains("a") {
		t.Error("closed dictionary should not report words")
	}
	if err := dict.AddWord("b"); !errors.Is(err, ErrClosed) {
		t.Errorf("AddWord after Close = %v, want ErrClosed", err)
	}
}

func BenchmarkDictionary_Contains(b *testing.B) {
	dict, err := New("brand", "schutz", "konzept", "stahl", "beton", "decke")
	if err != nil {
		b.Fatalf("Failed to build dictionary: %v", err)
	}
	defer dict.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dict.Contains("beton")
	}
}

func TestDictionary_Words(t *testing.T) {
	dict, err := New("Wärme", "brand", "Schutz")
	if err != nil {
		t.Fatalf("Failed to build dictionary: %v", err)
	}
	defer dict.Close()

	words := dict.Words()
	expected := []string{"brand", "schutz", "wärme"}
	if len(words) != len(expected) {
		t.Fatalf("Words() = %q, want %q", words, expected)
	}
	for i := range words {
		if words[i] != expected[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, words[i], expected[i])
		}
	}
}
