package tokenizer

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/normalizer"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

var testComponents = []string{
	"brand", "schutz", "konzept", "stahl", "beton", "decke", "wärme", "dämmung",
}

func writeWordList(t testing.TB, name string, words []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}
	return path
}

func newTestTokenizer(t testing.TB, cfg Config) *Tokenizer {
	t.Helper()
	tok, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create tokenizer: %v", err)
	}
	t.Cleanup(func() { tok.Close() })
	return tok
}

func germanConfig(t testing.TB) Config {
	cfg := DefaultConfig()
	cfg.CompoundsPath = writeWordList(t, "components.txt", testComponents)
	cfg.StopWords = []string{"der", "die", "das", "und"}
	cfg.AllowList = detection.AllowList{detection.ScriptLatin: {detection.LangDeu}}
	cfg.Normalizers.Stem = false
	return cfg
}

func TestTokenizer_Tokenize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StopWords = []string{"the", "and"}
	tok := newTestTokenizer(t, cfg)

	text := "The quick „brown“ fox and the Dog."
	tokens := tok.Tokenize(text).Collect()

	expected := []struct {
		lemma string
		kind  token.Kind
	}{
		{"the", token.StopWord},
		{" ", token.SeparatorSoft},
		{"quick", token.Word},
		{" ", token.SeparatorSoft},
		{"\"", token.SeparatorSoft},
		{"brown", token.Word},
		{"\"", token.SeparatorSoft},
		{" ", token.SeparatorSoft},
		{"fox", token.Word},
		{" ", token.SeparatorSoft},
		{"and", token.StopWord},
		{" ", token.SeparatorSoft},
		{"the", token.StopWord},
		{" ", token.SeparatorSoft},
		{"dog", token.Word},
		{".", token.SeparatorHard},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Tokenize(%q) returned %d tokens, want %d: %v", text, len(tokens), len(expected), tokens)
	}

	var original strings.Builder
	for i, tk := range tokens {
		if tk.Lemma != expected[i].lemma || tk.Kind != expected[i].kind {
			t.Errorf("token %d = (%q, %v), want (%q, %v)", i, tk.Lemma, tk.Kind, expected[i].lemma, expected[i].kind)
		}
		original.WriteString(tk.Original(text))
	}
	if original.String() != text {
		t.Errorf("original slices = %q, want %q", original.String(), text)
	}
}

func TestTokenizer_Segment(t *testing.T) {
	tok := newTestTokenizer(t, DefaultConfig())

	tokens := tok.Segment("Hello World").Collect()
	if len(tokens) != 3 {
		t.Fatalf("Segment returned %v, want 3 tokens", tokens)
	}
	if tokens[0].Lemma != "Hello" || tokens[0].Kind != token.Unknown {
		t.Errorf("Segment should not normalize or classify, got %+v", tokens[0])
	}

	units := tok.SegmentStr("camelCase").Collect()
	if len(units) != 2 || units[0] != "camel" || units[1] != "Case" {
		t.Errorf("SegmentStr(%q) = %q, want [camel Case]", "camelCase", units)
	}

	cfg := DefaultConfig()
	cfg.CamelCase = false
	plain := newTestTokenizer(t, cfg)
	if units := plain.SegmentStr("camelCase").Collect(); len(units) != 1 {
		t.Errorf("SegmentStr without camelCase = %q, want one unit", units)
	}
}

func TestTokenizer_Compounds(t *testing.T) {
	tok := newTestTokenizer(t, germanConfig(t))

	tests := []struct {
		input    string
		expected []string
	}{
		{"Brandschutzkonzept", []string{"brand", "schutz", "konzept"}},
		{"Der Brandschutzkonzept und die Wärmedämmung", []string{"brand", "schutz", "konzept", "warme", "dammung"}},
		{"Stahlbetondecke", []string{"stahl", "beton", "decke"}},
		{"Haus", []string{"haus"}},
		{"Größe", []string{"grosse"}},
	}

	for _, tt := range tests {
		result := tok.Terms(tt.input)
		if !equal(result, tt.expected) {
			t.Errorf("Terms(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}

	if tok.CompoundCount() != len(testComponents) {
		t.Errorf("CompoundCount() = %d, want %d", tok.CompoundCount(), len(testComponents))
	}
}

func TestTokenizer_CompoundsKeepOffsets(t *testing.T) {
	tok := newTestTokenizer(t, germanConfig(t))

	text := "Wärmedämmung"
	tokens := tok.Tokenize(text).Collect()
	if len(tokens) != 2 {
		t.Fatalf("Tokenize(%q) = %v, want 2 tokens", text, tokens)
	}
	if got := tokens[0].Original(text); got != "Wärme" {
		t.Errorf("first component original = %q, want Wärme", got)
	}
	if tokens[1].CharStart != 5 || tokens[1].ByteStart != 6 {
		t.Errorf("second component starts at (%d, %d), want (5, 6)", tokens[1].CharStart, tokens[1].ByteStart)
	}
	if tokens[0].Language != detection.LangDeu {
		t.Errorf("language = %v, want deu", tokens[0].Language)
	}
}

func TestTokenizer_Deduplication(t *testing.T) {
	tok := newTestTokenizer(t, DefaultConfig())

	result := tok.Terms("Haus haus HAUS")
	if !equal(result, []string{"haus"}) {
		t.Errorf("Terms = %q, want [haus]", result)
	}
}

func TestTokenizer_Stemming(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DetectLanguage = true
	cfg.AllowList = detection.AllowList{detection.ScriptLatin: {detection.LangEng}}
	tok := newTestTokenizer(t, cfg)

	result := tok.Terms("Running dogs")
	if !equal(result, []string{"run", "dog"}) {
		t.Errorf("Terms = %q, want [run dog]", result)
	}

	// Without language detection there is nothing to pick a stemmer by.
	plain := newTestTokenizer(t, DefaultConfig())
	if result := plain.Terms("Running dogs"); !equal(result, []string{"running", "dogs"}) {
		t.Errorf("Terms without detection = %q, want [running dogs]", result)
	}
}

func TestTokenizer_WithCustomNormalizer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalizers = normalizer.Config{
		Decompose:  true,
		Lowercase:  true,
		Eszett:     true,
		StripMarks: true,
	}
	tok := newTestTokenizer(t, cfg)

	if result := tok.Terms("Größe"); !equal(result, []string{"grosse"}) {
		t.Errorf("Terms = %q, want [grosse]", result)
	}

	cfg.Normalizers = normalizer.Config{}
	raw := newTestTokenizer(t, cfg)
	if result := raw.Terms("Größe"); !equal(result, []string{"Größe"}) {
		t.Errorf("Terms without normalizers = %q, want [Größe]", result)
	}
}

func TestTokenizer_StopWordsPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StopWordsPath = writeWordList(t, "stopwords.txt", []string{"the", "of", "and"})
	tok := newTestTokenizer(t, cfg)

	if tok.StopWordCount() != 3 {
		t.Errorf("StopWordCount() = %d, want 3", tok.StopWordCount())
	}
	fstPath := strings.TrimSuffix(cfg.StopWordsPath, ".txt") + ".fst"
	if _, err := os.Stat(fstPath); err != nil {
		t.Errorf("expected compiled stop words at %s: %v", fstPath, err)
	}
	if result := tok.Terms("the art of war"); !equal(result, []string{"art", "war"}) {
		t.Errorf("Terms = %q, want [art war]", result)
	}
}

func TestTokenizer_MissingDictionary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompoundsPath = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := New(cfg); err == nil {
		t.Error("New with a missing compound list should fail")
	}

	cfg = DefaultConfig()
	cfg.StopWordsPath = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := New(cfg); err == nil {
		t.Error("New with a missing stop word list should fail")
	}
}

func TestTokenizer_Empty(t *testing.T) {
	tok := newTestTokenizer(t, DefaultConfig())

	if tokens := tok.Tokenize("").Collect(); len(tokens) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want no tokens", tokens)
	}
	if terms := tok.Terms(""); len(terms) != 0 {
		t.Errorf("Terms(\"\") = %q, want none", terms)
	}
}

type countingDetector struct {
	mu      sync.Mutex
	scripts int
}

func (c *countingDetector) Script(text string) detection.Script {
	c.mu.Lock()
	c.scripts++
	c.mu.Unlock()
	return detection.ScriptOfString(text)
}

func (c *countingDetector) Language(string, detection.AllowList) detection.Language {
	return detection.LangOther
}

func TestTokenizer_Lazy(t *testing.T) {
	det := &countingDetector{}
	cfg := DefaultConfig()
	cfg.Detector = det
	tok := newTestTokenizer(t, cfg)

	text := strings.Repeat("word ש ", 10_000)
	for tk := range tok.Tokenize(text).All() {
		if tk.Lemma != "word" {
			t.Errorf("first token = %q, want word", tk.Lemma)
		}
		break
	}
	if det.scripts != 1 {
		t.Errorf("detected %d runs to produce one token, want 1", det.scripts)
	}
}

func TestTokenizer_Concurrent(t *testing.T) {
	tok := newTestTokenizer(t, germanConfig(t))
	text := "Der Brandschutzkonzept und die Wärmedämmung der Stahlbetondecke"
	expected := tok.Terms(text)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if result := tok.Terms(text); !equal(result, expected) {
					t.Errorf("concurrent Terms = %q, want %q", result, expected)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
