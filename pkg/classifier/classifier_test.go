package classifier

import (
	"testing"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/lexicon"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

func TestClassifier_KindOf(t *testing.T) {
	stopWords, err := lexicon.New("the", "und", "der")
	if err != nil {
		t.Fatalf("Failed to build stop words: %v", err)
	}
	defer stopWords.Close()

	c := New(stopWords)

	tests := []struct {
		input    string
		expected token.Kind
	}{
		{"hello", token.Word},
		{"42", token.Word},
		{"3.14", token.Word},
		{"the", token.StopWord},
		{"The", token.StopWord},
		{"und", token.StopWord},
		{" ", token.SeparatorSoft},
		{"\t", token.SeparatorSoft},
		{",", token.SeparatorSoft},
		{"\"", token.SeparatorSoft},
		{"°", token.SeparatorSoft},
		{"", token.SeparatorSoft},
		{".", token.SeparatorHard},
		{"?!", token.SeparatorHard},
		{" \n", token.SeparatorHard},
		{"。", token.SeparatorHard},
		{"؟", token.SeparatorHard},
		{"चलो", token.Word},
	}

	for _, tt := range tests {
		result := c.KindOf(tt.input)
		if result != tt.expected {
			t.Errorf("KindOf(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestClassifier_NoStopWords(t *testing.T) {
	c := New(nil)

	tok := token.Token{Lemma: "the"}
	c.Classify(&tok)
	if tok.Kind != token.Word {
		t.Errorf("Classify(%q) = %v, want word", tok.Lemma, tok.Kind)
	}

	tok = token.Token{Lemma: "\n\n"}
	c.Classify(&tok)
	if !tok.IsSeparator() || tok.Kind != token.SeparatorHard {
		t.Errorf("Classify(%q) = %v, want separator_hard", tok.Lemma, tok.Kind)
	}
}

func TestClassifier_ClosedStopWords(t *testing.T) {
	stopWords, err := lexicon.New("the")
	if err != nil {
		t.Fatalf("Failed to build stop words: %v", err)
	}
	c := New(stopWords)
	stopWords.Close()

	if kind := c.KindOf("the"); kind != token.Word {
		t.Errorf("KindOf after Close = %v, want word", kind)
	}
}
