package segmenter

import (
	"testing"
)

func TestSplitCamelCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty string is preserved", "", []string{""}},
		{"one letter word", "a", []string{"a"}},
		{"two letter word", "aB", []string{"a", "B"}},
		{"camel case is split", "camelCase", []string{"camel", "Case"}},
		{"all caps is not split", "SCREAMING", []string{"SCREAMING"}},
		{"non ascii boundary on left", "r\u00e9sum\u00e9Writer", []string{"r\u00e9sum\u00e9", "Writer"}},
		{"non ascii boundary on right", "KarelČapek", []string{"Karel", "Čapek"}},
		{"non spacing marks are respected", "resume\u0301Writer", []string{"resume\u0301", "Writer"}},
		{"several boundaries", "parseHTTPRequestBody", []string{"parse", "HTTPRequest", "Body"}},
		{"uppercase resets the scan", "xaBC", []string{"xa", "BC"}},
		{"digits are not lowercase", "a1B", []string{"a1B"}},
		{"pascal case", "PascalCase", []string{"Pascal", "Case"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Collect(SplitCamelCase(tt.input))
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("SplitCamelCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitCamelCase_SinglePass(t *testing.T) {
	units := SplitCamelCase("oneTwo")
	first := Collect(units)
	if len(first) != 2 {
		t.Fatalf("first pass = %q, want 2 units", first)
	}
	if again := Collect(units); len(again) != 0 {
		t.Errorf("second pass = %q, want nothing", again)
	}
}

func BenchmarkSplitCamelCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Collect(SplitCamelCase("parseHTTPRequestBodyWithRésuméWriter"))
	}
}

func stringSliceEqual(a, b []string) bool {
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
