package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/classifier"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/lexicon"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/normalizer"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/segmenter"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/tokenizer"
)

const (
	warmup    = 1000
	boxWidth  = 62
	nameWidth = 26
)

// ANSI color codes, cleared when stdout is not a terminal.
var (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var (
	line       = strings.Repeat("─", boxWidth)
	iterations = 100000
)

func main() {
	compounds := flag.String("compounds", "", "German compound component list")
	flag.IntVar(&iterations, "n", iterations, "iterations per benchmark")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		colorReset, colorCyan, colorGreen, colorYellow, colorDim = "", "", "", "", ""
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg := tokenizer.DefaultConfig()
	cfg.StopWords = []string{"der", "die", "das", "und", "the", "of", "and"}
	cfg.CompoundsPath = *compounds
	if *compounds != "" {
		cfg.AllowList = detection.AllowList{detection.ScriptLatin: {detection.LangDeu}}
	}

	fmt.Print("Loading tokenizer... ")
	start := time.Now()
	tok, err := tokenizer.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer tok.Close()
	fmt.Printf("done (%d compound components in %v)\n", tok.CompoundCount(), time.Since(start).Round(time.Millisecond))

	// Dictionary segmenters load their models on first use.
	fmt.Print("Loading dictionary segmenters... ")
	start = time.Now()
	drain(tok.Tokenize("我喜欢吃苹果 すもももももももものうち"))
	fmt.Printf("done (%v)\n", time.Since(start).Round(time.Millisecond))

	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	english := "The quick (\"brown\") fox can't jump 32.3 feet, right? Brr, it's 29.3°F!"
	german := "Der Brandschutzkonzept und die Wärmedämmung der Stahlbetondecke"
	chinese := "人工智能技术正在改变我们的生活方式"
	japanese := "東京都に住んでいる友達と一緒に映画を見ました"
	mixed := "Hello 世界, camelCaseWord שלום 123"

	printHeader("FULL PIPELINE THROUGHPUT")
	bench("English sentence", func() { drain(tok.Tokenize(english)) })
	bench("German sentence", func() { drain(tok.Tokenize(german)) })
	bench("Chinese sentence", func() { drain(tok.Tokenize(chinese)) })
	bench("Japanese sentence", func() { drain(tok.Tokenize(japanese)) })
	bench("Mixed scripts", func() { drain(tok.Tokenize(mixed)) })
	bench("Terms (German)", func() { tok.Terms(german) })
	printFooter()
	fmt.Println()

	printHeader("SEGMENTATION BREAKDOWN")
	bench("Run splitting", func() {
		runs := segmenter.NewRuns(mixed)
		for {
			if _, ok := runs.Next(); !ok {
				break
			}
		}
	})
	bench("Script detection", func() { detection.ScriptOfString(english) })
	bench("Language detection", func() { detection.Default{}.Language(english, nil) })
	bench("Segment (no normalizer)", func() { drain(tok.Segment(english)) })
	latin := segmenter.LatinSegmenter{}
	bench("Latin segmenter", func() { segmenter.Collect(latin.Segment(english)) })
	bench("CamelCase split", func() { segmenter.Collect(segmenter.SplitCamelCase("camelCaseWordSplitter")) })

	// Uncached segmenters; either may be compiled out.
	uncached := segmenter.NewStandardRegistry(segmenter.Options{})
	if seg, ok := uncached.Lookup(detection.ScriptCj, detection.LangCmn); ok {
		bench("Chinese (uncached)", func() { segmenter.Collect(seg.Segment(chinese)) })
		cached := segmenter.Cached(seg, 1024)
		bench("Chinese (cache hit)", func() { segmenter.Collect(cached.Segment(chinese)) })
	}
	if seg, ok := uncached.Lookup(detection.ScriptCj, detection.LangJpn); ok {
		bench("Japanese (uncached)", func() { segmenter.Collect(seg.Segment(japanese)) })
	}
	printFooter()
	fmt.Println()

	if *compounds != "" {
		dict, err := lexicon.Open(*compounds, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer dict.Close()

		printHeader("COMPOUND BREAKDOWN")
		bench("Lexicon lookup", func() { dict.Contains("wärme") })
		splitter := segmenter.NewDecompoundingSegmenter(dict, nil, true)
		splitter.Decompose("Wärmedämmung")
		bench("Split (cache hit)", func() { splitter.Decompose("Wärmedämmung") })
		bench("Split (cache miss)", func() {
			splitter.ClearCache()
			splitter.Decompose("Wärmedämmung")
		})
		printFooter()
		fmt.Println()
	}

	printHeader("NORMALIZER STEPS BREAKDOWN")
	pipes := normalizer.BuildPipelines(normalizer.DefaultConfig())
	benchNormalizer("Pipeline (Latin)", normalizerFunc(pipes.Apply), "Wärmedämmung", detection.LangUnd)
	benchNormalizer("Pipeline (Latin, stem)", normalizerFunc(pipes.Apply), "Wärmedämmung", detection.LangDeu)
	benchNormalizer("NFKD decompose", normalizer.CompatibilityDecomposition{}, "Wärmedämmung", detection.LangUnd)
	benchNormalizer("Remove control chars", normalizer.Chars(normalizer.ControlChar{}), "Wärme\x00dämmung", detection.LangUnd)
	benchNormalizer("Lowercase", normalizer.Lowercase{}, "Wärmedämmung", detection.LangUnd)
	benchNormalizer("Normalize quotes", normalizer.Chars(normalizer.Quote{}), "„Wärmedämmung“", detection.LangUnd)
	benchNormalizer("Expand ligatures", normalizer.Chars(normalizer.Ligature{}), "Œuvre", detection.LangUnd)
	benchNormalizer("Convert Eszett to ss", normalizer.Chars(normalizer.Eszett{}), "Größe", detection.LangUnd)
	benchNormalizer("Remove combining marks", normalizer.Chars(normalizer.NonspacingMark{}), "Wa\u0308rme", detection.LangUnd)
	benchNormalizer("Deunicode", normalizer.Deunicode{}, "Wärmedämmung", detection.LangUnd)
	benchNormalizer("Stem German", normalizer.Stemmer{}, "warme", detection.LangDeu)
	c := classifier.New(nil)
	bench("Classify", func() { c.KindOf("warme") })
	printFooter()
}

// normalizerFunc runs a whole pipeline as a single always-on normalizer.
type normalizerFunc func(*token.Token)

func (normalizerFunc) ShouldNormalize(*token.Token) bool { return true }
func (f normalizerFunc) Normalize(tok *token.Token)     { f(tok) }

func benchNormalizer(name string, n normalizer.Normalizer, lemma string, lang detection.Language) {
	pipe := normalizer.Pipeline{n}
	bench(name, func() {
		tok := token.Token{Lemma: lemma, Script: detection.ScriptLatin, Language: lang}
		pipe.Apply(&tok)
	})
}

type nexter interface {
	Next() (token.Token, bool)
}

func drain(it nexter) {
	for {
		if _, ok := it.Next(); !ok {
			return
		}
	}
}

// bench runs fn and prints one row of the current table.
func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	printRow(name, float64(iterations)/elapsed.Seconds(), float64(elapsed.Nanoseconds())/float64(iterations))
}

func printRow(name string, opsPerSec, nsPerOp float64) {
	if len(name) > nameWidth {
		name = name[:nameWidth]
	}

	// Pad on the uncolored text so escape codes don't count toward the width.
	plain := fmt.Sprintf("  %-*s %10.0f ops/sec %8.0f ns", nameWidth, name, opsPerSec, nsPerOp)
	pad := ""
	if n := boxWidth - len(plain); n > 0 {
		pad = strings.Repeat(" ", n)
	}

	fmt.Printf("%s│%s  %-*s %s%10.0f%s ops/sec %s%8.0f%s ns%s%s│%s\n",
		colorDim, colorReset,
		nameWidth, name,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset,
		pad, colorDim, colorReset)
}

func printHeader(title string) {
	title = "  " + title
	if len(title) < boxWidth {
		title += strings.Repeat(" ", boxWidth-len(title))
	}
	fmt.Printf("%s┌%s┐%s\n", colorDim, line, colorReset)
	fmt.Printf("%s│%s%s%s%s%s│%s\n", colorDim, colorReset, colorCyan, title, colorReset, colorDim, colorReset)
	fmt.Printf("%s├%s┤%s\n", colorDim, line, colorReset)
}

func printFooter() {
	fmt.Printf("%s└%s┘%s\n", colorDim, line, colorReset)
}
