package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/tokenizer"
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/token"
)

func main() {
	stopWords := flag.String("stopwords", getEnv("POLYGLOT_STOPWORDS", ""), "stop word list (one word per line)")
	compounds := flag.String("compounds", getEnv("POLYGLOT_COMPOUNDS", ""), "German compound component list")
	allow := flag.String("allow", "", "allowed languages per script, e.g. \"latin=deu,eng;cj=jpn\"")
	detect := flag.Bool("detect", false, "detect the language of every run")
	terms := flag.Bool("terms", false, "print deduplicated word terms instead of tokens")
	raw := flag.Bool("raw", false, "print segmented tokens without normalization")
	noCamel := flag.Bool("no-camel", false, "do not split camelCase words")
	deunicode := flag.Bool("deunicode", false, "transliterate alphabetic scripts to ASCII")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tokenize [flags] [text]")
		fmt.Fprintln(os.Stderr, "       tokenize [flags]          (interactive mode)")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("POLYGLOT_LOG_LEVEL", "warn")),
	}))
	slog.SetDefault(logger)

	cfg := tokenizer.DefaultConfig()
	cfg.StopWordsPath = *stopWords
	cfg.CompoundsPath = *compounds
	cfg.DetectLanguage = *detect
	cfg.CamelCase = !*noCamel
	cfg.Normalizers.Deunicode = *deunicode
	cfg.Logger = logger
	if *allow != "" {
		list, err := detection.ParseAllowList(*allow)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.AllowList = list
	}

	tok, err := tokenizer.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tokenizer: %v\n", err)
		os.Exit(1)
	}
	defer tok.Close()

	run := func(text string) ([]byte, error) {
		switch {
		case *terms:
			return json.Marshal(tok.Terms(text))
		case *raw:
			return json.Marshal(nonNil(tok.Segment(text).Collect()))
		default:
			return json.Marshal(nonNil(tok.Tokenize(text).Collect()))
		}
	}

	// If text provided as argument, tokenize and exit
	if flag.NArg() > 0 {
		output, err := run(strings.Join(flag.Args(), " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(output))
		return
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println("Polyglot Tokenizer (interactive mode)")
		fmt.Printf("Stop words: %d, compound components: %d\n", tok.StopWordCount(), tok.CompoundCount())
		fmt.Println("Type some text, press Enter to tokenize. Ctrl+D to exit.")
		fmt.Println()
	}

	// Piped input is tokenized line by line without the prompt.
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		output, err := run(text)
		if err != nil {
			logger.Error("encode tokens", "error", err)
			continue
		}
		if interactive {
			fmt.Printf("  %s\n\n", output)
		} else {
			fmt.Println(string(output))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func nonNil(tokens []token.Token) []token.Token {
	if tokens == nil {
		return []token.Token{}
	}
	return tokens
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
