package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/lexicon"
)

// errNotFound makes `contains` exit non-zero without printing an error.
var errNotFound = errors.New("not found")

type command struct {
	usage   string
	help    string
	minArgs int
	run     func(dict *lexicon.Dictionary, args []string) error
}

var commands = map[string]command{
	"add":      {"add <word> [word...]", "Add words to the list", 1, addWords},
	"remove":   {"remove <word> [word...]", "Remove words from the list", 1, removeWords},
	"contains": {"contains <word> [word...]", "Check if words exist", 1, containsWords},
	"list":     {"list", "Print every word, sorted", 0, listWords},
	"rebuild":  {"rebuild", "Rebuild FST from text file", 0, rebuild},
	"stats":    {"stats", "Show list statistics", 0, stats},
}

var commandOrder = []string{"add", "remove", "contains", "list", "rebuild", "stats"}

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	listPath, name, args := os.Args[1], os.Args[2], os.Args[3:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		printUsage()
		os.Exit(1)
	}
	if len(args) < cmd.minArgs {
		fmt.Fprintf(os.Stderr, "Usage: lexicon %s %s\n", listPath, cmd.usage)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("POLYGLOT_LOG_LEVEL", "warn")),
	}))

	dict, err := lexicon.Open(listPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word list: %v\n", err)
		os.Exit(1)
	}

	err = cmd.run(dict, args)
	dict.Close()
	if errors.Is(err, errNotFound) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func addWords(dict *lexicon.Dictionary, words []string) error {
	for _, word := range words {
		if err := dict.AddWord(word); err != nil {
			return fmt.Errorf("add %q: %w", word, err)
		}
		fmt.Printf("Added: %s\n", word)
	}
	fmt.Printf("Total words: %d\n", dict.WordCount())
	return nil
}

func removeWords(dict *lexicon.Dictionary, words []string) error {
	for _, word := range words {
		if err := dict.RemoveWord(word); err != nil {
			return fmt.Errorf("remove %q: %w", word, err)
		}
		fmt.Printf("Removed: %s\n", word)
	}
	fmt.Printf("Total words: %d\n", dict.WordCount())
	return nil
}

func containsWords(dict *lexicon.Dictionary, words []string) error {
	var err error
	for _, word := range words {
		if dict.Contains(word) {
			fmt.Printf("'%s' exists in %s\n", word, dict.Path())
			continue
		}
		fmt.Printf("'%s' NOT in %s\n", word, dict.Path())
		err = errNotFound
	}
	return err
}

func listWords(dict *lexicon.Dictionary, _ []string) error {
	for _, word := range dict.Words() {
		fmt.Println(word)
	}
	return nil
}

func rebuild(dict *lexicon.Dictionary, _ []string) error {
	if err := dict.Rebuild(); err != nil {
		return fmt.Errorf("rebuild fst: %w", err)
	}
	fmt.Printf("FST rebuilt. Total words: %d\n", dict.WordCount())
	return nil
}

func stats(dict *lexicon.Dictionary, _ []string) error {
	fmt.Printf("Word list: %s\n", dict.Path())
	fmt.Printf("Word count: %d\n", dict.WordCount())
	return nil
}

func printUsage() {
	fmt.Println("Usage: lexicon <words.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Manages stop word and compound component lists. The compiled")
	fmt.Println("FST is kept next to the word list as <words>.fst.")
	fmt.Println()
	fmt.Println("Commands:")
	for _, name := range commandOrder {
		cmd := commands[name]
		fmt.Printf("  %-26s %s\n", cmd.usage, cmd.help)
	}
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
