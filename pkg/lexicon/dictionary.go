// Package lexicon provides FST-backed word sets for stop words and
// compound components.
package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// ErrClosed is returned by operations on a closed Dictionary.
var ErrClosed = errors.New("lexicon: dictionary closed")

// Dictionary holds a lowercase word set in an FST for fast lookups.
//
// A file-backed dictionary keeps its word list in a text file (one word per
// line, '#' comments) and persists the FST next to it with an .fst
// extension. An in-memory dictionary keeps the FST bytes only.
type Dictionary struct {
	fst     *vellum.FST
	words   map[string]struct{} // source of truth for modifications
	fstPath string
	txtPath string
	logger  *slog.Logger
	mu      sync.RWMutex
}

// New builds an in-memory dictionary from words.
func New(words ...string) (*Dictionary, error) {
	d := &Dictionary{
		words:  make(map[string]struct{}, len(words)),
		logger: slog.Default(),
	}
	for _, w := range words {
		d.insert(w)
	}
	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

// Open loads a word list from txtPath into an FST.
// If the FST file doesn't exist, it is built from the text file.
func Open(txtPath string, logger *slog.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dictionary{
		words:   make(map[string]struct{}, 1024),
		fstPath: strings.TrimSuffix(txtPath, ".txt") + ".fst",
		txtPath: txtPath,
		logger:  logger,
	}

	file, err := os.Open(txtPath)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open word list: %w", err)
	}
	defer file.Close()

	if err := d.read(file); err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", txtPath, err)
	}

	if err := d.loadOrBuildFST(); err != nil {
		return nil, fmt.Errorf("lexicon: build fst: %w", err)
	}

	logger.Debug("lexicon loaded", "path", txtPath, "words", len(d.words))
	return d, nil
}

// Read builds an in-memory dictionary from a word list in r.
func Read(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		words:  make(map[string]struct{}, 1024),
		logger: slog.Default(),
	}
	if err := d.read(r); err != nil {
		return nil, err
	}
	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.insert(word)
	}
	return scanner.Err()
}

func (d *Dictionary) insert(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	d.words[strings.ToLower(word)] = struct{}{}
}

// loadOrBuildFST loads an FST that matches the word list or builds a new one.
func (d *Dictionary) loadOrBuildFST() error {
	if fst, err := vellum.Open(d.fstPath); err == nil {
		if fst.Len() == len(d.words) {
			d.fst = fst
			return nil
		}
		d.logger.Info("lexicon fst out of date, rebuilding", "path", d.fstPath)
		fst.Close()
	}

	return d.rebuildFST()
}

// Contains checks if a word exists in the dictionary (case-insensitive).
func (d *Dictionary) Contains(word string) bool {
	lower := strings.ToLower(word)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return false
	}
	_, exists, _ := d.fst.Get([]byte(lower))
	return exists
}

// AddWord adds a word to the dictionary and rebuilds the FST.
func (d *Dictionary) AddWord(word string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.words == nil {
		return ErrClosed
	}
	d.insert(word)
	return d.rebuildFST()
}

// RemoveWord removes a word from the dictionary and rebuilds the FST.
func (d *Dictionary) RemoveWord(word string) error {
	lower := strings.ToLower(strings.TrimSpace(word))

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.words == nil {
		return ErrClosed
	}
	delete(d.words, lower)
	return d.rebuildFST()
}

// Rebuild rebuilds the FST from the current word set and, for file-backed
// dictionaries, saves both files.
func (d *Dictionary) Rebuild() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.words == nil {
		return ErrClosed
	}
	return d.rebuildFST()
}

// rebuildFST rebuilds the FST without locking (caller must hold lock).
func (d *Dictionary) rebuildFST() error {
	if d.fst != nil {
		d.fst.Close()
		d.fst = nil
	}

	sortedWords := d.sortedWords()

	if d.fstPath == "" {
		var buf bytes.Buffer
		if err := build(&buf, sortedWords); err != nil {
			return err
		}
		fst, err := vellum.Load(buf.Bytes())
		if err != nil {
			return err
		}
		d.fst = fst
		return nil
	}

	fstFile, err := os.Create(d.fstPath)
	if err != nil {
		return err
	}
	if err := build(fstFile, sortedWords); err != nil {
		fstFile.Close()
		return err
	}
	if err := fstFile.Close(); err != nil {
		return err
	}

	fst, err := vellum.Open(d.fstPath)
	if err != nil {
		return err
	}
	d.fst = fst

	d.logger.Debug("lexicon fst rebuilt", "path", d.fstPath, "words", len(sortedWords))
	return d.saveTextFile(sortedWords)
}

// build writes an FST of sorted words to w.
func build(w io.Writer, sortedWords []string) error {
	builder, err := vellum.New(w, nil)
	if err != nil {
		return err
	}

	for _, word := range sortedWords {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return err
		}
	}

	return builder.Close()
}

// saveTextFile writes the current word set back to the text file.
func (d *Dictionary) saveTextFile(sortedWords []string) error {
	file, err := os.Create(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range sortedWords {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (d *Dictionary) sortedWords() []string {
	sortedWords := make([]string, 0, len(d.words))
	for word := range d.words {
		sortedWords = append(sortedWords, word)
	}
	sort.Strings(sortedWords)
	return sortedWords
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.words = nil
	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// Path returns the word list path, or "" for in-memory dictionaries.
func (d *Dictionary) Path() string {
	return d.txtPath
}

// Words returns the words in sorted order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sortedWords()
}
