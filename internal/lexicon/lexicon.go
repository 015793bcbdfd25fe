// Package lexicon holds the fixed dictionary of acceptable words.
// Words are stored uppercase; lookups are case-insensitive.
package lexicon

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed bogwords.txt
var embeddedWords string

// ErrEmpty is returned when a word source yields no words.
var ErrEmpty = errors.New("lexicon: no words loaded")

// Lexicon is an immutable set of uppercase words.
type Lexicon struct {
	words map[string]struct{}
}

// Load reads one word per line from r. Lines are trimmed and uppercased;
// blank lines are skipped.
func Load(r io.Reader) (*Lexicon, error) {
	if r == nil {
		return nil, errors.New("lexicon: reader required")
	}

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := normalize(scanner.Text())
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read failed: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}

	return &Lexicon{words: words}, nil
}

// LoadFile loads a lexicon from the file at path.
// An empty path selects the embedded word list.
func LoadFile(path string) (*Lexicon, error) {
	if path == "" {
		return Embedded(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: cannot open %s: %w", path, err)
	}
	defer f.Close()

	lex, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return lex, nil
}

var (
	embeddedOnce sync.Once
	embedded     *Lexicon
)

// Embedded returns the word list compiled into the binary.
// The result is shared; Lexicon has no mutating methods.
func Embedded() *Lexicon {
	embeddedOnce.Do(func() {
		lex, err := Load(strings.NewReader(embeddedWords))
		if err != nil {
			// The embedded list is checked by tests; an empty set keeps lookups safe.
			lex = &Lexicon{words: map[string]struct{}{}}
		}
		embedded = lex
	})
	return embedded
}

// FromWords builds a lexicon from an in-memory list.
func FromWords(words ...string) (*Lexicon, error) {
	return Load(strings.NewReader(strings.Join(words, "\n")))
}

// Contains reports whether word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[normalize(word)]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
