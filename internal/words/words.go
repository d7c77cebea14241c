// internal/words/words.go
//
// Word list management for the guess engine.
//
// Responsibilities:
//   - Load a word list from a file, or fall back to the embedded default.
//   - Maintain the ordered list plus a set for exact-match lookups.
//   - Supply target selection (seeded uniform pick, deterministic daily pick).
//
// Words are kept verbatim: no case folding and no length filtering. The
// target's length decides what counts as a well-formed guess, so lists with
// mixed word lengths are fine.
//
// File format:
//   - one word per line,
//   - surrounding whitespace trimmed,
//   - blank lines and lines starting with '#' skipped.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/H4kor/rustle/assets"
)

// ErrEmptyList is returned when loading yields no usable words.
var ErrEmptyList = errors.New("words: list is empty")

// List is an immutable word list with exact-match lookup.
type List struct {
	words []string
	set   map[string]struct{}
}

// NewList builds a List from the given words, preserving their order.
func NewList(ws []string) *List {
	l := &List{
		words: make([]string, len(ws)),
		set:   make(map[string]struct{}, len(ws)),
	}
	copy(l.words, ws)
	for _, w := range ws {
		l.set[w] = struct{}{}
	}
	return l
}

// Load reads a word list from path, one word per line.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open list: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return NewList(out), nil
}

// Default returns the embedded word list shipped with the binary, so the
// game runs even when nothing is configured.
func Default() (*List, error) {
	ws, err := assets.WordList()
	if err != nil {
		return nil, err
	}
	if len(ws) == 0 {
		return nil, ErrEmptyList
	}
	return NewList(ws), nil
}

// Contains reports whether w is in the list. Matching is exact: no case
// folding or trimming is applied to w.
func (l *List) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Len returns the number of list entries.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in list order.
func (l *List) At(i int) string { return l.words[i] }
