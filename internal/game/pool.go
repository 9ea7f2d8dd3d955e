package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidPool is returned when a word list breaks the pool invariant.
var ErrInvalidPool = errors.New("invalid word pool")

// Pool is an immutable, ordered set of distinct words of one length.
// The zero value is an empty pool and is rejected by NewRound.
type Pool struct {
	words  []string
	set    map[string]struct{}
	length int
}

// NewPool validates words and builds a Pool from them.
// Words must be non-empty, all the same length (in runes) and distinct
// ignoring case. Order is preserved.
func NewPool(words []string) (Pool, error) {
	if len(words) == 0 {
		return Pool{}, fmt.Errorf("%w: no words", ErrInvalidPool)
	}
	length := utf8.RuneCountInString(words[0])
	if length == 0 {
		return Pool{}, fmt.Errorf("%w: empty word", ErrInvalidPool)
	}

	set := make(map[string]struct{}, len(words))
	folded := make(map[string]struct{}, len(words))
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n != length {
			return Pool{}, fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidPool, w, n, length)
		}
		key := strings.ToLower(w)
		if _, dup := folded[key]; dup {
			return Pool{}, fmt.Errorf("%w: duplicate word %q", ErrInvalidPool, w)
		}
		folded[key] = struct{}{}
		set[w] = struct{}{}
	}

	return Pool{
		words:  append([]string(nil), words...),
		set:    set,
		length: length,
	}, nil
}

// Len returns the number of words in the pool.
func (p Pool) Len() int { return len(p.words) }

// WordLength returns the length, in letters, shared by every word.
func (p Pool) WordLength() int { return p.length }

// At returns the i-th word.
func (p Pool) At(i int) string { return p.words[i] }

// Words returns a copy of the words in order.
func (p Pool) Words() []string { return append([]string(nil), p.words...) }

// Contains reports exact (case-sensitive) membership.
func (p Pool) Contains(w string) bool {
	_, ok := p.set[w]
	return ok
}
