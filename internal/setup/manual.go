package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/words"
)

const (
	promptWord   = "New word (ENTER to finish): "
	promptSecret = "Which word is the secret password? "
)

// ManualPool accumulates setter-typed words for one pool.
type ManualPool struct {
	length int
	words  []string
	seen   map[string]struct{}
}

// NewManualPool starts an empty pool of words with the given length.
func NewManualPool(length int) *ManualPool {
	return &ManualPool{length: length, seen: make(map[string]struct{})}
}

// Add normalises word and appends it. A wrong length or a case-insensitive
// duplicate is rejected with ErrInvalidCandidate and leaves the pool as is.
func (m *ManualPool) Add(word string) error {
	w := words.Normalize(word)
	if n := utf8.RuneCountInString(w); n != m.length {
		return fmt.Errorf("%w: %w: %q has %d letters, want %d", ErrInvalidCandidate, ErrWrongLength, w, n, m.length)
	}
	key := strings.ToLower(w)
	if _, dup := m.seen[key]; dup {
		return fmt.Errorf("%w: %w: %q", ErrInvalidCandidate, ErrDuplicateWord, w)
	}
	m.seen[key] = struct{}{}
	m.words = append(m.words, w)
	return nil
}

// Len returns the number of accepted words.
func (m *ManualPool) Len() int { return len(m.words) }

// Pool freezes the accepted words into a game.Pool.
func (m *ManualPool) Pool() (game.Pool, error) { return game.NewPool(m.words) }

// BuildManualPool reads words until an empty answer. An empty answer before
// the first accepted word is refused.
func (b *Builder) BuildManualPool(ctx context.Context, length int) (game.Pool, error) {
	b.say("\nEnter words to guess from one at a time.\n" +
		"Words should be the same length.\n" +
		"Press ENTER without entering a new word when you're done.\n\n")

	mp := NewManualPool(length)
	for {
		answer, err := b.prompt.Ask(ctx, promptWord)
		if err != nil {
			return game.Pool{}, err
		}

		if words.Normalize(answer) == "" {
			if mp.Len() > 0 {
				b.say("\n")
				return mp.Pool()
			}
			b.say("You can't play without picking some words first. Please re-enter.\n\n")
			continue
		}

		err = mp.Add(answer)
		switch {
		case err == nil:
		case errors.Is(err, ErrDuplicateWord):
			b.say("Why don't you try picking a new word instead?\n")
		case errors.Is(err, ErrWrongLength):
			b.say("Words must be %d characters long. Please re-enter.\n\n", length)
		default:
			return game.Pool{}, err
		}
	}
}

// SelectManualSecret asks until the answer is exactly one of the pool words.
func (b *Builder) SelectManualSecret(ctx context.Context, pool game.Pool) (string, error) {
	for {
		answer, err := b.prompt.Ask(ctx, promptSecret)
		if err != nil {
			return "", err
		}
		if secret := strings.TrimSpace(answer); pool.Contains(secret) {
			return secret, nil
		}
		b.say("Please select one of the words to be the secret password.\n\n")
	}
}
