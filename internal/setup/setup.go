// internal/setup/setup.go
//
// Word pool construction for one round.
// Responsibilities:
//   - Collect the round config (word length, guess budget), retrying until valid.
//   - Manual mode: let a setter type the pool and pick the secret.
//   - Automatic mode: sample the pool from a dictionary and pick the secret at
//     random; restart config collection when the dictionary has no words of
//     the requested length.
//
// Notes:
//   - Prompter errors (quit, end of input, cancelled context) are returned
//     untouched; every other problem is reported on the output and re-asked.
//   - Automatic sampling draws `count` words with replacement; repeats
//     collapse, so the pool may end up smaller than `count`.

package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/rand"

	"github.com/robalobadob/mastermind/internal/game"
)

var (
	ErrInvalidConfig          = errors.New("invalid round config")
	ErrInvalidCandidate       = errors.New("invalid candidate word")
	ErrWrongLength            = errors.New("wrong word length")
	ErrDuplicateWord          = errors.New("word already in pool")
	ErrInsufficientCandidates = errors.New("no dictionary words of that length")
	ErrNoSource               = errors.New("no word source configured")
)

// Prompter asks the operator a question and returns the raw answer.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Source looks up dictionary words by length.
type Source interface {
	Lookup(ctx context.Context, length int) ([]string, error)
}

// Rand is the random capability used for sampling.
type Rand interface {
	Intn(n int) int
}

// Config is the immutable per-round configuration.
type Config struct {
	WordLength  int
	GuessBudget int
	Mode        game.Mode
}

// Setup is what a builder hands to the engine: the config, a validated pool
// and a secret from that pool.
type Setup struct {
	Config Config
	Pool   game.Pool
	Secret string
}

// NewRound starts a round from the setup.
func (s Setup) NewRound() (*game.Round, error) {
	return game.NewRound(s.Pool, s.Secret, s.Config.GuessBudget, s.Config.Mode)
}

// Option configures a Builder.
type Option func(b *Builder)

// WithManual switches between setter-typed pools (true) and sampled pools.
func WithManual(manual bool) Option {
	return func(b *Builder) {
		b.manual = manual
	}
}

// WithMode sets the feedback mode recorded in every Config.
func WithMode(mode game.Mode) Option {
	return func(b *Builder) {
		b.mode = mode
	}
}

// WithSource sets the dictionary used in automatic mode.
func WithSource(source Source) Option {
	return func(b *Builder) {
		if source != nil {
			b.source = source
		}
	}
}

// WithRand replaces the random source, e.g. with a daily-seeded one.
func WithRand(rng Rand) Option {
	return func(b *Builder) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// Builder runs the setter's side of a round.
type Builder struct {
	prompt Prompter
	out    io.Writer
	source Source
	rng    Rand
	manual bool
	mode   game.Mode
}

// New builds a Builder that asks questions through p and writes guidance to
// out. Without WithRand it draws from a clock-seeded source.
func New(p Prompter, out io.Writer, options ...Option) *Builder {
	b := &Builder{ // Default values
		prompt: p,
		out:    out,
		rng:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		mode:   game.ModeNormal,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Manual reports whether the builder runs in manual mode.
func (b *Builder) Manual() bool { return b.manual }

func (b *Builder) say(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}
