package setup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
)

const (
	promptLength = "How long would you like the words to be? "
	promptBudget = "How many guesses should the player get? "
	promptCount  = "How many random words should I pick? "
)

// ParseConfig validates the operator's answers for word length and budget.
func ParseConfig(length, budget string, mode game.Mode) (Config, error) {
	l, err := parsePositive(length)
	if err != nil {
		return Config{}, fmt.Errorf("word length: %w", err)
	}
	g, err := parsePositive(budget)
	if err != nil {
		return Config{}, fmt.Errorf("guess budget: %w", err)
	}
	return Config{WordLength: l, GuessBudget: g, Mode: mode}, nil
}

// parsePositive accepts a base-10 integer ≥ 1, ignoring surrounding spaces.
func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidConfig, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidConfig, n)
	}
	return n, nil
}

// CollectConfig asks for word length and guess budget until both are
// positive integers. Both questions are asked again after a bad answer.
func (b *Builder) CollectConfig(ctx context.Context) (Config, error) {
	for {
		length, err := b.prompt.Ask(ctx, promptLength)
		if err != nil {
			return Config{}, err
		}
		budget, err := b.prompt.Ask(ctx, promptBudget)
		if err != nil {
			return Config{}, err
		}

		cfg, err := ParseConfig(length, budget, b.mode)
		if err == nil {
			return cfg, nil
		}
		log.Debug().Err(err).Msg("rejected round config")
		b.say("\nWord length and number of guesses must be positive integers. Please re-enter.\n\n")
	}
}

// CollectCount asks how many words to draw in automatic mode.
func (b *Builder) CollectCount(ctx context.Context) (int, error) {
	for {
		answer, err := b.prompt.Ask(ctx, promptCount)
		if err != nil {
			return 0, err
		}
		n, err := parsePositive(answer)
		if err == nil {
			return n, nil
		}
		log.Debug().Err(err).Msg("rejected word count")
		b.say("Number of words must be a positive integer. Please re-enter.\n\n")
	}
}
