// internal/session/session.go
//
// Round driver. Runs rounds back to back until the operator declines a
// replay: the builder sets up a pool and secret, the engine scores guesses,
// and this package turns results into text.
//
// Quit, end of input and context cancellation surface as errors from Run;
// main decides how to exit.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/setup"
	"github.com/robalobadob/mastermind/internal/words"
)

// Console is the operator boundary a session talks through.
type Console interface {
	setup.Prompter
	io.Writer
	Clear()
}

// Session plays rounds over a console.
type Session struct {
	console Console
	builder *setup.Builder
}

// New builds a Session. The builder should write its guidance to the same
// console.
func New(c Console, b *setup.Builder) *Session {
	return &Session{console: c, builder: b}
}

// Run plays rounds until the operator answers "n" to the replay prompt.
func (s *Session) Run(ctx context.Context) error {
	for n := 1; ; n++ {
		s.console.Clear()
		s.say(welcomeText)

		res, err := s.PlayRound(ctx)
		if err != nil {
			return err
		}
		log.Info().
			Int("round", n).
			Str("round_id", res.RoundID).
			Str("outcome", string(res.Outcome)).
			Int("guesses", res.GuessesUsed).
			Msg("round finished")

		again, err := s.askReplay(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// PlayRound sets up one round and plays it to a terminal outcome. On a
// prompter error the partial result is returned with the error.
func (s *Session) PlayRound(ctx context.Context) (game.Result, error) {
	st, err := s.builder.Build(ctx)
	if err != nil {
		return game.Result{}, err
	}
	round, err := st.NewRound()
	if err != nil {
		return game.Result{}, fmt.Errorf("start round: %w", err)
	}
	log.Info().
		Str("round_id", round.ID).
		Int("length", round.Pool.WordLength()).
		Int("pool", round.Pool.Len()).
		Int("budget", round.Budget()).
		Str("mode", round.Mode.String()).
		Bool("challenging", round.Challenging).
		Bool("manual", s.builder.Manual()).
		Msg("round started")

	s.console.Clear()
	s.say(introText(round))

	for !round.Outcome().Terminal() {
		answer, err := s.console.Ask(ctx, guessPrompt(round.Remaining()))
		if err != nil {
			log.Debug().Err(err).Str("round_id", round.ID).Msg("round abandoned")
			return round.Result(), err
		}
		s.say("\n")

		guess := words.Normalize(answer)
		fb, outcome, err := round.ApplyGuess(guess)
		if errors.Is(err, game.ErrNotAPoolMember) {
			s.say(notInPool)
			continue
		}
		if err != nil {
			return round.Result(), err
		}
		log.Debug().
			Str("round_id", round.ID).
			Str("guess", guess).
			Int("matches", fb.Matches).
			Int("remaining", round.Remaining()).
			Str("outcome", string(outcome)).
			Msg("guess evaluated")

		switch outcome {
		case game.OutcomeWon:
			s.say(winText(round.Result()))
		case game.OutcomeLost:
			s.say(feedbackText(round.Mode, fb))
			s.say(loseText(round.Result()))
		default:
			s.say(feedbackText(round.Mode, fb))
		}
	}

	s.say(gameOverText)
	return round.Result(), nil
}

// askReplay asks until the answer is y or n (any case).
func (s *Session) askReplay(ctx context.Context) (bool, error) {
	for {
		answer, err := s.console.Ask(ctx, promptReplay)
		if err != nil {
			return false, err
		}
		switch a := strings.TrimSpace(answer); {
		case strings.EqualFold(a, "y"):
			return true, nil
		case strings.EqualFold(a, "n"):
			return false, nil
		}
	}
}

func (s *Session) say(text string) {
	_, _ = io.WriteString(s.console, text)
}
