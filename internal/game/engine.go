// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Create rounds from a validated pool, a secret and a guess budget.
//   - Reject guesses that are not pool members (no budget cost).
//   - Score guesses by exact letter-position matching.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - Guesses are compared exactly; trimming and case folding happen at the
//     input boundary before ApplyGuess is called.
//   - The win check runs before the budget is decremented, so guessing the
//     secret with one guess left still wins.

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrRoundOver       = errors.New("round is over")
	ErrNotAPoolMember  = errors.New("guess is not in the pool")
	ErrSecretNotInPool = errors.New("secret is not in the pool")
	ErrInvalidBudget   = errors.New("guess budget must be a positive integer")
)

// NewRound starts a round. The secret must be a member of pool and budget
// must be positive; the challenging flag is fixed here for the whole round.
func NewRound(pool Pool, secret string, budget int, mode Mode) (*Round, error) {
	if pool.Len() == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidPool)
	}
	if !pool.Contains(secret) {
		return nil, fmt.Errorf("%w: %q", ErrSecretNotInPool, secret)
	}
	if budget < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBudget, budget)
	}
	return &Round{
		ID:          uuid.NewString(),
		Pool:        pool,
		Secret:      secret,
		Mode:        mode,
		Challenging: budget < pool.Len(),
		budget:      budget,
		remaining:   budget,
		guesses:     []string{},
		outcome:     OutcomeInProgress,
	}, nil
}

// ApplyGuess evaluates guess and advances the round.
// Returns: the feedback, the outcome after this guess, or an error.
//
// Validation rules:
//   - Round must not be finished (ErrRoundOver).
//   - Guess must be a pool member (ErrNotAPoolMember); nothing changes.
//
// State transitions:
//   - guess == secret → won; remaining is untouched.
//   - otherwise remaining decreases by one; reaching zero → lost.
func (r *Round) ApplyGuess(guess string) (Feedback, Outcome, error) {
	if r.outcome.Terminal() {
		return Feedback{}, r.outcome, ErrRoundOver
	}
	if !r.Pool.Contains(guess) {
		return Feedback{}, r.outcome, fmt.Errorf("%w: %q", ErrNotAPoolMember, guess)
	}

	fb := Score(guess, r.Secret)
	r.guesses = append(r.guesses, guess)

	if guess == r.Secret {
		r.outcome = OutcomeWon
		return fb, r.outcome, nil
	}

	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.outcome = OutcomeLost
	}
	return fb, r.outcome, nil
}

// Outcome reports the current state of the round.
func (r *Round) Outcome() Outcome { return r.outcome }

// Budget returns the guesses allowed at round start.
func (r *Round) Budget() int { return r.budget }

// Remaining returns the guesses left.
func (r *Round) Remaining() int { return r.remaining }

// Guesses returns a copy of the accepted guesses, in order.
func (r *Round) Guesses() []string { return append([]string(nil), r.guesses...) }

// Result returns a summary of the round as it stands.
func (r *Round) Result() Result {
	return Result{
		RoundID:     r.ID,
		Secret:      r.Secret,
		Outcome:     r.outcome,
		GuessesUsed: len(r.guesses),
		Remaining:   r.remaining,
		Challenging: r.Challenging,
	}
}
