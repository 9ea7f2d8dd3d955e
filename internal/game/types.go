// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Mode: feedback granularity (count-only or position-revealing).
//   - Outcome: coarse round state (in_progress/won/lost).
//   - Feedback: the result of scoring one guess against the secret.
//   - Round: state for a single round, owned by the engine.
//   - Result: frozen summary handed back to the driver once a round ends.

package game

// Mode selects how much a wrong guess reveals.
type Mode int

const (
	// ModeNormal reports only how many positions matched.
	ModeNormal Mode = iota
	// ModeEasy reveals which positions matched.
	ModeEasy
)

func (m Mode) String() string {
	if m == ModeEasy {
		return "easy"
	}
	return "normal"
}

// Outcome is the state of a round.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Placeholder masks positions that did not match in easy-mode feedback.
const Placeholder = '_'

// Feedback is the evaluation of one guess.
type Feedback struct {
	Matches int    // positions where guess and secret hold the same letter
	Length  int    // word length the feedback covers
	Mask    string // secret letter at matching positions, Placeholder elsewhere
}

// Round holds the state of a single round. The identifying fields are
// exported for the driver to read; budget, remaining guesses and history
// change only through ApplyGuess and are read through accessors.
type Round struct {
	ID          string // Unique round identifier (uuid), used in logs.
	Pool        Pool   // Candidate words, fixed for the round.
	Secret      string // The word to find; always a member of Pool.
	Mode        Mode   // Feedback granularity.
	Challenging bool   // Budget < pool size at round start.

	budget    int      // guesses allowed at round start
	remaining int      // guesses left; only decreases
	guesses   []string // accepted (in-pool) guesses, in order
	outcome   Outcome
}

// Result summarises a finished (or abandoned) round.
type Result struct {
	RoundID     string
	Secret      string
	Outcome     Outcome
	GuessesUsed int
	Remaining   int
	Challenging bool
}
