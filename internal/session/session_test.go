package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/setup"
	"github.com/robalobadob/mastermind/internal/words"
)

// seq returns a fixed cycle of values, reduced modulo n.
type seq struct {
	vals []int
	i    int
}

func (s *seq) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func input(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// play runs a whole session over a scripted console and returns the transcript.
func play(t *testing.T, in string, opts ...setup.Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	con := console.New(strings.NewReader(in), &out)
	err := New(con, setup.New(con, con, opts...)).Run(context.Background())
	return out.String(), err
}

// manual pool of apple, grape and mango with apple as the secret.
func manualRound(budget string, guesses ...string) []string {
	return append([]string{"5", budget, "apple", "grape", "mango", "", "apple"}, guesses...)
}

func TestRunNormalModeUnchallengedWin(t *testing.T) {
	in := input(append(manualRound("3", "lemon", "MANGO", "apple"), "maybe", "n")...)
	out, err := play(t, in, setup.WithManual(true))
	require.NoError(t, err)

	require.Contains(t, out, "WELCOME TO MASTERMIND")
	require.Contains(t, out, "APPLE\nGRAPE\nMANGO\n")
	require.Contains(t, out, "how many letters you got right")
	require.Contains(t, out, notInPool)
	require.Equal(t, 2, strings.Count(out, guessPrompt(3)), "a word outside the pool costs nothing")
	require.Contains(t, out, "You only got 0/5 letter(s) correct!")
	require.Contains(t, out, guessPrompt(2))
	require.Contains(t, out, "was it really even a challenge?")
	require.Equal(t, 1, strings.Count(out, "GAME OVER"))
	require.Equal(t, 2, strings.Count(out, promptReplay), "unrecognised replay answers are asked again")
}

func TestRunEasyModeChallengingLoss(t *testing.T) {
	in := input(append(manualRound("1", "grape"), "N")...)
	out, err := play(t, in, setup.WithManual(true), setup.WithMode(game.ModeEasy))
	require.NoError(t, err)

	require.Contains(t, out, "which letters you got right")
	require.Contains(t, out, "here's what you got correct: ____e")
	require.Contains(t, out, "The secret password was APPLE. Better luck next time!")
	require.NotContains(t, out, guessPrompt(0))
	require.Contains(t, out, "GAME OVER")
}

func TestRunChallengingWin(t *testing.T) {
	in := input(append(manualRound("1", "apple"), "n")...)
	out, err := play(t, in, setup.WithManual(true))
	require.NoError(t, err)
	require.Contains(t, out, "You beat the Mastermind with 0 guess(es) to spare!")
	require.NotContains(t, out, "That wasn't it")
}

func TestRunNonChallengingLoss(t *testing.T) {
	in := input("5", "2", "apple", "grape", "", "apple", "grape", "grape", "n")
	out, err := play(t, in, setup.WithManual(true))
	require.NoError(t, err)

	require.Contains(t, out, guessPrompt(2))
	require.Contains(t, out, guessPrompt(1))
	require.Equal(t, 2, strings.Count(out, "That wasn't it!"))
	require.Contains(t, out, "The secret password was APPLE. How did you lose?")
}

func TestRunReplay(t *testing.T) {
	first := manualRound("3", "apple")
	second := manualRound("1", "mango")
	in := input(append(append(append(first, "y"), second...), "n")...)

	out, err := play(t, in, setup.WithManual(true))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "GAME OVER"))
	require.Equal(t, 2, strings.Count(out, "WELCOME TO MASTERMIND"))
	require.Contains(t, out, "was it really even a challenge?")
	require.Contains(t, out, "Better luck next time!")
}

func TestRunAutomatic(t *testing.T) {
	in := input("5", "2", "3", "grape", "n")
	out, err := play(t, in,
		setup.WithSource(words.FromList([]string{"apple", "grape", "mango"})),
		setup.WithRand(&seq{vals: []int{0, 1, 2, 1}}),
	)
	require.NoError(t, err)
	require.Contains(t, out, "APPLE\nGRAPE\nMANGO\n")
	require.Contains(t, out, "You beat the Mastermind with 1 guess(es) to spare!")
}

func TestRunStops(t *testing.T) {
	t.Run("quit during setup", func(t *testing.T) {
		_, err := play(t, input("5", "Q"), setup.WithManual(true))
		require.ErrorIs(t, err, console.ErrQuit)
	})

	t.Run("quit mid round", func(t *testing.T) {
		out, err := play(t, input(manualRound("3", "grape", " q ")...), setup.WithManual(true))
		require.ErrorIs(t, err, console.ErrQuit)
		require.NotContains(t, out, "GAME OVER")
	})

	t.Run("quit at replay", func(t *testing.T) {
		_, err := play(t, input(manualRound("3", "apple", "q")...), setup.WithManual(true))
		require.ErrorIs(t, err, console.ErrQuit)
	})

	t.Run("input closed", func(t *testing.T) {
		_, err := play(t, input(manualRound("3", "grape")...), setup.WithManual(true))
		require.ErrorIs(t, err, console.ErrInputClosed)
	})
}

func TestPlayRoundResult(t *testing.T) {
	var out bytes.Buffer
	con := console.New(strings.NewReader(input(manualRound("4", "plums", "grape", "mango", "apple")...)), &out)
	s := New(con, setup.New(con, con, setup.WithManual(true)))

	res, err := s.PlayRound(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.OutcomeWon, res.Outcome)
	require.Equal(t, "apple", res.Secret)
	require.Equal(t, 3, res.GuessesUsed)
	require.Equal(t, 2, res.Remaining)
	require.False(t, res.Challenging)
	require.NotEmpty(t, res.RoundID)
	require.Equal(t, 1, strings.Count(out.String(), notInPool))
}

func TestFeedbackText(t *testing.T) {
	fb := game.Score("holly", "lolly")
	require.Equal(t, "Oh no! That wasn't it! You only got 4/5 letter(s) correct!\n\n", feedbackText(game.ModeNormal, fb))
	require.Equal(t, "Not quite, but here's what you got correct: _olly\n\n", feedbackText(game.ModeEasy, fb))
}
