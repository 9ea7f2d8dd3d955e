package session

import (
	"fmt"
	"strings"

	"github.com/robalobadob/mastermind/internal/game"
)

const (
	welcomeText  = "\n~WELCOME TO MASTERMIND. PRESS Q AT ANY TIME TO QUIT~\n\n"
	notInPool    = "Oh come on! The words are right in front of you! Pick one!\n\n"
	gameOverText = "\nGAME OVER\n\n"
	promptReplay = "Play again? y/n "
)

// introText opens the guessing phase: the pool, upper-cased, and how
// feedback works in this mode.
func introText(r *game.Round) string {
	var b strings.Builder
	b.WriteString("~PRESS Q AT ANY TIME TO QUIT~\n\n")
	b.WriteString("Alright! Let's play!\n\n")
	fmt.Fprintf(&b, "Your opponent has selected %d words, and they are:\n\n", r.Pool.Len())
	for _, w := range r.Pool.Words() {
		b.WriteString(strings.ToUpper(w))
		b.WriteString("\n")
	}
	b.WriteString("\nOnly one is the secret password, all the rest are fakes.\n")
	if r.Mode == game.ModeEasy {
		b.WriteString("Each time you make a guess, I'll tell you which letters you got right! Pretty easy, huh?\n\n")
	} else {
		b.WriteString("Each time you make a guess, I'll tell you how many letters you got right (but not which ones)!\n\n")
	}
	return b.String()
}

func guessPrompt(remaining int) string {
	return fmt.Sprintf("Take a guess? (%d remaining)\n", remaining)
}

// feedbackText renders a wrong guess's score for the round's mode.
func feedbackText(mode game.Mode, fb game.Feedback) string {
	if mode == game.ModeEasy {
		return fmt.Sprintf("Not quite, but here's what you got correct: %s\n\n", fb.Mask)
	}
	return fmt.Sprintf("Oh no! That wasn't it! You only got %d/%d letter(s) correct!\n\n", fb.Matches, fb.Length)
}

// winText congratulates the guesser. Spare guesses exclude the winning one.
func winText(res game.Result) string {
	if res.Challenging {
		return fmt.Sprintf("Wow, you're good at this! You beat the Mastermind with %d guess(es) to spare!\n", res.Remaining-1)
	}
	return "Well, you won, but was it really even a challenge? Why don't you try again with fewer guesses allowed.\n"
}

func loseText(res game.Result) string {
	secret := strings.ToUpper(res.Secret)
	if res.Challenging {
		return fmt.Sprintf("The secret password was %s. Better luck next time!\n", secret)
	}
	return fmt.Sprintf("The secret password was %s. How did you lose? Did you forget which words you already guessed?\n", secret)
}
