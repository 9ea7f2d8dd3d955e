package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		guess   string
		secret  string
		matches int
		mask    string
	}{
		{name: "no positions match", guess: "mango", secret: "apple", matches: 0, mask: "_____"},
		{name: "identical words", guess: "apple", secret: "apple", matches: 5, mask: "apple"},
		{name: "shared suffix", guess: "grape", secret: "apple", matches: 1, mask: "____e"},
		{name: "displaced letters earn nothing", guess: "elppa", secret: "apple", matches: 1, mask: "__p__"},
		{name: "repeated letters count per position", guess: "lolly", secret: "holly", matches: 4, mask: "_olly"},
		{name: "single letter", guess: "a", secret: "b", matches: 0, mask: "_"},
		{name: "multibyte letters", guess: "café", secret: "cafe", matches: 3, mask: "caf_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := Score(tt.guess, tt.secret)
			require.Equal(t, tt.matches, fb.Matches)
			require.Equal(t, tt.mask, fb.Mask)
			require.Equal(t, len([]rune(tt.secret)), fb.Length)
		})
	}
}

func TestScoreMaskAgreesWithCount(t *testing.T) {
	words := []string{"crane", "crate", "trace", "caret", "react", "cater"}
	for _, secret := range words {
		for _, guess := range words {
			fb := Score(guess, secret)
			require.Len(t, []rune(fb.Mask), fb.Length)
			require.GreaterOrEqual(t, fb.Matches, 0)
			require.LessOrEqual(t, fb.Matches, fb.Length)

			revealed := 0
			for i, c := range fb.Mask {
				if c == Placeholder {
					require.NotEqual(t, guess[i], secret[i])
					continue
				}
				require.Equal(t, rune(secret[i]), c)
				require.Equal(t, guess[i], secret[i])
				revealed++
			}
			require.Equal(t, fb.Matches, revealed, "guess=%s secret=%s", guess, secret)
		}
	}
}
