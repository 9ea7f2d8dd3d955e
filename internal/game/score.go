package game

// Score compares guess against secret position by position.
//
// Matches counts positions i where guess[i] == secret[i]; letters that are
// present elsewhere in the secret earn nothing. Mask carries secret[i] at
// matching positions and Placeholder everywhere else, so it never reveals a
// letter the guess did not already have in place.
//
// Both words are expected to have the same length (pool members always do).
func Score(guess, secret string) Feedback {
	g, s := []rune(guess), []rune(secret)
	mask := make([]rune, len(s))
	matches := 0
	for i := range s {
		if i < len(g) && g[i] == s[i] {
			mask[i] = s[i]
			matches++
		} else {
			mask[i] = Placeholder
		}
	}
	return Feedback{Matches: matches, Length: len(s), Mask: string(mask)}
}
