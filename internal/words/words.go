// internal/words/words.go
//
// Dictionary loading for automatic pool building.
//
// Responsibilities:
//   - Read one-word-per-line dictionaries from files (plain, .gz, .zst) or the
//     embedded default.
//   - Normalise entries (trim, lowercase) and drop anything that is not a word.
//   - Group words by length so a pool of length L can be sampled quickly.
//
// Dictionary format:
//   • One word per line; surrounding whitespace is ignored.
//   • Blank lines and lines starting with '#' are skipped.
//   • Entries containing anything but letters are skipped.
//   • Duplicates are kept once.

package words

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/mastermind/assets"
)

// Index holds dictionary words grouped by length (in letters).
type Index struct {
	byLength map[int][]string
	total    int
}

// FromList builds an Index from already-loaded words.
// Entries are normalised the same way as lines read from a file.
func FromList(list []string) *Index {
	x := &Index{byLength: make(map[int][]string)}
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		w := Normalize(raw)
		if !isWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		n := utf8.RuneCountInString(w)
		x.byLength[n] = append(x.byLength[n], w)
		x.total++
	}
	return x
}

// Read loads a dictionary from r.
func Read(r io.Reader) (*Index, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return FromList(list), nil
}

// Load reads the dictionary at path. Files ending in .gz or .zst are
// decompressed on the fly.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, closeFn, err := decompress(path, f)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer closeFn()

	x, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}

// Default loads the embedded dictionary.
func Default() (*Index, error) {
	f, err := assets.OpenDictionary()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Lookup returns the words of the given length. An unknown length yields an
// empty slice, not an error.
func (x *Index) Lookup(ctx context.Context, length int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), x.byLength[length]...), nil
}

// Lengths returns the word lengths present, ascending.
func (x *Index) Lengths() []int {
	out := make([]int, 0, len(x.byLength))
	for n := range x.byLength {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Len returns the total number of distinct words.
func (x *Index) Len() int { return x.total }

// All returns every word, shortest first.
func (x *Index) All() []string {
	out := make([]string, 0, x.total)
	for _, n := range x.Lengths() {
		out = append(out, x.byLength[n]...)
	}
	return out
}

// Normalize trims surrounding whitespace and lowercases s. Operator input and
// dictionary entries go through it so comparisons downstream are exact.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isWord reports whether s is a non-empty run of letters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
