package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
)

// BuildAutoPool draws count words of the given length from the source,
// independently and with replacement. Repeated draws collapse into one entry,
// so the pool holds between 1 and count words.
func (b *Builder) BuildAutoPool(ctx context.Context, length, count int) (game.Pool, error) {
	if b.source == nil {
		return game.Pool{}, ErrNoSource
	}
	candidates, err := b.source.Lookup(ctx, length)
	if err != nil {
		return game.Pool{}, fmt.Errorf("lookup words of length %d: %w", length, err)
	}
	if len(candidates) == 0 {
		return game.Pool{}, fmt.Errorf("%w: length %d", ErrInsufficientCandidates, length)
	}

	// Once every distinct candidate is in, further draws can only repeat.
	distinct := distinctFolded(candidates)
	size := min(count, distinct)
	picked := make([]string, 0, size)
	seen := make(map[string]struct{}, size)
	for i := 0; i < count && len(picked) < distinct; i++ {
		w := candidates[b.rng.Intn(len(candidates))]
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		picked = append(picked, w)
	}
	return game.NewPool(picked)
}

func distinctFolded(list []string) int {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[strings.ToLower(w)] = struct{}{}
	}
	return len(set)
}

// SelectAutoSecret picks a pool word uniformly at random.
func (b *Builder) SelectAutoSecret(pool game.Pool) string {
	return pool.At(b.rng.Intn(pool.Len()))
}

// Build runs the whole setter's side of a round for the configured mode.
// In automatic mode a dictionary without words of the requested length sends
// the operator back to the word length question.
func (b *Builder) Build(ctx context.Context) (Setup, error) {
	for {
		cfg, err := b.CollectConfig(ctx)
		if err != nil {
			return Setup{}, err
		}

		if b.manual {
			pool, err := b.BuildManualPool(ctx, cfg.WordLength)
			if err != nil {
				return Setup{}, err
			}
			secret, err := b.SelectManualSecret(ctx, pool)
			if err != nil {
				return Setup{}, err
			}
			return Setup{Config: cfg, Pool: pool, Secret: secret}, nil
		}

		count, err := b.CollectCount(ctx)
		if err != nil {
			return Setup{}, err
		}
		pool, err := b.BuildAutoPool(ctx, cfg.WordLength, count)
		if errors.Is(err, ErrInsufficientCandidates) {
			log.Warn().Int("length", cfg.WordLength).Msg("no dictionary words of requested length")
			b.say("\nSorry, I couldn't find enough words of that length. Let's start over.\n\n")
			continue
		}
		if err != nil {
			return Setup{}, err
		}
		return Setup{Config: cfg, Pool: pool, Secret: b.SelectAutoSecret(pool)}, nil
	}
}
