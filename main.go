// main.go
//
// Entry point for the Mastermind console game.
// Responsibilities:
//   - Resolve configuration (.env, environment, flags).
//   - Configure zerolog.
//   - Pick the dictionary for automatic pools: store, file, or the embedded list.
//   - Seed the random source (daily seed with --daily).
//   - Run the session until the operator stops, quits, or input ends.
//
// `mastermind import` loads a dictionary file into a store; see import.go.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/session"
	"github.com/robalobadob/mastermind/internal/setup"
	"github.com/robalobadob/mastermind/internal/store"
	"github.com/robalobadob/mastermind/internal/words"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "import" {
		os.Exit(runImport(os.Args[2:]))
	}
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	closeLog, err := setupLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []setup.Option{setup.WithManual(cfg.Manual), setup.WithRand(newRand(cfg))}
	if cfg.Easy {
		opts = append(opts, setup.WithMode(game.ModeEasy))
	}
	if !cfg.Manual {
		src, closeSrc, err := openSource(ctx, cfg)
		if err != nil {
			log.Error().Err(err).Msg("failed to load dictionary")
			return 1
		}
		defer closeSrc()
		opts = append(opts, setup.WithSource(src))
	}

	con := console.NewStd()
	defer con.Close()
	err = session.New(con, setup.New(con, con, opts...)).Run(ctx)
	switch {
	case err == nil,
		errors.Is(err, console.ErrQuit),
		errors.Is(err, console.ErrInputClosed),
		errors.Is(err, context.Canceled):
		con.Clear()
		log.Info().Err(err).Msg("session ended")
		return 0
	default:
		log.Error().Err(err).Msg("session failed")
		return 1
	}
}

// openSource resolves the dictionary: WORDS_DB, then WORDS_FILE, then the
// embedded list.
func openSource(ctx context.Context, cfg config.Config) (setup.Source, func(), error) {
	switch {
	case cfg.WordsDB != "":
		st, err := store.Open(ctx, cfg.WordsDB)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("using dictionary store")
		return st, func() { _ = st.Close() }, nil
	case cfg.WordsFile != "":
		x, err := words.Load(cfg.WordsFile)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("file", cfg.WordsFile).Int("words", x.Len()).Msg("using dictionary file")
		return x, func() {}, nil
	default:
		x, err := words.Default()
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Int("words", x.Len()).Ints("lengths", x.Lengths()).Msg("using embedded dictionary")
		return x, func() {}, nil
	}
}

func newRand(cfg config.Config) *rand.Rand {
	now := time.Now()
	seed := uint64(now.UnixNano())
	if cfg.Daily {
		seed = daily.Seed(now, cfg.DailySalt)
		log.Info().Str("date", daily.DateKey(now)).Msg("daily pools")
	}
	return rand.New(rand.NewSource(seed))
}
