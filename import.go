// import.go
//
// `mastermind import [-db DSN] [file]` loads a dictionary file (.gz/.zst
// accepted) into a dictionary store. Words already present are skipped, so
// re-running an import is harmless.

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/store"
	"github.com/robalobadob/mastermind/internal/words"
)

func runImport(args []string) int {
	cfg, err := config.LoadImport(args)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid import configuration")
	}
	closeLog, err := setupLogger(cfg.LogLevel, "")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closeLog()

	added, total, err := importWords(context.Background(), cfg.WordsFile, cfg.WordsDB)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.WordsFile).Msg("import failed")
		return 1
	}
	log.Info().Str("file", cfg.WordsFile).Int("read", total).Int("added", added).Msg("import complete")
	fmt.Printf("imported %d new words (%d read)\n", added, total)
	return 0
}

// importWords copies every word in file into the store at dsn and reports how
// many were new and how many were read.
func importWords(ctx context.Context, file, dsn string) (added, total int, err error) {
	x, err := words.Load(file)
	if err != nil {
		return 0, 0, err
	}
	st, err := store.Open(ctx, dsn)
	if err != nil {
		return 0, 0, err
	}
	defer st.Close()

	added, err = st.Import(ctx, x.All())
	if err != nil {
		return 0, x.Len(), err
	}
	return added, x.Len(), nil
}
