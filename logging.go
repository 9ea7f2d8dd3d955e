package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogger points the global logger at stderr (human-readable) or, when
// file is set, at a JSON log file. Logs never go to stdout, which belongs to
// the game.
func setupLogger(level zerolog.Level, file string) (func(), error) {
	zerolog.SetGlobalLevel(level)

	if file == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        colorable.NewColorableStderr(),
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
			TimeFormat: time.Kitchen,
		})
		return func() {}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}
