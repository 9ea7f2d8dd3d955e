// internal/config/config.go
//
// Process configuration. Values come from (lowest to highest precedence):
// built-in defaults, a .env file in the working directory, the environment,
// and command-line flags.
//
// Environment variables:
//   MASTERMIND_MANUAL=true      setter types the pool
//   MASTERMIND_EASY=true        reveal matching positions
//   MASTERMIND_DAILY=true       seed automatic pools from today's date
//   WORDS_FILE=/path/words.txt  dictionary file (.gz/.zst accepted)
//   WORDS_DB=./data/words.db    dictionary store (sqlite path or postgres:// DSN)
//   DAILY_SALT=...              key for daily seeds
//   LOG_LEVEL=warn              zerolog level
//   LOG_FILE=/path/game.log     JSON logs go here instead of stderr

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	defaultLogLevel  = "warn"
	defaultDailySalt = "local_dev_salt"
)

// Config is resolved once at process start.
type Config struct {
	Manual    bool
	Easy      bool
	Daily     bool
	WordsFile string
	WordsDB   string
	DailySalt string
	LogLevel  zerolog.Level
	LogFile   string
}

// ImportConfig configures the `import` subcommand.
type ImportConfig struct {
	WordsFile string
	WordsDB   string
	LogLevel  zerolog.Level
}

// Load resolves the game configuration from .env, the environment and args
// (without the program name).
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	manual, err := envBool("MASTERMIND_MANUAL")
	if err != nil {
		return Config{}, err
	}
	easy, err := envBool("MASTERMIND_EASY")
	if err != nil {
		return Config{}, err
	}
	daily, err := envBool("MASTERMIND_DAILY")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{DailySalt: getEnv("DAILY_SALT", defaultDailySalt)}
	var level string

	fs := flag.NewFlagSet("mastermind", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cfg.Manual, "manual", manual, "type the word pool and secret by hand (two players)")
	fs.BoolVar(&cfg.Easy, "easy", easy, "show which letters were right, not just how many")
	fs.BoolVar(&cfg.Daily, "daily", daily, "same random pools for everyone today")
	fs.StringVar(&cfg.WordsFile, "words", os.Getenv("WORDS_FILE"), "dictionary file, one word per line")
	fs.StringVar(&cfg.WordsDB, "db", os.Getenv("WORDS_DB"), "dictionary store: sqlite path or postgres:// DSN")
	fs.StringVar(&level, "log-level", getEnv("LOG_LEVEL", defaultLogLevel), "log level")
	fs.StringVar(&cfg.LogFile, "log-file", os.Getenv("LOG_FILE"), "write JSON logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg.LogLevel, err = parseLevel(level)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadImport resolves the import subcommand's configuration. The dictionary
// file may be given as the single positional argument.
func LoadImport(args []string) (ImportConfig, error) {
	_ = godotenv.Load()

	var cfg ImportConfig
	var level string

	fs := flag.NewFlagSet("mastermind import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.WordsDB, "db", os.Getenv("WORDS_DB"), "dictionary store: sqlite path or postgres:// DSN")
	fs.StringVar(&level, "log-level", getEnv("LOG_LEVEL", "info"), "log level")
	if err := fs.Parse(args); err != nil {
		return ImportConfig{}, fmt.Errorf("parse flags: %w", err)
	}

	switch fs.NArg() {
	case 0:
		cfg.WordsFile = os.Getenv("WORDS_FILE")
	case 1:
		cfg.WordsFile = fs.Arg(0)
	default:
		return ImportConfig{}, fmt.Errorf("expected one dictionary file, got %d", fs.NArg())
	}
	if cfg.WordsFile == "" {
		return ImportConfig{}, errors.New("no dictionary file given")
	}
	if cfg.WordsDB == "" {
		return ImportConfig{}, errors.New("no dictionary store given (-db or WORDS_DB)")
	}

	var err error
	cfg.LogLevel, err = parseLevel(level)
	if err != nil {
		return ImportConfig{}, err
	}
	return cfg, nil
}

func parseLevel(s string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

func envBool(k string) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
