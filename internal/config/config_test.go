package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MASTERMIND_MANUAL", "MASTERMIND_EASY", "MASTERMIND_DAILY",
		"WORDS_FILE", "WORDS_DB", "DAILY_SALT", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.False(t, cfg.Manual)
	require.False(t, cfg.Easy)
	require.False(t, cfg.Daily)
	require.Empty(t, cfg.WordsFile)
	require.Empty(t, cfg.WordsDB)
	require.Equal(t, defaultDailySalt, cfg.DailySalt)
	require.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
}

func TestLoadFlags(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"--manual", "--easy", "--words", "dict.txt.gz", "--log-level", "debug"})
	require.NoError(t, err)
	require.True(t, cfg.Manual)
	require.True(t, cfg.Easy)
	require.Equal(t, "dict.txt.gz", cfg.WordsFile)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MASTERMIND_EASY", "true")
	t.Setenv("MASTERMIND_DAILY", "1")
	t.Setenv("WORDS_DB", "./data/words.db")
	t.Setenv("DAILY_SALT", "pepper")
	t.Setenv("LOG_FILE", "game.log")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.True(t, cfg.Easy)
	require.True(t, cfg.Daily)
	require.Equal(t, "./data/words.db", cfg.WordsDB)
	require.Equal(t, "pepper", cfg.DailySalt)
	require.Equal(t, "game.log", cfg.LogFile)

	t.Run("flags override env", func(t *testing.T) {
		cfg, err := Load([]string{"--easy=false", "--db", "other.db"})
		require.NoError(t, err)
		require.False(t, cfg.Easy)
		require.Equal(t, "other.db", cfg.WordsDB)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad bool env", env: map[string]string{"MASTERMIND_MANUAL": "sometimes"}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
		{name: "unknown flag", args: []string{"--hard"}},
		{name: "stray argument", args: []string{"play"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			require.Error(t, err)
		})
	}
}

func TestLoadImport(t *testing.T) {
	t.Run("positional file and db flag", func(t *testing.T) {
		clearEnv(t)
		cfg, err := LoadImport([]string{"-db", "words.db", "dict.txt"})
		require.NoError(t, err)
		require.Equal(t, "dict.txt", cfg.WordsFile)
		require.Equal(t, "words.db", cfg.WordsDB)
		require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	})

	t.Run("env fallback", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WORDS_FILE", "env.txt")
		t.Setenv("WORDS_DB", "postgres://localhost/words")
		cfg, err := LoadImport(nil)
		require.NoError(t, err)
		require.Equal(t, "env.txt", cfg.WordsFile)
		require.Equal(t, "postgres://localhost/words", cfg.WordsDB)
	})

	t.Run("missing store", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadImport([]string{"dict.txt"})
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadImport([]string{"-db", "words.db"})
		require.Error(t, err)
	})

	t.Run("too many files", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadImport([]string{"-db", "words.db", "a.txt", "b.txt"})
		require.Error(t, err)
	})
}
