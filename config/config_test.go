package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"morris/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file values", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
player1: random
player2: random
seed: 42
max-plies: 200
rules:
  starting-pieces: 12
  win-score: 3
  single-capture: true
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", config.LogLevel)
		require.Equal(t, RandomAgent, config.Player1)
		require.Equal(t, uint64(42), config.Seed)
		require.Equal(t, 200, config.MaxPlies)
		require.Equal(t, 1, config.Games, "Defaults fill missing keys")
		require.Equal(t, Rules{StartingPieces: 12, WinScore: 3, SingleCapture: true}, config.Rules)

		rules, err := config.Rules.Build()
		require.NoError(t, err)
		require.Equal(t, 3, rules.WinScore())
		require.Equal(t, 1, rules.Captures(2))
	})

	t.Run("defaults are the standard rules", func(t *testing.T) {
		config, err := Load(writeConfig(t, "seed: 1\n"))

		require.NoError(t, err)
		require.Equal(t, "info", config.LogLevel)
		require.Equal(t, ConsoleAgent, config.Player1)
		require.Equal(t, RandomAgent, config.Player2)

		rules, err := config.Rules.Build()
		require.NoError(t, err)
		require.Equal(t, game.NewStandardRules(), rules)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("MORRIS_WIN_SCORE", "2")
		t.Setenv("MORRIS_PLAYER1", "random")

		config, err := Load(writeConfig(t, "player1: console\n"))

		require.NoError(t, err)
		require.Equal(t, 2, config.Rules.WinScore)
		require.Equal(t, RandomAgent, config.Player1)
	})

	t.Run("environment only", func(t *testing.T) {
		t.Setenv("MORRIS_GAMES", "5")

		config, err := Load("")

		require.NoError(t, err)
		require.Equal(t, 5, config.Games)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "player2: alphazero\n"))
		require.ErrorContains(t, err, "unknown agent")

		_, err = Load(writeConfig(t, "rules:\n  starting-pieces: 2\n"))
		require.ErrorIs(t, err, game.ErrInvalidRules)

		_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})

	t.Run("must load panics", func(t *testing.T) {
		require.Panics(t, func() { MustLoad(writeConfig(t, "player1: nobody\n")) })
	})
}
