package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"morris/config"
	"morris/engine"
	"morris/game"
	"morris/metrics"
	"morris/perft"
	"morris/player"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	initLogger(conf)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rules, err := conf.Rules.Build()
	if err != nil {
		panic(err)
	}

	if conf.PerftDepth > 0 {
		runPerft(ctx, conf, rules)
		return
	}
	if err := runGames(ctx, conf, rules); err != nil {
		log.Error().Err(err).Msg("game aborted")
		os.Exit(1)
	}
}

// initConfig reads MORRIS_CONFIG, else ./config.yml, else the environment only.
func initConfig() *config.Config {
	path := os.Getenv("MORRIS_CONFIG")
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, "config.yml")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	return config.MustLoad(path)
}

func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// Both seats share one console so that buffered stdin is read once.
var console = player.NewConsole(os.Stdin, os.Stdout)

func newAgent(kind string, seed uint64) engine.Agent {
	if kind == config.ConsoleAgent {
		return console
	}
	return player.NewRandom(seed)
}

func runPerft(ctx context.Context, conf *config.Config, rules game.Rules) {
	p := perft.New(perft.WithGoroutines(conf.Goroutines))
	state := game.NewGameState(rules)
	for depth := 1; depth <= conf.PerftDepth; depth++ {
		leaves, err := p.Count(ctx, state, depth)
		if err != nil {
			log.Error().Err(err).Msgf("perft stopped at depth %d", depth)
			return
		}
		fmt.Printf("perft(%d) = %d\n", depth, leaves)
	}
}

func runGames(ctx context.Context, conf *config.Config, rules game.Rules) error {
	var writer *metrics.Writer
	if conf.RecordDir != "" {
		w, err := metrics.NewWriter(conf.RecordDir)
		if err != nil {
			return err
		}
		writer = w
		log.Info().Msgf("recording games to %s", w.Dir())
	}

	wins := [3]int{}
	for i := 0; i < conf.Games; i++ {
		// a zero seed stays zero so that both agents draw from the clock
		var seed1, seed2 uint64
		if conf.Seed != 0 {
			seed1 = conf.Seed + uint64(2*i)
			seed2 = seed1 + 1
		}

		e := engine.NewLocal(rules,
			newAgent(conf.Player1, seed1),
			newAgent(conf.Player2, seed2),
			engine.WithMaxPlies(conf.MaxPlies),
			engine.WithRetries(conf.Retries),
			engine.WithMetrics(),
		)
		result, err := e.Run(ctx)
		if err != nil {
			return err
		}
		wins[result.Winner]++
		fmt.Printf("%v\nGame %d over! Winner: %d\n", result.State.Board(), i+1, result.Winner)

		if writer != nil {
			if err := record(writer, result); err != nil {
				return err
			}
		}
	}

	log.Info().Msgf("player 1 won %d, player 2 won %d, %d cut off", wins[1], wins[2], wins[0])
	return nil
}

func record(w *metrics.Writer, result engine.Result) error {
	if err := w.WriteGameRecords([]metrics.GameMetric{result.Game}); err != nil {
		return err
	}
	plies := make([]metrics.PlyRecord, len(result.Plies))
	for i, ply := range result.Plies {
		plies[i] = metrics.PlyRecord{Game: result.Game.ID, PlyMetric: ply}
	}
	return w.WritePlyRecords(plies)
}
