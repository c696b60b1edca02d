package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"morris/game"
)

const (
	ConsoleAgent = "console"
	RandomAgent  = "random"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"MORRIS_LOG_LEVEL" env-default:"info"`
	Rules      Rules  `yaml:"rules"`
	Player1    string `yaml:"player1" env:"MORRIS_PLAYER1" env-default:"console"`
	Player2    string `yaml:"player2" env:"MORRIS_PLAYER2" env-default:"random"`
	Seed       uint64 `yaml:"seed" env:"MORRIS_SEED" env-default:"0"`
	Games      int    `yaml:"games" env:"MORRIS_GAMES" env-default:"1"`
	MaxPlies   int    `yaml:"max-plies" env:"MORRIS_MAX_PLIES" env-default:"1000"`
	Retries    int    `yaml:"retries" env:"MORRIS_RETRIES" env-default:"0"`
	RecordDir  string `yaml:"record-dir" env:"MORRIS_RECORD_DIR"`
	PerftDepth int    `yaml:"perft-depth" env:"MORRIS_PERFT_DEPTH" env-default:"0"`
	Goroutines int    `yaml:"goroutines" env:"MORRIS_GOROUTINES" env-default:"4"`
}

// Rules are the house rules; the defaults are the standard game. Zero values
// in the file fall back to the defaults, hence the negated capture flag.
type Rules struct {
	StartingPieces int  `yaml:"starting-pieces" env:"MORRIS_STARTING_PIECES" env-default:"9"`
	WinScore       int  `yaml:"win-score" env:"MORRIS_WIN_SCORE" env-default:"7"`
	SingleCapture  bool `yaml:"single-capture" env:"MORRIS_SINGLE_CAPTURE"` // One capture per ply even after a double mill
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Load reads the yaml file at path, or only the environment when path is
// empty, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	for _, agent := range []string{c.Player1, c.Player2} {
		if agent != ConsoleAgent && agent != RandomAgent {
			return fmt.Errorf("unknown agent %q, expecting %q or %q", agent, ConsoleAgent, RandomAgent)
		}
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	_, err := c.Rules.Build()
	return err
}

func (r Rules) Build() (game.Rules, error) {
	rules, err := game.NewRules(r.StartingPieces, r.WinScore, !r.SingleCapture)
	if err != nil {
		return nil, err
	}
	return rules, nil
}
