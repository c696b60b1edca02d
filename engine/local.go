package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"morris/game"
	"morris/metrics"
)

type Option func(l *Local)

// WithMaxPlies overrides the cut off; non-positive values keep MaxPlies.
func WithMaxPlies(maxPlies int) Option {
	return func(l *Local) {
		if maxPlies > 0 {
			l.maxPlies = maxPlies
		}
	}
}

// WithRetries lets an agent replace up to retries illegal plies per turn.
func WithRetries(retries int) Option {
	return func(l *Local) {
		if retries >= 0 {
			l.retries = retries
		}
	}
}

func WithMetrics() Option {
	return func(l *Local) {
		l.metrics = metrics.NewCollector()
	}
}

// WithState starts the game from a given position instead of the opening.
func WithState(state *game.GameState) Option {
	return func(l *Local) {
		if state != nil {
			l.state = state
		}
	}
}

// Local runs both agents in-process.
type Local struct {
	ID       string
	agents   [2]Agent
	state    *game.GameState
	maxPlies int
	retries  int
	metrics  metrics.Collector
}

func NewLocal(rules game.Rules, agent1, agent2 Agent, options ...Option) *Local {
	if agent1 == nil || agent2 == nil {
		panic("need two agents")
	}
	l := &Local{ // Default values
		ID:       uuid.NewString(),
		agents:   [2]Agent{agent1, agent2},
		state:    game.NewGameState(rules),
		maxPlies: MaxPlies,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Run executes the game loop until a winner is found or the context ends.
func (l *Local) Run(ctx context.Context) (Result, error) {
	logger := log.With().Str("game", l.ID).Logger()
	l.metrics.Start(l.ID, l.state.CurrentPlayer())
	logger.Info().Msgf("player %d is starting", l.state.CurrentPlayer())

	plies := 0
	for !l.state.IsTerminal() && plies < l.maxPlies {
		if err := ctx.Err(); err != nil {
			return l.result(), err
		}

		player := l.state.CurrentPlayer()
		legal := l.state.LegalPlies()
		start := time.Now()
		ply, err := l.choose(ctx, l.agents[player-1], legal)
		if err != nil {
			return l.result(), fmt.Errorf("player %d: %w", player, err)
		}

		next, err := l.state.Apply(ply)
		if err != nil {
			return l.result(), fmt.Errorf("player %d: %w", player, err)
		}
		l.metrics.AddPly(metrics.PlyMetric{
			Player:   player,
			Kind:     ply.Kind,
			Ply:      ply.String(),
			Duration: time.Since(start),
		})
		logger.Debug().Msgf("%v -> %v", ply, next)

		l.state = next
		plies++
	}

	if winner := l.state.Winner(); winner != 0 {
		logger.Info().Msgf("player %d won after %d plies", winner, plies)
	} else {
		logger.Info().Msgf("stopped after %d plies without a winner", plies)
	}
	return l.result(), nil
}

// choose asks the agent for a ply of the expected kind until it picks a legal
// one or runs out of retries.
func (l *Local) choose(ctx context.Context, agent Agent, legal []game.Ply) (game.Ply, error) {
	ask := agent.Placement
	switch l.state.NextPly().Kind {
	case game.MovePly:
		ask = agent.Move
	case game.MillPly:
		ask = agent.Mill
	}

	for attempt := 0; ; attempt++ {
		ply, err := ask(ctx, l.state, legal)
		if err != nil {
			return game.Ply{}, err
		}
		if game.Contains(legal, ply) {
			return ply, nil
		}
		if attempt >= l.retries {
			return game.Ply{}, fmt.Errorf("%w: %v, expecting %v", ErrIllegalPly, ply, l.state.NextPly())
		}
		log.Warn().Str("game", l.ID).Msgf("rejected illegal ply %v", ply)
		l.metrics.AddRetry()
	}
}

func (l *Local) State() *game.GameState {
	return l.state
}

func (l *Local) result() Result {
	winner := l.state.Winner()
	gm, plies := l.metrics.Complete(winner)
	gm.ID = l.ID
	return Result{
		Winner: winner,
		State:  l.state,
		Game:   gm,
		Plies:  plies,
	}
}
