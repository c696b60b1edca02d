package engine

import (
	"context"
	"errors"

	"morris/game"
	"morris/metrics"
)

// MaxPlies cuts off games that cycle in the move phase.
const MaxPlies = 1000

var ErrIllegalPly = errors.New("agent chose an illegal ply")

// Agent decides plies for one seat. Each method receives the current state and
// the non-empty list of legal plies of the matching kind.
type Agent interface {
	Placement(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error)
	Move(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error)
	Mill(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error)
}

type Result struct {
	Winner int // 0 when the game was cut off
	State  *game.GameState
	Game   metrics.GameMetric
	Plies  []metrics.PlyMetric
}

type Engine interface {
	// Run plays a game until there is a winner or the ply limit is reached.
	Run(ctx context.Context) (Result, error)
}
