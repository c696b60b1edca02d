package player

import (
	"context"
	"time"

	"golang.org/x/exp/rand"

	"morris/game"
)

// Random picks uniformly among the legal plies. It is not safe for concurrent
// use; give each seat its own.
type Random struct {
	rng *rand.Rand
}

// NewRandom seeds the agent; a zero seed draws one from the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Placement(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error) {
	return r.pick(legal)
}

func (r *Random) Move(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error) {
	return r.pick(legal)
}

func (r *Random) Mill(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error) {
	return r.pick(legal)
}

func (r *Random) pick(legal []game.Ply) (game.Ply, error) {
	if len(legal) == 0 {
		return game.Ply{}, ErrNoPly
	}
	return legal[r.rng.Intn(len(legal))], nil
}
