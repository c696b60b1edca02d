// Package perft counts the states reachable from a position, the usual way of
// checking a move generator against known totals.
package perft

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"morris/game"
)

type Option func(p *Perft)

type Perft struct {
	goroutines int
}

// WithGoroutines spreads the root children over a worker pool.
func WithGoroutines(goroutines int) Option {
	return func(p *Perft) {
		if goroutines > 0 {
			p.goroutines = goroutines
		}
	}
}

func New(options ...Option) *Perft {
	p := &Perft{goroutines: 1}
	for _, option := range options {
		option(p)
	}
	return p
}

// Split is the number of leaves below one root ply.
type Split struct {
	Ply    game.Ply
	Leaves uint64
}

// Count returns the number of states reached after exactly depth plies.
// Terminal states above that depth are not counted.
func (p *Perft) Count(ctx context.Context, state *game.GameState, depth int) (uint64, error) {
	splits, err := p.Divide(ctx, state, depth)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	var total uint64
	for _, split := range splits {
		total += split.Leaves
	}
	return total, nil
}

// Divide returns the leaf count below each root ply, in LegalPlies order.
func (p *Perft) Divide(ctx context.Context, state *game.GameState, depth int) ([]Split, error) {
	if depth <= 0 {
		return nil, nil
	}

	start := time.Now()
	children := state.Children()
	splits := make([]Split, len(children))

	task := make(chan int, len(children))
	for i := range children {
		task <- i
	}
	close(task)

	var cancelled atomic.Bool
	var wg sync.WaitGroup
	for i := 0; i < p.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if ctx.Err() != nil {
					cancelled.Store(true)
					return
				}
				splits[i] = Split{
					Ply:    children[i].PlyToGetHere(),
					Leaves: count(ctx, children[i], depth-1),
				}
			}
		}()
	}
	wg.Wait()

	if cancelled.Load() || ctx.Err() != nil {
		return nil, ctx.Err()
	}

	log.Debug().Msgf("perft depth %d: %d root plies in %v with %d goroutines",
		depth, len(splits), time.Since(start), p.goroutines)
	return splits, nil
}

func count(ctx context.Context, state *game.GameState, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if ctx.Err() != nil {
		return 0
	}
	var leaves uint64
	for _, child := range state.Children() {
		leaves += count(ctx, child, depth-1)
	}
	return leaves
}
