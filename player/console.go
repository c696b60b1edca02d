package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"morris/game"
)

var (
	ErrNoPly       = errors.New("no legal ply to choose from")
	ErrInputClosed = errors.New("input closed")
)

// Console asks a human for plies: "0nw" to place or capture, "0n,0e" to move.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) Placement(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error) {
	return c.ask(ctx, state, legal, "place a piece (e.g. 0nw)")
}

func (c *Console) Move(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error) {
	return c.ask(ctx, state, legal, "move a piece (e.g. 0n,0ne)")
}

func (c *Console) Mill(ctx context.Context, state *game.GameState, legal []game.Ply) (game.Ply, error) {
	return c.ask(ctx, state, legal, "capture a piece of the opponent")
}

func (c *Console) ask(ctx context.Context, state *game.GameState, legal []game.Ply, prompt string) (game.Ply, error) {
	if len(legal) == 0 {
		return game.Ply{}, ErrNoPly
	}
	expected := state.NextPly()

	fmt.Fprintf(c.out, "\n%v\n%v\n", state.Board(), state)
	for {
		if err := ctx.Err(); err != nil {
			return game.Ply{}, err
		}
		fmt.Fprintf(c.out, "player %d, %s: ", expected.Player, prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return game.Ply{}, err
			}
			return game.Ply{}, ErrInputClosed
		}

		ply, ok := parse(expected, c.in.Text())
		if ok && game.Contains(legal, ply) {
			return ply, nil
		}
		fmt.Fprintf(c.out, "%q is not legal, choose one of: %s\n", c.in.Text(), targets(legal))
	}
}

// parse reads a ply of the expected kind for the expected player.
func parse(expected game.Ply, line string) (game.Ply, bool) {
	line = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(line), " ", ""))
	if line == "" {
		return game.Ply{}, false
	}

	switch expected.Kind {
	case game.PlacementPly:
		return game.Placement(expected.Player, line), true
	case game.MillPly:
		return game.Mill(expected.Player, line), true
	case game.MovePly:
		from, to, ok := strings.Cut(line, ",")
		if !ok || from == "" || to == "" {
			return game.Ply{}, false
		}
		return game.Move(expected.Player, from, to), true
	default:
		return game.Ply{}, false
	}
}

func targets(legal []game.Ply) string {
	names := make([]string, len(legal))
	for i, ply := range legal {
		names[i] = ply.Target()
	}
	return strings.Join(names, " ")
}
