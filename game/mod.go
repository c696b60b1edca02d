// Package game holds the turn structure of Nine Men's Morris on top of the
// board. GameState is immutable: every transition returns a new copy, so the
// children of one state can be explored independently, in parallel if needed.
package game

import "errors"

var (
	ErrPhaseMismatch = errors.New("ply does not match the expected ply")
	ErrGameOver      = errors.New("game is already over")
	ErrInvalidRules  = errors.New("invalid rules")
)

type StateHash uint64
