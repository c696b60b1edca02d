package game

import (
	"fmt"

	"morris/board"
)

// Rules are the house-rule parameters the state machine consults.
type Rules interface {
	StartingPieces() int
	WinScore() int
	// Captures returns how many pieces a ply that formed newMills may take.
	Captures(newMills int) int
}

type StandardRules struct {
	Pieces         int
	MillsToWin     int
	CapturePerMill bool
}

// NewStandardRules returns nine pieces each, a win at seven mills and one
// capture per newly formed mill.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Pieces:         9,
		MillsToWin:     7,
		CapturePerMill: true,
	}
}

func NewRules(pieces, millsToWin int, capturePerMill bool) (*StandardRules, error) {
	if pieces < 3 || 2*pieces > board.NumPositions {
		return nil, fmt.Errorf("%w: %d starting pieces", ErrInvalidRules, pieces)
	}
	if millsToWin < 1 {
		return nil, fmt.Errorf("%w: win score %d", ErrInvalidRules, millsToWin)
	}
	return &StandardRules{
		Pieces:         pieces,
		MillsToWin:     millsToWin,
		CapturePerMill: capturePerMill,
	}, nil
}

func (sr *StandardRules) StartingPieces() int {
	return sr.Pieces
}

func (sr *StandardRules) WinScore() int {
	return sr.MillsToWin
}

func (sr *StandardRules) Captures(newMills int) int {
	if newMills <= 0 {
		return 0
	}
	if sr.CapturePerMill {
		return newMills
	}
	return 1
}
