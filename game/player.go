package game

import "fmt"

// PlayerState holds the per-player counters. Updates return new values.
type PlayerState struct {
	Score             int // Mills completed so far
	PiecesLeftToPlace int
}

func NewPlayerState(pieces int) PlayerState {
	return PlayerState{PiecesLeftToPlace: pieces}
}

// IsPlacement reports whether the player still has pieces to place. Once it
// turns false the player stays in the move phase for the rest of the game.
func (p PlayerState) IsPlacement() bool {
	return p.PiecesLeftToPlace > 0
}

func (p PlayerState) Placed() (PlayerState, error) {
	if !p.IsPlacement() {
		return p, fmt.Errorf("%w: no pieces left to place", ErrPhaseMismatch)
	}
	p.PiecesLeftToPlace--
	return p, nil
}

func (p PlayerState) Scored() PlayerState {
	p.Score++
	return p
}

// HasWon checks the two win conditions: enough mills, or an opponent that is
// out of the placement phase and cannot move.
func (p PlayerState) HasWon(winScore int, opponent PlayerState, opponentStuck bool) bool {
	return p.Score >= winScore || (!opponent.IsPlacement() && opponentStuck)
}

func (p PlayerState) String() string {
	return fmt.Sprintf("(s:%d,p:%d)", p.Score, p.PiecesLeftToPlace)
}
