package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownPosition  = errors.New("unknown position")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidCapture   = errors.New("invalid capture")
)

func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// Board is an arena of all positions plus the last known mills of each
// player. The id lookup is built once and shared read-only between clones.
type Board struct {
	positions [NumPositions]Position
	index     map[string]int
	held      [2]MillSet
}

// Step is a slide of one piece between two adjacent positions.
type Step struct {
	From string
	To   string
}

func (s Step) String() string {
	return s.From + "," + s.To
}

func validPlayer(player int) bool {
	return player == 1 || player == 2
}

func idAt(index int) string {
	return positionID(index/len(compassPoints), index%len(compassPoints))
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) lookup(id string) (int, error) {
	i, ok := b.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, id)
	}
	return i, nil
}

// IsValidPosition reports whether the id names one of the 24 positions.
func (b *Board) IsValidPosition(id string) bool {
	_, ok := b.index[id]
	return ok
}

// IDs returns every position id in arena order.
func (b *Board) IDs() []string {
	ids := make([]string, len(b.positions))
	for i := range b.positions {
		ids[i] = b.positions[i].ID
	}
	return ids
}

func (b *Board) Neighbours(id string) ([]string, error) {
	i, err := b.lookup(id)
	if err != nil {
		return nil, err
	}
	neighbours := b.positions[i].Neighbours()
	ids := make([]string, len(neighbours))
	for n, index := range neighbours {
		ids[n] = b.positions[index].ID
	}
	return ids, nil
}

// Occupant returns Empty or the id of the player holding the position.
func (b *Board) Occupant(id string) (int, error) {
	i, err := b.lookup(id)
	if err != nil {
		return Empty, err
	}
	return b.positions[i].occupant, nil
}

func (b *Board) Place(player int, id string) error {
	if !validPlayer(player) {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, player)
	}
	i, err := b.lookup(id)
	if err != nil {
		return err
	}
	if !b.positions[i].IsEmpty() {
		return errorf(ErrInvalidPlacement, "%s already has a piece of player %d", id, b.positions[i].occupant)
	}
	b.positions[i].occupant = player
	return nil
}

func (b *Board) Move(player int, from, to string) error {
	if !validPlayer(player) {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, player)
	}
	fi, err := b.lookup(from)
	if err != nil {
		return err
	}
	ti, err := b.lookup(to)
	if err != nil {
		return err
	}

	switch {
	case !b.positions[fi].OwnedBy(player):
		return errorf(ErrIllegalMove, "%s is not owned by player %d", from, player)
	case !b.positions[ti].IsEmpty():
		return errorf(ErrIllegalMove, "%s is not empty", to)
	case !b.positions[fi].ConnectedTo(ti):
		return errorf(ErrIllegalMove, "%s is not adjacent to %s", to, from)
	}

	b.positions[fi].occupant = Empty
	b.positions[ti].occupant = player
	return nil
}

// Remove vacates a position unconditionally. Captures go through Capture.
func (b *Board) Remove(id string) error {
	i, err := b.lookup(id)
	if err != nil {
		return err
	}
	b.positions[i].occupant = Empty
	return nil
}

// Count returns the number of pieces the player has on the board.
func (b *Board) Count(player int) int {
	n := 0
	for i := range b.positions {
		if validPlayer(player) && b.positions[i].OwnedBy(player) {
			n++
		}
	}
	return n
}

// AvailablePlaces returns the ids of all empty positions.
func (b *Board) AvailablePlaces() []string {
	var places []string
	for i := range b.positions {
		if b.positions[i].IsEmpty() {
			places = append(places, b.positions[i].ID)
		}
	}
	return places
}

// AvailableMoves returns every slide of one of the player's pieces onto an
// empty neighbour. An empty result means the player is stuck.
func (b *Board) AvailableMoves(player int) []Step {
	if !validPlayer(player) {
		return nil
	}
	var steps []Step
	for i := range b.positions {
		from := &b.positions[i]
		if !from.OwnedBy(player) {
			continue
		}
		for _, n := range from.Neighbours() {
			if b.positions[n].IsEmpty() {
				steps = append(steps, Step{From: from.ID, To: b.positions[n].ID})
			}
		}
	}
	return steps
}

// CanMove reports whether the player has at least one slide available.
func (b *Board) CanMove(player int) bool {
	if !validPlayer(player) {
		return false
	}
	for i := range b.positions {
		if !b.positions[i].OwnedBy(player) {
			continue
		}
		for _, n := range b.positions[i].Neighbours() {
			if b.positions[n].IsEmpty() {
				return true
			}
		}
	}
	return false
}

func (b *Board) piece(id string) string {
	i := b.index[id]
	if b.positions[i].IsEmpty() {
		return "."
	}
	return fmt.Sprint(b.positions[i].occupant)
}

// String draws the board as text, outer square on the outside.
func (b *Board) String() string {
	p := b.piece
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s----------%s----------%s\n", p("0nw"), p("0n"), p("0ne"))
	sb.WriteString("|          |          |\n")
	fmt.Fprintf(&sb, "|   %s------%s------%s   |\n", p("1nw"), p("1n"), p("1ne"))
	sb.WriteString("|   |      |      |   |\n")
	fmt.Fprintf(&sb, "|   |   %s--%s--%s   |   |\n", p("2nw"), p("2n"), p("2ne"))
	sb.WriteString("|   |   |     |   |   |\n")
	fmt.Fprintf(&sb, "%s---%s---%s     %s---%s---%s\n", p("0w"), p("1w"), p("2w"), p("2e"), p("1e"), p("0e"))
	sb.WriteString("|   |   |     |   |   |\n")
	fmt.Fprintf(&sb, "|   |   %s--%s--%s   |   |\n", p("2sw"), p("2s"), p("2se"))
	sb.WriteString("|   |      |      |   |\n")
	fmt.Fprintf(&sb, "|   %s------%s------%s   |\n", p("1sw"), p("1s"), p("1se"))
	sb.WriteString("|          |          |\n")
	fmt.Fprintf(&sb, "%s----------%s----------%s\n", p("0sw"), p("0s"), p("0se"))
	return sb.String()
}
