package board

import "fmt"

const (
	Empty = 0 // Occupant of a vacant position

	NumLayers     = 3
	NumPositions  = NumLayers * len(compassPoints)
	maxNeighbours = 4
)

// Position is one intersection of the board. Its neighbours are indices into
// the board arena and never change once the board is built.
type Position struct {
	ID         string
	occupant   int
	neighbours [maxNeighbours]int
	degree     int
}

func blank(id string) Position {
	return Position{ID: id}
}

func (p *Position) Occupant() int {
	return p.occupant
}

func (p *Position) IsEmpty() bool {
	return p.occupant == Empty
}

func (p *Position) OwnedBy(player int) bool {
	return p.occupant == player
}

// Neighbours returns the arena indices adjacent to this position.
func (p *Position) Neighbours() []int {
	return p.neighbours[:p.degree]
}

func (p *Position) ConnectedTo(index int) bool {
	for _, n := range p.Neighbours() {
		if n == index {
			return true
		}
	}
	return false
}

func (p *Position) addNeighbour(index int) {
	if p.ConnectedTo(index) {
		return
	}
	if p.degree == maxNeighbours {
		panic(fmt.Sprintf("position %s already has %d neighbours", p.ID, maxNeighbours))
	}
	p.neighbours[p.degree] = index
	p.degree++
}
