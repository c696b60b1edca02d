package board

import "fmt"

// Compass points of one layer, clockwise from the north-west corner. Even
// offsets are corners, odd offsets are side midpoints.
var compassPoints = [...]string{"nw", "n", "ne", "e", "se", "s", "sw", "w"}

// positionID returns the textual id of a compass point on a layer, e.g. "1ne".
func positionID(layer, offset int) string {
	return fmt.Sprintf("%d%s", layer, compassPoints[offset])
}

func positionIndex(layer, offset int) int {
	return layer*len(compassPoints) + offset%len(compassPoints)
}

func isMidpoint(offset int) bool {
	return offset%2 == 1
}

// Build lays the board out layer by layer, outer square first. Corners link to
// the two midpoints of their layer, midpoints additionally link to the
// midpoint with the same compass point on the neighbouring layers.
func Build() *Board {
	b := &Board{
		index: make(map[string]int, NumPositions),
	}

	for layer := 0; layer < NumLayers; layer++ {
		for offset := range compassPoints {
			b.addPosition(blank(positionID(layer, offset)))
		}
	}

	for layer := 0; layer < NumLayers; layer++ {
		for offset := range compassPoints {
			// the next point clockwise is always on the same side
			b.addBorder(positionIndex(layer, offset), positionIndex(layer, offset+1))

			if isMidpoint(offset) && layer+1 < NumLayers {
				b.addBorder(positionIndex(layer, offset), positionIndex(layer+1, offset))
			}
		}
	}

	return b
}

func (b *Board) addPosition(position Position) int {
	next := len(b.index)
	b.index[position.ID] = next
	b.positions[next] = position
	return next
}

// addBorder adds a bidirectional link between two positions.
func (b *Board) addBorder(first, second int) {
	b.positions[first].addNeighbour(second)
	b.positions[second].addNeighbour(first)
}

// ring lines run corner-midpoint-corner along one side of a layer, spokes
// join the same midpoint across the three layers.
func buildLines() [NumLines]Mill {
	var result [NumLines]Mill
	n := 0
	for layer := 0; layer < NumLayers; layer++ {
		for corner := 0; corner < len(compassPoints); corner += 2 {
			result[n] = newMill(
				positionIndex(layer, corner),
				positionIndex(layer, corner+1),
				positionIndex(layer, corner+2),
			)
			n++
		}
	}
	for offset := 1; offset < len(compassPoints); offset += 2 {
		result[n] = newMill(
			positionIndex(0, offset),
			positionIndex(1, offset),
			positionIndex(2, offset),
		)
		n++
	}
	return result
}
