package game

import "fmt"

// A ply is one decision by one player, a half-turn in the game tree.
// See: https://en.wikipedia.org/wiki/Ply_(game_theory)

// PlyKind represents the type of action a ply performs.
type PlyKind int

const (
	RootPly      PlyKind = iota // No actor, provenance of the opening state
	PlacementPly                // Put a new piece on an empty position
	MovePly                     // Slide a piece to an adjacent empty position
	MillPly                     // Remove an opponent piece after forming a mill
)

func (k PlyKind) String() string {
	switch k {
	case RootPly:
		return "root"
	case PlacementPly:
		return "place"
	case MovePly:
		return "move"
	case MillPly:
		return "mill"
	default:
		return fmt.Sprintf("PlyKind(%d)", int(k))
	}
}

// Ply is comparable: two plies are equal iff they have the same kind and
// fields. Position is set for placements and mills, From and To for moves.
type Ply struct {
	Kind     PlyKind
	Player   int
	Position string
	From     string
	To       string
}

func Root() Ply {
	return Ply{Kind: RootPly}
}

func Placement(player int, id string) Ply {
	return Ply{Kind: PlacementPly, Player: player, Position: id}
}

func Move(player int, from, to string) Ply {
	return Ply{Kind: MovePly, Player: player, From: from, To: to}
}

func Mill(player int, id string) Ply {
	return Ply{Kind: MillPly, Player: player, Position: id}
}

// expected describes the kind of ply a state waits for, without target.
func expected(kind PlyKind, player int) Ply {
	return Ply{Kind: kind, Player: player}
}

// Target renders the ids the way a driver would type them: "0n" or "0n,0e".
func (p Ply) Target() string {
	if p.Kind == MovePly {
		return p.From + "," + p.To
	}
	return p.Position
}

func (p Ply) String() string {
	if p.Kind == RootPly {
		return p.Kind.String()
	}
	if target := p.Target(); target != "" && target != "," {
		return fmt.Sprintf("P%d %s %s", p.Player, p.Kind, target)
	}
	return fmt.Sprintf("P%d %s", p.Player, p.Kind)
}

// Contains reports whether the ply is one of the candidates.
func Contains(plies []Ply, ply Ply) bool {
	for _, candidate := range plies {
		if candidate == ply {
			return true
		}
	}
	return false
}
