package board

import (
	"math/bits"
	"sort"
	"strings"
)

const NumLines = 16

// lines holds every three-in-a-row on the board, ring lines first.
var lines = buildLines()

// Mill is an unordered triple of board indices, stored sorted.
type Mill [3]int

func newMill(first, second, third int) Mill {
	m := Mill{first, second, third}
	sort.Ints(m[:])
	return m
}

func (m Mill) Contains(index int) bool {
	return m[0] == index || m[1] == index || m[2] == index
}

// MillSet is a set of lines, one bit per entry of lines.
type MillSet uint16

func (s MillSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

func (s MillSet) IsEmpty() bool {
	return s == 0
}

func (s MillSet) Contains(m Mill) bool {
	for i, line := range lines {
		if line == m {
			return s&(1<<i) != 0
		}
	}
	return false
}

// Difference returns the mills in s that are not in other.
func (s MillSet) Difference(other MillSet) MillSet {
	return s &^ other
}

func (s MillSet) Mills() []Mill {
	mills := make([]Mill, 0, s.Len())
	for i, line := range lines {
		if s&(1<<i) != 0 {
			mills = append(mills, line)
		}
	}
	return mills
}

// covers reports whether any mill of the set contains the index.
func (s MillSet) covers(index int) bool {
	for i, line := range lines {
		if s&(1<<i) != 0 && line.Contains(index) {
			return true
		}
	}
	return false
}

// Lines returns all sixteen lines of the board.
func Lines() []Mill {
	result := make([]Mill, NumLines)
	copy(result, lines[:])
	return result
}

// FindMills returns every line fully owned by the player.
func (b *Board) FindMills(player int) MillSet {
	var found MillSet
	if !validPlayer(player) {
		return found
	}
	for i, line := range lines {
		if b.positions[line[0]].OwnedBy(player) &&
			b.positions[line[1]].OwnedBy(player) &&
			b.positions[line[2]].OwnedBy(player) {
			found |= 1 << i
		}
	}
	return found
}

// UpdateMills recomputes the player's mills, replaces the cached snapshot and
// returns the mills that were not held before. A mill that stayed intact since
// the last update is not reported again.
func (b *Board) UpdateMills(player int) MillSet {
	if !validPlayer(player) {
		return 0
	}
	current := b.FindMills(player)
	formed := current.Difference(b.held[player-1])
	b.held[player-1] = current
	return formed
}

// SyncMills refreshes the player's cached mills without reporting new ones.
func (b *Board) SyncMills(player int) {
	if validPlayer(player) {
		b.held[player-1] = b.FindMills(player)
	}
}

// HeldMills returns the last cached snapshot of the player's mills.
func (b *Board) HeldMills(player int) MillSet {
	if !validPlayer(player) {
		return 0
	}
	return b.held[player-1]
}

// AvailableMills returns the ids of the victim's pieces the capturer may take:
// those outside the victim's standing mills, or all of them when every piece
// stands in a mill.
func (b *Board) AvailableMills(capturer, victim int) []string {
	if !validPlayer(capturer) || !validPlayer(victim) || capturer == victim {
		return nil
	}

	standing := b.FindMills(victim)
	var free, all []string
	for i := range b.positions {
		if !b.positions[i].OwnedBy(victim) {
			continue
		}
		all = append(all, b.positions[i].ID)
		if !standing.covers(i) {
			free = append(free, b.positions[i].ID)
		}
	}

	if len(free) == 0 {
		return all
	}
	return free
}

// Capture removes one of the victim's pieces after checking it is eligible,
// then refreshes the victim's cached mills.
func (b *Board) Capture(capturer, victim int, id string) error {
	i, err := b.lookup(id)
	if err != nil {
		return err
	}
	if !validPlayer(capturer) || capturer == victim {
		return errorf(ErrInvalidCapture, "player %d cannot capture pieces of player %d", capturer, victim)
	}
	if !validPlayer(victim) || !b.positions[i].OwnedBy(victim) {
		return errorf(ErrInvalidCapture, "%s is not owned by player %d", id, victim)
	}
	eligible := false
	for _, candidate := range b.AvailableMills(capturer, victim) {
		if candidate == id {
			eligible = true
			break
		}
	}
	if !eligible {
		return errorf(ErrInvalidCapture, "%s stands in a mill of player %d", id, victim)
	}

	b.positions[i].occupant = Empty
	b.SyncMills(victim)
	return nil
}

func (m Mill) String() string {
	ids := make([]string, len(m))
	for i, index := range m {
		ids[i] = idAt(index)
	}
	return "(" + strings.Join(ids, ",") + ")"
}
