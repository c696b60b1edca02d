package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"morris/board"
)

// GameState is a snapshot of the whole game. NextPly names both the kind of
// ply expected and the player expected to make it.
type GameState struct {
	board        *board.Board
	rules        Rules
	current      int
	nextPly      Ply
	plyToGetHere Ply
	players      [2]PlayerState
	pending      int // Captures still owed by the current player
}

// AtBeginning returns the opening state under the standard rules.
func AtBeginning() *GameState {
	return NewGameState(NewStandardRules())
}

// NewGameState initializes an empty board with player 1 to place.
func NewGameState(rules Rules) *GameState {
	if rules == nil {
		rules = NewStandardRules()
	}
	pieces := rules.StartingPieces()
	return &GameState{
		board:        board.Build(),
		rules:        rules,
		current:      1,
		nextPly:      expected(PlacementPly, 1),
		plyToGetHere: Root(),
		players:      [2]PlayerState{NewPlayerState(pieces), NewPlayerState(pieces)},
	}
}

func (gs *GameState) copy() *GameState {
	next := *gs
	next.board = gs.board.Clone()
	return &next
}

func otherPlayer(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}

func (gs *GameState) CurrentPlayer() int {
	return gs.current
}

// Opponent returns the player waiting for the current player.
func (gs *GameState) Opponent() int {
	return otherPlayer(gs.current)
}

func (gs *GameState) NextPly() Ply {
	return gs.nextPly
}

func (gs *GameState) PlyToGetHere() Ply {
	return gs.plyToGetHere
}

func (gs *GameState) Rules() Rules {
	return gs.rules
}

// PendingCaptures returns how many mill plies the current player still owes.
func (gs *GameState) PendingCaptures() int {
	return gs.pending
}

// PlayerState returns the counters of a player, the zero value for an id
// outside {1, 2}. LookupPlayerState reports the unknown id instead.
func (gs *GameState) PlayerState(player int) PlayerState {
	ps, _ := gs.LookupPlayerState(player)
	return ps
}

func (gs *GameState) LookupPlayerState(player int) (PlayerState, error) {
	if player != 1 && player != 2 {
		return PlayerState{}, fmt.Errorf("%w: %d", board.ErrUnknownPlayer, player)
	}
	return gs.players[player-1], nil
}

func (gs *GameState) CurrentPlayerState() PlayerState {
	return gs.players[gs.current-1]
}

// Board returns a copy of the board; mutating it does not affect the state.
func (gs *GameState) Board() *board.Board {
	return gs.board.Clone()
}

// AvailablePlaces returns a placement for the current player on every empty
// position.
func (gs *GameState) AvailablePlaces() []Ply {
	ids := gs.board.AvailablePlaces()
	plies := make([]Ply, len(ids))
	for i, id := range ids {
		plies[i] = Placement(gs.current, id)
	}
	return plies
}

func (gs *GameState) AvailableMoves(player int) []Ply {
	steps := gs.board.AvailableMoves(player)
	plies := make([]Ply, len(steps))
	for i, step := range steps {
		plies[i] = Move(player, step.From, step.To)
	}
	return plies
}

func (gs *GameState) AvailableMills(capturer, victim int) []Ply {
	ids := gs.board.AvailableMills(capturer, victim)
	plies := make([]Ply, len(ids))
	for i, id := range ids {
		plies[i] = Mill(capturer, id)
	}
	return plies
}

// LegalPlies returns every ply the current player may make, nil once the game
// is over.
func (gs *GameState) LegalPlies() []Ply {
	if gs.IsTerminal() {
		return nil
	}
	switch gs.nextPly.Kind {
	case PlacementPly:
		return gs.AvailablePlaces()
	case MovePly:
		return gs.AvailableMoves(gs.current)
	case MillPly:
		return gs.AvailableMills(gs.current, gs.Opponent())
	default:
		return nil
	}
}

// IsLegal reports whether the ply is among the legal plies.
func (gs *GameState) IsLegal(ply Ply) bool {
	return Contains(gs.LegalPlies(), ply)
}

// Children returns one successor per legal ply, in the order of LegalPlies.
// Children share no mutable state with each other or with gs.
func (gs *GameState) Children() []*GameState {
	plies := gs.LegalPlies()
	children := make([]*GameState, 0, len(plies))
	for _, ply := range plies {
		// LegalPlies already ruled out a terminal state
		child, err := gs.apply(ply)
		if err != nil {
			panic(fmt.Sprintf("generated ply %v is not applicable: %v", ply, err))
		}
		children = append(children, child)
	}
	return children
}

// Apply dispatches the ply to the matching transition.
func (gs *GameState) Apply(ply Ply) (*GameState, error) {
	if gs.IsTerminal() {
		return nil, ErrGameOver
	}
	return gs.apply(ply)
}

// apply is Apply for a state known not to be terminal.
func (gs *GameState) apply(ply Ply) (*GameState, error) {
	switch ply.Kind {
	case PlacementPly:
		return gs.placePiece(ply)
	case MovePly:
		return gs.movePiece(ply)
	case MillPly:
		return gs.millPiece(ply)
	default:
		return nil, fmt.Errorf("%w: cannot apply %v", ErrPhaseMismatch, ply)
	}
}

func (gs *GameState) check(ply Ply, kind PlyKind) error {
	if ply.Kind != kind || gs.nextPly.Kind != kind || ply.Player != gs.nextPly.Player {
		return fmt.Errorf("%w: got %v, expecting %v", ErrPhaseMismatch, ply, gs.nextPly)
	}
	return nil
}

func (gs *GameState) PlacePiece(ply Ply) (*GameState, error) {
	if gs.IsTerminal() {
		return nil, ErrGameOver
	}
	return gs.placePiece(ply)
}

func (gs *GameState) MovePiece(ply Ply) (*GameState, error) {
	if gs.IsTerminal() {
		return nil, ErrGameOver
	}
	return gs.movePiece(ply)
}

func (gs *GameState) MillPiece(ply Ply) (*GameState, error) {
	if gs.IsTerminal() {
		return nil, ErrGameOver
	}
	return gs.millPiece(ply)
}

func (gs *GameState) placePiece(ply Ply) (*GameState, error) {
	if err := gs.check(ply, PlacementPly); err != nil {
		return nil, err
	}

	next := gs.copy()
	if err := next.board.Place(ply.Player, ply.Position); err != nil {
		return nil, err
	}
	placed, err := next.players[ply.Player-1].Placed()
	if err != nil {
		return nil, err
	}
	next.players[ply.Player-1] = placed
	next.plyToGetHere = ply
	next.afterAction(ply.Player)

	return next, nil
}

func (gs *GameState) movePiece(ply Ply) (*GameState, error) {
	if err := gs.check(ply, MovePly); err != nil {
		return nil, err
	}

	next := gs.copy()
	if err := next.board.Move(ply.Player, ply.From, ply.To); err != nil {
		return nil, err
	}
	next.plyToGetHere = ply
	next.afterAction(ply.Player)

	return next, nil
}

func (gs *GameState) millPiece(ply Ply) (*GameState, error) {
	if err := gs.check(ply, MillPly); err != nil {
		return nil, err
	}

	capturer, victim := ply.Player, otherPlayer(ply.Player)
	next := gs.copy()
	if err := next.board.Capture(capturer, victim, ply.Position); err != nil {
		return nil, err
	}
	next.players[capturer-1] = next.players[capturer-1].Scored()
	next.plyToGetHere = ply
	next.pending--

	if next.pending > 0 &&
		next.board.Count(victim) > 0 &&
		next.players[capturer-1].Score < next.rules.WinScore() {
		return next, nil
	}
	next.passTurn(capturer)

	return next, nil
}

// afterAction decides what follows a placement or a move: captures for every
// newly formed mill the rules grant, or the opponent's turn.
func (gs *GameState) afterAction(player int) {
	formed := gs.board.UpdateMills(player)
	captures := min(gs.rules.Captures(formed.Len()), gs.board.Count(otherPlayer(player)))
	if captures > 0 {
		gs.pending = captures
		gs.current = player
		gs.nextPly = expected(MillPly, player)
		return
	}
	gs.passTurn(player)
}

func (gs *GameState) passTurn(player int) {
	opponent := otherPlayer(player)
	gs.pending = 0
	gs.current = opponent
	if gs.players[opponent-1].IsPlacement() {
		gs.nextPly = expected(PlacementPly, opponent)
	} else {
		gs.nextPly = expected(MovePly, opponent)
	}
}

// HasWon reports whether the player reached the win score, or whether the
// opponent is to move in the move phase and cannot.
func (gs *GameState) HasWon(player int) bool {
	if player != 1 && player != 2 {
		return false
	}
	opponent := otherPlayer(player)
	stuck := gs.nextPly.Kind == MovePly &&
		gs.nextPly.Player == opponent &&
		!gs.board.CanMove(opponent)
	return gs.players[player-1].HasWon(gs.rules.WinScore(), gs.players[opponent-1], stuck)
}

// CurrentPlayerHasWon reports whether the player who made PlyToGetHere won
// with it. The turn has already passed on by then, so CurrentPlayer names the
// loser of a finished game.
func (gs *GameState) CurrentPlayerHasWon() bool {
	return gs.plyToGetHere.Kind != RootPly && gs.HasWon(gs.plyToGetHere.Player)
}

// Winner returns the winning player, 0 while the game is undecided.
func (gs *GameState) Winner() int {
	for _, player := range []int{1, 2} {
		if gs.HasWon(player) {
			return player
		}
	}
	return 0
}

func (gs *GameState) IsTerminal() bool {
	return gs.Winner() != 0
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.current))
	binary.Write(hasher, binary.LittleEndian, int64(gs.nextPly.Kind))
	binary.Write(hasher, binary.LittleEndian, int64(gs.pending))

	for _, id := range gs.board.IDs() {
		occupant, _ := gs.board.Occupant(id)
		binary.Write(hasher, binary.LittleEndian, int64(occupant))
	}

	for player, ps := range gs.players {
		binary.Write(hasher, binary.LittleEndian, int64(ps.Score))
		binary.Write(hasher, binary.LittleEndian, int64(ps.PiecesLeftToPlace))
		binary.Write(hasher, binary.LittleEndian, uint16(gs.board.HeldMills(player+1)))
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("GameState(current_player: %d; next: %v; p1: %v, p2: %v)",
		gs.current, gs.nextPly, gs.players[0], gs.players[1])
}
