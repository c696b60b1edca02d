package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"morris/board"
)

func TestPlyString(t *testing.T) {
	cases := []struct {
		ply  Ply
		want string
	}{
		{Root(), "root"},
		{Placement(1, "0n"), "P1 place 0n"},
		{Move(2, "0n", "0e"), "P2 move 0n,0e"},
		{Mill(1, "2sw"), "P1 mill 2sw"},
		{expected(MovePly, 2), "P2 move"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, c.ply.String())
	}
}

func TestPlyEquality(t *testing.T) {
	require.Equal(t, Placement(1, "0n"), Placement(1, "0n"))
	require.NotEqual(t, Placement(1, "0n"), Mill(1, "0n"))
	require.NotEqual(t, Placement(1, "0n"), Placement(2, "0n"))
	require.True(t, Contains([]Ply{Mill(1, "0n"), Move(1, "0n", "0e")}, Move(1, "0n", "0e")))
	require.False(t, Contains([]Ply{Move(1, "0n", "0e")}, Move(1, "0e", "0n")))
	require.False(t, Contains(nil, Root()))
}

func TestPlayerState(t *testing.T) {
	ps := NewPlayerState(2)
	require.True(t, ps.IsPlacement())

	ps, err := ps.Placed()
	require.NoError(t, err)
	ps, err = ps.Placed()
	require.NoError(t, err)
	require.False(t, ps.IsPlacement())

	_, err = ps.Placed()
	require.ErrorIs(t, err, ErrPhaseMismatch)

	scored := ps.Scored()
	require.Equal(t, 1, scored.Score)
	require.Equal(t, 0, ps.Score, "Receiver should not change")
	require.Equal(t, "(s:1,p:0)", scored.String())
}

func TestPlayerStateHasWon(t *testing.T) {
	placing := NewPlayerState(1)
	moving := NewPlayerState(0)

	require.True(t, PlayerState{Score: 7}.HasWon(7, placing, false))
	require.False(t, PlayerState{Score: 6}.HasWon(7, moving, false))
	require.True(t, moving.HasWon(7, moving, true))
	require.False(t, moving.HasWon(7, placing, true), "An opponent still placing is never stuck")
}

func TestLookupPlayerState(t *testing.T) {
	gs := AtBeginning()

	ps, err := gs.LookupPlayerState(2)
	require.NoError(t, err)
	require.Equal(t, NewPlayerState(9), ps)

	for _, player := range []int{0, 3, -1} {
		_, err := gs.LookupPlayerState(player)
		require.ErrorIs(t, err, board.ErrUnknownPlayer)
		require.Equal(t, PlayerState{}, gs.PlayerState(player), "Unknown player %d", player)
	}
}

func TestRules(t *testing.T) {
	t.Run("standard rules", func(t *testing.T) {
		rules := NewStandardRules()

		require.Equal(t, 9, rules.StartingPieces())
		require.Equal(t, 7, rules.WinScore())
		require.Equal(t, 0, rules.Captures(0))
		require.Equal(t, 1, rules.Captures(1))
		require.Equal(t, 2, rules.Captures(2))
	})

	t.Run("one capture per ply", func(t *testing.T) {
		rules, err := NewRules(9, 3, false)

		require.NoError(t, err)
		require.Equal(t, 3, rules.WinScore())
		require.Equal(t, 1, rules.Captures(2))
	})

	t.Run("invalid rules", func(t *testing.T) {
		_, err := NewRules(2, 7, true)
		require.ErrorIs(t, err, ErrInvalidRules)
		_, err = NewRules(13, 7, true)
		require.ErrorIs(t, err, ErrInvalidRules)
		_, err = NewRules(9, 0, true)
		require.ErrorIs(t, err, ErrInvalidRules)
	})

	t.Run("nil rules default to the standard ones", func(t *testing.T) {
		gs := NewGameState(nil)

		require.Equal(t, NewStandardRules(), gs.Rules())
	})
}
