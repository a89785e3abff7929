package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newCheckers(turn Loyalty, rows ...string) *Game {
	return New(Checkers, WithBoard(MustParseBoard(rows...)), WithTurn(turn))
}

func TestSoldierMoves(t *testing.T) {
	t.Run("red soldiers step forward diagonally", func(t *testing.T) {
		g := newCheckers(Red,
			".....",
			"..C..",
			".....",
		)
		moves := g.LegalMoves(Red)
		require.ElementsMatch(t, []Move{
			{Path: []Location{Loc(1, 2), Loc(2, 1)}},
			{Path: []Location{Loc(1, 2), Loc(2, 3)}},
		}, moves)
	})

	t.Run("black soldiers step towards row zero", func(t *testing.T) {
		g := newCheckers(Black,
			".....",
			"..c..",
			".....",
		)
		moves := g.LegalMoves(Black)
		require.ElementsMatch(t, []Move{
			{Path: []Location{Loc(1, 2), Loc(0, 1)}},
			{Path: []Location{Loc(1, 2), Loc(0, 3)}},
		}, moves)
	})

	t.Run("single jump onto the far row", func(t *testing.T) {
		g := newCheckers(Red,
			"C..",
			".c.",
			"...",
		)
		moves := g.LegalMoves(Red)
		require.Len(t, moves, 1, "The capture is the only move")
		require.Equal(t, []Location{Loc(0, 0), Loc(2, 2)}, moves[0].Path)
		require.Equal(t, []Location{Loc(1, 1)}, moves[0].Captured)

		g.ApplyMove(moves[0])

		require.Nil(t, g.Board().PieceAt(Loc(1, 1)), "Jumped piece should be removed")
		king := g.Board().PieceAt(Loc(2, 2))
		require.NotNil(t, king)
		require.Equal(t, CheckersKing, king.Kind, "Soldier should be promoted on the far row")
		require.Equal(t, 5.0, king.Worth)
		require.Equal(t, Black, g.Turn())
		require.True(t, g.IsDefeated(Black))
		require.True(t, g.IsComplete())
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, Red, winner)
	})

	t.Run("a capture beats an open step", func(t *testing.T) {
		g := newCheckers(Red,
			".C..",
			"..c.",
			"....",
		)
		require.Nil(t, g.Board().PieceAt(Loc(1, 0)), "The step to (1,0) would be legal on its own")

		moves := g.LegalMoves(Red)

		require.Equal(t, []Move{{
			Path:     []Location{Loc(0, 1), Loc(2, 3)},
			Captured: []Location{Loc(1, 2)},
		}}, moves)
	})

	t.Run("blocked soldier has no moves", func(t *testing.T) {
		g := newCheckers(Red,
			"C..",
			".c.",
			"..c",
		)
		require.Empty(t, g.Board().PieceAt(Loc(0, 0)).GenerateMoves(g.Board()))
		require.True(t, g.IsDefeated(Red), "No movable piece means defeat")
	})
}

func TestForcedCapture(t *testing.T) {
	g := newCheckers(Red,
		"..C.C",
		".c...",
		".....",
		".....",
	)

	t.Run("a piece that can capture drops its steps", func(t *testing.T) {
		moves := g.Board().PieceAt(Loc(0, 2)).GenerateMoves(g.Board())
		require.Len(t, moves, 1)
		require.Equal(t, []Location{Loc(0, 2), Loc(2, 0)}, moves[0].Path)
		require.Equal(t, []Location{Loc(1, 1)}, moves[0].Captured)
	})

	t.Run("teammates without captures keep stepping", func(t *testing.T) {
		moves := g.LegalMoves(Red)
		require.Len(t, moves, 2)
		require.Equal(t, []Location{Loc(0, 4), Loc(1, 3)}, moves[1].Path)
		require.False(t, moves[1].IsCapture())
	})
}

func TestKingChains(t *testing.T) {
	t.Run("a king chains jumps in any direction", func(t *testing.T) {
		g := newCheckers(Red,
			"D....",
			".c...",
			".....",
			"...c.",
			".....",
		)
		moves := g.LegalMoves(Red)
		require.Len(t, moves, 1, "Only the maximal chain is offered")
		require.Equal(t, []Location{Loc(0, 0), Loc(2, 2), Loc(4, 4)}, moves[0].Path)
		require.Equal(t, []Location{Loc(1, 1), Loc(3, 3)}, moves[0].Captured)

		g.ApplyMove(moves[0])

		require.Len(t, g.Captured(Red), 2)
		require.Empty(t, g.Board().Pieces(Black))
		require.True(t, g.IsComplete())
	})

	t.Run("chains never jump a piece twice and terminate on a ring", func(t *testing.T) {
		g := newCheckers(Red,
			".....",
			".c.c.",
			"D....",
			".c.c.",
			".....",
		)
		moves := g.LegalMoves(Red)
		require.Len(t, moves, 2, "One chain around the ring in each direction")
		for _, m := range moves {
			require.Len(t, m.Path, 4)
			require.Len(t, m.Captured, 3)
			seen := map[Location]bool{}
			for _, loc := range m.Captured {
				require.False(t, seen[loc], "%s captured twice in %s", loc, m)
				seen[loc] = true
			}
		}
	})

	t.Run("a king still steps backwards when nothing is capturable", func(t *testing.T) {
		g := newCheckers(Black,
			"...",
			".d.",
			"...",
		)
		require.Len(t, g.LegalMoves(Black), 4)
	})
}

func TestCheckersSetup(t *testing.T) {
	g := New(Checkers, WithTurn(Red))
	require.Len(t, g.Board().Pieces(Red), 12)
	require.Len(t, g.Board().Pieces(Black), 12)
	require.Len(t, g.LegalMoves(Red), 7, "Opening has seven soldier steps")
	require.Len(t, g.LegalMoves(Black), 7)
	require.False(t, g.IsComplete())
}
