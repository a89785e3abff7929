package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardBounds(t *testing.T) {
	b := NewBoard(3, 4)
	for r := -2; r < 5; r++ {
		for c := -2; c < 6; c++ {
			want := r >= 0 && r < 3 && c >= 0 && c < 4
			require.Equal(t, want, b.IsValid(Loc(r, c)), "validity of %s", Loc(r, c))
		}
	}

	t.Run("reading off the board panics", func(t *testing.T) {
		require.Panics(t, func() { b.PieceAt(Loc(3, 0)) })
		require.Panics(t, func() { b.Place(NewPiece(Soldier, Red), Loc(0, -1)) })
	})

	t.Run("non-positive dimensions panic", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0, 8) })
	})
}

func TestBoardPlaceMoveRemove(t *testing.T) {
	t.Run("placing records the location on the piece", func(t *testing.T) {
		b := NewBoard(4, 4)
		p := NewPiece(Rook, Black)
		b.Place(p, Loc(2, 3))

		require.Same(t, p, b.PieceAt(Loc(2, 3)))
		require.Equal(t, Loc(2, 3), p.Loc)
		require.False(t, p.HasMoved, "Placing is not moving")
	})

	t.Run("moving empties the start and marks the piece", func(t *testing.T) {
		b := NewBoard(4, 4)
		p := NewPiece(Knight, Red)
		b.Place(p, Loc(0, 1))

		got := b.MovePiece(Loc(0, 1), Loc(2, 2))

		require.Same(t, p, got)
		require.Nil(t, b.PieceAt(Loc(0, 1)), "Start cell should be empty")
		require.Same(t, p, b.PieceAt(Loc(2, 2)))
		require.Equal(t, Loc(2, 2), p.Loc)
		require.True(t, p.HasMoved)
	})

	t.Run("moving from an empty cell panics", func(t *testing.T) {
		b := NewBoard(4, 4)
		require.Panics(t, func() { b.MovePiece(Loc(1, 1), Loc(2, 2)) })
	})

	t.Run("occupied targets panic and leave the board intact", func(t *testing.T) {
		b := NewBoard(4, 4)
		p, q := NewPiece(Knight, Red), NewPiece(Rook, Black)
		b.Place(p, Loc(0, 1))
		b.Place(q, Loc(2, 2))

		require.Panics(t, func() { b.Place(NewPiece(Pawn, Red), Loc(2, 2)) })
		require.Panics(t, func() { b.MovePiece(Loc(0, 1), Loc(2, 2)) })
		require.Same(t, p, b.PieceAt(Loc(0, 1)))
		require.Same(t, q, b.PieceAt(Loc(2, 2)))
		require.Equal(t, Loc(2, 2), q.Loc)
		require.False(t, p.HasMoved)

		b.Place(q, Loc(2, 2))
		require.Same(t, q, b.PieceAt(Loc(2, 2)), "Placing a piece where it stands is allowed")
	})

	t.Run("removing returns the occupant", func(t *testing.T) {
		b := NewBoard(4, 4)
		p := NewPiece(Pawn, Red)
		b.Place(p, Loc(1, 0))

		require.Same(t, p, b.Remove(Loc(1, 0)))
		require.Nil(t, b.PieceAt(Loc(1, 0)))
		require.Nil(t, b.Remove(Loc(1, 0)), "Removing twice yields nothing")
	})
}

func TestBoardCloneAndEqual(t *testing.T) {
	b := NewCheckersRules().Setup()
	c := b.Clone()
	require.True(t, b.Equal(c), "Clone should equal the original")

	c.MovePiece(Loc(2, 1), Loc(3, 0))
	require.False(t, b.Equal(c), "Boards should differ after moving on the clone")
	require.NotNil(t, b.PieceAt(Loc(2, 1)), "Original should be untouched")
	require.False(t, b.PieceAt(Loc(2, 1)).HasMoved, "Original pieces should not share state")

	require.False(t, NewBoard(8, 8).Equal(NewBoard(8, 7)), "Different dimensions are never equal")
}

func TestBoardPieces(t *testing.T) {
	b := MustParseBoard(
		"C.c",
		".C.",
	)
	red := b.Pieces(Red)
	require.Len(t, red, 2)
	require.Equal(t, Loc(0, 0), red[0].Loc, "Pieces come in row-major order")
	require.Equal(t, Loc(1, 1), red[1].Loc)
	require.Len(t, b.Pieces(Black), 1)
}
