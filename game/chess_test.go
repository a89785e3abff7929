package game

import (
	"strings"
	"testing"

	"github.com/notnil/chess"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var oracleKinds = map[chess.PieceType]Kind{
	chess.King:   ChessKing,
	chess.Queen:  Queen,
	chess.Rook:   Rook,
	chess.Bishop: Bishop,
	chess.Knight: Knight,
	chess.Pawn:   Pawn,
}

// fenRows converts a FEN placement field to ParseBoard rows, rank 1 first.
func fenRows(placement string) []string {
	ranks := strings.Split(placement, "/")
	rows := make([]string, len(ranks))
	for i, rank := range ranks {
		var sb strings.Builder
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				sb.WriteString(strings.Repeat(".", int(ch-'0')))
				continue
			}
			sb.WriteRune(ch)
		}
		rows[len(ranks)-1-i] = sb.String()
	}
	return rows
}

// oracleCounts counts white's legal moves per kind, skipping the king whose
// moves depend on check rules this engine does not model.
func oracleCounts(t *testing.T, fen string) map[Kind]int {
	opt, err := chess.FEN(fen)
	require.NoError(t, err)
	pos := chess.NewGame(opt).Position()

	counts := map[Kind]int{}
	for _, m := range pos.ValidMoves() {
		kind := oracleKinds[pos.Board().Piece(m.S1()).Type()]
		if kind != ChessKing {
			counts[kind]++
		}
	}
	return counts
}

func engineCounts(fen string) map[Kind]int {
	b := MustParseBoard(fenRows(strings.Fields(fen)[0])...)
	g := New(Chess, WithBoard(b), WithTurn(Red))

	counts := map[Kind]int{}
	for _, m := range g.LegalMoves(Red) {
		kind := b.PieceAt(m.Start()).Kind
		if kind != ChessKing {
			counts[kind]++
		}
	}
	return counts
}

func TestChessMovesAgainstOracle(t *testing.T) {
	positions := map[string]string{
		"opening":          "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"open pieces":      "4k3/8/8/3q4/8/2N1B3/8/R3K2R w - - 0 1",
		"queen and rooks":  "k7/8/8/8/3Q4/8/1R6/4K2R w - - 0 1",
		"pawns and knight": "4k3/8/2p1p3/3P4/8/5N2/P7/4K3 w - - 0 1",
	}
	for name, fen := range positions {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, oracleCounts(t, fen), engineCounts(fen), "Move counts per kind should match")
		})
	}
}

func TestChessPieces(t *testing.T) {
	t.Run("pawn double step only before moving", func(t *testing.T) {
		g := New(Chess, WithTurn(Red))
		pawn := g.Board().PieceAt(Loc(1, 4))
		require.Len(t, pawn.GenerateMoves(g.Board()), 2)

		g.ApplyMove(Move{Path: []Location{Loc(1, 4), Loc(2, 4)}})
		require.True(t, pawn.HasMoved)
		require.Len(t, pawn.GenerateMoves(g.Board()), 1)
	})

	t.Run("pawn on the far row becomes a queen", func(t *testing.T) {
		g := New(Chess, WithTurn(Red), WithBoard(MustParseBoard(
			"K...",
			"....",
			"P...",
			"...k",
		)))
		g.ApplyMove(Move{Path: []Location{Loc(2, 0), Loc(3, 0)}})
		queen := g.Board().PieceAt(Loc(3, 0))
		require.Equal(t, Queen, queen.Kind)
		require.Equal(t, 9.0, queen.Worth)
	})

	t.Run("sliders stop at the first enemy and capture it", func(t *testing.T) {
		b := MustParseBoard(
			"R..p",
			"....",
			"P...",
		)
		moves := b.PieceAt(Loc(0, 0)).GenerateMoves(b)
		require.Len(t, moves, 4)
		captures := lo.Filter(moves, func(m Move, _ int) bool { return m.IsCapture() })
		require.Len(t, captures, 1)
		require.Equal(t, []Location{Loc(0, 3)}, captures[0].Captured)
	})

	t.Run("capturing the king leaves black without moves", func(t *testing.T) {
		g := New(Chess, WithTurn(Red), WithBoard(MustParseBoard(
			"Q..k",
		)))
		g.ApplyMove(Move{Path: []Location{Loc(0, 0), Loc(0, 3)}, Captured: []Location{Loc(0, 3)}})
		require.True(t, g.IsDefeated(Black))
		require.Equal(t, []*Piece{{Kind: ChessKing, Loyalty: Black, Worth: 50, Loc: Loc(0, 3)}}, g.Captured(Red))
	})
}
