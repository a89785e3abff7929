package game

// Rules holds what differs between the variants. Piece movement lives on Piece.
type Rules interface {
	Variant() Variant
	// Setup returns the starting board.
	Setup() *Board
	// FirstTurn picks the side that moves first.
	FirstTurn() Loyalty
	// Promotion returns the kind p becomes after arriving on its current cell.
	Promotion(p *Piece, b *Board) (Kind, bool)
}

func RulesFor(v Variant) Rules {
	switch v {
	case Checkers:
		return NewCheckersRules()
	case Chess:
		return NewChessRules()
	default:
		panic("unknown variant " + v.String())
	}
}

// farRow is the row a piece of side must reach to promote.
func farRow(b *Board, side Loyalty) int {
	if side == Red {
		return b.Rows() - 1
	}
	return 0
}
