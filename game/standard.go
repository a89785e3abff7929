package game

type CheckersRules struct{}

func NewCheckersRules() *CheckersRules {
	return &CheckersRules{}
}

func (r *CheckersRules) Variant() Variant { return Checkers }

// Setup fills the dark squares of the three home rows of each side.
func (r *CheckersRules) Setup() *Board {
	return MustParseBoard(
		".C.C.C.C",
		"C.C.C.C.",
		".C.C.C.C",
		"........",
		"........",
		"c.c.c.c.",
		".c.c.c.c",
		"c.c.c.c.",
	)
}

// FirstTurn is random in checkers.
func (r *CheckersRules) FirstTurn() Loyalty {
	return RandomLoyalty()
}

func (r *CheckersRules) Promotion(p *Piece, b *Board) (Kind, bool) {
	if p.Kind == Soldier && p.Loc.Row == farRow(b, p.Loyalty) {
		return CheckersKing, true
	}
	return p.Kind, false
}

type ChessRules struct{}

func NewChessRules() *ChessRules {
	return &ChessRules{}
}

func (r *ChessRules) Variant() Variant { return Chess }

// Setup is the usual opening position with Red on rows 0 and 1.
func (r *ChessRules) Setup() *Board {
	return MustParseBoard(
		"RNBQKBNR",
		"PPPPPPPP",
		"........",
		"........",
		"........",
		"........",
		"pppppppp",
		"rnbqkbnr",
	)
}

// FirstTurn is always Red in chess.
func (r *ChessRules) FirstTurn() Loyalty {
	return Red
}

func (r *ChessRules) Promotion(p *Piece, b *Board) (Kind, bool) {
	if p.Kind == Pawn && p.Loc.Row == farRow(b, p.Loyalty) {
		return Queen, true
	}
	return p.Kind, false
}
