package game

import "fmt"

// Kind enumerates the closed set of piece kinds across both variants.
type Kind int8

const (
	Soldier Kind = iota
	CheckersKing
	ChessKing
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{
	Soldier:      "soldier",
	CheckersKing: "checkers king",
	ChessKing:    "king",
	Queen:        "queen",
	Rook:         "rook",
	Bishop:       "bishop",
	Knight:       "knight",
	Pawn:         "pawn",
}

var worths = [...]float64{
	Soldier:      3,
	CheckersKing: 5,
	ChessKing:    50,
	Queen:        9,
	Rook:         5,
	Bishop:       3,
	Knight:       3,
	Pawn:         1,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
	return kindNames[k]
}

// Worth is the material value of the kind.
func (k Kind) Worth() float64 {
	return worths[k]
}

// Piece is owned by the board cell it occupies; Loc mirrors that cell.
type Piece struct {
	Kind     Kind
	Loyalty  Loyalty
	Worth    float64
	HasMoved bool
	Loc      Location
}

func NewPiece(kind Kind, loyalty Loyalty) *Piece {
	return &Piece{Kind: kind, Loyalty: loyalty, Worth: kind.Worth()}
}

// Equal compares kind, loyalty and worth. Position and move history are ignored.
func (p *Piece) Equal(other *Piece) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Kind == other.Kind && p.Loyalty == other.Loyalty && p.Worth == other.Worth
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Loyalty, p.Kind, p.Loc)
}

func (p *Piece) promote(kind Kind) {
	p.Kind = kind
	p.Worth = kind.Worth()
}

// GenerateMoves lists the moves this piece can make on b. The board is not modified.
func (p *Piece) GenerateMoves(b *Board) []Move {
	switch p.Kind {
	case Soldier:
		f := p.Loyalty.Forward()
		return p.checkerMoves(b, []direction{{f, -1}, {f, 1}})
	case CheckersKing:
		return p.checkerMoves(b, diagonals)
	case ChessKing:
		return p.stepMoves(b, neighbours)
	case Knight:
		return p.stepMoves(b, knightHops)
	case Bishop:
		return p.slideMoves(b, diagonals)
	case Rook:
		return p.slideMoves(b, orthogonals)
	case Queen:
		return p.slideMoves(b, neighbours)
	case Pawn:
		return p.pawnMoves(b)
	default:
		panic(fmt.Sprintf("unknown piece kind %d", p.Kind))
	}
}

// canEnter reports whether the piece may step onto loc: empty or enemy held.
func (p *Piece) canEnter(b *Board, loc Location) bool {
	if !b.IsValid(loc) {
		return false
	}
	occupant := b.PieceAt(loc)
	return occupant == nil || occupant.Loyalty != p.Loyalty
}
