package game

import "fmt"

// Board is a rectangular grid of cells, each holding at most one piece.
type Board struct {
	rows  int
	cols  int
	cells []*Piece
}

func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", rows, cols))
	}
	return &Board{rows: rows, cols: cols, cells: make([]*Piece, rows*cols)}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// IsValid reports whether loc lies on the board.
func (b *Board) IsValid(loc Location) bool {
	return loc.Row >= 0 && loc.Row < b.rows && loc.Col >= 0 && loc.Col < b.cols
}

func (b *Board) index(loc Location) int {
	if !b.IsValid(loc) {
		panic(fmt.Sprintf("location %s is off the %dx%d board", loc, b.rows, b.cols))
	}
	return loc.Row*b.cols + loc.Col
}

// PieceAt returns the occupant of loc, or nil. Panics if loc is off the board.
func (b *Board) PieceAt(loc Location) *Piece {
	return b.cells[b.index(loc)]
}

// Place puts p on loc and updates p.Loc. Placing nil clears the cell.
// Panics if another piece already holds loc; Remove it first.
func (b *Board) Place(p *Piece, loc Location) {
	idx := b.index(loc)
	if p != nil {
		if occupant := b.cells[idx]; occupant != nil && occupant != p {
			panic(fmt.Sprintf("cannot place %s on %s held by %s", p, loc, occupant))
		}
		p.Loc = loc
	}
	b.cells[idx] = p
}

// Remove clears loc and returns what was there.
func (b *Board) Remove(loc Location) *Piece {
	idx := b.index(loc)
	p := b.cells[idx]
	b.cells[idx] = nil
	return p
}

// MovePiece relocates the piece at start to end and marks it as moved.
// Panics if start is empty or end is held by another piece.
func (b *Board) MovePiece(start, end Location) *Piece {
	p := b.PieceAt(start)
	if p == nil {
		panic(fmt.Sprintf("no piece to move at %s", start))
	}
	if occupant := b.PieceAt(end); occupant != nil && occupant != p {
		panic(fmt.Sprintf("cannot move %s onto %s", p, occupant))
	}
	b.Remove(start)
	b.Place(p, end)
	p.HasMoved = true
	return p
}

// Pieces returns the pieces of one side in row-major order.
func (b *Board) Pieces(side Loyalty) []*Piece {
	var pieces []*Piece
	for _, p := range b.cells {
		if p != nil && p.Loyalty == side {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Clone deep-copies the board and every piece on it.
func (b *Board) Clone() *Board {
	c := &Board{rows: b.rows, cols: b.cols, cells: make([]*Piece, len(b.cells))}
	for i, p := range b.cells {
		if p != nil {
			cp := *p
			c.cells[i] = &cp
		}
	}
	return c
}

// Equal holds when both boards share dimensions and every cell pair is equal.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, p := range b.cells {
		if !p.Equal(other.cells[i]) {
			return false
		}
	}
	return true
}
