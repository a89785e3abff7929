package game

// stepMoves covers kings and knights: one hop per offset onto an empty or enemy cell.
func (p *Piece) stepMoves(b *Board, offsets []direction) []Move {
	var moves []Move
	for _, d := range offsets {
		to := p.Loc.Offset(d.dr, d.dc)
		if p.canEnter(b, to) {
			moves = append(moves, newStepMove(b, p.Loc, to))
		}
	}
	return moves
}

// slideMoves walks each ray until the edge, an own piece, or the first enemy (captured).
func (p *Piece) slideMoves(b *Board, rays []direction) []Move {
	var moves []Move
	for _, d := range rays {
		for to := p.Loc.Offset(d.dr, d.dc); b.IsValid(to); to = to.Offset(d.dr, d.dc) {
			occupant := b.PieceAt(to)
			if occupant == nil {
				moves = append(moves, Move{Path: []Location{p.Loc, to}})
				continue
			}
			if occupant.Loyalty != p.Loyalty {
				moves = append(moves, Move{Path: []Location{p.Loc, to}, Captured: []Location{to}})
			}
			break
		}
	}
	return moves
}

// pawnMoves advances one cell, or two from an unmoved pawn, and captures diagonally forward.
func (p *Piece) pawnMoves(b *Board) []Move {
	var moves []Move
	f := p.Loyalty.Forward()

	one := p.Loc.Offset(f, 0)
	if b.IsValid(one) && b.PieceAt(one) == nil {
		moves = append(moves, Move{Path: []Location{p.Loc, one}})
		two := one.Offset(f, 0)
		if !p.HasMoved && b.IsValid(two) && b.PieceAt(two) == nil {
			moves = append(moves, Move{Path: []Location{p.Loc, two}})
		}
	}

	for _, dc := range []int{-1, 1} {
		to := p.Loc.Offset(f, dc)
		if !b.IsValid(to) {
			continue
		}
		if occupant := b.PieceAt(to); occupant != nil && occupant.Loyalty != p.Loyalty {
			moves = append(moves, Move{Path: []Location{p.Loc, to}, Captured: []Location{to}})
		}
	}
	return moves
}
