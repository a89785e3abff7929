package game

import "github.com/samber/lo"

// checkerMoves returns single diagonal steps and capture chains along dirs.
// Captures are compulsory per piece: if this piece can capture, its steps are dropped.
func (p *Piece) checkerMoves(b *Board, dirs []direction) []Move {
	var jumps []Move
	for _, path := range p.nextJumps(b, p.Loc, dirs, nil) {
		if len(path) > 1 {
			jumps = append(jumps, newJumpMove(path))
		}
	}
	if len(jumps) > 0 {
		return jumps
	}

	var steps []Move
	for _, d := range dirs {
		to := p.Loc.Offset(d.dr, d.dc)
		if b.IsValid(to) && b.PieceAt(to) == nil {
			steps = append(steps, Move{Path: []Location{p.Loc, to}})
		}
	}
	return steps
}

// nextJumps returns every maximal chain of jumps starting at from. jumped holds
// the cells already captured earlier in the chain, which may not be jumped again.
// The board is untouched while chains are explored, so the piece's own start
// cell stays occupied and cannot be landed on.
func (p *Piece) nextJumps(b *Board, from Location, dirs []direction, jumped []Location) [][]Location {
	var paths [][]Location
	for _, d := range dirs {
		over := from.Offset(d.dr, d.dc)
		land := from.Offset(2*d.dr, 2*d.dc)
		if !b.IsValid(land) || b.PieceAt(land) != nil {
			continue
		}
		victim := b.PieceAt(over)
		if victim == nil || victim.Loyalty == p.Loyalty || lo.Contains(jumped, over) {
			continue
		}

		chain := append(append(make([]Location, 0, len(jumped)+1), jumped...), over)
		for _, rest := range p.nextJumps(b, land, dirs, chain) {
			paths = append(paths, append([]Location{from}, rest...))
		}
	}
	if len(paths) == 0 {
		return [][]Location{{from}}
	}
	return paths
}
