package game

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// TempoBonus rewards having the move.
const TempoBonus = 3.0

// advanceWeight scales how far soldiers and pawns have advanced in EvaluatePositional.
const advanceWeight = 0.1

// EvaluationByName maps "material" (or "") and "positional" to their functions.
func EvaluationByName(name string) (Evaluate, error) {
	switch strings.ToLower(name) {
	case "", "material":
		return EvaluateMaterial, nil
	case "positional":
		return EvaluatePositional, nil
	default:
		return nil, errors.Errorf("unknown evaluation %q", name)
	}
}

// Terminal returns ±math.MaxFloat64 from side's perspective when the side to
// move, or failing that its opponent, is defeated.
func Terminal(g *Game, side Loyalty) (float64, bool) {
	for _, l := range []Loyalty{g.turn, g.turn.Other()} {
		if !g.IsDefeated(l) {
			continue
		}
		if l == side {
			return -math.MaxFloat64, true
		}
		return math.MaxFloat64, true
	}
	return 0, false
}

// Material sums the worth of side's pieces on the board.
func Material(g *Game, side Loyalty) float64 {
	return lo.SumBy(g.board.Pieces(side), func(p *Piece) float64 { return p.Worth })
}

// EvaluateMaterial is own material minus the opponent's, plus the tempo bonus
// for the side to move.
func EvaluateMaterial(g *Game, side Loyalty) float64 {
	if v, ok := Terminal(g, side); ok {
		return v
	}
	return materialScore(g, side)
}

// EvaluatePositional adds to EvaluateMaterial a small bonus for how far each
// soldier and pawn has advanced.
func EvaluatePositional(g *Game, side Loyalty) float64 {
	if v, ok := Terminal(g, side); ok {
		return v
	}
	return materialScore(g, side) + advanceWeight*(advancement(g, side)-advancement(g, side.Other()))
}

func materialScore(g *Game, side Loyalty) float64 {
	score := Material(g, side) - Material(g, side.Other())
	if g.turn == side {
		return score + TempoBonus
	}
	return score - TempoBonus
}

func advancement(g *Game, side Loyalty) float64 {
	last := g.board.rows - 1
	return lo.SumBy(g.board.Pieces(side), func(p *Piece) float64 {
		if p.Kind != Soldier && p.Kind != Pawn {
			return 0
		}
		if side == Red {
			return float64(p.Loc.Row)
		}
		return float64(last - p.Loc.Row)
	})
}
