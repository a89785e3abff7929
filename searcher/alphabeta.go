package searcher

import (
	"context"
	"math"

	"duel/experiments/metrics"
	"duel/game"
)

// search carries the settings of one minimax pass. It is copied per worker.
type search struct {
	ctx      context.Context
	side     game.Loyalty // Side the values are scored for
	evaluate game.Evaluate
	limit    int  // Nodes at this depth are evaluated, not expanded
	prune    bool // Alpha-beta cutoffs
	retain   bool // Keep subtrees for the next iterative deepening pass
	exact    bool // Search every root child with a full window
	metrics  metrics.Collector
}

// minimax returns the fail-soft alpha-beta value of n. Nodes where the searching
// side moves maximize, the others minimize.
func (s *search) minimax(n *node, alpha, beta float64) (float64, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	s.metrics.AddNode()

	if n.depth >= s.limit {
		return s.leaf(n), nil
	}
	children := n.expand()
	if len(children) == 0 {
		// The side to move is defeated.
		return s.leaf(n), nil
	}
	if !s.retain {
		defer n.release()
	}

	maximizing := n.game.Turn() == s.side
	if s.retain && n.depth+1 < s.limit {
		orderChildren(children, maximizing)
	}

	value := math.Inf(1)
	if maximizing {
		value = math.Inf(-1)
	}
	for _, child := range children {
		v, err := s.minimax(child, alpha, beta)
		if err != nil {
			return 0, err
		}
		if maximizing {
			value = max(value, v)
			alpha = max(alpha, v)
		} else {
			value = min(value, v)
			beta = min(beta, v)
		}
		if s.prune && alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	n.value = value
	return value, nil
}

func (s *search) leaf(n *node) float64 {
	s.metrics.AddLeaf()
	n.value = s.evaluate(n.game, s.side)
	return n.value
}

// scoreSerial searches the root children in order. Unless exact is set,
// siblings share the best value so far as alpha, so a child proven worse
// reports an upper bound; a child whose bound equals the best is searched
// again with a full window so that ties are exact.
func (s *search) scoreSerial(children []*node) ([]float64, error) {
	scores := make([]float64, len(children))
	best := math.Inf(-1)
	for i, child := range children {
		alpha := best
		if s.exact {
			alpha = math.Inf(-1)
		}
		v, err := s.minimax(child, alpha, math.Inf(1))
		if err != nil {
			return nil, err
		}
		if s.prune && !s.exact && v == best {
			if v, err = s.minimax(child, math.Inf(-1), math.Inf(1)); err != nil {
				return nil, err
			}
		}
		scores[i] = v
		best = max(best, v)
	}
	return scores, nil
}
