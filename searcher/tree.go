package searcher

import (
	"context"
	"math"

	"duel/game"

	"github.com/rs/zerolog/log"
)

// ScoredMove pairs a root move with its minimax score.
type ScoredMove struct {
	Move  game.Move
	Score float64
}

// Tree is a persistent search tree deepened one ply per IncreaseDepth call.
// Subtrees are kept between passes and children are visited in the order of
// the previous pass' values, which makes the cutoffs of the next pass cheaper.
type Tree struct {
	root   *node
	search search
	depth  int
	scores []ScoredMove // From the last completed pass
}

// Depth is the depth of the last completed pass.
func (t *Tree) Depth() int {
	return t.depth
}

// IncreaseDepth searches the tree one ply deeper. A pass interrupted by ctx
// leaves the results of the previous pass in place and returns ctx's error.
func (t *Tree) IncreaseDepth(ctx context.Context) error {
	s := t.search
	s.ctx = ctx
	s.limit = t.depth + 1

	children := t.root.expand()
	if len(children) == 0 {
		t.root.value = s.leaf(t.root)
		t.depth = s.limit
		t.scores = nil
		return nil
	}
	if t.depth > 0 {
		orderChildren(children, true)
	}

	values, err := s.scoreSerial(children)
	if err != nil {
		return err
	}

	t.depth = s.limit
	t.scores = make([]ScoredMove, len(children))
	top := math.Inf(-1)
	for i, child := range children {
		t.scores[i] = ScoredMove{Move: child.move, Score: values[i]}
		top = max(top, values[i])
	}
	t.root.value = top
	s.metrics.SetDepthReached(t.depth)
	log.Debug().Int("plies", t.depth).Float64("value", top).Msg("deepened")
	return nil
}

// Value is the root value of the last completed pass.
func (t *Tree) Value() float64 {
	return t.root.value
}

// Scores lists the root moves with the scores of the last completed pass, in
// the order they were searched.
func (t *Tree) Scores() []ScoredMove {
	return t.scores
}
