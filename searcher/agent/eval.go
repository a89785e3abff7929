package agent

import (
	"context"

	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
}

// NewEvaluationAgent returns an agent that always plays a best scoring move.
func NewEvaluationAgent(minimax *searcher.Minimax) Agent {
	return evaluationAgent{minimax: minimax}
}

func (a evaluationAgent) FindMove(ctx context.Context, g *game.Game) (game.Move, metrics.SearchMetric, error) {
	return a.minimax.BestMove(ctx, g, g.Turn())
}
