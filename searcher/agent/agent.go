package agent

import (
	"context"

	"duel/experiments/metrics"
	"duel/game"
)

type Agent interface {
	// FindMove returns the move for the side to move in g and the search metrics (if collected)
	FindMove(ctx context.Context, g *game.Game) (game.Move, metrics.SearchMetric, error)
}
