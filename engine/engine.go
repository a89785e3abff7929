package engine

import (
	"context"

	"duel/experiments/metrics"
	"duel/game"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
	// Game is a snapshot of the current position
	Game() *game.Game
}
