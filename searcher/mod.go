package searcher

import (
	"context"
	"runtime"
	"time"

	"duel/game"
	"duel/meta"
)

// Config is the plain form of the search settings.
type Config struct {
	Depth      int           // Plies; zero means meta.DEFAULT_DEPTH unless a budget is set
	TimeBudget time.Duration // Non-zero switches to iterative deepening
	Parallel   bool          // Score root moves on one goroutine per CPU (fixed depth only)
}

// Options translates the config into Minimax options.
func (c Config) Options() []Option {
	depth := c.Depth
	if depth <= 0 && c.TimeBudget <= 0 {
		depth = meta.DEFAULT_DEPTH
	}
	options := []Option{WithDepth(depth), WithDuration(c.TimeBudget)}
	if c.Parallel && c.TimeBudget <= 0 {
		options = append(options, WithParallel(runtime.NumCPU()))
	}
	return options
}

// BestMove searches g for side's best move. Ties are broken at random.
func BestMove(ctx context.Context, g *game.Game, side game.Loyalty, cfg Config) (game.Move, error) {
	move, _, err := NewMinimax(cfg.Options()...).BestMove(ctx, g, side)
	return move, err
}
