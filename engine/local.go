package engine

import (
	"context"
	"time"

	"duel/experiments/metrics"
	"duel/game"
	"duel/gamemaster"
	"duel/meta"
	"duel/searcher/agent"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type localEngine struct {
	referee  *gamemaster.Referee
	updates  gamemaster.UpdateGetter
	agents   [2]agent.Agent // Indexed by loyalty
	maxTurns int
}

// LocalEngine plays g in-process between two agents, Red first in the slice.
// maxTurns <= 0 falls back to meta.MAX_TURNS.
func LocalEngine(agents []agent.Agent, g *game.Game, maxTurns int) Engine {
	if len(agents) != 2 {
		panic("need exactly two agents, one per side")
	}
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	referee, updates := gamemaster.NewReferee(g)
	return &localEngine{
		referee:  referee,
		updates:  updates,
		agents:   [2]agent.Agent{agents[0], agents[1]},
		maxTurns: maxTurns,
	}
}

func (e *localEngine) Game() *game.Game {
	return e.referee.Game()
}

// Run executes the game loop until a side is defeated or the turn limit hits.
func (e *localEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := e.referee.Game()
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		Variant:        start.Variant().String(),
		StartingPlayer: start.Turn().String(),
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	logger.Info().Stringer("variant", start.Variant()).Stringer("starting", start.Turn()).Msg("starting game")

	seen := map[uint64]int{start.Hash(): 1}
	var moveMetrics []metrics.MoveMetric
	for step := 1; step <= e.maxTurns && !e.referee.IsOver(); step++ {
		if err := ctx.Err(); err != nil {
			return "", gameMetric, moveMetrics, err
		}

		g := e.referee.Game()
		side := g.Turn()
		move, searchMetric, err := e.agents[side].FindMove(ctx, g)
		if err != nil {
			return "", gameMetric, moveMetrics, errors.WithMessagef(err, "%s failed to find a move at step %d", side, step)
		}
		if err := e.referee.Play(move); err != nil {
			return "", gameMetric, moveMetrics, errors.WithMessagef(err, "step %d", step)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		if _, after, ok := e.updates(); ok {
			hash := after.Hash()
			seen[hash]++
			if seen[hash] > 1 {
				gameMetric.Repetitions++
			}
			if seen[hash] == meta.REPETITION_LIMIT {
				logger.Warn().Int("step", step).Uint64("position", hash).Msg("position repeated")
			}
		}
		logger.Debug().Int("step", step).Stringer("side", side).Stringer("move", move).Msg("played")
	}

	winner := ""
	if w, ok := e.referee.Game().Winner(); ok {
		winner = w.String()
	}
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == "" {
		logger.Info().Int("moves", gameMetric.TotalMoves).Msg("stopped without a winner")
	} else {
		logger.Info().Str("winner", winner).Int("moves", gameMetric.TotalMoves).Msg("game over")
	}
	return winner, gameMetric, moveMetrics, nil
}
