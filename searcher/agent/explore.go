package agent

import (
	"context"
	"math"

	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type explorationAgent struct {
	minimax     *searcher.Minimax
	temperature float64
	rng         *rand.Rand
}

// NewExplorationAgent returns an agent for self-play that samples moves in
// proportion to a softmax of their scores. Lower temperatures play closer to
// the best move; zero always plays one of the best. A zero seed is replaced by
// a random one.
func NewExplorationAgent(minimax *searcher.Minimax, temperature float64, seed uint64) Agent {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64)
	}
	src := &rand.LockedSource{}
	src.Seed(seed)
	return explorationAgent{minimax: minimax, temperature: temperature, rng: rand.New(src)}
}

func (a explorationAgent) FindMove(ctx context.Context, g *game.Game) (game.Move, metrics.SearchMetric, error) {
	scores, policy, metric, err := a.policy(ctx, g)
	if err != nil {
		return game.Move{}, metric, err
	}
	return scores[sample(policy, a.rng.Float64())].Move, metric, nil
}

// policy scores the root moves exactly and turns the scores into move probabilities.
func (a explorationAgent) policy(ctx context.Context, g *game.Game) ([]searcher.ScoredMove, []float64, metrics.SearchMetric, error) {
	scores, metric, err := a.minimax.ScoreMoves(ctx, g)
	if err != nil {
		return nil, nil, metric, err
	}
	if len(scores) == 0 {
		return nil, nil, metric, errors.Wrapf(searcher.ErrNoLegalMoves, "%s cannot move", g.Turn())
	}
	policy := adjustTemperature(lo.Map(scores, func(s searcher.ScoredMove, _ int) float64 { return s.Score }), a.temperature)
	return scores, policy, metric, nil
}

// adjustTemperature turns scores into move probabilities.
func adjustTemperature(scores []float64, temperature float64) []float64 {
	top := lo.Max(scores)
	probs := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		switch {
		case temperature <= 0:
			if s == top {
				probs[i] = 1
			}
		default:
			probs[i] = math.Exp((s - top) / temperature)
		}
		sum += probs[i]
	}
	// Normalize
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// sample returns the index whose cumulative probability first exceeds draw.
func sample(policy []float64, draw float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if draw < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
