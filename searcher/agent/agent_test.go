package agent

import (
	"context"
	"math"
	"testing"

	"duel/game"
	"duel/searcher"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestAdjustTemperature(t *testing.T) {
	t.Run("probabilities sum to one and follow the scores", func(t *testing.T) {
		probs := adjustTemperature([]float64{1, 3, 2}, 1)
		require.InDelta(t, 1.0, lo.Sum(probs), 1e-9)
		require.Greater(t, probs[1], probs[2])
		require.Greater(t, probs[2], probs[0])
		require.InDelta(t, math.Exp(-1), probs[2]/probs[1], 1e-9)
	})

	t.Run("zero temperature spreads over the best only", func(t *testing.T) {
		require.Equal(t, []float64{0, 0.5, 0, 0.5}, adjustTemperature([]float64{1, 4, 2, 4}, 0))
	})

	t.Run("decided games do not overflow", func(t *testing.T) {
		probs := adjustTemperature([]float64{-math.MaxFloat64, math.MaxFloat64, 3}, 1)
		require.Equal(t, []float64{0, 1, 0}, probs)

		probs = adjustTemperature([]float64{-math.MaxFloat64, -math.MaxFloat64}, 1)
		require.Equal(t, []float64{0.5, 0.5}, probs)
	})
}

func TestSample(t *testing.T) {
	policy := []float64{0.2, 0.5, 0.3}
	require.Equal(t, 0, sample(policy, 0.1))
	require.Equal(t, 1, sample(policy, 0.2))
	require.Equal(t, 2, sample(policy, 0.75))
	require.Equal(t, 2, sample(policy, 1.0), "Rounding falls back to the last move")
}

func TestAgents(t *testing.T) {
	ctx := context.Background()
	g := game.New(game.Checkers, game.WithTurn(game.Red), game.WithBoard(game.MustParseBoard(
		"C....",
		".c...",
		".....",
		"...c.",
		".....",
	)))
	capture := game.Move{
		Path:     []game.Location{game.Loc(0, 0), game.Loc(2, 2), game.Loc(4, 4)},
		Captured: []game.Location{game.Loc(1, 1), game.Loc(3, 3)},
	}

	t.Run("evaluation agent plays the capture", func(t *testing.T) {
		a := NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(2)))
		m, _, err := a.FindMove(ctx, g)
		require.NoError(t, err)
		require.Equal(t, capture, m)
	})

	t.Run("exploration agent only has the capture to choose", func(t *testing.T) {
		a := NewExplorationAgent(searcher.NewMinimax(searcher.WithDepth(2)), 1, 3)
		m, _, err := a.FindMove(ctx, g)
		require.NoError(t, err)
		require.Equal(t, capture, m)
	})

	t.Run("exploration agent plays legal opening moves", func(t *testing.T) {
		opening := game.New(game.Chess)
		a := NewExplorationAgent(searcher.NewMinimax(searcher.WithDepth(1)), 2, 11)
		m, metric, err := a.FindMove(ctx, opening)
		require.NoError(t, err)
		require.True(t, lo.ContainsBy(opening.LegalMoves(game.Red), func(l game.Move) bool { return l.Equal(m) }))
		require.Zero(t, metric.Nodes, "Metrics are off by default")
	})

	t.Run("agents report a side without moves", func(t *testing.T) {
		lost := game.New(game.Checkers, game.WithTurn(game.Red), game.WithBoard(game.MustParseBoard("c..")))
		_, _, err := NewExplorationAgent(searcher.NewMinimax(searcher.WithDepth(1)), 1, 0).FindMove(ctx, lost)
		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
		_, _, err = NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(1))).FindMove(ctx, lost)
		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
	})
}

func TestExplorationPolicy(t *testing.T) {
	ctx := context.Background()
	g := game.New(game.Checkers, game.WithTurn(game.Red), game.WithBoard(game.MustParseBoard(
		"........",
		"..C.C...",
		".C...C..",
		"..c.....",
		".....c..",
		"......D.",
		".c...c..",
		"....d...",
	)))

	t.Run("probabilities follow the scores of an unpruned search", func(t *testing.T) {
		a := NewExplorationAgent(searcher.NewMinimax(searcher.WithDepth(4)), 1, 5).(explorationAgent)
		scores, policy, _, err := a.policy(ctx, g)
		require.NoError(t, err)

		full, _, err := searcher.NewMinimax(searcher.WithDepth(4), searcher.WithPruning(false)).ScoreMoves(ctx, g)
		require.NoError(t, err)
		require.Equal(t, full, scores, "Refuted moves are scored exactly, not by their bounds")

		want := adjustTemperature(lo.Map(full, func(s searcher.ScoredMove, _ int) float64 { return s.Score }), 1)
		require.InDeltaSlice(t, want, policy, 1e-12)
	})

	t.Run("a zero seed draws a random one", func(t *testing.T) {
		m := searcher.NewMinimax(searcher.WithDepth(1))
		a := NewExplorationAgent(m, 1, 0).(explorationAgent)
		b := NewExplorationAgent(m, 1, 0).(explorationAgent)
		require.NotEqual(t, a.rng.Uint64(), b.rng.Uint64())
	})
}
