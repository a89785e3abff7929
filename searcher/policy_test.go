package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBest(t *testing.T) {
	t.Run("collects every maximal index", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 4}, best([]float64{1, 3, 3, 2, 3}))
	})

	t.Run("a later maximum resets the ties", func(t *testing.T) {
		require.Equal(t, []int{3}, best([]float64{2, 2, 2, 5}))
	})

	t.Run("no scores, no indices", func(t *testing.T) {
		require.Empty(t, best(nil))
	})
}

func TestTieBreakerPick(t *testing.T) {
	scores := []float64{1, 3, 3, 2, 3}

	t.Run("only ever picks a tied maximum, and each of them", func(t *testing.T) {
		tb := newTieBreaker(7)
		seen := map[int]int{}
		for i := 0; i < 300; i++ {
			seen[tb.pick(scores)]++
		}
		require.ElementsMatch(t, []int{1, 2, 4}, keys(seen))
	})

	t.Run("same seed, same choices", func(t *testing.T) {
		a, b := newTieBreaker(42), newTieBreaker(42)
		for i := 0; i < 20; i++ {
			require.Equal(t, a.pick(scores), b.pick(scores))
		}
	})

	t.Run("a single maximum needs no randomness", func(t *testing.T) {
		require.Equal(t, 2, newTieBreaker(1).pick([]float64{0, 1, 9}))
	})

	t.Run("panics without scores", func(t *testing.T) {
		require.Panics(t, func() { newTieBreaker(1).pick(nil) })
	})
}

func keys(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
