package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// tieBreaker chooses uniformly among equally scored moves. The source is
// locked, so one tieBreaker may serve concurrent searches.
type tieBreaker struct {
	rng *rand.Rand
}

func newTieBreaker(seed uint64) *tieBreaker {
	src := &rand.LockedSource{}
	src.Seed(seed)
	return &tieBreaker{rng: rand.New(src)}
}

// best returns the indices holding the maximum score, tracked in one pass.
func best(scores []float64) []int {
	top := math.Inf(-1)
	var tied []int
	for i, v := range scores {
		switch {
		case v > top:
			top = v
			tied = append(tied[:0], i)
		case v == top:
			tied = append(tied, i)
		}
	}
	return tied
}

// pick returns the index of a uniformly chosen maximal score.
func (t *tieBreaker) pick(scores []float64) int {
	tied := best(scores)
	if len(tied) == 0 {
		panic("no scores to choose from")
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[t.rng.Intn(len(tied))]
}
