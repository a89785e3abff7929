package searcher

import (
	"context"
	"math"
	"time"

	"duel/experiments/metrics"
	"duel/game"
	"duel/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

var (
	ErrNotOnTurn    = errors.New("side is not on turn")
	ErrNoLegalMoves = errors.New("no legal moves")
)

type Option func(m *Minimax)

// Minimax searches for the best move of the side to move with alpha-beta
// minimax, either to a fixed depth or by iterative deepening within a time
// budget. A Minimax runs one search at a time.
type Minimax struct {
	depth      int
	duration   time.Duration
	maxDepth   int
	goroutines int
	prune      bool
	evaluate   game.Evaluate
	ties       *tieBreaker
	metrics    metrics.Collector
}

// WithDepth searches every move to a fixed depth in plies. Combined with
// WithDuration it caps the iterative deepening instead.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDuration deepens iteratively until the budget is spent.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithMaxDepth caps iterative deepening under a time budget.
func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithParallel scores the root moves on a pool of goroutines. Fixed depth only.
func WithParallel(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.ties = newTieBreaker(seed)
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithPruning toggles alpha-beta cutoffs. Values are the same either way.
func WithPruning(enabled bool) Option {
	return func(m *Minimax) {
		m.prune = enabled
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxDepth:   meta.MAX_SEARCH_DEPTH,
		goroutines: 1,
		prune:      true,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.depth <= 0 && m.duration <= 0 {
		panic("Must specify search depth or duration")
	}
	if m.ties == nil {
		m.ties = newTieBreaker(frand.Uint64n(math.MaxUint64))
	}
	if m.duration > 0 && m.goroutines > 1 {
		log.Warn().Int("goroutines", m.goroutines).Dur("budget", m.duration).
			Msg("time budget takes precedence over parallel search, searching serially")
		m.goroutines = 1
	}
	return m
}

// ScoreMoves scores every legal move of the side to move with its exact
// minimax value.
func (m *Minimax) ScoreMoves(ctx context.Context, g *game.Game) ([]ScoredMove, metrics.SearchMetric, error) {
	return m.scoreMoves(ctx, g, true)
}

// scoreMoves runs the configured search. Without exact, serial pruning lets a
// move proven worse than an earlier one carry an upper bound of its value;
// the best moves are exact either way.
func (m *Minimax) scoreMoves(ctx context.Context, g *game.Game, exact bool) ([]ScoredMove, metrics.SearchMetric, error) {
	m.metrics.Start(m.goroutines, m.depth, m.duration)
	var (
		scores []ScoredMove
		err    error
	)
	if m.duration > 0 {
		scores, err = m.countdown(ctx, g, exact)
	} else {
		scores, err = m.iterate(ctx, g, exact)
	}
	return scores, m.metrics.Complete(), err
}

// BestMove picks one of the highest scoring moves for side, uniformly at random
// among ties.
func (m *Minimax) BestMove(ctx context.Context, g *game.Game, side game.Loyalty) (game.Move, metrics.SearchMetric, error) {
	if g.Turn() != side {
		return game.Move{}, metrics.SearchMetric{}, errors.Wrapf(ErrNotOnTurn, "%s asked to move while %s is on turn", side, g.Turn())
	}
	scores, metric, err := m.scoreMoves(ctx, g, false)
	if err != nil {
		return game.Move{}, metric, err
	}
	if len(scores) == 0 {
		return game.Move{}, metric, errors.Wrapf(ErrNoLegalMoves, "%s cannot move", side)
	}

	chosen := scores[m.ties.pick(lo.Map(scores, func(s ScoredMove, _ int) float64 { return s.Score }))]
	log.Debug().Stringer("side", side).Stringer("move", chosen.Move).Float64("score", chosen.Score).
		Int("candidates", len(scores)).Msg("chose move")
	return chosen.Move, metric, nil
}

// Value is the minimax value of g for the side to move.
func (m *Minimax) Value(ctx context.Context, g *game.Game) (float64, error) {
	scores, _, err := m.scoreMoves(ctx, g, false)
	if err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return m.evaluate(g, g.Turn()), nil
	}
	return lo.MaxBy(scores, func(a, b ScoredMove) bool { return a.Score > b.Score }).Score, nil
}

// NewTree starts an iterative deepening tree for the side to move in g.
func (m *Minimax) NewTree(g *game.Game) *Tree {
	return &Tree{
		root: newRoot(g),
		search: search{
			side:     g.Turn(),
			evaluate: m.evaluate,
			prune:    m.prune,
			retain:   true,
			metrics:  m.metrics,
		},
	}
}

// iterate searches every root move to the fixed depth.
func (m *Minimax) iterate(ctx context.Context, g *game.Game, exact bool) ([]ScoredMove, error) {
	root := newRoot(g)
	children := root.expand()
	s := search{
		ctx:      ctx,
		side:     g.Turn(),
		evaluate: m.evaluate,
		limit:    m.depth,
		prune:    m.prune,
		exact:    exact,
		metrics:  m.metrics,
	}

	var (
		values []float64
		err    error
	)
	if m.goroutines > 1 {
		values, err = s.scoreParallel(children, m.goroutines)
	} else {
		values, err = s.scoreSerial(children)
	}
	if err != nil {
		return nil, err
	}
	m.metrics.SetDepthReached(m.depth)
	return lo.Map(children, func(c *node, i int) ScoredMove {
		return ScoredMove{Move: c.move, Score: values[i]}
	}), nil
}

// scoreParallel hands the root children to a fixed pool of goroutines. Each
// child is searched with a full window on its own clone, so no state is shared
// beyond the result slots.
func (s *search) scoreParallel(children []*node, goroutines int) ([]float64, error) {
	task := make(chan int, len(children))
	for i := range children {
		task <- i
	}
	close(task)

	values := make([]float64, len(children))
	group, ctx := errgroup.WithContext(s.ctx)
	for i := 0; i < min(goroutines, len(children)); i++ {
		worker := *s
		worker.ctx = ctx
		group.Go(func() error {
			for idx := range task {
				v, err := worker.minimax(children[idx], math.Inf(-1), math.Inf(1))
				if err != nil {
					return err
				}
				values[idx] = v
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

// countdown deepens a tree until the budget or the depth cap runs out. The
// first ply always completes so that some move is available.
func (m *Minimax) countdown(ctx context.Context, g *game.Game, exact bool) ([]ScoredMove, error) {
	limit := m.maxDepth
	if m.depth > 0 {
		limit = min(limit, m.depth)
	}
	budget, cancel := context.WithTimeout(ctx, m.duration)
	defer cancel()

	tree := m.NewTree(g)
	tree.search.exact = exact
	for tree.Depth() < limit {
		passCtx := budget
		if tree.Depth() == 0 {
			passCtx = ctx
		}
		if err := tree.IncreaseDepth(passCtx); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Debug().Int("plies", tree.Depth()).Msg("budget spent mid-pass")
			break
		}
		if len(tree.Scores()) == 0 || budget.Err() != nil {
			break
		}
	}
	return tree.Scores(), nil
}
