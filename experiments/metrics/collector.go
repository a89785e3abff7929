package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Depth        int           // Configured fixed depth (or depth cap under a budget)
	Budget       time.Duration // Configured time budget
	DepthReached int           // Deepest completed pass
	Duration     time.Duration // Wall time spent searching
	Nodes        int
	Leaves       int
	Cutoffs      int
}

type MoveMetric struct {
	Step   int
	Player string // Loyalty of the mover
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             string
	Variant        string
	StartingPlayer string
	Winner         string // Empty when the game stopped without a winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Repetitions    int // Moves that led back to an earlier position
}

type Collector interface {
	Start(goroutines, depth int, budget time.Duration)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetDepthReached(depth int)
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	depth        int
	budget       time.Duration
	startTime    time.Time
	nodes        atomic.Int64
	leaves       atomic.Int64
	cutoffs      atomic.Int64
	depthReached atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines, depth int, budget time.Duration) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.budget = budget
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.depthReached.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetDepthReached(depth int) {
	m.depthReached.Store(int32(depth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Depth:        m.depth,
		Budget:       m.budget,
		DepthReached: int(m.depthReached.Load()),
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		Leaves:       int(m.leaves.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, budget time.Duration) {}
func (m *dummyCollector) AddNode()                                          {}
func (m *dummyCollector) AddLeaf()                                          {}
func (m *dummyCollector) AddCutoff()                                        {}
func (m *dummyCollector) SetDepthReached(depth int)                         {}
func (m *dummyCollector) Complete() SearchMetric                            { return SearchMetric{} }
