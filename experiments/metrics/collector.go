package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm string
	Depth     int
	Duration  time.Duration
	Nodes     int
	Leaves    int
	Cutoffs   int
	RootMoves int // Root moves fully searched
	Aborted   bool
	Score     float64
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddRootMove()
	SetAborted()
	SetScore(score float64)
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	rootMoves atomic.Int32
	aborted   atomic.Bool
	score     float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.rootMoves.Store(0)
	m.aborted.Store(false)
	m.score = 0
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

func (m *collector) AddRootMove() {
	m.rootMoves.Add(1)
}

func (m *collector) SetAborted() {
	m.aborted.Store(true)
}

func (m *collector) SetScore(score float64) {
	m.score = score
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		RootMoves: int(m.rootMoves.Load()),
		Aborted:   m.aborted.Load(),
		Score:     m.score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddLeaf()                          {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) AddRootMove()                      {}
func (m *dummyCollector) SetAborted()                       {}
func (m *dummyCollector) SetScore(score float64)            {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
