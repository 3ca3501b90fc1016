package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Threads  int
	MaxDepth int
	MaxTime  time.Duration
	Duration time.Duration
	Nodes    int // Positions visited by all workers
	Hits     int // Transposition table hits
	Depth    int // Deepest line delivered
	Lines    int // Lines delivered by all workers
}

type MoveMetric struct {
	Step   int
	Player int // Seat, 0 or 1
	Move   string
	SearchMetric
}

type GameMetric struct {
	Winner     int // Seat, -1 if unfinished
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(threads, maxDepth int, maxTime time.Duration)
	AddNodes(n int)
	AddHits(n int)
	AddLine(depth int)
	Complete() SearchMetric
}

type collector struct {
	threads   int
	maxDepth  int
	maxTime   time.Duration
	startTime time.Time
	nodes     atomic.Int64
	hits      atomic.Int64
	lines     atomic.Int32
	mu        sync.Mutex
	depth     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(threads, maxDepth int, maxTime time.Duration) {
	m.startTime = time.Now()
	m.threads = threads
	m.maxDepth = maxDepth
	m.maxTime = maxTime
	m.nodes.Store(0)
	m.hits.Store(0)
	m.lines.Store(0)
	m.mu.Lock()
	m.depth = 0
	m.mu.Unlock()
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) AddHits(n int) {
	m.hits.Add(int64(n))
}

func (m *collector) AddLine(depth int) {
	m.lines.Add(1)
	m.mu.Lock()
	m.depth = max(m.depth, depth)
	m.mu.Unlock()
}

func (m *collector) Complete() SearchMetric {
	m.mu.Lock()
	depth := m.depth
	m.mu.Unlock()
	return SearchMetric{
		Threads:  m.threads,
		MaxDepth: m.maxDepth,
		MaxTime:  m.maxTime,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Hits:     int(m.hits.Load()),
		Depth:    depth,
		Lines:    int(m.lines.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(threads, maxDepth int, maxTime time.Duration) {}
func (m *dummyCollector) AddNodes(n int)                                      {}
func (m *dummyCollector) AddHits(n int)                                       {}
func (m *dummyCollector) AddLine(depth int)                                   {}
func (m *dummyCollector) Complete() SearchMetric                              { return SearchMetric{} }
