package searcher

import (
	"time"
)

// SearchMetrics describes one SearchActions call.
type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Rounds     int           // Completed search rounds
	Nodes      int           // Nodes added to the tree
	MaxDepth   int           // Deepest simulation node reached, root is depth 1
	TreeReused bool          // Whether the root was recycled from a previous search
}

// Collector accumulates search statistics. The engine is single-threaded so
// implementations need no synchronization.
type Collector interface {
	Start()
	AddRound()
	AddNode()
	ObserveDepth(depth int)
	ReusedTree(reused bool)
	Complete() SearchMetrics
}

type collector struct {
	startTime  time.Time
	rounds     int
	nodes      int
	maxDepth   int
	treeReused bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start begins a new measurement window. The tree-reuse flag survives so
// that an AdvanceRoot before the search is not forgotten.
func (c *collector) Start() {
	c.startTime = time.Now()
	c.rounds = 0
	c.nodes = 0
	c.maxDepth = 0
}

func (c *collector) AddRound() {
	c.rounds++
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) ObserveDepth(depth int) {
	if depth > c.maxDepth {
		c.maxDepth = depth
	}
}

func (c *collector) ReusedTree(reused bool) {
	c.treeReused = reused
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  c.startTime,
		Duration:   time.Since(c.startTime),
		Rounds:     c.rounds,
		Nodes:      c.nodes,
		MaxDepth:   c.maxDepth,
		TreeReused: c.treeReused,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()                  {}
func (dummyCollector) AddRound()               {}
func (dummyCollector) AddNode()                {}
func (dummyCollector) ObserveDepth(depth int)  {}
func (dummyCollector) ReusedTree(reused bool)  {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
