package searcher

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"gametree/game"
)

type Option func(t *Tree)

// Tree runs Monte Carlo tree search over a domain. A tree is single-threaded,
// one search round at a time with no internal locking, so callers own any
// cross-goroutine coordination.
type Tree struct {
	root        *Node
	samples     int
	maxDepth    int
	exploration float64
	rng         *rand.Rand
	selectChild SelectPolicy
	expand      ExpandPolicy
	rollout     RolloutPolicy
	backprop    BackpropPolicy
	extract     ExtractPolicy
	metrics     Collector
}

// WithSamples sets how many search rounds each SearchActions call runs.
func WithSamples(samples int) Option {
	return func(t *Tree) {
		t.samples = samples
	}
}

// WithMaxDepth caps the tree depth. Nodes at the cap are rolled out from
// directly instead of being expanded.
func WithMaxDepth(depth int) Option {
	return func(t *Tree) {
		t.maxDepth = depth
	}
}

// WithExploration sets the exploration constant used during search rounds.
// Extraction always runs with exploration 0.
func WithExploration(c float64) Option {
	return func(t *Tree) {
		t.exploration = c
	}
}

// WithRand injects the random source for every stochastic choice the search
// makes: tie-breaking, expansion and rollouts. Seed it to reproduce a search.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) {
		t.rng = rng
	}
}

func WithSelectPolicy(policy SelectPolicy) Option {
	return func(t *Tree) {
		t.selectChild = policy
	}
}

func WithExpandPolicy(policy ExpandPolicy) Option {
	return func(t *Tree) {
		t.expand = policy
	}
}

func WithRolloutPolicy(policy RolloutPolicy) Option {
	return func(t *Tree) {
		t.rollout = policy
	}
}

func WithBackpropPolicy(policy BackpropPolicy) Option {
	return func(t *Tree) {
		t.backprop = policy
	}
}

// WithExtraction sets the strategy SearchActions uses to turn the searched
// tree into actions.
func WithExtraction(policy ExtractPolicy) Option {
	return func(t *Tree) {
		t.extract = policy
	}
}

// WithMetrics enables search metrics collection.
func WithMetrics() Option {
	return func(t *Tree) {
		t.metrics = NewCollector()
	}
}

// New creates a search tree rooted at the given state. Invalid configuration
// panics: a tree is either fully constructed or not at all.
func New(initial game.State, options ...Option) *Tree {
	if initial == nil {
		panic("initial state must not be nil")
	}

	t := &Tree{ // Default values
		samples:     DefaultSamples,
		maxDepth:    DefaultMaxDepth,
		exploration: DefaultExploration,
		selectChild: SelectUCB1,
		expand:      ExpandUniform,
		rollout:     RolloutUniform,
		backprop:    Backpropagate,
		extract:     ExtractGreedy,
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}

	if t.samples <= 0 {
		panic("the number of samples must be positive")
	}
	if t.maxDepth <= 1 {
		panic("the tree depth cap must be greater than 1")
	}
	if t.selectChild == nil || t.expand == nil || t.rollout == nil ||
		t.backprop == nil || t.extract == nil {
		panic("search policies must not be nil")
	}
	if t.metrics == nil {
		panic("metrics collector must not be nil")
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	t.root = newNode(initial, nil)
	return t
}

// Root returns the current root of the search tree.
func (t *Tree) Root() *Node {
	return t.root
}

// SearchActions runs the configured number of search rounds and extracts up
// to searchDepth actions from the tree. The context is checked between
// rounds: cancellation stops the search early and extraction runs on
// whatever the tree holds so far.
func (t *Tree) SearchActions(ctx context.Context, searchDepth int) ([]game.Action, SearchMetrics) {
	t.metrics.Start()
	for i := 0; i < t.samples; i++ {
		if ctx.Err() != nil {
			log.Debug().Msgf("search stopped after %d of %d rounds: %v", i, t.samples, ctx.Err())
			break
		}
		t.round()
		t.metrics.AddRound()
	}
	actions := t.extract(t.rng, t.root, searchDepth)
	return actions, t.metrics.Complete()
}

// round performs selection, expansion, simulation and backpropagation with
// one sample.
func (t *Tree) round() {
	node := t.root
	depth := 1
	for node.expanded() && !node.Terminal() && depth < t.maxDepth {
		_, node = t.selectChild(t.rng, node, t.exploration)
		depth++
	}
	if !node.Terminal() && depth < t.maxDepth {
		node = t.expand(t.rng, node)
		depth++
		t.metrics.AddNode()
	}
	reward := t.rollout(t.rng, node.state)
	t.backprop(node, reward)
	t.metrics.ObserveDepth(depth)
}

// AdvanceRoot moves the root one action forward, keeping the subtree behind
// the action and its statistics. An action the search never expanded gets a
// fresh child instead. The rest of the old tree is discarded.
func (t *Tree) AdvanceRoot(action game.Action) {
	child, explored := t.root.children[action]
	if !explored {
		log.Warn().Msgf("advancing root along unexplored action %s", action)
		child = t.root.Expand(action)
	}
	t.root.removeChild(child)
	t.root = child
	t.metrics.ReusedTree(explored)
}
