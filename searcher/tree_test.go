package searcher

import (
	"context"
	"math/rand"
	"testing"

	"github.com/seehuhn/mt19937"
	"github.com/stretchr/testify/require"

	"gametree/game"
)

var goodArm = mockAction{id: 0}
var badArm = mockAction{id: 1}

// banditState is a one-decision domain: the good arm pays 1, the bad arm 0.
func banditState() mockState {
	return mockState{
		actions: []game.Action{goodArm, badArm},
		next: map[game.Action]game.State{
			goodArm: mockState{terminal: true, reward: 1},
			badArm:  mockState{terminal: true, reward: 0},
		},
	}
}

// chainState builds a domain of length single-action states ending in a
// terminal state with the given reward.
func chainState(length int, reward float64) mockState {
	state := mockState{terminal: true, reward: reward}
	for i := length; i > 0; i-- {
		action := mockAction{id: i}
		prev := state
		state = mockState{
			actions: []game.Action{action},
			next:    map[game.Action]game.State{action: prev},
		}
	}
	return state
}

func testRand() *rand.Rand {
	return rand.New(mt19937.New())
}

func TestNew(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		tree := New(banditState())

		require.Equal(t, DefaultSamples, tree.samples)
		require.Equal(t, DefaultMaxDepth, tree.maxDepth)
		require.Equal(t, DefaultExploration, tree.exploration)
		require.NotNil(t, tree.rng, "A tree without an injected rng should seed its own")
		require.NotNil(t, tree.root)
	})

	t.Run("panics without an initial state", func(t *testing.T) {
		require.Panics(t, func() {
			New(nil)
		}, "A tree needs a state to root at")
	})

	t.Run("panics with non-positive samples", func(t *testing.T) {
		require.Panics(t, func() {
			New(banditState(), WithSamples(0))
		}, "Sample counts must be positive")
	})

	t.Run("panics with a too small depth cap", func(t *testing.T) {
		require.Panics(t, func() {
			New(banditState(), WithMaxDepth(1))
		}, "A depth cap of 1 would forbid expanding the root")
	})

	t.Run("panics with a nil policy", func(t *testing.T) {
		require.Panics(t, func() {
			New(banditState(), WithRolloutPolicy(nil))
		}, "Policies must not be nil")
	})
}

func TestSearchActions(t *testing.T) {
	t.Run("every round passes through the root", func(t *testing.T) {
		tree := New(banditState(), WithSamples(50), WithRand(testRand()), WithMetrics())

		_, metrics := tree.SearchActions(context.Background(), 1)

		require.Equal(t, 50, metrics.Rounds)
		require.Equal(t, 50, tree.root.visits,
			"Root visits should match the number of rounds")
		childVisits := 0
		for _, child := range tree.root.children {
			childVisits += child.visits
		}
		require.Equal(t, tree.root.visits, childVisits,
			"Every sample of this domain runs through exactly one child")
	})

	t.Run("finds the winning arm", func(t *testing.T) {
		tree := New(banditState(), WithSamples(1000), WithRand(testRand()))

		actions, _ := tree.SearchActions(context.Background(), 1)

		require.Equal(t, []game.Action{goodArm}, actions,
			"Greedy extraction should pick the arm that pays")
	})

	t.Run("finds the winning arm with lookahead extraction", func(t *testing.T) {
		tree := New(banditState(), WithSamples(1000), WithRand(testRand()),
			WithExtraction(ExtractLookahead))

		actions, _ := tree.SearchActions(context.Background(), 1)

		require.Equal(t, []game.Action{goodArm}, actions,
			"Lookahead extraction should pick the arm that pays")
	})

	t.Run("terminal root only samples in place", func(t *testing.T) {
		tree := New(mockState{terminal: true, reward: 5}, WithSamples(10),
			WithRand(testRand()), WithMetrics())

		actions, metrics := tree.SearchActions(context.Background(), 3)

		require.Empty(t, actions, "A finished game has no actions to extract")
		require.Empty(t, tree.root.children, "A terminal root should never grow children")
		require.Equal(t, 10, tree.root.visits, "Rounds should still sample the terminal state")
		require.InDelta(t, 50.0, tree.root.rewards, 1e-9)
		require.Equal(t, 1, metrics.MaxDepth)
	})

	t.Run("cancelled context stops before the next round", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		tree := New(banditState(), WithSamples(1000), WithRand(testRand()), WithMetrics())

		actions, metrics := tree.SearchActions(ctx, 1)

		require.Zero(t, metrics.Rounds, "No rounds should run under a cancelled context")
		require.Empty(t, actions, "An unsearched tree yields no actions")
	})

	t.Run("extraction length follows the search depth", func(t *testing.T) {
		tree := New(chainState(5, 1), WithSamples(200), WithRand(testRand()))

		actions, _ := tree.SearchActions(context.Background(), 3)

		require.Len(t, actions, 3, "Extraction should stop after searchDepth actions")

		none, _ := tree.SearchActions(context.Background(), 0)
		require.Empty(t, none, "A non-positive search depth extracts nothing")
	})

	t.Run("depth cap stops tree growth", func(t *testing.T) {
		tree := New(chainState(8, 1), WithSamples(50), WithMaxDepth(3),
			WithRand(testRand()), WithMetrics())

		_, metrics := tree.SearchActions(context.Background(), 1)

		require.Equal(t, 3, metrics.MaxDepth, "No sample should run deeper than the cap")
		node := tree.root
		for depth := 1; len(node.children) > 0; depth++ {
			require.Less(t, depth, 3, "Nodes at the cap must stay leaves")
			for _, child := range node.children {
				node = child
			}
		}
	})
}

func TestAdvanceRoot(t *testing.T) {
	t.Run("explored action keeps its subtree and statistics", func(t *testing.T) {
		tree := New(banditState(), WithSamples(100), WithRand(testRand()))
		tree.SearchActions(context.Background(), 1)

		child := tree.root.children[goodArm]
		visits := child.visits
		rewards := child.rewards
		require.Positive(t, visits, "The winning arm should have been sampled")

		tree.AdvanceRoot(goodArm)

		require.Same(t, child, tree.root, "The explored child should become the root")
		require.Nil(t, tree.root.parent, "The new root must not point at the old tree")
		require.Equal(t, visits, tree.root.visits, "Advancing must not lose statistics")
		require.InDelta(t, rewards, tree.root.rewards, 1e-9)
	})

	t.Run("unexplored action gets a fresh child", func(t *testing.T) {
		// A single sample expands exactly one arm, leaving the other untried.
		tree := New(banditState(), WithSamples(1), WithRand(testRand()))
		tree.SearchActions(context.Background(), 1)

		var unexplored game.Action = goodArm
		if _, ok := tree.root.children[goodArm]; ok {
			unexplored = badArm
		}

		tree.AdvanceRoot(unexplored)

		require.Zero(t, tree.root.visits, "A synthesized root starts unvisited")
		require.Nil(t, tree.root.parent)
		require.True(t, tree.root.Terminal(), "The bandit arms lead to terminal states")
	})

	t.Run("reuse is visible in the next search metrics", func(t *testing.T) {
		tree := New(banditState(), WithSamples(100), WithRand(testRand()), WithMetrics())

		_, metrics := tree.SearchActions(context.Background(), 1)
		require.False(t, metrics.TreeReused, "The first search starts from scratch")

		tree.AdvanceRoot(goodArm)
		root := tree.root

		_, metrics = tree.SearchActions(context.Background(), 1)
		require.True(t, metrics.TreeReused, "Advancing along an explored action recycles the tree")
		require.Same(t, root, tree.root, "Searching must not replace the root")
	})
}

func TestExtractGreedy(t *testing.T) {
	t.Run("stops at a node the search never expanded", func(t *testing.T) {
		tree := New(chainState(8, 1), WithSamples(20), WithMaxDepth(3), WithRand(testRand()))
		actions, _ := tree.SearchActions(context.Background(), 8)

		require.NotEmpty(t, actions)
		require.Less(t, len(actions), 8,
			"Extraction cannot walk past the capped tree")
	})
}

func TestExtractLookahead(t *testing.T) {
	t.Run("prefers the deepest best mean path", func(t *testing.T) {
		// Hand-built tree: the a0 arm looks good at depth 1 but turns bad at
		// depth 2, the a1 arm is the other way around.
		a0 := mockAction{id: 0}
		a1 := mockAction{id: 1}
		leaf := mockState{terminal: true}
		inner := mockState{
			actions: []game.Action{a0, a1},
			next:    map[game.Action]game.State{a0: leaf, a1: leaf},
		}
		root := newNode(mockState{
			actions: []game.Action{a0, a1},
			next:    map[game.Action]game.State{a0: inner, a1: inner},
		}, nil)

		left := root.Expand(a0)
		right := root.Expand(a1)
		leftLeaf := left.Expand(a0)
		rightLeaf := right.Expand(a0)
		root.visits = 6
		left.visits, left.rewards = 3, 2.7           // mean 0.9
		right.visits, right.rewards = 3, 1.5         // mean 0.5
		leftLeaf.visits, leftLeaf.rewards = 2, 0     // mean 0.0
		rightLeaf.visits, rightLeaf.rewards = 2, 1.6 // mean 0.8

		shallow := ExtractLookahead(testRand(), root, 1)
		require.Equal(t, []game.Action{a0}, shallow,
			"Depth 1 sees only the shallow means")

		deep := ExtractLookahead(testRand(), root, 2)
		require.Equal(t, []game.Action{a1, a0}, deep,
			"Depth 2 should follow the path whose leaf mean is best")
	})

	t.Run("unsearched root extracts nothing", func(t *testing.T) {
		root := newNode(banditState(), nil)

		require.Empty(t, ExtractLookahead(testRand(), root, 3))
	})
}
