package searcher

import (
	"math"
	"math/rand"
	"slices"
	"strings"

	"gametree/game"
)

// Hyperparameters for the search

const DefaultSamples = 1000    // Search rounds per move
const DefaultMaxDepth = 10     // Tree depth cap, root counts as depth 1
const DefaultExploration = 1.0 // Weight of the UCB1 exploration term

// SelectPolicy picks one child of a fully expanded node and returns it with
// the action that leads to it. The node is guaranteed to have children and
// every child is guaranteed to have been visited at least once.
type SelectPolicy func(rng *rand.Rand, n *Node, exploration float64) (game.Action, *Node)

// ExpandPolicy grows the tree by one child of the given node and returns it.
type ExpandPolicy func(rng *rand.Rand, n *Node) *Node

// BackpropPolicy folds a simulation reward into the node and its ancestors.
type BackpropPolicy func(n *Node, reward float64)

type ucb1 struct {
	exploration float64
	numerator   float64
}

func newUCB1(exploration float64, parentVisits float64) *ucb1 {
	if parentVisits <= 0 {
		panic("parent visits must be positive")
	}
	return &ucb1{
		exploration: exploration,
		numerator:   2.0 * math.Log(parentVisits),
	}
}

func (u ucb1) evaluate(rewards float64, visits float64) float64 {
	if visits <= 0 {
		panic("child visits must be positive")
	}
	// UCB1 = q/n + c*sqrt(2*ln(N)/n)
	return rewards/visits + u.exploration*math.Sqrt(u.numerator/visits)
}

// SelectUCB1 picks the child with the highest UCB1 score. Children whose
// scores tie exactly for the maximum are drawn from uniformly at random.
// With exploration 0 this degenerates to picking the best mean reward, which
// is how greedy extraction reuses it.
func SelectUCB1(rng *rand.Rand, n *Node, exploration float64) (game.Action, *Node) {
	if len(n.children) == 0 {
		panic("cannot select on a node without children")
	}

	policy := newUCB1(exploration, float64(n.visits))
	maxScore := math.Inf(-1)
	var maxActions []game.Action
	for action, child := range n.children {
		score := policy.evaluate(child.rewards, float64(child.visits))
		if score > maxScore {
			maxScore = score
			maxActions = maxActions[:0]
			maxActions = append(maxActions, action)
		} else if score == maxScore {
			maxActions = append(maxActions, action)
		}
	}

	action := maxActions[0]
	if len(maxActions) > 1 {
		// Order the tied set before drawing so a seeded rng reproduces the
		// same search regardless of map iteration order.
		slices.SortFunc(maxActions, func(a, b game.Action) int {
			return strings.Compare(a.String(), b.String())
		})
		action = maxActions[rng.Intn(len(maxActions))]
	}
	return action, n.children[action]
}

// ExpandUniform expands one of the untried actions chosen uniformly at
// random. Expanding a node with no untried actions, including any terminal
// node, is a programming error.
func ExpandUniform(rng *rand.Rand, n *Node) *Node {
	if len(n.untried) == 0 {
		panic("cannot expand a fully expanded node")
	}
	return n.Expand(n.untried[rng.Intn(len(n.untried))])
}

// Backpropagate adds the reward and one visit to every node from n up
// through the root. The same signed reward is applied at every level: the
// reward perspective is fixed by the domain, not flipped per ply.
func Backpropagate(n *Node, reward float64) {
	for node := n; node != nil; node = node.parent {
		node.visits++
		node.rewards += reward
	}
}
