package searcher

import (
	"math"
	"math/rand"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"gametree/game"
)

// ExtractPolicy turns a searched tree into a sequence of up to depth actions
// starting at the root. Extraction never grows the tree.
type ExtractPolicy func(rng *rand.Rand, root *Node, depth int) []game.Action

// ExtractGreedy walks down the tree one best-mean child at a time, with
// exact ties broken uniformly at random. It stops early at a terminal node
// or at a node the search never expanded.
func ExtractGreedy(rng *rand.Rand, root *Node, depth int) []game.Action {
	actions := []game.Action{}
	node := root
	for len(actions) < depth {
		if node.Terminal() || len(node.children) == 0 {
			break
		}
		action, child := SelectUCB1(rng, node, 0)
		actions = append(actions, action)
		node = child
	}
	return actions
}

// ExtractLookahead recursively scores every root-to-leaf path through the
// existing tree down to depth plies and returns the path whose deepest
// reached node has the best mean reward. Ties keep the first path found in
// action order, so the result is deterministic.
func ExtractLookahead(rng *rand.Rand, root *Node, depth int) []game.Action {
	if depth <= 0 || len(root.children) == 0 {
		return []game.Action{}
	}
	_, actions := lookahead(root, depth)
	return actions
}

func lookahead(n *Node, depth int) (float64, []game.Action) {
	if depth <= 0 || n.Terminal() || len(n.children) == 0 {
		return n.Mean(), nil
	}

	actions := maps.Keys(n.children)
	slices.SortFunc(actions, func(a, b game.Action) int {
		return strings.Compare(a.String(), b.String())
	})

	maxScore := math.Inf(-1)
	var maxPath []game.Action
	for _, action := range actions {
		score, path := lookahead(n.children[action], depth-1)
		if score > maxScore {
			maxScore = score
			maxPath = append([]game.Action{action}, path...)
		}
	}
	return maxScore, maxPath
}
