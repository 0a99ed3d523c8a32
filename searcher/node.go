package searcher

import (
	"gametree/game"
)

// Node is a single node of the search tree. It owns its state; the parent
// pointer is non-owning and nil for the root. Statistics only ever change
// through backpropagation.
type Node struct {
	state    game.State
	parent   *Node
	children map[game.Action]*Node
	untried  []game.Action
	rewards  float64
	visits   int
}

func newNode(state game.State, parent *Node) *Node {
	// Terminal nodes get no untried actions so they can never be expanded.
	var untried []game.Action
	if !state.Terminal() {
		untried = state.LegalActions()
	}
	return &Node{
		state:    state,
		parent:   parent,
		children: make(map[game.Action]*Node),
		untried:  untried,
	}
}

// Expand derives the child state for the given action, links the new child
// and returns it. The action does not have to be one of the untried actions:
// advancing the root along an action the tree never explored re-derives the
// child the same way.
func (n *Node) Expand(action game.Action) *Node {
	if n.state.Terminal() {
		panic("cannot expand a terminal node")
	}
	child := newNode(n.state.Play(action), n)
	n.children[action] = child
	for i, a := range n.untried {
		if a == action {
			n.untried = append(n.untried[:i], n.untried[i+1:]...)
			break
		}
	}
	return child
}

// removeChild unlinks a direct child, located by identity, and clears its
// parent pointer.
func (n *Node) removeChild(child *Node) {
	for action, c := range n.children {
		if c == child {
			delete(n.children, action)
			child.parent = nil
			return
		}
	}
	panic("node does not have the given child")
}

func (n *Node) expanded() bool {
	return len(n.untried) == 0
}

// State returns the node's state. Callers must treat it as read-only.
func (n *Node) State() game.State { return n.state }

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the internal action-to-child map. Callers must not
// mutate it.
func (n *Node) Children() map[game.Action]*Node { return n.children }

// Untried returns the actions that have not been expanded yet.
func (n *Node) Untried() []game.Action { return n.untried }

func (n *Node) Visits() int { return n.visits }

func (n *Node) Rewards() float64 { return n.rewards }

// Mean returns the average reward over all visits.
func (n *Node) Mean() float64 {
	if n.visits == 0 {
		panic("node has no visits")
	}
	return n.rewards / float64(n.visits)
}

// Expanded reports whether every legal action has been expanded. Terminal
// nodes are trivially expanded.
func (n *Node) Expanded() bool { return n.expanded() }

func (n *Node) Terminal() bool { return n.state.Terminal() }

// Depth is the number of nodes on the path from the root to this node,
// including itself: the root has depth 1.
func (n *Node) Depth() int {
	depth := 0
	for node := n; node != nil; node = node.parent {
		depth++
	}
	return depth
}
