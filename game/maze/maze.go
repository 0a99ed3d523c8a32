package maze

import (
	"fmt"
	"slices"

	"gametree/game"
)

// Action moves one rover to an adjacent cell.
type Action struct {
	Rover int
	To    Cell
}

func (a Action) String() string {
	return fmt.Sprintf("rover %d to %v", a.Rover, a.To)
}

// State is one snapshot of a maze game: every rover's path so far, whose
// turn it is and how much of the shared time budget remains. It is a value
// type: Play and AddRover return modified copies. Add at least one rover
// before handing the state to a search.
type State struct {
	env   *Environment
	paths [][]Cell
	time  int
	turn  int
}

// NewState starts a game in the given environment. The time budget is the
// number of full rounds every rover gets to move.
func NewState(env *Environment, timeBudget int) State {
	if env == nil {
		panic("the environment must not be nil")
	}
	if timeBudget < 0 {
		panic("the time budget cannot be negative")
	}
	return State{env: env, time: timeBudget}
}

// AddRover places a rover on an open cell. Rovers move in the order they
// were added.
func (s State) AddRover(c Cell) State {
	if !s.env.Open(c) {
		panic(fmt.Sprintf("cell %v is blocked or out of bounds", c))
	}
	next := s
	next.paths = append(slices.Clone(s.paths), []Cell{c})
	return next
}

// Rovers returns the number of rovers in the game.
func (s State) Rovers() int {
	return len(s.paths)
}

// Turn returns the index of the rover to move.
func (s State) Turn() int {
	return s.turn
}

// TimeRemaining returns how many full rounds are left.
func (s State) TimeRemaining() int {
	return s.time
}

// Environment returns the shared static environment.
func (s State) Environment() *Environment {
	return s.env
}

// Path returns a copy of one rover's path from its starting cell.
func (s State) Path(rover int) []Cell {
	if rover < 0 || rover >= len(s.paths) {
		panic(fmt.Sprintf("the maze has no rover %d", rover))
	}
	return slices.Clone(s.paths[rover])
}

// Position returns the cell a rover currently occupies.
func (s State) Position(rover int) Cell {
	if rover < 0 || rover >= len(s.paths) {
		panic(fmt.Sprintf("the maze has no rover %d", rover))
	}
	path := s.paths[rover]
	return path[len(path)-1]
}

// Visited returns every cell any rover has touched, starting cells included.
func (s State) Visited() map[Cell]bool {
	visited := make(map[Cell]bool)
	for _, path := range s.paths {
		for _, cell := range path {
			visited[cell] = true
		}
	}
	return visited
}

func (s State) mover() Cell {
	if len(s.paths) == 0 {
		panic("the maze has no rovers")
	}
	path := s.paths[s.turn]
	return path[len(path)-1]
}

// moveOrder fixes the order neighbors are generated in: right, left, up,
// down.
var moveOrder = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// LegalActions lists the open neighbor cells the rover on turn can move to.
// Rovers never block each other; only obstacles and the bounds do.
func (s State) LegalActions() []game.Action {
	from := s.mover()
	actions := make([]game.Action, 0, len(moveOrder))
	for _, d := range moveOrder {
		to := Cell{X: from.X + d.X, Y: from.Y + d.Y}
		if s.env.Open(to) {
			actions = append(actions, Action{Rover: s.turn, To: to})
		}
	}
	return actions
}

// Play moves the on-turn rover one cell and passes the turn. When the last
// rover has moved the round closes and the time budget drops by one. It
// panics on foreign, out-of-turn or blocked moves.
func (s State) Play(a game.Action) game.State {
	action, ok := a.(Action)
	if !ok {
		panic(fmt.Sprintf("action %v does not belong to a maze game", a))
	}
	if action.Rover != s.turn {
		panic(fmt.Sprintf("it is not rover %d's turn", action.Rover))
	}
	from := s.mover()
	if abs(action.To.X-from.X)+abs(action.To.Y-from.Y) != 1 {
		panic(fmt.Sprintf("rover %d cannot jump from %v to %v", action.Rover, from, action.To))
	}
	if !s.env.Open(action.To) {
		panic(fmt.Sprintf("cell %v is blocked or out of bounds", action.To))
	}

	next := s
	next.paths = slices.Clone(s.paths)
	next.paths[s.turn] = append(slices.Clone(s.paths[s.turn]), action.To)
	next.turn = (s.turn + 1) % len(s.paths)
	if next.turn == 0 {
		next.time--
	}
	return next
}

// Terminal reports whether the game is over: the time budget ran out or the
// rover to move is boxed in with nowhere to go.
func (s State) Terminal() bool {
	return s.time <= 0 || len(s.LegalActions()) == 0
}

// Reward sums the values of the distinct targets any rover has visited. It
// is defined on every state, not only terminal ones.
func (s State) Reward() float64 {
	visited := s.Visited()
	total := 0.0
	for cell, reward := range s.env.targets {
		if visited[cell] {
			total += reward
		}
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
