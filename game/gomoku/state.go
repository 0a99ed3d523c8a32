package gomoku

import (
	"fmt"
	"slices"
	"strings"

	"gametree/game"
)

// vacant is the zero mark so an empty board needs no initialization.
const vacant int8 = 0

func mark(s Stone) int8 {
	return int8(s) + 1
}

// State is one gomoku position. It is a value type: Play and Place return
// modified copies and never touch the receiver.
type State struct {
	stones     [cells]int8
	moves      []Action
	winner     int8 // Set by Play when a placement completes a run
	player     Stone
	subject    Stone
	heuristics bool
}

// Option configures the initial position.
type Option func(*State)

// WithHeuristics narrows move generation to vacant cells adjacent to an
// existing stone, or to the center cell on an empty board. The game rules
// are unchanged, the search just stops spending samples on far-away
// placements.
func WithHeuristics() Option {
	return func(s *State) {
		s.heuristics = true
	}
}

// New returns an empty board. Rewards are scored from the subject's point of
// view: +1 when the subject wins and -1 when it loses.
func New(subject Stone, options ...Option) State {
	if subject != Black && subject != White {
		panic("the reward subject must be black or white")
	}
	state := State{player: Black, subject: subject}
	for _, option := range options {
		option(&state)
	}
	return state
}

// Player returns the side to move.
func (s State) Player() Stone {
	return s.player
}

// Subject returns the side rewards are scored for.
func (s State) Subject() Stone {
	return s.subject
}

// Moves lists every placement so far in play order.
func (s State) Moves() []Action {
	return slices.Clone(s.moves)
}

// At reports the stone on the given cell, if any.
func (s State) At(c Cell) (Stone, bool) {
	if !c.inBoard() {
		panic(fmt.Sprintf("cell %v is outside the board", c))
	}
	m := s.stones[c.index()]
	if m == vacant {
		return 0, false
	}
	return Stone(m - 1), true
}

// LegalActions lists every legal placement for the side to move.
func (s State) LegalActions() []game.Action {
	if s.heuristics {
		return s.neighborhood()
	}
	actions := make([]game.Action, 0, cells-len(s.moves))
	for index, m := range s.stones {
		if m == vacant {
			actions = append(actions, Action{Player: s.player, Cell: cellAt(index)})
		}
	}
	return actions
}

// neighborhood keeps only the vacant cells with at least one occupied
// neighbor. On an empty board the single candidate is the center cell.
func (s State) neighborhood() []game.Action {
	if len(s.moves) == 0 {
		center := Cell{Row: BoardSize / 2, Col: BoardSize / 2}
		return []game.Action{Action{Player: s.player, Cell: center}}
	}
	var actions []game.Action
	for index, m := range s.stones {
		if m != vacant {
			continue
		}
		cell := cellAt(index)
		if s.nextToStone(cell) {
			actions = append(actions, Action{Player: s.player, Cell: cell})
		}
	}
	return actions
}

func (s State) nextToStone(c Cell) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbor := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if neighbor.inBoard() && s.stones[neighbor.index()] != vacant {
				return true
			}
		}
	}
	return false
}

// Play places the action's stone and returns the position with the other
// side to move. It panics when the action is foreign, out of turn, outside
// the board or on a taken cell.
func (s State) Play(a game.Action) game.State {
	action, ok := a.(Action)
	if !ok {
		panic(fmt.Sprintf("action %v does not belong to a gomoku game", a))
	}
	if action.Player != s.player {
		panic(fmt.Sprintf("it is not %v's turn", action.Player))
	}
	if !action.Cell.inBoard() {
		panic(fmt.Sprintf("cell %v is outside the board", action.Cell))
	}
	if s.stones[action.Cell.index()] != vacant {
		panic(fmt.Sprintf("cell %v is already taken", action.Cell))
	}
	next := s
	next.stones[action.Cell.index()] = mark(action.Player)
	next.moves = append(slices.Clone(s.moves), action)
	next.player = s.player.Other()
	if next.runThrough(action.Cell, mark(action.Player)) >= WinLength {
		next.winner = mark(action.Player)
	}
	return next
}

// Place plays a stone for the side to move. It is a chainable shorthand for
// building positions.
func (s State) Place(c Cell) State {
	return s.Play(Action{Player: s.player, Cell: c}).(State)
}

// Terminal reports whether either side has won or the board is full.
func (s State) Terminal() bool {
	return s.winner != vacant || len(s.moves) == cells
}

// Reward scores the position for the subject: +1 for a win, -1 for a loss
// and 0 otherwise, full-board ties included.
func (s State) Reward() float64 {
	switch s.winner {
	case vacant:
		return 0
	case mark(s.subject):
		return 1
	default:
		return -1
	}
}

// lineDirections spans the four orientations a winning run can have.
var lineDirections = [4]Cell{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// runThrough returns the longest run of stones with the given mark passing
// through the cell. A new placement can only ever close a run through its
// own cell, so Play checks nothing else.
func (s State) runThrough(c Cell, m int8) int {
	longest := 0
	for _, dir := range lineDirections {
		length := 1
		for n := (Cell{c.Row + dir.Row, c.Col + dir.Col}); n.inBoard() && s.stones[n.index()] == m; n = (Cell{n.Row + dir.Row, n.Col + dir.Col}) {
			length++
		}
		for n := (Cell{c.Row - dir.Row, c.Col - dir.Col}); n.inBoard() && s.stones[n.index()] == m; n = (Cell{n.Row - dir.Row, n.Col - dir.Col}) {
			length++
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}

// String renders the board with B, W and # marks, one row per line.
func (s State) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			switch s.stones[(Cell{Row: row, Col: col}).index()] {
			case mark(Black):
				sb.WriteByte('B')
			case mark(White):
				sb.WriteByte('W')
			default:
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
