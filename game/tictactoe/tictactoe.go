// Package tictactoe implements three-by-three naughts and crosses as a
// search domain. X moves first and rewards are always scored from X's side.
package tictactoe

import (
	"fmt"
	"strings"

	"gametree/game"
)

// Size is the board edge length.
const Size = 3

// Mark identifies a side. The zero value marks an empty cell.
type Mark int8

const (
	X Mark = 1
	O Mark = -1
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("mark(%d)", int8(m))
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	return -m
}

// Action claims one cell for a player.
type Action struct {
	Player   Mark
	Row, Col int
}

func (a Action) String() string {
	return fmt.Sprintf("%v (%d,%d)", a.Player, a.Row, a.Col)
}

// lines indexes every row, column and diagonal of the board.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is one board position. It is a value type: Play and Place return
// modified copies and never touch the receiver.
type State struct {
	board  [Size * Size]int8
	player Mark
}

// New returns an empty board with X to move.
func New() State {
	return State{player: X}
}

// Player returns the mark to move.
func (s State) Player() Mark {
	return s.player
}

// At returns the mark on a cell, or the zero mark for an empty cell.
func (s State) At(row, col int) Mark {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("cell (%d,%d) is outside the board", row, col))
	}
	return Mark(s.board[row*Size+col])
}

// LegalActions lists every empty cell for the player to move.
func (s State) LegalActions() []game.Action {
	var actions []game.Action
	for index, m := range s.board {
		if m == 0 {
			actions = append(actions, Action{Player: s.player, Row: index / Size, Col: index % Size})
		}
	}
	return actions
}

// Play claims a cell and returns the position with the other player to move.
// It panics when the action is foreign, out of turn, outside the board or on
// a taken cell.
func (s State) Play(a game.Action) game.State {
	action, ok := a.(Action)
	if !ok {
		panic(fmt.Sprintf("action %v does not belong to a tic-tac-toe game", a))
	}
	if action.Player != s.player {
		panic(fmt.Sprintf("it is not %v's turn", action.Player))
	}
	if action.Row < 0 || action.Row >= Size || action.Col < 0 || action.Col >= Size {
		panic(fmt.Sprintf("cell (%d,%d) is outside the board", action.Row, action.Col))
	}
	index := action.Row*Size + action.Col
	if s.board[index] != 0 {
		panic(fmt.Sprintf("cell (%d,%d) is already taken", action.Row, action.Col))
	}
	next := s
	next.board[index] = int8(action.Player)
	next.player = s.player.Other()
	return next
}

// Place claims a cell for the player to move. It is a chainable shorthand
// for building positions.
func (s State) Place(row, col int) State {
	return s.Play(Action{Player: s.player, Row: row, Col: col}).(State)
}

// winner returns the mark holding a complete line, or zero.
func (s State) winner() Mark {
	for _, line := range lines {
		sum := s.board[line[0]] + s.board[line[1]] + s.board[line[2]]
		if sum == 3 || sum == -3 {
			return Mark(sum / 3)
		}
	}
	return 0
}

// Terminal reports whether a line is complete or the board is full.
func (s State) Terminal() bool {
	if s.winner() != 0 {
		return true
	}
	for _, m := range s.board {
		if m == 0 {
			return false
		}
	}
	return true
}

// Reward scores the position for X: +1 when X holds a line, -1 when O does
// and 0 otherwise, draws included.
func (s State) Reward() float64 {
	return float64(s.winner())
}

// String renders the board with X, O and dot marks, one row per line.
func (s State) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Size; col++ {
			switch Mark(s.board[row*Size+col]) {
			case X:
				sb.WriteByte('X')
			case O:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
