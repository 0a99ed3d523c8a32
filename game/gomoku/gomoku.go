// Package gomoku implements five-in-a-row on a nine by nine board as a
// search domain. Black always places the first stone.
package gomoku

import "fmt"

const (
	BoardSize = 9 // Rows and columns of the square board
	WinLength = 5 // Stones in a row needed to win

	cells = BoardSize * BoardSize
)

// Stone identifies a side.
type Stone int8

const (
	Black Stone = iota
	White
)

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("stone(%d)", int8(s))
	}
}

// Other returns the opposing side.
func (s Stone) Other() Stone {
	return 1 - s
}

// Cell addresses one board intersection. Rows and columns count from zero.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func (c Cell) inBoard() bool {
	return 0 <= c.Row && c.Row < BoardSize && 0 <= c.Col && c.Col < BoardSize
}

func (c Cell) index() int {
	return c.Row*BoardSize + c.Col
}

func cellAt(index int) Cell {
	return Cell{Row: index / BoardSize, Col: index % BoardSize}
}

// Action places a stone for one side. The zero value places a black stone
// on the top-left cell.
type Action struct {
	Player Stone
	Cell   Cell
}

func (a Action) String() string {
	return fmt.Sprintf("%v %v", a.Player, a.Cell)
}
