package main

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"gametree/game/maze"
)

const (
	colorObstacle = "#B22222" // firebrick
	colorTarget   = "#00BFFF" // deep sky blue
	colorRover    = "#FF8C00" // dark orange
	colorVisited  = "#FFDAB9" // peach puff
)

var profile = termenv.ColorProfile()

func paint(s, hex string) string {
	return termenv.String(s).Foreground(profile.Color(hex)).String()
}

// renderMaze draws the grid with the top row first: obstacles as #, targets
// as their reward value, rovers as their index and visited cells as dots.
func renderMaze(state maze.State) string {
	env := state.Environment()
	bounds := env.Bounds()
	visited := state.Visited()

	rovers := make(map[maze.Cell]int, state.Rovers())
	for i := 0; i < state.Rovers(); i++ {
		rovers[state.Position(i)] = i
	}

	var b strings.Builder
	for y := bounds.YMax; y >= bounds.YMin; y-- {
		for x := bounds.XMin; x <= bounds.XMax; x++ {
			if x > bounds.XMin {
				b.WriteByte(' ')
			}
			cell := maze.Cell{X: x, Y: y}
			if rover, ok := rovers[cell]; ok {
				b.WriteString(paint(strconv.Itoa(rover), colorRover))
			} else if env.Obstacle(cell) {
				b.WriteString(paint("#", colorObstacle))
			} else if reward, ok := env.Reward(cell); ok {
				b.WriteString(paint(strconv.FormatFloat(reward, 'f', -1, 64), colorTarget))
			} else if visited[cell] {
				b.WriteString(paint(".", colorVisited))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
