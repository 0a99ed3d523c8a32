// Package maze implements multi-rover reward collection on a bounded grid.
// Rovers share a time budget, move in the four compass directions and score
// the values of the distinct targets their paths touch.
package maze

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/maps"
)

// Cell addresses one grid square by its x and y coordinates.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is the inclusive coordinate range of an environment.
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// Contains reports whether the cell lies inside the bounds.
func (b Bounds) Contains(c Cell) bool {
	return b.XMin <= c.X && c.X <= b.XMax && b.YMin <= c.Y && c.Y <= b.YMax
}

// Environment is the static part of a maze game: the grid bounds, the
// obstacle set and the valued targets. Every state of a game shares one
// environment; mutate it between games, never while a search runs.
type Environment struct {
	bounds    Bounds
	obstacles map[Cell]struct{}
	targets   map[Cell]float64
}

// NewEnvironment returns an open environment with the given bounds. Chain
// FillBorder, AddObstacle and AddTarget to shape it.
func NewEnvironment(b Bounds) *Environment {
	if b.XMax < b.XMin || b.YMax < b.YMin {
		panic("environment bounds are inverted")
	}
	return &Environment{
		bounds:    b,
		obstacles: make(map[Cell]struct{}),
		targets:   make(map[Cell]float64),
	}
}

// Bounds returns the inclusive coordinate range.
func (e *Environment) Bounds() Bounds {
	return e.bounds
}

// FillBorder walls in the environment with obstacles along its bounds.
func (e *Environment) FillBorder() *Environment {
	for y := e.bounds.YMin; y <= e.bounds.YMax; y++ {
		e.AddObstacle(Cell{X: e.bounds.XMin, Y: y})
		e.AddObstacle(Cell{X: e.bounds.XMax, Y: y})
	}
	for x := e.bounds.XMin; x <= e.bounds.XMax; x++ {
		e.AddObstacle(Cell{X: x, Y: e.bounds.YMin})
		e.AddObstacle(Cell{X: x, Y: e.bounds.YMax})
	}
	return e
}

// AddObstacle blocks a cell. Cells holding a target are left open: the
// target takes precedence until it is removed.
func (e *Environment) AddObstacle(c Cell) *Environment {
	if _, ok := e.targets[c]; !ok {
		e.obstacles[c] = struct{}{}
	}
	return e
}

// RemoveObstacle opens a blocked cell.
func (e *Environment) RemoveObstacle(c Cell) *Environment {
	delete(e.obstacles, c)
	return e
}

// AddTarget puts a reward on a cell, replacing any previous value. Blocked
// cells are left untouched.
func (e *Environment) AddTarget(c Cell, reward float64) *Environment {
	if _, ok := e.obstacles[c]; !ok {
		e.targets[c] = reward
	}
	return e
}

// RemoveTarget clears the reward on a cell.
func (e *Environment) RemoveTarget(c Cell) *Environment {
	delete(e.targets, c)
	return e
}

// Obstacle reports whether the cell is blocked.
func (e *Environment) Obstacle(c Cell) bool {
	_, ok := e.obstacles[c]
	return ok
}

// Reward returns the target value on the cell, if any.
func (e *Environment) Reward(c Cell) (float64, bool) {
	reward, ok := e.targets[c]
	return reward, ok
}

// Targets returns a copy of the target table.
func (e *Environment) Targets() map[Cell]float64 {
	return maps.Clone(e.targets)
}

// MaxReward returns the largest target value, or zero without targets.
func (e *Environment) MaxReward() float64 {
	best := 0.0
	for _, reward := range e.targets {
		if reward > best {
			best = reward
		}
	}
	return best
}

// Open reports whether a rover can enter the cell.
func (e *Environment) Open(c Cell) bool {
	return e.bounds.Contains(c) && !e.Obstacle(c)
}

// Defaults for RandomEnvironment.
const (
	DefaultObstacleCoverage = 0.2
	DefaultTargetCoverage   = 0.2
)

type genConfig struct {
	obstacleCoverage float64
	targetCoverage   float64
	rewardMin        int
	rewardMax        int
	border           bool
}

// GenOption configures RandomEnvironment.
type GenOption func(*genConfig)

// WithObstacleCoverage sets the fraction of cells drawn as obstacles.
func WithObstacleCoverage(fraction float64) GenOption {
	return func(g *genConfig) {
		g.obstacleCoverage = fraction
	}
}

// WithTargetCoverage sets the fraction of cells drawn as targets.
func WithTargetCoverage(fraction float64) GenOption {
	return func(g *genConfig) {
		g.targetCoverage = fraction
	}
}

// WithRewardRange sets the inclusive integer range target values are drawn
// from.
func WithRewardRange(min, max int) GenOption {
	return func(g *genConfig) {
		g.rewardMin = min
		g.rewardMax = max
	}
}

// WithoutBorder skips the obstacle border around the generated environment.
func WithoutBorder() GenOption {
	return func(g *genConfig) {
		g.border = false
	}
}

// RandomEnvironment scatters obstacles and targets over the bounds with one
// draw per cell, walking the cells in a fixed order so that a seeded rng
// reproduces the same environment. Cells the border already blocks are
// skipped.
func RandomEnvironment(rng *rand.Rand, b Bounds, options ...GenOption) *Environment {
	if rng == nil {
		panic("the random source must not be nil")
	}
	config := genConfig{
		obstacleCoverage: DefaultObstacleCoverage,
		targetCoverage:   DefaultTargetCoverage,
		rewardMin:        1,
		rewardMax:        3,
		border:           true,
	}
	for _, option := range options {
		option(&config)
	}
	if config.obstacleCoverage < 0 || config.targetCoverage < 0 ||
		config.obstacleCoverage+config.targetCoverage > 1 {
		panic("coverage fractions must be non-negative and sum to at most one")
	}
	if config.rewardMax < config.rewardMin {
		panic("the reward range is inverted")
	}

	env := NewEnvironment(b)
	if config.border {
		env.FillBorder()
	}
	for x := b.XMin; x <= b.XMax; x++ {
		for y := b.YMin; y <= b.YMax; y++ {
			cell := Cell{X: x, Y: y}
			if env.Obstacle(cell) {
				continue
			}
			r := rng.Float64()
			if r <= config.obstacleCoverage {
				env.AddObstacle(cell)
			} else if r <= config.obstacleCoverage+config.targetCoverage {
				reward := config.rewardMin + rng.Intn(config.rewardMax-config.rewardMin+1)
				env.AddTarget(cell, float64(reward))
			}
		}
	}
	return env
}
