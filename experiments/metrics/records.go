// Package metrics defines the records an experiment produces and writes
// them out as CSV files for offline analysis.
package metrics

import (
	"time"

	"gametree/searcher"
)

// AgentConfig describes one search configuration under test. Zero-valued
// knobs fall back to the search tree defaults.
type AgentConfig struct {
	ID          int     `yaml:"id"`
	Samples     int     `yaml:"samples"`
	MaxDepth    int     `yaml:"maxDepth"`
	Exploration float64 `yaml:"exploration"`
	Lookahead   bool    `yaml:"lookahead"`
	Heuristics  bool    `yaml:"heuristics"`
}

// GameRecord documents one finished game. Agent1 made the first move;
// Winner holds the winning agent's ID, or zero for a draw.
type GameRecord struct {
	ID        int
	Agent1    int
	Agent2    int
	Winner    int
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// MoveRecord documents one move of a game together with the search effort
// behind it.
type MoveRecord struct {
	Game   int
	Step   int
	Agent  int
	Action string
	searcher.SearchMetrics
}

// Summary aggregates the games of one matchup. Wins1 counts the games won
// by Agent1 regardless of who moved first in each game.
type Summary struct {
	Agent1       int
	Agent2       int
	Games        int
	Wins1        int
	Wins2        int
	Draws        int
	MeanMoves    float64
	MeanSearch   time.Duration
	StddevSearch time.Duration
	MedianSearch time.Duration
}
