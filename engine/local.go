// Package engine drives complete games between search trees. Each player
// owns a tree; after every committed action all trees advance their root so
// they keep tracking the same game.
package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gametree/game"
	"gametree/searcher"
)

// maxMoves caps runaway games that never reach a terminal state.
const maxMoves = 500

// Player binds a name to the search tree that picks its moves.
type Player struct {
	Name string
	Tree *searcher.Tree
}

// MoveRecord documents one committed move. Steps count from one.
type MoveRecord struct {
	Step   int
	Player string
	Action game.Action
	Search searcher.SearchMetrics
}

// Engine runs a local game loop. Players move round-robin in the order
// given, which matches how every domain rotates its turns.
type Engine struct {
	state   game.State
	players []Player
}

// Local creates an engine for a game starting at the given state. Each
// player's tree must be rooted at that same position.
func Local(state game.State, players []Player) *Engine {
	if state == nil {
		panic("the initial state must not be nil")
	}
	if len(players) == 0 {
		panic("need at least one player")
	}
	for i, player := range players {
		if player.Name == "" || player.Tree == nil {
			panic(fmt.Sprintf("player %d needs a name and a tree", i))
		}
		for _, other := range players[:i] {
			if other.Tree == player.Tree {
				panic("players cannot share a search tree")
			}
		}
	}
	return &Engine{state: state, players: players}
}

// State returns the current game state.
func (e *Engine) State() game.State {
	return e.state
}

// Run plays the game to its end: search, commit, advance every tree, repeat.
// It returns the records of all committed moves. A cancelled context stops
// the game between moves and is returned as the error.
func (e *Engine) Run(ctx context.Context) ([]MoveRecord, error) {
	log.Info().Msgf("%s is starting", e.players[0].Name)

	var records []MoveRecord
	for step := 0; !e.state.Terminal() && step < maxMoves; step++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		player := e.players[step%len(e.players)]
		actions, metrics := player.Tree.SearchActions(ctx, 1)
		if len(actions) == 0 { // cancelled before the first search round
			return records, ctx.Err()
		}
		action := actions[0]
		log.Debug().Msgf("step %d: %s plays %s", step+1, player.Name, action)

		e.state = e.state.Play(action)
		for _, p := range e.players {
			p.Tree.AdvanceRoot(action)
		}
		records = append(records, MoveRecord{
			Step:   step + 1,
			Player: player.Name,
			Action: action,
			Search: metrics,
		})
	}

	if e.state.Terminal() {
		log.Info().Msgf("game over after %d moves, final reward %.2f", len(records), e.state.Reward())
	} else {
		log.Warn().Msgf("stopped after %d moves without reaching a terminal state", maxMoves)
	}
	return records, nil
}
