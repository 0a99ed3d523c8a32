package searcher

import (
	"math/rand"

	"gametree/game"
)

// RolloutPolicy simulates a playout from the given state and returns the
// resulting reward. Policies must not mutate the state they are given.
type RolloutPolicy func(rng *rand.Rand, state game.State) float64

// RolloutUniform plays uniformly random actions until a terminal state is
// reached and returns that state's reward. Rolling out from a state that is
// already terminal just returns its reward.
func RolloutUniform(rng *rand.Rand, state game.State) float64 {
	for !state.Terminal() {
		actions := state.LegalActions()
		state = state.Play(actions[rng.Intn(len(actions))])
	}
	return state.Reward()
}
