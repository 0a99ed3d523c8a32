package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gametree/engine"
	"gametree/game/maze"
	"gametree/searcher"
)

func runMaze(cmd *cobra.Command, args []string) error {
	seed := resolveSeed(mazeSeed)
	log.Info().Msgf("generating a maze from seed %d", seed)

	bounds := maze.Bounds{XMin: 1, XMax: 11, YMin: 1, YMax: 11}
	starts := []maze.Cell{{X: 2, Y: 2}, {X: 10, Y: 10}}

	env := maze.RandomEnvironment(newRand(seed), bounds)
	for _, start := range starts {
		env.RemoveObstacle(start).RemoveTarget(start)
	}

	state := maze.NewState(env, mazeTime)
	for _, start := range starts {
		state = state.AddRover(start)
	}

	fmt.Println(renderMaze(state))
	fmt.Println()

	// One tree moves every rover: they share the collected reward.
	tree := searcher.New(state,
		searcher.WithSamples(mazeSamples),
		searcher.WithMaxDepth(mazeDepth),
		searcher.WithRand(newRand(seed+1)),
	)
	eng := engine.Local(state, []engine.Player{{Name: "rovers", Tree: tree}})

	records, err := eng.Run(cmd.Context())
	if err != nil {
		return err
	}

	final := eng.State().(maze.State)
	fmt.Println(renderMaze(final))

	available := 0.0
	for _, reward := range env.Targets() {
		available += reward
	}
	log.Info().Msgf("collected %.0f of %.0f reward in %d moves", final.Reward(), available, len(records))
	return nil
}
