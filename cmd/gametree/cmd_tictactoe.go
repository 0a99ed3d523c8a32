package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gametree/game"
	"gametree/game/tictactoe"
	"gametree/searcher"
)

func runTictactoe(cmd *cobra.Command, args []string) error {
	seed := resolveSeed(ticSeed)
	log.Info().Msgf("searching from seed %d", seed)

	options := []searcher.Option{
		searcher.WithSamples(ticSamples),
		searcher.WithRand(newRand(seed)),
	}
	if ticLookahead {
		options = append(options, searcher.WithExtraction(searcher.ExtractLookahead))
	}
	tree := searcher.New(tictactoe.New(), options...)

	actions, _ := tree.SearchActions(cmd.Context(), 9)

	state := game.State(tictactoe.New())
	for _, action := range actions {
		state = state.Play(action)
		fmt.Printf("%v\n%v\n\n", action, state)
	}

	if !state.Terminal() {
		fmt.Println("the searched line ends before the game does")
		return nil
	}
	switch reward := state.Reward(); {
	case reward > 0:
		fmt.Println("X wins")
	case reward < 0:
		fmt.Println("O wins")
	default:
		fmt.Println("draw")
	}
	return nil
}
