package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gametree/engine"
	"gametree/game/gomoku"
	"gametree/searcher"
)

// classicOpening is an 18-stone midgame position, black and white
// alternating, that gives the self-play something to fight over.
var classicOpening = []gomoku.Cell{
	{Row: 3, Col: 5}, {Row: 3, Col: 6}, {Row: 4, Col: 6}, {Row: 5, Col: 7},
	{Row: 5, Col: 5}, {Row: 6, Col: 4}, {Row: 4, Col: 5}, {Row: 6, Col: 5},
	{Row: 4, Col: 4}, {Row: 4, Col: 7}, {Row: 6, Col: 6}, {Row: 7, Col: 7},
	{Row: 2, Col: 5}, {Row: 1, Col: 5}, {Row: 3, Col: 3}, {Row: 2, Col: 2},
	{Row: 6, Col: 7}, {Row: 3, Col: 4},
}

func runGomoku(cmd *cobra.Command, args []string) error {
	seed := resolveSeed(gomokuSeed)
	log.Info().Msgf("self-play from seed %d", seed)

	state := gomokuPosition(gomoku.New(gomoku.Black))
	eng := engine.Local(state, []engine.Player{
		{Name: "black", Tree: gomokuTree(gomoku.Black, seed)},
		{Name: "white", Tree: gomokuTree(gomoku.White, seed+1)},
	})

	fmt.Println(state)
	fmt.Println()

	records, err := eng.Run(cmd.Context())
	if err != nil {
		return err
	}

	final := eng.State().(gomoku.State)
	fmt.Println(final)
	switch reward := final.Reward(); {
	case reward > 0:
		fmt.Println("black wins")
	case reward < 0:
		fmt.Println("white wins")
	default:
		fmt.Println("draw")
	}
	log.Info().Msgf("%d moves beyond the opening", len(records))
	return nil
}

// gomokuTree builds the search tree for one side, rooted at the same
// position the game starts from.
func gomokuTree(subject gomoku.Stone, seed int64) *searcher.Tree {
	var options []gomoku.Option
	if gomokuHeuristics {
		options = append(options, gomoku.WithHeuristics())
	}
	state := gomokuPosition(gomoku.New(subject, options...))

	return searcher.New(state,
		searcher.WithSamples(gomokuSamples),
		searcher.WithMaxDepth(gomokuDepth),
		searcher.WithRand(newRand(seed)),
	)
}

func gomokuPosition(state gomoku.State) gomoku.State {
	if !gomokuOpening {
		return state
	}
	for _, cell := range classicOpening {
		state = state.Place(cell)
	}
	return state
}
