// Package experiments pits search configurations against each other over
// repeated games of gomoku and records the outcomes.
package experiments

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/seehuhn/mt19937"

	"gametree/engine"
	"gametree/experiments/metrics"
	"gametree/game/gomoku"
	"gametree/searcher"
)

// Run plays every matchup of the config and stores the records under
// outDir. The starting agent alternates between games so neither side
// keeps the first-move advantage.
func Run(ctx context.Context, config Config, outDir string) error {
	writer, err := metrics.NewWriter(outDir, config.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info().Msgf("starting %s experiment...", config.Name)

	count := 0
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for mi, matchup := range config.Matchups {
		first := config.agent(matchup[0])
		second := config.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent %d and agent %d...",
			mi+1, len(config.Matchups), first.ID, second.ID)

		for i := 0; i < config.Games; i++ {
			a, b := first, second
			if i%2 == 1 { // alternate the starting agent
				a, b = b, a
			}

			record, moves, err := runGame(ctx, a, b, seed+int64(2*count))
			if err != nil {
				return err
			}
			count++
			record.ID = count
			gameRecords = append(gameRecords, record)
			for _, move := range moves {
				move.Game = count
				moveRecords = append(moveRecords, move)
			}

			if record.Winner == 0 {
				log.Info().Msgf("completed game %d of %d, drawn", i+1, config.Games)
			} else {
				log.Info().Msgf("completed game %d of %d, won by agent %d", i+1, config.Games, record.Winner)
			}
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(config.Matchups))
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	summaries := Summarize(config, gameRecords, moveRecords)
	if err := writer.WriteSummaries(summaries); err != nil {
		return fmt.Errorf("failed to store summaries: %w", err)
	}
	for _, summary := range summaries {
		log.Info().Msgf("agent %d vs agent %d: %d wins, %d losses, %d draws, median search %s",
			summary.Agent1, summary.Agent2, summary.Wins1, summary.Wins2, summary.Draws, summary.MedianSearch)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

// runGame plays one game between the two agents. The first agent opens
// the game as black.
func runGame(ctx context.Context, first, second metrics.AgentConfig, seed int64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	eng := engine.Local(gomoku.New(gomoku.Black), []engine.Player{
		{Name: agentName(first.ID), Tree: buildTree(first, gomoku.Black, seed)},
		{Name: agentName(second.ID), Tree: buildTree(second, gomoku.White, seed+1)},
	})

	start := time.Now()
	moves, err := eng.Run(ctx)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	winner := 0
	switch reward := eng.State().Reward(); {
	case reward > 0:
		winner = first.ID
	case reward < 0:
		winner = second.ID
	}

	record := metrics.GameRecord{
		Agent1:    first.ID,
		Agent2:    second.ID,
		Winner:    winner,
		Moves:     len(moves),
		StartTime: start,
		Duration:  time.Since(start),
	}

	moveRecords := make([]metrics.MoveRecord, len(moves))
	for i, move := range moves {
		agent := first.ID
		if move.Step%2 == 0 {
			agent = second.ID
		}
		moveRecords[i] = metrics.MoveRecord{
			Step:          move.Step,
			Agent:         agent,
			Action:        move.Action.String(),
			SearchMetrics: move.Search,
		}
	}
	return record, moveRecords, nil
}

func agentName(id int) string {
	return fmt.Sprintf("agent-%d", id)
}

// buildTree translates an agent config into a search tree rooted at an
// empty board scored for the given side.
func buildTree(config metrics.AgentConfig, subject gomoku.Stone, seed int64) *searcher.Tree {
	var stateOptions []gomoku.Option
	if config.Heuristics {
		stateOptions = append(stateOptions, gomoku.WithHeuristics())
	}

	source := mt19937.New()
	source.Seed(seed)

	options := []searcher.Option{
		searcher.WithRand(rand.New(source)),
		searcher.WithMetrics(),
	}
	if config.Samples > 0 {
		options = append(options, searcher.WithSamples(config.Samples))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Lookahead {
		options = append(options, searcher.WithExtraction(searcher.ExtractLookahead))
	}
	return searcher.New(gomoku.New(subject, stateOptions...), options...)
}
