package experiments

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"gametree/experiments/metrics"
)

// Summarize aggregates the game and move records of each matchup. Games
// where the matchup's agents swapped the opening move count toward the
// same summary, with wins always attributed by agent ID.
func Summarize(config Config, games []metrics.GameRecord, moves []metrics.MoveRecord) []metrics.Summary {
	summaries := make([]metrics.Summary, 0, len(config.Matchups))
	for _, matchup := range config.Matchups {
		a, b := matchup[0], matchup[1]

		summary := metrics.Summary{Agent1: a, Agent2: b}
		var moveCounts []float64
		matched := map[int]bool{}
		for _, record := range games {
			if !pairs(record, a, b) {
				continue
			}
			matched[record.ID] = true
			summary.Games++
			switch record.Winner {
			case a:
				summary.Wins1++
			case b:
				summary.Wins2++
			default:
				summary.Draws++
			}
			moveCounts = append(moveCounts, float64(record.Moves))
		}

		var searchSeconds []float64
		for _, move := range moves {
			if matched[move.Game] {
				searchSeconds = append(searchSeconds, move.Duration.Seconds())
			}
		}

		if len(moveCounts) > 0 {
			summary.MeanMoves = stat.Mean(moveCounts, nil)
		}
		if len(searchSeconds) > 0 {
			sort.Float64s(searchSeconds)
			summary.MeanSearch = secondsToDuration(stat.Mean(searchSeconds, nil))
			summary.MedianSearch = secondsToDuration(stat.Quantile(0.5, stat.Empirical, searchSeconds, nil))
		}
		if len(searchSeconds) > 1 {
			summary.StddevSearch = secondsToDuration(stat.StdDev(searchSeconds, nil))
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func pairs(record metrics.GameRecord, a, b int) bool {
	return (record.Agent1 == a && record.Agent2 == b) || (record.Agent1 == b && record.Agent2 == a)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
