package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	gomokuSamples    int
	gomokuDepth      int
	gomokuSeed       int64
	gomokuHeuristics bool
	gomokuOpening    bool

	mazeTime    int
	mazeSamples int
	mazeDepth   int
	mazeSeed    int64

	ticSamples   int
	ticLookahead bool
	ticSeed      int64

	experimentConfig string
	experimentOut    string

	rootCmd = &cobra.Command{
		Use:   "gametree",
		Short: "Monte Carlo tree search demos and experiments",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	gomokuCmd = &cobra.Command{
		Use:   "gomoku",
		Short: "Self-play gomoku, by default from the classic opening",
		RunE:  runGomoku, // defined in cmd_gomoku.go
	}

	mazeCmd = &cobra.Command{
		Use:   "maze",
		Short: "Two rovers collecting rewards in a random maze",
		RunE:  runMaze, // defined in cmd_maze.go
	}

	tictactoeCmd = &cobra.Command{
		Use:   "tictactoe",
		Short: "Search tic-tac-toe and print the expected line",
		RunE:  runTictactoe, // defined in cmd_tictactoe.go
	}

	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Run a matchup experiment from a YAML config",
		RunE:  runExperiment, // defined in cmd_experiment.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(gomokuCmd)
	gomokuCmd.Flags().IntVar(&gomokuSamples, "samples", 1000, "Search rounds per move")
	gomokuCmd.Flags().IntVar(&gomokuDepth, "depth", 15, "Tree depth cap")
	gomokuCmd.Flags().Int64Var(&gomokuSeed, "seed", 0, "Random seed, 0 draws one from the clock")
	gomokuCmd.Flags().BoolVar(&gomokuHeuristics, "heuristics", true, "Search only the neighborhood of placed stones")
	gomokuCmd.Flags().BoolVar(&gomokuOpening, "opening", true, "Replay the classic opening before the self-play")

	rootCmd.AddCommand(mazeCmd)
	mazeCmd.Flags().IntVar(&mazeTime, "time", 10, "Shared time budget in full rounds")
	mazeCmd.Flags().IntVar(&mazeSamples, "samples", 200, "Search rounds per move")
	mazeCmd.Flags().IntVar(&mazeDepth, "depth", 10, "Tree depth cap")
	mazeCmd.Flags().Int64Var(&mazeSeed, "seed", 0, "Random seed, 0 draws one from the clock")

	rootCmd.AddCommand(tictactoeCmd)
	tictactoeCmd.Flags().IntVar(&ticSamples, "samples", 2000, "Search rounds")
	tictactoeCmd.Flags().BoolVar(&ticLookahead, "lookahead", false, "Extract the line by exhaustive lookahead")
	tictactoeCmd.Flags().Int64Var(&ticSeed, "seed", 0, "Random seed, 0 draws one from the clock")

	rootCmd.AddCommand(experimentCmd)
	experimentCmd.Flags().StringVar(&experimentConfig, "config", "", "Path to the experiment YAML")
	experimentCmd.Flags().StringVar(&experimentOut, "out", "results", "Directory for experiment results")
	experimentCmd.MarkFlagRequired("config")
}
