package main

import (
	"github.com/spf13/cobra"

	"gametree/experiments"
)

func runExperiment(cmd *cobra.Command, args []string) error {
	config, err := experiments.LoadConfig(experimentConfig)
	if err != nil {
		return err
	}
	return experiments.Run(cmd.Context(), config, experimentOut)
}
