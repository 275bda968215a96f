package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-vector/pkg/app/bench"
)

var growthAppends int

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Print the capacity growth schedule for n appends from empty",
	Long: `growth shows which appends trigger a reallocation and the capacity before
and after each one, for a container filled by end insertion alone. Capacity
doubles whenever storage runs out, so the schedule is the geometric sequence
1, 2, 4, 8, ...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := bench.Schedule(growthAppends)
		if err != nil {
			return err
		}
		if quiet {
			return nil
		}
		return bench.FormatSchedule(os.Stdout, events, outputFormat)
	},
}

func init() {
	growthCmd.Flags().IntVarP(&growthAppends, "appends", "n", 1000, "number of appends to schedule")
	rootCmd.AddCommand(growthCmd)
}
