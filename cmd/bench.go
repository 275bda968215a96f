package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-vector/pkg/app/bench"
)

var (
	benchConfigPath  string
	benchAppends     int
	benchInserts     int
	benchErases      int
	benchPayloadSize int
	benchSeed        int64
	benchReserve     int
	benchMaxCapacity int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a mixed append/insert/erase workload against the container",
	Long: `bench drives a seeded, reproducible workload against a fresh container and
reports every storage growth event plus final size, capacity, and throughput.

Workload parameters come from a yaml config file (--config), environment
variables (GOVECTOR_*), or flags; flags win.`,
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	req, err := LoadWorkloadConfig(benchConfigPath)
	if err != nil {
		return err
	}

	// Flags override config file values.
	flags := cmd.Flags()
	if flags.Changed("appends") {
		req.Appends = benchAppends
	}
	if flags.Changed("inserts") {
		req.Inserts = benchInserts
	}
	if flags.Changed("erases") {
		req.Erases = benchErases
	}
	if flags.Changed("payload-size") {
		req.PayloadSize = benchPayloadSize
	}
	if flags.Changed("seed") {
		req.Seed = benchSeed
	}
	if flags.Changed("reserve") {
		req.Reserve = benchReserve
	}
	if flags.Changed("max-capacity") {
		req.MaxCapacity = benchMaxCapacity
	}

	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "workload: %d appends, %d inserts, %d erases, payload %dB, seed %d\n",
			req.Appends, req.Inserts, req.Erases, req.PayloadSize, req.Seed)
	}

	resp, err := bench.Run(*req)
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}
	return bench.FormatOutput(os.Stdout, resp, outputFormat)
}

func init() {
	benchCmd.Flags().StringVar(&benchConfigPath, "config", "", "path to a yaml workload config file")
	benchCmd.Flags().IntVar(&benchAppends, "appends", 1000, "number of end insertions")
	benchCmd.Flags().IntVar(&benchInserts, "inserts", 0, "number of positional insertions at random positions")
	benchCmd.Flags().IntVar(&benchErases, "erases", 0, "number of erasures at random positions")
	benchCmd.Flags().IntVar(&benchPayloadSize, "payload-size", 64, "per-record payload size in bytes")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "workload seed")
	benchCmd.Flags().IntVar(&benchReserve, "reserve", 0, "pre-reserve capacity before the workload")
	benchCmd.Flags().IntVar(&benchMaxCapacity, "max-capacity", 0, "allocation budget (0 = unbounded)")

	rootCmd.AddCommand(benchCmd)
}
