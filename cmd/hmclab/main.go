package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/hmclab/internal/config"
)

var (
	dataDir    string
	targetName string
	nSamples   int
	stepSize   float64
	numSteps   int
	startX     float64
	startY     float64
	seed       int64
	configFile string
	preset     string
	chains     int
	addr       string
	frameRate  int
	batchSize  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hmclab",
		Short: "Hamiltonian Monte Carlo sampling lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hmclab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [target]",
		Short: "run a chain and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runChain,
	}
	addSamplingFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [target]",
		Short: "sample with live scatter visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSamplingFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&batchSize, "batch", 25, "samples per frame")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "expose the sampler over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "scatter plot of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [run_id]",
		Short: "per-coordinate trace of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  traceRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [target] [step_size...]",
		Short: "acceptance rate across step sizes",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareStepSizes,
	}
	compareCmd.Flags().IntVar(&nSamples, "samples", 2000, "samples per step size")
	compareCmd.Flags().IntVar(&numSteps, "steps", 20, "leapfrog steps")
	compareCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	compareCmd.Flags().IntVar(&chains, "chains", 4, "chains per step size")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id] [path]",
		Short: "export a stored run's samples to CSV",
		Args:  cobra.ExactArgs(2),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [target]",
		Short: "list presets for a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for target: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [target]",
		Short: "measure sampling throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchTarget,
	}
	addSamplingFlags(benchCmd)

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, listCmd, plotCmd, traceCmd,
		compareCmd, exportCSVCmd, exportJSONCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSamplingFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nSamples, "samples", config.DefaultSamples, "number of samples")
	cmd.Flags().Float64Var(&stepSize, "step-size", config.DefaultStepSize, "leapfrog step size")
	cmd.Flags().IntVar(&numSteps, "steps", config.DefaultNumSteps, "leapfrog steps per proposal")
	cmd.Flags().Float64Var(&startX, "start-x", 0, "initial x position")
	cmd.Flags().Float64Var(&startY, "start-y", 0, "initial y position")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}
