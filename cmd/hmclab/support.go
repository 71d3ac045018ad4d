package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hmclab/internal/chain"
	"github.com/san-kum/hmclab/internal/config"
	"github.com/san-kum/hmclab/internal/hmc"
	"github.com/san-kum/hmclab/internal/server"
	"github.com/san-kum/hmclab/internal/store"
	"github.com/san-kum/hmclab/internal/summary"
	"github.com/san-kum/hmclab/internal/target"
	"github.com/san-kum/hmclab/internal/viz"
)

// resolveConfig merges preset, config file and flags into one run
// configuration. Precedence: flags > config file > preset > defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Target = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Target, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(cfg.Target))
		}
		*cfg = *p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *fileCfg
		if len(args) > 0 {
			cfg.Target = args[0]
		}
	}

	if cmd.Flags().Changed("samples") {
		cfg.Samples = nSamples
	}
	if cmd.Flags().Changed("step-size") {
		cfg.StepSize = stepSize
	}
	if cmd.Flags().Changed("steps") {
		cfg.NumSteps = numSteps
	}
	if cmd.Flags().Changed("start-x") {
		cfg.Start.X = startX
	}
	if cmd.Flags().Changed("start-y") {
		cfg.Start.Y = startY
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runChain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("sampling %s...\n", cfg.Target)
	began := time.Now()
	res, err := chain.SampleSeeded(cfg.Samples, cfg.StepSize, cfg.NumSteps,
		cfg.Start.X, cfg.Start.Y, cfg.Target, cfg.Seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)

	runID, err := st.Save(cfg.Target, cfg.StepSize, cfg.NumSteps,
		hmc.Point{X: cfg.Start.X, Y: cfg.Start.Y}, res)
	if err != nil {
		return err
	}

	stats := summary.Compute(res.Samples)
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(res.Samples))
	fmt.Printf("acceptance: %.1f%%\n", 100*res.AcceptanceRate)
	fmt.Printf("mean: (%.4f, %.4f)\n", stats.Mean.X, stats.Mean.Y)
	fmt.Printf("variance: (%.4f, %.4f)  cov: %.4f\n", stats.Var.X, stats.Var.Y, stats.Cov)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	tgt, err := target.New(cfg.Target)
	if err != nil {
		return err
	}
	ch, err := chain.New(tgt, cfg.StepSize, cfg.NumSteps, cfg.Seed)
	if err != nil {
		return err
	}
	return viz.RunLive(ch, hmc.Point{X: cfg.Start.X, Y: cfg.Start.Y},
		cfg.Samples, batchSize, frameRate)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("listening on %s\n", addr)
	return server.ListenAndServe(addr)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTARGET\tSAMPLES\tSTEP\tL\tACCEPT\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%d\t%.1f%%\t%s\n",
			r.ID, r.Target, r.Samples, r.StepSize, r.NumSteps,
			100*r.AcceptanceRate, r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.LoadMeta(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	c := viz.NewCanvas(80, 24)
	b := viz.SampleBounds(samples)
	c.Scatter(samples, b)
	fmt.Print(c.String())
	fmt.Printf("%s  %d samples  acceptance %.1f%%  x %.2f..%.2f  y %.2f..%.2f\n",
		meta.Target, len(samples), 100*meta.AcceptanceRate,
		b.MinX, b.MaxX, b.MinY, b.MaxY)
	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("run %s has too few samples to plot", args[0])
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
		ys[i] = s.Y
	}
	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("x trace")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y trace")))
	return nil
}

func compareStepSizes(cmd *cobra.Command, args []string) error {
	tgtName := args[0]
	if _, err := target.New(tgtName); err != nil {
		return err
	}

	sizes := make([]float64, 0, len(args)-1)
	for _, a := range args[1:] {
		eps, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid step size %q: %w", a, err)
		}
		sizes = append(sizes, eps)
	}

	rates := make([]float64, len(sizes))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP SIZE\tACCEPTANCE")
	for i, eps := range sizes {
		e := chain.NewEnsemble(tgtName, eps, numSteps, chains, seed+int64(i*chains))
		results, err := e.Run(startX, startY, nSamples)
		if err != nil {
			return err
		}
		total := 0.0
		for _, r := range results {
			total += r.AcceptanceRate
		}
		rates[i] = total / float64(len(results))
		fmt.Fprintf(w, "%g\t%.1f%%\n", eps, 100*rates[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(rates) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(rates,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("acceptance rate by step size (input order)")))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	if err := st.ExportCSV(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], args[1])
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	return st.ExportJSON(args[0], os.Stdout)
}

func benchTarget(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	began := time.Now()
	res, err := chain.SampleSeeded(cfg.Samples, cfg.StepSize, cfg.NumSteps,
		cfg.Start.X, cfg.Start.Y, cfg.Target, cfg.Seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)

	perSample := elapsed / time.Duration(max(1, len(res.Samples)))
	fmt.Printf("%s: %d samples in %v (%v/sample, %d gradient evals/sample)\n",
		cfg.Target, len(res.Samples), elapsed, perSample, cfg.NumSteps)
	return nil
}
