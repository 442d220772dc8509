package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/driftsim/internal/automation"
	"github.com/san-kum/driftsim/internal/config"
	"github.com/san-kum/driftsim/internal/drift"
	"github.com/san-kum/driftsim/internal/experiment"
	"github.com/san-kum/driftsim/internal/export"
	"github.com/san-kum/driftsim/internal/logging"
	"github.com/san-kum/driftsim/internal/optim"
	"github.com/san-kum/driftsim/internal/viz"
)

var (
	p0          float64
	size        int
	generations int
	populations int
	seed        int64
	configFile  string
	preset      string
	saveConfig  string
	logLevel    string
	logFormat   string
	// Output
	format  string
	outFile string
	noPlot  bool
	// Sweep grid
	sweepSizes string
	sweepFreqs string

	log *zap.Logger
)

// main registers the driftsim commands and opens the dashboard when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "driftsim",
		Short:         "wright-fisher genetic drift simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(logging.Config{Level: logLevel, Format: logFormat})
		},
		RunE: runDashboard,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	addSimFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive drift dashboard",
		RunE:  runDashboard,
	}
	addSimFlags(tuiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate populations and plot allele frequencies",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "print the summary only")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "simulate and write trajectories as csv or json",
		RunE:  exportRun,
	}
	addSimFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare fixation and heterozygosity across sizes and frequencies",
		RunE:  runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepSizes, "sizes", "10,50,100,500", "comma separated population sizes")
	sweepCmd.Flags().StringVar(&sweepFreqs, "freqs", "0.1,0.5,0.9", "comma separated initial frequencies")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the experiments listed in a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the drift model",
		RunE:  benchDrift,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tP0\tSIZE\tGENS\tPOPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\t%d\n", name, p.InitialFrequency, p.PopulationSize, p.Generations, p.Populations)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, exportCmd, sweepCmd, scenarioCmd, benchCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if log != nil {
			log.Error("command failed", zap.Error(err))
			_ = log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&p0, "p0", config.DefaultFrequency, "initial frequency of allele A")
	cmd.Flags().IntVarP(&size, "size", "n", config.DefaultSize, "population size (allele copies)")
	cmd.Flags().IntVarP(&generations, "gens", "g", config.DefaultGenerations, "number of generations")
	cmd.Flags().IntVarP(&populations, "pops", "m", config.DefaultPopulations, "number of populations")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved configuration to this yaml file")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("p0") || (preset == "" && configFile == "") {
		cfg.InitialFrequency = p0
	}
	if flags.Changed("size") || (preset == "" && configFile == "") {
		cfg.PopulationSize = size
	}
	if flags.Changed("gens") || (preset == "" && configFile == "") {
		cfg.Generations = generations
	}
	if flags.Changed("pops") || (preset == "" && configFile == "") {
		cfg.Populations = populations
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
	}
	return cfg, nil
}

func experimentConfig(cfg *config.Config) experiment.Config {
	return experiment.Config{
		Params:      cfg.Params(),
		Populations: cfg.Populations,
		Seed:        cfg.Seed,
	}
}

func simulate(cmd *cobra.Command) (*experiment.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	registry := experiment.NewRegistry()
	exp := experiment.New(experimentConfig(cfg), registry.DefaultMetrics()...)

	log.Debug("simulating",
		zap.Float64("p0", cfg.InitialFrequency),
		zap.Int("size", cfg.PopulationSize),
		zap.Int("generations", cfg.Generations),
		zap.Int("populations", cfg.Populations),
		zap.Int64("seed", cfg.Seed))

	start := time.Now()
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return nil, err
	}
	log.Debug("simulation finished", zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	result, err := simulate(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(result))
	if noPlot || len(result.Trajectories) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println(viz.PlotTrajectories(result.Trajectories, viz.DefaultPlotOptions()))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	result, err := simulate(cmd)
	if err != nil {
		return err
	}

	if outFile == "" {
		return export.Write(os.Stdout, format, result)
	}
	if err := export.WriteFile(outFile, format, result); err != nil {
		return err
	}
	log.Info("exported trajectories", zap.String("path", outFile), zap.String("format", format))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sizes, err := parseInts(sweepSizes)
	if err != nil {
		return fmt.Errorf("--sizes: %w", err)
	}
	freqs, err := parseFloats(sweepFreqs)
	if err != nil {
		return fmt.Errorf("--freqs: %w", err)
	}

	s := &optim.Sweep{
		Sizes:       sizes,
		Frequencies: freqs,
		Generations: cfg.Generations,
		Populations: cfg.Populations,
		Seed:        cfg.Seed,
	}
	points, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("sweep: %d generations, %d populations per point\n\n", cfg.Generations, cfg.Populations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tP0\tFIXED\tLOST\tH_MEAN\tH_FINAL\tH_EXPECTED")
	for _, pt := range points {
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.2f\t%.4f\t%.4f\t%.4f\n",
			pt.Size, pt.Frequency, pt.FixedFraction, pt.LostFraction,
			pt.MeanHeterozygosity, pt.FinalHeterozygosity, pt.ExpectedHeterozygosity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := optim.Best(points, optim.HeterozygosityError); ok {
		fmt.Printf("\nclosest to expectation: size=%d p0=%.2f (|dH|=%.4f)\n", best.Size, best.Frequency, optim.HeterozygosityError(best))
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(cmd.Context(), sc, experiment.NewRegistry(), log)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tP0\tSIZE\tGENS\tPOPS\tFIXED\tLOST\tSEGREGATING")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.Step.Name, r.Step.InitialFrequency, r.Step.PopulationSize, r.Step.Generations,
			r.Step.Populations, r.Outcome.Fixed, r.Outcome.Lost, r.Outcome.Segregating)
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	return err
}

func benchDrift(cmd *cobra.Command, args []string) error {
	sizes := []int{10, 100, 1000, 10000}
	gens := []int{100, 1000}

	fmt.Println("benchmarking drift.Simulate")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tGENS\tRUNS\tTIME\tGENS/SEC")

	ctx := cmd.Context()
	const runs = 100
	for _, n := range sizes {
		for _, g := range gens {
			if err := ctx.Err(); err != nil {
				return err
			}

			params := drift.Params{InitialFrequency: 0.5, PopulationSize: n, Generations: g}
			src := experiment.Source(42, 0)

			start := time.Now()
			for i := 0; i < runs; i++ {
				if _, err := drift.Simulate(params, src); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			perSec := float64(runs*g) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n", n, g, runs, elapsed, perSec)
		}
	}

	return w.Flush()
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
