package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/runner"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	logger  = slog.New(slog.DiscardHandler)
	logDest *os.File
)

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logDest = f
		w = f
	case interactive(cmd):
		// the TUI owns the terminal
		w = io.Discard
	}

	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func closeLog() error {
	if logDest == nil {
		return nil
	}
	err := logDest.Close()
	logDest = nil
	return err
}

func interactive(cmd *cobra.Command) bool {
	return cmd.Name() == "sortviz" || cmd.Name() == "play"
}

// resolveConfig applies the preset, then the config file, then any flag set
// on the command line.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	name := algorithm
	if len(args) > 0 {
		name = args[0]
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if len(args) > 0 || flags.Changed("algorithm") {
		cfg.Algorithm = name
	}
	if flags.Changed("delay") {
		cfg.DelayMs = delayMs
	}
	if flags.Changed("size") {
		cfg.Size = size
		cfg.Input = ""
	}
	if flags.Changed("shape") {
		cfg.Shape = shape
		cfg.Input = ""
	}
	if flags.Changed("input") {
		cfg.Input = inputText
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	rng := cfg.Rand(time.Now().UnixNano())
	values, err := cfg.Array(rng)
	if err != nil {
		return err
	}

	coord := runner.NewDefault(logger)
	if err := coord.Select(cfg.Algorithm); err != nil {
		return err
	}
	if err := coord.Controller().SetDelay(cfg.DelayMs); err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()
	return viz.Run(ctx, coord, viz.Options{
		Values: values,
		Size:   cfg.Size,
		Rand:   rng,
		Theme:  cfg.Theme,
	})
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	values, err := cfg.Array(cfg.Rand(time.Now().UnixNano()))
	if err != nil {
		return err
	}

	coord := runner.NewDefault(logger)
	alg, err := coord.Registry().Get(cfg.Algorithm)
	if err != nil {
		return err
	}
	if err := coord.Controller().SetDelay(cfg.DelayMs); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := tui.NewLiveRenderer(out, alg.Title(), frameRate)
	coord.Controller().AddObserver(renderer)

	ctx, cancel := signalContext(cmd)
	defer cancel()

	renderer.Start()
	report, err := coord.Execute(ctx, cfg.Algorithm, values)
	renderer.Stop()
	if err != nil {
		return err
	}

	printReport(out, report)
	return nil
}

func printReport(out io.Writer, r runner.Report) {
	fmt.Fprintf(out, "\n%s %s in %v\n", r.Algorithm, r.Outcome, r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "run id: %s\n", r.RunID)
	fmt.Fprintf(out, "steps: %d\n", r.Steps)
	fmt.Fprintf(out, "final: [%s]\n", input.Format(r.Final))
	fmt.Fprintln(out, "\nmetrics:")
	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.0f\n", name, r.Metrics[name])
	}
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	values, err := cfg.Array(cfg.Rand(time.Now().UnixNano()))
	if err != nil {
		return err
	}

	alg, err := sorting.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return err
	}

	tr := export.NewTrace(alg, values)
	if err := export.Write(cmd.OutOrStdout(), format, tr); err != nil {
		return err
	}

	if svgPath != "" {
		last := tr.Events[len(tr.Events)-1]
		svg := export.FrameToSVG(playback.Frame{Values: tr.Final, Event: last}, 800, 400)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		logger.Info("svg written", "path", svgPath)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	values, err := cfg.Array(cfg.Rand(time.Now().UnixNano()))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()
	results, err := automation.Compare(ctx, sorting.NewRegistry(), values)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "input: [%s]\n\n", input.Format(values))
	writeMeasurements(out, results)
	return nil
}

func writeMeasurements(out io.Writer, results []automation.Measurement) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES\tPARTITIONS\tELAPSED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\t%.0f\t%.0f\t%.0f\t%v\n",
			r.Algorithm, r.Size, r.Steps,
			r.Metrics["comparisons"], r.Metrics["swaps"], r.Metrics["writes"], r.Metrics["partitions"],
			r.Elapsed.Round(time.Microsecond))
	}
	w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	registry := sorting.NewRegistry()
	names := args
	if len(names) == 0 {
		names = registry.Names()
	}
	benchSeed := cfg.Seed
	if benchSeed == 0 {
		benchSeed = time.Now().UnixNano()
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()
	results, err := automation.RunSweep(ctx, &automation.Sweep{
		Algorithms: names,
		Sizes:      sizes,
		Shape:      cfg.Shape,
		Seed:       benchSeed,
	}, registry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeMeasurements(out, results)

	if len(sizes) > 1 {
		data := make([][]float64, len(names))
		for i := range names {
			data[i] = make([]float64, len(sizes))
			for j := range sizes {
				data[i][j] = results[i*len(sizes)+j].Metrics["comparisons"]
			}
		}
		graph := asciigraph.PlotMany(data,
			asciigraph.Height(15),
			asciigraph.Width(60),
			asciigraph.Caption("comparisons by size: "+strings.Join(names, ", ")),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	registry := sorting.NewRegistry()
	ctx, cancel := signalContext(cmd)
	defer cancel()
	results, err := automation.RunMonteCarlo(ctx, &automation.MonteCarloConfig{
		Algorithms: registry.Names(),
		NumTrials:  trials,
		MaxSize:    maxSize,
		Seed:       cfg.Seed,
	}, registry)
	if err != nil {
		return err
	}

	failed := automation.Failures(results)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d runs, %d failures\n", len(results), len(failed))
	for _, r := range failed {
		fmt.Fprintf(out, "  trial %d %s: input [%s] final [%s] completed=%v permutation=%v sorted=%v\n",
			r.TrialID, r.Algorithm, input.Format(r.Input), input.Format(r.Final), r.Completed, r.Permutation, r.Sorted)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d runs broke an invariant", len(failed))
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	coord := runner.NewDefault(logger)
	reports, err := automation.RunScenario(ctx, scenario, coord)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario %s: %d runs\n", scenario.Name, len(reports))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tALGORITHM\tOUTCOME\tSTEPS\tFINAL")
	for i, r := range reports {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t[%s]\n", i+1, r.Algorithm, r.Outcome, r.Steps, input.Format(r.Final))
	}
	w.Flush()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Fprintf(out, "no presets for algorithm: %s\n", args[0])
		return nil
	}
	fmt.Fprintf(out, "presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	registry := sorting.NewRegistry()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, name := range registry.Names() {
		alg, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, alg.Title())
	}
	return w.Flush()
}
