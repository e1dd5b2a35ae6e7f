package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
)

var (
	algorithm  string
	delayMs    int
	size       int
	seed       int64
	shape      string
	inputText  string
	theme      string
	configFile string
	preset     string
	verbose    bool
	logFile    string
	// trace
	format  string
	svgPath string
	// watch
	frameRate int
	// bench
	sizes []int
	// check
	trials  int
	maxSize int
)

// main registers the commands and runs the interactive visualizer when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	if err := executeRoot(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// executeRoot runs cmd and closes the log file whatever the outcome.
func executeRoot(cmd *cobra.Command) error {
	err := cmd.Execute()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "sortviz",
		Short:             "step-by-step sorting algorithm visualizer",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runPlay,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&algorithm, "algorithm", "a", config.DefaultAlgorithm, "sorting algorithm")
	pf.IntVar(&delayMs, "delay", playback.DefaultDelay, "delay between steps in ms (0-2000)")
	pf.IntVar(&size, "size", input.DefaultSize, "random array size (max 100)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.StringVar(&shape, "shape", config.DefaultShape, "array shape")
	pf.StringVar(&inputText, "input", "", "custom array, comma separated")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "interactive terminal visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [algorithm]",
		Short: "animate one sort with the plain renderer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&frameRate, "fps", 30, "maximum frames per second (0 draws every step)")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print the step log of one sort",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, csv)")
	traceCmd.Flags().StringVar(&svgPath, "svg", "", "also write the sorted array as SVG")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every algorithm on the same array",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "operation counts across array sizes",
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, "array sizes")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "monte carlo check of the sorting invariants",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
	checkCmd.Flags().IntVar(&trials, "trials", 200, "number of random arrays")
	checkCmd.Flags().IntVar(&maxSize, "max-size", 100, "largest array length")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	rootCmd.AddCommand(playCmd, watchCmd, traceCmd, compareCmd, benchCmd, checkCmd, scenarioCmd, presetsCmd, algorithmsCmd)
	return rootCmd
}
