package automation

import (
	"context"
	"log/slog"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/runner"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Measurement is one undelayed run of an algorithm.
type Measurement struct {
	Algorithm string
	Size      int
	Outcome   playback.Outcome
	Steps     int
	Final     []int
	Metrics   map[string]float64
	Elapsed   time.Duration
}

// Measure plays alg over input with no delay on a private controller.
func Measure(ctx context.Context, alg sorting.Algorithm, values []int) Measurement {
	ctrl := playback.New()
	_ = ctrl.SetDelay(0)
	for _, m := range runner.DefaultMetrics() {
		ctrl.AddMetric(m)
	}

	start := time.Now()
	res := ctrl.Play(ctx, alg.Name(), values, alg.Steps(values))
	return Measurement{
		Algorithm: alg.Name(),
		Size:      len(values),
		Outcome:   res.Outcome,
		Steps:     res.Steps,
		Final:     res.Final,
		Metrics:   res.Metrics,
		Elapsed:   time.Since(start),
	}
}

// Compare measures every registered algorithm on the same input
// concurrently. Results follow the registry's display order.
func Compare(ctx context.Context, registry *sorting.Registry, values []int) ([]Measurement, error) {
	names := registry.Names()
	results := make([]Measurement, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		alg, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			results[i] = Measure(ctx, alg, values)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Sweep measures algorithms across input sizes. Every algorithm sees the
// same input for a given size.
type Sweep struct {
	Algorithms []string
	Sizes      []int
	Shape      string
	Seed       int64
}

// RunSweep returns one measurement per (algorithm, size), ordered by
// algorithm and then by size.
func RunSweep(ctx context.Context, sweep *Sweep, registry *sorting.Registry) ([]Measurement, error) {
	shape := sweep.Shape
	if shape == "" {
		shape = "random"
	}
	rng := rand.New(rand.NewSource(sweep.Seed))

	inputs := make([][]int, len(sweep.Sizes))
	for i, size := range sweep.Sizes {
		values, err := input.Shape(shape, size, rng)
		if err != nil {
			return nil, err
		}
		inputs[i] = values
	}

	algs := make([]sorting.Algorithm, len(sweep.Algorithms))
	for i, name := range sweep.Algorithms {
		alg, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		algs[i] = alg
	}

	results := make([]Measurement, len(algs)*len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for a, alg := range algs {
		for s, values := range inputs {
			g.Go(func() error {
				results[a*len(inputs)+s] = Measure(ctx, alg, values)
				return ctx.Err()
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("sweep complete", "algorithms", len(algs), "sizes", len(inputs))
	return results, nil
}

type MonteCarloConfig struct {
	Algorithms []string
	NumTrials  int
	MaxSize    int
	Seed       int64
}

// MonteCarloResult records whether one trial kept the sorting invariants.
type MonteCarloResult struct {
	TrialID     int
	Algorithm   string
	Input       []int
	Final       []int
	Completed   bool
	Permutation bool
	Sorted      bool
}

func (r MonteCarloResult) OK() bool {
	return r.Completed && r.Permutation && r.Sorted
}

// RunMonteCarlo plays every algorithm over random inputs of random length
// in [0, MaxSize] and checks the final array against the input.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *sorting.Registry) ([]MonteCarloResult, error) {
	maxSize := cfg.MaxSize
	if maxSize <= 0 || maxSize > input.MaxSize {
		maxSize = input.MaxSize
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	inputs := make([][]int, cfg.NumTrials)
	for i := range inputs {
		inputs[i] = input.Random(rng.Intn(maxSize+1), rng)
	}

	algs := make([]sorting.Algorithm, len(cfg.Algorithms))
	for i, name := range cfg.Algorithms {
		alg, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		algs[i] = alg
	}

	results := make([]MonteCarloResult, len(algs)*len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for a, alg := range algs {
		for trial, values := range inputs {
			g.Go(func() error {
				m := Measure(ctx, alg, values)
				want := slices.Clone(values)
				slices.Sort(want)
				results[a*len(inputs)+trial] = MonteCarloResult{
					TrialID:     trial,
					Algorithm:   alg.Name(),
					Input:       values,
					Final:       m.Final,
					Completed:   m.Outcome == playback.Completed,
					Permutation: slices.Equal(want, sortedCopy(m.Final)),
					Sorted:      slices.IsSorted(m.Final),
				}
				return ctx.Err()
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sortedCopy(values []int) []int {
	c := slices.Clone(values)
	slices.Sort(c)
	return c
}

// Failures returns the trials that broke an invariant.
func Failures(results []MonteCarloResult) []MonteCarloResult {
	var failed []MonteCarloResult
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}
