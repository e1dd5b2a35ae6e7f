package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Report is the terminal state of one run.
type Report struct {
	RunID     string
	Algorithm string
	Input     []int
	Outcome   playback.Outcome
	Steps     int
	Final     []int
	Metrics   map[string]float64
	Elapsed   time.Duration
}

// Run is a single start-sorting action. It is discarded once done.
type Run struct {
	ID        string
	Algorithm string
	Input     []int

	steps  atomic.Int64
	cancel context.CancelFunc
	done   chan struct{}
	report Report
}

// Steps is the number of events applied so far.
func (r *Run) Steps() int { return int(r.steps.Load()) }

func (r *Run) Cancel() { r.cancel() }

func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the run ends and returns its report.
func (r *Run) Wait() Report {
	<-r.done
	return r.report
}

type Coordinator struct {
	registry *sorting.Registry
	ctrl     *playback.Controller
	logger   *slog.Logger
	newID    func() string

	// mu serializes Start, Select and Cancel. The playback goroutine never
	// takes it.
	mu       sync.Mutex
	selected string
	active   atomic.Pointer[Run]
}

func New(registry *sorting.Registry, ctrl *playback.Controller, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{
		registry: registry,
		ctrl:     ctrl,
		logger:   logger,
		newID:    uuid.NewString,
		selected: registry.Names()[0],
	}
	ctrl.AddObserver(playback.ObserverFunc(c.onStep))
	return c
}

// NewDefault wires the standard registry and a controller that reports the
// default operation counters.
func NewDefault(logger *slog.Logger) *Coordinator {
	ctrl := playback.New()
	for _, m := range DefaultMetrics() {
		ctrl.AddMetric(m)
	}
	return New(sorting.NewRegistry(), ctrl, logger)
}

func DefaultMetrics() []playback.Metric {
	return []playback.Metric{
		metrics.NewComparisons(),
		metrics.NewSwaps(),
		metrics.NewWrites(),
		metrics.NewPartitions(),
	}
}

func (c *Coordinator) Controller() *playback.Controller { return c.ctrl }
func (c *Coordinator) Registry() *sorting.Registry      { return c.registry }

func (c *Coordinator) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Active returns the run in flight, or nil.
func (c *Coordinator) Active() *Run {
	r := c.active.Load()
	if r == nil {
		return nil
	}
	select {
	case <-r.done:
		return nil
	default:
		return r
	}
}

// Select changes the algorithm for the next run. Switching away from the
// current algorithm cancels the active run.
func (c *Coordinator) Select(name string) error {
	if _, err := c.registry.Get(name); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if name == c.selected {
		return nil
	}
	c.logger.Debug("algorithm selected", "algorithm", name, "previous", c.selected)
	c.selected = name
	c.stopActive()
	return nil
}

// Request describes one run. The coordinator assigns an ID when ID is empty.
type Request struct {
	ID        string
	Algorithm string
	Input     []int
}

// Start cancels any run in flight and starts the selected algorithm on a
// snapshot of input.
func (c *Coordinator) Start(ctx context.Context, input []int) (*Run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.launch(ctx, Request{Algorithm: c.selected, Input: input})
}

// StartAlgorithm selects name and starts it on input in one step, so no
// other Select or Start can land in between.
func (c *Coordinator) StartAlgorithm(ctx context.Context, name string, input []int) (*Run, error) {
	return c.Launch(ctx, Request{Algorithm: name, Input: input})
}

func (c *Coordinator) Launch(ctx context.Context, req Request) (*Run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.launch(ctx, req)
}

func (c *Coordinator) launch(ctx context.Context, req Request) (*Run, error) {
	alg, err := c.registry.Get(req.Algorithm)
	if err != nil {
		return nil, err
	}
	if alg.Name() != c.selected {
		c.logger.Debug("algorithm selected", "algorithm", alg.Name(), "previous", c.selected)
		c.selected = alg.Name()
	}

	c.stopActive()

	snapshot := make([]int, len(req.Input))
	copy(snapshot, req.Input)

	id := req.ID
	if id == "" {
		id = c.newID()
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := &Run{
		ID:        id,
		Algorithm: alg.Name(),
		Input:     snapshot,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	c.active.Store(run)

	c.logger.Info("run started",
		"run_id", run.ID,
		"algorithm", run.Algorithm,
		"size", len(snapshot),
		"delay_ms", c.ctrl.DelayMs(),
	)

	go func() {
		defer close(run.done)
		defer cancel()

		start := time.Now()
		res := c.ctrl.Play(runCtx, run.ID, run.Input, alg.Steps(run.Input))
		run.report = Report{
			RunID:     run.ID,
			Algorithm: run.Algorithm,
			Input:     run.Input,
			Outcome:   res.Outcome,
			Steps:     res.Steps,
			Final:     res.Final,
			Metrics:   res.Metrics,
			Elapsed:   time.Since(start),
		}

		c.logger.Info("run "+res.Outcome.String(),
			"run_id", run.ID,
			"algorithm", run.Algorithm,
			"steps", res.Steps,
			"elapsed", run.report.Elapsed,
		)
	}()

	return run, nil
}

// Execute selects algorithm, runs it on input and waits for the report.
func (c *Coordinator) Execute(ctx context.Context, algorithm string, input []int) (Report, error) {
	run, err := c.StartAlgorithm(ctx, algorithm, input)
	if err != nil {
		return Report{}, fmt.Errorf("execute: %w", err)
	}
	return run.Wait(), nil
}

// Cancel stops the active run, if any, and waits for it to end.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopActive()
}

func (c *Coordinator) stopActive() {
	r := c.active.Load()
	if r == nil {
		return
	}
	r.cancel()
	<-r.done
}

func (c *Coordinator) onStep(f playback.Frame) {
	if r := c.active.Load(); r != nil && r.ID == f.RunID {
		r.steps.Add(1)
	}
	c.logger.Debug("step applied",
		"run_id", f.RunID,
		"seq", f.Seq,
		"event", f.Event.String(),
	)
}
