package playback

import (
	"context"
	"iter"
	"sync/atomic"
	"time"

	"github.com/san-kum/sortviz/internal/step"
)

const (
	MinDelay     = 0
	MaxDelay     = 2000
	DefaultDelay = 1000
)

type Controller struct {
	delayMs   atomic.Int64
	wait      Waiter
	metrics   []Metric
	observers []Observer
}

func New() *Controller {
	c := &Controller{
		wait:      Sleep,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	c.delayMs.Store(DefaultDelay)
	return c
}

func (c *Controller) AddMetric(m Metric)     { c.metrics = append(c.metrics, m) }
func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }
func (c *Controller) SetWaiter(w Waiter)     { c.wait = w }

// SetDelay changes the pause between steps. A run in flight picks it up at
// its next suspension point.
func (c *Controller) SetDelay(ms int) error {
	if ms < MinDelay || ms > MaxDelay {
		return ErrDelayBounds
	}
	c.delayMs.Store(int64(ms))
	return nil
}

func (c *Controller) DelayMs() int {
	return int(c.delayMs.Load())
}

func (c *Controller) Delay() time.Duration {
	return time.Duration(c.delayMs.Load()) * time.Millisecond
}

// Play applies events to a copy of input in emission order until Complete
// or until ctx is done.
func (c *Controller) Play(ctx context.Context, runID string, input []int, events iter.Seq[step.Event]) *Result {
	working := make([]int, len(input))
	copy(working, input)

	result := &Result{
		RunID:   runID,
		Outcome: Canceled,
		Metrics: make(map[string]float64),
	}

	for _, m := range c.metrics {
		m.Reset()
	}

	for ev := range events {
		if ctx.Err() != nil {
			break
		}

		ev.Apply(working)
		result.Steps++

		for _, m := range c.metrics {
			m.Observe(ev)
		}

		snapshot := make([]int, len(working))
		copy(snapshot, working)
		frame := Frame{
			RunID:     runID,
			Seq:       result.Steps,
			Event:     ev,
			Values:    snapshot,
			Narration: ev.Narration,
		}
		for _, obs := range c.observers {
			obs.OnStep(frame)
		}

		if ev.Kind == step.KindComplete {
			result.Outcome = Completed
			break
		}

		if !c.wait(ctx, c.Delay()) {
			break
		}
	}

	result.Final = working
	for _, m := range c.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result
}

// Sleep is the default Waiter.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
