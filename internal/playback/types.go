package playback

import (
	"context"
	"time"

	"github.com/san-kum/sortviz/internal/step"
)

// Frame is what a renderer sees after one event has been applied.
type Frame struct {
	RunID     string
	Seq       int
	Event     step.Event
	Values    []int
	Narration string
}

type Observer interface {
	OnStep(f Frame)
}

type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnStep(f Frame) { fn(f) }

type Metric interface {
	Name() string
	Observe(ev step.Event)
	Value() float64
	Reset()
}

// Waiter suspends for d and reports false if ctx ended first.
type Waiter func(ctx context.Context, d time.Duration) bool

type Outcome int

const (
	Canceled Outcome = iota
	Completed
)

func (o Outcome) String() string {
	if o == Completed {
		return "completed"
	}
	return "canceled"
}

type Result struct {
	RunID   string
	Outcome Outcome
	Steps   int
	Final   []int
	Metrics map[string]float64
}
