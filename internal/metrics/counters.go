package metrics

import "github.com/san-kum/sortviz/internal/step"

// Counter counts the events of one kind seen during a run.
type Counter struct {
	name  string
	kind  step.Kind
	count int
}

func NewComparisons() *Counter {
	return &Counter{name: "comparisons", kind: step.KindCompare}
}

func NewSwaps() *Counter {
	return &Counter{name: "swaps", kind: step.KindSwap}
}

func NewPartitions() *Counter {
	return &Counter{name: "partitions", kind: step.KindRange}
}

func (c *Counter) Name() string {
	return c.name
}

func (c *Counter) Observe(ev step.Event) {
	if ev.Kind == c.kind {
		c.count++
	}
}

func (c *Counter) Value() float64 {
	return float64(c.count)
}

func (c *Counter) Reset() {
	c.count = 0
}

// Writes counts array positions written: two per Swap, one per Overwrite.
type Writes struct {
	count int
}

func NewWrites() *Writes {
	return &Writes{}
}

func (w *Writes) Name() string {
	return "writes"
}

func (w *Writes) Observe(ev step.Event) {
	switch ev.Kind {
	case step.KindSwap:
		w.count += 2
	case step.KindOverwrite:
		w.count++
	}
}

func (w *Writes) Value() float64 {
	return float64(w.count)
}

func (w *Writes) Reset() {
	w.count = 0
}
