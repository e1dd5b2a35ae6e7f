package metrics

import (
	"testing"

	"github.com/san-kum/sortviz/internal/step"
)

func TestCounters(t *testing.T) {
	events := []step.Event{
		step.Range(0, 3, ""),
		step.Pivot(3, 1, ""),
		step.Compare(0, 3, ""),
		step.Swap(0, 1, ""),
		step.Compare(1, 3, ""),
		step.Overwrite(2, 5, ""),
		step.Complete(nil),
	}

	comparisons := NewComparisons()
	swaps := NewSwaps()
	partitions := NewPartitions()
	writes := NewWrites()
	for _, ev := range events {
		comparisons.Observe(ev)
		swaps.Observe(ev)
		partitions.Observe(ev)
		writes.Observe(ev)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{comparisons.Name(), comparisons.Value(), 2},
		{swaps.Name(), swaps.Value(), 1},
		{partitions.Name(), partitions.Value(), 1},
		{writes.Name(), writes.Value(), 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCounterReset(t *testing.T) {
	c := NewSwaps()
	c.Observe(step.Swap(0, 1, ""))
	if c.Value() == 0 {
		t.Error("expected non-zero count")
	}

	c.Reset()
	if c.Value() != 0 {
		t.Error("expected zero count after reset")
	}

	w := NewWrites()
	w.Observe(step.Swap(0, 1, ""))
	w.Reset()
	if w.Value() != 0 {
		t.Error("expected zero writes after reset")
	}
}
