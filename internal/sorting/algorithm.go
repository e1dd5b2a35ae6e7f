package sorting

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

// Algorithm produces the step log for one sort of input.
type Algorithm interface {
	Name() string
	Title() string
	Steps(input []int) iter.Seq[step.Event]
}

// Collect drains the whole log and returns it with the terminal sorted
// sequence.
func Collect(alg Algorithm, input []int) ([]step.Event, []int) {
	events := make([]step.Event, 0, len(input)*len(input)+1)
	var sorted []int
	for ev := range alg.Steps(input) {
		events = append(events, ev)
		if ev.Kind == step.KindComplete {
			sorted = ev.Sorted
		}
	}
	return events, sorted
}

func clone(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}
