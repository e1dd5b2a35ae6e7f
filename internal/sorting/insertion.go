package sorting

import (
	"fmt"
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

// Insertion shifts larger elements right one adjacent Swap at a time, so
// the key travels left with each shift.
type Insertion struct{}

func NewInsertion() *Insertion {
	return &Insertion{}
}

func (s *Insertion) Name() string  { return "insertion" }
func (s *Insertion) Title() string { return "Insertion Sort" }

func (s *Insertion) Steps(input []int) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		arr := clone(input)
		for i := 1; i < len(arr); i++ {
			key := arr[i]
			if !yield(step.Mark(i, fmt.Sprintf("Inserting %d into the sorted portion", key))) {
				return
			}
			for j := i - 1; j >= 0; j-- {
				if !yield(step.Compare(j, j+1, fmt.Sprintf("Comparing %d and %d", arr[j], key))) {
					return
				}
				if arr[j] <= key {
					break
				}
				ev := step.Swap(j, j+1, fmt.Sprintf("Moving %d to the right", arr[j]))
				ev.Apply(arr)
				if !yield(ev) {
					return
				}
			}
		}
		yield(step.Complete(arr))
	}
}
