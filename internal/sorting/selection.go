package sorting

import (
	"fmt"
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

type Selection struct{}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Name() string  { return "selection" }
func (s *Selection) Title() string { return "Selection Sort" }

func (s *Selection) Steps(input []int) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		arr := clone(input)
		n := len(arr)
		// The final pass has no candidates left to scan.
		for i := 0; i < n-1; i++ {
			if !yield(step.Mark(i, fmt.Sprintf("Finding minimum element from index %d to %d", i, n-1))) {
				return
			}
			minIdx := i
			for j := i + 1; j < n; j++ {
				if !yield(step.Compare(minIdx, j, fmt.Sprintf("Comparing %d and %d", arr[minIdx], arr[j]))) {
					return
				}
				if arr[j] < arr[minIdx] {
					minIdx = j
				}
			}
			if minIdx != i {
				ev := step.Swap(i, minIdx, fmt.Sprintf("Swapping %d with %d", arr[i], arr[minIdx]))
				ev.Apply(arr)
				if !yield(ev) {
					return
				}
			}
		}
		yield(step.Complete(arr))
	}
}
