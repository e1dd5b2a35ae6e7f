package sorting

import (
	"fmt"
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

// Quick is quicksort with the Lomuto partition scheme. The pivot is always
// the last element of the active range.
type Quick struct{}

func NewQuick() *Quick {
	return &Quick{}
}

func (q *Quick) Name() string  { return "quick" }
func (q *Quick) Title() string { return "Quick Sort" }

func (q *Quick) Steps(input []int) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		arr := clone(input)
		if !q.sort(arr, 0, len(arr)-1, yield) {
			return
		}
		yield(step.Complete(arr))
	}
}

// sort recurses on arr in place; it reports false once the consumer stops.
func (q *Quick) sort(arr []int, low, high int, yield func(step.Event) bool) bool {
	if low >= high {
		return true
	}
	p, ok := q.partition(arr, low, high, yield)
	if !ok {
		return false
	}
	return q.sort(arr, low, p-1, yield) && q.sort(arr, p+1, high, yield)
}

func (q *Quick) partition(arr []int, low, high int, yield func(step.Event) bool) (int, bool) {
	if !yield(step.Range(low, high, fmt.Sprintf("Partitioning array from index %d to %d", low, high))) {
		return 0, false
	}
	pivot := arr[high]
	if !yield(step.Pivot(high, pivot, fmt.Sprintf("Choosing pivot: %d", pivot))) {
		return 0, false
	}

	i := low - 1
	for j := low; j < high; j++ {
		if !yield(step.Compare(j, high, fmt.Sprintf("Comparing %d with pivot %d", arr[j], pivot))) {
			return 0, false
		}
		if arr[j] < pivot {
			i++
			// i == j would exchange an element with itself.
			if i != j {
				ev := step.Swap(i, j, fmt.Sprintf("Swapping %d with %d", arr[i], arr[j]))
				ev.Apply(arr)
				if !yield(ev) {
					return 0, false
				}
			}
		}
	}

	p := i + 1
	if arr[p] != pivot {
		ev := step.Swap(p, high, fmt.Sprintf("Placing pivot %d in its correct position", pivot))
		ev.Apply(arr)
		if !yield(ev) {
			return 0, false
		}
	}
	return p, true
}
