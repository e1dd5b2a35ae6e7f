package sorting

import (
	"fmt"
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

type Bubble struct{}

func NewBubble() *Bubble {
	return &Bubble{}
}

func (b *Bubble) Name() string  { return "bubble" }
func (b *Bubble) Title() string { return "Bubble Sort" }

func (b *Bubble) Steps(input []int) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		arr := clone(input)
		n := len(arr)
		for i := 0; i < n; i++ {
			for j := 0; j < n-i-1; j++ {
				if !yield(step.Compare(j, j+1, fmt.Sprintf("Comparing %d and %d", arr[j], arr[j+1]))) {
					return
				}
				if arr[j] > arr[j+1] {
					ev := step.Swap(j, j+1, fmt.Sprintf("Swapping %d and %d", arr[j], arr[j+1]))
					ev.Apply(arr)
					if !yield(ev) {
						return
					}
				}
			}
		}
		yield(step.Complete(arr))
	}
}
