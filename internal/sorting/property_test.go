package sorting

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/san-kum/sortviz/internal/step"
)

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 100
	properties := gopter.NewProperties(parameters)

	for _, alg := range allAlgorithms() {
		alg := alg

		properties.Property(alg.Name()+" yields a sorted permutation", prop.ForAll(
			func(input []int) bool {
				events, sorted := Collect(alg, input)
				got := replay(input, events)
				want := slices.Clone(input)
				slices.Sort(want)
				return slices.Equal(got, want) && slices.Equal(sorted, want)
			},
			gen.SliceOf(gen.IntRange(-1000, 1000)),
		))

		properties.Property(alg.Name()+" is deterministic", prop.ForAll(
			func(input []int) bool {
				first, _ := Collect(alg, input)
				second, _ := Collect(alg, input)
				return string(renderLog(first)) == string(renderLog(second))
			},
			gen.SliceOf(gen.IntRange(-50, 50)),
		))

		properties.Property(alg.Name()+" never swaps sorted input", prop.ForAll(
			func(input []int) bool {
				sorted := slices.Clone(input)
				slices.Sort(sorted)
				events, _ := Collect(alg, sorted)
				return countKind(events, step.KindSwap) == 0
			},
			gen.SliceOf(gen.IntRange(0, 10)),
		))
	}

	properties.TestingRun(t)
}
