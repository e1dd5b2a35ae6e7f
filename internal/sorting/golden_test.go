package sorting

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/san-kum/sortviz/internal/step"
)

func renderLog(events []step.Event) []byte {
	var b strings.Builder
	for i, ev := range events {
		fmt.Fprintf(&b, "%d %s", i, ev)
		if ev.Kind == step.KindComplete {
			fmt.Fprintf(&b, " %v", ev.Sorted)
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// To regenerate: go test ./internal/sorting -update
func TestStepLogGolden(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm
		input     []int
	}{
		{"bubble_5_3_8_1", NewBubble(), []int{5, 3, 8, 1}},
		{"quick_3_1_2", NewQuick(), []int{3, 1, 2}},
		{"insertion_3_1_2", NewInsertion(), []int{3, 1, 2}},
		{"selection_3_1_2", NewSelection(), []int{3, 1, 2}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, _ := Collect(tt.algorithm, tt.input)
			g.Assert(t, tt.name, renderLog(events))
		})
	}
}
