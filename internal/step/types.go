package step

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindCompare Kind = iota
	KindSwap
	KindOverwrite
	KindPivot
	KindRange
	KindMark
	KindComplete
)

var kindNames = [...]string{
	KindCompare:   "compare",
	KindSwap:      "swap",
	KindOverwrite: "overwrite",
	KindPivot:     "pivot",
	KindRange:     "range",
	KindMark:      "mark",
	KindComplete:  "complete",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown step kind: %q", text)
}

// Mutates reports whether events of this kind change the working array.
func (k Kind) Mutates() bool {
	return k == KindSwap || k == KindOverwrite
}

// Event is one atomic operation. I and J hold the positions the kind
// refers to (low and high for Range); Value is set for Overwrite and Pivot.
type Event struct {
	Kind      Kind   `json:"kind"`
	I         int    `json:"i"`
	J         int    `json:"j"`
	Value     int    `json:"value"`
	Narration string `json:"narration"`
	// Sorted is the terminal artifact carried by Complete.
	Sorted []int `json:"sorted,omitempty"`
}

func Compare(i, j int, narration string) Event {
	return Event{Kind: KindCompare, I: i, J: j, Narration: narration}
}

func Swap(i, j int, narration string) Event {
	return Event{Kind: KindSwap, I: i, J: j, Narration: narration}
}

func Overwrite(i, value int, narration string) Event {
	return Event{Kind: KindOverwrite, I: i, J: i, Value: value, Narration: narration}
}

func Pivot(i, value int, narration string) Event {
	return Event{Kind: KindPivot, I: i, J: i, Value: value, Narration: narration}
}

func Range(low, high int, narration string) Event {
	return Event{Kind: KindRange, I: low, J: high, Narration: narration}
}

func Mark(i int, narration string) Event {
	return Event{Kind: KindMark, I: i, J: i, Narration: narration}
}

// CompleteNarration is the narration of every Complete event.
const CompleteNarration = "Sorting complete!"

// Complete builds the terminal event. sorted is copied.
func Complete(sorted []int) Event {
	s := make([]int, len(sorted))
	copy(s, sorted)
	return Event{Kind: KindComplete, Narration: CompleteNarration, Sorted: s}
}

// Apply performs the event's effect on arr. Non-mutating kinds are no-ops.
// Indices are trusted: an out-of-range index is a generator defect and
// panics.
func (e Event) Apply(arr []int) {
	switch e.Kind {
	case KindSwap:
		arr[e.I], arr[e.J] = arr[e.J], arr[e.I]
	case KindOverwrite:
		arr[e.I] = e.Value
	}
}

func (e Event) String() string {
	var b strings.Builder
	switch e.Kind {
	case KindCompare, KindSwap, KindRange:
		fmt.Fprintf(&b, "%s(%d, %d)", e.Kind, e.I, e.J)
	case KindOverwrite, KindPivot:
		fmt.Fprintf(&b, "%s(%d, %d)", e.Kind, e.I, e.Value)
	case KindMark:
		fmt.Fprintf(&b, "%s(%d)", e.Kind, e.I)
	default:
		b.WriteString(e.Kind.String())
	}
	if e.Narration != "" {
		b.WriteString(" ")
		b.WriteString(e.Narration)
	}
	return b.String()
}
