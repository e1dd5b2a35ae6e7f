package step

import (
	"encoding/json"
	"testing"
)

func TestEvent_Apply(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		in    []int
		want  []int
	}{
		{"swap", Swap(0, 2, ""), []int{1, 2, 3}, []int{3, 2, 1}},
		{"self swap", Swap(1, 1, ""), []int{1, 2, 3}, []int{1, 2, 3}},
		{"overwrite", Overwrite(1, 9, ""), []int{1, 2, 3}, []int{1, 9, 3}},
		{"compare", Compare(0, 1, ""), []int{2, 1}, []int{2, 1}},
		{"pivot", Pivot(1, 1, ""), []int{2, 1}, []int{2, 1}},
		{"range", Range(0, 1, ""), []int{2, 1}, []int{2, 1}},
		{"mark", Mark(0, ""), []int{2, 1}, []int{2, 1}},
		{"complete", Complete([]int{1, 2}), []int{2, 1}, []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.event.Apply(tt.in)
			for i := range tt.want {
				if tt.in[i] != tt.want[i] {
					t.Fatalf("Apply() = %v, want %v", tt.in, tt.want)
				}
			}
		})
	}
}

func TestKind_Mutates(t *testing.T) {
	for k := KindCompare; k <= KindComplete; k++ {
		want := k == KindSwap || k == KindOverwrite
		if got := k.Mutates(); got != want {
			t.Errorf("%s.Mutates() = %v, want %v", k, got, want)
		}
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	for k := KindCompare; k <= KindComplete; k++ {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != k {
			t.Errorf("round trip %s: got %s", k, got)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("shuffle")); err == nil {
		t.Error("expected error for unknown kind")
	}
	if s := Kind(42).String(); s != "kind(42)" {
		t.Errorf("unknown kind string = %q", s)
	}
}

func TestComplete_CopiesSorted(t *testing.T) {
	src := []int{1, 2, 3}
	ev := Complete(src)
	src[0] = 99

	if ev.Sorted[0] != 1 {
		t.Error("Complete did not copy the sorted slice")
	}
	if ev.Narration != CompleteNarration {
		t.Errorf("narration = %q", ev.Narration)
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Compare(0, 1, "Comparing 5 and 3"), "compare(0, 1) Comparing 5 and 3"},
		{Swap(2, 3, ""), "swap(2, 3)"},
		{Pivot(4, 7, "Choosing pivot: 7"), "pivot(4, 7) Choosing pivot: 7"},
		{Range(0, 4, ""), "range(0, 4)"},
		{Mark(1, ""), "mark(1)"},
		{Complete(nil), "complete Sorting complete!"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEvent_JSONKind(t *testing.T) {
	data, err := json.Marshal(Swap(0, 1, "Swapping 2 and 1"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Kind != KindSwap || decoded.I != 0 || decoded.J != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}
