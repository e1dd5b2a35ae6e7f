package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/step"
)

func bars(out string) []string {
	var rows []string
	inside := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ---") {
			if inside {
				break
			}
			inside = true
			continue
		}
		if inside {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestLiveRenderer_DrawsBars(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Bubble Sort", 0)
	r.SetClear(false)

	r.OnStep(playback.Frame{
		Seq:       1,
		Values:    []int{4, 8},
		Event:     step.Compare(0, 1, "Comparing 4 and 8"),
		Narration: "Comparing 4 and 8",
	})

	out := buf.String()
	if !strings.Contains(out, "Bubble Sort  step 1") {
		t.Errorf("missing header in %q", out)
	}
	if !strings.Contains(out, "Comparing 4 and 8") {
		t.Error("missing narration")
	}
	if strings.Contains(out, clearScreen) {
		t.Error("clear disabled but screen cleared")
	}

	rows := bars(out)
	if len(rows) != height {
		t.Fatalf("expected %d rows, got %d", height, len(rows))
	}
	// the taller bar fills every row, the shorter one half of them
	if !strings.Contains(rows[0], "?") || strings.Count(rows[0], "?") != width/2-1 {
		t.Errorf("unexpected top row %q", rows[0])
	}
	if got := strings.Count(rows[height-1], "?"); got != 2*(width/2-1) {
		t.Errorf("unexpected bottom row %q", rows[height-1])
	}
}

func TestLiveRenderer_Glyphs(t *testing.T) {
	tests := []struct {
		ev   step.Event
		i    int
		want rune
	}{
		{step.Compare(0, 1, ""), 1, glyphCompare},
		{step.Compare(0, 1, ""), 2, glyphBar},
		{step.Swap(2, 3, ""), 3, glyphSwap},
		{step.Pivot(4, 7, ""), 4, glyphPivot},
		{step.Range(1, 3, ""), 2, glyphRange},
		{step.Range(1, 3, ""), 0, glyphBar},
		{step.Complete(nil), 9, glyphSorted},
	}
	for _, tt := range tests {
		if got := glyph(tt.ev, tt.i); got != tt.want {
			t.Errorf("glyph(%s, %d) = %c, want %c", tt.ev.Kind, tt.i, got, tt.want)
		}
	}
}

func TestLiveRenderer_Throttles(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Quick Sort", 1)

	frame := playback.Frame{Values: []int{1, 2}, Event: step.Compare(0, 1, "")}
	r.OnStep(frame)
	r.OnStep(frame)
	if n := strings.Count(buf.String(), clearScreen); n != 1 {
		t.Errorf("expected 1 frame drawn, got %d", n)
	}

	r.OnStep(playback.Frame{Values: []int{1, 2}, Event: step.Complete([]int{1, 2})})
	if n := strings.Count(buf.String(), clearScreen); n != 2 {
		t.Errorf("the complete frame must always be drawn, got %d frames", n)
	}
}

func TestLiveRenderer_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Selection Sort", 0)
	r.OnStep(playback.Frame{Event: step.Complete(nil), Narration: step.CompleteNarration})
	if !strings.Contains(buf.String(), "Sorting complete!") {
		t.Error("missing narration for empty input")
	}
}
