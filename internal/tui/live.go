package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/step"
)

const (
	width       = 80
	height      = 16
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Bar glyphs by the role of the position in the current event.
const (
	glyphBar     = '#'
	glyphRange   = '+'
	glyphCompare = '?'
	glyphSwap    = '*'
	glyphPivot   = 'P'
	glyphSorted  = '='
)

// LiveRenderer redraws the working array as an ASCII bar chart after
// every frame. Frames closer together than the frame rate allows are
// skipped, except the last one of a run.
type LiveRenderer struct {
	out       io.Writer
	title     string
	frameRate int
	clear     bool
	lastFrame time.Time
	canvas    [][]rune
}

func NewLiveRenderer(out io.Writer, title string, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		out:       out,
		title:     title,
		frameRate: frameRate,
		clear:     true,
	}
}

// SetClear controls whether each frame clears the screen first.
func (r *LiveRenderer) SetClear(clear bool) { r.clear = clear }

func (r *LiveRenderer) OnStep(f playback.Frame) {
	if r.frameRate > 0 && f.Event.Kind != step.KindComplete {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()

	r.draw(f)
	r.render(f)
}

func (r *LiveRenderer) draw(f playback.Frame) {
	n := len(f.Values)
	colWidth := 1
	if n > 0 && width/n > 1 {
		colWidth = width / n
	}
	cols := n * colWidth

	if len(r.canvas) != height || len(r.canvas[0]) != cols {
		r.canvas = make([][]rune, height)
		for y := range r.canvas {
			r.canvas[y] = make([]rune, cols)
		}
	}
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
	if n == 0 {
		return
	}

	maxV := 1
	for _, v := range f.Values {
		if v > maxV {
			maxV = v
		}
	}

	for i, v := range f.Values {
		if v <= 0 {
			continue
		}
		h := scaledHeight(v, maxV, height)
		g := glyph(f.Event, i)
		for dx := 0; dx < colWidth; dx++ {
			if colWidth > 2 && dx == colWidth-1 {
				continue
			}
			for dy := 0; dy < h; dy++ {
				r.canvas[height-1-dy][i*colWidth+dx] = g
			}
		}
	}
}

func glyph(ev step.Event, i int) rune {
	switch ev.Kind {
	case step.KindRange:
		if i >= ev.I && i <= ev.J {
			return glyphRange
		}
	case step.KindCompare:
		if i == ev.I || i == ev.J {
			return glyphCompare
		}
	case step.KindSwap, step.KindOverwrite:
		if i == ev.I || i == ev.J {
			return glyphSwap
		}
	case step.KindPivot, step.KindMark:
		if i == ev.I {
			return glyphPivot
		}
	case step.KindComplete:
		return glyphSorted
	}
	return glyphBar
}

func (r *LiveRenderer) render(f playback.Frame) {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  step %d\n", r.title, f.Seq))
	b.WriteString("  " + f.Narration + "\n")
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	fmt.Fprint(r.out, b.String())
}

// scaledHeight maps v in (0, maxV] onto 1..rows cells. The ratio is taken in
// floating point so values near the int limits cannot overflow.
func scaledHeight(v, maxV, rows int) int {
	h := int(math.Ceil(float64(v) * float64(rows) / float64(maxV)))
	return max(1, min(rows, h))
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
