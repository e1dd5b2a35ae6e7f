package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/step"
)

// role is how a bar is highlighted for the current event.
type role int

const (
	roleNone role = iota
	roleRange
	roleCompare
	roleSwap
	rolePivot
	roleSorted
)

// roles assigns a highlight to each position touched by ev.
func roles(ev step.Event, n int) map[int]role {
	r := make(map[int]role)
	switch ev.Kind {
	case step.KindRange:
		for i := ev.I; i <= ev.J && i < n; i++ {
			r[i] = roleRange
		}
	case step.KindCompare:
		r[ev.I] = roleCompare
		r[ev.J] = roleCompare
	case step.KindSwap, step.KindOverwrite:
		r[ev.I] = roleSwap
		r[ev.J] = roleSwap
	case step.KindPivot, step.KindMark:
		r[ev.I] = rolePivot
	case step.KindComplete:
		for i := 0; i < n; i++ {
			r[i] = roleSorted
		}
	}
	return r
}

func (t Theme) color(r role) lipgloss.Color {
	switch r {
	case roleRange:
		return t.Range
	case roleCompare:
		return t.Compare
	case roleSwap:
		return t.Swap
	case rolePivot:
		return t.Pivot
	case roleSorted:
		return t.Sorted
	}
	return t.Bar
}

// barWidth picks the column width per bar so that n bars fit in width.
func barWidth(n, width int) int {
	if n == 0 {
		return 0
	}
	w := width / n
	if w > 4 {
		w = 4
	}
	if w < 1 {
		w = 1
	}
	return w
}

// RenderBars draws values as vertical bars height rows tall. Bars are
// scaled to the largest value; non-positive values draw no cells.
func RenderBars(values []int, highlight map[int]role, theme Theme, height, width int) string {
	if len(values) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("(empty array)")
	}

	maxV := 1
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}
	heights := make([]int, len(values))
	for i, v := range values {
		if v <= 0 {
			continue
		}
		heights[i] = scaledHeight(v, maxV, height)
	}

	w := barWidth(len(values), width)
	cell := strings.Repeat("█", w)
	if w >= 3 {
		cell = strings.Repeat("█", w-1) + " "
	}
	blank := strings.Repeat(" ", w)

	styles := make(map[role]lipgloss.Style)
	styleFor := func(r role) lipgloss.Style {
		s, ok := styles[r]
		if !ok {
			s = lipgloss.NewStyle().Foreground(theme.color(r))
			styles[r] = s
		}
		return s
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i := range values {
			if heights[i] >= row {
				b.WriteString(styleFor(highlight[i]).Render(cell))
			} else {
				b.WriteString(blank)
			}
		}
		if row > 1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// scaledHeight maps v in (0, maxV] onto 1..rows cells. The ratio is taken in
// floating point so values near the int limits cannot overflow.
func scaledHeight(v, maxV, rows int) int {
	h := int(math.Ceil(float64(v) * float64(rows) / float64(maxV)))
	return max(1, min(rows, h))
}

func titleStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func tabStyle(t Theme, active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Bold(true).Foreground(t.Text).Background(t.Primary).Padding(0, 1)
	}
	return lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
}

func labelStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Width(12)
}

func valueStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func narrationStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func errorStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Error)
}

func statusStyle(t Theme, s Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch s {
	case StatusRunning:
		return base.Foreground(t.Compare)
	case StatusCompleted:
		return base.Foreground(t.Sorted)
	case StatusCanceled:
		return base.Foreground(t.Swap)
	}
	return base.Foreground(t.Muted)
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)
