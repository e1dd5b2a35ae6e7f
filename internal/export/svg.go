package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/step"
)

const (
	barColor      = "#00ffff"
	compareColor  = "#ffd700"
	swapColor     = "#ff4466"
	pivotColor    = "#ff00ff"
	completeColor = "#00ff88"
)

// BarsToSVG draws values as a bar chart. highlight maps an index to a fill
// color overriding the default.
func BarsToSVG(values []int, width, height int, highlight map[int]string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(values) > 0 {
		maxV := values[0]
		for _, v := range values {
			if v > maxV {
				maxV = v
			}
		}
		if maxV <= 0 {
			maxV = 1
		}

		slot := float64(width) / float64(len(values))
		gap := slot * 0.1
		for i, v := range values {
			h := float64(v) / float64(maxV) * float64(height-10)
			if h < 0 {
				h = 0
			}
			fill := barColor
			if c, ok := highlight[i]; ok {
				fill = c
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*slot+gap/2, float64(height)-h, slot-gap, h, fill))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// FrameToSVG draws a frame's snapshot with the positions of its event
// highlighted.
func FrameToSVG(f playback.Frame, width, height int) string {
	return BarsToSVG(f.Values, width, height, Highlights(f.Event, len(f.Values)))
}

// Highlights returns the colors an event assigns to array positions.
func Highlights(ev step.Event, n int) map[int]string {
	h := make(map[int]string)
	switch ev.Kind {
	case step.KindCompare:
		h[ev.I] = compareColor
		h[ev.J] = compareColor
	case step.KindSwap, step.KindOverwrite:
		h[ev.I] = swapColor
		h[ev.J] = swapColor
	case step.KindPivot:
		h[ev.I] = pivotColor
	case step.KindComplete:
		for i := 0; i < n; i++ {
			h[i] = completeColor
		}
	}
	return h
}
