package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/sortviz/internal/runner"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/step"
)

// Trace is the complete step log of one sort.
type Trace struct {
	Algorithm string             `json:"algorithm"`
	Input     []int              `json:"input"`
	Steps     int                `json:"steps"`
	Events    []step.Event       `json:"events"`
	Final     []int              `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewTrace(alg sorting.Algorithm, input []int) *Trace {
	events, sorted := sorting.Collect(alg, input)

	counters := runner.DefaultMetrics()
	for _, ev := range events {
		for _, m := range counters {
			m.Observe(ev)
		}
	}
	metrics := make(map[string]float64, len(counters))
	for _, m := range counters {
		metrics[m.Name()] = m.Value()
	}

	in := make([]int, len(input))
	copy(in, input)
	return &Trace{
		Algorithm: alg.Name(),
		Input:     in,
		Steps:     len(events),
		Events:    events,
		Final:     sorted,
		Metrics:   metrics,
	}
}

// WriteText writes one numbered line per event.
func WriteText(w io.Writer, t *Trace) error {
	for i, ev := range t.Events {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", i+1, ev); err != nil {
			return err
		}
	}
	return nil
}

func WriteJSON(w io.Writer, t *Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

var csvHeader = []string{"seq", "kind", "i", "j", "value", "narration"}

func WriteCSV(w io.Writer, t *Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, ev := range t.Events {
		record := []string{
			strconv.Itoa(i + 1),
			ev.Kind.String(),
			strconv.Itoa(ev.I),
			strconv.Itoa(ev.J),
			strconv.Itoa(ev.Value),
			ev.Narration,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Formats lists the trace encodings accepted by Write.
var Formats = []string{"text", "json", "csv"}

func Write(w io.Writer, format string, t *Trace) error {
	switch format {
	case "text", "":
		return WriteText(w, t)
	case "json":
		return WriteJSON(w, t)
	case "csv":
		return WriteCSV(w, t)
	default:
		return fmt.Errorf("unknown trace format: %s (available: %v)", format, Formats)
	}
}
