package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/runner"
)

// Scenario is a scripted sequence of operator actions.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Input       string   `yaml:"input"`
	Actions     []Action `yaml:"actions"`
}

// Action is one operator action. Do is one of start, select, delay,
// wait_steps, cancel or wait.
type Action struct {
	Do        string `yaml:"do"`
	Algorithm string `yaml:"algorithm,omitempty"`
	Input     string `yaml:"input,omitempty"`
	DelayMs   int    `yaml:"delay_ms,omitempty"`
	Steps     int    `yaml:"steps,omitempty"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// pollInterval is how often wait_steps checks the run's step count.
const pollInterval = time.Millisecond

// RunScenario performs the actions in order against coord and returns the
// report of every run started, in start order. A run still in flight after
// the last action is waited for.
func RunScenario(ctx context.Context, scenario *Scenario, coord *runner.Coordinator) ([]runner.Report, error) {
	var runs []*runner.Run
	current := func() *runner.Run {
		if len(runs) == 0 {
			return nil
		}
		return runs[len(runs)-1]
	}

	for i, act := range scenario.Actions {
		slog.Debug("scenario action", "scenario", scenario.Name, "index", i+1, "do", act.Do)

		switch act.Do {
		case "start":
			text := act.Input
			if text == "" {
				text = scenario.Input
			}
			values, err := input.Parse(text)
			if err != nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, err)
			}
			run, err := coord.Start(ctx, values)
			if err != nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, err)
			}
			runs = append(runs, run)

		case "select":
			if err := coord.Select(act.Algorithm); err != nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, err)
			}

		case "delay":
			if err := coord.Controller().SetDelay(act.DelayMs); err != nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, err)
			}

		case "wait_steps":
			run := current()
			if run == nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, ErrNoRun)
			}
			if err := waitSteps(ctx, run, act.Steps); err != nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, err)
			}

		case "cancel":
			coord.Cancel()

		case "wait":
			run := current()
			if run == nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, ErrNoRun)
			}
			if err := waitDone(ctx, run); err != nil {
				return reports(runs), fmt.Errorf("action %d: %w", i+1, err)
			}

		default:
			return reports(runs), fmt.Errorf("action %d: %w: %q", i+1, ErrUnknownAction, act.Do)
		}
	}

	if run := current(); run != nil {
		if err := waitDone(ctx, run); err != nil {
			return reports(runs), err
		}
	}

	return reports(runs), nil
}

func waitSteps(ctx context.Context, run *runner.Run, n int) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for run.Steps() < n {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-run.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func waitDone(ctx context.Context, run *runner.Run) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-run.Done():
		return nil
	}
}

// reports collects the reports of runs that have ended.
func reports(runs []*runner.Run) []runner.Report {
	out := make([]runner.Report, 0, len(runs))
	for _, r := range runs {
		select {
		case <-r.Done():
			out = append(out, r.Wait())
		default:
		}
	}
	return out
}
