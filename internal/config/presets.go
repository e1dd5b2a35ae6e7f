package config

import "sort"

var Presets = map[string]map[string]*Config{
	"bubble": {
		"demo": {
			Algorithm: "bubble", DelayMs: 1000, Input: "5, 3, 8, 1",
		},
		"reversed": {
			Algorithm: "bubble", DelayMs: 100, Shape: "reversed", Size: 20,
		},
		"sorted": {
			Algorithm: "bubble", DelayMs: 100, Shape: "sorted", Size: 20,
		},
	},
	"insertion": {
		"nearly_sorted": {
			Algorithm: "insertion", DelayMs: 200, Shape: "nearly_sorted", Size: 30,
		},
		"reversed": {
			Algorithm: "insertion", DelayMs: 100, Shape: "reversed", Size: 20,
		},
	},
	"selection": {
		"demo": {
			Algorithm: "selection", DelayMs: 800, Input: "64, 25, 12, 22, 11",
		},
		"few_unique": {
			Algorithm: "selection", DelayMs: 200, Shape: "few_unique", Size: 30,
		},
	},
	"quick": {
		"constant": {
			Algorithm: "quick", DelayMs: 500, Input: "3, 3, 3",
		},
		"worst": {
			Algorithm: "quick", DelayMs: 100, Shape: "sorted", Size: 30,
		},
		"random": {
			Algorithm: "quick", DelayMs: 200, Shape: "random", Size: 50,
		},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in.
func GetPreset(algorithm, preset string) *Config {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := algPresets[preset]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Shape == "" {
		cfg.Shape = DefaultShape
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return &cfg
}

func ListPresets(algorithm string) []string {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algPresets))
	for name := range algPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
