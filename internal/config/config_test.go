package config

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.DelayMs != 1000 {
		t.Errorf("expected delay 1000, got %d", cfg.DelayMs)
	}
	if cfg.Size != input.DefaultSize {
		t.Errorf("expected size %d, got %d", input.DefaultSize, cfg.Size)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "quick"
	cfg.DelayMs = 250
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	if err := os.WriteFile(path, []byte("algorithm: insertion\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "insertion" || cfg.DelayMs != 1000 || cfg.Size != input.DefaultSize {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("delay_ms: 5000\n"), 0644)
	if _, err := Load(bad); !errors.Is(err, playback.ErrDelayBounds) {
		t.Errorf("expected ErrDelayBounds, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	os.WriteFile(garbage, []byte("delay_ms: [\n"), 0644)
	if _, err := Load(garbage); err == nil {
		t.Error("expected parse error")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestArray(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "5, 3, 8, 1"
	values, err := cfg.Array(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("array: %v", err)
	}
	if len(values) != 4 || values[0] != 5 {
		t.Errorf("got %v", values)
	}

	cfg.Input = "1,2,abc"
	if _, err := cfg.Array(rand.New(rand.NewSource(1))); !errors.Is(err, input.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Size = 10
	values, err = cfg.Array(cfg.Rand(7))
	if err != nil || len(values) != 10 {
		t.Errorf("got %v, %v", values, err)
	}
}

func TestRand_Seeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	a := cfg.Rand(1).Int()
	b := cfg.Rand(2).Int()
	if a != b {
		t.Error("seeded config should ignore the clock")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble", "demo")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Input != "5, 3, 8, 1" {
		t.Errorf("expected demo input, got %q", cfg.Input)
	}
	if cfg.Shape != DefaultShape || cfg.Theme != DefaultTheme {
		t.Errorf("defaults not filled: %+v", cfg)
	}

	cfg.Input = "changed"
	if Presets["bubble"]["demo"].Input != "5, 3, 8, 1" {
		t.Error("GetPreset returned the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("bubble", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "demo"); cfg != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("quick")
	if len(presets) != 3 || presets[0] != "constant" {
		t.Errorf("unexpected presets %v", presets)
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for alg := range Presets {
		for _, name := range ListPresets(alg) {
			cfg := GetPreset(alg, name)
			if cfg.Algorithm != alg {
				t.Errorf("%s/%s: algorithm %s", alg, name, cfg.Algorithm)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", alg, name, err)
			}
			if _, err := cfg.Array(rand.New(rand.NewSource(1))); err != nil {
				t.Errorf("%s/%s: %v", alg, name, err)
			}
		}
	}
}
