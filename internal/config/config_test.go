package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse("compost.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCompostConfig()) {
		t.Errorf("embedded YAML and DefaultCompostConfig differ:\n%+v\n%+v", cfg, DefaultCompostConfig())
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultCompostConfig()

	if got := cfg.Spawn.SpawnInterval(); got != 2*time.Second {
		t.Errorf("SpawnInterval() = %v, expected 2s", got)
	}
	if got := cfg.Timing.MaxStep(); got != 33*time.Millisecond {
		t.Errorf("MaxStep() = %v, expected 33ms", got)
	}
	if got := cfg.Timing.RenderInterval(); got != time.Second/30 {
		t.Errorf("RenderInterval() = %v, expected 1/30s", got)
	}
	if got := cfg.Catcher.DamageFlash(); got != 650*time.Millisecond {
		t.Errorf("DamageFlash() = %v, expected 650ms", got)
	}
}

func TestParsePartialYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Parse("custom.yaml", []byte("round:\n  lives: 5\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Round.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Round.Lives)
	}
	if cfg.Round.ScorePerCatch != 10 {
		t.Errorf("ScorePerCatch = %d, expected default 10", cfg.Round.ScorePerCatch)
	}
	if cfg.Spawn.MaxLive != 4 {
		t.Errorf("MaxLive = %d, expected default 4", cfg.Spawn.MaxLive)
	}
}

func TestParseTOML(t *testing.T) {
	doc := `
[spawn]
max_live = 2
interval_sec = 1.5

[[difficulties]]
key = "tiny"
name = "Tiny"
round_size = 2

[[difficulties.correct]]
label = "Apple Core"

[[difficulties.incorrect]]
label = "Plastic Cup"
reason = "Plastic doesn't compost."
`
	cfg, err := Parse("compost.toml", []byte(doc))
	if err != nil {
		t.Fatalf("Parse(toml) failed: %v", err)
	}
	if cfg.Spawn.MaxLive != 2 || cfg.Spawn.IntervalSec != 1.5 {
		t.Errorf("spawn = %+v, expected max_live 2 interval 1.5", cfg.Spawn)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	p, err := cat.Lookup("tiny")
	if err != nil {
		t.Fatalf("Lookup(tiny) failed: %v", err)
	}
	if p.CorrectPool[0].Category != "correct" || p.IncorrectPool[0].Category != "incorrect" {
		t.Errorf("categories should be inferred from pools: %+v / %+v", p.CorrectPool[0], p.IncorrectPool[0])
	}
	if cat.Exists("easy") || cat.Len() != 1 {
		t.Errorf("configured difficulties should replace the built-in catalog, got %v", cat.Keys())
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero lives", "round:\n  lives: 0\n"},
		{"no concurrency", "spawn:\n  max_live: 0\n"},
		{"inverted catcher bounds", "catcher:\n  min_pct: 90\n  max_pct: 10\n"},
		{"inverted catch band", "catcher:\n  zone_top_offset: 5\n"},
		{"render hz", "timing:\n  render_hz: 0\n"},
		{"negative speed jitter", "spawn:\n  min_speed: 1\n  speed_jitter: -5\n"},
		{"negative rotation", "spawn:\n  max_rotation: -1\n"},
		{"negative miss margin", "arena:\n  miss_margin: -10\n"},
		{"round size one", "difficulties:\n  - key: x\n    round_size: 1\n    correct: [{label: a}]\n    incorrect: [{label: b}]\n"},
		{"malformed", "round: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse("bad.yaml", []byte(tc.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(path, []byte("round:\n  score_per_catch: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Round.ScorePerCatch != 25 {
		t.Errorf("ScorePerCatch = %d, expected 25", cfg.Round.ScorePerCatch)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestCatalogWithoutOverrides(t *testing.T) {
	cat, err := DefaultCompostConfig().Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	if !cat.Exists("easy") || !cat.Exists("medium") || !cat.Exists("hard") {
		t.Error("default config should use the built-in catalog")
	}
}
