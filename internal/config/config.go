// Package config provides YAML/TOML-based configuration loading for the
// compost catch round: spawn pacing, catch zone geometry, timing, and
// optional difficulty overrides.
package config

import (
	"time"

	"github.com/vovakirdan/compost-catch/internal/catalog"
)

// CompostConfig contains all tunables for a round.
type CompostConfig struct {
	Round        RoundConfig        `yaml:"round" toml:"round"`
	Spawn        SpawnConfig        `yaml:"spawn" toml:"spawn"`
	Catcher      CatcherConfig      `yaml:"catcher" toml:"catcher"`
	Arena        ArenaConfig        `yaml:"arena" toml:"arena"`
	Timing       TimingConfig       `yaml:"timing" toml:"timing"`
	Difficulties []DifficultyConfig `yaml:"difficulties,omitempty" toml:"difficulties"`
}

// RoundConfig defines scoring and life parameters.
type RoundConfig struct {
	Lives         int `yaml:"lives" toml:"lives"`
	ScorePerCatch int `yaml:"score_per_catch" toml:"score_per_catch"`
	MistakesShown int `yaml:"mistakes_shown" toml:"mistakes_shown"` // Top-N ledger entries in the summary
}

// SpawnConfig defines how falling items are introduced.
type SpawnConfig struct {
	IntervalSec float64 `yaml:"interval_sec" toml:"interval_sec"`
	MaxLive     int     `yaml:"max_live" toml:"max_live"`         // Concurrency cap
	MarginPct   float64 `yaml:"margin_pct" toml:"margin_pct"`     // Items start within [margin, 100-margin]
	StartY      float64 `yaml:"start_y" toml:"start_y"`           // Pixels, negative = above the arena
	MinSpeed    float64 `yaml:"min_speed" toml:"min_speed"`       // In speed units
	SpeedJitter float64 `yaml:"speed_jitter" toml:"speed_jitter"` // Added uniformly in [0, jitter)
	SpeedScale  float64 `yaml:"speed_scale" toml:"speed_scale"`   // Pixels per second per speed unit
	MaxRotation int     `yaml:"max_rotation" toml:"max_rotation"` // Degrees, rotation in [-max, max)
}

// CatcherConfig defines the bin and its catch zone.
type CatcherConfig struct {
	MinPct           float64 `yaml:"min_pct" toml:"min_pct"`
	MaxPct           float64 `yaml:"max_pct" toml:"max_pct"`
	StartPct         float64 `yaml:"start_pct" toml:"start_pct"`
	KeyStepPct       float64 `yaml:"key_step_pct" toml:"key_step_pct"`
	ZoneWidthRatio   float64 `yaml:"zone_width_ratio" toml:"zone_width_ratio"`
	ZoneMinWidth     float64 `yaml:"zone_min_width" toml:"zone_min_width"`
	ZoneTopOffset    float64 `yaml:"zone_top_offset" toml:"zone_top_offset"`       // Band top = height - offset
	ZoneBottomOffset float64 `yaml:"zone_bottom_offset" toml:"zone_bottom_offset"` // Band bottom = height - offset
	DamageFlashMs    int     `yaml:"damage_flash_ms" toml:"damage_flash_ms"`
}

// ArenaConfig defines arena geometry.
type ArenaConfig struct {
	FallbackWidth  float64 `yaml:"fallback_width" toml:"fallback_width"`
	FallbackHeight float64 `yaml:"fallback_height" toml:"fallback_height"`
	MissMargin     float64 `yaml:"miss_margin" toml:"miss_margin"` // Items below height+margin are missed
	CellWidthPx    float64 `yaml:"cell_width_px" toml:"cell_width_px"`
	CellHeightPx   float64 `yaml:"cell_height_px" toml:"cell_height_px"`
}

// TimingConfig defines the clock and render throttle.
type TimingConfig struct {
	MaxStepMs int `yaml:"max_step_ms" toml:"max_step_ms"`
	RenderHz  int `yaml:"render_hz" toml:"render_hz"`
}

// DifficultyConfig describes a difficulty profile. When any are configured
// they replace the built-in catalog.
type DifficultyConfig struct {
	Key       string                 `yaml:"key" toml:"key"`
	Name      string                 `yaml:"name" toml:"name"`
	SameLook  bool                   `yaml:"same_look" toml:"same_look"`
	RoundSize int                    `yaml:"round_size" toml:"round_size"`
	Correct   []catalog.ItemTemplate `yaml:"correct" toml:"correct"`
	Incorrect []catalog.ItemTemplate `yaml:"incorrect" toml:"incorrect"`
}

// SpawnInterval returns the spawn interval as a duration.
func (c SpawnConfig) SpawnInterval() time.Duration {
	return time.Duration(c.IntervalSec * float64(time.Second))
}

// DamageFlash returns the damage flash as a duration.
func (c CatcherConfig) DamageFlash() time.Duration {
	return time.Duration(c.DamageFlashMs) * time.Millisecond
}

// MaxStep returns the clamp applied to a single simulation step.
func (c TimingConfig) MaxStep() time.Duration {
	return time.Duration(c.MaxStepMs) * time.Millisecond
}

// RenderInterval returns the minimum time between render flushes.
func (c TimingConfig) RenderInterval() time.Duration {
	if c.RenderHz <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.RenderHz)
}

// Catalog builds the difficulty catalog. Configured difficulties replace
// the built-in catalog as a whole; without any the built-in one is returned.
func (c CompostConfig) Catalog() (*catalog.Catalog, error) {
	if len(c.Difficulties) == 0 {
		return catalog.Builtin(), nil
	}

	profiles := make([]catalog.Profile, 0, len(c.Difficulties))
	for _, d := range c.Difficulties {
		profiles = append(profiles, d.Profile())
	}
	return catalog.New(profiles...)
}

// Profile converts the override to a catalog profile. Items without a
// category take the category of the pool they are listed in.
func (d DifficultyConfig) Profile() catalog.Profile {
	name := d.Name
	if name == "" {
		name = d.Key
	}
	return catalog.Profile{
		Key:                       d.Key,
		Name:                      name,
		CorrectPool:               withCategory(d.Correct, catalog.Correct),
		IncorrectPool:             withCategory(d.Incorrect, catalog.Incorrect),
		VisuallyIndistinguishable: d.SameLook,
		RoundSize:                 d.RoundSize,
	}
}

func withCategory(items []catalog.ItemTemplate, c catalog.Category) []catalog.ItemTemplate {
	out := make([]catalog.ItemTemplate, len(items))
	for i, it := range items {
		if it.Category == "" {
			it.Category = c
		}
		out[i] = it
	}
	return out
}
