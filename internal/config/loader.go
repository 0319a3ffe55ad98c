package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the round configuration.
// Search order: customPath -> ~/.compost/configs/compost.{yaml,toml} ->
// ./configs/compost.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (CompostConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CompostConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return CompostConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	for _, name := range []string{"compost.yaml", "compost.toml"} {
		path := userConfigPath(name)
		if path == "" {
			break
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "compost.yaml")); err == nil {
		if cfg, err := Parse("compost.yaml", data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse("compost.yaml", defaultCompostYAML)
	if err != nil {
		return DefaultCompostConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a config document over the defaults. The format is chosen
// by the file extension: ".toml" for TOML, anything else for YAML.
func Parse(name string, data []byte) (CompostConfig, error) {
	cfg := DefaultCompostConfig()

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return CompostConfig{}, err
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return CompostConfig{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return CompostConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c CompostConfig) Validate() error {
	var errs []error

	if c.Round.Lives < 1 {
		errs = append(errs, fmt.Errorf("round.lives must be positive, got %d", c.Round.Lives))
	}
	if c.Round.ScorePerCatch < 0 {
		errs = append(errs, fmt.Errorf("round.score_per_catch must not be negative, got %d", c.Round.ScorePerCatch))
	}
	if c.Spawn.MaxLive < 1 {
		errs = append(errs, fmt.Errorf("spawn.max_live must be positive, got %d", c.Spawn.MaxLive))
	}
	if c.Spawn.IntervalSec < 0 {
		errs = append(errs, fmt.Errorf("spawn.interval_sec must not be negative, got %v", c.Spawn.IntervalSec))
	}
	if c.Spawn.MinSpeed <= 0 || c.Spawn.SpeedScale <= 0 {
		errs = append(errs, errors.New("spawn.min_speed and spawn.speed_scale must be positive"))
	}
	if c.Spawn.SpeedJitter < 0 {
		errs = append(errs, fmt.Errorf("spawn.speed_jitter must not be negative, got %v", c.Spawn.SpeedJitter))
	}
	if c.Spawn.MaxRotation < 0 {
		errs = append(errs, fmt.Errorf("spawn.max_rotation must not be negative, got %d", c.Spawn.MaxRotation))
	}
	if c.Spawn.MarginPct < 0 || c.Spawn.MarginPct >= 50 {
		errs = append(errs, fmt.Errorf("spawn.margin_pct must be in [0, 50), got %v", c.Spawn.MarginPct))
	}
	if c.Catcher.MinPct < 0 || c.Catcher.MaxPct > 100 || c.Catcher.MinPct > c.Catcher.MaxPct {
		errs = append(errs, fmt.Errorf("catcher bounds [%v, %v] are invalid", c.Catcher.MinPct, c.Catcher.MaxPct))
	}
	if c.Catcher.ZoneTopOffset <= c.Catcher.ZoneBottomOffset {
		errs = append(errs, errors.New("catcher.zone_top_offset must exceed catcher.zone_bottom_offset"))
	}
	if c.Arena.FallbackWidth <= 0 || c.Arena.FallbackHeight <= 0 {
		errs = append(errs, errors.New("arena fallback dimensions must be positive"))
	}
	if c.Arena.MissMargin < 0 {
		errs = append(errs, fmt.Errorf("arena.miss_margin must not be negative, got %v", c.Arena.MissMargin))
	}
	if c.Arena.CellWidthPx <= 0 || c.Arena.CellHeightPx <= 0 {
		errs = append(errs, errors.New("arena cell dimensions must be positive"))
	}
	if c.Timing.MaxStepMs <= 0 || c.Timing.RenderHz <= 0 {
		errs = append(errs, errors.New("timing.max_step_ms and timing.render_hz must be positive"))
	}
	if len(c.Difficulties) > 0 {
		if _, err := c.Catalog(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".compost", "configs", filename)
}
