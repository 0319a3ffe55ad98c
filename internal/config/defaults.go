package config

import (
	_ "embed"
)

//go:embed defaults/compost.yaml
var defaultCompostYAML []byte

// DefaultCompostConfig returns the default configuration.
func DefaultCompostConfig() CompostConfig {
	return CompostConfig{
		Round: RoundConfig{
			Lives:         3,
			ScorePerCatch: 10,
			MistakesShown: 8,
		},
		Spawn: SpawnConfig{
			IntervalSec: 2.0,
			MaxLive:     4,
			MarginPct:   8,
			StartY:      -40,
			MinSpeed:    3.0,
			SpeedJitter: 2.5,
			SpeedScale:  35,
			MaxRotation: 7,
		},
		Catcher: CatcherConfig{
			MinPct:           6,
			MaxPct:           94,
			StartPct:         50,
			KeyStepPct:       4,
			ZoneWidthRatio:   0.16,
			ZoneMinWidth:     52,
			ZoneTopOffset:    90,
			ZoneBottomOffset: 10,
			DamageFlashMs:    650,
		},
		Arena: ArenaConfig{
			FallbackWidth:  360,
			FallbackHeight: 600,
			MissMargin:     60,
			CellWidthPx:    8,
			CellHeightPx:   24,
		},
		Timing: TimingConfig{
			MaxStepMs: 33,
			RenderHz:  30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCompostYAML
}
