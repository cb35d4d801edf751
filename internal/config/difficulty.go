package config

import (
	"math"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// DifficultyManager picks the stage configuration for a stage number. Stages
// inside the table are played as configured (scaled by the initial level);
// stages past its end repeat the last entry and ramp up toward level 1.0.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) of stage n given a table
// of tableLen stages.
func (d *DifficultyManager) Level(n, tableLen int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(n-tableLen)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StageConfig returns the configuration of stage n (1-based).
func (d *DifficultyManager) StageConfig(table []world.StageConfig, n int) world.StageConfig {
	if len(table) == 0 {
		return world.StageConfig{}
	}
	idx := min(max(n, 1), len(table)) - 1
	cfg := table[idx]

	level := d.Level(n, len(table))
	if level == 0 {
		return cfg
	}

	s := d.cfg.Scaling
	cfg.WaterSpeed *= 1.0 + level*s.WaterSpeedMultiplier
	cfg.GapMin += level * s.GapIncrease
	cfg.GapMax += level * s.GapIncrease
	cfg.PlatformCount += int(math.Round(level * float64(s.PlatformIncrease)))
	cfg.BlockCountMax = max(cfg.BlockCountMin, cfg.BlockCountMax-int(math.Round(level*float64(s.BlockReduction))))
	return cfg
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
