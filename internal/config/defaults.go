package config

import (
	_ "embed"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

//go:embed defaults/moonhop.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration. It matches the embedded
// YAML and is the base every loaded file is decoded over.
func DefaultConfig() Config {
	return Config{
		Stages:  DefaultStages(),
		Tuning:  world.DefaultTuning(),
		Scoring: world.DefaultScoring(),
		Session: SessionConfig{
			Lives:        3,
			RespawnDelay: 1.5,
			ClearDelay:   1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				WaterSpeedMultiplier: 1.0,
				GapIncrease:          20,
				PlatformIncrease:     6,
				BlockReduction:       1,
			},
		},
	}
}

// DefaultStages returns the ten campaign stages.
func DefaultStages() []world.StageConfig {
	return []world.StageConfig{
		stageRow(8, 70, 90, 4, 6, 1.00, 0.00, 0.00, 0.00, 12, 1),
		stageRow(10, 70, 95, 4, 6, 0.80, 0.20, 0.00, 0.00, 14, 2),
		stageRow(12, 75, 100, 3, 6, 0.70, 0.15, 0.15, 0.00, 16, 2),
		stageRow(12, 80, 105, 3, 5, 0.60, 0.20, 0.20, 0.00, 18, 3),
		stageRow(14, 80, 110, 3, 5, 0.50, 0.20, 0.20, 0.10, 20, 3),
		stageRow(14, 85, 115, 3, 5, 0.45, 0.20, 0.20, 0.15, 22, 3),
		stageRow(16, 85, 120, 2, 5, 0.40, 0.20, 0.20, 0.20, 24, 4),
		stageRow(16, 90, 125, 2, 4, 0.35, 0.25, 0.20, 0.20, 26, 4),
		stageRow(18, 90, 130, 2, 4, 0.30, 0.25, 0.25, 0.20, 28, 5),
		stageRow(20, 95, 135, 2, 4, 0.25, 0.25, 0.25, 0.25, 30, 5),
	}
}

func stageRow(count int, gapMin, gapMax float64, blocksMin, blocksMax int, normal, ice, caterpillar, moving, water float64, eels int) world.StageConfig {
	return world.StageConfig{
		PlatformCount:    count,
		GapMin:           gapMin,
		GapMax:           gapMax,
		BlockCountMin:    blocksMin,
		BlockCountMax:    blocksMax,
		NormalRatio:      normal,
		IceRatio:         ice,
		CaterpillarRatio: caterpillar,
		MovingRatio:      moving,
		FirstPlatformGap: 80,
		WaterSpeed:       water,
		EelCount:         eels,
	}
}
