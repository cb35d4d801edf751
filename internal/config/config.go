// Package config provides YAML-based configuration for MoonHop: the stage
// table, physics tuning, scoring, session rules and difficulty presets.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// Config is the whole game configuration.
type Config struct {
	Stages     []world.StageConfig `yaml:"stages" json:"stages" jsonschema:"minItems=1"`
	Tuning     world.Tuning        `yaml:"tuning" json:"tuning"`
	Scoring    world.Scoring       `yaml:"scoring" json:"scoring"`
	Session    SessionConfig       `yaml:"session" json:"session"`
	Difficulty DifficultyConfig    `yaml:"difficulty" json:"difficulty"`
}

// SessionConfig holds the rules of a run.
type SessionConfig struct {
	Lives        int     `yaml:"lives" json:"lives"`                 // campaign and endless
	RespawnDelay float64 `yaml:"respawn_delay" json:"respawn_delay"` // seconds between death and respawn
	ClearDelay   float64 `yaml:"clear_delay" json:"clear_delay"`     // seconds the cleared stage stays on screen
}

// DifficultyConfig defines how stages past the end of the table get harder.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" json:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how the difficulty level grows.
type ProgressionConfig struct {
	Type  string `yaml:"type" json:"type" jsonschema:"enum=stage,enum=none"`
	MaxAt int    `yaml:"max_at" json:"max_at"` // stages past the table at which max difficulty is reached
}

// ScalingConfig is the change applied to a stage at difficulty level 1.0.
type ScalingConfig struct {
	WaterSpeedMultiplier float64 `yaml:"water_speed_multiplier" json:"water_speed_multiplier"`
	GapIncrease          float64 `yaml:"gap_increase" json:"gap_increase"`
	PlatformIncrease     int     `yaml:"platform_increase" json:"platform_increase"`
	BlockReduction       int     `yaml:"block_reduction" json:"block_reduction"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. The empty string is accepted and
// leaves the loaded configuration untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config: invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks the values that cannot be repaired by clamping. Stage
// entries themselves are always sanitized by the generator.
func (c Config) Validate() error {
	var problems []string
	if len(c.Stages) == 0 {
		problems = append(problems, "stages: at least one stage is required")
	}
	if c.Tuning.Gravity <= 0 {
		problems = append(problems, "tuning.gravity must be positive")
	}
	if c.Tuning.MaxJumpSpeed < c.Tuning.MinJumpSpeed {
		problems = append(problems, "tuning.max_jump_speed must not be below min_jump_speed")
	}
	if c.Tuning.ChargeTime <= 0 {
		problems = append(problems, "tuning.charge_time must be positive")
	}
	if c.Tuning.ActorWidth <= 0 || c.Tuning.ActorHeight <= 0 {
		problems = append(problems, "tuning.actor_width and actor_height must be positive")
	}
	if c.Tuning.CameraAnchor < 0 || c.Tuning.CameraAnchor > 1 {
		problems = append(problems, "tuning.camera_anchor must be within [0, 1]")
	}
	if c.Session.Lives <= 0 {
		problems = append(problems, "session.lives must be positive")
	}
	if c.Session.RespawnDelay < 0 || c.Session.ClearDelay < 0 {
		problems = append(problems, "session delays must not be negative")
	}
	switch c.Difficulty.Progression.Type {
	case "stage", "none", "":
	default:
		problems = append(problems, fmt.Sprintf("difficulty.progression.type %q is not stage or none", c.Difficulty.Progression.Type))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
