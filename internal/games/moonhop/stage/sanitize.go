package stage

import (
	"math"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// Limits applied by Sanitize.
const (
	MinGap    = world.BlockSize
	MaxGap    = 200.0 // stays under the full-charge apex with the default tuning
	MaxBlocks = int((world.CanvasWidth - 2*world.EdgeMargin) / world.BlockSize)
)

// Sanitize clamps a stage configuration into a generatable one. It never
// fails: inverted ranges are swapped, empty or out-of-range values are
// pulled into bounds and type ratios summing above 1 are scaled down so the
// residual probability falls back to normal platforms.
func Sanitize(cfg world.StageConfig) world.StageConfig {
	if cfg.PlatformCount <= 0 {
		cfg.PlatformCount = 1
	}

	cfg.GapMin, cfg.GapMax = orderedRange(finiteOr(cfg.GapMin, MinGap), finiteOr(cfg.GapMax, MinGap))
	cfg.GapMin = clampF(cfg.GapMin, MinGap, MaxGap)
	cfg.GapMax = clampF(cfg.GapMax, cfg.GapMin, MaxGap)

	if !isFinite(cfg.FirstPlatformGap) || cfg.FirstPlatformGap <= 0 {
		cfg.FirstPlatformGap = cfg.GapMin
	}
	cfg.FirstPlatformGap = clampF(cfg.FirstPlatformGap, MinGap, MaxGap)

	if cfg.BlockCountMin > cfg.BlockCountMax {
		cfg.BlockCountMin, cfg.BlockCountMax = cfg.BlockCountMax, cfg.BlockCountMin
	}
	cfg.BlockCountMin = clampI(cfg.BlockCountMin, 1, MaxBlocks)
	cfg.BlockCountMax = clampI(cfg.BlockCountMax, cfg.BlockCountMin, MaxBlocks)

	cfg.NormalRatio = ratio(cfg.NormalRatio)
	cfg.IceRatio = ratio(cfg.IceRatio)
	cfg.CaterpillarRatio = ratio(cfg.CaterpillarRatio)
	cfg.MovingRatio = ratio(cfg.MovingRatio)
	if sum := cfg.NormalRatio + cfg.IceRatio + cfg.CaterpillarRatio + cfg.MovingRatio; sum > 1 {
		cfg.NormalRatio /= sum
		cfg.IceRatio /= sum
		cfg.CaterpillarRatio /= sum
		cfg.MovingRatio /= sum
	}

	if !isFinite(cfg.WaterSpeed) || cfg.WaterSpeed < 0 {
		cfg.WaterSpeed = 0
	}
	if cfg.EelCount < 0 {
		cfg.EelCount = 0
	}
	return cfg
}

func ratio(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

func orderedRange(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func finiteOr(v, fallback float64) float64 {
	if !isFinite(v) {
		return fallback
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
