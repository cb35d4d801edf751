// Package stage builds the platforms, hazards and decorations of a stage
// from its configuration and stage number. Generation is fully determined
// by the stage number: the same inputs always yield the same layout.
package stage

import (
	"math"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// Generator turns stage configurations into stages.
type Generator struct {
	Scoring world.Scoring
}

// NewGenerator creates a generator that attaches the given scoring constants
// to every stage it produces.
func NewGenerator(scoring world.Scoring) *Generator {
	return &Generator{Scoring: scoring}
}

// Generate builds stage stageNumber with the default scoring constants.
func Generate(cfg world.StageConfig, stageNumber int) world.Stage {
	return NewGenerator(world.DefaultScoring()).Generate(cfg, stageNumber)
}

// Generate seeds a fresh Random from the stage number and builds the stage.
func (g *Generator) Generate(cfg world.StageConfig, stageNumber int) world.Stage {
	return g.GenerateFrom(NewRandom(StageSeed(stageNumber)), cfg, stageNumber)
}

// GenerateFrom builds a stage drawing every random choice from rng.
// The order of draws is part of the contract: platforms, moon, eels, stars.
func (g *Generator) GenerateFrom(rng *Random, cfg world.StageConfig, stageNumber int) world.Stage {
	cfg = Sanitize(cfg)

	platforms := placePlatforms(rng, cfg)
	moon := placeMoon(platforms)
	eels := placeEels(rng, platforms, cfg.EelCount)
	stars := placeStars(rng, moon)

	return world.Stage{
		Number:    stageNumber,
		Platforms: platforms,
		Moon:      moon,
		Eels:      eels,
		Water: world.Water{
			Y:     world.CanvasHeight + world.WaterStartDepth,
			Speed: cfg.WaterSpeed,
		},
		Stars: stars,
		Score: world.ScoreRule{Scoring: g.Scoring, StageNumber: stageNumber},
	}
}

// Ground returns the ground platform every stage starts with.
func Ground() world.Platform {
	return world.Platform{
		X:      0,
		Y:      world.GroundY,
		Width:  world.CanvasWidth,
		Blocks: int(world.CanvasWidth / world.BlockSize),
		Type:   world.PlatformNormal,
	}
}

func placePlatforms(rng *Random, cfg world.StageConfig) []world.Platform {
	platforms := make([]world.Platform, 0, cfg.PlatformCount+1)
	platforms = append(platforms, Ground())

	prev := platforms[0]
	y := world.GroundY
	for i := 0; i < cfg.PlatformCount; i++ {
		gap := cfg.FirstPlatformGap
		if i > 0 {
			gap = rng.Range(cfg.GapMin, cfg.GapMax)
		}
		y -= gap

		blocks := rng.Int(cfg.BlockCountMin, cfg.BlockCountMax)
		width := float64(blocks) * world.BlockSize

		p := world.Platform{
			X:      sampleX(rng, prev, width),
			Y:      y,
			Width:  width,
			Blocks: blocks,
		}
		assignType(rng, &p, cfg)

		platforms = append(platforms, p)
		prev = p
	}
	return platforms
}

// sampleX picks the left edge of a platform of the given width. The sampling
// window is centered on the previous platform and narrowed to the canvas and
// to the jump range, so consecutive centers never drift more than MaxJumpRange
// apart. Only the step from the previous platform is guaranteed.
//
// The sample is snapped to a multiple of BlockSize that lies inside the
// window. Constraints rank canvas margin, then jump range, then snap: when no
// multiple fits (a platform of MaxBlocks only fits at x = EdgeMargin) the
// sample is kept unsnapped, and when the window is empty the platform stands
// over the previous one, clamped to the margins.
func sampleX(rng *Random, prev world.Platform, width float64) float64 {
	center := prev.Center()
	half := width / 2

	canvasMin := world.EdgeMargin
	canvasMax := math.Max(canvasMin, world.CanvasWidth-width-world.EdgeMargin)

	minX := math.Max(center-world.SampleWindow-half, canvasMin)
	maxX := math.Min(center+world.SampleWindow-half, canvasMax)
	minX = math.Max(minX, center-world.MaxJumpRange-half)
	maxX = math.Min(maxX, center+world.MaxJumpRange-half)

	if minX > maxX {
		return clampF(center-half, canvasMin, canvasMax)
	}

	x := rng.Range(minX, maxX)
	if snapped, ok := snapInto(x, minX, maxX); ok {
		return snapped
	}
	return x
}

// snapInto returns the multiple of BlockSize nearest to x within [lo, hi].
func snapInto(x, lo, hi float64) (float64, bool) {
	snapped := math.Round(x/world.BlockSize) * world.BlockSize
	if snapped < lo {
		snapped += world.BlockSize
	}
	if snapped > hi {
		snapped -= world.BlockSize
	}
	return snapped, snapped >= lo && snapped <= hi
}

// assignType draws the platform type by cumulative ratio in the order
// normal, ice, caterpillar, moving. Unassigned mass falls back to normal.
func assignType(rng *Random, p *world.Platform, cfg world.StageConfig) {
	roll := rng.Next()

	iceEdge := cfg.NormalRatio + cfg.IceRatio
	caterpillarEdge := iceEdge + cfg.CaterpillarRatio
	movingEdge := caterpillarEdge + cfg.MovingRatio

	switch {
	case roll < cfg.NormalRatio:
		p.Type = world.PlatformNormal
	case roll < iceEdge:
		p.Type = world.PlatformIce
	case roll < caterpillarEdge:
		p.Type = world.PlatformCaterpillar
		p.CaterpillarDirection = rng.Sign()
		p.CaterpillarOffset = 0
	case roll < movingEdge:
		p.Type = world.PlatformMoving
		p.MoveDirection = rng.Sign()
		p.MinX = math.Max(world.EdgeMargin, p.X-world.MoveTravel)
		p.MaxX = math.Min(world.CanvasWidth-p.Width-world.EdgeMargin, p.X+world.MoveTravel)
		if p.MaxX < p.MinX {
			p.MinX, p.MaxX = p.X, p.X
		}
	default:
		p.Type = world.PlatformNormal
	}
}

// placeMoon centers the moon above the highest platform.
func placeMoon(platforms []world.Platform) world.Moon {
	top := platforms[0].Y
	for _, p := range platforms {
		if p.Y < top {
			top = p.Y
		}
	}
	return world.Moon{
		X:    (world.CanvasWidth - world.MoonSize) / 2,
		Y:    top - world.MoonOffset - world.MoonSize,
		Size: world.MoonSize,
	}
}

// placeEels spreads count eels over the height range of the floating
// platforms, anchoring each to the platform nearest its target height.
func placeEels(rng *Random, platforms []world.Platform, count int) []world.Eel {
	floating := platforms[1:]
	if len(floating) < 2 || count <= 0 {
		return []world.Eel{}
	}

	low, high := floating[0].Y, floating[0].Y
	for _, p := range floating {
		low = math.Max(low, p.Y)
		high = math.Min(high, p.Y)
	}

	eels := make([]world.Eel, 0, count)
	for i := 0; i < count; i++ {
		target := low - (low-high)*float64(i+1)/float64(count+1)
		anchor := nearestPlatform(floating, target)

		side := float64(rng.Sign())
		x := anchor.Center() + side*(anchor.Width/2+world.EelSideOffset) - world.EelWidth/2
		x = clampF(x, 0, world.CanvasWidth-world.EelWidth)

		eels = append(eels, world.Eel{
			X:        x,
			Y:        anchor.Y - world.EelLift - world.EelHeight,
			Width:    world.EelWidth,
			Height:   world.EelHeight,
			Rotation: rng.Range(-math.Pi/6, math.Pi/6),
		})
	}
	return eels
}

func nearestPlatform(platforms []world.Platform, y float64) world.Platform {
	best := platforms[0]
	bestDist := math.Abs(best.Y - y)
	for _, p := range platforms[1:] {
		if d := math.Abs(p.Y - y); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// placeStars scatters decoration over the whole world height, from the
// canvas bottom to half a screen above the moon.
func placeStars(rng *Random, moon world.Moon) []world.Star {
	top := moon.Y - world.CanvasHeight/2
	height := world.CanvasHeight - top
	count := int(math.Ceil(height / world.CanvasHeight * world.StarsPerScreen))

	stars := make([]world.Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, world.Star{
			X:    rng.Range(0, world.CanvasWidth),
			Y:    rng.Range(top, world.CanvasHeight),
			Size: rng.Range(world.StarMinSize, world.StarMaxSize),
			Kind: rng.Int(0, world.StarKinds-1),
		})
	}
	return stars
}
