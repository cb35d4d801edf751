package physics

import (
	"math"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// platformMotion computes how far each platform's surface moves this tick
// without mutating anything. The actor update consumes these displacements
// and advanceEntities commits them, so a rider and its platform always move
// by the same amount.
func (e *Engine) platformMotion(platforms []world.Platform, dt float64) []float64 {
	moves := make([]float64, len(platforms))
	for i, p := range platforms {
		switch p.Type {
		case world.PlatformCaterpillar:
			span := e.tuning.CaterpillarSpan
			next := clamp(p.CaterpillarOffset+float64(sign(p.CaterpillarDirection))*e.tuning.CaterpillarRate*dt, -span, span)
			moves[i] = next - p.CaterpillarOffset
		case world.PlatformMoving:
			next := clamp(p.X+float64(sign(p.MoveDirection))*e.tuning.MovingRate*dt, p.MinX, p.MaxX)
			moves[i] = next - p.X
		case world.PlatformNormal, world.PlatformIce:
			// static
		}
	}
	return moves
}

// advanceEntities commits platform motion, reversing direction at the
// bounds, then raises the water and rolls its wave.
func (e *Engine) advanceEntities(w *world.World, moves []float64, dt float64) {
	for i := range w.Platforms {
		p := &w.Platforms[i]
		switch p.Type {
		case world.PlatformCaterpillar:
			span := e.tuning.CaterpillarSpan
			p.CaterpillarOffset += moves[i]
			if p.CaterpillarOffset >= span {
				p.CaterpillarOffset = span
				p.CaterpillarDirection = -1
			} else if p.CaterpillarOffset <= -span {
				p.CaterpillarOffset = -span
				p.CaterpillarDirection = 1
			}
		case world.PlatformMoving:
			p.X += moves[i]
			if p.X >= p.MaxX {
				p.X = p.MaxX
				p.MoveDirection = -1
			} else if p.X <= p.MinX {
				p.X = p.MinX
				p.MoveDirection = 1
			}
		case world.PlatformNormal, world.PlatformIce:
		}
	}

	if w.Water.Rising {
		w.Water.Y -= w.Water.Speed * dt
	}
	w.Water.WaveOffset = math.Mod(w.Water.WaveOffset+e.tuning.WaveRate*dt, 2*math.Pi)
}

// WrapX wraps a horizontal position onto [0, CanvasWidth). Positions already
// inside the canvas are returned unchanged.
func WrapX(x float64) float64 {
	if x >= 0 && x < world.CanvasWidth {
		return x
	}
	x = math.Mod(x, world.CanvasWidth)
	if x < 0 {
		x += world.CanvasWidth
	}
	if x >= world.CanvasWidth {
		x = 0
	}
	return x
}
