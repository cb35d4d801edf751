// Package physics advances a world by one tick: actor state machine,
// gravity, collisions against platforms, water, moon and eels, platform
// motion and camera follow.
package physics

import (
	"fmt"
	"math"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// Engine steps worlds with a fixed set of tuning parameters. It holds no
// per-world state, so one engine can step any number of worlds.
type Engine struct {
	tuning world.Tuning
}

// New creates an engine with the given tuning.
func New(t world.Tuning) *Engine {
	return &Engine{tuning: t}
}

// Tuning returns the engine's tuning parameters.
func (e *Engine) Tuning() world.Tuning {
	return e.tuning
}

// Step advances w by clk.Delta seconds under intent in. The order of the
// phases is fixed:
//
//  0. intent (charge start / release)
//  1. gravity, after dropping actors that lost their support
//  2. integrate position
//  3. horizontal wrap
//  4. landing
//  5. surface effects (friction, riding)
//  6. water and moon
//  7. eels
//  8. platforms and water
//  9. camera
//
// A tick that leaves non-finite state panics: that is a logic error.
func (e *Engine) Step(w *world.World, in world.Intent, clk world.Clock) world.Events {
	var ev world.Events
	dt := clk.Delta
	a := &w.Actor

	w.Elapsed += dt
	moves := e.platformMotion(w.Platforms, dt)

	if a.Alive() && !w.Cleared {
		e.applyIntent(w, in, clk, &ev)
		e.applyGravity(w, dt)

		prevY := a.Y
		a.X += a.VX * dt
		a.Y += a.VY * dt
		a.X = WrapX(a.X)

		if e.resolveLanding(w, prevY) {
			ev.Landed = true
		}
		e.applySurface(w, in, moves, dt)

		if e.resolveWater(w) {
			kill(a, clk.Now)
			ev.Died = true
		} else if e.resolveMoon(w) {
			w.Cleared = true
			w.ClearTime = w.Elapsed
			ev.Cleared = true
		}
		if a.Alive() {
			e.resolveEels(w, &ev)
		}
	}

	e.advanceEntities(w, moves, dt)
	e.followCamera(w)

	mustBeFinite(w)
	return ev
}

// applyGravity drops a standing actor whose platform moved out from under it,
// then accelerates airborne actors downward.
func (e *Engine) applyGravity(w *world.World, dt float64) {
	a := &w.Actor
	if a.State.OnSurface() && !e.supported(w) {
		detach(a)
	}
	if a.State == world.StateAirborne {
		a.VY = math.Min(a.VY+e.tuning.Gravity*dt, e.tuning.MaxFallSpeed)
	}
}

func (e *Engine) supported(w *world.World) bool {
	a := w.Actor
	if a.Support < 0 || a.Support >= len(w.Platforms) {
		return false
	}
	return e.overlapsX(a, w.Platforms[a.Support])
}

func (e *Engine) overlapsX(a world.Actor, p world.Platform) bool {
	half := e.tuning.ActorWidth / 2
	return a.X+half > p.X && a.X-half < p.Right()
}

// resolveLanding lands a falling actor on the platform it crossed this tick.
// A platform qualifies when the feet were at or above its top before the
// move and at or below it after; among several, the shallowest penetration
// wins and ties keep the lower index.
func (e *Engine) resolveLanding(w *world.World, prevY float64) bool {
	a := &w.Actor
	if a.State != world.StateAirborne || a.VY < 0 {
		return false
	}

	best := -1
	bestPen := math.Inf(1)
	for i, p := range w.Platforms {
		if prevY > p.Y || a.Y < p.Y {
			continue
		}
		if !e.overlapsX(*a, p) {
			continue
		}
		if pen := a.Y - p.Y; pen < bestPen {
			best, bestPen = i, pen
		}
	}
	if best < 0 {
		return false
	}
	land(a, w.Platforms[best], best)
	return true
}

// applySurface applies the effects of the platform under a standing actor:
// traction toward the walking speed (weak on ice) and riding caterpillar and
// moving surfaces by their displacement this tick.
func (e *Engine) applySurface(w *world.World, in world.Intent, moves []float64, dt float64) {
	a := &w.Actor
	if !a.State.OnSurface() {
		return
	}

	friction := e.tuning.NormalFriction
	switch p := w.Platforms[a.Support]; p.Type {
	case world.PlatformIce:
		friction = e.tuning.IceFriction
	case world.PlatformCaterpillar, world.PlatformMoving:
		a.X += moves[a.Support]
	case world.PlatformNormal:
	}

	target := 0.0
	if a.State == world.StateGrounded {
		target = float64(sign(in.Dir.X)) * e.tuning.WalkSpeed
	}
	a.VX += (target - a.VX) * (1 - math.Exp(-friction*dt))
	a.X = WrapX(a.X)
}

// resolveWater reports whether the actor drowned or fell out of view.
func (e *Engine) resolveWater(w *world.World) bool {
	a := w.Actor
	if a.Y >= w.Water.Y {
		return true
	}
	return a.Y-e.tuning.ActorHeight > w.Camera.Y+world.CanvasHeight
}

func (e *Engine) resolveMoon(w *world.World) bool {
	return w.Actor.Box(e.tuning.ActorWidth, e.tuning.ActorHeight).Overlaps(w.Moon.Box())
}

// resolveEels collects every eel the actor touches. Collected eels stay in
// the world flagged, so contact scores once.
func (e *Engine) resolveEels(w *world.World, ev *world.Events) {
	box := w.Actor.Box(e.tuning.ActorWidth, e.tuning.ActorHeight)
	for i := range w.Eels {
		eel := &w.Eels[i]
		if eel.Collected || !box.Overlaps(eel.Box()) {
			continue
		}
		eel.Collected = true
		ev.EelsCollected++
		ev.ScoreDelta += e.tuning.EelBonus
	}
}

// followCamera raises the camera to keep the actor CameraAnchor of a screen
// below its top. The camera never moves down.
func (e *Engine) followCamera(w *world.World) {
	if !w.Actor.Alive() {
		return
	}
	target := w.Actor.Y - world.CanvasHeight*e.tuning.CameraAnchor
	if target < w.Camera.Y {
		w.Camera.Y = target
	}
}

func mustBeFinite(w *world.World) {
	a := w.Actor
	for name, v := range map[string]float64{
		"actor.x":  a.X,
		"actor.y":  a.Y,
		"actor.vx": a.VX,
		"actor.vy": a.VY,
		"charge":   a.ChargeRatio,
		"water.y":  w.Water.Y,
		"camera.y": w.Camera.Y,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("physics: non-finite %s after tick at t=%.3f", name, w.Elapsed))
		}
	}
}
