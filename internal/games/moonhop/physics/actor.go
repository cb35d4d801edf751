package physics

import (
	"math"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// ChargeRatio maps the time the jump has been held to [0, 1]. It depends on
// elapsed time only, never on frame count.
func ChargeRatio(held, chargeTime float64) float64 {
	if chargeTime <= 0 {
		return 1
	}
	return clamp(held/chargeTime, 0, 1)
}

// LaunchSpeed returns the upward launch speed for a charge ratio. Ratio 0
// still produces a small hop.
func LaunchSpeed(t world.Tuning, ratio float64) float64 {
	return t.MinJumpSpeed + clamp(ratio, 0, 1)*(t.MaxJumpSpeed-t.MinJumpSpeed)
}

// applyIntent runs the input-driven transitions of the actor state machine:
// grounded -> charging on jump intent, charging -> airborne on release.
func (e *Engine) applyIntent(w *world.World, in world.Intent, clk world.Clock, ev *world.Events) {
	a := &w.Actor
	if in.Dir.X != 0 {
		a.Facing = sign(in.Dir.X)
	}

	switch a.State {
	case world.StateGrounded:
		if in.Jump {
			a.State = world.StateCharging
			a.ChargeStart = clk.Now
			a.ChargeRatio = 0
		}
	case world.StateCharging:
		a.ChargeRatio = math.Max(a.ChargeRatio, ChargeRatio(clk.Now-a.ChargeStart, e.tuning.ChargeTime))
		if !in.Jump {
			e.launch(w, in)
			ev.Launched = true
		}
	}
}

// launch releases a charged jump. The horizontal component comes from the
// direction held at release; holding up trades drift for a steeper jump.
func (e *Engine) launch(w *world.World, in world.Intent) {
	a := &w.Actor
	drift := float64(sign(in.Dir.X)) * e.tuning.JumpDrift
	if in.Dir.Y < 0 {
		drift *= e.tuning.UpwardDriftBias
	}

	a.VY = -LaunchSpeed(e.tuning, a.ChargeRatio)
	a.VX = drift
	a.State = world.StateAirborne
	a.ChargeRatio = 0
	a.Support = world.NoSupport

	// Water holds until the first jump of the stage.
	w.Water.Rising = true
}

// detach drops an actor whose platform no longer holds it. Any charge in
// progress is discarded.
func detach(a *world.Actor) {
	a.State = world.StateAirborne
	a.ChargeRatio = 0
	a.Support = world.NoSupport
}

// land attaches an airborne actor to platform index i.
func land(a *world.Actor, p world.Platform, i int) {
	a.Y = p.Y
	a.VY = 0
	a.State = world.StateGrounded
	a.ChargeRatio = 0
	a.Support = i
}

// kill moves the actor to the terminal dead state at time now.
func kill(a *world.Actor, now float64) {
	a.State = world.StateDead
	a.DeadTime = now
	a.VX = 0
	a.VY = 0
	a.ChargeRatio = 0
	a.Support = world.NoSupport
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
