package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

const dt = 1.0 / 60.0

// testWorld builds a world with the ground at index 0 followed by the given
// platforms. Water and moon are placed far out of reach.
func testWorld(platforms ...world.Platform) *world.World {
	ground := world.Platform{X: 0, Y: world.GroundY, Width: world.CanvasWidth, Blocks: 18}
	w := &world.World{
		Stage:     1,
		Platforms: append([]world.Platform{ground}, platforms...),
		Moon:      world.Moon{X: 160, Y: -10000, Size: world.MoonSize},
		Water:     world.Water{Y: 10000, Speed: 30},
		Score:     world.ScoreRule{Scoring: world.DefaultScoring(), StageNumber: 1},
	}
	w.Actor = world.SpawnActor(ground)
	return w
}

// standOn puts the actor at rest on platform i, at horizontal position x.
func standOn(w *world.World, i int, x float64) {
	w.Actor.X = x
	w.Actor.Y = w.Platforms[i].Y
	w.Actor.VX, w.Actor.VY = 0, 0
	w.Actor.State = world.StateGrounded
	w.Actor.Support = i
}

// run steps the world n times starting at clk.Now = start and returns the
// clock after the last tick.
func run(e *Engine, w *world.World, in world.Intent, start float64, n int) float64 {
	now := start
	for i := 0; i < n; i++ {
		now += dt
		e.Step(w, in, world.Clock{Now: now, Delta: dt})
	}
	return now
}

func TestChargeRatioClamp(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	hold := world.Intent{Jump: true}

	now := 0.0
	prev := 0.0
	for i := 0; i < 600; i++ {
		now += dt
		e.Step(w, hold, world.Clock{Now: now, Delta: dt})
		if w.Actor.State != world.StateCharging {
			t.Fatalf("tick %d: state = %v, want charging", i, w.Actor.State)
		}
		r := w.Actor.ChargeRatio
		if r > 1 {
			t.Fatalf("tick %d: charge ratio %v exceeds 1", i, r)
		}
		if r < prev {
			t.Fatalf("tick %d: charge ratio decreased from %v to %v", i, prev, r)
		}
		prev = r
	}
	if prev != 1 {
		t.Errorf("charge ratio after 10s hold = %v, want 1", prev)
	}
}

func TestChargeRatioIsTimeBased(t *testing.T) {
	tests := []struct {
		held, chargeTime, want float64
	}{
		{0, 0.8, 0},
		{0.4, 0.8, 0.5},
		{0.8, 0.8, 1},
		{5, 0.8, 1},
		{-1, 0.8, 0},
		{1, 0, 1},
	}
	for _, tt := range tests {
		if got := ChargeRatio(tt.held, tt.chargeTime); got != tt.want {
			t.Errorf("ChargeRatio(%v, %v) = %v, want %v", tt.held, tt.chargeTime, got, tt.want)
		}
	}
}

func TestLaunchSpeedMonotonic(t *testing.T) {
	tun := world.DefaultTuning()
	if got := LaunchSpeed(tun, 0); got != tun.MinJumpSpeed {
		t.Errorf("LaunchSpeed(0) = %v, want minimum hop %v", got, tun.MinJumpSpeed)
	}
	if got := LaunchSpeed(tun, 1); got != tun.MaxJumpSpeed {
		t.Errorf("LaunchSpeed(1) = %v, want %v", got, tun.MaxJumpSpeed)
	}
	prev := 0.0
	for r := 0.0; r <= 1.0; r += 0.05 {
		v := LaunchSpeed(tun, r)
		if v < prev {
			t.Fatalf("LaunchSpeed not monotonic at ratio %v", r)
		}
		prev = v
	}
}

func TestJumpReleaseLaunches(t *testing.T) {
	tun := world.DefaultTuning()
	e := New(tun)
	w := testWorld()

	now := run(e, w, world.Intent{Jump: true}, 0, 24)
	if w.Actor.ChargeRatio <= 0 {
		t.Fatalf("expected some charge, got %v", w.Actor.ChargeRatio)
	}

	now += dt
	ratio := ChargeRatio(now-w.Actor.ChargeStart, tun.ChargeTime)
	ev := e.Step(w, world.Intent{Dir: world.Direction{X: 1}}, world.Clock{Now: now, Delta: dt})
	if !ev.Launched {
		t.Fatal("expected Launched event on release")
	}
	a := w.Actor
	if a.State != world.StateAirborne {
		t.Fatalf("state = %v, want airborne", a.State)
	}
	if a.ChargeRatio != 0 {
		t.Errorf("charge ratio after release = %v, want 0", a.ChargeRatio)
	}
	if a.VX != tun.JumpDrift {
		t.Errorf("vx = %v, want drift %v", a.VX, tun.JumpDrift)
	}
	wantVY := -LaunchSpeed(tun, ratio) + tun.Gravity*dt
	if math.Abs(a.VY-wantVY) > 1e-9 {
		t.Errorf("vy = %v, want %v", a.VY, wantVY)
	}
	if !w.Water.Rising {
		t.Error("water should start rising on the first launch")
	}
}

func TestUpwardJumpReducesDrift(t *testing.T) {
	tun := world.DefaultTuning()
	e := New(tun)
	w := testWorld()

	now := run(e, w, world.Intent{Jump: true}, 0, 10)
	now += dt
	e.Step(w, world.Intent{Dir: world.Direction{X: -1, Y: -1}}, world.Clock{Now: now, Delta: dt})

	want := -tun.JumpDrift * tun.UpwardDriftBias
	if w.Actor.VX != want {
		t.Errorf("vx = %v, want %v", w.Actor.VX, want)
	}
	if w.Actor.Facing != -1 {
		t.Errorf("facing = %d, want -1", w.Actor.Facing)
	}
}

func TestLandingResetsCharge(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld(world.Platform{X: 100, Y: 500, Width: 100, Blocks: 5})
	w.Actor = world.Actor{
		X: 150, Y: 490, VY: 200, Facing: 1,
		State:       world.StateAirborne,
		ChargeRatio: 0.7,
		Support:     world.NoSupport,
	}

	now := 0.0
	landed := false
	for i := 0; i < 60 && !landed; i++ {
		now += dt
		ev := e.Step(w, world.Intent{}, world.Clock{Now: now, Delta: dt})
		landed = ev.Landed
	}
	if !landed {
		t.Fatal("actor never landed")
	}
	a := w.Actor
	if a.State != world.StateGrounded {
		t.Errorf("state = %v, want grounded", a.State)
	}
	if a.VY != 0 || a.ChargeRatio != 0 {
		t.Errorf("after landing vy=%v charge=%v, want both 0", a.VY, a.ChargeRatio)
	}
	if a.Y != 500 || a.Support != 1 {
		t.Errorf("landed at y=%v support=%d, want y=500 support=1", a.Y, a.Support)
	}
}

func TestLandingPicksSmallestPenetration(t *testing.T) {
	tests := []struct {
		name      string
		platforms []world.Platform
		want      int
	}{
		{
			name: "closer surface wins",
			platforms: []world.Platform{
				{X: 100, Y: 495, Width: 100, Blocks: 5},
				{X: 100, Y: 500, Width: 100, Blocks: 5},
			},
			want: 2,
		},
		{
			name: "tie keeps lower index",
			platforms: []world.Platform{
				{X: 100, Y: 500, Width: 100, Blocks: 5},
				{X: 120, Y: 500, Width: 100, Blocks: 5},
			},
			want: 1,
		},
	}

	e := New(world.DefaultTuning())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(tt.platforms...)
			// One tick carries the feet from 490 to about 502.
			w.Actor = world.Actor{X: 150, Y: 490, VY: 720, State: world.StateAirborne, Support: world.NoSupport}

			ev := e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
			if !ev.Landed {
				t.Fatal("expected a landing")
			}
			if w.Actor.Support != tt.want {
				t.Errorf("support = %d, want %d", w.Actor.Support, tt.want)
			}
		})
	}
}

func TestRisingActorPassesThroughPlatforms(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld(world.Platform{X: 100, Y: 500, Width: 100, Blocks: 5})
	w.Actor = world.Actor{X: 150, Y: 505, VY: -600, State: world.StateAirborne, Support: world.NoSupport}

	ev := e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
	if ev.Landed || w.Actor.State != world.StateAirborne {
		t.Errorf("rising actor landed on a platform from below")
	}
}

func TestWrapXIdempotentInside(t *testing.T) {
	for _, x := range []float64{0, 0.25, 100, 180.5, world.CanvasWidth - 1e-9} {
		if got := WrapX(x); got != x {
			t.Errorf("WrapX(%v) = %v, want unchanged", x, got)
		}
	}
}

func TestWrapXOutside(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, world.CanvasWidth - 1},
		{-0.5, world.CanvasWidth - 0.5},
		{world.CanvasWidth, 0},
		{world.CanvasWidth + 12.5, 12.5},
		{2*world.CanvasWidth + 3, 3},
	}
	for _, tt := range tests {
		if got := WrapX(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapX(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAirborneActorWrapsAcrossEdge(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	w.Actor = world.Actor{X: world.CanvasWidth - 1, Y: 300, VX: 120, State: world.StateAirborne, Support: world.NoSupport}

	e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
	if w.Actor.X < 0 || w.Actor.X >= world.CanvasWidth {
		t.Fatalf("x = %v outside canvas", w.Actor.X)
	}
	if math.Abs(w.Actor.X-1) > 1e-9 {
		t.Errorf("x = %v, want 1 after wrapping", w.Actor.X)
	}
}

func TestIceSlidesFurtherThanNormal(t *testing.T) {
	e := New(world.DefaultTuning())

	residual := func(pt world.PlatformType) float64 {
		w := testWorld()
		w.Platforms[0].Type = pt
		standOn(w, 0, 100)
		w.Actor.VX = 5
		run(e, w, world.Intent{}, 0, 30)
		if w.Actor.State != world.StateGrounded {
			t.Fatalf("%v: state = %v, want grounded", pt, w.Actor.State)
		}
		return w.Actor.VX
	}

	ice := residual(world.PlatformIce)
	normal := residual(world.PlatformNormal)
	if ice <= normal {
		t.Errorf("ice residual vx %v should exceed normal residual %v", ice, normal)
	}
	if ice <= 0 || ice >= 5 {
		t.Errorf("ice residual vx %v should decay but stay positive", ice)
	}
}

func TestCaterpillarCarriesActor(t *testing.T) {
	tun := world.DefaultTuning()
	e := New(tun)
	w := testWorld(world.Platform{
		X: 100, Y: 500, Width: 100, Blocks: 5,
		Type:                 world.PlatformCaterpillar,
		CaterpillarDirection: 1,
	})
	standOn(w, 1, 150)

	e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})

	want := 150 + tun.CaterpillarRate*dt
	if math.Abs(w.Actor.X-want) > 1e-9 {
		t.Errorf("x = %v, want %v", w.Actor.X, want)
	}
	if w.Actor.State != world.StateGrounded {
		t.Errorf("state = %v, want grounded", w.Actor.State)
	}
	if got := w.Platforms[1].CaterpillarOffset; math.Abs(got-tun.CaterpillarRate*dt) > 1e-9 {
		t.Errorf("caterpillar offset = %v, want %v", got, tun.CaterpillarRate*dt)
	}
}

func TestCaterpillarReversesAtSpan(t *testing.T) {
	tun := world.DefaultTuning()
	e := New(tun)
	w := testWorld(world.Platform{
		X: 100, Y: 300, Width: 100, Blocks: 5,
		Type:                 world.PlatformCaterpillar,
		CaterpillarDirection: 1,
		CaterpillarOffset:    tun.CaterpillarSpan - 0.5,
	})

	e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
	p := w.Platforms[1]
	if p.CaterpillarOffset != tun.CaterpillarSpan {
		t.Errorf("offset = %v, want clamped to %v", p.CaterpillarOffset, tun.CaterpillarSpan)
	}
	if p.CaterpillarDirection != -1 {
		t.Errorf("direction = %d, want -1 after reaching the span", p.CaterpillarDirection)
	}
}

func TestMovingPlatformCarriesActor(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld(world.Platform{
		X: 100, Y: 500, Width: 60, Blocks: 3,
		Type:          world.PlatformMoving,
		MoveDirection: 1,
		MinX:          60,
		MaxX:          140,
	})
	standOn(w, 1, 130)
	offset := w.Actor.X - w.Platforms[1].X

	run(e, w, world.Intent{}, 0, 20)

	if w.Actor.State != world.StateGrounded || w.Actor.Support != 1 {
		t.Fatalf("actor left the platform: state=%v support=%d", w.Actor.State, w.Actor.Support)
	}
	if got := w.Actor.X - w.Platforms[1].X; math.Abs(got-offset) > 1e-9 {
		t.Errorf("actor drifted relative to platform: offset %v, want %v", got, offset)
	}
	if w.Platforms[1].X <= 100 {
		t.Errorf("platform did not move: x = %v", w.Platforms[1].X)
	}
}

func TestMovingPlatformReversesAtBounds(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld(world.Platform{
		X: 139.5, Y: 300, Width: 60, Blocks: 3,
		Type:          world.PlatformMoving,
		MoveDirection: 1,
		MinX:          60,
		MaxX:          140,
	})

	e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
	p := w.Platforms[1]
	if p.X != 140 || p.MoveDirection != -1 {
		t.Errorf("x=%v dir=%d, want x=140 dir=-1", p.X, p.MoveDirection)
	}
}

func TestWalkingOffEdgeFalls(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld(world.Platform{X: 100, Y: 500, Width: 60, Blocks: 3})
	standOn(w, 1, 175)

	e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
	a := w.Actor
	if a.State != world.StateAirborne {
		t.Fatalf("state = %v, want airborne", a.State)
	}
	if a.Support != world.NoSupport {
		t.Errorf("support = %d, want NoSupport", a.Support)
	}
	if a.VY <= 0 {
		t.Errorf("vy = %v, want gravity applied", a.VY)
	}
}

func TestCarriedOffEdgeFalls(t *testing.T) {
	tests := []struct {
		name     string
		platform world.Platform
		x        float64
		in       world.Intent
	}{
		{
			name: "caterpillar right",
			platform: world.Platform{
				X: 100, Y: 500, Width: 60, Blocks: 3,
				Type: world.PlatformCaterpillar, CaterpillarDirection: 1,
			},
			x: 165,
		},
		{
			name: "caterpillar left",
			platform: world.Platform{
				X: 100, Y: 500, Width: 60, Blocks: 3,
				Type: world.PlatformCaterpillar, CaterpillarDirection: -1,
			},
			x: 95,
		},
		{
			name: "moving right",
			platform: world.Platform{
				X: 100, Y: 500, Width: 60, Blocks: 3,
				Type: world.PlatformMoving, MoveDirection: 1, MinX: 60, MaxX: 200,
			},
			x:  150,
			in: world.Intent{Dir: world.Direction{X: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(world.DefaultTuning())
			w := testWorld(tt.platform)
			standOn(w, 1, tt.x)
			half := e.Tuning().ActorWidth / 2

			now := 0.0
			for tick := 0; tick < 120; tick++ {
				before := w.Actor
				p := w.Platforms[1]
				now += dt
				e.Step(w, tt.in, world.Clock{Now: now, Delta: dt})

				if w.Actor.State == world.StateGrounded {
					continue
				}
				if before.State != world.StateGrounded || before.Support != 1 {
					t.Fatalf("tick %d: left the platform from state %v support %d", tick, before.State, before.Support)
				}
				if before.X-half < p.Right() && before.X+half > p.X {
					t.Fatalf("tick %d: fell while still over the platform (x=%v, platform %v..%v)", tick, before.X, p.X, p.Right())
				}
				a := w.Actor
				if a.State != world.StateAirborne {
					t.Fatalf("tick %d: state = %v, want airborne", tick, a.State)
				}
				if a.Support != world.NoSupport {
					t.Errorf("support = %d, want NoSupport", a.Support)
				}
				if a.VY <= 0 {
					t.Errorf("vy = %v, want gravity applied", a.VY)
				}
				if a.Y <= p.Y {
					t.Errorf("y = %v, want below the platform top %v", a.Y, p.Y)
				}
				return
			}
			t.Fatalf("actor still grounded at x=%v after 120 ticks", w.Actor.X)
		})
	}
}

func TestFallingWhileChargingDropsCharge(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld(world.Platform{X: 100, Y: 500, Width: 60, Blocks: 3})
	standOn(w, 1, 150)

	now := run(e, w, world.Intent{Jump: true}, 0, 10)
	if w.Actor.State != world.StateCharging {
		t.Fatalf("state = %v, want charging", w.Actor.State)
	}
	w.Actor.X = 180
	e.Step(w, world.Intent{Jump: true}, world.Clock{Now: now + dt, Delta: dt})
	if w.Actor.State != world.StateAirborne || w.Actor.ChargeRatio != 0 {
		t.Errorf("state=%v charge=%v, want airborne with no charge", w.Actor.State, w.Actor.ChargeRatio)
	}
}

func TestWaterDeath(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	w.Water.Y = w.Actor.Y

	ev := e.Step(w, world.Intent{}, world.Clock{Now: 2.5, Delta: dt})
	if !ev.Died {
		t.Fatal("expected Died event")
	}
	if w.Actor.State != world.StateDead {
		t.Errorf("state = %v, want dead", w.Actor.State)
	}
	if w.Actor.DeadTime != 2.5 {
		t.Errorf("dead time = %v, want 2.5", w.Actor.DeadTime)
	}
}

func TestFallingOutOfViewKills(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	w.Camera.Y = -1000
	w.Actor = world.Actor{X: 180, Y: 0, VY: 300, State: world.StateAirborne, Support: world.NoSupport}

	ev := e.Step(w, world.Intent{}, world.Clock{Now: 1, Delta: dt})
	if !ev.Died || w.Actor.State != world.StateDead {
		t.Errorf("actor below the camera should die, state = %v", w.Actor.State)
	}
}

func TestDeadActorStaysDeadWhileWorldMoves(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	w.Water.Rising = true
	w.Actor.State = world.StateDead
	before := w.Actor
	waterY := w.Water.Y

	ev := e.Step(w, world.Intent{Jump: true, Dir: world.Direction{X: 1}}, world.Clock{Now: 1, Delta: dt})
	if ev != (world.Events{}) {
		t.Errorf("dead actor produced events: %+v", ev)
	}
	if w.Actor != before {
		t.Errorf("dead actor changed: %+v", w.Actor)
	}
	if w.Water.Y >= waterY {
		t.Errorf("water did not rise: %v", w.Water.Y)
	}
}

func TestEelContactIsOneShot(t *testing.T) {
	tun := world.DefaultTuning()
	e := New(tun)
	w := testWorld()
	w.Eels = []world.Eel{{X: 170, Y: 585, Width: world.EelWidth, Height: world.EelHeight}}

	ev := e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
	if ev.EelsCollected != 1 || ev.ScoreDelta != tun.EelBonus {
		t.Fatalf("first contact: collected=%d delta=%d", ev.EelsCollected, ev.ScoreDelta)
	}
	if !w.Eels[0].Collected {
		t.Error("eel not flagged collected")
	}

	ev = e.Step(w, world.Intent{}, world.Clock{Now: 2 * dt, Delta: dt})
	if ev.EelsCollected != 0 || ev.ScoreDelta != 0 {
		t.Errorf("repeat contact scored again: %+v", ev)
	}
	if len(w.Eels) != 1 {
		t.Errorf("collected eels must stay in the world")
	}
}

func TestMoonClearsStage(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	w.Moon = world.Moon{X: 170, Y: 570, Size: world.MoonSize}

	ev := e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
	if !ev.Cleared || !w.Cleared {
		t.Fatal("expected stage clear on moon contact")
	}
	if w.ClearTime != w.Elapsed {
		t.Errorf("clear time = %v, want elapsed %v", w.ClearTime, w.Elapsed)
	}

	before := w.Actor
	ev = e.Step(w, world.Intent{Jump: true}, world.Clock{Now: 2 * dt, Delta: dt})
	if ev.Cleared {
		t.Error("clear must be edge-triggered")
	}
	if w.Actor != before {
		t.Error("actor moved after the stage was cleared")
	}
}

func TestCameraNeverMovesDown(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	w.Camera.Y = w.Actor.Y - world.CanvasHeight*e.Tuning().CameraAnchor

	now := run(e, w, world.Intent{Jump: true}, 0, 48)
	prev := w.Camera.Y
	for i := 0; i < 180; i++ {
		now += dt
		e.Step(w, world.Intent{}, world.Clock{Now: now, Delta: dt})
		if w.Camera.Y > prev {
			t.Fatalf("tick %d: camera moved down from %v to %v", i, prev, w.Camera.Y)
		}
		prev = w.Camera.Y
	}
	if prev >= world.GroundY-world.CanvasHeight*e.Tuning().CameraAnchor {
		t.Errorf("camera never rose during a full jump: %v", prev)
	}
}

func TestNonFiniteStatePanics(t *testing.T) {
	e := New(world.DefaultTuning())
	w := testWorld()
	w.Actor.State = world.StateAirborne
	w.Actor.VX = math.NaN()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on NaN velocity")
		}
	}()
	e.Step(w, world.Intent{}, world.Clock{Now: dt, Delta: dt})
}

func TestStepDeterministic(t *testing.T) {
	e := New(world.DefaultTuning())
	platforms := []world.Platform{
		{X: 120, Y: 480, Width: 80, Blocks: 4, Type: world.PlatformIce},
		{X: 60, Y: 360, Width: 60, Blocks: 3, Type: world.PlatformCaterpillar, CaterpillarDirection: -1},
		{X: 200, Y: 240, Width: 60, Blocks: 3, Type: world.PlatformMoving, MoveDirection: 1, MinX: 160, MaxX: 240},
	}

	intents := make([]world.Intent, 600)
	for i := range intents {
		switch {
		case i%90 < 40:
			intents[i] = world.Intent{Jump: true, Dir: world.Direction{X: 1}}
		case i%90 < 60:
			intents[i] = world.Intent{Dir: world.Direction{X: -1, Y: -1}}
		default:
			intents[i] = world.Intent{}
		}
	}

	play := func() world.World {
		w := testWorld(platforms...)
		w.Water.Y = 900
		now := 0.0
		for _, in := range intents {
			now += dt
			e.Step(w, in, world.Clock{Now: now, Delta: dt})
		}
		return *w
	}

	w1, w2 := play(), play()
	if w1.Actor != w2.Actor {
		t.Errorf("actor differs between runs: %+v vs %+v", w1.Actor, w2.Actor)
	}
	if w1.Camera != w2.Camera || w1.Water != w2.Water {
		t.Errorf("camera/water differ between runs")
	}
	for i := range w1.Platforms {
		if w1.Platforms[i] != w2.Platforms[i] {
			t.Errorf("platform %d differs between runs", i)
		}
	}
}
