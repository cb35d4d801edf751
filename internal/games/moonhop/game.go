// Package moonhop is the playable session around the simulation core: it
// generates stages, steps the physics engine, keeps score and lives, and
// raises the lifecycle events the platform reacts to.
package moonhop

import (
	"sync"

	"github.com/vovakirdan/moonhop/internal/config"
	"github.com/vovakirdan/moonhop/internal/core"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/physics"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/stage"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
	"github.com/vovakirdan/moonhop/internal/registry"
)

// Mode is the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // play through the stage table with limited lives
	ModePractice Mode = "practice" // replay one stage with unlimited lives
	ModeEndless  Mode = "endless"  // keep climbing past the table with limited lives
)

// ID returns the registry identifier of the mode.
func (m Mode) ID() string {
	if m == ModeCampaign {
		return "moonhop"
	}
	return "moonhop_" + string(m)
}

// Game implements registry.Game for one MoonHop run.
type Game struct {
	mode       Mode
	cfg        config.Config
	difficulty *config.DifficultyManager
	gen        *stage.Generator
	engine     *physics.Engine

	dt   float64
	tick uint64
	now  float64

	stageNum    int
	stageCount  int // stages played this run, including the current one
	stage       world.Stage
	w           *world.World
	clearedAt   float64
	clearPoints int

	score    int
	lives    int // negative means unlimited
	gameOver bool
	won      bool
	paused   bool

	startStage int
	tickRate   int
	recorder   *Replay
}

var (
	cfgMu         sync.RWMutex
	sessionConfig = config.DefaultConfig()
)

// SetConfig sets the configuration used by games created through the
// registry.
func SetConfig(cfg config.Config) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	sessionConfig = cfg
}

// CurrentConfig returns the configuration used by registry-created games.
func CurrentConfig() config.Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return sessionConfig
}

// New creates a game in the given mode using the current configuration.
func New(mode Mode) *Game {
	return NewWithConfig(mode, CurrentConfig())
}

// NewWithConfig creates a game in the given mode with an explicit
// configuration.
func NewWithConfig(mode Mode, cfg config.Config) *Game {
	return &Game{
		mode:       mode,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		gen:        stage.NewGenerator(cfg.Scoring),
		engine:     physics.New(cfg.Tuning),
	}
}

func init() {
	for _, m := range []Mode{ModeCampaign, ModePractice, ModeEndless} {
		registry.Register(registry.GameInfo{
			ID:          m.ID(),
			Title:       m.Title(),
			Description: m.Description(),
		}, func() registry.Game { return New(m) })
	}
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModePractice:
		return "MoonHop (Practice)"
	case ModeEndless:
		return "MoonHop (Endless)"
	default:
		return "MoonHop"
	}
}

// Description returns a one-line summary of the mode.
func (m Mode) Description() string {
	switch m {
	case ModePractice:
		return "Replay a single stage with unlimited lives"
	case ModeEndless:
		return "Climb forever; stages get harder past the table"
	default:
		return "Climb every stage to the moon before the water catches you"
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.mode.ID()
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.dt = 1.0 / float64(g.tickRate)

	g.startStage = max(rc.StartStage, 1)
	if g.mode == ModeCampaign {
		g.startStage = min(g.startStage, len(g.cfg.Stages))
	}

	g.tick = 0
	g.now = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.stageCount = 0
	g.lives = g.cfg.Session.Lives
	if g.mode == ModePractice {
		g.lives = -1
	}
	if g.recorder != nil {
		g.StartRecording()
	}

	g.loadStage(g.startStage)
}

// loadStage generates stage n and puts a fresh actor on its ground.
func (g *Game) loadStage(n int) {
	g.stageNum = n
	g.stageCount++
	g.stage = g.gen.Generate(g.difficulty.StageConfig(g.cfg.Stages, n), n)
	g.w = world.NewWorld(g.stage)
}

// respawn restarts the current stage after a death. Eels already collected
// stay collected.
func (g *Game) respawn() {
	collected := make([]bool, len(g.w.Eels))
	for i, e := range g.w.Eels {
		collected[i] = e.Collected
	}

	g.w = world.NewWorld(g.stage)
	for i := range g.w.Eels {
		g.w.Eels[i].Collected = collected[i]
	}
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{TickRate: g.tickRate, StartStage: g.startStage})
		return g.result(nil)
	}
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return g.result(nil)
	}
	return g.result(g.advance(IntentFromInput(in)))
}

// advance runs one simulation tick under intent. It is the only path that
// moves the simulation, so replaying the recorded intents reproduces a run.
func (g *Game) advance(in world.Intent) []core.Event {
	if g.recorder != nil {
		g.recorder.record(in)
	}
	g.tick++
	g.now += g.dt

	ev := g.engine.Step(g.w, in, world.Clock{Now: g.now, Delta: g.dt})

	var events []core.Event
	if ev.EelsCollected > 0 {
		g.score += ev.ScoreDelta
		events = append(events, core.Event{Kind: core.EventEelCollected, Stage: g.stageNum, Points: ev.ScoreDelta})
	}
	if ev.Cleared {
		points := g.w.Score.Score(g.w.ClearTime)
		g.score += points
		g.clearedAt = g.now
		g.clearPoints = points
		events = append(events, core.Event{Kind: core.EventStageCleared, Stage: g.stageNum, Points: points, Time: g.w.ClearTime})
	}
	if ev.Died {
		if g.lives > 0 {
			g.lives--
		}
		events = append(events, core.Event{Kind: core.EventActorDied, Stage: g.stageNum, LivesLeft: g.lives})
		if g.lives == 0 {
			g.gameOver = true
			events = append(events, core.Event{Kind: core.EventGameOver, Stage: g.stageNum, Points: g.score})
		}
	}

	switch {
	case g.gameOver:
	case g.w.Cleared && g.now-g.clearedAt >= g.cfg.Session.ClearDelay:
		events = append(events, g.nextStage()...)
	case !g.w.Actor.Alive() && g.now-g.w.Actor.DeadTime >= g.cfg.Session.RespawnDelay:
		g.respawn()
	}
	return events
}

// nextStage moves on after a clear. Campaign runs end after the last table
// stage; practice replays the same stage.
func (g *Game) nextStage() []core.Event {
	switch g.mode {
	case ModePractice:
		g.loadStage(g.stageNum)
	case ModeCampaign:
		if g.stageNum >= len(g.cfg.Stages) {
			g.won = true
			g.gameOver = true
			return []core.Event{{Kind: core.EventGameOver, Stage: g.stageNum, Points: g.score}}
		}
		g.loadStage(g.stageNum + 1)
	default:
		g.loadStage(g.stageNum + 1)
	}
	return nil
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Stage:    g.stageNum,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Won reports whether a campaign run cleared every stage.
func (g *Game) Won() bool {
	return g.won
}

// Elapsed returns the simulated seconds since Reset.
func (g *Game) Elapsed() float64 {
	return g.now
}

// StagesPlayed returns how many stages the run has entered.
func (g *Game) StagesPlayed() int {
	return g.stageCount
}

// World returns the live world. Callers must treat it as read-only.
func (g *Game) World() *world.World {
	return g.w
}

// IntentFromInput converts platform actions to a physics intent.
func IntentFromInput(in core.InputFrame) world.Intent {
	var it world.Intent
	if in.Has(core.ActionLeft) {
		it.Dir.X--
	}
	if in.Has(core.ActionRight) {
		it.Dir.X++
	}
	if in.Has(core.ActionUp) {
		it.Dir.Y = -1
	}
	it.Jump = in.Has(core.ActionJump)
	return it
}
