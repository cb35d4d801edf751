package moonhop

import (
	"slices"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// Status is the coarse state of a run.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusDead     Status = "dead"
	StatusCleared  Status = "cleared"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
	StatusWon      Status = "won"
)

// Snapshot is a read-only copy of everything a renderer or test needs. It
// shares no memory with the live game.
type Snapshot struct {
	Tick      uint64           `json:"tick" msgpack:"tick"`
	Mode      Mode             `json:"mode" msgpack:"mode"`
	Status    Status           `json:"status" msgpack:"status"`
	Stage     int              `json:"stage" msgpack:"stage"`
	Score     int              `json:"score" msgpack:"score"`
	Lives     int              `json:"lives" msgpack:"lives"`
	Elapsed   float64          `json:"elapsed" msgpack:"elapsed"`       // run time
	StageTime float64          `json:"stage_time" msgpack:"stage_time"` // time on the current attempt
	Platforms []world.Platform `json:"platforms" msgpack:"platforms"`
	Moon      world.Moon       `json:"moon" msgpack:"moon"`
	Eels      []world.Eel      `json:"eels" msgpack:"eels"`
	Water     world.Water      `json:"water" msgpack:"water"`
	Stars     []world.Star     `json:"stars" msgpack:"stars"`
	Actor     world.Actor      `json:"actor" msgpack:"actor"`
	Camera    world.Camera     `json:"camera" msgpack:"camera"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Status:    g.status(),
		Stage:     g.stageNum,
		Score:     g.score,
		Lives:     g.lives,
		Elapsed:   g.now,
		StageTime: g.w.Elapsed,
		Platforms: slices.Clone(g.w.Platforms),
		Moon:      g.w.Moon,
		Eels:      slices.Clone(g.w.Eels),
		Water:     g.w.Water,
		Stars:     slices.Clone(g.w.Stars),
		Actor:     g.w.Actor,
		Camera:    g.w.Camera,
	}
}

func (g *Game) status() Status {
	switch {
	case g.won:
		return StatusWon
	case g.gameOver:
		return StatusGameOver
	case g.paused:
		return StatusPaused
	case g.w.Cleared:
		return StatusCleared
	case !g.w.Actor.Alive():
		return StatusDead
	default:
		return StatusPlaying
	}
}
