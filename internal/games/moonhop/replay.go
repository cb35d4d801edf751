package moonhop

import (
	"fmt"
	"os"
	"slices"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/moonhop/internal/config"
	"github.com/vovakirdan/moonhop/internal/core"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

// ReplayVersion is bumped whenever recorded runs stop reproducing.
const ReplayVersion = 1

// Replay is a recorded run: everything needed to re-simulate it tick by
// tick. Only ticks that advanced the simulation are recorded, one packed
// intent byte each.
type Replay struct {
	Version    int           `msgpack:"v"`
	Mode       Mode          `msgpack:"m"`
	StartStage int           `msgpack:"s"`
	TickRate   int           `msgpack:"r"`
	Config     config.Config `msgpack:"c"`
	Intents    []byte        `msgpack:"i"`
	FinalScore int           `msgpack:"f"`
	FinalStage int           `msgpack:"fs"`
}

// Ticks returns the number of recorded ticks.
func (r *Replay) Ticks() int {
	return len(r.Intents)
}

// Duration returns the recorded simulated time in seconds.
func (r *Replay) Duration() float64 {
	if r.TickRate <= 0 {
		return 0
	}
	return float64(len(r.Intents)) / float64(r.TickRate)
}

func (r *Replay) record(in world.Intent) {
	r.Intents = append(r.Intents, packIntent(in))
}

// StartRecording begins recording the run from its current start. Call it
// after Reset; a later Reset restarts the recording.
func (g *Game) StartRecording() {
	g.recorder = &Replay{
		Version:    ReplayVersion,
		Mode:       g.mode,
		StartStage: g.startStage,
		TickRate:   g.tickRate,
		Config:     g.cfg,
	}
}

// Recording returns a copy of the recording so far, or nil when the game is
// not recording.
func (g *Game) Recording() *Replay {
	if g.recorder == nil {
		return nil
	}
	r := *g.recorder
	r.Intents = slices.Clone(g.recorder.Intents)
	r.FinalScore = g.score
	r.FinalStage = g.stageNum
	return &r
}

// Play re-simulates the replay headlessly and returns the final snapshot.
func (r *Replay) Play() (Snapshot, error) {
	if r.Version != ReplayVersion {
		return Snapshot{}, fmt.Errorf("replay: version %d not supported (want %d)", r.Version, ReplayVersion)
	}
	if err := r.Config.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("replay: %w", err)
	}

	g := NewWithConfig(r.Mode, r.Config)
	g.Reset(core.RuntimeConfig{TickRate: r.TickRate, StartStage: r.StartStage})
	for _, b := range r.Intents {
		if g.gameOver {
			break
		}
		g.advance(unpackIntent(b))
	}
	return g.Snapshot(), nil
}

// MarshalReplay encodes a replay with msgpack.
func MarshalReplay(r *Replay) ([]byte, error) {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: failed to encode: %w", err)
	}
	return data, nil
}

// UnmarshalReplay decodes a replay produced by MarshalReplay.
func UnmarshalReplay(data []byte) (*Replay, error) {
	var r Replay
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: failed to decode: %w", err)
	}
	return &r, nil
}

// SaveReplay writes a replay file.
func SaveReplay(path string, r *Replay) error {
	data, err := MarshalReplay(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("replay: failed to write %s: %w", path, err)
	}
	return nil
}

// LoadReplay reads a replay file.
func LoadReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	return UnmarshalReplay(data)
}

// Intent byte layout: bit 0 left, bit 1 right, bit 2 up, bit 3 jump.
const (
	bitLeft byte = 1 << iota
	bitRight
	bitUp
	bitJump
)

func packIntent(in world.Intent) byte {
	var b byte
	switch {
	case in.Dir.X < 0:
		b |= bitLeft
	case in.Dir.X > 0:
		b |= bitRight
	}
	if in.Dir.Y < 0 {
		b |= bitUp
	}
	if in.Jump {
		b |= bitJump
	}
	return b
}

func unpackIntent(b byte) world.Intent {
	var in world.Intent
	if b&bitLeft != 0 {
		in.Dir.X = -1
	}
	if b&bitRight != 0 {
		in.Dir.X = 1
	}
	if b&bitUp != 0 {
		in.Dir.Y = -1
	}
	in.Jump = b&bitJump != 0
	return in
}
