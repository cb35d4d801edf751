package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW    int // screen width in cells
	ScreenH    int // screen height in cells
	TickRate   int // simulation ticks per second
	StartStage int // 0 or 1 starts from the first stage
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary a game reports to the platform.
type GameState struct {
	Score    int
	Stage    int
	Lives    int // negative means unlimited
	GameOver bool
	Paused   bool
}

// EventKind names a lifecycle event.
type EventKind string

const (
	EventStageCleared EventKind = "stage_cleared"
	EventActorDied    EventKind = "actor_died"
	EventGameOver     EventKind = "game_over"
	EventEelCollected EventKind = "eel_collected"
)

// Event is an edge-triggered lifecycle signal raised during a tick.
type Event struct {
	Kind      EventKind
	Stage     int
	LivesLeft int     // ActorDied only
	Points    int     // score awarded by this event
	Time      float64 // StageCleared only: clear time in seconds
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}
