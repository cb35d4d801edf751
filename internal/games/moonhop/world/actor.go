package world

// ActorState is the player's discrete state.
type ActorState uint8

const (
	StateGrounded ActorState = iota
	StateCharging
	StateAirborne
	StateDead
)

// String returns a human-readable state name.
func (s ActorState) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateCharging:
		return "charging"
	case StateAirborne:
		return "airborne"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// OnSurface reports whether the state keeps the actor attached to a platform.
func (s ActorState) OnSurface() bool {
	return s == StateGrounded || s == StateCharging
}

// NoSupport marks an actor that is not standing on any platform.
const NoSupport = -1

// Actor is the player creature. X is the horizontal center, Y the feet.
type Actor struct {
	X           float64    `json:"x" msgpack:"x"`
	Y           float64    `json:"y" msgpack:"y"`
	VX          float64    `json:"vx" msgpack:"vx"`
	VY          float64    `json:"vy" msgpack:"vy"`
	Facing      int        `json:"facing" msgpack:"f"`
	State       ActorState `json:"state" msgpack:"s"`
	ChargeRatio float64    `json:"charge_ratio" msgpack:"c"`
	ChargeStart float64    `json:"charge_start" msgpack:"cs"`
	DeadTime    float64    `json:"dead_time" msgpack:"d"`
	Support     int        `json:"support" msgpack:"p"` // platform index under the actor, or NoSupport
}

// SpawnActor places a fresh actor standing in the middle of the ground.
func SpawnActor(ground Platform) Actor {
	return Actor{
		X:       ground.Center(),
		Y:       ground.Y,
		Facing:  1,
		State:   StateGrounded,
		Support: 0,
	}
}

// Box returns the actor's collision box for the given body size.
func (a Actor) Box(width, height float64) Box {
	return Box{X: a.X - width/2, Y: a.Y - height, W: width, H: height}
}

// Alive reports whether the actor can still act.
func (a Actor) Alive() bool {
	return a.State != StateDead
}
