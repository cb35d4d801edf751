package world

// Canvas and layout constants. World units are pixels of a 360x640 portrait
// canvas; y grows downward so the stage climbs into negative y.
const (
	CanvasWidth  = 360.0
	CanvasHeight = 640.0
	BlockSize    = 20.0
	GroundY      = 600.0 // top surface of the ground platform
	EdgeMargin   = 10.0  // floating platforms keep this far from the canvas edges
)

// Generator constants.
const (
	MaxJumpRange    = 150.0 // max horizontal distance between consecutive platform centers
	SampleWindow    = 150.0 // half-width of the x sampling window around the previous center
	MoonOffset      = 90.0  // moon sits this far above the highest platform
	MoonSize        = 40.0
	EelWidth        = 30.0
	EelHeight       = 14.0
	EelLift         = 36.0 // eels float this far above their anchor platform
	EelSideOffset   = 24.0
	StarsPerScreen  = 18 // star density per CanvasHeight of world
	StarMinSize     = 1.0
	StarMaxSize     = 3.0
	StarKinds       = 3
	WaterStartDepth = 120.0 // water starts this far below the canvas bottom
	MoveTravel      = 40.0  // moving platforms sweep +-MoveTravel around their origin
)

// Tuning holds the physics parameters of the actor and dynamic entities.
// All rates are per second; Step scales them by the tick delta.
type Tuning struct {
	Gravity         float64 `yaml:"gravity" json:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed" json:"max_fall_speed"`
	MinJumpSpeed    float64 `yaml:"min_jump_speed" json:"min_jump_speed"`
	MaxJumpSpeed    float64 `yaml:"max_jump_speed" json:"max_jump_speed"`
	JumpDrift       float64 `yaml:"jump_drift" json:"jump_drift"`
	UpwardDriftBias float64 `yaml:"upward_drift_bias" json:"upward_drift_bias"`
	ChargeTime      float64 `yaml:"charge_time" json:"charge_time"`
	WalkSpeed       float64 `yaml:"walk_speed" json:"walk_speed"`
	NormalFriction  float64 `yaml:"normal_friction" json:"normal_friction"`
	IceFriction     float64 `yaml:"ice_friction" json:"ice_friction"`
	CaterpillarRate float64 `yaml:"caterpillar_rate" json:"caterpillar_rate"`
	CaterpillarSpan float64 `yaml:"caterpillar_span" json:"caterpillar_span"`
	MovingRate      float64 `yaml:"moving_rate" json:"moving_rate"`
	WaveRate        float64 `yaml:"wave_rate" json:"wave_rate"`
	CameraAnchor    float64 `yaml:"camera_anchor" json:"camera_anchor"` // fraction of the canvas above the actor
	ActorWidth      float64 `yaml:"actor_width" json:"actor_width"`
	ActorHeight     float64 `yaml:"actor_height" json:"actor_height"`
	EelBonus        int     `yaml:"eel_bonus" json:"eel_bonus"`
}

// DefaultTuning returns the tuning the stage generator's reachability
// constants were chosen against.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         1500,
		MaxFallSpeed:    900,
		MinJumpSpeed:    380,
		MaxJumpSpeed:    820,
		JumpDrift:       170,
		UpwardDriftBias: 0.5,
		ChargeTime:      0.8,
		WalkSpeed:       110,
		NormalFriction:  14,
		IceFriction:     1.2,
		CaterpillarRate: 45,
		CaterpillarSpan: 40,
		MovingRate:      50,
		WaveRate:        2.5,
		CameraAnchor:    0.6,
		ActorWidth:      18,
		ActorHeight:     18,
		EelBonus:        50,
	}
}
