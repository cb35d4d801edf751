package world

import "math"

// StageConfig is the per-stage tuning fed to the generator.
type StageConfig struct {
	PlatformCount    int     `yaml:"platform_count" json:"platform_count"`
	GapMin           float64 `yaml:"gap_min" json:"gap_min"`
	GapMax           float64 `yaml:"gap_max" json:"gap_max"`
	BlockCountMin    int     `yaml:"block_count_min" json:"block_count_min"`
	BlockCountMax    int     `yaml:"block_count_max" json:"block_count_max"`
	NormalRatio      float64 `yaml:"normal_ratio" json:"normal_ratio"`
	IceRatio         float64 `yaml:"ice_ratio" json:"ice_ratio"`
	CaterpillarRatio float64 `yaml:"caterpillar_ratio" json:"caterpillar_ratio"`
	MovingRatio      float64 `yaml:"moving_ratio,omitempty" json:"moving_ratio,omitempty"`
	FirstPlatformGap float64 `yaml:"first_platform_gap" json:"first_platform_gap"`
	WaterSpeed       float64 `yaml:"water_speed" json:"water_speed"`
	EelCount         int     `yaml:"eel_count" json:"eel_count"`
}

// Scoring holds the constants of the stage-clear score formula.
type Scoring struct {
	BaseScore           int     `yaml:"base_score" json:"base_score" msgpack:"b"`
	BaseTime            float64 `yaml:"base_time" json:"base_time" msgpack:"t"`
	TimeBonusMultiplier float64 `yaml:"time_bonus_multiplier" json:"time_bonus_multiplier" msgpack:"m"`
}

// DefaultScoring returns the stock scoring constants.
func DefaultScoring() Scoring {
	return Scoring{BaseScore: 100, BaseTime: 60, TimeBonusMultiplier: 10}
}

// ScoreRule is the score function of one stage: Scoring bound to a stage number.
type ScoreRule struct {
	Scoring     `yaml:",inline" msgpack:",inline"`
	StageNumber int `json:"stage_number" yaml:"stage_number" msgpack:"n"`
}

// Score returns the clear score for a clear time in seconds:
// floor((base + max(0, (baseTime-clearTime)*multiplier)) * (1 + (stage-1)*0.5)).
func (r ScoreRule) Score(clearTime float64) int {
	bonus := math.Max(0, (r.BaseTime-clearTime)*r.TimeBonusMultiplier)
	stageFactor := 1 + float64(r.StageNumber-1)*0.5
	return int(math.Floor((float64(r.BaseScore) + bonus) * stageFactor))
}

// Stage is the generator output for one stage number.
type Stage struct {
	Number    int        `json:"number" yaml:"number"`
	Platforms []Platform `json:"platforms" yaml:"platforms"`
	Moon      Moon       `json:"moon" yaml:"moon"`
	Eels      []Eel      `json:"eels" yaml:"eels"`
	Water     Water      `json:"water" yaml:"water"`
	Stars     []Star     `json:"stars" yaml:"stars"`
	Score     ScoreRule  `json:"score" yaml:"score"`
}

// Intent is the per-tick input from the input layer.
type Intent struct {
	Dir  Direction `json:"dir" msgpack:"d"`
	Jump bool      `json:"jump" msgpack:"j"` // level signal: true while charging is wanted
}

// Direction is the held direction; X in {-1,0,1}, Y in {-1,0} (-1 = up).
type Direction struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Clock carries the monotonic simulation time and the tick delta, in seconds.
type Clock struct {
	Now   float64
	Delta float64
}

// Events are the edge-triggered outcomes of one physics tick.
type Events struct {
	Launched      bool
	Landed        bool
	Died          bool
	Cleared       bool
	EelsCollected int
	ScoreDelta    int
}

// World is the mutable snapshot a physics tick operates on.
type World struct {
	Stage     int        `json:"stage" msgpack:"n"`
	Platforms []Platform `json:"platforms" msgpack:"p"`
	Moon      Moon       `json:"moon" msgpack:"m"`
	Eels      []Eel      `json:"eels" msgpack:"e"`
	Water     Water      `json:"water" msgpack:"w"`
	Stars     []Star     `json:"stars" msgpack:"s"`
	Actor     Actor      `json:"actor" msgpack:"a"`
	Camera    Camera     `json:"camera" msgpack:"c"`
	Score     ScoreRule  `json:"score_rule" msgpack:"r"`
	Cleared   bool       `json:"cleared" msgpack:"cl"`
	ClearTime float64    `json:"clear_time" msgpack:"ct"`
	Elapsed   float64    `json:"elapsed" msgpack:"el"`
}

// NewWorld builds a playable world from a generated stage. The stage slices
// are copied so the world can be mutated while the stage is kept for resets.
func NewWorld(s Stage) *World {
	w := &World{
		Stage:     s.Number,
		Platforms: append([]Platform(nil), s.Platforms...),
		Moon:      s.Moon,
		Eels:      append([]Eel(nil), s.Eels...),
		Water:     s.Water,
		Stars:     s.Stars,
		Score:     s.Score,
	}
	w.Actor = SpawnActor(w.Platforms[0])
	return w
}

// Ground returns the ground platform.
func (w *World) Ground() Platform {
	return w.Platforms[0]
}
