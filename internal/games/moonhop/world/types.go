// Package world defines the plain data shared by the stage generator, the
// physics engine and the renderers. Nothing in here carries behaviour beyond
// small geometric helpers; every type serializes as-is.
package world

import "fmt"

// PlatformType is the closed set of platform behaviours.
type PlatformType uint8

const (
	PlatformNormal PlatformType = iota
	PlatformIce
	PlatformCaterpillar
	PlatformMoving
)

// String returns the lowercase name used in configs and dumps.
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformIce:
		return "ice"
	case PlatformCaterpillar:
		return "caterpillar"
	case PlatformMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Platform is a horizontal run of blocks. Index 0 of a stage is always the
// ground. Caterpillar fields are only meaningful for PlatformCaterpillar,
// Move fields only for PlatformMoving.
type Platform struct {
	X      float64      `json:"x" yaml:"x" msgpack:"x"`
	Y      float64      `json:"y" yaml:"y" msgpack:"y"` // top surface
	Width  float64      `json:"width" yaml:"width" msgpack:"w"`
	Blocks int          `json:"blocks" yaml:"blocks" msgpack:"b"`
	Type   PlatformType `json:"type" yaml:"type" msgpack:"t"`

	CaterpillarDirection int     `json:"caterpillar_direction,omitempty" yaml:"caterpillar_direction,omitempty" msgpack:"cd"`
	CaterpillarOffset    float64 `json:"caterpillar_offset,omitempty" yaml:"caterpillar_offset,omitempty" msgpack:"co"`

	MoveDirection int     `json:"move_direction,omitempty" yaml:"move_direction,omitempty" msgpack:"md"`
	MinX          float64 `json:"min_x,omitempty" yaml:"min_x,omitempty" msgpack:"mn"`
	MaxX          float64 `json:"max_x,omitempty" yaml:"max_x,omitempty" msgpack:"mx"`
}

// Center returns the horizontal center of the platform.
func (p Platform) Center() float64 {
	return p.X + p.Width/2
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.Width
}

// Moon is the stage goal marker.
type Moon struct {
	X    float64 `json:"x" yaml:"x" msgpack:"x"` // left edge
	Y    float64 `json:"y" yaml:"y" msgpack:"y"` // top edge
	Size float64 `json:"size" yaml:"size" msgpack:"s"`
}

// Box returns the moon's bounding box.
func (m Moon) Box() Box {
	return Box{X: m.X, Y: m.Y, W: m.Size, H: m.Size}
}

// Eel is a one-shot contact entity floating near a platform.
type Eel struct {
	X         float64 `json:"x" yaml:"x" msgpack:"x"`
	Y         float64 `json:"y" yaml:"y" msgpack:"y"`
	Width     float64 `json:"width" yaml:"width" msgpack:"w"`
	Height    float64 `json:"height" yaml:"height" msgpack:"h"`
	Rotation  float64 `json:"rotation" yaml:"rotation" msgpack:"r"` // radians, presentation only
	Collected bool    `json:"collected" yaml:"collected" msgpack:"c"`
}

// Box returns the eel's bounding box.
func (e Eel) Box() Box {
	return Box{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Water is the rising hazard. Y is the surface; everything at or below it drowns.
type Water struct {
	Y          float64 `json:"y" yaml:"y" msgpack:"y"`
	Speed      float64 `json:"speed" yaml:"speed" msgpack:"s"`
	Rising     bool    `json:"rising" yaml:"rising" msgpack:"r"`
	WaveOffset float64 `json:"wave_offset" yaml:"wave_offset" msgpack:"o"`
}

// Star is background decoration.
type Star struct {
	X    float64 `json:"x" yaml:"x" msgpack:"x"`
	Y    float64 `json:"y" yaml:"y" msgpack:"y"`
	Size float64 `json:"size" yaml:"size" msgpack:"s"`
	Kind int     `json:"kind" yaml:"kind" msgpack:"k"`
}

// Camera is the top of the visible window in world y.
type Camera struct {
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share interior area.
func (b Box) Overlaps(o Box) bool {
	if b.X >= o.X+o.W || o.X >= b.X+b.W {
		return false
	}
	if b.Y >= o.Y+o.H || o.Y >= b.Y+b.H {
		return false
	}
	return true
}

// MarshalText encodes the type by name.
func (t PlatformType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name produced by MarshalText.
func (t *PlatformType) UnmarshalText(text []byte) error {
	pt, ok := ParsePlatformType(string(text))
	if !ok {
		return fmt.Errorf("world: unknown platform type %q", text)
	}
	*t = pt
	return nil
}

// ParsePlatformType converts a platform type name to its value.
func ParsePlatformType(s string) (PlatformType, bool) {
	switch s {
	case "normal":
		return PlatformNormal, true
	case "ice":
		return PlatformIce, true
	case "caterpillar":
		return PlatformCaterpillar, true
	case "moving":
		return PlatformMoving, true
	default:
		return PlatformNormal, false
	}
}
