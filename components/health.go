package components

import (
	"image/color"

	"github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// HealthProvider is implemented by any component that can be shown as a
// health label. Implement it with value receivers.
type HealthProvider interface {
	Current() uint32
	Max() uint32
}

// HealthData is a plain health component satisfying HealthProvider.
type HealthData struct {
	HP    uint32
	MaxHP uint32
}

func (h HealthData) Current() uint32 { return h.HP }
func (h HealthData) Max() uint32     { return h.MaxHP }

// HealthBarData styles the label drawn for a tracked entity.
type HealthBarData struct {
	Offset math.Vec2 // from the projected position, Y pointing up
	Size   float64   // font size in points
	Color  color.RGBA
}

// HealthBarAttachData lives on the label entity and points back at the
// entity it annotates. It does not own the target.
type HealthBarAttachData struct {
	Target donburi.Entity
}

// HealthBarLinkData lives on the tracked entity once its label exists.
type HealthBarLinkData struct {
	Bar donburi.Entity
}

// HealthBarResourceData is the plugin state of one world.
type HealthBarResourceData struct {
	Font          fonts.FontName
	CameraProblem error // last camera lookup problem logged
}

var (
	Health            = donburi.NewComponentType[HealthData]()
	HealthBar         = donburi.NewComponentType[HealthBarData](DefaultHealthBar())
	HealthBarAttach   = donburi.NewComponentType[HealthBarAttachData]()
	HealthBarLink     = donburi.NewComponentType[HealthBarLinkData]()
	HealthBarResource = donburi.NewComponentType[HealthBarResourceData]()
)

// DefaultHealthBar returns the styling used when a bar is attached
// automatically, taken from config.HealthBar.
func DefaultHealthBar() HealthBarData {
	d := config.HealthBar
	return HealthBarData{
		Offset: math.NewVec2(d.OffsetX, d.OffsetY),
		Size:   d.Size,
		Color:  d.Color,
	}
}
