package components

import (
	"image/color"

	"github.com/automoto/healthbars/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// LabelData is the screen-space text drawn for a health bar entity.
type LabelData struct {
	Text     string
	Font     fonts.FontName
	Size     float64
	Color    color.RGBA
	Anchor   math.Vec2 // baseline-left corner in screen pixels
	OnScreen bool      // false when the target could not be projected
}

var Label = donburi.NewComponentType[LabelData]()
