package components

import (
	"image"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2       // world point shown at the viewport centre
	Zoom     float64         // world-to-screen scale, 0 is treated as 1
	Rotation float64         // radians, counter-clockwise
	Viewport image.Rectangle // screen-space area the camera draws into
}

var Camera = donburi.NewComponentType[CameraData]()
