package systems

import (
	"image/color"

	"github.com/automoto/healthbars/components"
	"github.com/automoto/healthbars/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawDebug outlines every pick box in the space and marks each bar's
// anchor, so projection problems are visible.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, _ := FindCamera(ecs.World, tags.BarCamera)
	if cameraEntry == nil {
		return // No camera yet
	}
	camera := *components.Camera.Get(cameraEntry)
	zoom := zoomOrOne(camera.Zoom)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			centre, visible := WorldToScreen(camera, dmath.NewVec2(obj.X+obj.W/2, obj.Y+obj.H/2))
			if !visible {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCursor) {
				c = color.RGBA{255, 255, 0, 255}
			}

			w, h := obj.W*zoom, obj.H*zoom
			strokeRect(screen, centre.X-w/2, centre.Y-h/2, w, h, c)
		}
	}

	anchor := color.RGBA{255, 0, 255, 255}
	healthBarQuery.Each(ecs.World, func(e *donburi.Entry) {
		label := components.Label.Get(e)
		if !label.OnScreen {
			return
		}
		x, y := float32(label.Anchor.X), float32(label.Anchor.Y)
		vector.FillRect(screen, x-3, y, 7, 1, anchor, false)
		vector.FillRect(screen, x, y-3, 1, 7, anchor, false)
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
