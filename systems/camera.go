package systems

import (
	"errors"
	"log"
	"math"

	"github.com/automoto/healthbars/components"
	"github.com/automoto/healthbars/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var (
	ErrNoCamera        = errors.New("no camera carries the marker tag")
	ErrMultipleCameras = errors.New("more than one camera carries the marker tag")
)

// FindCamera returns the camera entity carrying tag. With several matches it
// returns the first one together with ErrMultipleCameras.
func FindCamera(w donburi.World, tag donburi.IComponentType) (*donburi.Entry, error) {
	query := donburi.NewQuery(filter.Contains(tag, components.Camera))

	var first *donburi.Entry
	count := 0
	query.Each(w, func(entry *donburi.Entry) {
		if first == nil {
			first = entry
		}
		count++
	})

	switch {
	case count == 0:
		return nil, ErrNoCamera
	case count > 1:
		return first, ErrMultipleCameras
	}
	return first, nil
}

// WorldToScreen projects a world point through cam. ok is false when the
// point lands outside the camera's viewport.
func WorldToScreen(cam components.CameraData, world dmath.Vec2) (dmath.Vec2, bool) {
	zoom := zoomOrOne(cam.Zoom)

	dx := world.X - cam.Position.X
	dy := world.Y - cam.Position.Y
	if cam.Rotation != 0 {
		sin, cos := math.Sincos(-cam.Rotation)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}

	vp := cam.Viewport
	x := float64(vp.Min.X) + float64(vp.Dx())/2 + dx*zoom
	y := float64(vp.Min.Y) + float64(vp.Dy())/2 + dy*zoom

	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return dmath.Vec2{}, false
	}
	if x < float64(vp.Min.X) || x >= float64(vp.Max.X) || y < float64(vp.Min.Y) || y >= float64(vp.Max.Y) {
		return dmath.Vec2{}, false
	}
	return dmath.NewVec2(x, y), true
}

// ProjectToScreen projects a world point through the camera carrying tag.
// It never fails: without a usable camera, or when the point is off-screen,
// it returns the origin and false.
func ProjectToScreen(w donburi.World, tag donburi.IComponentType, world dmath.Vec2) (dmath.Vec2, bool) {
	entry, _ := FindCamera(w, tag)
	return projectThrough(cameraOf(entry), world)
}

// cameraOf copies the camera out of entry, nil without one.
func cameraOf(entry *donburi.Entry) *components.CameraData {
	if entry == nil {
		return nil
	}
	cam := components.Camera.GetValue(entry)
	return &cam
}

func projectThrough(cam *components.CameraData, world dmath.Vec2) (dmath.Vec2, bool) {
	if cam == nil {
		return dmath.Vec2{}, false
	}
	return WorldToScreen(*cam, world)
}

// barCamera looks up the camera for one pass over the bars. Each distinct
// problem is logged once per world; state remembers the last one.
func barCamera(w donburi.World, tag donburi.IComponentType, state *components.HealthBarResourceData) *components.CameraData {
	entry, err := FindCamera(w, tag)
	if err != state.CameraProblem {
		state.CameraProblem = err
		switch {
		case errors.Is(err, ErrNoCamera):
			log.Printf("Warning: health bars: %v, labels fall back to the origin", err)
		case errors.Is(err, ErrMultipleCameras):
			log.Printf("Warning: health bars: %v, using the first one", err)
		}
	}
	return cameraOf(entry)
}

// UpdateCamera pans the demo camera with the arrow keys and zooms with the
// mouse wheel.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	speed := config.Camera.PanSpeed / zoomOrOne(camera.Zoom)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		camera.Position.X -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		camera.Position.X += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		camera.Position.Y -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		camera.Position.Y += speed
	}

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		camera.Zoom = clampZoom(zoomOrOne(camera.Zoom) + wheel*config.Camera.ZoomStep)
	}
}

func zoomOrOne(z float64) float64 {
	if z == 0 {
		return 1
	}
	return z
}

func clampZoom(z float64) float64 {
	return math.Max(config.Camera.MinZoom, math.Min(config.Camera.MaxZoom, z))
}

// ScreenToWorld is the inverse of WorldToScreen, ignoring the viewport bounds.
func ScreenToWorld(cam components.CameraData, screen dmath.Vec2) dmath.Vec2 {
	zoom := zoomOrOne(cam.Zoom)
	vp := cam.Viewport
	dx := (screen.X - float64(vp.Min.X) - float64(vp.Dx())/2) / zoom
	dy := (screen.Y - float64(vp.Min.Y) - float64(vp.Dy())/2) / zoom
	if cam.Rotation != 0 {
		sin, cos := math.Sincos(cam.Rotation)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	return dmath.NewVec2(cam.Position.X+dx, cam.Position.Y+dy)
}
