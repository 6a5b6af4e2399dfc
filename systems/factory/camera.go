package factory

import (
	"image"

	"github.com/automoto/healthbars/archetypes"
	"github.com/automoto/healthbars/components"
	cfg "github.com/automoto/healthbars/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns a camera marked with tag, centred on (x, y) and
// covering the configured screen.
func CreateCamera(ecs *ecs.ECS, tag donburi.IComponentType, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs, tag)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(x, y),
		Zoom:     1,
		Viewport: image.Rect(0, 0, cfg.C.Width, cfg.C.Height),
	})
	return camera
}
