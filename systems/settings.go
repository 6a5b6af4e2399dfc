package systems

import (
	"github.com/automoto/healthbars/components"
	cfg "github.com/automoto/healthbars/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the demo's settings keys and saves on change:
//
//	A    toggle automatic bar creation
//	L    toggle label drawing
//	F    toggle fullscreen
//	R    cycle window size
//	F3   toggle the debug overlay
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		settings.AutoCreate = !settings.AutoCreate
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		settings.ShowLabels = !settings.ShowLabels
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		settings.Fullscreen = !settings.Fullscreen
		applyWindowSettings(settings)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		applyWindowSettings(settings)
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.Debug = !settings.Debug
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			AutoCreate:      cfg.HealthBar.AutoCreate,
			ShowLabels:      true,
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}
