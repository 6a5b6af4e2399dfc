package components

import "github.com/yohamta/donburi"

// SettingsData holds the demo's user settings
type SettingsData struct {
	AutoCreate      bool // attach bars to new mobs automatically
	ShowLabels      bool
	Fullscreen      bool
	ResolutionIndex int
	Debug           bool // pick box and anchor overlay, not saved
}

var Settings = donburi.NewComponentType[SettingsData]()
