package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Labels
	HUD
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// HealthBarConfig contains the health bar plugin settings and the styling
// applied to bars that are attached automatically.
type HealthBarConfig struct {
	FontPath   string // TTF file for labels, empty for the built-in Go font
	AutoCreate bool   // attach a default bar to every entity with health

	// Default bar styling
	OffsetX float64
	OffsetY float64
	Size    float64 // points
	Color   color.RGBA
}

// CameraConfig contains demo camera behaviour
type CameraConfig struct {
	PanSpeed float64 // pixels per frame while an arrow key is held
	ZoomStep float64 // zoom change per wheel notch
	MinZoom  float64
	MaxZoom  float64
}

// MobConfig contains demo creature tuning
type MobConfig struct {
	Width          float64 // pick box size
	Height         float64
	DriftDistance  float64 // pixels travelled either way by the drift tween
	DriftDuration  float32 // seconds per leg
	ClickDamage    uint32
	RegenFrames    int // frames between regenerated points
	DefaultMax     uint32
	BodyColor      color.RGBA
	HighlightColor color.RGBA
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	PanelColor color.RGBA
	TextColor  color.RGBA
	FontSize   float64
	Padding    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipPersistence bool // don't read or write saved settings
}

// Global configuration instances
var C *Config
var HealthBar HealthBarConfig
var Camera CameraConfig
var Mob MobConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	HealthBar = HealthBarConfig{
		FontPath:   "",
		AutoCreate: true,
		OffsetX:    0,
		OffsetY:    0,
		Size:       10,
		Color:      Red,
	}

	Camera = CameraConfig{
		PanSpeed: 4.0,
		ZoomStep: 0.1,
		MinZoom:  0.5,
		MaxZoom:  3.0,
	}

	Mob = MobConfig{
		Width:          24,
		Height:         24,
		DriftDistance:  32,
		DriftDuration:  2,
		ClickDamage:    1,
		RegenFrames:    120, // 2s at 60fps
		DefaultMax:     6,
		BodyColor:      Blue,
		HighlightColor: LightBlue,
	}

	UI = UIConfig{
		PanelColor: BlackOverlay,
		TextColor:  White,
		FontSize:   12,
		Padding:    6,
	}
}
