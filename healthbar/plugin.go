// Package healthbar draws "current/max" health labels above donburi entities.
//
// A Plugin is generic over the game's health component and is told which
// camera to project through by a marker tag:
//
//	plugin := healthbar.New(components.Health, tags.BarCamera, "fonts/ui.ttf")
//	if err := plugin.Build(world); err != nil {
//		log.Fatal(err)
//	}
//
// Each frame the plugin attaches default bar configurations (unless
// automatic creation is off), spawns a label entity for newly configured
// entities, re-projects and re-labels existing bars, and removes bars whose
// target went away.
package healthbar

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/healthbars/components"
	"github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/fonts"
	"github.com/automoto/healthbars/systems"
	"github.com/automoto/healthbars/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Plugin[H components.HealthProvider] struct {
	health    *donburi.ComponentType[H]
	cameraTag donburi.IComponentType

	fontPath string
	fontData []byte
	fsys     fs.FS
	font     fonts.FontName

	autoCreate bool
	visible    bool

	attach ecs.System
	passes []ecs.System
}

// New returns a plugin with automatic bar creation on. fontPath is read from
// the OS file system unless WithFS is used.
func New[H components.HealthProvider](health *donburi.ComponentType[H], cameraTag donburi.IComponentType, fontPath string) *Plugin[H] {
	return &Plugin[H]{
		health:     health,
		cameraTag:  cameraTag,
		fontPath:   fontPath,
		font:       fonts.HealthBar,
		autoCreate: true,
		visible:    true,
	}
}

// AutomaticBarCreation toggles attaching a default bar to every entity with
// health. It may be called before or after Build.
func (p *Plugin[H]) AutomaticBarCreation(enabled bool) *Plugin[H] {
	p.autoCreate = enabled
	return p
}

// WithFS resolves the font path inside fsys.
func (p *Plugin[H]) WithFS(fsys fs.FS) *Plugin[H] {
	p.fsys = fsys
	return p
}

// WithFontData uses ttf instead of reading the font path.
func (p *Plugin[H]) WithFontData(ttf []byte) *Plugin[H] {
	p.fontData = ttf
	return p
}

func (p *Plugin[H]) AutoCreate() bool { return p.autoCreate }

// SetVisible hides or shows every label without affecting bookkeeping.
func (p *Plugin[H]) SetVisible(visible bool) { p.visible = visible }

func (p *Plugin[H]) Visible() bool { return p.visible }

// Build loads the font, stores the shared resource and registers the
// per-frame passes and the label renderer on e.
func (p *Plugin[H]) Build(e *ecs.ECS) error {
	if err := p.loadFont(); err != nil {
		return err
	}
	factory.CreateHealthBarResource(e, components.HealthBarResourceData{Font: p.font})

	for _, pass := range p.pipeline() {
		e.AddSystem(pass)
	}
	e.AddRenderer(config.Labels, p.Draw)
	return nil
}

// Update runs one frame of the pipeline directly, for hosts that drive their
// own loop instead of registering the plugin with Build.
func (p *Plugin[H]) Update(e *ecs.ECS) {
	for _, pass := range p.pipeline() {
		pass(e)
	}
}

func (p *Plugin[H]) Draw(e *ecs.ECS, screen *ebiten.Image) {
	if !p.visible {
		return
	}
	systems.DrawHealthBars(e, screen)
}

// pipeline returns attach → spawn → update → reap, then event delivery.
func (p *Plugin[H]) pipeline() []ecs.System {
	if p.passes != nil {
		return p.passes
	}
	p.attach = systems.AttachHealthBars(p.health)
	p.passes = []ecs.System{
		p.attachIfEnabled,
		systems.SpawnHealthBars(p.health, p.cameraTag),
		systems.UpdateHealthBars(p.health, p.cameraTag),
		systems.ReapHealthBars(p.health),
		systems.ProcessHealthBarEvents,
	}
	return p.passes
}

func (p *Plugin[H]) attachIfEnabled(e *ecs.ECS) {
	if p.autoCreate {
		p.attach(e)
	}
}

func (p *Plugin[H]) loadFont() error {
	switch {
	case p.fontData != nil:
		return fonts.Load(p.font, p.fontData)
	case p.fsys != nil:
		return fonts.LoadFile(p.fsys, p.font, p.fontPath)
	}
	ttf, err := os.ReadFile(p.fontPath)
	if err != nil {
		return fmt.Errorf("read font %s: %w", p.fontPath, err)
	}
	return fonts.Load(p.font, ttf)
}
