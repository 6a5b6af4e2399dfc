package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/healthbars/assets"
	"github.com/automoto/healthbars/components"
	cfg "github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/healthbar"
	"github.com/automoto/healthbars/systems"
	"github.com/automoto/healthbars/systems/factory"
	"github.com/automoto/healthbars/tags"
	"github.com/automoto/healthbars/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	mobQuery = donburi.NewQuery(filter.Contains(tags.Mob))
	barQuery = donburi.NewQuery(filter.Contains(tags.HealthBarLabel))
)

// DemoOptions configures the demo scene
type DemoOptions struct {
	LevelPath string // embedded TMX level
	FontPath  string // empty uses config.HealthBar.FontPath
	Saved     *systems.SavedSettings
	Reloads   <-chan *cfg.File // hot-reloaded config files, may be nil
}

// DemoScene shows mobs from a Tiled level with health labels above them
type DemoScene struct {
	ecs     *ecs.ECS
	plugin  *healthbar.Plugin[components.HealthData]
	hud     *ui.HudUI
	opts    DemoOptions
	once    sync.Once
	err     error
	spawned int
	reaped  int
}

func NewDemoScene(opts DemoOptions) *DemoScene {
	return &DemoScene{opts: opts}
}

func (ds *DemoScene) Update() error {
	ds.once.Do(func() { ds.err = ds.configure() })
	if ds.err != nil {
		return ds.err
	}

	ds.applyReloads()
	ds.ecs.Update()

	settings := systems.GetOrCreateSettings(ds.ecs)
	ds.hud.Update()
	ds.hud.UpdateUI(ui.HudStats{
		Mobs:       mobQuery.Count(ds.ecs.World),
		Bars:       barQuery.Count(ds.ecs.World),
		Spawned:    ds.spawned,
		Reaped:     ds.reaped,
		AutoCreate: settings.AutoCreate,
		ShowLabels: settings.ShowLabels,
	})
	return nil
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ds.ecs == nil || ds.err != nil {
		return
	}
	ds.ecs.Draw(screen)
	ds.hud.UI.Draw(screen)
}

func (ds *DemoScene) configure() error {
	level, err := assets.LoadLevel(ds.opts.LevelPath)
	if err != nil {
		return err
	}

	ds.ecs = ecs.NewECS(donburi.NewWorld())

	ds.ecs.AddSystem(systems.UpdateSettings)
	ds.ecs.AddSystem(systems.UpdateCamera)
	ds.ecs.AddSystem(systems.UpdateMobs)
	// Runs ahead of the plugin's passes, which Build appends.
	ds.ecs.AddSystem(ds.syncPlugin)

	ds.ecs.AddRenderer(cfg.Default, systems.DrawMobs)
	ds.ecs.AddRenderer(cfg.HUD, systems.DrawDebug)

	spaceEntry := factory.CreateSpace(ds.ecs, level.Width, level.Height, 16, 16)
	space := components.Space.Get(spaceEntry)

	factory.CreateCamera(ds.ecs, tags.BarCamera, float64(level.Width)/2, float64(level.Height)/2)

	for _, spawn := range level.Mobs {
		factory.CreateMob(ds.ecs, space, spawn)
	}

	// Saved settings win over the config file's auto-create default.
	settings := systems.GetOrCreateSettings(ds.ecs)
	systems.ApplySavedSettings(ds.ecs, ds.opts.Saved)

	ds.plugin = newPlugin(ds.opts.FontPath, settings.AutoCreate)
	if err := ds.plugin.Build(ds.ecs); err != nil {
		return err
	}

	systems.HealthBarSpawned.Subscribe(ds.ecs.World, func(w donburi.World, ev systems.HealthBarSpawnedEvent) {
		ds.spawned++
	})
	systems.HealthBarReaped.Subscribe(ds.ecs.World, func(w donburi.World, ev systems.HealthBarReapedEvent) {
		ds.reaped++
	})

	ds.hud = ui.NewHudUI(
		func() { ds.toggleSetting(func(s *components.SettingsData) { s.AutoCreate = !s.AutoCreate }) },
		func() { ds.toggleSetting(func(s *components.SettingsData) { s.ShowLabels = !s.ShowLabels }) },
	)
	return nil
}

// newPlugin builds the label plugin from a font given on the command line,
// else the configured one, else the built-in Go font.
func newPlugin(fontPath string, autoCreate bool) *healthbar.Plugin[components.HealthData] {
	if fontPath == "" {
		fontPath = cfg.HealthBar.FontPath
	}
	plugin := healthbar.New(components.Health, tags.BarCamera, fontPath).
		AutomaticBarCreation(autoCreate)
	if fontPath == "" {
		plugin.WithFontData(goregular.TTF)
	}
	return plugin
}

// syncPlugin hands this frame's settings to the plugin before it runs.
func (ds *DemoScene) syncPlugin(e *ecs.ECS) {
	settings := systems.GetOrCreateSettings(e)
	ds.plugin.AutomaticBarCreation(settings.AutoCreate)
	ds.plugin.SetVisible(settings.ShowLabels)
}

func (ds *DemoScene) toggleSetting(change func(s *components.SettingsData)) {
	settings := systems.GetOrCreateSettings(ds.ecs)
	change(settings)
	systems.SaveCurrentSettings(settings)
}

// applyReloads picks up config files changed on disk. New defaults apply to
// bars attached from now on.
func (ds *DemoScene) applyReloads() {
	if ds.opts.Reloads == nil {
		return
	}
	for {
		select {
		case f, ok := <-ds.opts.Reloads:
			if !ok {
				ds.opts.Reloads = nil
				return
			}
			if err := f.Apply(); err != nil {
				log.Printf("Warning: Ignoring config reload: %v", err)
				continue
			}
			systems.GetOrCreateSettings(ds.ecs).AutoCreate = cfg.HealthBar.AutoCreate
			log.Printf("Config reloaded")
		default:
			return
		}
	}
}
