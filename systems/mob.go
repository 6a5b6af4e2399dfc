package systems

import (
	"github.com/automoto/healthbars/assets"
	"github.com/automoto/healthbars/components"
	cfg "github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/systems/factory"
	"github.com/automoto/healthbars/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateMobs advances drift tweens and regeneration, then applies mouse and
// keyboard interaction:
//
//	left click   damage the mob under the cursor
//	right click  remove the mob under the cursor
//	N            spawn a mob at the cursor
//	H            strip every mob's bar, or restore the stripped ones
func UpdateMobs(ecs *ecs.ECS) {
	dt := 1 / float32(ebiten.TPS())

	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		mob := components.Mob.Get(e)
		if e.HasComponent(components.Tween) {
			x, _, _ := components.Tween.Get(e).Update(dt)
			moveMob(e, float64(x))
		}

		mob.RegenTimer--
		if mob.RegenTimer <= 0 {
			mob.RegenTimer = cfg.Mob.RegenFrames
			hp := components.Health.Get(e)
			if hp.HP < hp.MaxHP {
				hp.HP++
			}
		}
	})

	cursor, ok := cursorWorld(ecs.World)
	if !ok {
		return
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if target, ok := PickMob(ecs.World, cursor); ok {
			DamageMob(target, cfg.Mob.ClickDamage)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		if target, ok := PickMob(ecs.World, cursor); ok {
			RemoveMob(target)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		SpawnMobAt(ecs, cursor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		ToggleBarConfigs(ecs)
	}
}

// moveMob keeps the transform and the pick box together.
func moveMob(e *donburi.Entry, x float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Update()
	transform.Transform.Get(e).LocalPosition = dmath.NewVec2(obj.X+obj.W/2, obj.Y+obj.H/2)
}

func cursorWorld(w donburi.World) (dmath.Vec2, bool) {
	entry, _ := FindCamera(w, tags.BarCamera)
	if entry == nil {
		return dmath.Vec2{}, false
	}
	mx, my := ebiten.CursorPosition()
	return ScreenToWorld(*components.Camera.Get(entry), dmath.NewVec2(float64(mx), float64(my))), true
}

// PickMob returns the mob whose pick box contains the world point.
func PickMob(w donburi.World, point dmath.Vec2) (*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(point.X, point.Y, 1, 1, tags.ResolvCursor)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvMob)
	if check == nil {
		return nil, false
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvMob) {
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry, true
		}
	}
	return nil, false
}

// DamageMob lowers health, stopping at zero.
func DamageMob(e *donburi.Entry, amount uint32) {
	hp := components.Health.Get(e)
	if amount >= hp.HP {
		hp.HP = 0
		return
	}
	hp.HP -= amount
}

// RemoveMob takes a mob out of the world and the pick space.
func RemoveMob(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	e.Remove()
}

func SpawnMobAt(ecs *ecs.ECS, point dmath.Vec2) *donburi.Entry {
	var space *resolv.Space
	if entry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(entry)
	}
	return factory.CreateMob(ecs, space, assets.MobSpawn{
		Name:   "spawned",
		X:      point.X - cfg.Mob.Width/2,
		Y:      point.Y - cfg.Mob.Height/2,
		Width:  cfg.Mob.Width,
		Height: cfg.Mob.Height,
		HP:     cfg.Mob.DefaultMax,
		MaxHP:  cfg.Mob.DefaultMax,
	})
}

// ToggleBarConfigs strips every mob's bar configuration, keeping it aside
// and turning automatic creation off so the bars stay gone. With nothing
// configured it gives each mob back its kept configuration, or the default.
func ToggleBarConfigs(ecs *ecs.ECS) {
	var mobs []*donburi.Entry
	anyConfigured := false
	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		mobs = append(mobs, e)
		if e.HasComponent(components.HealthBar) {
			anyConfigured = true
		}
	})

	if anyConfigured {
		for _, e := range mobs {
			if !e.HasComponent(components.HealthBar) {
				continue
			}
			stashed := components.StashedBarData{Bar: components.HealthBar.GetValue(e)}
			e.RemoveComponent(components.HealthBar)
			if !e.HasComponent(components.StashedBar) {
				e.AddComponent(components.StashedBar)
			}
			components.StashedBar.SetValue(e, stashed)
		}

		settings := GetOrCreateSettings(ecs)
		if settings.AutoCreate {
			settings.AutoCreate = false
			SaveCurrentSettings(settings)
		}
		return
	}

	for _, e := range mobs {
		bar := components.DefaultHealthBar()
		if e.HasComponent(components.StashedBar) {
			bar = components.StashedBar.Get(e).Bar
			e.RemoveComponent(components.StashedBar)
		}
		e.AddComponent(components.HealthBar)
		components.HealthBar.SetValue(e, bar)
	}
}

// DrawMobs draws each mob's pick box through the bar camera.
func DrawMobs(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, _ := FindCamera(ecs.World, tags.BarCamera)
	if entry == nil {
		return
	}
	camera := *components.Camera.Get(entry)
	zoom := zoomOrOne(camera.Zoom)

	cursor, _ := cursorWorld(ecs.World)
	hovered, _ := PickMob(ecs.World, cursor)

	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		// Project the centre: the corner may be off-screen while the mob is not.
		centre, ok := WorldToScreen(camera, dmath.NewVec2(obj.X+obj.W/2, obj.Y+obj.H/2))
		if !ok {
			return
		}
		w, h := obj.W*zoom, obj.H*zoom
		col := cfg.Mob.BodyColor
		if hovered != nil && hovered.Entity() == e.Entity() {
			col = cfg.Mob.HighlightColor
		}
		vector.DrawFilledRect(screen, float32(centre.X-w/2), float32(centre.Y-h/2), float32(w), float32(h), col, false)
	})
}
