package factory

import (
	"github.com/automoto/healthbars/archetypes"
	"github.com/automoto/healthbars/assets"
	"github.com/automoto/healthbars/components"
	cfg "github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// CreateMob spawns a demo creature. Its transform sits at the centre of its
// pick box. A spawn with a bar override gets its HealthBar up front so the
// automatic default never applies.
func CreateMob(ecs *ecs.ECS, space *resolv.Space, spawn assets.MobSpawn) *donburi.Entry {
	mob := archetypes.Mob.Spawn(ecs)

	components.Mob.SetValue(mob, components.MobData{
		Name:       spawn.Name,
		RegenTimer: cfg.Mob.RegenFrames,
	})
	components.Health.SetValue(mob, components.HealthData{HP: spawn.HP, MaxHP: spawn.MaxHP})

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvMob)
	obj.Data = mob
	components.Object.SetValue(mob, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	transform.Transform.Get(mob).LocalPosition = math.NewVec2(spawn.X+spawn.Width/2, spawn.Y+spawn.Height/2)

	if spawn.Bar != nil {
		mob.AddComponent(components.HealthBar)
		components.HealthBar.SetValue(mob, components.HealthBarData{
			Offset: math.NewVec2(spawn.Bar.OffsetX, spawn.Bar.OffsetY),
			Size:   spawn.Bar.Size,
			Color:  spawn.Bar.Color,
		})
	}

	// Mobs drift back and forth using a *gween.Sequence, like floating platforms.
	tw := gween.NewSequence()
	d := float32(cfg.Mob.DriftDistance)
	x := float32(spawn.X)
	tw.Add(
		gween.New(x, x+d, cfg.Mob.DriftDuration, ease.InOutSine),
		gween.New(x+d, x-d, cfg.Mob.DriftDuration*2, ease.InOutSine),
		gween.New(x-d, x, cfg.Mob.DriftDuration, ease.InOutSine),
	)
	tw.SetLoop(-1)
	mob.AddComponent(components.Tween)
	components.Tween.Set(mob, tw)

	return mob
}
