package systems

import (
	"testing"

	"github.com/automoto/healthbars/assets"
	"github.com/automoto/healthbars/components"
	"github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/systems/factory"
	"github.com/automoto/healthbars/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

func newMobECS(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestECS(t)
	space := factory.CreateSpace(e, 640, 240, 16, 16)
	mob := factory.CreateMob(e, components.Space.Get(space), assets.MobSpawn{
		Name: "slime", X: 100, Y: 50, Width: 24, Height: 24, HP: 5, MaxHP: 6,
	})
	return e, mob
}

func TestDamageMob(t *testing.T) {
	cases := []struct {
		name   string
		hp     uint32
		amount uint32
		want   uint32
	}{
		{"partial", 5, 2, 3},
		{"exact", 2, 2, 0},
		{"saturates", 1, 4, 0},
		{"already_empty", 0, 1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, mob := newMobECS(t)
			components.Health.Get(mob).HP = c.hp
			DamageMob(mob, c.amount)
			if got := components.Health.Get(mob).HP; got != c.want {
				t.Errorf("HP = %d, want %d", got, c.want)
			}
		})
	}
}

func TestCreateMob_CentresTransform(t *testing.T) {
	_, mob := newMobECS(t)
	want := dmath.NewVec2(112, 62)
	if got := transform.Transform.Get(mob).LocalPosition; got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
	if mob.HasComponent(components.HealthBar) {
		t.Error("mob without an override should wait for the default bar")
	}
}

func TestCreateMob_BarOverride(t *testing.T) {
	e := newTestECS(t)
	mob := factory.CreateMob(e, nil, assets.MobSpawn{
		X: 0, Y: 0, Width: 10, Height: 10, HP: 4, MaxHP: 6,
		Bar: &assets.BarOverride{OffsetX: -4, OffsetY: 10, Size: 100, Color: config.Green},
	})

	if !mob.HasComponent(components.HealthBar) {
		t.Fatal("override should be attached at creation")
	}
	got := components.HealthBar.GetValue(mob)
	want := components.HealthBarData{Offset: dmath.NewVec2(-4, 10), Size: 100, Color: config.Green}
	if got != want {
		t.Errorf("bar = %+v, want %+v", got, want)
	}
}

func TestPickMob(t *testing.T) {
	cases := []struct {
		name  string
		point dmath.Vec2
		hit   bool
	}{
		{"inside", dmath.NewVec2(110, 60), true},
		{"corner", dmath.NewVec2(100, 50), true},
		{"outside", dmath.NewVec2(10, 10), false},
		{"just_right", dmath.NewVec2(130, 60), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, mob := newMobECS(t)
			got, ok := PickMob(e.World, c.point)
			if ok != c.hit {
				t.Fatalf("hit = %v, want %v", ok, c.hit)
			}
			if ok && got.Entity() != mob.Entity() {
				t.Error("picked the wrong entity")
			}
		})
	}
}

func TestPickMob_ProbeDoesNotLinger(t *testing.T) {
	e, _ := newMobECS(t)
	PickMob(e.World, dmath.NewVec2(110, 60))

	entry, _ := components.Space.First(e.World)
	space := components.Space.Get(entry)
	if n := len(space.Objects()); n != 1 {
		t.Errorf("space holds %d objects after picking, want 1", n)
	}
}

func TestRemoveMob(t *testing.T) {
	e, mob := newMobECS(t)
	runFrame(e)
	bar := onlyBar(t, e, mob.Entity()).Entity()

	RemoveMob(mob)
	runFrame(e)

	if _, ok := PickMob(e.World, dmath.NewVec2(110, 60)); ok {
		t.Error("removed mob should no longer be pickable")
	}
	if e.World.Valid(bar) {
		t.Error("removed mob's bar should be reaped")
	}
}

// runDemoFrame runs the passes the way the demo does, attaching defaults only
// while automatic creation is on.
func runDemoFrame(e *ecs.ECS) {
	if GetOrCreateSettings(e).AutoCreate {
		attachPass(e)
	}
	spawnPass(e)
	updatePass(e)
	reapPass(e)
	ProcessHealthBarEvents(e)
}

func TestToggleBarConfigs_StripSurvivesAutoCreate(t *testing.T) {
	e, mob := newMobECS(t)
	boss := factory.CreateMob(e, nil, assets.MobSpawn{
		Name: "boss", X: 300, Y: 100, Width: 24, Height: 24, HP: 4, MaxHP: 6,
		Bar: &assets.BarOverride{OffsetX: -4, OffsetY: 10, Size: 100, Color: config.Green},
	})
	GetOrCreateSettings(e).AutoCreate = true
	runDemoFrame(e)

	ToggleBarConfigs(e)
	runDemoFrame(e)
	runDemoFrame(e)

	if GetOrCreateSettings(e).AutoCreate {
		t.Error("stripping bars should turn automatic creation off")
	}
	for _, m := range []*donburi.Entry{mob, boss} {
		if m.HasComponent(components.HealthBar) {
			t.Fatalf("%s got its configuration back in the same frame", components.Mob.Get(m).Name)
		}
		if n := len(barsFor(e, m.Entity())); n != 0 {
			t.Errorf("%s still has %d bars", components.Mob.Get(m).Name, n)
		}
	}

	ToggleBarConfigs(e)
	runDemoFrame(e)

	if got := components.HealthBar.GetValue(mob); got != components.DefaultHealthBar() {
		t.Errorf("mob bar = %+v, want the default", got)
	}
	want := components.HealthBarData{Offset: dmath.NewVec2(-4, 10), Size: 100, Color: config.Green}
	if got := components.HealthBar.GetValue(boss); got != want {
		t.Errorf("boss bar = %+v, want its override %+v", got, want)
	}
	if boss.HasComponent(components.StashedBar) {
		t.Error("restored mob should drop its kept configuration")
	}
	onlyBar(t, e, boss.Entity())
}

func TestToggleBarConfigs_RestoresDefaultsWithoutStash(t *testing.T) {
	e, mob := newMobECS(t)
	GetOrCreateSettings(e).AutoCreate = false

	ToggleBarConfigs(e)

	if !mob.HasComponent(components.HealthBar) {
		t.Fatal("unconfigured mobs should get the default configuration")
	}
}

func TestSpawnMobAt(t *testing.T) {
	e, _ := newMobECS(t)
	mob := SpawnMobAt(e, dmath.NewVec2(300, 100))

	if got := transform.Transform.Get(mob).LocalPosition; got != dmath.NewVec2(300, 100) {
		t.Errorf("spawned mob centred at %v", got)
	}
	hp := components.Health.Get(mob)
	if hp.HP != config.Mob.DefaultMax || hp.MaxHP != config.Mob.DefaultMax {
		t.Errorf("spawned mob health = %d/%d", hp.HP, hp.MaxHP)
	}
	if got := donburi.NewQuery(filter.Contains(tags.Mob)).Count(e.World); got != 2 {
		t.Errorf("mob count = %d, want 2", got)
	}
}
