package archetypes

import (
	"github.com/automoto/healthbars/components"
	cfg "github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	HealthBarLabel = newArchetype(
		tags.HealthBarLabel,
		components.HealthBarAttach,
		components.Label,
		transform.Transform,
	)
	// Camera gets its marker tag at spawn time.
	Camera = newArchetype(
		components.Camera,
	)
	Mob = newArchetype(
		tags.Mob,
		components.Mob,
		components.Health,
		components.Object,
		transform.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
	Resource = newArchetype(
		components.HealthBarResource,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
