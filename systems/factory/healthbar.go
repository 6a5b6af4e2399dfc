package factory

import (
	"github.com/automoto/healthbars/archetypes"
	"github.com/automoto/healthbars/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHealthBar spawns an empty label entity annotating target.
func CreateHealthBar(ecs *ecs.ECS, target donburi.Entity) *donburi.Entry {
	bar := archetypes.HealthBarLabel.Spawn(ecs)
	components.HealthBarAttach.SetValue(bar, components.HealthBarAttachData{Target: target})
	return bar
}

// CreateHealthBarResource stores the plugin's shared state, replacing any
// earlier value.
func CreateHealthBarResource(ecs *ecs.ECS, data components.HealthBarResourceData) *donburi.Entry {
	entry, ok := components.HealthBarResource.First(ecs.World)
	if !ok {
		entry = archetypes.Resource.Spawn(ecs)
	}
	components.HealthBarResource.SetValue(entry, data)
	return entry
}
