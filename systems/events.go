package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

type HealthBarSpawnedEvent struct {
	Target donburi.Entity
	Bar    donburi.Entity
}

type HealthBarReapedEvent struct {
	Target      donburi.Entity
	Bar         donburi.Entity
	TargetAlive bool // false when the target entity itself was removed
}

var (
	HealthBarSpawned = events.NewEventType[HealthBarSpawnedEvent]()
	HealthBarReaped  = events.NewEventType[HealthBarReapedEvent]()
)

// ProcessHealthBarEvents delivers the lifecycle events queued this frame.
func ProcessHealthBarEvents(ecs *ecs.ECS) {
	HealthBarSpawned.ProcessEvents(ecs.World)
	HealthBarReaped.ProcessEvents(ecs.World)
}
