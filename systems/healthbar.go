package systems

import (
	"fmt"

	"github.com/automoto/healthbars/components"
	"github.com/automoto/healthbars/fonts"
	"github.com/automoto/healthbars/systems/factory"
	"github.com/automoto/healthbars/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var healthBarQuery = donburi.NewQuery(filter.Contains(tags.HealthBarLabel, components.HealthBarAttach))

// FormatHealth renders a health value the way labels show it.
func FormatHealth(h components.HealthProvider) string {
	return fmt.Sprintf("%d/%d", h.Current(), h.Max())
}

// AttachHealthBars gives every entity with health but no bar configuration
// the default configuration.
func AttachHealthBars[H any](health *donburi.ComponentType[H]) func(*ecs.ECS) {
	query := donburi.NewQuery(filter.And(
		filter.Contains(health),
		filter.Not(filter.Contains(components.HealthBar)),
	))

	return func(ecs *ecs.ECS) {
		var toAttach []*donburi.Entry
		query.Each(ecs.World, func(e *donburi.Entry) {
			toAttach = append(toAttach, e)
		})

		for _, e := range toAttach {
			if !e.Valid() {
				continue
			}
			e.AddComponent(components.HealthBar)
			components.HealthBar.SetValue(e, components.DefaultHealthBar())
		}
	}
}

// SpawnHealthBars creates a label entity for every tracked entity whose bar
// configuration has no label yet.
func SpawnHealthBars[H components.HealthProvider](health *donburi.ComponentType[H], cameraTag donburi.IComponentType) func(*ecs.ECS) {
	query := donburi.NewQuery(filter.And(
		filter.Contains(health, transform.Transform, components.HealthBar),
		filter.Not(filter.Contains(components.HealthBarLink)),
	))

	return func(ecs *ecs.ECS) {
		var targets []*donburi.Entry
		query.Each(ecs.World, func(e *donburi.Entry) {
			targets = append(targets, e)
		})
		if len(targets) == 0 {
			return
		}

		state := healthBarState(ecs)
		font := state.Font
		cam := barCamera(ecs.World, cameraTag, state)
		for _, target := range targets {
			bar := factory.CreateHealthBar(ecs, target.Entity())
			refreshHealthBar(bar, target, *health.Get(target), font, cam)

			target.AddComponent(components.HealthBarLink)
			components.HealthBarLink.SetValue(target, components.HealthBarLinkData{Bar: bar.Entity()})

			HealthBarSpawned.Publish(ecs.World, HealthBarSpawnedEvent{
				Target: target.Entity(),
				Bar:    bar.Entity(),
			})
		}
	}
}

// UpdateHealthBars re-projects and re-labels every bar whose target is still tracked.
func UpdateHealthBars[H components.HealthProvider](health *donburi.ComponentType[H], cameraTag donburi.IComponentType) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if healthBarQuery.Count(ecs.World) == 0 {
			return
		}
		state := healthBarState(ecs)
		cam := barCamera(ecs.World, cameraTag, state)
		healthBarQuery.Each(ecs.World, func(bar *donburi.Entry) {
			target, ok := trackedTarget(ecs.World, bar, health)
			if !ok {
				return
			}
			refreshHealthBar(bar, target, *health.Get(target), state.Font, cam)
		})
	}
}

// ReapHealthBars removes bars whose target is gone or no longer configured,
// together with any entities parented to them.
func ReapHealthBars[H any](health *donburi.ComponentType[H]) func(*ecs.ECS) {
	linked := donburi.NewQuery(filter.Contains(components.HealthBarLink))

	return func(ecs *ecs.ECS) {
		w := ecs.World

		var stale []*donburi.Entry
		healthBarQuery.Each(w, func(bar *donburi.Entry) {
			if _, ok := trackedTarget(w, bar, health); !ok {
				stale = append(stale, bar)
			}
		})

		for _, bar := range stale {
			target := components.HealthBarAttach.Get(bar).Target
			barEntity := bar.Entity()
			targetAlive := w.Valid(target)
			if targetAlive {
				unlink(w.Entry(target), barEntity)
			}
			transform.RemoveRecursive(bar)

			HealthBarReaped.Publish(w, HealthBarReapedEvent{
				Target:      target,
				Bar:         barEntity,
				TargetAlive: targetAlive,
			})
		}

		// Targets whose bar was removed by someone else get a fresh one.
		var orphaned []*donburi.Entry
		linked.Each(w, func(e *donburi.Entry) {
			if !w.Valid(components.HealthBarLink.Get(e).Bar) {
				orphaned = append(orphaned, e)
			}
		})
		for _, e := range orphaned {
			e.RemoveComponent(components.HealthBarLink)
		}
	}
}

// trackedTarget resolves the entity a bar annotates, provided it still has
// everything a bar needs.
func trackedTarget[H any](w donburi.World, bar *donburi.Entry, health *donburi.ComponentType[H]) (*donburi.Entry, bool) {
	target := components.HealthBarAttach.Get(bar).Target
	if !w.Valid(target) {
		return nil, false
	}
	entry := w.Entry(target)
	if !entry.HasComponent(health) || !entry.HasComponent(transform.Transform) || !entry.HasComponent(components.HealthBar) {
		return nil, false
	}
	return entry, true
}

func unlink(target *donburi.Entry, bar donburi.Entity) {
	if !target.HasComponent(components.HealthBarLink) {
		return
	}
	if components.HealthBarLink.Get(target).Bar != bar {
		return
	}
	target.RemoveComponent(components.HealthBarLink)
}

// refreshHealthBar replaces the bar's position and label wholesale. Screen
// Y grows downwards, so a positive offset Y lifts the label.
func refreshHealthBar(bar, target *donburi.Entry, hp components.HealthProvider, font fonts.FontName, cam *components.CameraData) {
	cfg := components.HealthBar.Get(target)
	pos, onScreen := projectThrough(cam, transform.WorldPosition(target))

	transform.Transform.Get(bar).LocalPosition = pos

	components.Label.SetValue(bar, components.LabelData{
		Text:     FormatHealth(hp),
		Font:     font,
		Size:     cfg.Size,
		Color:    cfg.Color,
		Anchor:   labelAnchor(pos, cfg.Offset),
		OnScreen: onScreen,
	})
}

func labelAnchor(pos, offset dmath.Vec2) dmath.Vec2 {
	return dmath.NewVec2(pos.X+offset.X, pos.Y-offset.Y)
}

// healthBarState returns the world's plugin resource, creating one with the
// default font when the plugin was never built on this world.
func healthBarState(ecs *ecs.ECS) *components.HealthBarResourceData {
	entry, ok := components.HealthBarResource.First(ecs.World)
	if !ok {
		entry = factory.CreateHealthBarResource(ecs, components.HealthBarResourceData{Font: fonts.HealthBar})
	}
	return components.HealthBarResource.Get(entry)
}
