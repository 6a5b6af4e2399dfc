package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MobData describes a demo creature.
type MobData struct {
	Name       string
	RegenTimer int // frames until the next point of health returns
}

// StashedBarData keeps a mob's bar configuration while its bar is stripped.
type StashedBarData struct {
	Bar HealthBarData
}

var (
	Mob        = donburi.NewComponentType[MobData]()
	StashedBar = donburi.NewComponentType[StashedBarData]()
	Tween      = donburi.NewComponentType[gween.Sequence]()
	Space      = donburi.NewComponentType[resolv.Space]()
)
