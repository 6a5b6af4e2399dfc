package tags

import "github.com/yohamta/donburi"

var (
	BarCamera      = donburi.NewTag().SetName("BarCamera")
	HealthBarLabel = donburi.NewTag().SetName("HealthBarLabel")
	Mob            = donburi.NewTag().SetName("Mob")
)

// Resolv tags for mouse picking
const (
	ResolvMob    = "mob"
	ResolvCursor = "cursor"
)
