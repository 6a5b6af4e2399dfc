package systems

import (
	"github.com/automoto/healthbars/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHealthBars draws every on-screen health label at its anchor.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	healthBarQuery.Each(ecs.World, func(e *donburi.Entry) {
		label := components.Label.Get(e)
		if !label.OnScreen || label.Text == "" {
			return
		}
		face, ok := label.Font.Face(label.Size)
		if !ok {
			return
		}
		text.Draw(screen, label.Text, face, int(label.Anchor.X), int(label.Anchor.Y), label.Color) //nolint:staticcheck // TODO: migrate to text/v2
	})
}
