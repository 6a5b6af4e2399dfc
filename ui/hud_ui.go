package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/healthbars/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HudStats is what the overlay reports each frame
type HudStats struct {
	Mobs       int
	Bars       int
	Spawned    int
	Reaped     int
	AutoCreate bool
	ShowLabels bool
}

// HudUI holds the ebitenui overlay for the demo
type HudUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnToggleAutoCreate func()
	OnToggleLabels     func()

	countsLabel     *widget.Label
	lifecycleLabel  *widget.Label
	autoCreateLabel *widget.Label
	labelsButton    *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

// NewHudUI creates the overlay panel in the top-left corner
func NewHudUI(onToggleAutoCreate, onToggleLabels func()) *HudUI {
	hui := &HudUI{
		OnToggleAutoCreate: onToggleAutoCreate,
		OnToggleLabels:     onToggleLabels,
	}

	hui.loadFonts()
	hui.buildUI()

	return hui
}

func (hui *HudUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	hui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize,
	}
	hui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize - 2,
	}
}

func (hui *HudUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.Padding)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	labelColor := &widget.LabelColor{Idle: cfg.UI.TextColor}

	hui.countsLabel = widget.NewLabel(widget.LabelOpts.Text("", &hui.normalFace, labelColor))
	panel.AddChild(hui.countsLabel)

	hui.lifecycleLabel = widget.NewLabel(widget.LabelOpts.Text("", &hui.smallFace, labelColor))
	panel.AddChild(hui.lifecycleLabel)

	hui.autoCreateLabel = widget.NewLabel(widget.LabelOpts.Text("", &hui.smallFace, labelColor))
	panel.AddChild(hui.autoCreateLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	autoButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 18)),
		widget.ButtonOpts.Image(hui.buttonImage()),
		widget.ButtonOpts.Text("Auto (A)", &hui.smallFace, hui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if hui.OnToggleAutoCreate != nil {
				hui.OnToggleAutoCreate()
			}
		}),
	)
	buttons.AddChild(autoButton)

	hui.labelsButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 18)),
		widget.ButtonOpts.Image(hui.buttonImage()),
		widget.ButtonOpts.Text("Labels (L)", &hui.smallFace, hui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if hui.OnToggleLabels != nil {
				hui.OnToggleLabels()
			}
		}),
	)
	buttons.AddChild(hui.labelsButton)

	panel.AddChild(buttons)

	help := widget.NewLabel(widget.LabelOpts.Text(
		"click: hit  right click: remove  N: spawn  H: strip bars  arrows/wheel: camera",
		&hui.smallFace, labelColor,
	))
	panel.AddChild(help)

	rootContainer.AddChild(panel)

	hui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (hui *HudUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (hui *HudUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

// UpdateUI refreshes the labels from stats
func (hui *HudUI) UpdateUI(stats HudStats) {
	hui.countsLabel.Label = fmt.Sprintf("mobs %d  bars %d", stats.Mobs, stats.Bars)
	hui.lifecycleLabel.Label = fmt.Sprintf("spawned %d  reaped %d", stats.Spawned, stats.Reaped)
	hui.autoCreateLabel.Label = fmt.Sprintf("auto-create %s  labels %s", onOff(stats.AutoCreate), onOff(stats.ShowLabels))
}

// Update calls the UI's Update method
func (hui *HudUI) Update() {
	hui.UI.Update()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
