package ui

import (
	"image/color"
	"log"

	cfg "github.com/automoto/sunsprout/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// StartUI is the start dialog: a title, the asset loading status and a start button that
// unlocks once loading finishes.
type StartUI struct {
	UI *ebitenui.UI

	OnStart func()

	statusLabel *widget.Label
	startBtn    *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewStartUI(onStart func()) *StartUI {
	ui := &StartUI{OnStart: onStart}
	faces, err := loadFaces()
	if err != nil {
		log.Fatalf("%v", err)
	}
	ui.titleFace, ui.normalFace, ui.smallFace = faces.Title, faces.Normal, faces.Small
	ui.buildUI()
	return ui
}

func (ui *StartUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 24, Bottom: 24, Left: 40, Right: 40}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	panel.AddChild(titleLabel)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Catch the sunlight. Swipe up to water the plants.", &ui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	panel.AddChild(hintLabel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text(LoadingText(0), &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	ui.startBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 120, 60, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 150, 80, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 90, 45, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{50, 60, 55, 255}),
		}),
		widget.ButtonOpts.Text("Start Game", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 255, 220, 255},
			Pressed:  color.RGBA{180, 220, 180, 255},
			Disabled: color.RGBA{120, 120, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnStart != nil {
				ui.OnStart()
			}
		}),
	)
	ui.startBtn.GetWidget().Disabled = true
	panel.AddChild(ui.startBtn)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetProgress updates the loading status. The start button stays disabled below 100.
func (ui *StartUI) SetProgress(percent int) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = LoadingText(percent)
	}
	if ui.startBtn != nil {
		ui.startBtn.GetWidget().Disabled = percent < 100
	}
}

func (ui *StartUI) Update() {
	ui.UI.Update()
}
