package ui

import (
	"image/color"
	"log"

	cfg "github.com/automoto/sunsprout/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EndUI is the end-of-round panel drawn over the dimmed playfield. It fades in when shown.
type EndUI struct {
	UI *ebitenui.UI

	OnRestart func()

	scoreLabel  *widget.Label
	plantsLabel *widget.Label

	fade    *gween.Tween
	alpha   float32
	visible bool
	layer   *ebiten.Image

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewEndUI(onRestart func()) *EndUI {
	ui := &EndUI{OnRestart: onRestart}
	faces, err := loadFaces()
	if err != nil {
		log.Fatalf("%v", err)
	}
	ui.titleFace, ui.normalFace, ui.smallFace = faces.Title, faces.Normal, faces.Small
	ui.buildUI()
	return ui
}

func (ui *EndUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 20, Bottom: 20, Left: 36, Right: 36}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.EndTitle, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	ui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text(ScoreText(0), &ui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	panel.AddChild(ui.scoreLabel)

	ui.plantsLabel = widget.NewLabel(
		widget.LabelOpts.Text(PlantsText(0, 0), &ui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	panel.AddChild(ui.plantsLabel)

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(cfg.Menu.EndHint, &ui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 240, 200, 255},
			Pressed: color.RGBA{200, 190, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnRestart != nil {
				ui.OnRestart()
			}
		}),
	))

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// Show fills in the round summary and restarts the fade-in.
func (ui *EndUI) Show(score, survived, total int) {
	ui.scoreLabel.Label = ScoreText(score)
	ui.plantsLabel.Label = PlantsText(survived, total)
	ui.fade = gween.New(0, 1, cfg.Menu.FadeDuration, ease.OutQuad)
	ui.alpha = 0
	ui.visible = true
}

func (ui *EndUI) Hide() {
	ui.visible = false
	ui.fade = nil
}

func (ui *EndUI) Visible() bool {
	return ui.visible
}

// Update advances the fade by dt seconds and lets the panel handle input.
func (ui *EndUI) Update(dt float32) {
	if !ui.visible {
		return
	}
	if ui.fade != nil {
		alpha, finished := ui.fade.Update(dt)
		ui.alpha = alpha
		if finished {
			ui.alpha = 1
			ui.fade = nil
		}
	}
	ui.UI.Update()
}

func (ui *EndUI) Draw(screen *ebiten.Image) {
	if !ui.visible {
		return
	}

	// The panel is laid out on its own layer so the whole thing fades as one.
	size := screen.Bounds().Size()
	if ui.layer == nil || ui.layer.Bounds().Size() != size {
		ui.layer = ebiten.NewImage(size.X, size.Y)
	}
	ui.layer.Clear()
	ui.UI.Draw(ui.layer)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(ui.alpha)
	screen.DrawImage(ui.layer, op)
}
