package main

import (
	"image"
	"log"

	"github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/fonts"
	"github.com/automoto/sunsprout/scenes"
	"github.com/automoto/sunsprout/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rect(0, 0, config.C.Width, config.C.Height),
	}

	if config.Debug.SkipMenu {
		player := sound.Shared(scenes.SoundFS())
		player.Preload()
		g.scene = scenes.NewRoundScene(g, scenes.LoadImagesNow(), player)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the playfield is re-laid out when it is resized.
func (g *Game) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		width, height = config.C.Width, config.C.Height
	}
	g.bounds = image.Rect(0, 0, width, height)
	return width, height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Sunsprout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
