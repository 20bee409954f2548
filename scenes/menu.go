package scenes

import (
	"image/color"
	"io/fs"
	"os"
	"sync"

	"github.com/automoto/sunsprout/assets"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/sound"
	"github.com/automoto/sunsprout/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene shows the start dialog and loads the images one per frame behind it.
type MenuScene struct {
	sceneChanger SceneChanger
	startUI      *ui.StartUI
	loader       *assets.ImageLoader
	player       *sound.Player
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	if !ms.loader.Done() {
		ms.loader.LoadNext()
		ms.startUI.SetProgress(ms.loader.Percent())
		if ms.loader.Done() {
			ms.player.Preload()
		}
	}

	ms.startUI.Update()

	if ms.shouldStart && ms.loader.Done() {
		ms.sceneChanger.ChangeScene(NewRoundScene(ms.sceneChanger, ms.loader.Images(), ms.player))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.startUI == nil {
		return
	}
	ms.startUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.loader = assets.NewImageLoader(imageFS())
	ms.player = sound.Shared(SoundFS())
	ms.startUI = ui.NewStartUI(func() { ms.shouldStart = true })
	ms.startUI.SetProgress(ms.loader.Percent())
}

// imageFS is where the image files are read from, relative to the working directory.
func imageFS() fs.FS {
	return os.DirFS(cfg.Assets.Dir)
}

// SoundFS is where the sound files are read from. Cue paths are relative to it.
func SoundFS() fs.FS {
	return os.DirFS("assets")
}

// LoadImagesNow loads every image before returning, for starting without the menu.
func LoadImagesNow() *assets.ImageSet {
	return assets.LoadImages(imageFS(), nil)
}
