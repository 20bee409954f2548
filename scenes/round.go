package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/sunsprout/assets"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/game"
	"github.com/automoto/sunsprout/input"
	"github.com/automoto/sunsprout/render/ebitenrender"
	"github.com/automoto/sunsprout/sound"
	"github.com/automoto/sunsprout/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// RoundScene plays rounds back to back. The end panel appears when the timer runs out and
// a tap anywhere starts the next round.
type RoundScene struct {
	sceneChanger SceneChanger
	images       *assets.ImageSet
	player       *sound.Player
	once         sync.Once

	round    *game.Round
	tracker  *input.Tracker
	renderer *ebitenrender.Renderer
	endUI    *ui.EndUI

	started time.Time
	lastNow float64
	width   int
	height  int
	restart bool
}

func NewRoundScene(sc SceneChanger, images *assets.ImageSet, player *sound.Player) *RoundScene {
	return &RoundScene{
		sceneChanger: sc,
		images:       images,
		player:       player,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
	}
}

func (rs *RoundScene) Update() {
	rs.once.Do(rs.configure)

	input.Poll(rs.tracker)

	// Wall clock time in milliseconds since the scene started
	now := float64(time.Since(rs.started).Microseconds()) / 1000
	dt := float32(now-rs.lastNow) / 1000
	rs.lastNow = now

	if rs.round.Ended() {
		rs.endUI.Update(dt)
		if rs.tracker.Tapped() {
			rs.restart = true
		}
		if rs.restart {
			rs.restartRound()
		}
	} else {
		for _, s := range rs.tracker.Drain() {
			rs.round.Swipe(s.Start, s.End)
		}
	}

	rs.round.Resize(float64(rs.width), float64(rs.height))
	rs.round.Advance(now)
	rs.player.Play(rs.round.DrainSounds())
}

func (rs *RoundScene) restartRound() {
	rs.restart = false
	rs.tracker.Reset()
	rs.endUI.Hide()
	rs.round.Restart()
}

func (rs *RoundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	size := screen.Bounds().Size()
	rs.width, rs.height = size.X, size.Y

	if rs.round == nil {
		return
	}
	rs.renderer.Draw(screen, rs.round.Frame(rs.images), rs.images)
	rs.endUI.Draw(screen)
}

func (rs *RoundScene) configure() {
	rs.tracker = input.NewTracker()
	rs.renderer = ebitenrender.NewRenderer()
	rs.endUI = ui.NewEndUI(func() { rs.restart = true })

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rs.round = game.NewRound(game.Options{
		Seed:   seed,
		Width:  float64(rs.width),
		Height: float64(rs.height),
		OnRoundEnd: func(s game.Summary) {
			rs.tracker.Reset()
			rs.endUI.Show(s.Score, s.PlantsSurvived, s.PlantsTotal)
		},
	})

	rs.started = time.Now()
	rs.round.Start()
}
