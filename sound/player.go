package sound

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/sunsprout/assets"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays the sound requests queued by a round. Playback is fire-and-forget: a cue
// that cannot be loaded or played is skipped.
type Player struct {
	context *audio.Context
	loader  *assets.AudioLoader
	rate    beep.SampleRate
	volume  float64
}

// Global audio state - ebiten allows a single audio context per process
var (
	sharedPlayer *Player
	initOnce     sync.Once
)

// Shared returns the process-wide player, creating the audio context on first use.
func Shared(fsys fs.FS) *Player {
	initOnce.Do(func() {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		sharedPlayer = NewPlayer(ctx, assets.NewAudioLoader(ctx, fsys))
	})
	return sharedPlayer
}

func NewPlayer(ctx *audio.Context, loader *assets.AudioLoader) *Player {
	return &Player{
		context: ctx,
		loader:  loader,
		rate:    beep.SampleRate(cfg.Audio.SampleRate),
		volume:  cfg.Audio.DefaultSFXVol,
	}
}

// Preload decodes the file-based cues so the first play has no decode lag. Missing cues
// are logged and stay silent.
func (p *Player) Preload() {
	if p == nil || p.loader == nil {
		return
	}
	for _, path := range cfg.Sound.SFXPaths {
		if err := p.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: sound %s unavailable: %v", path, err)
		}
	}
}

// Play starts every request. It never fails.
func (p *Player) Play(reqs []cfg.SoundRequest) {
	if p == nil || p.context == nil {
		return
	}
	for _, req := range reqs {
		p.play(req)
	}
}

func (p *Player) play(req cfg.SoundRequest) {
	volume := req.Volume * p.volume
	if volume <= 0 {
		return
	}

	switch req.ID {
	case cfg.SoundSplash, cfg.SoundSuperSplash:
		pcm := Encode(Splash(p.rate, req.Freq, volume, req.Duration))
		if len(pcm) == 0 {
			return
		}
		p.context.NewPlayerFromBytes(pcm).Play()

	default:
		path, ok := cfg.Sound.SFXPaths[req.ID]
		if !ok || p.loader == nil {
			return
		}
		player, err := p.loader.LoadSFX(path)
		if err != nil {
			return
		}
		player.SetVolume(volume)
		player.Play()
	}
}
