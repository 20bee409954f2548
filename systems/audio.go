package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
)

// QueueSFX queues a sound to be played after the step.
func QueueSFX(w donburi.World, req cfg.SoundRequest) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, req)
}

// QueueSplash queues a synthesized splash, lowering the pitch by a random jitter.
func QueueSplash(w donburi.World, id cfg.SoundID, splash cfg.SplashConfig) {
	freq := splash.Freq
	if splash.FreqJit > 0 {
		if round := GetRound(w); round != nil {
			freq -= round.Rand.Float64() * splash.FreqJit
		}
	}
	QueueSFX(w, cfg.SoundRequest{
		ID:       id,
		Volume:   splash.Volume,
		Freq:     freq,
		Duration: splash.Duration,
	})
}

// DrainSFX returns and clears the queued sounds.
func DrainSFX(w donburi.World) []cfg.SoundRequest {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	a := components.Audio.Get(entry)
	if len(a.PendingSFX) == 0 {
		return nil
	}
	out := make([]cfg.SoundRequest, len(a.PendingSFX))
	copy(out, a.PendingSFX)
	a.PendingSFX = a.PendingSFX[:0]
	return out
}
