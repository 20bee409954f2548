package components

import (
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
)

// AudioData stores sound requests raised during a step (singleton component).
// The frame loop drains it after the step completes.
type AudioData struct {
	PendingSFX []cfg.SoundRequest
}

var Audio = donburi.NewComponentType[AudioData]()
