package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Orb cues, loaded from files
	SoundOrbSpawn
	SoundOrbCollect
	// Synthesized splashes
	SoundSplash
	SoundSuperSplash
)

// SoundRequest is a fire-and-forget playback request queued by the simulation.
// Freq and Duration only apply to synthesized sounds.
type SoundRequest struct {
	ID       SoundID
	Volume   float64
	Freq     float64 // Hz
	Duration float64 // seconds
}

// SplashConfig tunes a synthesized splash
type SplashConfig struct {
	Volume   float64
	Freq     float64 // Hz
	FreqJit  float64 // Hz subtracted at random (0..FreqJit)
	Duration float64 // seconds
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Splash        SplashConfig
	SuperSplash   SplashConfig
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		Splash: SplashConfig{
			Volume:   0.16,
			Freq:     700,
			FreqJit:  200,
			Duration: 0.26,
		},
		SuperSplash: SplashConfig{
			Volume:   0.44,
			Freq:     380,
			Duration: 0.6,
		},
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundOrbSpawn:   "audio/pop.ogg",
			SoundOrbCollect: "audio/wood_plank_flicks.ogg",
		},
	}
}
