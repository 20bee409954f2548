package config

// RoundStateID is the lifecycle state of a round
type RoundStateID int

const (
	RoundNotStarted RoundStateID = iota
	RoundRunning
	RoundEnded
)

func (s RoundStateID) String() string {
	switch s {
	case RoundNotStarted:
		return "NotStarted"
	case RoundRunning:
		return "Running"
	case RoundEnded:
		return "Ended"
	}
	return "Unknown"
}

// Facing is the player sprite orientation
type Facing int

const (
	FacingBack Facing = iota
	FacingFront
)

// ImageID names an image asset
type ImageID int

const (
	ImagePlayerBack ImageID = iota
	ImagePlayerFront
	ImagePlantHealthy
	ImagePlantDead
	ImageBackground
	ImageSun
	ImageCount // Must be last - used for array sizing
)
