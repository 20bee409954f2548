package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width        float64
	Height       float64
	BottomOffset float64 // distance from the playfield bottom to the sprite top
	Ease         float64 // fraction of the remaining distance covered per frame

	// Horizontal movement goal is clamped to [MinX, width-MinX]
	MinX float64

	// Facing
	FrontDuration float64 // ms the Front sprite is held after a throw
}

// PlantConfig contains plant spawning and thirst configuration
type PlantConfig struct {
	MinCount    int
	MaxCount    int // inclusive
	Width       float64
	Height      float64
	Margin      float64 // horizontal spawn margin
	TopFraction float64 // spawn band starts at height*TopFraction
	BandHeight  float64 // spawn band spans height*BandHeight
	MinDistance float64
	MaxTries    int

	MaxThirst       float64
	ThirstDecay     float64 // units per second
	GrowDecayPeriod float64 // ms for the grow pulse to fall from 1 to 0
	WaterScore      int

	// DeadVisualThirst is the thirst at or below which the dead sprite is shown
	DeadVisualThirst float64
}

// DropConfig contains water drop ballistics
type DropConfig struct {
	Life       float64 // ms
	Gravity    float64 // added to vy every frame
	PowerBoost float64
	DivX       float64 // vx = dx/DivX*PowerBoost
	DivY       float64 // vy = dy/DivY*PowerBoost

	// Cull margins outside the playfield
	BottomMargin float64
	SideMargin   float64
}

// OrbConfig contains falling orb configuration
type OrbConfig struct {
	Radius      float64
	Speed       float64 // px per frame
	SpawnY      float64
	Margin      float64
	Cooldown    float64 // ms between spawns
	CatchHeight float64 // catchable once y > height-CatchHeight
	CatchRange  float64 // max horizontal distance to the player; reduced from 90 for a smaller catch radius
	MissHeight  float64 // missed once y > height-MissHeight
	Charge      float64 // sunlight gained per catch
	MissPenalty float64 // thirst removed from every living plant on a miss
}

// BurstConfig describes a particle burst
type BurstConfig struct {
	Count   int
	SpreadX float64
	SpreadY float64
	Speed   float64
	Life    float64 // ms
}

// ParticleConfig contains particle effect configuration
type ParticleConfig struct {
	Gravity   float64 // added to vy every frame
	FadeLife  float64 // life (ms) at which a particle starts fading
	Radius    float64
	Splash    BurstConfig
	OrbCatch  BurstConfig
	SuperRain BurstConfig
}

// RoundConfig contains the round timer and meters
type RoundConfig struct {
	Duration    float64 // seconds
	MaxSunlight float64
}

// GestureConfig holds the swipe classification thresholds
type GestureConfig struct {
	MoveMaxDY      float64 // |dy| below this keeps a swipe horizontal
	MoveMinDX      float64 // |dx| above this is a deliberate move
	MoveZoneHeight float64 // moves must start in the bottom MoveZoneHeight px
	ThrowMaxDY     float64 // dy below this (negative = upward) is a throw
}

// SuperConfig contains the charged area ability
type SuperConfig struct {
	Bonus int
}

// HUDConfig contains renderer layout values
type HUDConfig struct {
	SunMargin   float64
	SunY        float64
	SunSize     float64
	SunGlow     float64
	SunCore     float64
	CloudY      [2]float64
	CloudX      [2]float64 // fraction of playfield width
	CloudScale  [2]float64
	BarWidth    float64
	BarHeight   float64
	BarOffset   float64 // gap between the health bar and the plant top
	GrowScale   float64 // extra sprite scale at grow=1
	BeamWidth   float64
	DropRX      float64
	DropRY      float64
	MeterX      float64
	MeterY      float64
	MeterWidth  float64
	MeterHeight float64
	BadgeWidth  float64
	BadgeHeight float64
	ScoreMargin float64
	ArcRadius   float64
	ArcOffset   float64 // vertical gap between the sun and the time arc
	ArcWidth    float64

	SkyColor        color.RGBA
	PlantBarColor   color.RGBA
	DeadBarColor    color.RGBA
	BarBgColor      color.RGBA
	BarStrokeColor  color.RGBA
	DeadPlantColor  color.RGBA
	PlantColor      color.RGBA
	PlayerColor     color.RGBA
	DropColor       color.RGBA
	ParticleColor   color.RGBA
	MeterColor      color.RGBA
	MeterBgColor    color.RGBA
	BadgeColor      color.RGBA
	TextColor       color.RGBA
	ArcColor        color.RGBA
	CloudColor      color.RGBA
	OrbColor        color.RGBA
	EndOverlayColor color.RGBA
}

// MenuConfig contains start dialog and end screen values
type MenuConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	EndTitle        string
	EndHint         string
	FadeDuration    float32 // seconds
}

// AssetConfig points at the image files loaded at startup
type AssetConfig struct {
	Dir    string
	Images map[ImageID]string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu bool  // Skip the start dialog and begin a round immediately
	Seed     int64 // 0 = seed from the clock
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Plant PlantConfig
var Drop DropConfig
var Orb OrbConfig
var Particles ParticleConfig
var Round RoundConfig
var Gesture GestureConfig
var Super SuperConfig
var HUD HUDConfig
var Menu MenuConfig
var Assets AssetConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 92}
	SunYellow    = color.RGBA{R: 255, G: 210, B: 70, A: 255}
	SunGlow      = color.RGBA{R: 255, G: 240, B: 160, A: 242}
	SunGlowEdge  = color.RGBA{R: 255, G: 200, B: 60, A: 15}
	OrbGlow      = color.RGBA{R: 255, G: 238, B: 120, A: 242}
	OrbGlowEdge  = color.RGBA{R: 255, G: 200, B: 40, A: 13}
	BeamTop      = color.RGBA{R: 255, G: 240, B: 160, A: 0}
	BeamMid      = color.RGBA{R: 255, G: 220, B: 80, A: 46}
	BeamColor    = color.RGBA{R: 255, G: 200, B: 50, A: 77}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
	}

	Player = PlayerConfig{
		Width:         120,
		Height:        140,
		BottomOffset:  135,
		Ease:          0.16,
		MinX:          80,
		FrontDuration: 220,
	}

	Plant = PlantConfig{
		MinCount:    4,
		MaxCount:    5,
		Width:       110,
		Height:      78,
		Margin:      80,
		TopFraction: 0.35,
		BandHeight:  0.18,
		MinDistance: 120,
		MaxTries:    50,

		MaxThirst:        100,
		ThirstDecay:      3.2, // tuned drain
		GrowDecayPeriod:  600,
		WaterScore:       6,
		DeadVisualThirst: 25,
	}

	Drop = DropConfig{
		Life:         4500,
		Gravity:      0.28,
		PowerBoost:   1.6, // increase for more throw speed
		DivX:         18,
		DivY:         36,
		BottomMargin: 80,
		SideMargin:   120,
	}

	Orb = OrbConfig{
		Radius:      14,
		Speed:       2.6,
		SpawnY:      -12,
		Margin:      80,
		Cooldown:    5000,
		CatchHeight: 220,
		CatchRange:  60,
		MissHeight:  60,
		Charge:      28,
		MissPenalty: 10,
	}

	Particles = ParticleConfig{
		Gravity:  0.12,
		FadeLife: 600,
		Radius:   3,
		Splash: BurstConfig{
			Count: 10, SpreadX: 18, SpreadY: 8, Speed: 3, Life: 380,
		},
		OrbCatch: BurstConfig{
			Count: 12, SpreadX: 16, SpreadY: 12, Speed: 2, Life: 320,
		},
		SuperRain: BurstConfig{
			Count: 28, SpreadX: 80, SpreadY: 40, Speed: 6, Life: 800,
		},
	}

	Round = RoundConfig{
		Duration:    60,
		MaxSunlight: 100,
	}

	Gesture = GestureConfig{
		MoveMaxDY:      50,
		MoveMinDX:      20,
		MoveZoneHeight: 180,
		ThrowMaxDY:     -28,
	}

	Super = SuperConfig{
		Bonus: 24,
	}

	HUD = HUDConfig{
		SunMargin:   110,
		SunY:        92,
		SunSize:     112,
		SunGlow:     86,
		SunCore:     36,
		CloudY:      [2]float64{130, 115},
		CloudX:      [2]float64{0.18, 0.52},
		CloudScale:  [2]float64{0.9, 1.0},
		BarWidth:    84,
		BarHeight:   10,
		BarOffset:   26,
		GrowScale:   0.25,
		BeamWidth:   36,
		DropRX:      6,
		DropRY:      8,
		MeterX:      16,
		MeterY:      16,
		MeterWidth:  220,
		MeterHeight: 22,
		BadgeWidth:  108,
		BadgeHeight: 28,
		ScoreMargin: 16,
		ArcRadius:   18,
		ArcOffset:   94,
		ArcWidth:    4,

		SkyColor:        color.RGBA{R: 0xcf, G: 0xef, B: 0xfd, A: 255},
		PlantBarColor:   color.RGBA{R: 0x6f, G: 0xb6, B: 0xff, A: 255},
		DeadBarColor:    color.RGBA{R: 0x7a, G: 0x7a, B: 0x7a, A: 255},
		BarBgColor:      color.RGBA{R: 0, G: 0, B: 0, A: 31},
		BarStrokeColor:  color.RGBA{R: 0, G: 0, B: 0, A: 20},
		DeadPlantColor:  color.RGBA{R: 0x7b, G: 0x4b, B: 0x2f, A: 255},
		PlantColor:      color.RGBA{R: 0x2e, G: 0x9b, B: 0x2e, A: 255},
		PlayerColor:     color.RGBA{R: 0x5b, G: 0x3a, B: 0x2e, A: 255},
		DropColor:       color.RGBA{R: 57, G: 149, B: 255, A: 242},
		ParticleColor:   color.RGBA{R: 200, G: 230, B: 255, A: 255},
		MeterColor:      color.RGBA{R: 0xff, G: 0xb6, B: 0x5e, A: 255},
		MeterBgColor:    color.RGBA{R: 0, G: 0, B: 0, A: 31},
		BadgeColor:      color.RGBA{R: 30, G: 170, B: 140, A: 242},
		TextColor:       color.RGBA{R: 0, G: 0, B: 0, A: 217},
		ArcColor:        color.RGBA{R: 255, G: 255, B: 255, A: 46},
		CloudColor:      color.RGBA{R: 255, G: 255, B: 255, A: 242},
		OrbColor:        color.RGBA{R: 255, G: 210, B: 60, A: 255},
		EndOverlayColor: BlackOverlay,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 0xcf, G: 0xef, B: 0xfd, A: 255},
		PanelColor:      color.RGBA{R: 20, G: 40, B: 60, A: 220},
		TitleColor:      White,
		TextColor:       color.RGBA{R: 220, G: 235, B: 245, A: 255},
		Title:           "SUNSPROUT",
		EndTitle:        "Good night",
		EndHint:         "Tap to play again",
		FadeDuration:    0.5,
	}

	Assets = AssetConfig{
		Dir: "assets/images",
		Images: map[ImageID]string{
			ImagePlayerFront:  "Front.png",
			ImagePlayerBack:   "Back.PNG",
			ImagePlantHealthy: "Health.PNG",
			ImagePlantDead:    "Dead.PNG",
			ImageBackground:   "Bg.png",
			ImageSun:          "sun.png",
		},
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
