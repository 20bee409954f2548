package render

import (
	"fmt"
	"math"

	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/fonts"
	"github.com/automoto/sunsprout/gamemath"
	"github.com/automoto/sunsprout/systems"
	"github.com/automoto/sunsprout/tags"
	"github.com/yohamta/donburi"
)

// Build turns the current world into an ordered list of draw calls. It only reads the
// world, so calling it twice on unchanged state yields identical ops. Any image missing
// from images is replaced by a flat-colour primitive.
func Build(w donburi.World, images ImageSet) []Op {
	if images == nil {
		images = NoImages{}
	}
	round := systems.GetRound(w)
	if round == nil {
		return nil
	}
	pf := systems.GetPlayfield(w)
	timeLeft := systems.TimeLeftClamped(round)

	var ops []Op
	ops = appendBackground(ops, pf, images)

	sunX, sunY := sunPosition(pf, timeLeft)
	ops = appendSun(ops, sunX, sunY, images)
	for i := range cfg.HUD.CloudX {
		ops = appendCloud(ops, pf.Width*cfg.HUD.CloudX[i], cfg.HUD.CloudY[i], cfg.HUD.CloudScale[i])
	}

	tags.Plant.Each(w, func(e *donburi.Entry) {
		ops = appendPlant(ops, components.Plant.Get(e), images)
	})

	tags.Orb.Each(w, func(e *donburi.Entry) {
		ops = appendOrb(ops, components.Orb.Get(e))
	})

	drop := straight(cfg.HUD.DropColor)
	tags.Drop.Each(w, func(e *donburi.Entry) {
		d := components.Drop.Get(e)
		ops = append(ops, fillEllipse(d.Position.X, d.Position.Y, cfg.HUD.DropRX, cfg.HUD.DropRY, drop))
	})

	if player := systems.GetPlayer(w); player != nil {
		ops = appendPlayer(ops, player, images)
	}

	tags.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		alpha := gamemath.Clamp(p.Life/cfg.Particles.FadeLife, 0, 1)
		ops = append(ops, fillCircle(p.Position.X, p.Position.Y, cfg.Particles.Radius, withAlpha(cfg.HUD.ParticleColor, alpha)))
	})

	ops = appendHUD(ops, round, pf, sunX, sunY, timeLeft)

	if round.State == cfg.RoundEnded {
		ops = append(ops, fillRect(0, 0, pf.Width, pf.Height, straight(cfg.HUD.EndOverlayColor)))
	}
	return ops
}

// sunPosition moves the sun from the right edge to the left as the round elapses.
func sunPosition(pf *components.PlayfieldData, timeLeft float64) (float64, float64) {
	t := gamemath.Clamp(1-timeLeft/cfg.Round.Duration, 0, 1)
	x := pf.Width - cfg.HUD.SunMargin - t*(pf.Width-2*cfg.HUD.SunMargin)
	return x, cfg.HUD.SunY
}

// appendBackground covers the playfield with the background image, cropping the
// overflowing axis around the centre.
func appendBackground(ops []Op, pf *components.PlayfieldData, images ImageSet) []Op {
	iw, ih, ok := images.Size(cfg.ImageBackground)
	if !ok || iw <= 0 || ih <= 0 || pf.Height <= 0 {
		return append(ops, fillRect(0, 0, pf.Width, pf.Height, straight(cfg.HUD.SkyColor)))
	}

	ar := iw / ih
	car := pf.Width / pf.Height
	var dx, dy, dw, dh float64
	if ar > car {
		dh = pf.Height
		dw = dh * ar
		dx = -(dw - pf.Width) / 2
	} else {
		dw = pf.Width
		dh = dw / ar
		dy = -(dh - pf.Height) / 2
	}
	return append(ops, drawImage(cfg.ImageBackground, dx, dy, dw, dh))
}

func appendSun(ops []Op, x, y float64, images ImageSet) []Op {
	if _, _, ok := images.Size(cfg.ImageSun); ok {
		s := cfg.HUD.SunSize
		return append(ops, drawImage(cfg.ImageSun, x-s/2, y-s/2, s, s))
	}
	ops = append(ops, radialGradient(x, y, cfg.HUD.SunGlow, 10, cfg.HUD.SunGlow,
		GradientStop{Offset: 0, Color: straight(cfg.SunGlow)},
		GradientStop{Offset: 1, Color: straight(cfg.SunGlowEdge)},
	))
	return append(ops, fillCircle(x, y, cfg.HUD.SunCore, straight(cfg.SunYellow)))
}

func appendCloud(ops []Op, cx, cy, s float64) []Op {
	c := straight(cfg.HUD.CloudColor)
	return append(ops,
		fillEllipse(cx-32*s, cy, 30*s, 20*s, c),
		fillEllipse(cx, cy-6*s, 40*s, 26*s, c),
		fillEllipse(cx+32*s, cy, 28*s, 18*s, c),
	)
}

func appendPlant(ops []Op, p *components.PlantData, images ImageSet) []Op {
	bw, bh := cfg.HUD.BarWidth, cfg.HUD.BarHeight
	bx := p.Position.X - bw/2
	by := p.Position.Y - p.Height/2 - cfg.HUD.BarOffset

	barColor := cfg.HUD.PlantBarColor
	if !p.Alive {
		barColor = cfg.HUD.DeadBarColor
	}
	fill := math.Max(2, p.Thirst/cfg.Plant.MaxThirst*bw)
	ops = append(ops,
		fillRoundRect(bx-2, by-2, bw+4, bh+4, 8, straight(cfg.HUD.BarBgColor)),
		fillRoundRect(bx, by, fill, bh, 6, straight(barColor)),
		strokeRect(bx, by, bw, bh, 1, straight(cfg.HUD.BarStrokeColor)),
	)

	left := p.Position.X - p.Width/2
	top := p.Position.Y - p.Height/2
	if p.Thirst <= cfg.Plant.DeadVisualThirst || !p.Alive {
		if _, _, ok := images.Size(cfg.ImagePlantDead); ok {
			return append(ops, drawImage(cfg.ImagePlantDead, left, top, p.Width, p.Height))
		}
		return append(ops, fillRect(left, top, p.Width, p.Height, straight(cfg.HUD.DeadPlantColor)))
	}

	if _, _, ok := images.Size(cfg.ImagePlantHealthy); ok {
		sc := 1 + p.Grow*cfg.HUD.GrowScale
		w, h := p.Width*sc, p.Height*sc
		return append(ops, drawImage(cfg.ImagePlantHealthy, p.Position.X-w/2, p.Position.Y-h/2, w, h))
	}
	return append(ops, fillEllipse(p.Position.X, p.Position.Y, p.Width/2, p.Height/2, straight(cfg.HUD.PlantColor)))
}

func appendOrb(ops []Op, o *components.OrbData) []Op {
	x, y, r := o.Position.X, o.Position.Y, o.Radius
	if beamH := math.Max(0, y+6); beamH > 0 {
		bw := cfg.HUD.BeamWidth
		ops = append(ops, linearGradient(x-bw/2, 0, bw, beamH,
			GradientStop{Offset: 0, Color: straight(cfg.BeamTop)},
			GradientStop{Offset: 0.6, Color: straight(cfg.BeamMid)},
			GradientStop{Offset: 1, Color: straight(cfg.BeamColor)},
		))
	}
	ops = append(ops, radialGradient(x, y, r*2.6, 0, r*3,
		GradientStop{Offset: 0, Color: straight(cfg.OrbGlow)},
		GradientStop{Offset: 1, Color: straight(cfg.OrbGlowEdge)},
	))
	return append(ops, fillCircle(x, y, r, straight(cfg.HUD.OrbColor)))
}

func appendPlayer(ops []Op, p *components.PlayerData, images ImageSet) []Op {
	w, h := cfg.Player.Width, cfg.Player.Height
	x, y := p.Position.X-w/2, p.Position.Y

	if p.Facing == cfg.FacingFront {
		if _, _, ok := images.Size(cfg.ImagePlayerFront); ok {
			return append(ops, drawImage(cfg.ImagePlayerFront, x, y, w, h))
		}
	}
	if _, _, ok := images.Size(cfg.ImagePlayerBack); ok {
		return append(ops, drawImage(cfg.ImagePlayerBack, x, y, w, h))
	}
	return append(ops, fillRect(x, y, w, h, straight(cfg.HUD.PlayerColor)))
}

func appendHUD(ops []Op, round *components.RoundData, pf *components.PlayfieldData, sunX, sunY, timeLeft float64) []Op {
	ux, uy := cfg.HUD.MeterX, cfg.HUD.MeterY
	uw, uh := cfg.HUD.MeterWidth, cfg.HUD.MeterHeight
	fill := math.Max(6, round.Sunlight/cfg.Round.MaxSunlight*(uw-4))
	textColor := straight(cfg.HUD.TextColor)

	ops = append(ops,
		fillRoundRect(ux, uy, uw, uh, 12, straight(cfg.HUD.MeterBgColor)),
		fillRoundRect(ux+2, uy+2, fill, uh-4, 10, straight(cfg.HUD.MeterColor)),
		drawText("Sunlight", ux+6, uy+15, fonts.HUD, AlignLeft, textColor),
	)

	if round.SuperReady {
		bw, bh := cfg.HUD.BadgeWidth, cfg.HUD.BadgeHeight
		bx := pf.Width - bw - 16
		ops = append(ops,
			fillRoundRect(bx, 14, bw, bh, bh/2, straight(cfg.HUD.BadgeColor)),
			drawText("SUPER READY", bx+bw/2, 32, fonts.HUD, AlignCenter, straight(cfg.White)),
		)
	}

	ops = append(ops, drawText(fmt.Sprintf("Score: %d", round.Score), cfg.HUD.ScoreMargin, pf.Height-18, fonts.Score, AlignLeft, textColor))

	frac := gamemath.Clamp(timeLeft/cfg.Round.Duration, 0, 1)
	return append(ops, strokeArc(sunX, sunY+cfg.HUD.ArcOffset, cfg.HUD.ArcRadius, -math.Pi/2, 2*math.Pi*frac, cfg.HUD.ArcWidth, straight(cfg.HUD.ArcColor)))
}
