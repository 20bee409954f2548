package game

import (
	stdmath "math"

	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/render"
	"github.com/automoto/sunsprout/systems"
	"github.com/automoto/sunsprout/systems/factory"
	"github.com/automoto/sunsprout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Summary is handed to the end screen once a round runs out of time.
type Summary struct {
	Score          int
	PlantsSurvived int
	PlantsTotal    int
}

// Options configures a new round controller.
type Options struct {
	Seed   int64
	Width  float64
	Height float64

	// OnRoundEnd is called once per round, on the tick the timer reaches zero.
	OnRoundEnd func(Summary)
}

// Round owns the simulation world and drives it one tick at a time.
type Round struct {
	world    donburi.World
	entry    *donburi.Entry
	pipeline []systems.System
	onEnd    func(Summary)

	lastNow  float64
	haveLast bool
}

func NewRound(opts Options) *Round {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = float64(cfg.C.Width), float64(cfg.C.Height)
	}

	w := donburi.NewWorld()
	r := &Round{
		world: w,
		entry: factory.CreateRound(w, width, height, opts.Seed),
		onEnd: opts.OnRoundEnd,
	}

	r.pipeline = []systems.System{
		systems.UpdateClock,
		systems.ApplyIntents,
		systems.UpdateSchedule,
		systems.UpdatePlayer,
		systems.UpdateDrops,
		systems.UpdateOrb,
		systems.UpdateParticles,
		systems.UpdatePlants,
		systems.UpdateTimer,
	}
	for i, s := range r.pipeline {
		r.pipeline[i] = systems.WithRunningCheck(s)
	}
	return r
}

// Start begins the first round. It only acts on a round that has never started.
func (r *Round) Start() {
	if r.State() != cfg.RoundNotStarted {
		return
	}
	r.begin()
}

// Restart runs the same initialization as Start on a round that has ended.
func (r *Round) Restart() {
	if r.State() != cfg.RoundEnded {
		return
	}
	r.begin()
}

func (r *Round) begin() {
	systems.StartRound(r.world)
	r.haveLast = false
}

// Swipe queues a gesture for the next tick. Swipes outside a running round are dropped.
func (r *Round) Swipe(start, end math.Vec2) {
	if !r.running() {
		return
	}
	systems.QueueSwipe(r.world, components.Swipe{Start: start, End: end})
}

// Resize updates the playfield. Systems read the new size on the next tick.
func (r *Round) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	pf := components.Playfield.Get(r.entry)
	if pf.Width == width && pf.Height == height {
		return
	}
	pf.Width, pf.Height = width, height

	// Plants keep their positions, so the space must still cover them after a shrink
	spaceW, spaceH := width, height
	tags.Plant.Each(r.world, func(e *donburi.Entry) {
		p := components.Plant.Get(e)
		spaceW = stdmath.Max(spaceW, p.Position.X+p.Width/2+1)
		spaceH = stdmath.Max(spaceH, p.Position.Y+p.Height/2+1)
	})
	factory.ResetSpace(r.entry, spaceW, spaceH)
	space := components.Space.Get(r.entry)
	tags.Plant.Each(r.world, func(e *donburi.Entry) {
		space.Add(components.Object.Get(e).Object)
	})
	tags.Drop.Each(r.world, func(e *donburi.Entry) {
		space.Add(components.Object.Get(e).Object)
	})
}

// Advance converts a monotonic timestamp in ms into a tick. The first call after a
// start or restart ticks with dt = 0.
func (r *Round) Advance(nowMs float64) {
	dt := 0.0
	if r.haveLast {
		dt = nowMs - r.lastNow
		if dt < 0 {
			dt = 0
		}
	}
	r.lastNow = nowMs
	r.haveLast = true
	r.Tick(dt)
}

// Tick advances the simulation by dt ms. Outside a running round pending swipes are
// discarded and nothing else changes.
func (r *Round) Tick(dt float64) {
	if !r.running() {
		systems.ClearIntents(r.world)
		return
	}
	for _, s := range r.pipeline {
		s(r.world, dt)
	}
	r.signalEnd()
}

func (r *Round) signalEnd() {
	round := components.Round.Get(r.entry)
	if round.State != cfg.RoundEnded || round.EndSignaled {
		return
	}
	round.EndSignaled = true
	if r.onEnd != nil {
		r.onEnd(r.Summary())
	}
}

// Summary reports the score and plant survival for the current round.
func (r *Round) Summary() Summary {
	total := 0
	tags.Plant.Each(r.world, func(*donburi.Entry) { total++ })
	return Summary{
		Score:          components.Round.Get(r.entry).Score,
		PlantsSurvived: systems.LivingPlants(r.world),
		PlantsTotal:    total,
	}
}

func (r *Round) State() cfg.RoundStateID {
	return components.Round.Get(r.entry).State
}

func (r *Round) Ended() bool {
	return r.State() == cfg.RoundEnded
}

func (r *Round) running() bool {
	return r.State() == cfg.RoundRunning
}

// Frame builds the draw ops for the current state.
func (r *Round) Frame(images render.ImageSet) []render.Op {
	return render.Build(r.world, images)
}

// DrainSounds returns the sounds queued since the last call.
func (r *Round) DrainSounds() []cfg.SoundRequest {
	return systems.DrainSFX(r.world)
}

// World exposes the underlying store for tests and debugging tools.
func (r *Round) World() donburi.World {
	return r.world
}
