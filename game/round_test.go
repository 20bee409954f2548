package game

import (
	stdmath "math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/render"
	"github.com/automoto/sunsprout/systems"
	"github.com/automoto/sunsprout/systems/factory"
	"github.com/automoto/sunsprout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

const (
	testWidth  = 960
	testHeight = 640
	frame      = 16.0
)

func newStartedRound(t *testing.T, seed int64) *Round {
	t.Helper()
	r := NewRound(Options{Seed: seed, Width: testWidth, Height: testHeight})
	r.Start()
	if r.State() != cfg.RoundRunning {
		t.Fatalf("state after Start = %v, want Running", r.State())
	}
	return r
}

// holdOrbs stops new orbs from spawning for the rest of the test.
func holdOrbs(r *Round) {
	round := systems.GetRound(r.World())
	round.OrbEligible = false
	round.LastOrbSpawn = stdmath.Inf(1)
}

func count(w donburi.World, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

func plants(w donburi.World) []*components.PlantData {
	var out []*components.PlantData
	tags.Plant.Each(w, func(e *donburi.Entry) {
		out = append(out, components.Plant.Get(e))
	})
	return out
}

func TestNotStartedRoundIgnoresTicksAndSwipes(t *testing.T) {
	r := NewRound(Options{Seed: 1, Width: testWidth, Height: testHeight})
	r.Swipe(math.NewVec2(480, 500), math.NewVec2(480, 300))
	r.Tick(frame)

	if r.State() != cfg.RoundNotStarted {
		t.Fatalf("state = %v, want NotStarted", r.State())
	}
	if n := count(r.World(), tags.Drop); n != 0 {
		t.Fatalf("drops = %d, want 0", n)
	}
	if n := count(r.World(), tags.Plant); n != 0 {
		t.Fatalf("plants before start = %d, want 0", n)
	}
}

func TestStartSpawnsPlantsAndFirstOrbImmediately(t *testing.T) {
	r := newStartedRound(t, 7)

	ps := plants(r.World())
	if len(ps) < cfg.Plant.MinCount || len(ps) > cfg.Plant.MaxCount {
		t.Fatalf("plants = %d, want %d-%d", len(ps), cfg.Plant.MinCount, cfg.Plant.MaxCount)
	}
	for _, p := range ps {
		if !p.Alive || p.Thirst != cfg.Plant.MaxThirst {
			t.Fatalf("fresh plant = %+v", p)
		}
	}

	r.Tick(frame)
	if n := count(r.World(), tags.Orb); n != 1 {
		t.Fatalf("orbs after first tick = %d, want 1", n)
	}
	sounds := r.DrainSounds()
	if len(sounds) != 1 || sounds[0].ID != cfg.SoundOrbSpawn {
		t.Fatalf("sounds = %+v, want one orb spawn cue", sounds)
	}
	if again := r.DrainSounds(); len(again) != 0 {
		t.Fatalf("drained queue returned %d more sounds", len(again))
	}
}

func TestAdvanceFirstCallIsZeroDelta(t *testing.T) {
	r := newStartedRound(t, 3)
	r.Advance(5000)
	if clock := systems.GetRound(r.World()).Clock; clock != 0 {
		t.Fatalf("clock after first advance = %v, want 0", clock)
	}
	r.Advance(5016)
	if clock := systems.GetRound(r.World()).Clock; clock != 16 {
		t.Fatalf("clock after second advance = %v, want 16", clock)
	}
}

func TestMoveEasesToTarget(t *testing.T) {
	r := newStartedRound(t, 11)
	holdOrbs(r)
	player := systems.GetPlayer(r.World())
	player.Position.X = 400
	player.TargetX = 400

	y := float64(testHeight - 50)
	r.Swipe(math.NewVec2(400, y), math.NewVec2(450, y))
	for i := 0; i < 60; i++ {
		r.Tick(frame)
	}

	if got := player.Position.X; stdmath.Abs(got-450) > 1 {
		t.Fatalf("player x = %v, want 450±1", got)
	}
	if player.Position.Y != testHeight-cfg.Player.BottomOffset {
		t.Fatalf("player y = %v", player.Position.Y)
	}
}

func TestMoveTargetIsClamped(t *testing.T) {
	r := newStartedRound(t, 11)
	holdOrbs(r)
	player := systems.GetPlayer(r.World())
	player.Position.X = 100

	y := float64(testHeight - 20)
	r.Swipe(math.NewVec2(100, y), math.NewVec2(50, y))
	r.Tick(frame)
	if player.TargetX != cfg.Player.MinX {
		t.Fatalf("target x = %v, want %v", player.TargetX, cfg.Player.MinX)
	}

	player.Position.X = testWidth - 100
	r.Swipe(math.NewVec2(100, y), math.NewVec2(150, y))
	r.Tick(frame)
	if want := testWidth - cfg.Player.MinX; player.TargetX != want {
		t.Fatalf("target x = %v, want %v", player.TargetX, want)
	}
}

func TestThrowFacingResetsAfterDelay(t *testing.T) {
	r := newStartedRound(t, 5)
	holdOrbs(r)
	player := systems.GetPlayer(r.World())

	r.Swipe(math.NewVec2(480, 560), math.NewVec2(480, 460))
	r.Tick(frame)
	if player.Facing != cfg.FacingFront {
		t.Fatal("player should face front right after a throw")
	}
	if n := count(r.World(), tags.Drop); n != 1 {
		t.Fatalf("drops = %d, want 1", n)
	}

	r.Tick(cfg.Player.FrontDuration - 1)
	if player.Facing != cfg.FacingFront {
		t.Fatal("facing reset fired early")
	}
	r.Tick(1)
	if player.Facing != cfg.FacingBack {
		t.Fatal("facing did not reset after the delay")
	}
}

func TestOrbCatchFillsMeterAndArmsSuper(t *testing.T) {
	r := newStartedRound(t, 9)
	holdOrbs(r)
	w := r.World()
	round := systems.GetRound(w)
	round.Sunlight = 80
	player := systems.GetPlayer(w)

	orb := factory.CreateOrb(w, player.Position.X)
	components.Orb.Get(orb).Position.Y = testHeight - cfg.Orb.CatchHeight - 1
	r.Tick(frame)

	if round.Sunlight != cfg.Round.MaxSunlight || !round.SuperReady {
		t.Fatalf("sunlight = %v ready = %v, want full and ready", round.Sunlight, round.SuperReady)
	}
	if n := count(w, tags.Orb); n != 0 {
		t.Fatalf("orbs after catch = %d, want 0", n)
	}
	if n := count(w, tags.Particle); n != cfg.Particles.OrbCatch.Count {
		t.Fatalf("particles = %d, want %d", n, cfg.Particles.OrbCatch.Count)
	}
}

func TestMissedOrbDrainsLivingPlants(t *testing.T) {
	r := newStartedRound(t, 9)
	holdOrbs(r)
	w := r.World()
	player := systems.GetPlayer(w)

	orb := factory.CreateOrb(w, player.Position.X+300)
	components.Orb.Get(orb).Position.Y = testHeight - cfg.Orb.MissHeight - 1
	r.Tick(0)

	for _, p := range plants(w) {
		if want := cfg.Plant.MaxThirst - cfg.Orb.MissPenalty; p.Thirst != want {
			t.Fatalf("thirst after miss = %v, want %v", p.Thirst, want)
		}
	}
}

func TestSuperThrowWatersEveryPlant(t *testing.T) {
	r := newStartedRound(t, 21)
	holdOrbs(r)
	w := r.World()
	round := systems.GetRound(w)
	round.AddSunlight(cfg.Round.MaxSunlight, cfg.Round.MaxSunlight)

	ps := plants(w)
	for _, p := range ps {
		p.Thirst = 40
	}

	r.Swipe(math.NewVec2(480, 560), math.NewVec2(480, 400))
	r.Tick(0)

	if round.Score != cfg.Super.Bonus {
		t.Fatalf("score = %d, want %d", round.Score, cfg.Super.Bonus)
	}
	if round.SuperReady || round.Sunlight != 0 {
		t.Fatal("super charge not consumed")
	}
	if got, want := count(w, tags.Particle), cfg.Particles.SuperRain.Count*len(ps); got != want {
		t.Fatalf("particles = %d, want %d", got, want)
	}
	for _, p := range ps {
		if p.Thirst != cfg.Plant.MaxThirst || p.Grow != 1 {
			t.Fatalf("plant after super = %+v", p)
		}
	}
	if n := count(w, tags.Drop); n != 0 {
		t.Fatalf("a super throw should not launch a drop, got %d", n)
	}
}

func TestSecondSwipeAfterSuperIsNormalThrow(t *testing.T) {
	r := newStartedRound(t, 21)
	holdOrbs(r)
	w := r.World()
	round := systems.GetRound(w)
	round.AddSunlight(cfg.Round.MaxSunlight, cfg.Round.MaxSunlight)

	r.Swipe(math.NewVec2(480, 560), math.NewVec2(480, 400))
	r.Swipe(math.NewVec2(480, 560), math.NewVec2(480, 400))
	r.Tick(0)

	if round.Score != cfg.Super.Bonus {
		t.Fatalf("score = %d, want exactly one super bonus", round.Score)
	}
	if n := count(w, tags.Drop); n != 1 {
		t.Fatalf("drops = %d, want 1 from the second swipe", n)
	}
}

func TestDropWatersPlantOnce(t *testing.T) {
	r := newStartedRound(t, 13)
	holdOrbs(r)
	w := r.World()
	target := plants(w)[0]
	target.Thirst = 30

	space := components.Space.Get(r.entry)
	factory.CreateDrop(w, space, target.Position, math.NewVec2(0, 0))
	r.Tick(0)

	round := systems.GetRound(w)
	if round.Score != cfg.Plant.WaterScore {
		t.Fatalf("score = %d, want %d", round.Score, cfg.Plant.WaterScore)
	}
	if target.Thirst != cfg.Plant.MaxThirst || target.Grow != 1 {
		t.Fatalf("target after hit = %+v", target)
	}
	if n := count(w, tags.Drop); n != 0 {
		t.Fatalf("drops after hit = %d, want 0", n)
	}
	if n := count(w, tags.Particle); n != cfg.Particles.Splash.Count {
		t.Fatalf("splash particles = %d, want %d", n, cfg.Particles.Splash.Count)
	}

	r.Tick(frame)
	if round.Score != cfg.Plant.WaterScore {
		t.Fatalf("score changed after the drop was removed: %d", round.Score)
	}

	var splash bool
	for _, s := range r.DrainSounds() {
		if s.ID == cfg.SoundSplash {
			splash = true
			if s.Freq > cfg.Audio.Splash.Freq || s.Freq < cfg.Audio.Splash.Freq-cfg.Audio.Splash.FreqJit {
				t.Fatalf("splash freq = %v", s.Freq)
			}
		}
	}
	if !splash {
		t.Fatal("missing splash sound")
	}
}

func TestDropIgnoresDeadPlants(t *testing.T) {
	r := newStartedRound(t, 13)
	holdOrbs(r)
	w := r.World()
	target := plants(w)[0]
	target.Alive = false
	target.Thirst = 0

	factory.CreateDrop(w, components.Space.Get(r.entry), target.Position, math.NewVec2(0, 0))
	r.Tick(0)

	if target.Alive || target.Thirst != 0 {
		t.Fatalf("dead plant revived: %+v", target)
	}
	if n := count(w, tags.Drop); n != 1 {
		t.Fatalf("drops = %d, want the drop to pass through", n)
	}
}

func TestRoundEndsAfterSixtySecondsWithoutInput(t *testing.T) {
	var summaries []Summary
	r := NewRound(Options{
		Seed:       17,
		Width:      testWidth,
		Height:     testHeight,
		OnRoundEnd: func(s Summary) { summaries = append(summaries, s) },
	})
	r.Start()

	for i := 0; i < 60; i++ {
		if r.Ended() {
			t.Fatalf("round ended early at tick %d", i)
		}
		r.Tick(1000)
	}
	if !r.Ended() {
		t.Fatal("round still running after 60s")
	}
	for _, p := range plants(r.World()) {
		if p.Alive || p.Thirst != 0 {
			t.Fatalf("plant survived without water: %+v", p)
		}
	}

	// ticks after the end change nothing and do not signal again
	r.Tick(1000)
	r.Tick(1000)
	if len(summaries) != 1 {
		t.Fatalf("round end signaled %d times, want 1", len(summaries))
	}
	if summaries[0].PlantsSurvived != 0 || summaries[0].PlantsTotal == 0 {
		t.Fatalf("summary = %+v", summaries[0])
	}
	if tl := systems.TimeLeftClamped(systems.GetRound(r.World())); tl != 0 {
		t.Fatalf("displayed time left = %v, want 0", tl)
	}
}

func TestRestartMatchesFreshStart(t *testing.T) {
	ends := 0
	r := NewRound(Options{Seed: 23, Width: testWidth, Height: testHeight, OnRoundEnd: func(Summary) { ends++ }})
	r.Start()
	r.Restart()
	if st := r.State(); st != cfg.RoundRunning {
		t.Fatalf("restart while running changed state to %v", st)
	}

	r.Swipe(math.NewVec2(480, 560), math.NewVec2(480, 400))
	for i := 0; i < 61; i++ {
		r.Tick(1000)
	}
	if !r.Ended() {
		t.Fatal("round should have ended")
	}
	r.Start()
	if !r.Ended() {
		t.Fatal("Start must not restart an ended round")
	}

	r.Restart()
	w := r.World()
	round := systems.GetRound(w)
	if round.State != cfg.RoundRunning || round.Score != 0 || round.Sunlight != 0 || round.SuperReady {
		t.Fatalf("meters after restart = %+v", round)
	}
	if round.TimeLeft != cfg.Round.Duration || round.Clock != 0 || !round.OrbEligible || round.EndSignaled {
		t.Fatalf("timers after restart = %+v", round)
	}
	for _, tag := range []donburi.IComponentType{tags.Drop, tags.Orb, tags.Particle} {
		if n := count(w, tag); n != 0 {
			t.Fatalf("%d leftover entities after restart", n)
		}
	}
	if n := count(w, tags.Player); n != 1 {
		t.Fatalf("players = %d, want 1", n)
	}
	player := systems.GetPlayer(w)
	if player.Position.X != testWidth/2 || player.TargetX != testWidth/2 || player.Facing != cfg.FacingBack {
		t.Fatalf("player after restart = %+v", player)
	}
	ps := plants(w)
	if len(ps) < cfg.Plant.MinCount || len(ps) > cfg.Plant.MaxCount {
		t.Fatalf("plants after restart = %d", len(ps))
	}
	for _, p := range ps {
		if !p.Alive || p.Thirst != cfg.Plant.MaxThirst {
			t.Fatalf("plant after restart = %+v", p)
		}
	}

	for i := 0; i < 60; i++ {
		r.Tick(1000)
	}
	if ends != 2 {
		t.Fatalf("round end signaled %d times over two rounds, want 2", ends)
	}
}

func TestInvariantsHoldUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		r := newStartedRound(t, seed)
		w := r.World()
		rng := rand.New(rand.NewSource(seed * 97))
		dead := map[donburi.Entity]bool{}

		for tick := 0; !r.Ended(); tick++ {
			if tick > 10000 {
				t.Fatal("round never ended")
			}
			if rng.Intn(4) == 0 {
				start := math.NewVec2(rng.Float64()*testWidth, rng.Float64()*testHeight)
				end := math.NewVec2(start.X+rng.Float64()*400-200, start.Y+rng.Float64()*400-300)
				r.Swipe(start, end)
			}
			r.Tick(frame)

			round := systems.GetRound(w)
			if round.Sunlight < 0 || round.Sunlight > cfg.Round.MaxSunlight {
				t.Fatalf("seed %d: sunlight %v out of range", seed, round.Sunlight)
			}
			if round.SuperReady && round.Sunlight != cfg.Round.MaxSunlight {
				t.Fatalf("seed %d: super ready at %v", seed, round.Sunlight)
			}
			if n := count(w, tags.Orb); n > 1 {
				t.Fatalf("seed %d: %d orbs", seed, n)
			}
			tags.Plant.Each(w, func(e *donburi.Entry) {
				p := components.Plant.Get(e)
				if p.Thirst < 0 || p.Thirst > cfg.Plant.MaxThirst {
					t.Fatalf("seed %d: thirst %v out of range", seed, p.Thirst)
				}
				if dead[e.Entity()] && (p.Alive || p.Thirst != 0) {
					t.Fatalf("seed %d: dead plant came back: %+v", seed, p)
				}
				if !p.Alive {
					dead[e.Entity()] = true
				}
			})
		}
		r.DrainSounds()
	}
}

func TestFrameIsDeterministic(t *testing.T) {
	r := newStartedRound(t, 31)
	r.Tick(frame)
	a := r.Frame(render.NoImages{})
	b := r.Frame(render.NoImages{})
	if len(a) == 0 || !reflect.DeepEqual(a, b) {
		t.Fatal("frames built from the same state differ")
	}
}

func TestResizeKeepsCollisionsWorking(t *testing.T) {
	r := newStartedRound(t, 13)
	holdOrbs(r)
	r.Resize(1280, 720)
	w := r.World()

	if pf := systems.GetPlayfield(w); pf.Width != 1280 || pf.Height != 720 {
		t.Fatalf("playfield after resize = %+v", pf)
	}
	r.Tick(frame)
	if y := systems.GetPlayer(w).Position.Y; y != 720-cfg.Player.BottomOffset {
		t.Fatalf("player y after resize = %v", y)
	}

	target := plants(w)[0]
	target.Thirst = 30
	factory.CreateDrop(w, components.Space.Get(r.entry), target.Position, math.NewVec2(0, 0))
	r.Tick(0)
	if target.Thirst != cfg.Plant.MaxThirst {
		t.Fatal("drop did not hit a plant after resize")
	}
}

func TestResizeShrinkKeepsOldPlantsHittable(t *testing.T) {
	r := newStartedRound(t, 13)
	holdOrbs(r)
	w := r.World()

	edge := components.Plant.Get(factory.CreatePlant(w, components.Space.Get(r.entry), math.NewVec2(870, 300)))
	edge.Thirst = 30

	r.Resize(800, testHeight)
	factory.CreateDrop(w, components.Space.Get(r.entry), edge.Position, math.NewVec2(0, 0))
	r.Tick(0)

	if edge.Thirst != cfg.Plant.MaxThirst {
		t.Fatalf("thirst = %v, drop at a plant outside the shrunk playfield was missed", edge.Thirst)
	}
}

func TestDropCulling(t *testing.T) {
	tests := []struct {
		name string
		pos  math.Vec2
		life float64
		want int
	}{
		{"in bounds with life left", math.NewVec2(480, 600), cfg.Drop.Life, 1},
		{"life runs out", math.NewVec2(480, 600), 10, 0},
		{"life exactly spent", math.NewVec2(480, 600), frame, 0},
		{"on the bottom margin", math.NewVec2(480, testHeight+80), cfg.Drop.Life, 1},
		{"below the bottom margin", math.NewVec2(480, testHeight+81), cfg.Drop.Life, 0},
		{"on the left margin", math.NewVec2(-120, 600), cfg.Drop.Life, 1},
		{"left of the left margin", math.NewVec2(-121, 600), cfg.Drop.Life, 0},
		{"right of the right margin", math.NewVec2(testWidth+121, 600), cfg.Drop.Life, 0},
		{"out of bounds and out of life together", math.NewVec2(testWidth+121, 600), 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newStartedRound(t, 29)
			holdOrbs(r)
			w := r.World()
			space := components.Space.Get(r.entry)

			drop := factory.CreateDrop(w, space, tt.pos, math.NewVec2(0, 0))
			components.Drop.Get(drop).Life = tt.life
			r.Tick(frame)

			if n := count(w, tags.Drop); n != tt.want {
				t.Fatalf("drops = %d, want %d", n, tt.want)
			}
			registered := 0
			for _, o := range space.Objects() {
				if o.HasTags(tags.ResolvDrop) {
					registered++
				}
			}
			if registered != tt.want {
				t.Fatalf("drop hit boxes = %d, want %d", registered, tt.want)
			}
			if score := systems.GetRound(w).Score; score != 0 {
				t.Fatalf("score = %d, culled drops must not score", score)
			}
		})
	}
}

func TestOrbRespawnWaitsForCooldown(t *testing.T) {
	r := newStartedRound(t, 17)
	w := r.World()
	round := systems.GetRound(w)

	r.Tick(frame)
	orbEntry, ok := components.Orb.First(w)
	if !ok {
		t.Fatal("first orb missing")
	}
	spawnedAt := round.LastOrbSpawn

	// Send the orb past the miss line away from the player
	orb := components.Orb.Get(orbEntry)
	orb.Position = math.NewVec2(systems.GetPlayer(w).Position.X+300, testHeight)
	r.Tick(frame)
	if n := count(w, components.Orb); n != 0 {
		t.Fatalf("orbs after the miss = %d", n)
	}
	if round.Clock-spawnedAt >= cfg.Orb.Cooldown {
		t.Fatalf("orb resolved too late for this test: clock %v", round.Clock)
	}

	for round.Clock+frame-spawnedAt < cfg.Orb.Cooldown {
		r.Tick(frame)
		if n := count(w, components.Orb); n != 0 {
			t.Fatalf("orb respawned at clock %v, %v ms after the last spawn", round.Clock, round.Clock-spawnedAt)
		}
	}

	r.Tick(frame)
	if n := count(w, components.Orb); n != 1 {
		t.Fatalf("orbs once the cooldown passed = %d, want 1", n)
	}
	if round.LastOrbSpawn != round.Clock {
		t.Fatalf("last spawn = %v, want %v", round.LastOrbSpawn, round.Clock)
	}
}
