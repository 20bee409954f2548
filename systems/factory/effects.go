package factory

import (
	"math/rand"

	"github.com/automoto/sunsprout/archetypes"
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnBurst scatters burst.Count particles around centre. Every particle starts moving
// upward with a random horizontal drift.
func SpawnBurst(w donburi.World, r *rand.Rand, centre math.Vec2, burst cfg.BurstConfig) {
	for i := 0; i < burst.Count; i++ {
		p := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(p, components.ParticleData{
			Position: math.NewVec2(
				centre.X+gamemath.Jitter(r, burst.SpreadX),
				centre.Y+gamemath.Jitter(r, burst.SpreadY),
			),
			Velocity: math.NewVec2(
				gamemath.Jitter(r, burst.Speed),
				-r.Float64()*burst.Speed,
			),
			Life: burst.Life,
		})
	}
}
