package systems

import (
	"github.com/automoto/sunsprout/components"
	cfg "github.com/automoto/sunsprout/config"
	"github.com/yohamta/donburi"
)

// UpdateParticles integrates particles with a constant downward drift and removes expired ones.
func UpdateParticles(w donburi.World, dt float64) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
		p.Velocity.Y += cfg.Particles.Gravity
		p.Life -= dt
		if p.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
