package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Plant    = donburi.NewTag().SetName("Plant")
	Drop     = donburi.NewTag().SetName("Drop")
	Orb      = donburi.NewTag().SetName("Orb")
	Particle = donburi.NewTag().SetName("Particle")
	Round    = donburi.NewTag().SetName("Round")
)

// Resolv tags for collision
const (
	ResolvPlant = "plant"
	ResolvDrop  = "drop"
)
