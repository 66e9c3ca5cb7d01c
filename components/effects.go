package components

import (
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ParticleData is a queued particle spawn. Rendering is left to the
// presentation layer; the entry only tracks where and how long.
type ParticleData struct {
	ID       string
	Position gamemath.Vec3
}

var Particle = donburi.NewComponentType[ParticleData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	Remaining float64 // simulated seconds until destruction
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
