package systems

import (
	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects expires particles on simulated time, so they hang in the
// air during a hit-stop.
func UpdateEffects(ecs *ecs.ECS) {
	updateAutoDestroy(ecs, factory.GetSimulation(ecs).ScaledDelta())
}

// updateAutoDestroy handles entities that should be destroyed after a duration
func updateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
