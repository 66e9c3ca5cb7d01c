package systems

import (
	"github.com/automoto/animevent/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances the shared clock by one fixed tick. It must
// run before any system that reads the scaled delta.
func UpdateSimulation(e *ecs.ECS) {
	sim := factory.GetSimulation(e)
	sim.MatchEnded = factory.GetMatch(e).Ended
	sim.Step(sim.FixedDelta)
}
