package systems

import (
	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters runs one frame of every fighter's state machine, the
// player before the enemies.
func UpdateCharacters(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, updateCharacter)
	tags.Enemy.Each(ecs.World, updateCharacter)
}

func updateCharacter(e *donburi.Entry) {
	state := components.State.Get(e)
	if state.Machine == nil || state.Machine.Destroyed() {
		return
	}
	state.Machine.Update()
}
