package factory

import (
	"github.com/automoto/animevent/archetypes"
	"github.com/automoto/animevent/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the arena collision space. Space coordinates are the
// arena X and Z; objects outside [0,width)x[0,height) never collide.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
