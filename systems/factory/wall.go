package factory

import (
	"github.com/automoto/animevent/archetypes"
	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid pillar covering [x,x+w)x[z,z+d) in the XZ plane.
func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, z, w, d, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
