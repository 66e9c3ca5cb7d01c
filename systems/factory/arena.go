package factory

import (
	"github.com/automoto/animevent/archetypes"
	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena sizes the collision space to layout, unless one exists, and
// places its pillars.
// A nil layout gives an empty square arena of the configured size.
func CreateArena(ecs *ecs.ECS, layout *leveldata.ArenaLayout) *components.ArenaData {
	arena := components.ArenaData{
		Name:  "default",
		Width: float64(cfg.C.ArenaSize),
		Depth: float64(cfg.C.ArenaSize),
	}
	if layout != nil {
		arena.Name = layout.Name
		arena.Width = layout.Width
		arena.Depth = layout.Depth
	}

	ent := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(ent, arena)

	if _, ok := components.Space.First(ecs.World); !ok {
		cell := cfg.C.ArenaCell
		if cell <= 0 {
			cell = 1
		}
		CreateSpace(ecs, int(arena.Width)+cell, int(arena.Depth)+cell, cell, cell)
	}

	if layout != nil {
		for _, p := range layout.Pillars {
			CreateWall(ecs, p.X, p.Z, p.W, p.D)
		}
	}
	return components.Arena.Get(ent)
}

// GetArena returns the singleton arena, creating the default one if needed.
func GetArena(ecs *ecs.ECS) *components.ArenaData {
	if ent, ok := components.Arena.First(ecs.World); ok {
		return components.Arena.Get(ent)
	}
	return CreateArena(ecs, nil)
}
