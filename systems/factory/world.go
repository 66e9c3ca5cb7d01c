package factory

import (
	"github.com/automoto/animevent/archetypes"
	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/simulation"
	"github.com/yohamta/donburi/ecs"
)

// GetSimulation returns the singleton simulation context, creating it if needed.
func GetSimulation(ecs *ecs.ECS) *components.SimulationData {
	if _, ok := components.Simulation.First(ecs.World); !ok {
		ent := archetypes.Simulation.Spawn(ecs)
		components.Simulation.SetValue(ent, components.SimulationData{Context: simulation.NewContext()})
	}
	ent, _ := components.Simulation.First(ecs.World)
	return components.Simulation.Get(ent)
}

// GetContent returns the singleton content holder, creating an empty
// library if none was loaded.
func GetContent(ecs *ecs.ECS) *components.ContentData {
	if _, ok := components.Content.First(ecs.World); !ok {
		ent := archetypes.Content.Spawn(ecs)
		components.Content.SetValue(ent, components.ContentData{Library: events.NewLibrary()})
	}
	ent, _ := components.Content.First(ecs.World)
	return components.Content.Get(ent)
}

// CreateContent installs lib as the schedule library, read from dir.
func CreateContent(ecs *ecs.ECS, dir string, lib *events.Library) *components.ContentData {
	content := GetContent(ecs)
	content.Dir = dir
	if lib != nil {
		content.Library = lib
	}
	return content
}

// GetMatch returns the singleton match state, creating it if needed.
func GetMatch(ecs *ecs.ECS) *components.MatchData {
	if _, ok := components.Match.First(ecs.World); !ok {
		archetypes.Match.Spawn(ecs)
	}
	ent, _ := components.Match.First(ecs.World)
	return components.Match.Get(ent)
}
