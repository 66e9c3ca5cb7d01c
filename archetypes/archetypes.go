package archetypes

import (
	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.Fighter,
		components.Character,
		components.Object,
		components.Health,
		components.Animation,
		components.State,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Fighter,
		components.Character,
		components.Object,
		components.Health,
		components.Animation,
		components.State,
		components.Input,
		components.Bot,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.AutoDestroy,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
	Content = newArchetype(
		components.Content,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
