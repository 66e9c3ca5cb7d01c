package factory

import (
	"github.com/automoto/animevent/archetypes"
	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/processors"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/automoto/animevent/states"
	"github.com/automoto/animevent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player fighter at pos facing yaw radians.
func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	setupFighter(ecs, player, "player", tags.ResolvPlayer, pos, yaw)
	components.Input.SetValue(player, components.InputData{Method: components.InputKeyboard})
	return player
}

// CreateScriptedPlayer spawns a player whose input replays presses.
func CreateScriptedPlayer(ecs *ecs.ECS, pos gamemath.Vec3, yaw float64, presses []components.ScriptedPress) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs, components.Script)
	setupFighter(ecs, player, "player", tags.ResolvPlayer, pos, yaw)
	components.Input.SetValue(player, components.InputData{Method: components.InputScripted})
	components.Script.SetValue(player, components.ScriptData{Presses: presses})
	return player
}

// CreateEnemy spawns a bot-driven fighter.
func CreateEnemy(ecs *ecs.ECS, pos gamemath.Vec3, yaw float64, difficulty cfg.BotDifficulty) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	setupFighter(ecs, enemy, "enemy", tags.ResolvEnemy, pos, yaw)
	components.Input.SetValue(enemy, components.InputData{Method: components.InputBot})
	components.Bot.SetValue(enemy, components.BotData{
		Difficulty:    difficulty,
		DecisionTimer: cfg.Bot.Difficulties[difficulty].ReactionDelay,
	})
	return enemy
}

func setupFighter(ecs *ecs.ECS, e *donburi.Entry, character, resolvTag string, pos gamemath.Vec3, yaw float64) {
	size := cfg.Combat.HurtboxRadius * 2
	obj := resolv.NewObject(pos.X-size/2, pos.Z-size/2, size, size, tags.ResolvHurtbox, resolvTag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	components.Character.SetValue(e, components.NewCharacterData(character, pos, yaw))
	body := components.Character.Get(e)
	body.Hurtbox = obj

	components.Health.SetValue(e, components.HealthData{
		Current: cfg.Fighter.Health,
		Max:     cfg.Fighter.Health,
	})

	components.Animation.SetValue(e, components.NewAnimationData(character))
	anim := components.Animation.Get(e)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	actor := &processors.Actor{
		Name:      character,
		Weapon:    CreateWeapon(ecs, e, body),
		Audio:     SoundQueue{ECS: ecs},
		Particles: ParticleSpawner{ECS: ecs},
	}
	if cam, ok := components.Camera.First(ecs.World); ok {
		actor.Camera = components.CameraRig{Entry: cam}
	}

	sim := GetSimulation(ecs)
	lib := GetContent(ecs).Library
	input := components.Input.Get(e)
	m := states.NewMachine(character, actor, body, input, anim.Timeline, sim.Context, lib)
	components.State.SetValue(e, components.StateData{Machine: m, Actor: actor})
}

// CreateWeapon spawns the weapon held by owner.
func CreateWeapon(ecs *ecs.ECS, owner *donburi.Entry, holder *components.CharacterData) *components.WeaponData {
	weapon := archetypes.Weapon.Spawn(ecs)

	size := cfg.Fighter.WeaponSize
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvWeapon)
	obj.Data = weapon
	components.Object.SetValue(weapon, components.ObjectData{Object: obj})
	components.Weapon.SetValue(weapon, components.WeaponData{
		Owner:  owner,
		Holder: holder,
		Object: obj,
		Grip:   gamemath.Vec3{Y: cfg.Fighter.GripHeight},
		Reach:  cfg.Fighter.WeaponReach,
	})

	w := components.Weapon.Get(weapon)
	w.Place()
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return w
}

// Pair makes a and b each other's opponent.
func Pair(a, b *donburi.Entry) {
	sa, sb := components.State.Get(a), components.State.Get(b)
	sa.Actor.Opponent = components.OpponentView{Body: components.Character.Get(b), Machine: sb.Machine}
	sb.Actor.Opponent = components.OpponentView{Body: components.Character.Get(a), Machine: sa.Machine}
}
