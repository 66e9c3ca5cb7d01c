package systems

import (
	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/automoto/animevent/systems/factory"
	"github.com/automoto/animevent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacterPhysics integrates velocity, gravity and knockback, turns
// fighters toward their target orientation and keeps them in the arena.
// Frozen during hit-stop.
func UpdateCharacterPhysics(ecs *ecs.ECS) {
	dt := factory.GetSimulation(ecs).ScaledDelta()
	arena := factory.GetArena(ecs)
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Character.Get(e)
		if body.FlashTicks > 0 {
			body.FlashTicks--
		}
		if dt <= 0 {
			return
		}
		integrate(body, arena, dt)
	})
}

func integrate(body *components.CharacterData, arena *components.ArenaData, dt float64) {
	// Knockback decelerates by its own acceleration, otherwise friction applies
	if body.KnockbackFor > 0 {
		body.Velocity = body.Velocity.Add(body.Acceleration.Planar().Scale(dt))
		body.KnockbackFor -= dt
		if body.KnockbackFor <= 0 {
			body.KnockbackFor = 0
			body.Acceleration = gamemath.Vec3{}
		}
	} else {
		body.Velocity = gamemath.ApplyPlanarFriction(body.Velocity, cfg.Physics.Friction*dt)
	}

	// Apply gravity
	if !body.OnGround || body.Velocity.Y > 0 {
		body.Velocity.Y = gamemath.ClampSpeed(body.Velocity.Y-cfg.Physics.Gravity*dt, cfg.Physics.MaxFallSpeed)
	}

	if !body.Velocity.IsZero() {
		body.Move(body.Velocity.Scale(dt))
	}

	pos := body.Position()
	if pos.Y <= cfg.Physics.GroundHeight && body.Velocity.Y <= 0 {
		pos.Y = cfg.Physics.GroundHeight
		body.Velocity.Y = 0
		body.OnGround = true
	} else {
		body.OnGround = false
	}

	// Keep inside the arena
	r := cfg.Combat.HurtboxRadius
	pos.X = clamp(pos.X, r, arena.Width-r)
	pos.Z = clamp(pos.Z, r, arena.Depth-r)
	body.SetPosition(pos)

	body.SetOrientation(body.Orientation().Slerp(body.TargetOrientation(), cfg.Physics.TurnSmoothing))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
