package systems

import (
	"log"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitFlashTicks is how long a struck fighter flashes.
const hitFlashTicks = 6

// UpdateCombat applies queued damage events: health, knockback and the
// forced hit reaction. A fighter whose health runs out is torn down.
func UpdateCombat(ecs *ecs.ECS) {
	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		hit = append(hit, e)
	}

	match := factory.GetMatch(ecs)
	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)
		applyDamage(ecs, match, e, dmg)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func applyDamage(ecs *ecs.ECS, match *components.MatchData, victim *donburi.Entry, dmg *components.DamageEventData) {
	state := components.State.Get(victim)
	if state.Machine == nil || state.Machine.Destroyed() {
		return
	}
	body := components.Character.Get(victim)
	hp := components.Health.Get(victim)
	hp.Current -= dmg.Amount
	body.FlashTicks = hitFlashTicks

	attackerName := ""
	if dmg.Attacker != nil && dmg.Attacker.Valid() {
		attacker := components.Character.Get(dmg.Attacker)
		attackerName = attacker.Name
		score := match.Score(attackerName)
		score.HitsDealt++
		score.Damage += dmg.Amount
		applyKnockback(body, attacker, dmg.Knockback)
	}

	if cfg.Debug.LogEvents {
		log.Printf("[combat] %s hit %s for %.1f (%.1f left)", attackerName, body.Name, dmg.Amount, hp.Current)
	}

	if hp.Depleted() {
		hp.Current = 0
		knockOut(ecs, state, body)
		if attackerName != "" {
			match.Score(attackerName).KOs++
		}
		return
	}
	state.Machine.Stun(dmg.Knockback.Duration)
}

// applyKnockback converts the attacker-space knockback into world space.
func applyKnockback(body, attacker *components.CharacterData, kb events.Knockback) {
	q := attacker.Orientation()
	v := q.Rotate(kb.Velocity)
	body.Velocity.X = v.X
	body.Velocity.Z = v.Z
	body.Acceleration = q.Rotate(kb.Acceleration)
	body.KnockbackFor = kb.Duration
	if kb.Reaction == events.ReactionLaunch && v.Y > 0 {
		body.Launch(v.Y)
	}
}

// knockOut tears the fighter down so none of its live events outlive it.
func knockOut(ecs *ecs.ECS, state *components.StateData, body *components.CharacterData) {
	state.Machine.Destroy()
	if w, ok := state.Actor.Weapon.(*components.WeaponData); ok {
		w.Disarm()
		w.SetTrailActive(false)
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok && body.Hurtbox != nil {
		components.Space.Get(spaceEntry).Remove(body.Hurtbox)
	}
	log.Printf("[combat] %s knocked out", body.Name)
}
