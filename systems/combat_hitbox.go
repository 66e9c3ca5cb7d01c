package systems

import (
	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapons runs the collision pass: every weapon follows its holder,
// and an armed weapon overlapping another fighter's hurtbox registers one
// hit and queues damage on the victim. Must run AFTER UpdateCharacters so
// the attack processors read the result on the next frame.
func UpdateWeapons(ecs *ecs.ECS) {
	tags.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		weapon := components.Weapon.Get(e)
		weapon.BeginPass()
		weapon.Place()
		if !weapon.Armed() || weapon.Owner == nil || !weapon.Owner.Valid() {
			return
		}
		if owner := components.State.Get(weapon.Owner).Machine; owner == nil || owner.Destroyed() {
			return
		}

		// Efficient collision check using resolv space
		check := weapon.Object.Check(0, 0, tags.ResolvHurtbox)
		if check == nil {
			return
		}
		for _, obj := range check.Objects {
			victim, ok := obj.Data.(*donburi.Entry)
			if !ok || !shouldHitTarget(weapon, victim, obj) {
				continue
			}
			applyHit(weapon, victim)
			// One hit per arming
			return
		}
	})
}

func shouldHitTarget(weapon *components.WeaponData, target *donburi.Entry, targetObject *resolv.Object) bool {
	// Don't hit the owner of the weapon
	if target.Entity() == weapon.Owner.Entity() {
		return false
	}
	if !target.Valid() || !target.HasComponent(components.State) {
		return false
	}
	if m := components.State.Get(target).Machine; m == nil || m.Destroyed() {
		return false
	}
	// Check only narrows by cell; require the boxes to overlap
	return targetObject.HasTags(tags.ResolvHurtbox) && overlaps(weapon.Object, targetObject)
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func applyHit(weapon *components.WeaponData, victim *donburi.Entry) {
	weapon.RegisterHit()
	attack := weapon.Attack()

	dmg := components.DamageEventData{Attacker: weapon.Owner}
	if attack != nil {
		dmg.Amount = attack.Damage
		dmg.Knockback = attack.Knockback
	}
	if victim.HasComponent(components.DamageEvent) {
		// Stack with a hit already queued this frame
		queued := components.DamageEvent.Get(victim)
		queued.Amount += dmg.Amount
		queued.Knockback = dmg.Knockback
		queued.Attacker = dmg.Attacker
		return
	}
	donburi.Add(victim, components.DamageEvent, &dmg)
}
