package components

import (
	"github.com/automoto/animevent/events"
	"github.com/yohamta/donburi"
)

// DamageEventData is queued on a victim by the weapon pass and consumed by
// the combat system.
type DamageEventData struct {
	Amount    float64
	Knockback events.Knockback
	Attacker  *donburi.Entry
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
