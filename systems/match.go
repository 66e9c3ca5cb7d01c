package systems

import (
	"log"

	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/systems/factory"
	"github.com/automoto/animevent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch counts ticks and ends the duel on a knockout or the tick limit.
func UpdateMatch(e *ecs.ECS) {
	match := factory.GetMatch(e)
	if match.Ended {
		return
	}
	match.Ticks++

	standing := 0
	var last string
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if m := components.State.Get(entry).Machine; m != nil && !m.Destroyed() {
			standing++
			last = components.Character.Get(entry).Name
		}
	})

	switch {
	case standing <= 1:
		match.Ended = true
		match.Winner = last
		log.Printf("[match] over after %d ticks, winner %q", match.Ticks, last)
	case match.Limit > 0 && match.Ticks >= match.Limit:
		match.Ended = true
		log.Printf("[match] tick limit %d reached", match.Limit)
	}
}

// IsMatchFinished reports whether the duel has ended.
func IsMatchFinished(e *ecs.ECS) bool { return matchEnded(e) }

func matchEnded(e *ecs.ECS) bool { return factory.GetMatch(e).Ended }
