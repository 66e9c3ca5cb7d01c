package systems

import (
	"math/rand"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Random number generator for bot decision making.
// Uses fixed seed for deterministic replay support.
var rng = rand.New(rand.NewSource(42))

// UpdateBots generates input for bot-controlled fighters.
// Must run BEFORE UpdateCharacters.
func UpdateBots(e *ecs.ECS) {
	if matchEnded(e) {
		return
	}
	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		updateBotAI(e, entry)
	})
}

func updateBotAI(e *ecs.ECS, botEntry *donburi.Entry) {
	bot := components.Bot.Get(botEntry)
	input := components.Input.Get(botEntry)
	body := components.Character.Get(botEntry)
	tuning := cfg.Bot.Difficulties[bot.Difficulty]

	input.Swap()
	body.Stick = input.Stick

	target, ok := findTarget(e, botEntry)
	if !ok {
		return
	}
	targetBody := components.Character.Get(target)
	toTarget := targetBody.Position().Sub(body.Position()).Planar()
	dist := toTarget.Len()

	// Chase while out of reach
	if dist > tuning.AttackRange && dist < tuning.ChaseRange {
		input.Stick = toTarget.Normalize()
		body.Stick = input.Stick
	}

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
		return
	}
	bot.DecisionTimer = tuning.ReactionDelay
	bot.Distance = dist

	// PRIORITY 1: dodge an attack that is about to land
	if targetBody.PerfectDodgeWindow() && dist <= cfg.Combat.DodgeProximity {
		if rng.Float64() < tuning.DodgeChance {
			input.Current[cfg.ActionDodge] = true
			return
		}
	}

	// PRIORITY 2: attack in range
	if dist <= tuning.AttackRange {
		input.Current[cfg.ActionAttack] = true
	}
}

// findTarget returns the nearest other fighter.
func findTarget(e *ecs.ECS, self *donburi.Entry) (*donburi.Entry, bool) {
	pos := components.Character.Get(self).Position()
	var best *donburi.Entry
	bestDist := 0.0
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if entry.Entity() == self.Entity() {
			return
		}
		if m := components.State.Get(entry).Machine; m != nil && m.Destroyed() {
			return
		}
		d := pos.PlanarDistance(components.Character.Get(entry).Position())
		if best == nil || d < bestDist {
			best, bestDist = entry, d
		}
	})
	return best, best != nil
}
