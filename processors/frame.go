package processors

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/automoto/animevent/simulation"
)

// Frame is the input to one dispatch pass.
type Frame struct {
	Sim   *simulation.Context
	Actor *Actor
	Time  float64 // current animation time
}

// Delta is the simulated duration of the frame.
func (f *Frame) Delta() float64 { return f.Sim.ScaledDelta() }

// Transition is an immediate state change requested by a cancel or a
// successful QTE.
type Transition struct {
	Action config.ActionID
	Source events.Key
}

// Result collects what a dispatch pass asks of the state machine.
type Result struct {
	Transition  *Transition
	FallThrough bool // a None cancel opened the state's own transitions
}

func (r *Result) request(action config.ActionID, source events.Key) {
	if r.Transition == nil {
		r.Transition = &Transition{Action: action, Source: source}
	}
}

// TriggerSatisfied evaluates a trigger condition for the frame's actor.
func TriggerSatisfied(f *Frame, t events.Trigger) bool {
	a := f.Actor
	switch t {
	case events.OnActionStart:
		return true
	case events.OnImpact:
		return a.Weapon != nil && a.Weapon.IsHit()
	case events.OnOpponentDodgeWindow:
		if a.Opponent == nil || !a.Opponent.PerfectDodgeWindow() {
			return false
		}
		return a.Body.Position().PlanarDistance(a.Opponent.Position()) <= config.Combat.DodgeProximity
	case events.OnOpponentStunned:
		return a.Opponent != nil && a.Opponent.IsStunned()
	}
	return false
}

func withinProximity(f *Frame) bool {
	opp := f.Actor.Opponent
	if opp == nil {
		return false
	}
	return f.Actor.Body.Position().PlanarDistance(opp.Position()) < config.Combat.ProximityThreshold
}

// towardOpponent is the planar unit direction to the opponent, or zero.
func towardOpponent(f *Frame) gamemath.Vec3 {
	opp := f.Actor.Opponent
	if opp == nil {
		return gamemath.Vec3{}
	}
	return opp.Position().Sub(f.Actor.Body.Position()).Planar().Normalize()
}
