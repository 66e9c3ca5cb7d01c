package components

import (
	"github.com/automoto/animevent/processors"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/automoto/animevent/states"
	"github.com/yohamta/donburi"
)

// StateData binds a fighter to its state machine and collaborators.
type StateData struct {
	Machine *states.Machine
	Actor   *processors.Actor
}

var State = donburi.NewComponentType[StateData]()

// OpponentView is the read-only view one fighter has of the other.
type OpponentView struct {
	Body    *CharacterData
	Machine *states.Machine
}

func (o OpponentView) Position() gamemath.Vec3 { return o.Body.Position() }

func (o OpponentView) PerfectDodgeWindow() bool { return o.Body.PerfectDodgeWindow() }

func (o OpponentView) IsStunned() bool { return o.Machine != nil && o.Machine.IsStunned() }
