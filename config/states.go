package config

// StateID identifies a character state.
type StateID int

const (
	StateNone StateID = iota
	StateRoot
	StateJump
	StateFall
	StateDash
	StateAttack
	StateDodge
	StateStun
	StateMagic
	StateCounter
	StateCount // Must be last - used for array sizing
)

var stateNames = [StateCount]string{
	StateNone:    "None",
	StateRoot:    "Root",
	StateJump:    "Jump",
	StateFall:    "Fall",
	StateDash:    "Dash",
	StateAttack:  "Attack",
	StateDodge:   "Dodge",
	StateStun:    "Stun",
	StateMagic:   "Magic",
	StateCounter: "Counter",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "Unknown"
	}
	return stateNames[s]
}
