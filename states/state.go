// Package states drives a character through its combat states. Each state
// owns the event schedule of its clip for as long as it is live; the
// machine steps the timeline, dispatches the schedule and arbitrates the
// next state once per frame.
package states

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/processors"
)

// State is one character state.
type State interface {
	ID() config.StateID
	// Clip names the clip played on entry.
	Clip(m *Machine) (name string, speed float64, loop bool)
	Enter(m *Machine)
	Update(m *Machine)
	// Open reports whether buffered actions and the default table may take
	// over this frame without an explicit fall-through.
	Open(m *Machine) bool
	// Default is the state's own transition table. open is true when the
	// state is open or a cancel fell through.
	Default(m *Machine, open bool) config.StateID
	Exit(m *Machine)
}

// Body is the character body as seen by the states.
type Body interface {
	processors.Body
	Grounded() bool
	// Launch sets the vertical speed.
	Launch(speed float64)
}

// Input is the per-frame action source.
type Input interface {
	Pressed(action config.ActionID) bool
	JustPressed(action config.ActionID) bool
}

// base provides the common no-op hooks.
type base struct{}

func (base) Enter(*Machine)     {}
func (base) Update(*Machine)    {}
func (base) Exit(*Machine)      {}
func (base) Open(*Machine) bool { return false }

// clipDef returns the configured speed and loop flag for a clip.
func clipDef(m *Machine, name string) (string, float64, bool) {
	def, ok := config.CharacterClips[m.Character][name]
	if !ok || def.Speed == 0 {
		return name, config.Timeline.DefaultSpeed, def.Loop
	}
	return name, def.Speed, def.Loop
}

// settle returns to the ground state once a one-shot clip has finished.
func settle(m *Machine) config.StateID {
	if !m.Timeline.IsFinished() {
		return config.StateNone
	}
	if !m.Body.Grounded() {
		return config.StateFall
	}
	return config.StateRoot
}
