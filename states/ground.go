package states

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
)

// root is grounded locomotion.
type root struct{ base }

func (*root) ID() config.StateID { return config.StateRoot }

func (*root) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipIdle) }

func (*root) Enter(m *Machine) { m.combo = 0 }

func (*root) Update(m *Machine) { walk(m, config.Physics.WalkSpeed) }

func (*root) Open(*Machine) bool { return true }

func (*root) Default(m *Machine, _ bool) config.StateID {
	if !m.Body.Grounded() {
		return config.StateFall
	}
	return m.nextAction()
}

// walk moves along the stick and turns toward it.
func walk(m *Machine, speed float64) {
	stick := m.Body.StickInput().Planar()
	if stick.IsZero() {
		return
	}
	if stick.Len() > 1 {
		stick = stick.Normalize()
	}
	m.Body.Move(stick.Scale(speed * m.Sim.ScaledDelta()))
	m.Body.SetTargetOrientation(gamemath.LookRotation(stick))
}

// jump launches on entry and hands over to fall when the clip ends.
type jump struct{ base }

func (*jump) ID() config.StateID { return config.StateJump }

func (*jump) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipJump) }

func (*jump) Enter(m *Machine) { m.Body.Launch(config.Physics.JumpSpeed) }

func (*jump) Update(m *Machine) { walk(m, config.Physics.WalkSpeed) }

func (*jump) Default(m *Machine, _ bool) config.StateID {
	if m.Timeline.IsFinished() {
		return config.StateFall
	}
	return config.StateNone
}

// fall holds the last frame of its clip until the character lands.
type fall struct{ base }

func (*fall) ID() config.StateID { return config.StateFall }

func (*fall) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipFall) }

func (*fall) Update(m *Machine) {
	walk(m, config.Physics.WalkSpeed)
	switch {
	case m.Body.Grounded():
		m.Timeline.Resume()
	case m.Timeline.IsFinished():
		m.Timeline.Pause()
	}
}

func (*fall) Open(m *Machine) bool { return m.Body.Grounded() }

func (*fall) Default(m *Machine, _ bool) config.StateID {
	if m.Body.Grounded() {
		return config.StateRoot
	}
	return config.StateNone
}

func (*fall) Exit(m *Machine) { m.Timeline.Resume() }
