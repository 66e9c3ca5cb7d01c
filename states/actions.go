package states

import "github.com/automoto/animevent/config"

// oneShot plays its clip to the end. A cancel that falls through opens the
// ground action table early.
type oneShot struct{ base }

func (oneShot) Open(m *Machine) bool { return m.Timeline.IsFinished() }

func (oneShot) Default(m *Machine, open bool) config.StateID {
	if open && m.Body.Grounded() {
		if next := m.nextAction(); next != config.StateNone {
			return next
		}
	}
	return settle(m)
}

type dash struct{ oneShot }

func (*dash) ID() config.StateID { return config.StateDash }

func (*dash) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipDash) }

func (*dash) Enter(m *Machine) { m.cooldown(config.ActionDash, config.Combat.DashCooldown) }

type dodge struct{ oneShot }

func (*dodge) ID() config.StateID { return config.StateDodge }

func (*dodge) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipDodge) }

type magic struct{ oneShot }

func (*magic) ID() config.StateID { return config.StateMagic }

func (*magic) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipMagic) }

func (*magic) Enter(m *Machine) { m.cooldown(config.ActionMagic, config.Combat.MagicCooldown) }

type counter struct{ oneShot }

func (*counter) ID() config.StateID { return config.StateCounter }

func (*counter) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipCounter) }

// attack steps through the combo clips. Re-entering from an attack
// advances the combo.
type attack struct{ oneShot }

func (*attack) ID() config.StateID { return config.StateAttack }

func (*attack) Enter(m *Machine) {
	if m.previous == config.StateAttack && m.combo < config.Combat.MaxComboStep {
		m.combo++
		return
	}
	m.combo = 1
}

func (*attack) Clip(m *Machine) (string, float64, bool) {
	step := m.combo
	if step < 1 {
		step = 1
	}
	if step > len(config.AttackClips) {
		step = len(config.AttackClips)
	}
	return clipDef(m, config.AttackClips[step-1])
}

// stun is the hit reaction; it ignores input until its timer runs out.
type stun struct{ base }

func (*stun) ID() config.StateID { return config.StateStun }

func (*stun) Clip(m *Machine) (string, float64, bool) { return clipDef(m, config.ClipStun) }

func (*stun) Open(m *Machine) bool { return m.stateTime >= m.stunFor }

func (*stun) Default(m *Machine, open bool) config.StateID {
	if !open {
		return config.StateNone
	}
	if !m.Body.Grounded() {
		return config.StateFall
	}
	return config.StateRoot
}
