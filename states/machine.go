package states

import (
	"log"

	"github.com/automoto/animevent/assets/animations"
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/processors"
	"github.com/automoto/animevent/simulation"
)

// rootPriority is the fixed order the ground state checks actions in.
var rootPriority = []config.ActionID{
	config.ActionJump,
	config.ActionDodge,
	config.ActionDash,
	config.ActionAttack,
	config.ActionMagic,
}

// Machine is the per-character state driver. It implements
// processors.Capabilities for its actor.
type Machine struct {
	Character string
	Actor     *processors.Actor
	Body      Body
	Input     Input
	Timeline  *animations.Timeline
	Sim       *simulation.Context

	// OnTransition is called after every state change.
	OnTransition func(from, to config.StateID)

	library    *events.Library
	states     [config.StateCount]State
	current    State
	previous   config.StateID
	schedule   *events.Schedule
	dispatcher *processors.Dispatcher
	stateTime  float64

	combo     int
	stunFor   float64
	readyAt   [config.ActionCount]float64 // simulated clock when the action is off cooldown
	destroyed bool
}

// NewMachine wires a machine to actor and enters the ground state. The
// machine becomes the actor's capability source and the timeline its
// animator.
func NewMachine(character string, actor *processors.Actor, body Body, input Input, tl *animations.Timeline, sim *simulation.Context, lib *events.Library) *Machine {
	m := &Machine{
		Character: character,
		Actor:     actor,
		Body:      body,
		Input:     input,
		Timeline:  tl,
		Sim:       sim,
		library:   lib,
	}
	for _, s := range []State{
		&root{}, &jump{}, &fall{}, &dash{}, &attack{}, &dodge{}, &stun{}, &magic{}, &counter{},
	} {
		m.states[s.ID()] = s
	}
	actor.Caps = m
	actor.Body = body
	actor.Animator = tl
	if actor.Buffer == nil {
		actor.Buffer = processors.NewInputBuffer()
	}
	m.enter(config.StateRoot)
	return m
}

// Update runs one frame: advance the clip, run the state, dispatch the
// schedule and arbitrate.
func (m *Machine) Update() {
	if m.destroyed {
		return
	}
	dt := m.Sim.ScaledDelta()
	m.Timeline.Advance(dt)
	m.stateTime += dt
	m.current.Update(m)

	res := m.dispatcher.Dispatch(m.frame(), m.schedule)
	if next := m.arbitrate(res); next != config.StateNone {
		m.transition(next)
	}
}

// arbitrate picks the next state. Immediate requests from cancels and QTEs
// win outright. Otherwise, when the state is open or a cancel fell
// through, the oldest acceptable buffered action goes first and the
// state's default table last.
func (m *Machine) arbitrate(res processors.Result) config.StateID {
	if res.Transition != nil {
		if to, ok := config.ActionStates[res.Transition.Action]; ok {
			return to
		}
	}
	open := res.FallThrough || m.current.Open(m)
	if open {
		if a, ok := m.Actor.Buffer.Resolve(m.Sim.Clock(), m.ActionStateCondition); ok {
			return config.ActionStates[a]
		}
	}
	return m.current.Default(m, open)
}

// nextAction returns the state of the first executable action in the
// ground priority order.
func (m *Machine) nextAction() config.StateID {
	for _, a := range rootPriority {
		if m.IsActionExecutable(a) {
			return config.ActionStates[a]
		}
	}
	return config.StateNone
}

func (m *Machine) transition(to config.StateID) {
	from := m.current.ID()
	m.dispatcher.Sweep(m.frame())
	m.current.Exit(m)
	m.Actor.Buffer.Transition()
	m.previous = from
	m.enter(to)
	if config.Debug.LogEvents {
		log.Printf("[state] %s: %s -> %s", m.Actor.Name, from, to)
	}
	if m.OnTransition != nil {
		m.OnTransition(from, to)
	}
}

func (m *Machine) enter(id config.StateID) {
	s := m.states[id]
	m.current = s
	m.stateTime = 0
	m.dispatcher = processors.NewDispatcher()
	s.Enter(m)
	name, speed, loop := s.Clip(m)
	m.Timeline.Resume()
	m.Timeline.PlayClip(name, speed, loop)
	m.schedule = m.library.Schedule(m.Character, name)
}

// Force switches state unconditionally, sweeping the live state first.
func (m *Machine) Force(id config.StateID) {
	if m.destroyed || m.states[id] == nil {
		return
	}
	m.transition(id)
}

// Stun forces the hit reaction state for duration seconds.
func (m *Machine) Stun(duration float64) {
	if duration <= 0 {
		duration = config.Combat.DefaultStunDuration
	}
	m.stunFor = duration
	m.Force(config.StateStun)
}

// Destroy sweeps the live state so no global effect outlives the character.
func (m *Machine) Destroy() {
	if m.destroyed {
		return
	}
	m.dispatcher.Sweep(m.frame())
	m.current.Exit(m)
	m.destroyed = true
}

// SetLibrary swaps the schedule source. The live state keeps the schedule
// it entered with.
func (m *Machine) SetLibrary(lib *events.Library) { m.library = lib }

func (m *Machine) frame() *processors.Frame {
	return &processors.Frame{Sim: m.Sim, Actor: m.Actor, Time: m.Timeline.CurrentTime()}
}

func (m *Machine) State() config.StateID              { return m.current.ID() }
func (m *Machine) StateTime() float64                 { return m.stateTime }
func (m *Machine) Previous() config.StateID           { return m.previous }
func (m *Machine) Combo() int                         { return m.combo }
func (m *Machine) Schedule() *events.Schedule         { return m.schedule }
func (m *Machine) Dispatcher() *processors.Dispatcher { return m.dispatcher }
func (m *Machine) Destroyed() bool                    { return m.destroyed }

// IsStunned reports whether the character is in its hit reaction.
func (m *Machine) IsStunned() bool { return !m.destroyed && m.current.ID() == config.StateStun }

func (m *Machine) cooldown(a config.ActionID, seconds float64) {
	m.readyAt[a] = m.Sim.Clock() + seconds
}

func (m *Machine) ready(a config.ActionID) bool {
	return m.Sim.Clock() >= m.readyAt[a]
}

// ActionStateCondition reports whether the current state allows action.
func (m *Machine) ActionStateCondition(a config.ActionID) bool {
	if m.destroyed {
		return false
	}
	cur := m.current.ID()
	if cur == config.StateStun {
		return false
	}
	switch a {
	case config.ActionJump:
		return m.Body.Grounded()
	case config.ActionDodge:
		return m.Body.Grounded() && cur != config.StateDodge
	case config.ActionDash:
		return m.ready(a) && cur != config.StateDash
	case config.ActionAttack:
		return cur != config.StateAttack || m.combo < config.Combat.MaxComboStep
	case config.ActionMagic:
		return m.ready(a) && m.Body.Grounded()
	case config.ActionCounter:
		return cur == config.StateDodge
	}
	return false
}

// ActionTriggerCondition reports whether the action's input fired.
func (m *Machine) ActionTriggerCondition(a config.ActionID) bool {
	return m.Input != nil && m.Input.JustPressed(a)
}

// IsActionExecutable holds when both the state and trigger conditions do.
func (m *Machine) IsActionExecutable(a config.ActionID) bool {
	return m.ActionStateCondition(a) && m.ActionTriggerCondition(a)
}
