package processors

import (
	"log"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
)

// Dispatcher routes one state's schedule to the processors. A dispatcher
// lives exactly as long as the state that owns it.
type Dispatcher struct {
	Movement  *Movement
	Rotation  *Rotation
	Attack    *Attack
	Effect    *Effect
	Camera    *CameraAnimation
	QTE       *QTE
	Cancel    *Cancel
	Buffered  *BufferedAction
	dodgeOpen bool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Movement: &Movement{},
		Rotation: &Rotation{},
		Attack:   &Attack{},
		Effect:   &Effect{},
		Camera:   &CameraAnimation{},
		QTE:      &QTE{},
		Cancel:   &Cancel{},
		Buffered: &BufferedAction{},
	}
}

// Processors lists the processors in kind order.
func (d *Dispatcher) Processors() []Processor {
	return []Processor{d.Movement, d.Rotation, d.Attack, d.Effect, d.Camera, d.QTE, d.Cancel, d.Buffered}
}

func (d *Dispatcher) processor(k events.Kind) Processor {
	switch k {
	case events.KindMovement:
		return d.Movement
	case events.KindRotation:
		return d.Rotation
	case events.KindAttack:
		return d.Attack
	case events.KindEffect:
		return d.Effect
	case events.KindCameraAnimation:
		return d.Camera
	case events.KindQTE:
		return d.QTE
	case events.KindCancel:
		return d.Cancel
	case events.KindBufferedAction:
		return d.Buffered
	}
	return nil
}

// Dispatch runs one frame of s at f.Time. Events whose window contains the
// time are processed in declaration order, all others are reset. The pass
// stops at the first immediate transition request.
func (d *Dispatcher) Dispatch(f *Frame, s *events.Schedule) Result {
	var res Result
	d.setDodgeWindow(f, dodgeWindowOpen(s, f.Time))
	for _, e := range s.Entries() {
		if !e.Event.Span().Contains(f.Time) {
			d.Reset(f, e.Key)
			continue
		}
		d.process(f, e, &res)
		if res.Transition != nil {
			if config.Debug.LogEvents {
				log.Printf("[events] %s %s requests %s", f.Actor.Name, e.Key, res.Transition.Action)
			}
			break
		}
	}
	return res
}

func (d *Dispatcher) process(f *Frame, e events.Entry, res *Result) {
	switch ev := e.Event.(type) {
	case *events.MovementEvent:
		d.Movement.Process(f, e.Key, ev)
	case *events.RotationEvent:
		d.Rotation.Process(f, e.Key, ev)
	case *events.AttackEvent:
		d.Attack.Process(f, e.Key, ev)
	case *events.EffectEvent:
		d.Effect.Process(f, e.Key, ev)
	case *events.CameraAnimationEvent:
		d.Camera.Process(f, e.Key, ev)
	case *events.QTEEvent:
		d.QTE.Process(f, e.Key, ev, res)
	case *events.CancelEvent:
		d.Cancel.Process(f, e.Key, ev, res)
	case *events.BufferedActionEvent:
		d.Buffered.Process(f, e.Key, ev)
	}
}

// Reset tears down the instance for key if it is live.
func (d *Dispatcher) Reset(f *Frame, key events.Key) {
	if p := d.processor(key.Kind); p != nil {
		p.Reset(f, key)
	}
}

// Sweep resets every live instance and closes the dodge window. It is the
// state exit contract and runs whether or not windows closed naturally.
func (d *Dispatcher) Sweep(f *Frame) {
	for _, p := range d.Processors() {
		p.Sweep(f)
	}
	d.setDodgeWindow(f, false)
}

// Active reports whether key has a live instance.
func (d *Dispatcher) Active(key events.Key) bool {
	p := d.processor(key.Kind)
	return p != nil && p.Active(key)
}

// Live returns the number of live instances across all kinds.
func (d *Dispatcher) Live() int {
	n := 0
	for _, p := range d.Processors() {
		n += p.Live()
	}
	return n
}

func (d *Dispatcher) setDodgeWindow(f *Frame, open bool) {
	if open == d.dodgeOpen {
		return
	}
	d.dodgeOpen = open
	f.Actor.Body.SetPerfectDodgeWindow(open)
}
