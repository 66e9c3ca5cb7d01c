package processors

import (
	"log"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
)

// QTEPhase is the state of one QTE instance.
type QTEPhase int

const (
	QTEDormant QTEPhase = iota
	QTEArmed
	QTESucceeded
	QTEFailed
	QTEDismissed // another QTE of the same character succeeded
)

func (p QTEPhase) String() string {
	switch p {
	case QTEDormant:
		return "Dormant"
	case QTEArmed:
		return "Armed"
	case QTESucceeded:
		return "Succeeded"
	case QTEFailed:
		return "Failed"
	case QTEDismissed:
		return "Dismissed"
	}
	return "Unknown"
}

type qteInstance struct {
	phase     QTEPhase
	remaining float64 // real seconds left on the countdown
	holding   bool    // owns a time-scale hold and the QTE overlays
}

// QTE runs timed prompts under slowed time. The countdown uses the fixed
// tick length so slow motion does not stretch it.
type QTE struct {
	arena[qteInstance]
}

func (p *QTE) Kind() events.Kind { return events.KindQTE }

func (p *QTE) Process(f *Frame, key events.Key, ev *events.QTEEvent, out *Result) {
	inst, _ := p.enter(key)
	switch inst.phase {
	case QTEDormant:
		if !TriggerSatisfied(f, ev.Trigger) || !f.Actor.Caps.ActionStateCondition(ev.Action) {
			return
		}
		p.arm(f, key, inst, ev)
		p.tick(f, key, inst, ev, out)
	case QTEArmed:
		p.tick(f, key, inst, ev, out)
	}
}

func (p *QTE) arm(f *Frame, key events.Key, inst *qteInstance, ev *events.QTEEvent) {
	assist := config.QTE.Assist
	if assist <= 0 {
		assist = 1
	}
	inst.phase = QTEArmed
	inst.remaining = ev.RequiredTime * assist
	f.Sim.StopHitStop()
	f.Sim.TimeScale.Acquire(inst, ev.TimeScale)
	f.Sim.Overlays.Enable(events.PostEffectDepthOfField)
	f.Sim.Overlays.Enable(events.PostEffectVignette)
	inst.holding = true
	if config.Debug.LogEvents {
		log.Printf("[qte] %s %s armed for %.2fs", f.Actor.Name, key, inst.remaining)
	}
}

func (p *QTE) tick(f *Frame, key events.Key, inst *qteInstance, ev *events.QTEEvent, out *Result) {
	if f.Actor.Caps.IsActionExecutable(ev.Action) {
		p.succeed(f, key, inst, ev, out)
		return
	}
	inst.remaining -= f.Sim.FixedDelta
	if inst.remaining <= config.QTE.Epsilon || f.Sim.MatchEnded {
		inst.remaining = 0
		inst.phase = QTEFailed
		p.release(f, inst)
		if config.Debug.LogEvents {
			log.Printf("[qte] %s %s failed", f.Actor.Name, key)
		}
	}
}

func (p *QTE) succeed(f *Frame, key events.Key, inst *qteInstance, ev *events.QTEEvent, out *Result) {
	inst.phase = QTESucceeded
	p.release(f, inst)
	for _, k := range p.keys() {
		other := p.get(k)
		if k == key || other.phase != QTEArmed {
			continue
		}
		other.phase = QTEDismissed
		p.release(f, other)
	}
	out.request(ev.Action, key)
	if config.Debug.LogEvents {
		log.Printf("[qte] %s %s succeeded with %s", f.Actor.Name, key, ev.Action)
	}
}

// release drops the instance's hold on time scale and the overlays.
func (p *QTE) release(f *Frame, inst *qteInstance) {
	if !inst.holding {
		return
	}
	inst.holding = false
	f.Sim.TimeScale.Release(inst)
	f.Sim.Overlays.Disable(events.PostEffectDepthOfField)
	f.Sim.Overlays.Disable(events.PostEffectVignette)
}

// Phase returns the phase of the instance for key; Dormant when inactive.
func (p *QTE) Phase(key events.Key) QTEPhase {
	if inst := p.get(key); inst != nil {
		return inst.phase
	}
	return QTEDormant
}

// Remaining returns the countdown left on the instance for key.
func (p *QTE) Remaining(key events.Key) float64 {
	if inst := p.get(key); inst != nil {
		return inst.remaining
	}
	return 0
}

// Armed returns the number of armed instances.
func (p *QTE) Armed() int {
	n := 0
	for _, inst := range p.live {
		if inst.phase == QTEArmed {
			n++
		}
	}
	return n
}

func (p *QTE) Reset(f *Frame, key events.Key) {
	if inst, ok := p.exit(key); ok {
		p.release(f, inst)
	}
}

func (p *QTE) Sweep(f *Frame) { p.sweep(f, p.Reset) }
