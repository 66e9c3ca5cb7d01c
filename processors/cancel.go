package processors

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
)

type cancelInstance struct{}

// Cancel opens an interrupt point for its action.
type Cancel struct {
	arena[cancelInstance]
}

func (p *Cancel) Kind() events.Kind { return events.KindCancel }

func (p *Cancel) Process(f *Frame, key events.Key, ev *events.CancelEvent, out *Result) {
	p.enter(key)
	if ev.Action == config.ActionNone {
		out.FallThrough = true
		return
	}
	if f.Actor.Caps.IsActionExecutable(ev.Action) {
		out.request(ev.Action, key)
	}
}

func (p *Cancel) Reset(_ *Frame, key events.Key) { p.exit(key) }

func (p *Cancel) Sweep(f *Frame) { p.sweep(f, p.Reset) }

type bufferedInstance struct {
	latched bool
}

// BufferedAction latches its action into the character's input buffer
// at most once per window.
type BufferedAction struct {
	arena[bufferedInstance]
}

func (p *BufferedAction) Kind() events.Kind { return events.KindBufferedAction }

func (p *BufferedAction) Process(f *Frame, key events.Key, ev *events.BufferedActionEvent) {
	inst, _ := p.enter(key)
	if inst.latched || f.Actor.Buffer == nil {
		return
	}
	if ev.Action == config.ActionNone || !f.Actor.Caps.ActionTriggerCondition(ev.Action) {
		return
	}
	inst.latched = true
	f.Actor.Buffer.Latch(ev.Action, f.Sim.Clock())
}

// Latched reports whether the live instance for key has latched.
func (p *BufferedAction) Latched(key events.Key) bool {
	inst := p.get(key)
	return inst != nil && inst.latched
}

// Reset forgets the instance; the latched input stays in the buffer.
func (p *BufferedAction) Reset(_ *Frame, key events.Key) { p.exit(key) }

func (p *BufferedAction) Sweep(f *Frame) { p.sweep(f, p.Reset) }
