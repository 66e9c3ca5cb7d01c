package processors

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
)

type effectInstance struct {
	satisfied bool // trigger state on the previous frame
	fired     int
	overlay   events.PostEffect // enabled by this instance, or None
	position  gamemath.Vec3
}

// Effect fires presentation effects once per newly satisfied trigger.
type Effect struct {
	arena[effectInstance]
}

func (p *Effect) Kind() events.Kind { return events.KindEffect }

func (p *Effect) Process(f *Frame, key events.Key, ev *events.EffectEvent) {
	inst, entered := p.enter(key)
	inst.position = emission(f, ev.Trigger)
	if ev.Trigger == events.OnActionStart {
		if entered {
			p.fire(f, inst, ev)
		}
		return
	}
	now := TriggerSatisfied(f, ev.Trigger)
	if now && !inst.satisfied {
		p.fire(f, inst, ev)
	}
	inst.satisfied = now
}

func (p *Effect) fire(f *Frame, inst *effectInstance, ev *events.EffectEvent) {
	a := f.Actor
	inst.fired++
	f.Sim.StartHitStop(ev.HitStopDuration)
	if a.Camera != nil && ev.CameraShakeDuration > 0 {
		a.Camera.StartShake(ev.CameraShakeIntensity, ev.CameraShakeDuration)
	}
	if a.Particles != nil && ev.ParticleID != "" {
		a.Particles.Spawn(ev.ParticleID, inst.position)
	}
	if ev.PostEffect != events.PostEffectNone && inst.overlay == events.PostEffectNone {
		f.Sim.Overlays.Enable(ev.PostEffect)
		inst.overlay = ev.PostEffect
	}
	if a.Audio != nil && ev.SoundID != "" {
		a.Audio.PlaySound(ev.SoundID, inst.position)
	}
}

// Fired returns how many times the live instance for key has fired.
func (p *Effect) Fired(key events.Key) int {
	if inst := p.get(key); inst != nil {
		return inst.fired
	}
	return 0
}

// Reset turns off the post effect this instance turned on.
func (p *Effect) Reset(f *Frame, key events.Key) {
	inst, ok := p.exit(key)
	if !ok || inst.overlay == events.PostEffectNone {
		return
	}
	f.Sim.Overlays.Disable(inst.overlay)
}

func (p *Effect) Sweep(f *Frame) { p.sweep(f, p.Reset) }

// emission is the weapon tip on impact, otherwise the character origin
// raised to mid-body.
func emission(f *Frame, t events.Trigger) gamemath.Vec3 {
	a := f.Actor
	if t == events.OnImpact && a.Weapon != nil {
		return a.Weapon.TipPosition().Add(a.Body.Orientation().Rotate(a.Weapon.LocalOffset()))
	}
	return a.Body.Position().Add(gamemath.Up.Scale(config.Effects.OriginOffset))
}
