package processors

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
)

type attackInstance struct {
	hits    int
	elapsed float64 // since the weapon was last disarmed
	armed   bool
}

// Attack opens weapon hit windows, arming hit detection once per interval
// until the hit cap is reached.
type Attack struct {
	arena[attackInstance]
}

func (p *Attack) Kind() events.Kind { return events.KindAttack }

func (p *Attack) Process(f *Frame, key events.Key, ev *events.AttackEvent) {
	inst, entered := p.enter(key)
	w := f.Actor.Weapon
	if w == nil {
		return
	}
	if entered {
		// The first frame in window arms immediately.
		inst.elapsed = ev.HitInterval
		w.SetTrailActive(true)
	}
	if inst.armed && w.IsHit() {
		inst.hits++
		inst.armed = false
		inst.elapsed = 0
		w.Disarm()
	}
	if inst.armed && !w.Armed() {
		// Another window on the same weapon closed under this one.
		inst.armed = false
		inst.elapsed = ev.HitInterval
		w.SetTrailActive(true)
	}
	if inst.hits >= ev.MaxHitCount || inst.armed {
		return
	}
	inst.elapsed += f.Delta()
	if inst.elapsed >= ev.HitInterval {
		inst.armed = true
		inst.elapsed = 0
		w.Arm(ev)
	}
}

// HitCount returns the hits recorded by the live instance for key.
func (p *Attack) HitCount(key events.Key) int {
	if inst := p.get(key); inst != nil {
		return inst.hits
	}
	return 0
}

// Reset disarms the weapon and clears the trail whatever the hit count.
func (p *Attack) Reset(f *Frame, key events.Key) {
	if _, ok := p.exit(key); !ok {
		return
	}
	if w := f.Actor.Weapon; w != nil {
		w.Disarm()
		w.SetTrailActive(false)
	}
}

func (p *Attack) Sweep(f *Frame) { p.sweep(f, p.Reset) }

// dodgeWindowOpen reports whether t lies in the perfect-dodge lead before
// any attack window of s. The check does not depend on window activity.
func dodgeWindowOpen(s *events.Schedule, t float64) bool {
	lead := config.Combat.PerfectDodgeLead
	for _, e := range s.Entries() {
		if e.Key.Kind != events.KindAttack {
			continue
		}
		start := e.Event.Span().Start
		if start-lead <= t && t < start {
			return true
		}
	}
	return false
}
