package simulation

import "github.com/automoto/animevent/events"

// Overlays tracks screen effect toggles with a reference count per effect,
// so overlapping users each undo only their own enable.
type Overlays struct {
	counts [events.PostEffectCount]int
}

func validEffect(p events.PostEffect) bool {
	return p > events.PostEffectNone && p < events.PostEffectCount
}

// Enable adds one reference to p.
func (o *Overlays) Enable(p events.PostEffect) {
	if validEffect(p) {
		o.counts[p]++
	}
}

// Disable removes one reference to p. Disabling an effect that is already
// off does nothing.
func (o *Overlays) Disable(p events.PostEffect) {
	if validEffect(p) && o.counts[p] > 0 {
		o.counts[p]--
	}
}

// Enabled reports whether any reference to p is held.
func (o *Overlays) Enabled(p events.PostEffect) bool {
	return validEffect(p) && o.counts[p] > 0
}

// Count returns the references held on p.
func (o *Overlays) Count(p events.PostEffect) int {
	if !validEffect(p) {
		return 0
	}
	return o.counts[p]
}

// Active lists the enabled effects in declaration order.
func (o *Overlays) Active() []events.PostEffect {
	var out []events.PostEffect
	for p := events.PostEffectNone + 1; p < events.PostEffectCount; p++ {
		if o.counts[p] > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Reset turns every effect off.
func (o *Overlays) Reset() {
	o.counts = [events.PostEffectCount]int{}
}
