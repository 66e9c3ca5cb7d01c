package processors

import (
	"testing"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
)

func TestInstanceActiveExactlyInWindow(t *testing.T) {
	tests := []struct {
		name string
		evs  []events.Event
	}{
		{
			name: "single",
			evs:  []events.Event{&events.RotationEvent{Window: events.Window{Start: 0.2, End: 0.4}}},
		},
		{
			name: "two disjoint",
			evs: []events.Event{
				&events.MovementEvent{Window: events.Window{Start: 0.1, End: 0.3}},
				&events.EffectEvent{Window: events.Window{Start: 0.5, End: 0.7}},
			},
		},
		{
			name: "overlapping same kind",
			evs: []events.Event{
				&events.EffectEvent{Window: events.Window{Start: 0.2, End: 0.6}},
				&events.EffectEvent{Window: events.Window{Start: 0.4, End: 0.8}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			s := events.NewSchedule("Test", tt.evs...)
			for i := 0; i <= 20; i++ {
				now := float64(i) * 0.05
				h.step(s, now)
				for _, e := range s.Entries() {
					want := e.Event.Span().Contains(now)
					if got := h.d.Active(e.Key); got != want {
						t.Errorf("t=%.2f %s: active=%v, want %v", now, e.Key, got, want)
					}
				}
			}
		})
	}
}

func TestOverlappingEffectsBothFire(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Test",
		&events.EffectEvent{Window: events.Window{Start: 0, End: 0.5}, SoundID: "a"},
		&events.EffectEvent{Window: events.Window{Start: 0, End: 0.5}, SoundID: "b"},
	)
	h.step(s, 0)
	h.step(s, 0.1)
	if len(h.sounds.ids) != 2 || h.sounds.ids[0] != "a" || h.sounds.ids[1] != "b" {
		t.Errorf("Expected both sounds once in declaration order, got %v", h.sounds.ids)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	h := newHarness()
	h.caps.state[config.ActionCounter] = true
	s := events.NewSchedule("Test",
		&events.AttackEvent{Window: events.Window{Start: 0, End: 1}, MaxHitCount: 3, HitInterval: 0.1},
		&events.EffectEvent{Window: events.Window{Start: 0, End: 1}, PostEffect: events.PostEffectVignette},
		&events.QTEEvent{Window: events.Window{Start: 0, End: 1}, Action: config.ActionCounter, RequiredTime: 1, TimeScale: 0.1},
	)
	// Someone else also holds the overlays.
	h.sim.Overlays.Enable(events.PostEffectVignette)
	h.sim.Overlays.Enable(events.PostEffectDepthOfField)

	h.step(s, 0.1)
	if !h.weapon.armed || h.sim.Overlays.Count(events.PostEffectVignette) != 3 {
		t.Fatalf("Expected armed weapon and vignette count 3, got armed=%v count=%d",
			h.weapon.armed, h.sim.Overlays.Count(events.PostEffectVignette))
	}

	f := h.frame(2)
	for i := 0; i < 2; i++ {
		for _, e := range s.Entries() {
			h.d.Reset(f, e.Key)
		}
	}

	if h.weapon.disarms != 1 {
		t.Errorf("Expected one disarm, got %d", h.weapon.disarms)
	}
	if got := h.sim.Overlays.Count(events.PostEffectVignette); got != 1 {
		t.Errorf("Expected vignette count back to 1, got %d", got)
	}
	if got := h.sim.Overlays.Count(events.PostEffectDepthOfField); got != 1 {
		t.Errorf("Expected depth of field count back to 1, got %d", got)
	}
	if h.sim.TimeScale.Scale() != 1.0 {
		t.Errorf("Expected time scale 1.0, got %f", h.sim.TimeScale.Scale())
	}
	if h.d.Live() != 0 {
		t.Errorf("Expected no live instances, got %d", h.d.Live())
	}
}

func TestPerfectDodgeWindowPrecedesAttack(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Test",
		&events.AttackEvent{Window: events.Window{Start: 0.5, End: 0.6}, MaxHitCount: 1},
	)
	lead := config.Combat.PerfectDodgeLead
	tests := []struct {
		t    float64
		want bool
	}{
		{0.5 - lead - 0.05, false},
		{0.5 - lead, true},
		{0.49, true},
		{0.5, false},
		{0.55, false},
	}
	for _, tt := range tests {
		h.step(s, tt.t)
		if h.body.dodgeOpen != tt.want {
			t.Errorf("t=%.2f: dodge window=%v, want %v", tt.t, h.body.dodgeOpen, tt.want)
		}
	}
}

func TestSweepTearsDownEverything(t *testing.T) {
	h := newHarness()
	h.caps.state[config.ActionCounter] = true
	s := events.NewSchedule("Test",
		&events.AttackEvent{Window: events.Window{Start: 0, End: 1}, MaxHitCount: 1, HitInterval: 0.1},
		&events.QTEEvent{Window: events.Window{Start: 0, End: 1}, Action: config.ActionCounter, RequiredTime: 1, TimeScale: 0.2},
		&events.CameraAnimationEvent{Window: events.Window{Start: 0, End: 1}, CameraClip: "orbit", SyncToCharacter: true},
		&events.AttackEvent{Window: events.Window{Start: 1.1, End: 1.3}, MaxHitCount: 1},
	)
	h.step(s, 0.95)
	if h.sim.TimeScale.Scale() != 0.2 || !h.body.dodgeOpen {
		t.Fatalf("Expected slowed time and open dodge window, got scale=%f dodge=%v",
			h.sim.TimeScale.Scale(), h.body.dodgeOpen)
	}

	h.d.Sweep(h.frame(0.95))

	if h.d.Live() != 0 {
		t.Errorf("Expected no live instances, got %d", h.d.Live())
	}
	if h.weapon.armed || h.weapon.trail {
		t.Errorf("Expected weapon cold, got armed=%v trail=%v", h.weapon.armed, h.weapon.trail)
	}
	if h.sim.TimeScale.Scale() != 1.0 || len(h.sim.Overlays.Active()) != 0 {
		t.Errorf("Expected globals restored, got scale=%f overlays=%v",
			h.sim.TimeScale.Scale(), h.sim.Overlays.Active())
	}
	if h.camera.stopped != 1 {
		t.Errorf("Expected synced camera clip stopped, got %d", h.camera.stopped)
	}
	if h.body.dodgeOpen {
		t.Errorf("Expected dodge window closed")
	}
}
