package processors

import (
	"testing"

	"github.com/automoto/animevent/events"
)

func TestEffectFiresOncePerSatisfiedTrigger(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1", &events.EffectEvent{
		Window:     events.Window{Start: 0, End: 1},
		Trigger:    events.OnImpact,
		SoundID:    "impact",
		ParticleID: "sparks",
	})
	key := s.Entries()[0].Key

	hits := []bool{false, true, true, false, true, true}
	for i, hit := range hits {
		h.weapon.hit = hit
		h.step(s, float64(i)*0.1)
	}
	if got := h.d.Effect.Fired(key); got != 2 {
		t.Errorf("Expected 2 firings, got %d", got)
	}
	if len(h.sounds.ids) != 2 || len(h.sparks.ids) != 2 {
		t.Errorf("Expected 2 sounds and 2 particles, got %v %v", h.sounds.ids, h.sparks.ids)
	}
}

func TestEffectOnActionStartFiresOnEntryOnly(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Magic", &events.EffectEvent{
		Window:               events.Window{Start: 0.1, End: 0.5},
		HitStopDuration:      0.05,
		CameraShakeDuration:  0.2,
		CameraShakeIntensity: 1,
		PostEffect:           events.PostEffectRadialBlur,
	})
	h.step(s, 0)
	h.step(s, 0.1)
	if !h.sim.HitStop.Active() || h.camera.shakes != 1 {
		t.Fatalf("Expected hit-stop and shake on entry")
	}
	if !h.sim.Overlays.Enabled(events.PostEffectRadialBlur) {
		t.Fatalf("Expected radial blur on")
	}
	h.step(s, 0.2)
	h.step(s, 0.3)
	if h.camera.shakes != 1 {
		t.Errorf("Expected one shake, got %d", h.camera.shakes)
	}
	h.step(s, 0.6)
	if h.sim.Overlays.Enabled(events.PostEffectRadialBlur) {
		t.Errorf("Expected radial blur off after window exit")
	}
}

func TestEffectDodgeWindowNeedsProximity(t *testing.T) {
	tests := []struct {
		name   string
		dist   float64
		dodge  bool
		wanted int
	}{
		{name: "close and vulnerable", dist: 2, dodge: true, wanted: 1},
		{name: "far", dist: 20, dodge: true, wanted: 0},
		{name: "not vulnerable", dist: 2, dodge: false, wanted: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.opp.pos.Z = tt.dist
			h.opp.dodge = tt.dodge
			s := events.NewSchedule("Dodge", &events.EffectEvent{
				Window:  events.Window{Start: 0, End: 1},
				Trigger: events.OnOpponentDodgeWindow,
			})
			h.step(s, 0.1)
			h.step(s, 0.2)
			if got := h.d.Effect.Fired(s.Entries()[0].Key); got != tt.wanted {
				t.Errorf("Expected %d firings, got %d", tt.wanted, got)
			}
		})
	}
}

func TestCameraAnimationLatches(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Counter",
		&events.CameraAnimationEvent{
			Window:     events.Window{Start: 0, End: 1},
			CameraClip: "finisher",
			Trigger:    events.OnOpponentStunned,
		},
		&events.CameraAnimationEvent{
			Window:          events.Window{Start: 0, End: 0.5},
			CameraClip:      "orbit",
			SyncToCharacter: true,
		},
	)
	h.step(s, 0)
	h.opp.stunned = true
	h.step(s, 0.1)
	h.step(s, 0.2)
	if len(h.camera.played) != 2 || h.camera.played[0] != "orbit" || h.camera.played[1] != "finisher" {
		t.Fatalf("Expected orbit then finisher once each, got %v", h.camera.played)
	}
	if !h.camera.synced[0] || h.camera.synced[1] {
		t.Errorf("Expected only orbit synced, got %v", h.camera.synced)
	}

	h.step(s, 0.7)
	if h.camera.stopped != 1 {
		t.Errorf("Expected synced clip stopped on exit, got %d", h.camera.stopped)
	}
	h.step(s, 1.5)
	if h.camera.stopped != 1 {
		t.Errorf("Expected free clip left running, got %d stops", h.camera.stopped)
	}
}
