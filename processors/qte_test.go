package processors

import (
	"testing"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
)

func TestQTECountdownIgnoresTimeScale(t *testing.T) {
	h := newHarness()
	h.sim.FixedDelta = 1.0 / 60
	h.caps.state[config.ActionCounter] = true
	s := events.NewSchedule("Counter", &events.QTEEvent{
		Window:       events.Window{Start: 0, End: 100},
		Action:       config.ActionCounter,
		RequiredTime: 1.0,
		TimeScale:    0.1,
	})
	key := s.Entries()[0].Key

	now := 0.0
	for step := 1; step <= 60; step++ {
		h.step(s, now)
		now += h.sim.ScaledDelta()

		phase := h.d.QTE.Phase(key)
		if step < 60 {
			if phase != QTEArmed {
				t.Fatalf("step %d: expected Armed, got %s", step, phase)
			}
			if h.sim.TimeScale.Scale() != 0.1 {
				t.Fatalf("step %d: expected scale 0.1, got %f", step, h.sim.TimeScale.Scale())
			}
		}
		if step == 30 && !approx(h.d.QTE.Remaining(key), 0.5, 1e-9) {
			t.Errorf("step 30: expected 0.5s remaining, got %f", h.d.QTE.Remaining(key))
		}
		if step == 60 && phase != QTEFailed {
			t.Fatalf("step 60: expected Failed, got %s", phase)
		}
	}
	if h.sim.TimeScale.Scale() != 1.0 {
		t.Errorf("Expected scale restored, got %f", h.sim.TimeScale.Scale())
	}
	if len(h.sim.Overlays.Active()) != 0 {
		t.Errorf("Expected overlays off, got %v", h.sim.Overlays.Active())
	}
}

func TestQTERestoresTimeScaleAfterLastResolves(t *testing.T) {
	h := newHarness()
	h.caps.state[config.ActionCounter] = true
	h.caps.state[config.ActionDodge] = true
	s := events.NewSchedule("Counter",
		&events.QTEEvent{Window: events.Window{Start: 0, End: 5}, Action: config.ActionCounter, RequiredTime: 0.2, TimeScale: 0.1},
		&events.QTEEvent{Window: events.Window{Start: 0, End: 5}, Action: config.ActionDodge, RequiredTime: 0.4, TimeScale: 0.25},
	)
	first, second := s.Entries()[0].Key, s.Entries()[1].Key

	firstDone, secondDone := 0, 0
	for step := 1; step <= 40; step++ {
		h.step(s, 1)
		if firstDone == 0 && h.d.QTE.Phase(first) == QTEFailed {
			firstDone = step
			if h.sim.TimeScale.Scale() != 0.25 {
				t.Errorf("Expected the second QTE's scale to apply, got %f", h.sim.TimeScale.Scale())
			}
			if !h.sim.Overlays.Enabled(events.PostEffectDepthOfField) || !h.sim.Overlays.Enabled(events.PostEffectVignette) {
				t.Errorf("Expected overlays still on while one QTE is armed")
			}
		}
		if secondDone == 0 && h.d.QTE.Phase(second) == QTEFailed {
			secondDone = step
		}
	}
	if firstDone == 0 || secondDone == 0 || firstDone >= secondDone {
		t.Fatalf("Expected both QTEs to fail on different frames, got %d and %d", firstDone, secondDone)
	}
	if h.sim.TimeScale.Scale() != 1.0 {
		t.Errorf("Expected scale 1.0, got %f", h.sim.TimeScale.Scale())
	}
	if h.sim.Overlays.Enabled(events.PostEffectDepthOfField) || h.sim.Overlays.Enabled(events.PostEffectVignette) {
		t.Errorf("Expected overlays off, got %v", h.sim.Overlays.Active())
	}
}

func TestQTESuccessDismissesOthersAndRequestsTransition(t *testing.T) {
	h := newHarness()
	h.caps.state[config.ActionCounter] = true
	h.caps.state[config.ActionDodge] = true
	s := events.NewSchedule("Counter",
		&events.QTEEvent{Window: events.Window{Start: 0, End: 1}, Action: config.ActionDodge, RequiredTime: 1, TimeScale: 0.1},
		&events.QTEEvent{Window: events.Window{Start: 0, End: 1}, Action: config.ActionCounter, RequiredTime: 1, TimeScale: 0.1},
	)
	dodge, counter := s.Entries()[0].Key, s.Entries()[1].Key

	h.step(s, 0.1)
	if h.d.QTE.Armed() != 2 {
		t.Fatalf("Expected two armed QTEs, got %d", h.d.QTE.Armed())
	}

	h.caps.executable[config.ActionCounter] = true
	res := h.step(s, 0.2)

	if res.Transition == nil || res.Transition.Action != config.ActionCounter || res.Transition.Source != counter {
		t.Fatalf("Expected Counter transition from %s, got %+v", counter, res.Transition)
	}
	if h.d.QTE.Phase(counter) != QTESucceeded {
		t.Errorf("Expected Succeeded, got %s", h.d.QTE.Phase(counter))
	}
	if h.d.QTE.Phase(dodge) != QTEDismissed {
		t.Errorf("Expected Dismissed, got %s", h.d.QTE.Phase(dodge))
	}
	if h.sim.TimeScale.Scale() != 1.0 || len(h.sim.Overlays.Active()) != 0 {
		t.Errorf("Expected globals restored, got scale=%f overlays=%v", h.sim.TimeScale.Scale(), h.sim.Overlays.Active())
	}
}

func TestQTEWaitsForStateConditionAndTrigger(t *testing.T) {
	tests := []struct {
		name      string
		trigger   events.Trigger
		state     bool
		stunned   bool
		wantPhase QTEPhase
	}{
		{name: "state condition false", trigger: events.OnActionStart, state: false, wantPhase: QTEDormant},
		{name: "trigger unmet", trigger: events.OnOpponentStunned, state: true, wantPhase: QTEDormant},
		{name: "trigger met", trigger: events.OnOpponentStunned, state: true, stunned: true, wantPhase: QTEArmed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.caps.state[config.ActionCounter] = tt.state
			h.opp.stunned = tt.stunned
			s := events.NewSchedule("Counter", &events.QTEEvent{
				Window: events.Window{Start: 0, End: 1}, Action: config.ActionCounter,
				RequiredTime: 1, TimeScale: 0.1, Trigger: tt.trigger,
			})
			h.step(s, 0.5)
			if got := h.d.QTE.Phase(s.Entries()[0].Key); got != tt.wantPhase {
				t.Errorf("Expected %s, got %s", tt.wantPhase, got)
			}
			if tt.wantPhase == QTEDormant && h.sim.TimeScale.Scale() != 1.0 {
				t.Errorf("Expected dormant QTE to leave time scale alone")
			}
		})
	}
}

func TestQTEArmingCancelsHitStop(t *testing.T) {
	h := newHarness()
	h.caps.state[config.ActionCounter] = true
	h.sim.StartHitStop(0.3)
	s := events.NewSchedule("Counter", &events.QTEEvent{
		Window: events.Window{Start: 0, End: 1}, Action: config.ActionCounter, RequiredTime: 1, TimeScale: 0.1,
	})
	h.d.Dispatch(h.frame(0.5), s)
	if h.sim.HitStop.Active() {
		t.Errorf("Expected hit-stop cancelled by QTE")
	}
}

func TestQTEFailsWhenMatchEnds(t *testing.T) {
	h := newHarness()
	h.caps.state[config.ActionCounter] = true
	s := events.NewSchedule("Counter", &events.QTEEvent{
		Window: events.Window{Start: 0, End: 1}, Action: config.ActionCounter, RequiredTime: 5, TimeScale: 0.1,
	})
	h.step(s, 0.1)
	h.sim.MatchEnded = true
	h.step(s, 0.2)
	if got := h.d.QTE.Phase(s.Entries()[0].Key); got != QTEFailed {
		t.Errorf("Expected Failed, got %s", got)
	}
}
