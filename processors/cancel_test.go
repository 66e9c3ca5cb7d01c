package processors

import (
	"testing"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
)

func TestCancelFiresBeforeBufferedAction(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1",
		&events.BufferedActionEvent{Window: events.Window{Start: 0, End: 0.5}, Action: config.ActionAttack},
		&events.CancelEvent{Window: events.Window{Start: 0.3, End: 0.5}, Action: config.ActionDodge},
		&events.CancelEvent{Window: events.Window{Start: 0.3, End: 0.5}, Action: config.ActionJump},
	)

	h.caps.trigger[config.ActionAttack] = true
	h.step(s, 0.1)
	if !h.actor.Buffer.Has(config.ActionAttack) {
		t.Fatalf("Expected Attack latched")
	}
	h.step(s, 0.2)

	h.caps.executable[config.ActionDodge] = true
	h.caps.executable[config.ActionJump] = true
	res := h.step(s, 0.3)

	if res.Transition == nil || res.Transition.Action != config.ActionDodge {
		t.Fatalf("Expected immediate Dodge, got %+v", res.Transition)
	}
	if !h.actor.Buffer.Has(config.ActionAttack) {
		t.Errorf("Expected buffered Attack left for a later fall-through")
	}
	if h.d.Active(s.Entries()[2].Key) {
		t.Errorf("Expected dispatch to stop at the first request")
	}
}

func TestCancelNoneFallsThrough(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1", &events.CancelEvent{Window: events.Window{Start: 0.2, End: 0.4}})
	if res := h.step(s, 0.1); res.FallThrough {
		t.Errorf("Expected no fall-through outside the window")
	}
	res := h.step(s, 0.3)
	if !res.FallThrough || res.Transition != nil {
		t.Errorf("Expected fall-through only, got %+v", res)
	}
}

func TestCancelWaitsForExecutableAction(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1", &events.CancelEvent{Window: events.Window{Start: 0, End: 1}, Action: config.ActionDash})
	if res := h.step(s, 0.1); res.Transition != nil {
		t.Fatalf("Expected no transition while Dash is not executable")
	}
	h.caps.executable[config.ActionDash] = true
	if res := h.step(s, 0.2); res.Transition == nil || res.Transition.Action != config.ActionDash {
		t.Errorf("Expected Dash transition, got %+v", res.Transition)
	}
}

func TestBufferedActionLatchesOncePerWindow(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1", &events.BufferedActionEvent{Window: events.Window{Start: 0, End: 0.5}, Action: config.ActionAttack})
	key := s.Entries()[0].Key

	h.step(s, 0.1)
	if h.d.Buffered.Latched(key) {
		t.Fatalf("Expected no latch without input")
	}
	h.caps.trigger[config.ActionAttack] = true
	h.step(s, 0.2)
	latchedAt := h.actor.Buffer.Pending()[0].At
	h.step(s, 0.3)
	if got := h.actor.Buffer.Pending(); len(got) != 1 || got[0].At != latchedAt {
		t.Errorf("Expected a single latch, got %+v", got)
	}
}

func TestInputBufferExpiresAndResolvesOldestFirst(t *testing.T) {
	b := &InputBuffer{Lifetime: 0.5}
	b.Latch(config.ActionAttack, 0)
	b.Latch(config.ActionDodge, 0.3)
	b.Latch(config.ActionMagic, 0.4)

	got, ok := b.Resolve(0.6, func(a config.ActionID) bool { return a != config.ActionMagic })
	if !ok || got != config.ActionDodge {
		t.Errorf("Expected Dodge after Attack expired, got %s %v", got, ok)
	}
	if b.Len() != 1 || !b.Has(config.ActionMagic) {
		t.Errorf("Expected only Magic left, got %+v", b.Pending())
	}
	if _, ok := b.Resolve(1.0, func(config.ActionID) bool { return true }); ok {
		t.Errorf("Expected Magic expired")
	}
}

func TestInputBufferSurvivesOneTransition(t *testing.T) {
	b := &InputBuffer{}
	b.Latch(config.ActionAttack, 0)
	b.Transition()
	b.Latch(config.ActionDodge, 0.1)
	if !b.Has(config.ActionAttack) || !b.Has(config.ActionDodge) {
		t.Fatalf("Expected both entries after one transition, got %+v", b.Pending())
	}

	b.Transition()
	if b.Has(config.ActionAttack) {
		t.Error("Expected Attack dropped after a second transition")
	}
	if !b.Has(config.ActionDodge) {
		t.Error("Expected Dodge kept after its first transition")
	}

	// Relatching starts the count over
	b.Latch(config.ActionDodge, 0.2)
	b.Transition()
	if !b.Has(config.ActionDodge) {
		t.Error("Expected a relatched entry to survive")
	}
}
