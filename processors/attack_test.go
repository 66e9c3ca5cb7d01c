package processors

import (
	"testing"

	"github.com/automoto/animevent/events"
)

func TestAttackHitCountCap(t *testing.T) {
	tests := []struct {
		name     string
		maxHits  int
		interval float64
		k        float64 // window length in intervals
	}{
		{name: "three hits over five intervals", maxHits: 3, interval: 0.1, k: 5},
		{name: "single hit", maxHits: 1, interval: 0.05, k: 4},
		{name: "many hits", maxHits: 4, interval: 0.15, k: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.weapon.hitOnArmed = true
			end := tt.k * tt.interval
			s := events.NewSchedule("Attack1", &events.AttackEvent{
				Window:      events.Window{Start: 0, End: end},
				MaxHitCount: tt.maxHits,
				HitInterval: tt.interval,
			})
			key := s.Entries()[0].Key

			hits := 0
			for now := 0.0; now <= end; now += h.sim.FixedDelta {
				h.step(s, now)
				hits = h.d.Attack.HitCount(key)
			}
			if hits != tt.maxHits {
				t.Errorf("Expected %d hits, got %d", tt.maxHits, hits)
			}
			if h.weapon.arms != tt.maxHits {
				t.Errorf("Expected %d armings, got %d", tt.maxHits, h.weapon.arms)
			}
		})
	}
}

func TestOverlappingAttacksKeepEachOtherArmed(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1",
		&events.AttackEvent{Window: events.Window{Start: 0, End: 0.2}, MaxHitCount: 1, HitInterval: 0.05},
		&events.AttackEvent{Window: events.Window{Start: 0.1, End: 0.6}, MaxHitCount: 3, HitInterval: 0.05},
	)

	for now := 0.0; now <= 0.6; now += h.sim.FixedDelta {
		h.step(s, now)
		if now < 0.3 || now > 0.55 {
			continue
		}
		if !h.weapon.armed || !h.weapon.trail {
			t.Fatalf("Expected the later window to keep the weapon hot at %.3f, got armed=%v trail=%v",
				now, h.weapon.armed, h.weapon.trail)
		}
	}

	// Past both windows the weapon cools down
	h.step(s, 0.7)
	if h.weapon.armed || h.weapon.trail {
		t.Errorf("Expected weapon cold after both windows, got armed=%v trail=%v", h.weapon.armed, h.weapon.trail)
	}
}

func TestAttackFirstFrameArmsAndExitCoolsWeapon(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1", &events.AttackEvent{
		Window:      events.Window{Start: 0.1, End: 0.2},
		MaxHitCount: 2,
		HitInterval: 0.5,
	})
	h.step(s, 0.1)
	if !h.weapon.armed || !h.weapon.trail {
		t.Fatalf("Expected weapon armed with trail on entry")
	}

	// Interrupted before any hit lands.
	h.step(s, 0.25)
	if h.weapon.armed || h.weapon.trail {
		t.Errorf("Expected weapon cold after window exit, got armed=%v trail=%v", h.weapon.armed, h.weapon.trail)
	}
}

func TestAttackWaitsIntervalBetweenHits(t *testing.T) {
	h := newHarness()
	s := events.NewSchedule("Attack1", &events.AttackEvent{
		Window:      events.Window{Start: 0, End: 1},
		MaxHitCount: 5,
		HitInterval: 0.1,
	})
	h.step(s, 0)
	h.weapon.hit = true
	h.step(s, 0.02)
	h.weapon.hit = false
	if h.weapon.armed {
		t.Fatalf("Expected disarm after hit")
	}
	for i := 0; i < 3; i++ {
		h.step(s, 0.04+float64(i)*0.02)
	}
	if h.weapon.armed {
		t.Errorf("Expected weapon to stay cold inside the interval")
	}
	for i := 0; i < 5; i++ {
		h.step(s, 0.1+float64(i)*0.02)
	}
	if !h.weapon.armed {
		t.Errorf("Expected weapon re-armed after the interval")
	}
}
