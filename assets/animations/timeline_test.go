package animations

import (
	"math"
	"testing"
)

func newTestTimeline(blend bool) *Timeline {
	lib := NewLibrary()
	lib.Add("Idle", 2.0)
	lib.Add("Attack", 1.0)
	lib.Add("Dodge", 0.5)
	tl := NewTimeline(lib)
	tl.BlendEnabled = blend
	tl.BlendDuration = 0.2
	tl.Strict = false
	return tl
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPlayClipWithoutBlending(t *testing.T) {
	tl := newTestTimeline(false)
	tl.PlayClip("Idle", 1, true)
	tl.Advance(0.5)
	tl.PlayClip("Attack", 1, false)

	if tl.CurrentClip() != "Attack" {
		t.Fatalf("Expected Attack, got %q", tl.CurrentClip())
	}
	if tl.CurrentTime() != 0 {
		t.Errorf("Expected time reset to 0, got %f", tl.CurrentTime())
	}
	if !tl.IsBlendComplete() {
		t.Errorf("Expected blend complete without blending")
	}
}

func TestAdvanceLoopsAndClamps(t *testing.T) {
	tests := []struct {
		name         string
		clip         string
		loop         bool
		steps        int
		dt           float64
		wantTime     float64
		wantFinished bool
	}{
		{name: "loop wraps", clip: "Attack", loop: true, steps: 3, dt: 0.5, wantTime: 0.5},
		{name: "clamps at duration", clip: "Attack", loop: false, steps: 3, dt: 0.5, wantTime: 1.0, wantFinished: true},
		{name: "mid clip", clip: "Attack", loop: false, steps: 1, dt: 0.25, wantTime: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTestTimeline(false)
			tl.PlayClip(tt.clip, 1, tt.loop)
			for i := 0; i < tt.steps; i++ {
				tl.Advance(tt.dt)
			}
			if !approx(tl.CurrentTime(), tt.wantTime) {
				t.Errorf("Expected time=%f, got=%f", tt.wantTime, tl.CurrentTime())
			}
			if tl.IsFinished() != tt.wantFinished {
				t.Errorf("Expected finished=%v, got=%v", tt.wantFinished, tl.IsFinished())
			}
		})
	}
}

func TestBlendReportsNextClipTime(t *testing.T) {
	tl := newTestTimeline(true)
	tl.PlayClip("Idle", 1, true)
	tl.Advance(1.0)
	tl.PlayClip("Attack", 1, false)

	if tl.IsBlendComplete() {
		t.Fatalf("Expected blend in flight")
	}
	tl.Advance(0.1)
	if !approx(tl.CurrentTime(), 0.1) {
		t.Errorf("Expected next clip time 0.1 during blend, got %f", tl.CurrentTime())
	}
	if !approx(tl.BlendFactor(), 0.5) {
		t.Errorf("Expected blend factor 0.5, got %f", tl.BlendFactor())
	}

	tl.Advance(0.1)
	if !tl.IsBlendComplete() {
		t.Fatalf("Expected blend complete after blend duration")
	}
	if tl.CurrentClip() != "Attack" || !approx(tl.CurrentTime(), 0.2) {
		t.Errorf("Expected Attack at 0.2 after promotion, got %q at %f", tl.CurrentClip(), tl.CurrentTime())
	}
}

func TestFirstClipSkipsBlend(t *testing.T) {
	tl := newTestTimeline(true)
	tl.PlayClip("Dodge", 1, false)
	if !tl.IsBlendComplete() || tl.CurrentClip() != "Dodge" {
		t.Errorf("Expected first clip to play directly")
	}
}

func TestPlayDuringBlendPromotesTarget(t *testing.T) {
	tl := newTestTimeline(true)
	tl.PlayClip("Idle", 1, true)
	tl.PlayClip("Attack", 1, false)
	tl.Advance(0.05)
	tl.PlayClip("Dodge", 1, false)

	if tl.current.clip.Name != "Attack" {
		t.Errorf("Expected in-flight target promoted to current, got %q", tl.current.clip.Name)
	}
	if tl.CurrentClip() != "Dodge" || tl.CurrentTime() != 0 {
		t.Errorf("Expected Dodge at 0, got %q at %f", tl.CurrentClip(), tl.CurrentTime())
	}
}

func TestPauseFreezesAdvance(t *testing.T) {
	tl := newTestTimeline(false)
	tl.PlayClip("Attack", 1, false)
	tl.Advance(0.3)
	tl.Pause()
	tl.Advance(0.3)
	if !approx(tl.CurrentTime(), 0.3) {
		t.Errorf("Expected paused time 0.3, got %f", tl.CurrentTime())
	}
	tl.Resume()
	tl.Advance(0.3)
	if !approx(tl.CurrentTime(), 0.6) {
		t.Errorf("Expected resumed time 0.6, got %f", tl.CurrentTime())
	}
}

func TestUnknownClip(t *testing.T) {
	t.Run("release ignores", func(t *testing.T) {
		tl := newTestTimeline(false)
		tl.PlayClip("Idle", 1, true)
		tl.PlayClip("Missing", 1, false)
		if tl.CurrentClip() != "Idle" {
			t.Errorf("Expected unknown clip to be ignored, got %q", tl.CurrentClip())
		}
	})

	t.Run("strict panics", func(t *testing.T) {
		tl := newTestTimeline(false)
		tl.Strict = true
		defer func() {
			if recover() == nil {
				t.Errorf("Expected panic for unknown clip in strict mode")
			}
		}()
		tl.PlayClip("Missing", 1, false)
	})
}

func TestLibraryMissingClipIsZeroDuration(t *testing.T) {
	lib := NewLibrary()
	if c := lib.Clip("Nope"); c.Duration != 0 || c.Name != "Nope" {
		t.Errorf("Expected zero-duration clip, got %+v", c)
	}
	var nilLib *Library
	if _, ok := nilLib.Lookup("x"); ok {
		t.Errorf("Expected nil library lookup to miss")
	}
}
