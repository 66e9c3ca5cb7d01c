package animations

import (
	"fmt"
	"log"

	"github.com/automoto/animevent/config"
)

// Timeline produces the single authoritative animation time for a character,
// cross-fading from the current clip into the next one when blending is on.
type Timeline struct {
	library *Library

	current *playhead
	next    *playhead

	BlendEnabled  bool
	BlendDuration float64

	blendFactor   float64
	blendComplete bool
	paused        bool

	// Strict makes unknown clips panic instead of being ignored.
	Strict bool
}

// NewTimeline creates a timeline over library using the configured blend settings.
func NewTimeline(library *Library) *Timeline {
	return &Timeline{
		library:       library,
		BlendEnabled:  config.Timeline.BlendEnabled,
		BlendDuration: config.Timeline.BlendDuration,
		blendComplete: true,
		Strict:        config.Debug.StrictClips,
	}
}

// PlayClip commands a new clip. Without blending the clip replaces the
// current one immediately. With blending the clip becomes the blend target,
// unless nothing is playing yet. A blend target still in flight is promoted
// to current first.
func (t *Timeline) PlayClip(name string, speed float64, loop bool) {
	clip, ok := t.library.Lookup(name)
	if !ok {
		if t.Strict {
			panic(fmt.Sprintf("animations: unknown clip %q", name))
		}
		log.Printf("[timeline] ignoring unknown clip %q", name)
		return
	}

	ph := newPlayhead(clip, speed, loop)
	if !t.BlendEnabled || t.current == nil {
		t.current = ph
		t.next = nil
		t.blendFactor = 0
		t.blendComplete = true
		return
	}
	if t.next != nil {
		t.current = t.next
	}
	t.next = ph
	t.blendFactor = 0
	t.blendComplete = false
}

// Advance steps the playheads by dt and progresses any blend.
func (t *Timeline) Advance(dt float64) {
	if t.paused || dt <= 0 {
		return
	}
	t.current.advance(dt)
	if t.next == nil {
		return
	}
	t.next.advance(dt)
	if !t.BlendEnabled || t.BlendDuration <= 0 {
		t.blendFactor = 1
	} else {
		t.blendFactor += dt / t.BlendDuration
	}
	if t.blendFactor >= 1 {
		t.blendFactor = 1
		t.current = t.next
		t.next = nil
		t.blendComplete = true
	}
}

// authoritative is the playhead events are evaluated against.
func (t *Timeline) authoritative() *playhead {
	if t.next != nil {
		return t.next
	}
	return t.current
}

// CurrentTime returns the next clip's time while a blend is in flight,
// otherwise the current clip's time.
func (t *Timeline) CurrentTime() float64 {
	if p := t.authoritative(); p != nil {
		return p.time
	}
	return 0
}

// CurrentClip names the authoritative clip, or "" when nothing plays.
func (t *Timeline) CurrentClip() string {
	if p := t.authoritative(); p != nil {
		return p.clip.Name
	}
	return ""
}

// Duration of the authoritative clip.
func (t *Timeline) Duration() float64 {
	if p := t.authoritative(); p != nil {
		return p.clip.Duration
	}
	return 0
}

// IsBlendComplete reports whether the last commanded clip finished blending in.
func (t *Timeline) IsBlendComplete() bool { return t.blendComplete }

// BlendFactor is the blend weight of the next clip in [0, 1].
func (t *Timeline) BlendFactor() float64 { return t.blendFactor }

// IsFinished reports whether a non-looping authoritative clip reached its end.
func (t *Timeline) IsFinished() bool {
	p := t.authoritative()
	return p != nil && p.finished
}

// HasLooped reports whether a looping authoritative clip wrapped.
func (t *Timeline) HasLooped() bool {
	p := t.authoritative()
	return p != nil && p.looped
}

// SetSpeed changes the playback speed of the authoritative clip.
func (t *Timeline) SetSpeed(speed float64) {
	if p := t.authoritative(); p != nil {
		p.speed = speed
	}
}

// Restart rewinds the authoritative clip.
func (t *Timeline) Restart() {
	if p := t.authoritative(); p != nil {
		p.restart()
	}
}

func (t *Timeline) Pause()       { t.paused = true }
func (t *Timeline) Resume()      { t.paused = false }
func (t *Timeline) Paused() bool { return t.paused }
