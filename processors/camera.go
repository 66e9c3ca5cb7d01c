package processors

import "github.com/automoto/animevent/events"

type cameraInstance struct {
	started bool
	synced  bool
}

// CameraAnimation starts a camera clip once per instance.
type CameraAnimation struct {
	arena[cameraInstance]
}

func (p *CameraAnimation) Kind() events.Kind { return events.KindCameraAnimation }

func (p *CameraAnimation) Process(f *Frame, key events.Key, ev *events.CameraAnimationEvent) {
	inst, entered := p.enter(key)
	cam := f.Actor.Camera
	if cam == nil || inst.started {
		return
	}
	if ev.Trigger == events.OnActionStart {
		if !entered {
			return
		}
	} else if !TriggerSatisfied(f, ev.Trigger) {
		return
	}
	var sync Animator
	if ev.SyncToCharacter {
		sync = f.Actor.Animator
	}
	cam.PlayAnimation(ev.CameraClip, ev.PlaybackSpeed, sync)
	inst.started = true
	inst.synced = ev.SyncToCharacter
}

// Started reports whether the live instance for key issued its clip.
func (p *CameraAnimation) Started(key events.Key) bool {
	inst := p.get(key)
	return inst != nil && inst.started
}

// Reset stops a clip that was synced to this character's playhead; free
// running clips finish on their own.
func (p *CameraAnimation) Reset(f *Frame, key events.Key) {
	inst, ok := p.exit(key)
	if !ok || !inst.started || !inst.synced {
		return
	}
	if cam := f.Actor.Camera; cam != nil {
		cam.StopAnimation()
	}
}

func (p *CameraAnimation) Sweep(f *Frame) { p.sweep(f, p.Reset) }
