package components

import (
	"github.com/automoto/animevent/processors"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // arena XZ

	// Offset is the shake displacement applied on top of Position this frame.
	Offset math.Vec2

	// Camera clip playback
	Clip      string
	ClipSpeed float64
	ClipTime  float64
	Sync      processors.Animator
	Plays     int // clips started since creation
}

var Camera = donburi.NewComponentType[CameraData]()

// PlayAnimation starts a camera clip. A synced clip follows the given
// character playhead instead of its own clock.
func (c *CameraData) PlayAnimation(clip string, speed float64, sync processors.Animator) {
	c.Clip = clip
	c.ClipSpeed = speed
	c.ClipTime = 0
	c.Sync = sync
	c.Plays++
}

func (c *CameraData) StopAnimation() {
	c.Clip = ""
	c.ClipTime = 0
	c.Sync = nil
}

// Playing reports whether a camera clip is running.
func (c *CameraData) Playing() bool { return c.Clip != "" }

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in arena units
	Duration  float64 // seconds
	Elapsed   float64 // seconds elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// CameraRig is the camera collaborator handed to the processors. Shakes
// are kept as a component on the camera entry.
type CameraRig struct {
	Entry *donburi.Entry
}

func (r CameraRig) data() *CameraData { return Camera.Get(r.Entry) }

func (r CameraRig) PlayAnimation(clip string, speed float64, sync processors.Animator) {
	r.data().PlayAnimation(clip, speed, sync)
}

func (r CameraRig) StopAnimation() { r.data().StopAnimation() }

// StartShake adds a shake, or replaces the running one when stronger.
func (r CameraRig) StartShake(intensity, duration float64) {
	if intensity <= 0 || duration <= 0 {
		return
	}
	if r.Entry.HasComponent(ScreenShake) {
		shake := ScreenShake.Get(r.Entry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	donburi.Add(r.Entry, ScreenShake, &ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
