package components

import (
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SoundCue is one queued sound at a world position.
type SoundCue struct {
	ID string
	At gamemath.Vec3
}

// AudioData stores the global sound cue queue (singleton component)
type AudioData struct {
	PendingSFX []SoundCue
	Played     int // cues drained since creation
	Dropped    int // cues over the per-frame cap
}

var Audio = donburi.NewComponentType[AudioData]()
