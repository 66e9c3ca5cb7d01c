package systems

import (
	"log"

	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio drains the sound cue queue. Device playback belongs to the
// presentation layer; cues beyond the per-frame cap are dropped.
func UpdateAudio(e *ecs.ECS) {
	audio := factory.GetAudio(e)
	if len(audio.PendingSFX) == 0 {
		return
	}

	for i, cue := range audio.PendingSFX {
		if i >= cfg.Effects.MaxQueuedSounds {
			audio.Dropped += len(audio.PendingSFX) - i
			break
		}
		audio.Played++
		if cfg.Debug.LogEvents {
			log.Printf("[audio] %s at (%.2f, %.2f, %.2f)", cue.ID, cue.At.X, cue.At.Y, cue.At.Z)
		}
	}
	audio.PendingSFX = audio.PendingSFX[:0]
}
