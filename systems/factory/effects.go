package factory

import (
	"github.com/automoto/animevent/archetypes"
	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticle creates a particle entity that expires after the configured lifetime.
func SpawnParticle(ecs *ecs.ECS, id string, at gamemath.Vec3) *donburi.Entry {
	p := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(p, components.ParticleData{ID: id, Position: at})
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{Remaining: cfg.Effects.ParticleLifetime})
	return p
}

// ParticleSpawner is the particle collaborator handed to the processors.
type ParticleSpawner struct {
	ECS *ecs.ECS
}

func (s ParticleSpawner) Spawn(id string, at gamemath.Vec3) { SpawnParticle(s.ECS, id, at) }

// GetAudio returns the singleton audio queue, creating it if needed.
func GetAudio(ecs *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Audio))
	}
	ent, _ := components.Audio.First(ecs.World)
	return components.Audio.Get(ent)
}

// SoundQueue is the audio collaborator handed to the processors.
type SoundQueue struct {
	ECS *ecs.ECS
}

func (q SoundQueue) PlaySound(id string, at gamemath.Vec3) {
	audio := GetAudio(q.ECS)
	audio.PendingSFX = append(audio.PendingSFX, components.SoundCue{ID: id, At: at})
}
