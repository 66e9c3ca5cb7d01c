package systems

import (
	"math"

	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/systems/factory"
	"github.com/automoto/animevent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	sim := factory.GetSimulation(e)

	updateCameraClip(camera, sim.ScaledDelta())
	// Shakes run on real time so they play out through a hit-stop
	updateScreenShake(cameraEntry, camera, sim.RealDelta())

	// Follow the midpoint of the standing fighters
	var sumX, sumZ float64
	n := 0
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if m := components.State.Get(entry).Machine; m != nil && m.Destroyed() {
			return
		}
		p := components.Character.Get(entry).Position()
		sumX += p.X
		sumZ += p.Z
		n++
	})
	if n == 0 {
		return
	}
	targetX := sumX / float64(n)
	targetY := sumZ / float64(n)

	// Center the camera on the target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateCameraClip advances the playing camera clip. A synced clip reads
// the character playhead; an unsynced one ends after ClipLength.
func updateCameraClip(camera *components.CameraData, dt float64) {
	if !camera.Playing() {
		return
	}
	if camera.Sync != nil {
		camera.ClipTime = camera.Sync.CurrentTime()
		return
	}
	camera.ClipTime += dt * camera.ClipSpeed
	if camera.ClipTime >= config.Camera.ClipLength {
		camera.StopAnimation()
	}
}

// updateScreenShake sets the shake offset and removes the shake once it
// has run its duration.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	camera.Offset.X, camera.Offset.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	// Calculate decaying intensity
	progress := (shake.Duration - shake.Elapsed) / shake.Duration
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	phase := shake.Elapsed * float64(config.Simulation.TicksPerSecond)
	camera.Offset.X = math.Sin(phase*config.Camera.ShakeFrequencyX) * currentIntensity
	camera.Offset.Y = math.Cos(phase*config.Camera.ShakeFrequencyY) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}
