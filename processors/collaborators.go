// Package processors interprets a clip's event schedule each frame. One
// processor per event kind owns the live instance state for the events of
// that kind whose windows contain the current animation time.
package processors

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
)

// Body is the character being driven.
type Body interface {
	Position() gamemath.Vec3
	// Move displaces the character by a world-space delta.
	Move(delta gamemath.Vec3)
	Orientation() gamemath.Quat
	// TargetOrientation is the heading the character turns toward; rotation
	// events compose onto it rather than the instantaneous orientation.
	TargetOrientation() gamemath.Quat
	SetTargetOrientation(q gamemath.Quat)
	// StickInput is the world-space planar movement input, zero when idle.
	StickInput() gamemath.Vec3
	SetPerfectDodgeWindow(open bool)
}

// Animator exposes the character playhead to synced camera clips.
type Animator interface {
	CurrentTime() float64
	IsBlendComplete() bool
}

// Weapon is the hit-detection collaborator.
type Weapon interface {
	// Arm enables hit detection with the attack's hitbox and payload.
	Arm(attack *events.AttackEvent)
	Disarm()
	Armed() bool
	// IsHit reports whether the weapon registered a hit on the last
	// collision pass.
	IsHit() bool
	SetTrailActive(active bool)
	TipPosition() gamemath.Vec3
	LocalOffset() gamemath.Vec3
}

// Camera plays camera clips and shakes.
type Camera interface {
	PlayAnimation(clip string, speed float64, sync Animator)
	StartShake(intensity, duration float64)
	StopAnimation()
}

// Opponent is the read-only view of the other fighter.
type Opponent interface {
	Position() gamemath.Vec3
	PerfectDodgeWindow() bool
	IsStunned() bool
}

// Capabilities answers whether an action may run right now. Executable
// means both the state and the trigger condition hold.
type Capabilities interface {
	IsActionExecutable(action config.ActionID) bool
	ActionStateCondition(action config.ActionID) bool
	ActionTriggerCondition(action config.ActionID) bool
}

// Audio queues sound cues.
type Audio interface {
	PlaySound(id string, at gamemath.Vec3)
}

// Particles queues particle spawns.
type Particles interface {
	Spawn(id string, at gamemath.Vec3)
}

// Actor bundles the collaborators of one character. Weapon, Camera,
// Opponent, Audio and Particles may be nil.
type Actor struct {
	Name      string
	Body      Body
	Animator  Animator
	Weapon    Weapon
	Camera    Camera
	Opponent  Opponent
	Caps      Capabilities
	Audio     Audio
	Particles Particles
	Buffer    *InputBuffer
}
