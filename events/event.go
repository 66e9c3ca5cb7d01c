// Package events declares the per-clip animation event data: a closed set of
// event variants, each bound to a time window of a clip, and the schedules
// that order them.
package events

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
)

// Window is the closed [Start, End] time range of an event within its clip.
type Window struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Contains reports whether t lies inside the window, both ends inclusive.
func (w Window) Contains(t float64) bool { return w.Start <= t && t <= w.End }

// Length of the window in seconds; never negative.
func (w Window) Length() float64 {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start
}

// Fraction maps t to the elapsed fraction of the window in [0, 1].
// Zero-length windows are always complete.
func (w Window) Fraction(t float64) float64 {
	l := w.Length()
	if l <= 0 {
		return 1
	}
	return gamemath.Clamp01((t - w.Start) / l)
}

// Overlaps reports whether two windows share any instant.
func (w Window) Overlaps(o Window) bool { return w.Start <= o.End && o.Start <= w.End }

// Event is implemented only by the variants in this package.
type Event interface {
	Kind() Kind
	Span() Window
	isEvent()
}

// MovementEvent displaces the character during its window.
type MovementEvent struct {
	Window
	Mode                 MovementMode
	UseStickInput        bool
	StopOnProximity      bool
	MoveTowardEnemy      bool
	RotateTowardMovement bool
	Velocity             gamemath.Vec3 // local-space constant velocity (Velocity mode)
	Target               gamemath.Vec3 // local-space displacement from the entry position (Easing mode)
	Easing               Easing
}

// RotationEvent turns the character's target orientation by TotalAngle
// degrees about Axis over the window.
type RotationEvent struct {
	Window
	Axis       gamemath.Vec3
	TotalAngle float64 // degrees
	Easing     Easing
}

// Hitbox is the weapon hit volume, relative to the weapon tip.
type Hitbox struct {
	Offset gamemath.Vec3
	Size   gamemath.Vec3
}

// Knockback is applied to a character the attack connects with.
type Knockback struct {
	Velocity     gamemath.Vec3
	Acceleration gamemath.Vec3
	Duration     float64
	Reaction     Reaction
}

// AttackEvent opens a weapon hit window.
type AttackEvent struct {
	Window
	MaxHitCount int
	HitInterval float64
	Damage      float64
	Hitbox      Hitbox
	Knockback   Knockback
}

// EffectEvent fires presentation effects once its trigger is satisfied.
type EffectEvent struct {
	Window
	HitStopDuration      float64
	CameraShakeDuration  float64
	CameraShakeIntensity float64
	SoundID              string
	ParticleID           string
	PostEffect           PostEffect
	Trigger              Trigger
}

// CameraAnimationEvent plays a camera clip once its trigger is satisfied.
type CameraAnimationEvent struct {
	Window
	CameraClip      string
	PlaybackSpeed   float64
	SyncToCharacter bool
	Trigger         Trigger
}

// QTEEvent arms a timed prompt for Action under slowed time.
type QTEEvent struct {
	Window
	Action       config.ActionID
	RequiredTime float64
	TimeScale    float64
	Trigger      Trigger
}

// CancelEvent lets the state be interrupted by Action while in window.
// ActionNone falls through to the state's own transition logic.
type CancelEvent struct {
	Window
	Action config.ActionID
}

// BufferedActionEvent records Action input ahead of the moment it can apply.
type BufferedActionEvent struct {
	Window
	Action config.ActionID
}

func (e *MovementEvent) Kind() Kind        { return KindMovement }
func (e *RotationEvent) Kind() Kind        { return KindRotation }
func (e *AttackEvent) Kind() Kind          { return KindAttack }
func (e *EffectEvent) Kind() Kind          { return KindEffect }
func (e *CameraAnimationEvent) Kind() Kind { return KindCameraAnimation }
func (e *QTEEvent) Kind() Kind             { return KindQTE }
func (e *CancelEvent) Kind() Kind          { return KindCancel }
func (e *BufferedActionEvent) Kind() Kind  { return KindBufferedAction }

func (e *MovementEvent) Span() Window        { return e.Window }
func (e *RotationEvent) Span() Window        { return e.Window }
func (e *AttackEvent) Span() Window          { return e.Window }
func (e *EffectEvent) Span() Window          { return e.Window }
func (e *CameraAnimationEvent) Span() Window { return e.Window }
func (e *QTEEvent) Span() Window             { return e.Window }
func (e *CancelEvent) Span() Window          { return e.Window }
func (e *BufferedActionEvent) Span() Window  { return e.Window }

func (*MovementEvent) isEvent()        {}
func (*RotationEvent) isEvent()        {}
func (*AttackEvent) isEvent()          {}
func (*EffectEvent) isEvent()          {}
func (*CameraAnimationEvent) isEvent() {}
func (*QTEEvent) isEvent()             {}
func (*CancelEvent) isEvent()          {}
func (*BufferedActionEvent) isEvent()  {}
