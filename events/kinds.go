package events

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Kind discriminates the closed set of event variants.
type Kind int

const (
	KindMovement Kind = iota
	KindRotation
	KindAttack
	KindEffect
	KindCameraAnimation
	KindQTE
	KindCancel
	KindBufferedAction
	KindCount // Must be last - used for array sizing
)

var kindNames = [KindCount]string{
	KindMovement:        "Movement",
	KindRotation:        "Rotation",
	KindAttack:          "Attack",
	KindEffect:          "Effect",
	KindCameraAnimation: "CameraAnimation",
	KindQTE:             "QTE",
	KindCancel:          "Cancel",
	KindBufferedAction:  "BufferedAction",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps an authored discriminator to a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// MovementMode selects how a movement event displaces the character.
type MovementMode int

const (
	MoveVelocity MovementMode = iota
	MoveEasing
)

var movementModeNames = map[string]MovementMode{
	"Velocity": MoveVelocity,
	"Easing":   MoveEasing,
}

// Easing selects a sine-based easing curve.
type Easing int

const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

var easingNames = map[string]Easing{
	"Linear":    EaseLinear,
	"EaseIn":    EaseIn,
	"EaseOut":   EaseOut,
	"EaseInOut": EaseInOut,
}

// Func returns the gween curve for the easing.
func (e Easing) Func() ease.TweenFunc {
	switch e {
	case EaseIn:
		return ease.InSine
	case EaseOut:
		return ease.OutSine
	case EaseInOut:
		return ease.InOutSine
	default:
		return ease.Linear
	}
}

// Trigger is the condition an effect, camera or QTE event waits for.
type Trigger int

const (
	OnActionStart Trigger = iota
	OnImpact
	OnOpponentDodgeWindow
	OnOpponentStunned
)

var triggerNames = map[string]Trigger{
	"OnActionStart":         OnActionStart,
	"OnImpact":              OnImpact,
	"OnOpponentDodgeWindow": OnOpponentDodgeWindow,
	"OnOpponentStunned":     OnOpponentStunned,
}

func (t Trigger) String() string {
	for n, v := range triggerNames {
		if v == t {
			return n
		}
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// PostEffect names one of the fixed screen effects.
type PostEffect int

const (
	PostEffectNone PostEffect = iota
	PostEffectDepthOfField
	PostEffectVignette
	PostEffectRadialBlur
	PostEffectGrayscale
	PostEffectCount // Must be last - used for array sizing
)

var postEffectNames = map[string]PostEffect{
	"None":         PostEffectNone,
	"DepthOfField": PostEffectDepthOfField,
	"Vignette":     PostEffectVignette,
	"RadialBlur":   PostEffectRadialBlur,
	"Grayscale":    PostEffectGrayscale,
}

func (p PostEffect) String() string {
	for n, v := range postEffectNames {
		if v == p {
			return n
		}
	}
	return fmt.Sprintf("PostEffect(%d)", int(p))
}

// Reaction is the hit reaction a knockback forces on the victim.
type Reaction int

const (
	ReactionFlinch Reaction = iota
	ReactionKnockback
	ReactionLaunch
	ReactionStun
)

var reactionNames = map[string]Reaction{
	"Flinch":    ReactionFlinch,
	"Knockback": ReactionKnockback,
	"Launch":    ReactionLaunch,
	"Stun":      ReactionStun,
}
