package components

import (
	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CharacterData is a fighter's body. The arena is 3D with Y up; the resolv
// hurtbox lives in the XZ plane.
type CharacterData struct {
	Name string

	position          gamemath.Vec3
	orientation       gamemath.Quat
	targetOrientation gamemath.Quat

	// Velocity is integrated by the physics system. Event-driven movement
	// goes through Move instead.
	Velocity     gamemath.Vec3
	Acceleration gamemath.Vec3 // knockback deceleration, cleared when the knockback ends
	KnockbackFor float64       // seconds of knockback remaining
	OnGround     bool

	Stick       gamemath.Vec3
	dodgeWindow bool

	FlashTicks int

	Hurtbox *resolv.Object
}

var Character = donburi.NewComponentType[CharacterData]()

// NewCharacterData places a character at pos facing yaw radians.
func NewCharacterData(name string, pos gamemath.Vec3, yaw float64) CharacterData {
	q := gamemath.FromYaw(yaw)
	return CharacterData{
		Name:              name,
		position:          pos,
		orientation:       q,
		targetOrientation: q,
		OnGround:          pos.Y <= config.Physics.GroundHeight,
	}
}

func (c *CharacterData) Position() gamemath.Vec3 { return c.position }

// Move displaces the character and keeps the hurtbox in step.
func (c *CharacterData) Move(delta gamemath.Vec3) {
	c.position = c.position.Add(delta)
	c.SyncHurtbox()
}

// SetPosition teleports the character.
func (c *CharacterData) SetPosition(p gamemath.Vec3) {
	c.position = p
	c.SyncHurtbox()
}

func (c *CharacterData) Orientation() gamemath.Quat       { return c.orientation }
func (c *CharacterData) TargetOrientation() gamemath.Quat { return c.targetOrientation }

func (c *CharacterData) SetTargetOrientation(q gamemath.Quat) { c.targetOrientation = q.Normalize() }

// SetOrientation sets the instantaneous heading.
func (c *CharacterData) SetOrientation(q gamemath.Quat) { c.orientation = q.Normalize() }

func (c *CharacterData) StickInput() gamemath.Vec3 { return c.Stick }

func (c *CharacterData) SetPerfectDodgeWindow(open bool) { c.dodgeWindow = open }
func (c *CharacterData) PerfectDodgeWindow() bool        { return c.dodgeWindow }

func (c *CharacterData) Grounded() bool { return c.OnGround }

// Launch sets the vertical speed and leaves the ground.
func (c *CharacterData) Launch(speed float64) {
	c.Velocity.Y = speed
	if speed > 0 {
		c.OnGround = false
	}
}

// SyncHurtbox centers the hurtbox on the character in the XZ plane.
func (c *CharacterData) SyncHurtbox() {
	if c.Hurtbox == nil {
		return
	}
	c.Hurtbox.X = c.position.X - c.Hurtbox.W/2
	c.Hurtbox.Y = c.position.Z - c.Hurtbox.H/2
	c.Hurtbox.Update()
}
