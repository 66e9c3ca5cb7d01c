package components

import (
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// WeaponData is a fighter's held weapon. While armed, its resolv object is
// checked against opponent hurtboxes once per collision pass.
type WeaponData struct {
	Owner  *donburi.Entry
	Holder *CharacterData
	Object *resolv.Object

	// Grip is the weapon origin relative to the holder, in holder space.
	Grip gamemath.Vec3
	// Offset is the emission offset relative to the tip, in holder space.
	Offset gamemath.Vec3
	Reach  float64

	attack *events.AttackEvent
	armed  bool
	hit    bool
	trail  bool
	Hits   int // hits landed over the weapon's lifetime
}

var Weapon = donburi.NewComponentType[WeaponData]()

func (w *WeaponData) Arm(attack *events.AttackEvent) {
	w.attack = attack
	w.armed = true
}

func (w *WeaponData) Disarm() { w.armed = false }

func (w *WeaponData) Armed() bool { return w.armed }

// Attack is the payload of the current arming, nil when none was armed yet.
func (w *WeaponData) Attack() *events.AttackEvent { return w.attack }

func (w *WeaponData) IsHit() bool { return w.hit }

// RegisterHit records a connection on this collision pass.
func (w *WeaponData) RegisterHit() {
	w.hit = true
	w.Hits++
}

// BeginPass clears the hit flag ahead of a collision pass.
func (w *WeaponData) BeginPass() { w.hit = false }

func (w *WeaponData) SetTrailActive(active bool) { w.trail = active }
func (w *WeaponData) TrailActive() bool          { return w.trail }

// TipPosition is the world position of the weapon tip.
func (w *WeaponData) TipPosition() gamemath.Vec3 {
	if w.Holder == nil {
		return gamemath.Vec3{}
	}
	local := w.Grip.Add(gamemath.Forward.Scale(w.Reach))
	return w.Holder.Position().Add(w.Holder.Orientation().Rotate(local))
}

func (w *WeaponData) LocalOffset() gamemath.Vec3 { return w.Offset }

// Place moves the hit volume to the tip, sized and offset by the armed
// attack's hitbox.
func (w *WeaponData) Place() {
	if w.Object == nil || w.Holder == nil {
		return
	}
	center := w.TipPosition()
	if w.attack != nil {
		hb := w.attack.Hitbox
		center = center.Add(w.Holder.Orientation().Rotate(hb.Offset))
		if hb.Size.X > 0 && hb.Size.Z > 0 {
			w.Object.W = hb.Size.X
			w.Object.H = hb.Size.Z
		}
	}
	w.Object.X = center.X - w.Object.W/2
	w.Object.Y = center.Z - w.Object.H/2
	w.Object.Update()
}
