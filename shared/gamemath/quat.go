package gamemath

import "math"

// Quat is a unit quaternion used for character orientation.
type Quat struct {
	W, X, Y, Z float64
}

// Identity is the no-rotation quaternion.
var Identity = Quat{W: 1}

// AxisAngle builds a rotation of angle radians about axis. A zero axis
// yields the identity.
func AxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Normalize()
	if n.IsZero() {
		return Identity
	}
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// FromYaw rotates about +Y.
func FromYaw(yaw float64) Quat { return AxisAngle(Up, yaw) }

// LookRotation returns the yaw rotation that points local forward along dir
// projected onto the ground plane.
func LookRotation(dir Vec3) Quat {
	if dir.PlanarLen() == 0 {
		return Identity
	}
	return FromYaw(math.Atan2(dir.X, dir.Z))
}

// Mul composes rotations: q.Mul(r) applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

func (q Quat) Conjugate() Quat { return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z} }

func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if l == 0 {
		return Identity
	}
	return Quat{W: q.W / l, X: q.X / l, Y: q.Y / l, Z: q.Z / l}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}

// Yaw extracts the heading about +Y of the rotated forward vector.
func (q Quat) Yaw() float64 {
	f := q.Rotate(Forward)
	return math.Atan2(f.X, f.Z)
}

// Angle returns the rotation angle in radians between q and r.
func (q Quat) Angle(r Quat) float64 {
	d := math.Abs(q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z)
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// Slerp interpolates from q to r by t in [0, 1] along the shortest arc.
func (q Quat) Slerp(r Quat, t float64) Quat {
	dot := q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
	if dot < 0 {
		r = Quat{W: -r.W, X: -r.X, Y: -r.Y, Z: -r.Z}
		dot = -dot
	}
	if dot > 0.9995 {
		return Quat{
			W: q.W + (r.W-q.W)*t,
			X: q.X + (r.X-q.X)*t,
			Y: q.Y + (r.Y-q.Y)*t,
			Z: q.Z + (r.Z-q.Z)*t,
		}.Normalize()
	}
	theta := math.Acos(dot)
	sin := math.Sin(theta)
	a := math.Sin((1-t)*theta) / sin
	b := math.Sin(t*theta) / sin
	return Quat{
		W: q.W*a + r.W*b,
		X: q.X*a + r.X*b,
		Y: q.Y*a + r.Y*b,
		Z: q.Z*a + r.Z*b,
	}
}
