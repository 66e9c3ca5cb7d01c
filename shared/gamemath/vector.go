package gamemath

import "math"

// Vec3 is a 3D vector. Y is up, +Z is a character's local forward.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Up      = Vec3{Y: 1}
	Forward = Vec3{Z: 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// PlanarLen is the length of the vector projected onto the ground (XZ) plane.
func (v Vec3) PlanarLen() float64 { return math.Hypot(v.X, v.Z) }

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Planar drops the Y component.
func (v Vec3) Planar() Vec3 { return Vec3{X: v.X, Z: v.Z} }

func (v Vec3) Distance(o Vec3) float64 { return o.Sub(v).Len() }

// PlanarDistance measures distance on the ground plane only.
func (v Vec3) PlanarDistance(o Vec3) float64 { return o.Sub(v).PlanarLen() }

// Lerp interpolates between v and o; t is not clamped.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// ApproxEqual compares component-wise within eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}
