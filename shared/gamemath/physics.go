package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ApplyPlanarFriction slows the horizontal (XZ) part of a velocity, leaving Y alone.
func ApplyPlanarFriction(v Vec3, friction float64) Vec3 {
	speed := v.PlanarLen()
	if speed <= friction || speed == 0 {
		return Vec3{Y: v.Y}
	}
	k := (speed - friction) / speed
	return Vec3{X: v.X * k, Y: v.Y, Z: v.Z * k}
}
