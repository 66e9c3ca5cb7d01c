package gamemath

import "github.com/tanema/gween/ease"

// Sample evaluates a gween easing curve at a normalized fraction, returning
// the eased fraction. A nil curve samples linearly.
func Sample(curve ease.TweenFunc, fraction float64) float64 {
	fraction = Clamp01(fraction)
	if curve == nil {
		curve = ease.Linear
	}
	return float64(curve(float32(fraction), 0, 1, 1))
}
