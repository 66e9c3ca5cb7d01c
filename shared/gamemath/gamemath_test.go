package gamemath

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		speed, friction, want float64
	}{
		{5, 1, 4},
		{-5, 1, -4},
		{0.5, 1, 0},
		{-0.5, 1, 0},
	}
	for _, tt := range tests {
		if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
			t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
		}
	}
}

func TestApplyPlanarFrictionKeepsVertical(t *testing.T) {
	v := ApplyPlanarFriction(Vec3{X: 3, Y: -2, Z: 4}, 1)
	if !near(v.PlanarLen(), 4) || v.Y != -2 {
		t.Errorf("Expected planar speed 4 and Y -2, got %v", v)
	}
	if v := ApplyPlanarFriction(Vec3{X: 0.5, Y: 1}, 1); v != (Vec3{Y: 1}) {
		t.Errorf("Expected planar stop, got %v", v)
	}
}

func TestQuatRotateAndYaw(t *testing.T) {
	q := AxisAngle(Up, math.Pi/2)
	v := q.Rotate(Forward)
	if !v.ApproxEqual(Vec3{X: 1}, 1e-9) {
		t.Errorf("Expected +X, got %v", v)
	}
	if !near(q.Yaw(), math.Pi/2) {
		t.Errorf("Expected yaw pi/2, got %v", q.Yaw())
	}
	if got := LookRotation(Vec3{X: -1}).Yaw(); !near(got, -math.Pi/2) {
		t.Errorf("Expected yaw -pi/2, got %v", got)
	}
	if LookRotation(Vec3{Y: 3}) != Identity {
		t.Errorf("Expected vertical look to be identity")
	}
}

func TestQuatComposition(t *testing.T) {
	a := FromYaw(0.3)
	b := FromYaw(0.4)
	if got := b.Mul(a).Yaw(); !near(got, 0.7) {
		t.Errorf("Expected composed yaw 0.7, got %v", got)
	}
	if got := a.Angle(b); !near(got, 0.1) {
		t.Errorf("Expected angle 0.1, got %v", got)
	}
	if got := a.Slerp(b, 0.5).Yaw(); !near(got, 0.35) {
		t.Errorf("Expected slerp yaw 0.35, got %v", got)
	}
}

func TestSampleClampsAndEndsAtOne(t *testing.T) {
	curves := map[string]ease.TweenFunc{
		"nil":       nil,
		"linear":    ease.Linear,
		"in sine":   ease.InSine,
		"out sine":  ease.OutSine,
		"inout sin": ease.InOutSine,
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			if got := Sample(c, -1); !near(got, 0) {
				t.Errorf("Expected 0 below range, got %v", got)
			}
			if got := Sample(c, 2); !near(got, 1) {
				t.Errorf("Expected 1 above range, got %v", got)
			}
		})
	}
	if got := Sample(ease.Linear, 0.25); !near(got, 0.25) {
		t.Errorf("Expected linear 0.25, got %v", got)
	}
	if Sample(ease.InSine, 0.5) >= 0.5 || Sample(ease.OutSine, 0.5) <= 0.5 {
		t.Errorf("Expected ease-in below and ease-out above linear at midpoint")
	}
}
