package processors

import (
	"math"

	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
)

type rotationInstance struct {
	applied float64 // degrees already composed onto the target orientation
}

// Rotation turns the target orientation by the eased angle of each event.
// Only the change since the previous frame is applied, since eased angles
// are not linear in time.
type Rotation struct {
	arena[rotationInstance]
}

func (p *Rotation) Kind() events.Kind { return events.KindRotation }

func (p *Rotation) Process(f *Frame, key events.Key, ev *events.RotationEvent) {
	inst, _ := p.enter(key)
	total := ev.TotalAngle * gamemath.Sample(ev.Easing.Func(), ev.Fraction(f.Time))
	delta := total - inst.applied
	inst.applied = total
	if delta == 0 {
		return
	}
	axis := ev.Axis
	if axis.IsZero() {
		axis = gamemath.Up
	}
	body := f.Actor.Body
	step := gamemath.AxisAngle(axis, delta*math.Pi/180)
	body.SetTargetOrientation(step.Mul(body.TargetOrientation()).Normalize())
}

// Applied returns the degrees composed so far by the instance for key.
func (p *Rotation) Applied(key events.Key) float64 {
	if inst := p.get(key); inst != nil {
		return inst.applied
	}
	return 0
}

func (p *Rotation) Reset(_ *Frame, key events.Key) { p.exit(key) }

func (p *Rotation) Sweep(f *Frame) { p.sweep(f, p.Reset) }
