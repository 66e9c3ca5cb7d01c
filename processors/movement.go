package processors

import (
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/tanema/gween"
)

type movementInstance struct {
	velocity gamemath.Vec3 // world space, Velocity mode
	start    gamemath.Vec3
	target   gamemath.Vec3
	applied  gamemath.Vec3 // eased displacement already moved
	tween    *gween.Tween
	stopped  bool
}

// Movement drives velocity and eased-displacement events.
type Movement struct {
	arena[movementInstance]
}

func (p *Movement) Kind() events.Kind { return events.KindMovement }

func (p *Movement) Process(f *Frame, key events.Key, ev *events.MovementEvent) {
	inst, entered := p.enter(key)
	if entered {
		p.begin(f, inst, ev)
	}
	switch ev.Mode {
	case events.MoveVelocity:
		p.integrate(f, inst, ev)
	case events.MoveEasing:
		p.ease(f, inst, ev)
	}
}

func (p *Movement) begin(f *Frame, inst *movementInstance, ev *events.MovementEvent) {
	body := f.Actor.Body
	facing := body.Orientation()
	switch ev.Mode {
	case events.MoveVelocity:
		inst.velocity = facing.Rotate(ev.Velocity)
	case events.MoveEasing:
		inst.start = body.Position()
		offset := facing.Rotate(ev.Target)
		if ev.MoveTowardEnemy {
			if dir := towardOpponent(f); !dir.IsZero() {
				offset = dir.Scale(offset.PlanarLen()).Add(gamemath.Vec3{Y: offset.Y})
			}
		}
		inst.target = inst.start.Add(offset)
		inst.tween = gween.New(0, 1, float32(ev.Length()), ev.Easing.Func())
	}
}

func (p *Movement) integrate(f *Frame, inst *movementInstance, ev *events.MovementEvent) {
	body := f.Actor.Body
	v := inst.velocity
	if ev.UseStickInput {
		if stick := body.StickInput(); !stick.IsZero() {
			v = stick.Planar().Normalize().Scale(v.PlanarLen()).Add(gamemath.Vec3{Y: v.Y})
		}
	}
	if ev.MoveTowardEnemy {
		if dir := towardOpponent(f); !dir.IsZero() {
			v = dir.Scale(v.PlanarLen()).Add(gamemath.Vec3{Y: v.Y})
		}
	}
	if ev.StopOnProximity && withinProximity(f) {
		v = gamemath.Vec3{}
	}
	if ev.RotateTowardMovement && v.PlanarLen() > 0 {
		body.SetTargetOrientation(gamemath.LookRotation(v))
	}
	body.Move(v.Scale(f.Delta()))
}

func (p *Movement) ease(f *Frame, inst *movementInstance, ev *events.MovementEvent) {
	if inst.stopped {
		return
	}
	if ev.StopOnProximity && withinProximity(f) {
		// Hold at the current point instead of snapping to the target.
		inst.stopped = true
		inst.target = inst.start.Add(inst.applied)
		return
	}
	body := f.Actor.Body
	total := inst.target.Sub(inst.start)
	want := total.Scale(p.progress(f, inst, ev))
	body.Move(want.Sub(inst.applied))
	inst.applied = want
	if ev.RotateTowardMovement && total.PlanarLen() > 0 {
		body.SetTargetOrientation(gamemath.LookRotation(total))
	}
}

func (p *Movement) progress(f *Frame, inst *movementInstance, ev *events.MovementEvent) float64 {
	if ev.Length() <= 0 || inst.tween == nil {
		return 1
	}
	v, _ := inst.tween.Set(float32(f.Time - ev.Start))
	return float64(v)
}

// Reset forgets the instance. Movement already applied is kept.
func (p *Movement) Reset(_ *Frame, key events.Key) { p.exit(key) }

func (p *Movement) Sweep(f *Frame) { p.sweep(f, p.Reset) }
