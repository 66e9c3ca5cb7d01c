package processors

import (
	"math"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/automoto/animevent/simulation"
)

type fakeBody struct {
	pos        gamemath.Vec3
	facing     gamemath.Quat
	target     gamemath.Quat
	stick      gamemath.Vec3
	dodgeOpen  bool
	dodgeFlips int
}

func (b *fakeBody) Position() gamemath.Vec3              { return b.pos }
func (b *fakeBody) Move(d gamemath.Vec3)                 { b.pos = b.pos.Add(d) }
func (b *fakeBody) Orientation() gamemath.Quat           { return b.facing }
func (b *fakeBody) TargetOrientation() gamemath.Quat     { return b.target }
func (b *fakeBody) SetTargetOrientation(q gamemath.Quat) { b.target = q }
func (b *fakeBody) StickInput() gamemath.Vec3            { return b.stick }
func (b *fakeBody) SetPerfectDodgeWindow(open bool) {
	b.dodgeOpen = open
	b.dodgeFlips++
}

type fakeWeapon struct {
	armed      bool
	hitOnArmed bool // report a hit on every pass while armed
	hit        bool
	arms       int
	disarms    int
	trail      bool
	tip        gamemath.Vec3
}

func (w *fakeWeapon) Arm(*events.AttackEvent) {
	w.armed = true
	w.arms++
}
func (w *fakeWeapon) Disarm() {
	w.armed = false
	w.disarms++
}
func (w *fakeWeapon) IsHit() bool {
	if w.hitOnArmed {
		return w.armed
	}
	return w.hit
}
func (w *fakeWeapon) Armed() bool                { return w.armed }
func (w *fakeWeapon) SetTrailActive(on bool)     { w.trail = on }
func (w *fakeWeapon) TipPosition() gamemath.Vec3 { return w.tip }
func (w *fakeWeapon) LocalOffset() gamemath.Vec3 { return gamemath.Vec3{} }

type fakeCamera struct {
	played  []string
	synced  []bool
	shakes  int
	stopped int
}

func (c *fakeCamera) PlayAnimation(clip string, _ float64, sync Animator) {
	c.played = append(c.played, clip)
	c.synced = append(c.synced, sync != nil)
}
func (c *fakeCamera) StartShake(_, _ float64) { c.shakes++ }
func (c *fakeCamera) StopAnimation()          { c.stopped++ }

type fakeAnimator struct{ t float64 }

func (a *fakeAnimator) CurrentTime() float64  { return a.t }
func (a *fakeAnimator) IsBlendComplete() bool { return true }

type fakeOpponent struct {
	pos     gamemath.Vec3
	dodge   bool
	stunned bool
}

func (o *fakeOpponent) Position() gamemath.Vec3  { return o.pos }
func (o *fakeOpponent) PerfectDodgeWindow() bool { return o.dodge }
func (o *fakeOpponent) IsStunned() bool          { return o.stunned }

type fakeCaps struct {
	executable map[config.ActionID]bool
	state      map[config.ActionID]bool
	trigger    map[config.ActionID]bool
}

func newFakeCaps() *fakeCaps {
	return &fakeCaps{
		executable: map[config.ActionID]bool{},
		state:      map[config.ActionID]bool{},
		trigger:    map[config.ActionID]bool{},
	}
}

func (c *fakeCaps) IsActionExecutable(a config.ActionID) bool     { return c.executable[a] }
func (c *fakeCaps) ActionStateCondition(a config.ActionID) bool   { return c.state[a] }
func (c *fakeCaps) ActionTriggerCondition(a config.ActionID) bool { return c.trigger[a] }

type fakeSink struct{ ids []string }

func (s *fakeSink) PlaySound(id string, _ gamemath.Vec3) { s.ids = append(s.ids, id) }
func (s *fakeSink) Spawn(id string, _ gamemath.Vec3)     { s.ids = append(s.ids, id) }

type harness struct {
	sim    *simulation.Context
	actor  *Actor
	body   *fakeBody
	weapon *fakeWeapon
	camera *fakeCamera
	opp    *fakeOpponent
	caps   *fakeCaps
	sounds *fakeSink
	sparks *fakeSink
	d      *Dispatcher
}

func newHarness() *harness {
	h := &harness{
		sim:    simulation.NewContext(),
		body:   &fakeBody{facing: gamemath.Identity, target: gamemath.Identity},
		weapon: &fakeWeapon{},
		camera: &fakeCamera{},
		opp:    &fakeOpponent{pos: gamemath.Vec3{Z: 10}},
		caps:   newFakeCaps(),
		sounds: &fakeSink{},
		sparks: &fakeSink{},
		d:      NewDispatcher(),
	}
	h.actor = &Actor{
		Name:      "player",
		Body:      h.body,
		Animator:  &fakeAnimator{},
		Weapon:    h.weapon,
		Camera:    h.camera,
		Opponent:  h.opp,
		Caps:      h.caps,
		Audio:     h.sounds,
		Particles: h.sparks,
		Buffer:    NewInputBuffer(),
	}
	return h
}

func (h *harness) frame(t float64) *Frame {
	return &Frame{Sim: h.sim, Actor: h.actor, Time: t}
}

// step advances the clock one fixed tick and dispatches s at time t.
func (h *harness) step(s *events.Schedule, t float64) Result {
	h.sim.Step(h.sim.FixedDelta)
	return h.d.Dispatch(h.frame(t), s)
}

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
