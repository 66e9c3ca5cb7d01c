// Package simulation holds the frame-global state shared by every
// character: the fixed clock, slow-motion, hit-stop and screen overlays.
package simulation

import "github.com/automoto/animevent/config"

// Context is passed to every processor call in place of ambient globals.
type Context struct {
	FixedDelta float64 // real seconds per tick
	MatchEnded bool

	TimeScale *TimeScale
	HitStop   *HitStop
	Overlays  *Overlays

	tick        int
	clock       float64 // simulated seconds
	realDelta   float64
	scaledDelta float64
}

// NewContext creates a context ticking at config.FixedDelta.
func NewContext() *Context {
	return &Context{
		FixedDelta: config.FixedDelta(),
		TimeScale:  NewTimeScale(),
		HitStop:    &HitStop{},
		Overlays:   &Overlays{},
	}
}

// Step advances the clock by one tick of realDt seconds. Simulated time is
// frozen while a hit-stop runs and otherwise scaled by the time scale.
func (c *Context) Step(realDt float64) {
	c.tick++
	c.realDelta = realDt
	if c.HitStop.Active() {
		c.HitStop.Tick(realDt)
		c.scaledDelta = 0
		return
	}
	c.scaledDelta = realDt * c.TimeScale.Scale()
	c.clock += c.scaledDelta
}

// StartHitStop freezes simulated time. Slow-motion holders are released.
func (c *Context) StartHitStop(duration float64) {
	if duration <= 0 {
		return
	}
	c.TimeScale.Reset()
	c.HitStop.Start(duration)
}

// StopHitStop cancels a pending hit-stop.
func (c *Context) StopHitStop() { c.HitStop.Stop() }

// RealDelta is the unscaled duration of the current tick.
func (c *Context) RealDelta() float64 { return c.realDelta }

// ScaledDelta is the simulated duration of the current tick.
func (c *Context) ScaledDelta() float64 { return c.scaledDelta }

// Clock is the simulated time elapsed since the context was created.
func (c *Context) Clock() float64 { return c.clock }

// Tick is the number of steps taken.
func (c *Context) Tick() int { return c.tick }

// Reset restores every global effect to its default.
func (c *Context) Reset() {
	c.TimeScale.Reset()
	c.HitStop.Stop()
	c.Overlays.Reset()
}
