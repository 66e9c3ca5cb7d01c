package animations

import "math"

// Clip is a named, immutable skeletal pose sequence with a fixed duration.
type Clip struct {
	Name     string
	Duration float64 // seconds at speed 1
}

// playhead tracks one clip's local time.
type playhead struct {
	clip     *Clip
	time     float64
	speed    float64
	loop     bool
	finished bool
	looped   bool // wrapped at least once since the last restart
}

func newPlayhead(clip *Clip, speed float64, loop bool) *playhead {
	return &playhead{clip: clip, speed: speed, loop: loop}
}

// advance moves the playhead by speed*dt, wrapping when looping and clamping
// to the clip duration otherwise.
func (p *playhead) advance(dt float64) {
	if p == nil || p.clip == nil {
		return
	}
	d := p.clip.Duration
	if d <= 0 {
		p.time = 0
		p.finished = !p.loop
		return
	}
	p.time += p.speed * dt
	if p.loop {
		if p.time >= d {
			p.time = math.Mod(p.time, d)
			p.looped = true
		}
		return
	}
	if p.time >= d {
		p.time = d
		p.finished = true
	}
}

func (p *playhead) restart() {
	p.time = 0
	p.finished = false
	p.looped = false
}
