package simulation

import "github.com/automoto/animevent/config"

// HitStop freezes simulated time for a short real-time duration.
type HitStop struct {
	remaining float64
}

// Start begins or extends the freeze. Durations are capped at
// config.Effects.HitStopMaxSeconds; a shorter request never shortens a
// running freeze.
func (h *HitStop) Start(duration float64) {
	if duration <= 0 {
		return
	}
	if limit := config.Effects.HitStopMaxSeconds; limit > 0 && duration > limit {
		duration = limit
	}
	if duration > h.remaining {
		h.remaining = duration
	}
}

// Stop cancels any pending freeze.
func (h *HitStop) Stop() { h.remaining = 0 }

// Active reports whether simulated time is frozen.
func (h *HitStop) Active() bool { return h.remaining > 0 }

// Remaining returns the real seconds left on the freeze.
func (h *HitStop) Remaining() float64 { return h.remaining }

// Tick consumes real time from the freeze.
func (h *HitStop) Tick(realDt float64) {
	if h.remaining <= 0 {
		return
	}
	h.remaining -= realDt
	if h.remaining < 0 {
		h.remaining = 0
	}
}
