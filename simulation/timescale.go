package simulation

import "sort"

// TimeScale is the global slow-motion authority. Each holder requests a
// scale; the smallest requested scale applies and 1.0 applies when no
// holder remains.
type TimeScale struct {
	holders map[any]float64
}

// NewTimeScale returns an authority with no holders.
func NewTimeScale() *TimeScale {
	return &TimeScale{holders: make(map[any]float64)}
}

// Acquire registers or updates holder's requested scale. Negative scales
// are treated as a full stop.
func (ts *TimeScale) Acquire(holder any, scale float64) {
	if scale < 0 {
		scale = 0
	}
	ts.holders[holder] = scale
}

// Release drops holder's request. It reports whether holder was present,
// so repeated releases are harmless.
func (ts *TimeScale) Release(holder any) bool {
	if _, ok := ts.holders[holder]; !ok {
		return false
	}
	delete(ts.holders, holder)
	return true
}

// Holds reports whether holder currently has a request registered.
func (ts *TimeScale) Holds(holder any) bool {
	_, ok := ts.holders[holder]
	return ok
}

// Reset drops every holder and restores the scale to 1.0.
func (ts *TimeScale) Reset() {
	clear(ts.holders)
}

// Held returns the number of active holders.
func (ts *TimeScale) Held() int { return len(ts.holders) }

// Scale returns the applied scale.
func (ts *TimeScale) Scale() float64 {
	if len(ts.holders) == 0 {
		return 1.0
	}
	scales := make([]float64, 0, len(ts.holders))
	for _, s := range ts.holders {
		scales = append(scales, s)
	}
	sort.Float64s(scales)
	if scales[0] > 1.0 {
		return 1.0
	}
	return scales[0]
}
