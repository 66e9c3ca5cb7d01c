package processors

import "github.com/automoto/animevent/config"

// BufferedInput is an action latched ahead of the moment it can apply.
type BufferedInput struct {
	Action      config.ActionID
	At          float64 // simulated clock when latched
	Transitions int     // state changes survived
}

// InputBuffer is the character-level store of latched actions. Entries
// outlive the state that latched them by one transition, until consumed or
// expired.
type InputBuffer struct {
	Lifetime float64
	entries  []BufferedInput
}

// NewInputBuffer creates a buffer using config.Combat.BufferLifetime.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{Lifetime: config.Combat.BufferLifetime}
}

// Latch records action at now, replacing an older latch of the same action.
func (b *InputBuffer) Latch(action config.ActionID, now float64) {
	b.remove(action)
	b.entries = append(b.entries, BufferedInput{Action: action, At: now})
}

// Expire drops entries older than the lifetime.
func (b *InputBuffer) Expire(now float64) {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if b.Lifetime <= 0 || now-e.At <= b.Lifetime {
			kept = append(kept, e)
		}
	}
	b.entries = kept
}

// Transition records a state change. Entries that already survived one
// are dropped.
func (b *InputBuffer) Transition() {
	kept := b.entries[:0]
	for _, e := range b.entries {
		e.Transitions++
		if e.Transitions <= 1 {
			kept = append(kept, e)
		}
	}
	b.entries = kept
}

// Resolve consumes the oldest live entry that accept allows.
func (b *InputBuffer) Resolve(now float64, accept func(config.ActionID) bool) (config.ActionID, bool) {
	b.Expire(now)
	for i, e := range b.entries {
		if accept(e.Action) {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return e.Action, true
		}
	}
	return config.ActionNone, false
}

// Has reports whether action is latched.
func (b *InputBuffer) Has(action config.ActionID) bool {
	for _, e := range b.entries {
		if e.Action == action {
			return true
		}
	}
	return false
}

// Pending returns a copy of the latched entries, oldest first.
func (b *InputBuffer) Pending() []BufferedInput {
	return append([]BufferedInput(nil), b.entries...)
}

func (b *InputBuffer) Len() int { return len(b.entries) }

func (b *InputBuffer) Clear() { b.entries = b.entries[:0] }

func (b *InputBuffer) remove(action config.ActionID) {
	for i, e := range b.entries {
		if e.Action == action {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}
