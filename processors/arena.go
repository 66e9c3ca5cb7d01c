package processors

import (
	"sort"

	"github.com/automoto/animevent/events"
)

// Processor is the lifecycle every kind shares. Reset is idempotent: it
// tears down a live instance and does nothing for an inactive one.
type Processor interface {
	Kind() events.Kind
	Reset(f *Frame, key events.Key)
	// Sweep resets every live instance.
	Sweep(f *Frame)
	Active(key events.Key) bool
	Live() int
}

// arena holds the live instances of one kind keyed by event key.
type arena[T any] struct {
	live map[events.Key]*T
}

// enter returns the instance for key, creating it on first contact.
func (a *arena[T]) enter(key events.Key) (inst *T, entered bool) {
	if inst, ok := a.live[key]; ok {
		return inst, false
	}
	if a.live == nil {
		a.live = make(map[events.Key]*T)
	}
	inst = new(T)
	a.live[key] = inst
	return inst, true
}

func (a *arena[T]) get(key events.Key) *T { return a.live[key] }

func (a *arena[T]) exit(key events.Key) (*T, bool) {
	inst, ok := a.live[key]
	if ok {
		delete(a.live, key)
	}
	return inst, ok
}

func (a *arena[T]) keys() []events.Key {
	out := make([]events.Key, 0, len(a.live))
	for k := range a.live {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Clip != out[j].Clip {
			return out[i].Clip < out[j].Clip
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Active reports whether key has a live instance.
func (a *arena[T]) Active(key events.Key) bool {
	_, ok := a.live[key]
	return ok
}

// Live returns the number of live instances.
func (a *arena[T]) Live() int { return len(a.live) }

func (a *arena[T]) sweep(f *Frame, reset func(*Frame, events.Key)) {
	for _, k := range a.keys() {
		reset(f, k)
	}
}
