package events

import (
	"fmt"
	"sort"
)

// Key identifies one declared event: its clip, its kind and its ordinal
// among same-kind events of that clip in declaration order. Keys are stable
// for as long as the clip's schedule is unchanged.
type Key struct {
	Clip  string
	Kind  Kind
	Index int
}

func (k Key) String() string { return fmt.Sprintf("%s/%s#%d", k.Clip, k.Kind, k.Index) }

// Entry pairs a declared event with its key.
type Entry struct {
	Key   Key
	Event Event
}

// Schedule is the ordered, read-only list of events declared for one clip.
type Schedule struct {
	clip    string
	entries []Entry
	counts  [KindCount]int
}

// NewSchedule builds a schedule for clip, keeping declaration order. Nil
// events are skipped.
func NewSchedule(clip string, evs ...Event) *Schedule {
	s := &Schedule{clip: clip, entries: make([]Entry, 0, len(evs))}
	for _, ev := range evs {
		if ev == nil {
			continue
		}
		k := ev.Kind()
		s.entries = append(s.entries, Entry{
			Key:   Key{Clip: clip, Kind: k, Index: s.counts[k]},
			Event: ev,
		})
		s.counts[k]++
	}
	return s
}

// Empty returns a schedule with no events.
func Empty(clip string) *Schedule { return &Schedule{clip: clip} }

func (s *Schedule) Clip() string { return s.clip }

// Entries returns the events in declaration order. Callers must not modify
// the returned slice.
func (s *Schedule) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Count returns how many events of kind k are declared.
func (s *Schedule) Count(k Kind) int {
	if s == nil || k < 0 || k >= KindCount {
		return 0
	}
	return s.counts[k]
}

// Has reports whether any event of kind k is declared.
func (s *Schedule) Has(k Kind) bool { return s.Count(k) > 0 }

// Overlap is a pair of same-kind events whose windows intersect.
type Overlap struct {
	A, B Key
}

func (o Overlap) String() string { return fmt.Sprintf("%s overlaps %s", o.A, o.B) }

// Overlaps lists same-kind events with intersecting windows. Both events of
// such a pair are processed independently at runtime.
func (s *Schedule) Overlaps() []Overlap {
	var out []Overlap
	for i, a := range s.Entries() {
		for _, b := range s.entries[i+1:] {
			if a.Key.Kind == b.Key.Kind && a.Event.Span().Overlaps(b.Event.Span()) {
				out = append(out, Overlap{A: a.Key, B: b.Key})
			}
		}
	}
	return out
}

// Library holds schedules per character per clip.
type Library struct {
	schedules map[string]map[string]*Schedule
}

// NewLibrary creates an empty schedule library.
func NewLibrary() *Library {
	return &Library{schedules: make(map[string]map[string]*Schedule)}
}

// Put stores s for character, replacing any schedule for the same clip.
func (l *Library) Put(character string, s *Schedule) {
	clips, ok := l.schedules[character]
	if !ok {
		clips = make(map[string]*Schedule)
		l.schedules[character] = clips
	}
	clips[s.Clip()] = s
}

// Schedule returns the schedule for a character's clip, or an empty schedule
// when none was authored.
func (l *Library) Schedule(character, clip string) *Schedule {
	if l != nil {
		if s, ok := l.schedules[character][clip]; ok {
			return s
		}
	}
	return Empty(clip)
}

// Characters lists characters with at least one schedule, sorted.
func (l *Library) Characters() []string {
	out := make([]string, 0, len(l.schedules))
	for c := range l.schedules {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Clips lists the clips with schedules for character, sorted.
func (l *Library) Clips(character string) []string {
	out := make([]string, 0, len(l.schedules[character]))
	for c := range l.schedules[character] {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
