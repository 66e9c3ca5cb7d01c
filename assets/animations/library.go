package animations

import (
	"sort"

	"github.com/automoto/animevent/config"
)

// Library resolves clip names to clips.
type Library struct {
	clips map[string]*Clip
}

// NewLibrary creates an empty clip library.
func NewLibrary() *Library {
	return &Library{clips: make(map[string]*Clip)}
}

// NewLibraryFromConfig builds a library from the clip definitions of one
// character in config.CharacterClips. Unknown characters yield an empty library.
func NewLibraryFromConfig(character string) *Library {
	lib := NewLibrary()
	for name, def := range config.CharacterClips[character] {
		lib.Add(name, def.Duration)
	}
	return lib
}

// Add registers (or replaces) a clip.
func (l *Library) Add(name string, duration float64) *Clip {
	if duration < 0 {
		duration = 0
	}
	c := &Clip{Name: name, Duration: duration}
	l.clips[name] = c
	return c
}

// Lookup reports whether the clip exists.
func (l *Library) Lookup(name string) (*Clip, bool) {
	if l == nil {
		return nil, false
	}
	c, ok := l.clips[name]
	return c, ok
}

// Clip returns the named clip, or a zero-duration clip when it is missing.
func (l *Library) Clip(name string) *Clip {
	if c, ok := l.Lookup(name); ok {
		return c
	}
	return &Clip{Name: name}
}

// Names returns the registered clip names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.clips))
	for n := range l.clips {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
