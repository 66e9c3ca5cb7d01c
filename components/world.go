package components

import (
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/simulation"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the arena collision space (XZ plane).
var Space = donburi.NewComponentType[resolv.Space]()

// SimulationData holds the frame-global clock, time scale, hit-stop and
// overlays (singleton component).
type SimulationData struct {
	*simulation.Context
}

var Simulation = donburi.NewComponentType[SimulationData]()

// ContentData holds the event schedule library and its reload watcher
// (singleton component).
type ContentData struct {
	Dir     string
	Library *events.Library
	Watcher *events.Watcher
	Reloads int
	LastErr error
	pending bool
}

var Content = donburi.NewComponentType[ContentData]()

// MarkDirty schedules a reload at the next frame boundary.
func (c *ContentData) MarkDirty() { c.pending = true }

// TakeDirty reports and clears a pending reload.
func (c *ContentData) TakeDirty() bool {
	p := c.pending
	c.pending = false
	return p
}
