package components

import (
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputScripted
	InputBot
)

// InputData stores the current and previous frame's pressed state for all
// actions of one fighter. JustPressed is computed on demand by comparing
// frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Stick is the planar movement input in arena space, length <= 1.
	Stick  gamemath.Vec3
	Method InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// Swap moves the current frame to previous and clears current.
func (in *InputData) Swap() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Stick = gamemath.Vec3{}
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	if a < 0 || a >= cfg.ActionCount {
		return false
	}
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	if a < 0 || a >= cfg.ActionCount {
		return false
	}
	return in.Current[a] && !in.Previous[a]
}

// StickFromActions derives the stick from the four move actions.
func (in *InputData) StickFromActions() gamemath.Vec3 {
	var s gamemath.Vec3
	if in.Current[cfg.ActionMoveLeft] {
		s.X--
	}
	if in.Current[cfg.ActionMoveRight] {
		s.X++
	}
	if in.Current[cfg.ActionMoveForward] {
		s.Z++
	}
	if in.Current[cfg.ActionMoveBack] {
		s.Z--
	}
	if s.Len() > 1 {
		s = s.Normalize()
	}
	return s
}

// ScriptedPress holds an action down from tick At for Hold ticks.
type ScriptedPress struct {
	At     int
	Hold   int
	Action cfg.ActionID
}

// ScriptData drives a fighter's input from a fixed script.
type ScriptData struct {
	Presses []ScriptedPress
	Tick    int
}

var Script = donburi.NewComponentType[ScriptData]()

// BotData tracks bot decision making.
type BotData struct {
	Difficulty    cfg.BotDifficulty
	DecisionTimer int
	Distance      float64 // planar distance to the target at the last decision
}

var Bot = donburi.NewComponentType[BotData]()
