package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionDodge
	ActionDash
	ActionAttack
	ActionMagic
	ActionCounter
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "None",
	ActionJump:        "Jump",
	ActionDodge:       "Dodge",
	ActionDash:        "Dash",
	ActionAttack:      "Attack",
	ActionMagic:       "Magic",
	ActionCounter:     "Counter",
	ActionMoveLeft:    "MoveLeft",
	ActionMoveRight:   "MoveRight",
	ActionMoveForward: "MoveForward",
	ActionMoveBack:    "MoveBack",
	ActionPause:       "Pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ParseAction maps an authored action name to its ActionID.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// ActionStates maps the actions that change character state to the state
// they enter.
var ActionStates = map[ActionID]StateID{
	ActionJump:    StateJump,
	ActionDodge:   StateDodge,
	ActionDash:    StateDash,
	ActionAttack:  StateAttack,
	ActionMagic:   StateMagic,
	ActionCounter: StateCounter,
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeyJ},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionDodge: {
				Keys: []ebiten.Key{ebiten.KeyK},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionMagic: {
				Keys: []ebiten.Key{ebiten.KeyL},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionCounter: {
				Keys: []ebiten.Key{ebiten.KeyI},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
