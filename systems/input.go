package systems

import (
	"log"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for gamepad IDs to avoid allocations
var (
	gamepadIDs    []ebiten.GamepadID
	newGamepadIDs []ebiten.GamepadID
)

// UpdateInput polls keyboard and gamepads into the input of device-driven
// fighters. Must run BEFORE UpdateCharacters in the system order.
func UpdateInput(e *ecs.ECS) {
	newGamepadIDs = inpututil.AppendJustConnectedGamepadIDs(newGamepadIDs[:0])
	for _, id := range newGamepadIDs {
		log.Printf("[input] gamepad %d connected: %s", id, ebiten.GamepadName(id))
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.Input.Each(e.World, func(entry *donburi.Entry) {
		input := components.Input.Get(entry)
		if input.Method != components.InputKeyboard && input.Method != components.InputGamepad {
			return
		}
		input.Swap()
		pollDevices(input)
		syncStick(entry, input)
	})
}

func pollDevices(input *components.InputData) {
	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.Stick = input.StickFromActions()
	if stick, ok := analogStick(); ok {
		input.Stick = stick
		gamepadUsed = true
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.Method = components.InputGamepad
	} else if keyboardUsed {
		input.Method = components.InputKeyboard
	}
}

// analogStick reads the left stick of the first gamepad outside the deadzone.
// Screen up is arena forward.
func analogStick() (gamemath.Vec3, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		s := gamemath.Vec3{X: h, Z: -v}
		if s.Len() < deadzone {
			continue
		}
		if s.Len() > 1 {
			s = s.Normalize()
		}
		return s, true
	}
	return gamemath.Vec3{}, false
}

// UpdateScripts replays scripted presses for fighters with a Script.
func UpdateScripts(e *ecs.ECS) {
	components.Script.Each(e.World, func(entry *donburi.Entry) {
		script := components.Script.Get(entry)
		input := components.Input.Get(entry)
		input.Swap()
		for _, p := range script.Presses {
			hold := p.Hold
			if hold <= 0 {
				hold = 1
			}
			if script.Tick >= p.At && script.Tick < p.At+hold {
				input.Current[p.Action] = true
			}
		}
		input.Stick = input.StickFromActions()
		syncStick(entry, input)
		script.Tick++
	})
}

// syncStick hands the polled stick to the fighter body.
func syncStick(entry *donburi.Entry, input *components.InputData) {
	if entry.HasComponent(components.Character) {
		components.Character.Get(entry).Stick = input.Stick
	}
}
