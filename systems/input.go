package systems

import (
	"strings"

	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PointerState is one frame of raw pointer input.
type PointerState struct {
	X, Y          float64
	Kind          components.PointerKind
	TouchID       int
	Down          bool
	SecondaryDown bool
}

// PointerSource supplies pointer input. Tests replace Pointer with a fake.
type PointerSource interface {
	Poll() PointerState
}

// Pointer is the pointer source read by UpdateInput
var Pointer PointerSource = &ebitenPointer{}

// ebitenPointer merges the mouse and the first active touch. A touch that
// started is followed until it lifts, then reported once as released.
type ebitenPointer struct {
	touches  []ebiten.TouchID
	tracked  ebiten.TouchID
	tracking bool
	lastX    float64
	lastY    float64
}

func (p *ebitenPointer) Poll() PointerState {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])

	if p.tracking {
		for _, id := range p.touches {
			if id == p.tracked {
				x, y := ebiten.TouchPosition(id)
				p.lastX, p.lastY = float64(x), float64(y)
				return PointerState{X: p.lastX, Y: p.lastY, Kind: components.PointerTouch, TouchID: int(id), Down: true}
			}
		}
		p.tracking = false
		return PointerState{X: p.lastX, Y: p.lastY, Kind: components.PointerTouch, TouchID: int(p.tracked)}
	}

	if len(p.touches) > 0 {
		p.tracked = p.touches[0]
		p.tracking = true
		x, y := ebiten.TouchPosition(p.tracked)
		p.lastX, p.lastY = float64(x), float64(y)
		return PointerState{X: p.lastX, Y: p.lastY, Kind: components.PointerTouch, TouchID: int(p.tracked), Down: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:             float64(x),
		Y:             float64(y),
		Kind:          components.PointerMouse,
		Down:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		SecondaryDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run before every other UI system.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Nobody claimed hover last frame, so the pointer left every widget
	if !input.HoverClaimed {
		input.HoveredWidget = ""
	}
	input.HoverClaimed = false

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMenuLeft] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogRight {
		input.Current[cfg.ActionMenuRight] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogUp {
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogDown {
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	pointerUsed := updatePointer(&input.Pointer, Pointer.Poll())

	// Update last input method - gamepad takes priority if both used
	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case pointerUsed:
		input.LastInputMethod = components.InputPointer
	}
}

// updatePointer folds a raw poll into the frame's pointer data and reports
// whether the pointer was used.
func updatePointer(p *components.PointerData, s PointerState) bool {
	moved := s.X != p.X || s.Y != p.Y
	wasDown := p.Pressed
	wasSecondary := p.SecondaryHeld

	*p = components.PointerData{
		X:                s.X,
		Y:                s.Y,
		Kind:             s.Kind,
		TouchID:          s.TouchID,
		Pressed:          s.Down,
		JustPressed:      s.Down && !wasDown,
		JustReleased:     !s.Down && wasDown,
		SecondaryPressed: s.SecondaryDown && !wasSecondary,
		SecondaryHeld:    s.SecondaryDown,
	}
	return moved || s.Down || s.SecondaryDown
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	// Detect and cache controller type
	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// swallowInput hides this frame's presses from every system that runs after
// the caller. Held actions stay held so they do not fire again next frame.
func swallowInput(input *components.InputData) {
	input.Previous = input.Current
	input.Pointer.Consumed = true
}
