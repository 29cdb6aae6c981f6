package components

import (
	cfg "github.com/automoto/vellum/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputPointer
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerKind distinguishes mouse from touch pointers
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// PointerData is the merged mouse/touch state for one frame.
type PointerData struct {
	X, Y             float64
	Kind             PointerKind
	TouchID          int
	Pressed          bool
	JustPressed      bool
	JustReleased     bool
	SecondaryPressed bool // right click, pressed this frame
	SecondaryHeld    bool
	// Consumed is set by the first widget that handles this frame's press so
	// nothing underneath reacts to it.
	Consumed bool
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
	Pointer         PointerData
	HoveredWidget   string // key of the widget under the pointer
	HoverClaimed    bool   // a widget reported hover this frame
}

var Input = donburi.NewComponentType[InputData]()
