package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TitleOption represents the title screen buttons
type TitleOption int

const (
	TitleStart TitleOption = iota
	TitleContinue
	TitleOptions
	TitleLoad
	TitleExtra
	TitleExit
)

// TitleData stores the current state of the title screen
type TitleData struct {
	SelectedIndex    int           // Current selection index in VisibleOptions
	VisibleOptions   []TitleOption // Extra only shows when appreciation is enabled
	ContinueDisabled bool          // No autosave to resume
	ExtraDisabled    bool          // Extra is shown but nothing is unlocked
	Fade             *gween.Tween
	Alpha            float32
}

var Title = donburi.NewComponentType[TitleData]()
