package components

import (
	"github.com/automoto/vellum/slider"
	"github.com/yohamta/donburi"
)

// OptionPage selects the visible options tab
type OptionPage int

const (
	OptionPageSystem OptionPage = iota
	OptionPageDisplay
	OptionPageSound
	numOptionPages
)

// NumOptionPages is the number of option tabs
const NumOptionPages = int(numOptionPages)

// OptionSliderID identifies one slider on the options pages
type OptionSliderID int

const (
	SliderTextSpeed OptionSliderID = iota
	SliderAutoDelay
	SliderTextSize
	SliderMainVolume
	SliderMusicVolume
	SliderSFXVolume
	SliderVoiceVolume
)

// OptionsData stores the options page state
type OptionsData struct {
	CurrentPage OptionPage
	Sliders     map[OptionSliderID]*slider.Slider
	Dirty       bool // values changed since the last save
}

var Options = donburi.NewComponentType[OptionsData]()
