package systems

import (
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/automoto/vellum/readtext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Process-wide user data, shared by every scene like the audio globals.
var (
	UserOptions  = DefaultOptions()
	Appreciation components.AppreciationData
	ReadText     = readtext.NewTracker(readtext.NewMemoryRepository())
)

// setFullscreen is swapped out by tests
var setFullscreen = ebiten.SetFullscreen

// DefaultOptions returns the option set of a fresh install
func DefaultOptions() components.OptionData {
	d := cfg.OptionsMenu
	return components.OptionData{
		TextSpeed:   d.TextSpeed,
		AutoDelay:   d.AutoDelay,
		TextSize:    d.TextSize,
		MainVolume:  cfg.Audio.DefaultMainVol * 100,
		MusicVolume: cfg.Audio.DefaultMusicVol * 100,
		SFXVolume:   cfg.Audio.DefaultSFXVol * 100,
		VoiceVolume: cfg.Audio.DefaultVoiceVol * 100,
		Fullscreen:  d.Fullscreen,
		SlPage:      d.SlPage,
	}
}

// LoadUserData reads options and gallery unlocks from the store. Missing or
// unreadable data leaves the defaults in place.
func LoadUserData() {
	UserOptions = DefaultOptions()
	if saved, ok, err := LoadSettings(); ok && err == nil {
		UserOptions = sanitizeOptions(saved)
	}
	Appreciation = LoadAppreciation()
}

// SaveUserOptions persists the current options
func SaveUserOptions() {
	_ = SaveSettings(UserOptions)
}

// ApplyUserOptions pushes the current options into the audio globals and
// the dialogue font. Fullscreen is applied by the title screen once the
// player enters the game.
func ApplyUserOptions(e *ecs.ECS) {
	fonts.ScaleStage(UserOptions.TextSize)
	SetMainVolume(e, UserOptions.MainVolume/100)
	SetMusicVolume(e, UserOptions.MusicVolume/100)
	SetSFXVolume(e, UserOptions.SFXVolume/100)
	SetVoiceVolume(e, UserOptions.VoiceVolume/100)
}

// ApplyFullscreen switches the window mode to match the options
func ApplyFullscreen() {
	setFullscreen(UserOptions.Fullscreen)
}

// sanitizeOptions clamps values written by older or edited save files
func sanitizeOptions(o components.OptionData) components.OptionData {
	d := cfg.OptionsMenu
	o.TextSpeed = clampRange(o.TextSpeed, d.TextSpeedRange)
	o.AutoDelay = clampRange(o.AutoDelay, d.AutoDelayRange)
	o.TextSize = clampRange(o.TextSize, d.TextSizeRange)
	o.MainVolume = clampRange(o.MainVolume, d.VolumeRange)
	o.MusicVolume = clampRange(o.MusicVolume, d.VolumeRange)
	o.SFXVolume = clampRange(o.SFXVolume, d.VolumeRange)
	o.VoiceVolume = clampRange(o.VoiceVolume, d.VolumeRange)
	if o.SlPage < 1 || o.SlPage > cfg.SaveLoad.TotalPages {
		o.SlPage = d.SlPage
	}
	return o
}

func clampRange(v float64, r cfg.Range) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}
