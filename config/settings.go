package config

// Range is the closed interval a slider option moves in
type Range struct {
	Min, Max float64
}

// OptionDefaults contains initial values and ranges for the options pages
type OptionDefaults struct {
	TextSpeed      float64 // characters per second
	TextSpeedRange Range
	AutoDelay      float64 // seconds before auto-advance
	AutoDelayRange Range
	TextSize       float64 // percent of base font size
	TextSizeRange  Range
	VolumeRange    Range // all volume sliders are 0..100
	Fullscreen     bool
	SlPage         int // save/load browser page, 1-based
}

// OptionsMenu is the global options configuration
var OptionsMenu OptionDefaults

func init() {
	OptionsMenu = OptionDefaults{
		TextSpeed:      40,
		TextSpeedRange: Range{Min: 10, Max: 120},
		AutoDelay:      2,
		AutoDelayRange: Range{Min: 0.5, Max: 8},
		TextSize:       100,
		TextSizeRange:  Range{Min: 75, Max: 150},
		VolumeRange:    Range{Min: 0, Max: 100},
		Fullscreen:     false,
		SlPage:         1,
	}
}
