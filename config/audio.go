package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundEnter
	SoundClick
	SoundDialogOpen
	SoundPageChange
	SoundSwitch
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMainVol    float64
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	DefaultVoiceVol   float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// ToneConfig describes a synthesized fallback sound effect
type ToneConfig struct {
	Frequency  float64 // Hz
	DurationMs int
}

// SoundConfig maps sound IDs to file paths relative to the game directory
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	Tones             map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMainVol:    1.0,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		DefaultVoiceVol:   1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundEnter:      "se/enter.wav",
			SoundClick:      "se/click.wav",
			SoundDialogOpen: "se/dialog.wav",
			SoundPageChange: "se/page.wav",
			SoundSwitch:     "se/switch.wav",
		},
		// Used when the game directory ships no file for the effect
		Tones: map[SoundID]ToneConfig{
			SoundEnter:      {Frequency: 880, DurationMs: 30},
			SoundClick:      {Frequency: 660, DurationMs: 60},
			SoundDialogOpen: {Frequency: 520, DurationMs: 120},
			SoundPageChange: {Frequency: 740, DurationMs: 80},
			SoundSwitch:     {Frequency: 990, DurationMs: 50},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundEnter: 0.4,
		},
	}
}
