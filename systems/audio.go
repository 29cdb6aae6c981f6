package systems

import (
	"os"
	"sync"

	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/assets"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalVoicePlayer  *audio.Player
	globalMainVolume   float64 = cfg.Audio.DefaultMainVol
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalVoiceVolume  float64 = cfg.Audio.DefaultVoiceVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, os.DirFS(cfg.Debug.GameDir))
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first
// play. Effects missing from the game directory get a synthesized tone.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			cfg.Log.WithFields(logrus.Fields{"path": path, "err": err}).Debug("Using synthesized sound effect")
			tone := cfg.Sound.Tones[id]
			globalAudioLoader.CacheTone(path, tone.Frequency, tone.DurationMs)
		}
	}
}

// UpdateAudio processes pending SFX and manages music transitions
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	// Handle music fade out
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	// Process pending SFX from the ECS audio data (if exists)
	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	volume := effectiveVolume(globalSFXVolume)
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts playing music with the given path (looping)
func PlayMusic(e *ecs.ECS, musicPath string) {
	if musicPath == "" {
		return
	}
	initGlobalAudio()

	// Already playing this music
	if globalMusicKey == musicPath {
		return
	}

	// Stop current music
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		cfg.Log.WithFields(logrus.Fields{"path": musicPath, "err": err}).Warn("Could not play music")
		return
	}

	player.SetVolume(effectiveVolume(globalMusicVolume))
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
	globalFadeTimer = 0
}

// PlayVoice plays a voice line, cutting off the previous one.
func PlayVoice(e *ecs.ECS, path string) {
	StopVoice(e)
	if path == "" {
		return
	}
	initGlobalAudio()

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		cfg.Log.WithFields(logrus.Fields{"path": path, "err": err}).Warn("Could not play voice")
		return
	}
	player.SetVolume(effectiveVolume(globalVoiceVolume))
	player.Play()
	globalVoicePlayer = player
}

// StopVoice stops the current voice line
func StopVoice(e *ecs.ECS) {
	if globalVoicePlayer != nil {
		_ = globalVoicePlayer.Close()
		globalVoicePlayer = nil
	}
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = effectiveVolume(globalMusicVolume)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMainVolume changes the master volume (0.0 - 1.0)
func SetMainVolume(e *ecs.ECS, volume float64) {
	globalMainVolume = volume
	applyPlayerVolumes()
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	applyPlayerVolumes()
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
}

// SetVoiceVolume changes the voice volume (0.0 - 1.0)
func SetVoiceVolume(e *ecs.ECS, volume float64) {
	globalVoiceVolume = volume
	applyPlayerVolumes()
}

func effectiveVolume(channel float64) float64 {
	return globalMainVolume * channel
}

func applyPlayerVolumes() {
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveVolume(globalMusicVolume))
	}
	if globalVoicePlayer != nil {
		globalVoicePlayer.SetVolume(effectiveVolume(globalVoiceVolume))
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
