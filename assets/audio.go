package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets from a game directory
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader reading files from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}

	decoded, err := l.decode(name)
	if err != nil {
		return err
	}
	l.sfxCache[name] = decoded
	return nil
}

// LoadSFX returns a new player for a cached or freshly decoded effect.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[name]))
}

// CacheTone stores a synthesized tone under name unless a real file was
// already cached there.
func (l *AudioLoader) CacheTone(name string, frequency float64, durationMs int) {
	if _, ok := l.sfxCache[name]; ok {
		return
	}
	l.sfxCache[name] = SynthesizeTone(l.context.SampleRate(), frequency, durationMs)
}

// LoadMusic returns a looping streaming player for an OGG file.
func (l *AudioLoader) LoadMusic(name string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", name, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", name, err)
	}

	// Create infinite loop for music
	loop := audio.NewInfiniteLoop(stream, stream.Length())

	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) decode(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}

// SynthesizeTone renders a short decaying sine as 16-bit little-endian
// stereo PCM, the format audio.Context players expect.
func SynthesizeTone(sampleRate int, frequency float64, durationMs int) []byte {
	n := sampleRate * durationMs / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*frequency*t) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
