package rowan

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"
)

// SampleRate is the mixer sample rate all sounds are resampled to.
const SampleRate = 48000

// sound is one loaded, fully decoded PCM clip.
type sound struct {
	pcm      []byte
	category string
}

// AudioPlayer is the engine's audio facade over the ebiten mixer: it loads
// named sounds from WAV or Ogg Vorbis files, plays them with per-category
// and master volume scaling, and reports every failure as a boolean so a
// missing sound file can never stop the simulation.
type AudioPlayer struct {
	ctx        *audio.Context
	sounds     map[string]*sound
	categories map[string]float64
	master     float64
	log        *zap.Logger
}

// NewAudioPlayer creates the audio facade. The underlying ebiten audio
// context is process-global; create the player once, via the engine.
// A nil logger disables diagnostics.
func NewAudioPlayer(log *zap.Logger) *AudioPlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioPlayer{
		ctx:        audio.NewContext(SampleRate),
		sounds:     make(map[string]*sound),
		categories: make(map[string]float64),
		master:     1.0,
		log:        log,
	}
}

// Load decodes the sound file at path and registers it under name in the
// given category ("sfx", "music", ...). The whole clip is decoded up front
// so playback never touches the disk. Returns false (with a diagnostic) on
// any failure; loading the same name again replaces the clip.
func (p *AudioPlayer) Load(name, path, category string) bool {
	pcm, err := decodeFile(path)
	if err != nil {
		p.log.Warn("sound load failed",
			zap.String("sound", name), zap.String("path", path), zap.Error(err))
		return false
	}
	p.sounds[name] = &sound{pcm: pcm, category: category}
	return true
}

// decodeFile reads and fully decodes a WAV or Ogg Vorbis file to PCM.
func decodeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, f)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, f)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return io.ReadAll(stream)
}

// Play starts playback of the named sound. volume is the base volume in
// [0, 1], scaled by the sound's category volume and the master volume.
// loops selects repetition: 0 plays once, n > 0 plays n+1 times, and a
// negative value loops forever. Returns false when the sound is not
// registered or the mixer rejects the source.
func (p *AudioPlayer) Play(name string, volume float64, loops int) bool {
	snd, ok := p.sounds[name]
	if !ok {
		p.log.Warn("play of unregistered sound skipped", zap.String("sound", name))
		return false
	}

	var src io.Reader
	switch {
	case loops < 0:
		src = audio.NewInfiniteLoop(bytes.NewReader(snd.pcm), int64(len(snd.pcm)))
	case loops == 0:
		src = bytes.NewReader(snd.pcm)
	default:
		readers := make([]io.Reader, loops+1)
		for i := range readers {
			readers[i] = bytes.NewReader(snd.pcm)
		}
		src = io.MultiReader(readers...)
	}

	player, err := p.ctx.NewPlayer(src)
	if err != nil {
		p.log.Warn("mixer rejected sound", zap.String("sound", name), zap.Error(err))
		return false
	}
	player.SetVolume(p.effectiveVolume(snd.category, volume))
	player.Play()
	return true
}

// effectiveVolume combines base, category, and master volume, clamped to [0, 1].
func (p *AudioPlayer) effectiveVolume(category string, base float64) float64 {
	return clamp01(clamp01(base) * p.CategoryVolume(category) * p.master)
}

// SetCategoryVolume sets the volume multiplier for a sound category.
func (p *AudioPlayer) SetCategoryVolume(category string, volume float64) {
	p.categories[category] = clamp01(volume)
}

// CategoryVolume returns the volume multiplier for a category. Categories
// never configured default to 1.
func (p *AudioPlayer) CategoryVolume(category string) float64 {
	if v, ok := p.categories[category]; ok {
		return v
	}
	return 1.0
}

// SetMasterVolume sets the global volume multiplier.
func (p *AudioPlayer) SetMasterVolume(volume float64) {
	p.master = clamp01(volume)
}

// MasterVolume returns the global volume multiplier.
func (p *AudioPlayer) MasterVolume() float64 {
	return p.master
}

// Loaded reports whether a sound is registered under name.
func (p *AudioPlayer) Loaded(name string) bool {
	_, ok := p.sounds[name]
	return ok
}
