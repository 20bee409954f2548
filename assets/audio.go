package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys with the given context
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	decoded, err := l.decode(path)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if cachedBytes, ok := l.sfxCache[path]; ok {
		return l.context.NewPlayerFromBytes(cachedBytes), nil
	}

	decoded, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	l.sfxCache[path] = decoded
	return l.context.NewPlayerFromBytes(decoded), nil
}

// decode reads path and decodes it to the context sample rate based on the file extension.
func (l *AudioLoader) decode(path string) ([]byte, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("no audio source for %s", path)
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
