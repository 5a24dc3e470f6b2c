package assets

import (
	"fmt"
	"log/slog"
)

// Manager caches textures from a Loader and substitutes the loader's default
// texture when a key cannot be loaded.
type Manager struct {
	loader   Loader
	logger   *slog.Logger
	textures map[string]Texture
	frames   map[string][]Texture
}

// NewManager returns a Manager reading through loader.
func NewManager(loader Loader, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		loader:   loader,
		logger:   logger,
		textures: make(map[string]Texture),
		frames:   make(map[string][]Texture),
	}
}

// Texture returns the cached texture for key, loading it on first use. A
// failed load is logged once and the default texture is cached in its place.
func (m *Manager) Texture(key string) Texture {
	if tex, ok := m.textures[key]; ok {
		return tex
	}
	tex, err := m.loadTexture(key)
	if err != nil || tex == nil {
		m.logger.Warn("texture missing, using default", "key", key, "error", err)
		tex = m.loader.DefaultTexture()
	}
	m.textures[key] = tex
	return tex
}

// Animation builds a looping animation from the frames stored under key.
func (m *Manager) Animation(key string, frameDuration float64) (*Animation, error) {
	frames, ok := m.frames[key]
	if !ok {
		var err error
		frames, err = m.loadFrames(key)
		if err != nil {
			return nil, err
		}
		m.frames[key] = frames
	}
	// each animation owns its frame slice, Dispose must not touch the cache
	own := make([]Texture, len(frames))
	copy(own, frames)
	return NewAnimation(frameDuration, own, PlayLoop), nil
}

// Cleanup drops every cached handle.
func (m *Manager) Cleanup() {
	clear(m.textures)
	clear(m.frames)
	m.logger.Debug("asset cache cleared")
}

func (m *Manager) loadTexture(key string) (tex Texture, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loader panicked on texture %q: %v", key, r)
		}
	}()
	return m.loader.LoadTexture(key)
}

func (m *Manager) loadFrames(key string) (frames []Texture, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loader panicked on animation %q: %v", key, r)
		}
	}()
	frames, err = m.loader.LoadAnimation(key)
	if err != nil {
		return nil, fmt.Errorf("load animation %q: %w", key, err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("load animation %q: %w", key, ErrNotFound)
	}
	return frames, nil
}
