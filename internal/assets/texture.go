package assets

import (
	"errors"
	"image"
)

// ErrNotFound is returned by loaders when no file backs a key.
var ErrNotFound = errors.New("asset not found")

// Texture is a drawable image handle. *ebiten.Image satisfies it; the combat
// core never looks past Bounds.
type Texture interface {
	Bounds() image.Rectangle
}

// Loader reads raw assets from some backing store.
type Loader interface {
	LoadTexture(key string) (Texture, error)
	LoadAnimation(key string) ([]Texture, error)
	DefaultTexture() Texture
}

// Provider is what gameplay code asks for textures. Texture never fails: a
// missing texture is replaced by the default one.
type Provider interface {
	Texture(key string) Texture
	Animation(key string, frameDuration float64) (*Animation, error)
}
