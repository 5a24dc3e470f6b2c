// pkg/render/textures.go
package render

import (
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
)

// ImageLoader reads PNG textures from a directory: "<key>.png" for single
// textures, "<key>_0.png", "<key>_1.png", ... for animation frames.
type ImageLoader struct {
	root     string
	fallback *ebiten.Image
}

func NewImageLoader(root string) *ImageLoader {
	fallback := ebiten.NewImage(config.DefaultTextureSize, config.DefaultTextureSize)
	fallback.Fill(config.MissingTextureColor)
	return &ImageLoader{root: root, fallback: fallback}
}

func (l *ImageLoader) path(name string) string {
	return filepath.Join(l.root, name+".png")
}

func (l *ImageLoader) LoadTexture(key string) (assets.Texture, error) {
	img, err := l.load(l.path(key))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (l *ImageLoader) LoadAnimation(key string) ([]assets.Texture, error) {
	var frames []assets.Texture
	for i := 0; ; i++ {
		img, err := l.load(l.path(key + "_" + strconv.Itoa(i)))
		if errors.Is(err, assets.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: animation %s", assets.ErrNotFound, key)
	}
	return frames, nil
}

func (l *ImageLoader) DefaultTexture() assets.Texture {
	return l.fallback
}

func (l *ImageLoader) load(path string) (*ebiten.Image, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", assets.ErrNotFound, path)
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}
