// pkg/render/sprite_batch.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/interfaces"
	"go-till-dawn/pkg/geom"
)

// SpriteBatch draws sprites onto an ebiten screen through a camera. The
// camera is the world point at the center of the screen.
type SpriteBatch struct {
	screen  *ebiten.Image
	camera  geom.Vec2
	missing *ebiten.Image
}

func NewSpriteBatch() *SpriteBatch {
	missing := ebiten.NewImage(config.DefaultTextureSize, config.DefaultTextureSize)
	missing.Fill(config.MissingTextureColor)
	return &SpriteBatch{missing: missing}
}

// Begin targets screen for the frame, centered on camera.
func (b *SpriteBatch) Begin(screen *ebiten.Image, camera geom.Vec2) {
	b.screen = screen
	b.camera = camera
}

// End drops the screen reference.
func (b *SpriteBatch) End() {
	b.screen = nil
}

func (b *SpriteBatch) halfScreen() geom.Vec2 {
	if b.screen == nil {
		return geom.V(config.ScreenWidth/2, config.ScreenHeight/2)
	}
	s := b.screen.Bounds().Size()
	return geom.V(float64(s.X)/2, float64(s.Y)/2)
}

// ToScreen converts a world point to screen pixels.
func (b *SpriteBatch) ToScreen(p geom.Vec2) geom.Vec2 {
	return p.Sub(b.camera).Add(b.halfScreen())
}

// ToWorld converts screen pixels (the cursor) to a world point.
func (b *SpriteBatch) ToWorld(x, y float64) geom.Vec2 {
	return geom.V(x, y).Sub(b.halfScreen()).Add(b.camera)
}

func (b *SpriteBatch) Draw(tex assets.Texture, dst geom.Rect, opts interfaces.DrawOptions) {
	if b.screen == nil || dst.W <= 0 || dst.H <= 0 {
		return
	}
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil {
		img = b.missing
	}
	size := img.Bounds().Size()
	w, h := float64(size.X), float64(size.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	sx, sy := dst.W/w, dst.H/h
	if opts.FlipX {
		sx = -sx
	}
	op.GeoM.Scale(sx, sy)
	if opts.Rotation != 0 {
		op.GeoM.Rotate(opts.Rotation * math.Pi / 180)
	}
	c := b.ToScreen(dst.Center())
	op.GeoM.Translate(c.X, c.Y)

	if opts.Flash {
		op.ColorScale.Scale(1, 0.45, 0.45, 1)
	}
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = 1
	}
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterNearest
	b.screen.DrawImage(img, op)
}

func (b *SpriteBatch) FillRect(dst geom.Rect, clr color.Color, alpha float64) {
	if b.screen == nil {
		return
	}
	p := b.ToScreen(geom.V(dst.X, dst.Y))
	vector.DrawFilledRect(b.screen, float32(p.X), float32(p.Y), float32(dst.W), float32(dst.H), WithAlpha(clr, alpha), false)
}
