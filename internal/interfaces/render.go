// internal/interfaces/render.go
package interfaces

import (
	"image/color"

	"go-till-dawn/internal/assets"
	"go-till-dawn/pkg/geom"
)

// DrawOptions carries per-sprite modifiers. Zero value draws opaque and
// unrotated; Alpha 0 is treated as 1.
type DrawOptions struct {
	Alpha    float64
	Rotation float64 // degrees, around the destination center
	FlipX    bool
	Flash    bool // tint white for damage feedback
}

// Batch is the rendering collaborator: it receives one texture and a world
// space destination rectangle per visible entity per frame.
type Batch interface {
	Draw(tex assets.Texture, dst geom.Rect, opts DrawOptions)
	// FillRect draws an untextured rectangle, used for the barrier strips.
	FillRect(dst geom.Rect, clr color.Color, alpha float64)
}
