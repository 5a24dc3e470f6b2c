// internal/system/trees.go
package system

import (
	"log/slog"

	"go-till-dawn/pkg/geom"
)

// TreePlacement describes where trees may go.
type TreePlacement struct {
	Bounds      geom.Rect
	Spawn       geom.Vec2
	Count       int
	Exclusion   float64
	MaxAttempts int
}

// PlaceTrees draws Count uniform positions inside Bounds, rejecting any
// within Exclusion of Spawn. A tree that finds no spot after MaxAttempts
// goes to the corner farthest from Spawn, so placement always terminates.
func PlaceTrees(rng Random, p TreePlacement, logger *slog.Logger) []geom.Vec2 {
	attempts := max(1, p.MaxAttempts)
	out := make([]geom.Vec2, 0, max(0, p.Count))
	fallbacks := 0
	for n := 0; n < p.Count; n++ {
		pos, ok := geom.Vec2{}, false
		for a := 0; a < attempts; a++ {
			c := geom.V(
				rng.Range(p.Bounds.X, p.Bounds.MaxX()),
				rng.Range(p.Bounds.Y, p.Bounds.MaxY()),
			)
			if geom.Distance(c, p.Spawn) >= p.Exclusion {
				pos, ok = c, true
				break
			}
		}
		if !ok {
			pos = farthestCorner(p.Bounds, p.Spawn)
			fallbacks++
		}
		out = append(out, pos)
	}
	if fallbacks > 0 && logger != nil {
		logger.Warn("tree placement fell back to map corner",
			"trees", fallbacks, "attempts", attempts, "exclusion", p.Exclusion)
	}
	return out
}

func farthestCorner(r geom.Rect, from geom.Vec2) geom.Vec2 {
	corners := r.Corners()
	best := corners[0]
	for _, c := range corners[1:] {
		if geom.Distance(c, from) > geom.Distance(best, from) {
			best = c
		}
	}
	return best
}
