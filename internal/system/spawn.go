// internal/system/spawn.go
package system

import (
	"math"

	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/pkg/geom"
	"go-till-dawn/pkg/utils"
)

// Random is the part of utils.PRNGService the systems draw from.
type Random interface {
	Float64() float64
	Range(lo, hi float64) float64
	Perm(n int) []int
	ChooseWeighted(weights []int) int
}

// SpawnRate returns seconds between spawns after elapsed seconds of play:
// max(Minimum, Initial - minutes*DecreasePerMinute).
func SpawnRate(elapsed float64, t config.SpawnTuning) float64 {
	minutes := elapsed / 60
	return max(t.Minimum, t.Initial-minutes*t.DecreasePerMinute)
}

// pickSpawnType picks an enemy type among the unlocked table entries.
func pickSpawnType(rng Random, table []defs.SpawnEntry, progress float64) (defs.EnemyType, bool) {
	eligible := defs.EligibleSpawns(table, progress)
	if len(eligible) == 0 {
		return "", false
	}
	weights := make([]int, len(eligible))
	for i, e := range eligible {
		weights[i] = e.Weight
	}
	idx := rng.ChooseWeighted(weights)
	if idx < 0 {
		return "", false
	}
	return eligible[idx].Enemy, true
}

// ringPosition picks a point radius away from center, clamped to bounds.
func ringPosition(rng Random, center geom.Vec2, radius float64, bounds geom.Rect) geom.Vec2 {
	p := center.Add(geom.FromAngle(rng.Range(0, 2*math.Pi)).Scale(radius))
	return geom.V(
		utils.Clamp(p.X, bounds.X, bounds.MaxX()),
		utils.Clamp(p.Y, bounds.Y, bounds.MaxY()),
	)
}
