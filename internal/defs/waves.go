// internal/defs/waves.go
package defs

// SpawnEntry describes one enemy type in the spawn pool. The entry joins the
// pool once the match has progressed past AfterFraction of its duration.
type SpawnEntry struct {
	Enemy         EnemyType
	Weight        int
	AfterFraction float64
}

// DefaultSpawnTable: tentacles from the start, eyebats from the first quarter.
func DefaultSpawnTable() []SpawnEntry {
	return []SpawnEntry{
		{Enemy: EnemyTentacle, Weight: 3, AfterFraction: 0},
		{Enemy: EnemyEyebat, Weight: 2, AfterFraction: 0.25},
	}
}

// EligibleSpawns returns the entries unlocked at the given match progress.
func EligibleSpawns(table []SpawnEntry, progress float64) []SpawnEntry {
	var out []SpawnEntry
	for _, e := range table {
		if progress >= e.AfterFraction && e.Weight > 0 {
			out = append(out, e)
		}
	}
	return out
}
