package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	tun := DefaultTuning()
	require.NoError(t, tun.Validate())
	assert.Equal(t, 3.0, tun.Spawn.Initial)
	assert.Equal(t, 0.5, tun.Spawn.Minimum)
	assert.Equal(t, 0.2, tun.Spawn.DecreasePerMinute)
	assert.Equal(t, 30.0, tun.Combat.BulletHitRadius)
	assert.Equal(t, 200.0, tun.Barrier.MinSize)
	assert.Equal(t, 400.0, tun.Boss.DashDistance)
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := []byte("spawn:\n  initial: 4.5\nworld:\n  tree_count: 3\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	tun, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 4.5, tun.Spawn.Initial)
	assert.Equal(t, 3, tun.World.TreeCount)
	assert.Equal(t, 0.5, tun.Spawn.Minimum, "untouched keys keep defaults")
	assert.Equal(t, 3000.0, tun.World.Width)
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadTuningRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spawn:\n  minimum: 0\n"), 0o644))

	_, err := LoadTuning(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestValidateCatchesBadValues(t *testing.T) {
	cases := map[string]func(*Tuning){
		"duration":      func(t *Tuning) { t.Match.DurationSeconds = 0 },
		"boss fraction": func(t *Tuning) { t.Match.BossSpawnFraction = 1.5 },
		"initial<min":   func(t *Tuning) { t.Spawn.Initial = 0.1 },
		"tree attempts": func(t *Tuning) { t.World.TreeMaxAttempts = 0 },
		"hit radius":    func(t *Tuning) { t.Combat.BulletHitRadius = 0 },
		"xp base":       func(t *Tuning) { t.Player.XPBase = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tun := DefaultTuning()
			mutate(&tun)
			assert.ErrorIs(t, tun.Validate(), ErrInvalidTuning)
		})
	}
}
