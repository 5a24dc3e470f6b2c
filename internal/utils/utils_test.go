package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPRNGZeroSeedUsesClock(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(7)
	assert.Equal(t, -1, rng.ChooseWeighted(nil))
	assert.Equal(t, 0, rng.ChooseWeighted([]int{0, 0}))

	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[rng.ChooseWeighted([]int{1, 0, 2})]++
	}
	assert.Zero(t, counts[1], "zero weight is never chosen")
	assert.Greater(t, counts[2], counts[0])
}

func TestRange(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		v := rng.Range(10, 20)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 20.0)
	}
}

func TestLerpAndPulse(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.InDelta(t, 1.0, Pulse(math.Pi/2, 1, 0, 1), 1e-9)
	assert.InDelta(t, 0.0, Pulse(-math.Pi/2, 1, 0, 1), 1e-9)
}
