package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_SameSeedSameSequence(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Uniform(), b.Uniform())
	}
}

func TestRNG_DifferentSeedsDiverge(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uniform() != b.Uniform() {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestRNG_UniformInRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		u := r.Uniform()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}

func TestRNG_NormalSequenceIsDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Normal(), b.Normal())
	}
}

func TestRNG_NormalDistributionSanity(t *testing.T) {
	r := NewRNG(123)
	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = r.Normal()
	}
	assert.InDelta(t, 0.0, Mean(samples), 0.05)
	assert.InDelta(t, 1.0, StdDev(samples), 0.05)
}

func TestRNG_NormalWithMeanAndStdDev(t *testing.T) {
	r := NewRNG(55)
	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = r.NormalWith(10, 2)
	}
	assert.InDelta(t, 10.0, Mean(samples), 0.2)
	assert.InDelta(t, 2.0, StdDev(samples), 0.2)
}
