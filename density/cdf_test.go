package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() IntensityProfile {
	// Shape used by the generation pipeline for a 13 kpc disc.
	return IntensityProfile{I0: 1.0, K: 0.02, A: 13000.0 / 3, BulgeRadius: 4000 * 0.3}
}

func TestSamplerRejectsBadConstruction(t *testing.T) {
	p := testProfile()

	_, err := NewSampler(p, 0, 26000, 999)
	assert.Error(t, err, "odd steps must be rejected")

	_, err = NewSampler(p, 0, 26000, 0)
	assert.Error(t, err, "zero steps must be rejected")

	_, err = NewSampler(p, 0, 26000, -10)
	assert.Error(t, err, "negative steps must be rejected")

	_, err = NewSampler(p, 5000, 5000, 100)
	assert.Error(t, err, "empty domain must be rejected")
}

func TestSamplerRejectsOutOfDomainQueries(t *testing.T) {
	s, err := NewSampler(testProfile(), 0, 26000, 1000)
	require.NoError(t, err)

	_, err = s.ProbabilityFromRadius(-1)
	assert.Error(t, err)
	_, err = s.ProbabilityFromRadius(26000.5)
	assert.Error(t, err)
	_, err = s.RadiusFromProbability(-0.01)
	assert.Error(t, err)
	_, err = s.RadiusFromProbability(1.01)
	assert.Error(t, err)
}

// TestRoundTripConvergence checks that radius->probability->radius
// round-trips tighten as the step count grows.
func TestRoundTripConvergence(t *testing.T) {
	probes := []float64{0, 0.25, 0.5, 0.75, 1.0}

	worst := func(steps int) float64 {
		s, err := NewSampler(testProfile(), 0, 26000, steps)
		require.NoError(t, err)
		max := 0.0
		for _, p := range probes {
			r, err := s.RadiusFromProbability(p)
			require.NoError(t, err)
			back, err := s.ProbabilityFromRadius(r)
			require.NoError(t, err)
			if d := abs(back - p); d > max {
				max = d
			}
		}
		return max
	}

	e100 := worst(100)
	e1000 := worst(1000)
	e10000 := worst(10000)

	assert.Less(t, e100, 0.05, "steps=100 round-trip error")
	assert.LessOrEqual(t, e1000, e100, "error must not grow with steps")
	assert.LessOrEqual(t, e10000, e1000, "error must not grow with steps")
	assert.Less(t, e10000, 1e-3, "steps=10000 round-trip error")
}

func TestProbabilityMonotonicInRadius(t *testing.T) {
	s, err := NewSampler(testProfile(), 0, 26000, 1000)
	require.NoError(t, err)

	prev := -1.0
	for i := 0; i <= 500; i++ {
		r := 26000 * float64(i) / 500
		p, err := s.ProbabilityFromRadius(r)
		require.NoError(t, err)
		// Tiny slack for rounding at table knots.
		assert.GreaterOrEqual(t, p, prev-1e-12, "probability decreased at r=%g", r)
		prev = p
	}
	assert.InDelta(t, 1.0, prev, 1e-12, "cumulative probability must end at 1")
}

func TestRadiusMonotonicInProbability(t *testing.T) {
	s, err := NewSampler(testProfile(), 0, 26000, 1000)
	require.NoError(t, err)

	prev := -1.0
	for i := 0; i <= 500; i++ {
		p := float64(i) / 500
		r, err := s.RadiusFromProbability(p)
		require.NoError(t, err)
		// Tiny slack for rounding at table knots.
		assert.GreaterOrEqual(t, r, prev-1e-6, "radius decreased at p=%g", p)
		prev = r
	}
	assert.InDelta(t, 26000, prev, 26000*0.01, "p=1 must land near the domain edge")
}

// TestForwardTableUniformSpacing pins the invariant the O(1) bucket
// lookups rely on: table nodes sit at exactly uniform intervals.
func TestForwardTableUniformSpacing(t *testing.T) {
	s, err := NewSampler(testProfile(), 0, 26000, 1000)
	require.NoError(t, err)

	width := 2 * (s.max - s.min) / float64(s.steps)
	for j := 1; j < len(s.fwdRadius); j++ {
		assert.InDelta(t, width, s.fwdRadius[j]-s.fwdRadius[j-1], 1e-9,
			"forward node %d off the uniform grid", j)
	}
	dp := 1.0 / float64(s.steps)
	for j := 1; j < len(s.invProb); j++ {
		assert.InDelta(t, dp, s.invProb[j]-s.invProb[j-1], 1e-12,
			"inverse node %d off the uniform grid", j)
	}
}

func TestTableSizesAgree(t *testing.T) {
	s, err := NewSampler(testProfile(), 0, 26000, 1000)
	require.NoError(t, err)

	require.Equal(t, len(s.fwdRadius), len(s.fwdProb))
	require.Equal(t, len(s.fwdRadius), len(s.fwdSlope))
	require.Equal(t, s.steps/2+1, len(s.fwdRadius))
	require.Equal(t, len(s.invProb), len(s.invRadius))
	require.Equal(t, len(s.invProb), len(s.invSlope))
	require.Equal(t, s.steps+1, len(s.invProb))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
