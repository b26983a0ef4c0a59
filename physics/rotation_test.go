package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCurve() RotationCurve {
	return RotationCurve{
		CoreRadius:       4000,
		GalaxyRadius:     13000,
		FarRadius:        26000,
		Ex1:              0.85,
		Ex2:              0.95,
		AngleCoefficient: 0.0004,
	}
}

func TestEccentricityBandBoundaries(t *testing.T) {
	rc := testCurve()

	assert.InDelta(t, 1.0, rc.Eccentricity(0), 1e-12, "circular at the center")
	assert.InDelta(t, rc.Ex1, rc.Eccentricity(rc.CoreRadius), 1e-12)
	assert.InDelta(t, rc.Ex2, rc.Eccentricity(rc.GalaxyRadius), 1e-12)
	assert.InDelta(t, 1.0, rc.Eccentricity(rc.FarRadius), 1e-12)
	assert.Equal(t, 1.0, rc.Eccentricity(rc.FarRadius*10), "clamped beyond the far field")

	// Midpoints blend linearly.
	assert.InDelta(t, (1+rc.Ex1)/2, rc.Eccentricity(rc.CoreRadius/2), 1e-12)
	assert.InDelta(t, (rc.Ex1+rc.Ex2)/2, rc.Eccentricity((rc.CoreRadius+rc.GalaxyRadius)/2), 1e-12)
}

func TestAngularOffsetLinearInRadius(t *testing.T) {
	rc := testCurve()
	assert.Equal(t, 0.0, rc.AngularOffset(0))
	assert.InDelta(t, 4.0, rc.AngularOffset(10000), 1e-12)
}

func TestAngularVelocityFiniteAndPositive(t *testing.T) {
	rc := testCurve()
	for _, r := range []float64{0, 1e-9, 1, 100, 4000, 13000, 26000} {
		w := rc.OrbitalAngularVelocity(r)
		assert.False(t, math.IsNaN(w) || math.IsInf(w, 0), "angular velocity not finite at r=%g", r)
		assert.Greater(t, w, 0.0, "angular velocity not positive at r=%g", r)
	}
}

// TestInnerOrbitsTurnFaster pins differential rotation: the inner disc
// completes orbits faster in angle than the outskirts, which is what
// shears the arms into spirals.
func TestInnerOrbitsTurnFaster(t *testing.T) {
	rc := testCurve()
	inner := rc.OrbitalAngularVelocity(2000)
	outer := rc.OrbitalAngularVelocity(20000)
	assert.Greater(t, inner, outer)
}

func TestOrbitPositionOnAxes(t *testing.T) {
	// Untilted, unperturbed ellipse: theta=0 sits on the +x semi-major
	// axis, theta=90 on the +y semi-minor axis.
	p := OrbitPosition(0, 0, 0, 0, 100, 50, 0, 0)
	assert.InDelta(t, 100, p.X(), 1e-9)
	assert.InDelta(t, 0, p.Y(), 1e-9)

	p = OrbitPosition(90, 0, 0, 0, 100, 50, 0, 0)
	assert.InDelta(t, 0, p.X(), 1e-9)
	assert.InDelta(t, 50, p.Y(), 1e-9)
}

func TestOrbitPositionIsStateless(t *testing.T) {
	// Same theta0+w*t must give the same point no matter how the total
	// angle is split between theta0 and elapsed time.
	a := OrbitPosition(30, 2, 10, 0.3, 800, 700, 2, 40)
	b := OrbitPosition(50, 0, 123, 0.3, 800, 700, 2, 40)
	assert.InDelta(t, a.X(), b.X(), 1e-9)
	assert.InDelta(t, a.Y(), b.Y(), 1e-9)
}

func TestOrbitPosition32MatchesFloat64(t *testing.T) {
	x, y := OrbitPosition32(30, 0.05, 100, 0.3, 800, 700, 2, 40)
	p := OrbitPosition(30, 0.05, 100, 0.3, 800, 700, 2, 40)
	assert.InDelta(t, p.X(), float64(x), 1.0, "float32 path drifted from float64")
	assert.InDelta(t, p.Y(), float64(y), 1.0, "float32 path drifted from float64")
}
