package bluenoise

import (
	"math/rand"
	"testing"
)

// TestMinimumSeparation verifies the core guarantee: no two accepted
// points closer than minDist. Brute-force pairwise check.
func TestMinimumSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const minDist = 10.0
	points := Sample(400, 300, minDist, 30, rng)

	if len(points) < 100 {
		t.Fatalf("suspiciously few points: %d", len(points))
	}
	const tolerance = 1e-9
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Sub(points[j]).Len()
			if d < minDist-tolerance {
				t.Fatalf("points %d and %d are %.6f apart, want >= %g", i, j, d, minDist)
			}
		}
	}
}

func TestPointsInsideDomain(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 250.0, 120.0
	for _, p := range Sample(w, h, 8, 30, rng) {
		if p.X() < 0 || p.X() >= w || p.Y() < 0 || p.Y() >= h {
			t.Fatalf("point %v escaped the domain %gx%g", p, w, h)
		}
	}
}

func TestDegenerateDomainsProduceEmptySets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct{ w, h, d float64 }{
		{0, 100, 5},
		{100, 0, 5},
		{-10, 100, 5},
		{100, 100, 0},
		{100, 100, -1},
	}
	for _, c := range cases {
		if pts := Sample(c.w, c.h, c.d, 30, rng); len(pts) != 0 {
			t.Errorf("Sample(%g, %g, %g) returned %d points, want 0", c.w, c.h, c.d, len(pts))
		}
	}
}

func TestSampleOnPlaneFixesHeight(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const y = 42.5
	points := SampleOnPlane(200, 200, y, 15, 30, rng)
	if len(points) == 0 {
		t.Fatal("no points sampled")
	}
	for _, p := range points {
		if p.Y() != y {
			t.Fatalf("point %v not on the y=%g plane", p, y)
		}
	}
}

// TestCoverage makes sure the sampler actually fills the domain rather
// than stopping after a few accepts: the yield of a maximal Poisson
// process should be a sizable fraction of the packing bound.
func TestCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var w, h, d float64 = 300.0, 300.0, 12.0
	points := Sample(w, h, d, 30, rng)

	// Each point excludes a disc of radius d/2.
	bound := int(w * h / (3.14159 * d / 2 * d / 2))
	if len(points) < bound/4 {
		t.Errorf("only %d points for a packing bound of ~%d", len(points), bound)
	}
}
