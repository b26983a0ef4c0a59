// Package bluenoise generates spatially decorrelated point sets with a
// guaranteed minimum pairwise separation (Bridson's Poisson-disc
// algorithm), used to seed well-spaced star systems without the
// clustering artifacts of pure uniform sampling.
package bluenoise

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultAttempts is the candidate budget per active point when the
// caller passes k <= 0. Bridson's suggested value.
const DefaultAttempts = 30

// Sample fills the rectangle [0,width) x [0,height) with points no two
// of which are closer than minDist. Candidates are generated from a
// random active point in the annulus [minDist, 2*minDist) and checked
// against the 5x5 neighborhood of a background grid with cell size
// minDist/sqrt(2); the cell size guarantees no closer point can exist
// outside that neighborhood. A degenerate domain or separation yields
// an empty result.
//
// Output order is insertion order, not proximity order; callers that
// need distance-from-origin order must sort explicitly.
func Sample(width, height, minDist float64, k int, rng *rand.Rand) []mgl64.Vec2 {
	if width <= 0 || height <= 0 || minDist <= 0 {
		return nil
	}
	if k <= 0 {
		k = DefaultAttempts
	}

	cell := minDist / math.Sqrt2
	gw := int(math.Ceil(width / cell))
	gh := int(math.Ceil(height / cell))

	// One point index per cell; -1 marks an empty cell.
	grid := make([]int32, gw*gh)
	for i := range grid {
		grid[i] = -1
	}

	var points []mgl64.Vec2
	var active []int32

	accept := func(p mgl64.Vec2) {
		idx := int32(len(points))
		points = append(points, p)
		active = append(active, idx)
		grid[int(p.Y()/cell)*gw+int(p.X()/cell)] = idx
	}

	tooClose := func(p mgl64.Vec2) bool {
		gx := int(p.X() / cell)
		gy := int(p.Y() / cell)
		for y := max(gy-2, 0); y <= min(gy+2, gh-1); y++ {
			for x := max(gx-2, 0); x <= min(gx+2, gw-1); x++ {
				j := grid[y*gw+x]
				if j < 0 {
					continue
				}
				d := points[j].Sub(p)
				if d.Dot(d) < minDist*minDist {
					return true
				}
			}
		}
		return false
	}

	accept(mgl64.Vec2{rng.Float64() * width, rng.Float64() * height})

	for len(active) > 0 {
		ai := rng.Intn(len(active))
		origin := points[active[ai]]

		placed := false
		for attempt := 0; attempt < k; attempt++ {
			theta := rng.Float64() * 2 * math.Pi
			dist := minDist * (1 + rng.Float64())
			cand := mgl64.Vec2{
				origin.X() + dist*math.Cos(theta),
				origin.Y() + dist*math.Sin(theta),
			}
			if cand.X() < 0 || cand.X() >= width || cand.Y() < 0 || cand.Y() >= height {
				continue
			}
			if tooClose(cand) {
				continue
			}
			accept(cand)
			placed = true
			break
		}
		if !placed {
			// Exhausted: retire from the active list, keep the point.
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return points
}

// SampleOnPlane is the 3D variant: points are sampled over a
// width x depth rectangle and lifted onto the horizontal plane at
// height y.
func SampleOnPlane(width, depth, y, minDist float64, k int, rng *rand.Rand) []mgl64.Vec3 {
	flat := Sample(width, depth, minDist, k, rng)
	points := make([]mgl64.Vec3, len(flat))
	for i, p := range flat {
		points[i] = mgl64.Vec3{p.X(), y, p.Y()}
	}
	return points
}
