// Package density builds the radial surface-brightness model of the
// galaxy and turns it into an inverse-CDF sampler, so uniform random
// draws come out distributed like the light profile.
package density

import "math"

// IntensityProfile is the piecewise radial brightness function: a steep
// bulge falloff inside BulgeRadius and an exponential disc beyond it.
// The disc amplitude is pinned to the bulge value at the seam, so the
// profile is continuous there. Immutable once constructed.
type IntensityProfile struct {
	I0          float64 // central intensity
	K           float64 // bulge falloff coefficient
	A           float64 // disc scale length, parsec
	BulgeRadius float64 // bulge/disc seam, parsec
}

// Intensity returns the surface brightness at galactocentric radius r.
func (p IntensityProfile) Intensity(r float64) float64 {
	if r < p.BulgeRadius {
		return p.bulge(r)
	}
	return p.disc(r-p.BulgeRadius, p.bulge(p.BulgeRadius))
}

// bulge is a de-Vaucouleurs-like inner falloff.
func (p IntensityProfile) bulge(r float64) float64 {
	return p.I0 * math.Exp(-p.K*math.Pow(r, 0.75))
}

// disc is an exponential falloff with amplitude i0 at its inner edge.
func (p IntensityProfile) disc(r, i0 float64) float64 {
	return i0 * math.Exp(-r/p.A)
}
