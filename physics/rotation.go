// Package physics models the galaxy's rotation curve: per-radius
// eccentricity, angular tilt and orbital angular velocity derived from
// disc and halo mass integrals with a dark-matter correction. All
// functions are pure; they are evaluated once per particle at
// generation time, never per frame.
package physics

import "math"

// Model constants. Radii are in parsec, velocities in km/s.
const (
	gravConst      = 6.672e-11 // gravitational constant
	parsecInKm     = 3.08567758129e13
	secondsPerYear = 365.25 * 86400

	discThickness   = 2000.0 // pc
	discRho0        = 1.0    // central surface density
	discScaleLength = 2000.0 // pc

	haloRho0       = 0.15   // isothermal halo central density
	haloCoreRadius = 2500.0 // pc

	darkMatterMass = 100.0 // flat correction term Mz
	velocityScale  = 20000 // tuning factor k for visually plausible curves

	// Radius guard for the 1/r terms: r=0 is a defined boundary, not a
	// division by zero.
	minRadius = 1e-6
)

// RotationCurve holds the per-galaxy shape parameters. FarRadius is
// where the eccentricity blend pins to circular; beyond it orbits are
// plain circles.
type RotationCurve struct {
	CoreRadius       float64
	GalaxyRadius     float64
	FarRadius        float64
	Ex1              float64 // eccentricity at the core edge
	Ex2              float64 // eccentricity at the disc edge
	AngleCoefficient float64 // ellipse tilt per parsec, radians
}

// Eccentricity interpolates linearly across the three radius bands:
// 1 -> Ex1 inside the core, Ex1 -> Ex2 across the disc, Ex2 -> 1 out
// to FarRadius, and exactly 1 beyond.
func (rc RotationCurve) Eccentricity(r float64) float64 {
	switch {
	case r < rc.CoreRadius:
		return 1 + (r/rc.CoreRadius)*(rc.Ex1-1)
	case r < rc.GalaxyRadius:
		return rc.Ex1 + (r-rc.CoreRadius)/(rc.GalaxyRadius-rc.CoreRadius)*(rc.Ex2-rc.Ex1)
	case r < rc.FarRadius:
		return rc.Ex2 + (r-rc.GalaxyRadius)/(rc.FarRadius-rc.GalaxyRadius)*(1-rc.Ex2)
	default:
		return 1
	}
}

// AngularOffset returns the orbit tilt at radius r. The linear growth
// of tilt with radius is what winds the ellipses into spiral arms.
func (rc RotationCurve) AngularOffset(r float64) float64 {
	return r * rc.AngleCoefficient
}

// OrbitalAngularVelocity converts the rotation-curve circular velocity
// at r into degrees per year via the orbital period.
func (rc RotationCurve) OrbitalAngularVelocity(r float64) float64 {
	if r < minRadius {
		r = minRadius
	}
	velKms := circularVelocity(r)
	circumferenceKm := 2 * math.Pi * r * parsecInKm
	periodYears := circumferenceKm / (velKms * secondsPerYear)
	return 360 / periodYears
}

// circularVelocity is the rotation curve proper:
// v = k * sqrt(G*(Mhalo+Mdisc+Mz)/r), km/s.
func circularVelocity(r float64) float64 {
	return velocityScale * math.Sqrt(gravConst*(haloMass(r)+discMass(r)+darkMatterMass)/r)
}

// discMass is the closed-form enclosed mass of an exponential disc of
// constant thickness.
func discMass(r float64) float64 {
	return discRho0 * math.Exp(-r/discScaleLength) * r * r * math.Pi * discThickness
}

// haloMass is the closed-form enclosed mass of an isothermal halo with
// density rho0 / (1 + (r/rC)^2).
func haloMass(r float64) float64 {
	x := r / haloCoreRadius
	return haloRho0 / (1 + x*x) * (4 * math.Pi * r * r * r / 3)
}
