package physics

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

const degToRad = math.Pi / 180

// OrbitPosition evaluates a particle's position at time t: a point on
// an ellipse with semi-axes a and b, rotated by tilt, optionally
// displaced by an n-fold sinusoidal spiral-arm perturbation. Stateless:
// nothing accumulates between frames, the angle is always derived from
// theta0 and elapsed time.
func OrbitPosition(theta0, angularVelocity, t, tilt, a, b float64, pertN int, pertAmp float64) mgl64.Vec2 {
	alpha := (theta0 + angularVelocity*t) * degToRad
	beta := -tilt

	sinA, cosA := math.Sincos(alpha)
	sinB, cosB := math.Sincos(beta)

	pos := mgl64.Vec2{
		a*cosA*cosB - b*sinA*sinB,
		a*cosA*sinB + b*sinA*cosB,
	}
	if pertAmp > 0 && pertN > 0 {
		pos[0] += (a / pertAmp) * math.Sin(alpha*2*float64(pertN))
		pos[1] += (a / pertAmp) * math.Cos(alpha*2*float64(pertN))
	}
	return pos
}

// OrbitPosition32 is the float32 twin of OrbitPosition for the
// per-frame render path, where the result feeds straight into 32-bit
// vertex data.
func OrbitPosition32(theta0, angularVelocity, t, tilt, a, b float32, pertN int, pertAmp float32) (x, y float32) {
	alpha := (theta0 + angularVelocity*t) * math32.Pi / 180
	beta := -tilt

	sinA, cosA := math32.Sincos(alpha)
	sinB, cosB := math32.Sincos(beta)

	x = a*cosA*cosB - b*sinA*sinB
	y = a*cosA*sinB + b*sinA*cosB
	if pertAmp > 0 && pertN > 0 {
		x += (a / pertAmp) * math32.Sin(alpha*2*float32(pertN))
		y += (a / pertAmp) * math32.Cos(alpha*2*float32(pertN))
	}
	return x, y
}
