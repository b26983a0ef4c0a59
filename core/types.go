package core

import rl "github.com/gen2brain/raylib-go/raylib"

// ParticleType tags a record with the population it belongs to.
type ParticleType int

const (
	Star ParticleType = iota
	Dust
	Filament
)

func (t ParticleType) String() string {
	switch t {
	case Star:
		return "star"
	case Dust:
		return "dust"
	case Filament:
		return "filament"
	}
	return "unknown"
}

// Particle is one generated orbit record. A particle never stores its
// position: the renderer recomputes it every frame from Theta0,
// AngularVelocity and elapsed time, so there is no velocity state to
// integrate or persist.
type Particle struct {
	A               float64 // semi-major axis, parsec
	B               float64 // semi-minor axis, parsec
	TiltAngle       float64 // ellipse tilt, radians
	Theta0          float64 // angular position at t=0, degrees
	AngularVelocity float64 // degrees per year
	Temperature     float64 // Kelvin
	Magnitude       float64 // relative brightness [0,1]
	Type            ParticleType
	Color           rl.Color // derived from Temperature during generation
}

// HyperlaneEdge connects two star systems in the spanning network.
// Source and Destination index into the star span of the particle
// arena; Weight is the planar Euclidean distance at generation time.
type HyperlaneEdge struct {
	Source      int32
	Destination int32
	Weight      float64
}
