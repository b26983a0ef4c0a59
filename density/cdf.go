package density

import "fmt"

// Sampler maps uniform random draws to galactocentric radii following
// an IntensityProfile. It carries two parallel piecewise-linear tables:
// a forward table (radius -> cumulative probability) built by Simpson
// integration, and its functional inverse (probability -> radius) built
// by scanning the forward table. Both lookups are O(1) bucket indexing,
// exact up to the piecewise-linear approximation error, which shrinks
// as steps grows. Good enough for generative use, not for statistics.
type Sampler struct {
	profile  IntensityProfile
	min, max float64
	steps    int

	// Forward table: steps/2+1 samples at radii min + 2h*j.
	fwdRadius []float64
	fwdProb   []float64
	fwdSlope  []float64 // dProb/dRadius over the interval ending at j

	// Inverse table: steps+1 samples at probabilities j/steps.
	invProb   []float64
	invRadius []float64
	invSlope  []float64 // dRadius/dProb over the bucket starting at j
}

// NewSampler integrates the profile over [min,max] in the given number
// of steps. Simpson's rule consumes intervals in pairs, so steps must
// be even; odd or non-positive steps and an empty domain are contract
// violations, not clampable inputs.
func NewSampler(profile IntensityProfile, min, max float64, steps int) (*Sampler, error) {
	if steps <= 0 || steps%2 != 0 {
		return nil, fmt.Errorf("density: steps must be positive and even, got %d", steps)
	}
	if max <= min {
		return nil, fmt.Errorf("density: empty radius domain [%g,%g]", min, max)
	}
	s := &Sampler{profile: profile, min: min, max: max, steps: steps}
	s.build()
	return s, nil
}

// Min returns the lower edge of the radius domain.
func (s *Sampler) Min() float64 { return s.min }

// Max returns the upper edge of the radius domain.
func (s *Sampler) Max() float64 { return s.max }

func (s *Sampler) build() {
	h := (s.max - s.min) / float64(s.steps)
	n := s.steps/2 + 1

	s.fwdRadius = make([]float64, n)
	s.fwdProb = make([]float64, n)
	s.fwdSlope = make([]float64, n)

	// Simpson's rule over consecutive interval pairs accumulates the
	// running integral of the intensity profile.
	s.fwdRadius[0] = s.min
	sum := 0.0
	for i := 0; i < s.steps; i += 2 {
		x := s.min + float64(i)*h
		segment := h / 3 * (s.profile.Intensity(x) +
			4*s.profile.Intensity(x+h) +
			s.profile.Intensity(x+2*h))
		sum += segment

		j := i/2 + 1
		s.fwdRadius[j] = x + 2*h
		s.fwdProb[j] = sum
		s.fwdSlope[j] = segment / (2 * h)
	}

	// Normalize so the forward table spans exactly [0,1].
	for j := 1; j < n; j++ {
		s.fwdProb[j] /= sum
		s.fwdSlope[j] /= sum
	}

	// Build the inverse by scanning evenly spaced probability targets.
	// The cursor never resets: both the targets and the forward table
	// are monotonic, so the bracketing interval only moves forward.
	m := s.steps + 1
	s.invProb = make([]float64, m)
	s.invRadius = make([]float64, m)
	s.invSlope = make([]float64, m)

	k := 0
	for i := 0; i < m; i++ {
		p := float64(i) / float64(s.steps)
		for k < n-2 && s.fwdProb[k+1] < p {
			k++
		}
		r := s.fwdRadius[k]
		if slope := s.fwdSlope[k+1]; slope > 0 {
			r += (p - s.fwdProb[k]) / slope
		}
		if r > s.max {
			r = s.max
		}
		s.invProb[i] = p
		s.invRadius[i] = r
	}
	for i := 0; i < m-1; i++ {
		s.invSlope[i] = (s.invRadius[i+1] - s.invRadius[i]) * float64(s.steps)
	}
	s.invSlope[m-1] = s.invSlope[m-2]
}

// ProbabilityFromRadius returns the cumulative probability at radius r.
// r outside [min,max] is an error, never clamped.
func (s *Sampler) ProbabilityFromRadius(r float64) (float64, error) {
	if r < s.min || r > s.max {
		return 0, fmt.Errorf("density: radius %g outside domain [%g,%g]", r, s.min, s.max)
	}
	width := 2 * (s.max - s.min) / float64(s.steps)
	idx := int((r - s.min) / width)
	if idx >= len(s.fwdProb)-1 {
		return 1, nil
	}
	return s.fwdProb[idx] + (r-s.fwdRadius[idx])*s.fwdSlope[idx+1], nil
}

// RadiusFromProbability maps a uniform draw p in [0,1] to a radius
// distributed like the intensity profile. p outside [0,1] is an error.
func (s *Sampler) RadiusFromProbability(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("density: probability %g outside [0,1]", p)
	}
	idx := int(p * float64(s.steps))
	if idx >= len(s.invRadius)-1 {
		return s.invRadius[len(s.invRadius)-1], nil
	}
	return s.invRadius[idx] + (p-s.invProb[idx])*s.invSlope[idx], nil
}
