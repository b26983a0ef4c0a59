package config

import "sync"

// GenerationParameters is everything a single galaxy build depends on.
// Radii are in parsec. A copy of this struct is handed to the pipeline
// as an immutable snapshot; the live, mutable instance lives inside a
// Store.
type GenerationParameters struct {
	CoreRadius     float64 `json:"coreRadius"`
	GalaxyRadius   float64 `json:"galaxyRadius"`
	FarFieldFactor float64 `json:"farFieldFactor"` // far radius = factor * galaxy radius

	Ex1              float64 `json:"ex1"` // eccentricity at the core edge
	Ex2              float64 `json:"ex2"` // eccentricity at the disc edge
	AngleCoefficient float64 `json:"angleCoefficient"`

	StarCount     int  `json:"starCount"`
	DustCount     int  `json:"dustCount"`
	FilamentCount int  `json:"filamentCount"`
	ShowStars     bool `json:"showStars"`
	ShowDust      bool `json:"showDust"`
	ShowFilaments bool `json:"showFilaments"`

	// SystemCount is how many stars participate in the hyperlane
	// network. Kept small by default: the spanning-tree build is
	// quadratic in this number.
	SystemCount int `json:"systemCount"`

	PerturbationCount     int     `json:"perturbationCount"`
	PerturbationAmplitude float64 `json:"perturbationAmplitude"`

	BaseDustTemperature float64 `json:"baseDustTemperature"` // Kelvin
	CDFSteps            int     `json:"cdfSteps"`

	TimeStep float64 `json:"timeStep"` // years of sim time per frame
	Seed     int64   `json:"seed"`
}

// DefaultParameters returns a plausible Milky-Way-ish disc.
func DefaultParameters() GenerationParameters {
	return GenerationParameters{
		CoreRadius:            4000,
		GalaxyRadius:          13000,
		FarFieldFactor:        2,
		Ex1:                   0.85,
		Ex2:                   0.95,
		AngleCoefficient:      0.0004,
		StarCount:             40000,
		DustCount:             40000,
		FilamentCount:         100,
		ShowStars:             true,
		ShowDust:              true,
		ShowFilaments:         true,
		SystemCount:           150,
		PerturbationCount:     2,
		PerturbationAmplitude: 40,
		BaseDustTemperature:   4000,
		CDFSteps:              1000,
		TimeStep:              100000,
		Seed:                  1,
	}
}

// Store owns the live parameters and their dirty flag. A UI thread or
// the websocket server mutates through Mutate; the pipeline consumes
// via TakeSnapshot once per tick, which hands back an immutable copy
// and clears the flag in the same critical section, so a mutation can
// never fall between read and clear.
type Store struct {
	mu     sync.Mutex
	params GenerationParameters
	dirty  bool
}

// NewStore starts dirty so the first tick always generates.
func NewStore(p GenerationParameters) *Store {
	return &Store{params: p, dirty: true}
}

// Mutate applies fn to the live parameters and marks them dirty.
func (s *Store) Mutate(fn func(*GenerationParameters)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.params)
	s.dirty = true
}

// TakeSnapshot returns a copy of the current parameters and whether
// they changed since the last call. The dirty flag is a one-shot
// trigger: it is cleared as part of taking the snapshot.
func (s *Store) TakeSnapshot() (GenerationParameters, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasDirty := s.dirty
	s.dirty = false
	return s.params, wasDirty
}

// Peek returns a copy of the current parameters without touching the
// dirty flag.
func (s *Store) Peek() GenerationParameters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}
