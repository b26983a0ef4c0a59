// Package galaxy orchestrates generation: it owns the particle and
// hyperlane arenas, rebuilds the density sampler when parameters
// change, and exposes read-only snapshots to the rendering layer.
package galaxy

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"galaxygenerator/bluenoise"
	"galaxygenerator/config"
	"galaxygenerator/core"
	"galaxygenerator/density"
	"galaxygenerator/graph"
	"galaxygenerator/physics"
)

// Category heuristics. Star surface temperatures span F through A
// types; dust glows at its base temperature plus a mild radial ramp.
const (
	starTempBase   = 6000.0
	starTempSpread = 4000.0
	starMagBase    = 0.1
	starMagSpread  = 0.4

	dustMagBase       = 0.015
	dustMagSpread     = 0.01
	dustTempPerParsec = 1.0 / 4.5

	filamentMagBase      = 0.02
	filamentMagSpread    = 0.01
	filamentRadiusJitter = 200.0 // pc
	filamentAngleJitter  = 10.0  // degrees
)

// BuildStats summarizes one regeneration pass.
type BuildStats struct {
	Stars     int           `json:"stars"`
	Dust      int           `json:"dust"`
	Filaments int           `json:"filaments"`
	Lanes     int           `json:"lanes"`
	Elapsed   time.Duration `json:"elapsedNs"`
}

// Snapshot is the read-only view handed to the rendering collaborator.
// The spans alias the pipeline's arenas and stay valid until the next
// regeneration; Generation lets a reader detect that it raced one.
type Snapshot struct {
	Particles       []core.Particle
	Hyperlanes      []core.HyperlaneEdge
	SystemPositions []mgl64.Vec2
	Params          config.GenerationParameters
	Generation      uint64
}

// Pipeline regenerates the galaxy whenever the parameter store turns
// dirty. Single-threaded: one Regenerate at a time, from the
// simulation tick. Readers on other threads compare Generation before
// and after copying a snapshot out.
type Pipeline struct {
	particles *core.Arena[core.Particle]
	lanes     *core.Arena[core.HyperlaneEdge]

	// Planar t=0 positions of the stars participating in the
	// hyperlane network, in star order.
	systemPositions []mgl64.Vec2

	sampler *density.Sampler
	curve   physics.RotationCurve
	rng     *rand.Rand
	params  config.GenerationParameters

	generation  atomic.Uint64
	needsUpload atomic.Bool

	// Published copy of the last completed pass, for readers on other
	// goroutines. The arenas themselves are simulation-thread-only.
	statsMu        sync.Mutex
	lastStats      BuildStats
	lastGeneration uint64
}

// NewPipeline creates an empty pipeline. Nothing is generated until
// the first Tick or Regenerate.
func NewPipeline() *Pipeline {
	return &Pipeline{
		particles: core.NewArena[core.Particle](1024, 1024),
		lanes:     core.NewArena[core.HyperlaneEdge](256, 256),
		rng:       rand.New(rand.NewSource(1)),
	}
}

// Tick consumes the store's dirty flag, regenerating when it was set.
// Call once per simulation tick; the flag is a one-shot trigger.
func (p *Pipeline) Tick(store *config.Store) (BuildStats, bool, error) {
	params, dirty := store.TakeSnapshot()
	if !dirty {
		return BuildStats{}, false, nil
	}
	stats, err := p.Regenerate(params)
	return stats, true, err
}

// Regenerate rebuilds every population and the hyperlane network from
// scratch for the given parameters. The RNG is reseeded from
// params.Seed, so the same parameters always build the same galaxy.
func (p *Pipeline) Regenerate(params config.GenerationParameters) (BuildStats, error) {
	start := time.Now()

	farRadius := params.GalaxyRadius * params.FarFieldFactor
	profile := density.IntensityProfile{
		I0:          1.0,
		K:           0.02,
		A:           params.GalaxyRadius / 3,
		BulgeRadius: params.CoreRadius * 0.3,
	}
	sampler, err := density.NewSampler(profile, 0, farRadius, params.CDFSteps)
	if err != nil {
		return BuildStats{}, fmt.Errorf("galaxy: building density sampler: %w", err)
	}

	p.sampler = sampler
	p.curve = physics.RotationCurve{
		CoreRadius:       params.CoreRadius,
		GalaxyRadius:     params.GalaxyRadius,
		FarRadius:        farRadius,
		Ex1:              params.Ex1,
		Ex2:              params.Ex2,
		AngleCoefficient: params.AngleCoefficient,
	}
	p.rng = rand.New(rand.NewSource(params.Seed))
	p.params = params

	p.particles.Clear()
	p.lanes.Clear()
	p.systemPositions = p.systemPositions[:0]

	// Pre-size so the pass stays grow-free and At pointers stay valid
	// throughout. Filament clusters are bounded per seed.
	expected := params.StarCount + params.DustCount +
		params.FilamentCount*(filamentClusterMin+filamentClusterSpread)
	if expected > 0 {
		p.particles.Reserve(expected)
	}

	var stats BuildStats
	if params.ShowStars {
		stats.Stars = p.generateStars(params)
	}
	if params.ShowDust {
		stats.Dust = p.generateDust(params)
	}
	if params.ShowFilaments {
		stats.Filaments = p.generateFilaments(params)
	}
	stats.Lanes = p.buildHyperlanes(params)

	gen := p.generation.Add(1)
	p.needsUpload.Store(true)
	stats.Elapsed = time.Since(start)

	p.statsMu.Lock()
	p.lastStats = stats
	p.lastGeneration = gen
	p.statsMu.Unlock()

	return stats, nil
}

// generateStars draws StarCount radii from the density sampler and
// fills in orbit, temperature and color per star. The first
// SystemCount stars double as hyperlane endpoints; their t=0 planar
// positions are collected on the way.
func (p *Pipeline) generateStars(params config.GenerationParameters) int {
	placed := 0
	for i := 0; i < params.StarCount; i++ {
		rad, err := p.sampler.RadiusFromProbability(p.rng.Float64())
		if err != nil {
			continue // unreachable for a uniform draw, but never abort a pass
		}

		idx := p.particles.Allocate()
		s := p.particles.At(idx)
		s.A = rad
		s.B = rad * p.curve.Eccentricity(rad)
		s.TiltAngle = p.curve.AngularOffset(rad)
		s.Theta0 = 360 * p.rng.Float64()
		s.AngularVelocity = p.curve.OrbitalAngularVelocity(rad)
		s.Temperature = starTempBase + starTempSpread*p.rng.Float64() - starTempSpread/2
		s.Magnitude = starMagBase + starMagSpread*p.rng.Float64()
		s.Type = core.Star
		s.Color = BlackBodyColor(s.Temperature)
		placed++

		if len(p.systemPositions) < params.SystemCount {
			p.systemPositions = append(p.systemPositions, physics.OrbitPosition(
				s.Theta0, s.AngularVelocity, 0, s.TiltAngle, s.A, s.B,
				params.PerturbationCount, params.PerturbationAmplitude))
		}
	}
	return placed
}

// generateDust alternates density-weighted and uniform-square radius
// draws. The uniform half spreads a faint halo past the bright disc,
// which reads as an extended dusty background.
func (p *Pipeline) generateDust(params config.GenerationParameters) int {
	placed := 0
	for i := 0; i < params.DustCount; i++ {
		var rad float64
		if i%2 == 0 {
			r, err := p.sampler.RadiusFromProbability(p.rng.Float64())
			if err != nil {
				continue
			}
			rad = r
		} else {
			x := 2*params.GalaxyRadius*p.rng.Float64() - params.GalaxyRadius
			y := 2*params.GalaxyRadius*p.rng.Float64() - params.GalaxyRadius
			rad = math.Sqrt(x*x + y*y)
		}

		idx := p.particles.Allocate()
		d := p.particles.At(idx)
		d.A = rad
		d.B = rad * p.curve.Eccentricity(rad)
		d.TiltAngle = p.curve.AngularOffset(rad)
		d.Theta0 = 360 * p.rng.Float64()
		d.AngularVelocity = p.curve.OrbitalAngularVelocity(rad)
		d.Temperature = params.BaseDustTemperature + rad*dustTempPerParsec
		d.Magnitude = dustMagBase + dustMagSpread*p.rng.Float64()
		d.Type = core.Dust
		d.Color = BlackBodyColor(d.Temperature)
		placed++
	}
	return placed
}

// Filament clusters per seed.
const (
	filamentClusterMin    = 8
	filamentClusterSpread = 16
)

// generateFilaments drops a small cluster of particles around each
// density-sampled seed, jittered in radius and angle so the cluster
// smears along its orbit like a dust lane.
func (p *Pipeline) generateFilaments(params config.GenerationParameters) int {
	placed := 0
	for i := 0; i < params.FilamentCount; i++ {
		seedRad, err := p.sampler.RadiusFromProbability(p.rng.Float64())
		if err != nil {
			continue
		}
		seedTheta := 360 * p.rng.Float64()

		count := filamentClusterMin + p.rng.Intn(filamentClusterSpread)
		for j := 0; j < count; j++ {
			rad := seedRad + filamentRadiusJitter*(2*p.rng.Float64()-1)
			if rad < 0 {
				rad = 0
			}
			if rad > p.sampler.Max() {
				rad = p.sampler.Max()
			}

			idx := p.particles.Allocate()
			f := p.particles.At(idx)
			f.A = rad
			f.B = rad * p.curve.Eccentricity(rad)
			f.TiltAngle = p.curve.AngularOffset(rad)
			f.Theta0 = seedTheta + filamentAngleJitter*(2*p.rng.Float64()-1)
			f.AngularVelocity = p.curve.OrbitalAngularVelocity(rad)
			f.Temperature = params.BaseDustTemperature + rad*dustTempPerParsec
			f.Magnitude = filamentMagBase + filamentMagSpread*p.rng.Float64()
			f.Type = core.Filament
			f.Color = BlackBodyColor(f.Temperature)
			placed++
		}
	}
	return placed
}

// buildHyperlanes runs Kruskal over the complete graph of the system
// stars' planar positions. The hyperlane network connects the stars
// the sampler actually placed; the blue-noise surface in SeedSystems
// is a separate, well-spaced probe layout and never feeds the tree.
func (p *Pipeline) buildHyperlanes(params config.GenerationParameters) int {
	n := len(p.systemPositions)
	if n < 2 {
		return 0
	}

	tree := graph.MinimumSpanningTree(graph.CompleteGraph(p.systemPositions), n)
	for _, e := range tree {
		idx := p.lanes.Allocate()
		p.lanes.Set(idx, core.HyperlaneEdge{
			Source:      e.Source,
			Destination: e.Destination,
			Weight:      e.Weight,
		})
	}
	return p.lanes.Len()
}

// SeedSystems places well-spaced probe points across the disc for the
// selection overlay, centered on the galactic core. Blue-noise keeps
// probes from clumping the way density-weighted draws do.
func (p *Pipeline) SeedSystems(minDist float64) []mgl64.Vec2 {
	r := p.params.GalaxyRadius
	if r <= 0 {
		return nil
	}
	points := bluenoise.Sample(2*r, 2*r, minDist, bluenoise.DefaultAttempts, p.rng)
	for i := range points {
		points[i] = points[i].Sub(mgl64.Vec2{r, r})
	}
	return points
}

// Snapshot returns the current read-only spans. Simulation-thread
// only: the spans alias arenas that Regenerate rewrites in place.
// Other goroutines observe the pipeline through Stats.
func (p *Pipeline) Snapshot() Snapshot {
	return Snapshot{
		Particles:       p.particles.Span(),
		Hyperlanes:      p.lanes.Span(),
		SystemPositions: p.systemPositions,
		Params:          p.params,
		Generation:      p.generation.Load(),
	}
}

// Stats returns the counts of the last completed pass and the
// generation that produced them, as one consistent pair. Safe to call
// from any goroutine while Regenerate runs; the status broadcaster
// polls this instead of Snapshot.
func (p *Pipeline) Stats() (BuildStats, uint64) {
	p.statsMu.Lock()
	defer p.statsMu.Unlock()
	return p.lastStats, p.lastGeneration
}

// Generation returns the regeneration sequence counter.
func (p *Pipeline) Generation() uint64 {
	return p.generation.Load()
}

// NeedsUpload reports whether the arenas changed since the renderer
// last acknowledged an upload.
func (p *Pipeline) NeedsUpload() bool {
	return p.needsUpload.Load()
}

// AcknowledgeUpload clears the re-upload flag. The rendering
// collaborator calls this after re-uploading the spans to the device.
func (p *Pipeline) AcknowledgeUpload() {
	p.needsUpload.Store(false)
}
