package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxygenerator/core"
	"galaxygenerator/galaxy"
	"galaxygenerator/physics"
)

// Viewer is the thin rendering collaborator: it consumes the
// pipeline's read-only spans and issues draw calls, nothing else. The
// orbit fields are flattened into float32 buffers once per generation
// (the "upload"); the per-frame loop only evaluates positions.
type Viewer struct {
	camera     rl.Camera2D
	generation uint64
	width      int
	height     int

	// Flattened particle data, rebuilt on upload.
	theta0 []float32
	omega  []float32
	tilt   []float32
	axisA  []float32
	axisB  []float32
	colors []rl.Color
	types  []core.ParticleType

	lanes       []core.HyperlaneEdge
	systemCount int
	systems     []rl.Vector2 // current-frame system positions, reused per frame

	pertN     int
	pertAmp   float32
	showLanes bool
	showIndex bool
}

func NewViewer(width, height int) *Viewer {
	return &Viewer{
		width:  width,
		height: height,
		camera: rl.Camera2D{
			Offset: rl.Vector2{X: float32(width) / 2, Y: float32(height) / 2},
			Zoom:   1,
		},
		showLanes: true,
	}
}

// upload flattens the snapshot into the viewer's buffers. Called only
// when the pipeline generation moved, which is the "re-upload to
// device" step of a real renderer.
func (v *Viewer) upload(snap galaxy.Snapshot) {
	n := len(snap.Particles)
	v.theta0 = resize(v.theta0, n)
	v.omega = resize(v.omega, n)
	v.tilt = resize(v.tilt, n)
	v.axisA = resize(v.axisA, n)
	v.axisB = resize(v.axisB, n)
	v.colors = v.colors[:0]
	v.types = v.types[:0]

	for i, rec := range snap.Particles {
		v.theta0[i] = float32(rec.Theta0)
		v.omega[i] = float32(rec.AngularVelocity)
		v.tilt[i] = float32(rec.TiltAngle)
		v.axisA[i] = float32(rec.A)
		v.axisB[i] = float32(rec.B)
		v.colors = append(v.colors, fade(rec.Color, rec.Magnitude, rec.Type))
		v.types = append(v.types, rec.Type)
	}

	v.lanes = snap.Hyperlanes
	v.systemCount = len(snap.SystemPositions)
	v.systems = resizeVec(v.systems, v.systemCount)
	v.pertN = snap.Params.PerturbationCount
	v.pertAmp = float32(snap.Params.PerturbationAmplitude)

	// Frame the whole far field on upload.
	far := float32(snap.Params.GalaxyRadius * snap.Params.FarFieldFactor)
	if far > 0 {
		v.camera.Zoom = float32(v.height) / (2.2 * far)
	}
}

// Frame draws one frame at simulation time t (years).
func (v *Viewer) Frame(pipe *galaxy.Pipeline, picker *Picker, t float64) {
	snap := pipe.Snapshot()
	if snap.Generation != v.generation || pipe.NeedsUpload() {
		v.upload(snap)
		v.generation = snap.Generation
		pipe.AcknowledgeUpload()
	}

	v.handleCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.BeginMode2D(v.camera)

	t32 := float32(t)
	size := 1.5 / v.camera.Zoom
	for i := range v.axisA {
		x, y := physics.OrbitPosition32(
			v.theta0[i], v.omega[i], t32, v.tilt[i], v.axisA[i], v.axisB[i],
			v.pertN, v.pertAmp)
		pos := rl.Vector2{X: x, Y: y}
		if i < v.systemCount {
			v.systems[i] = pos
		}
		switch v.types[i] {
		case core.Star:
			rl.DrawRectangleV(pos, rl.Vector2{X: size, Y: size}, v.colors[i])
		default:
			// Dust and filaments as oversized translucent splats.
			rl.DrawRectangleV(pos, rl.Vector2{X: size * 4, Y: size * 4}, v.colors[i])
		}
	}

	if v.showLanes {
		laneColor := rl.NewColor(90, 140, 255, 90)
		for _, lane := range v.lanes {
			rl.DrawLineV(v.systems[lane.Source], v.systems[lane.Destination], laneColor)
		}
	}

	picker.Update(v.systems[:v.systemCount], v.camera)
	if v.showIndex {
		picker.DrawDebug(v.systems[:v.systemCount])
	}
	picker.DrawOverlay(v.systems[:v.systemCount])

	rl.EndMode2D()

	rl.DrawFPS(10, 10)
	rl.DrawText(statusLine(snap, t), 10, int32(v.height)-24, 18, rl.RayWhite)
	rl.EndDrawing()
}

func statusLine(snap galaxy.Snapshot, t float64) string {
	return fmt.Sprintf("gen %d | %d particles | %d lanes | t = %.1f My",
		snap.Generation, len(snap.Particles), len(snap.Hyperlanes), t/1e6)
}

// handleCamera applies wheel zoom and right-button drag pan.
func (v *Viewer) handleCamera() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.camera.Zoom *= 1 + 0.1*wheel
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		v.camera.Target.X -= delta.X / v.camera.Zoom
		v.camera.Target.Y -= delta.Y / v.camera.Zoom
	}
}

// fade scales a record color down by magnitude; dust stays translucent
// so overlapping splats accumulate into lanes instead of hard dots.
func fade(c rl.Color, magnitude float64, t core.ParticleType) rl.Color {
	switch t {
	case core.Star:
		return rl.Fade(c, float32(0.4+magnitude))
	default:
		return rl.Fade(c, float32(magnitude*6))
	}
}

func resize(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n)
	}
	return buf[:n]
}

func resizeVec(buf []rl.Vector2, n int) []rl.Vector2 {
	if cap(buf) < n {
		return make([]rl.Vector2, n)
	}
	return buf[:n]
}
