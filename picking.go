package main

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpatialIndex is the contract the sandbox expects from a spatial
// acceleration structure for selection and debug overlays. Only this
// surface is consumed here; the structure behind it is free to be an
// octree, a grid, or anything else.
type SpatialIndex interface {
	Insert(bounds rl.Rectangle, payload int32)
	Clear()
	// RayCast walks the ray (origin, dir) and returns the payload of
	// the first inserted bounds it hits.
	RayCast(origin, dir rl.Vector2, maxDist float32) (int32, bool)
	// ForEachNode visits the bounds of every occupied node of the
	// structure; ForEachLeaf visits every stored entry once.
	ForEachNode(fn func(bounds rl.Rectangle))
	ForEachLeaf(fn func(bounds rl.Rectangle, payload int32))
}

// gridIndex is a flat uniform-grid implementation of SpatialIndex,
// good enough for a few hundred system markers.
type gridIndex struct {
	cellSize  float32
	minExtent float32 // smallest inserted bounds edge, 0 when empty
	cells     map[[2]int32][]entry
}

type entry struct {
	bounds  rl.Rectangle
	payload int32
}

func NewGridIndex(cellSize float32) SpatialIndex {
	return &gridIndex{
		cellSize: cellSize,
		cells:    make(map[[2]int32][]entry),
	}
}

func (g *gridIndex) key(x, y float32) [2]int32 {
	return [2]int32{
		int32(math.Floor(float64(x / g.cellSize))),
		int32(math.Floor(float64(y / g.cellSize))),
	}
}

func (g *gridIndex) Insert(bounds rl.Rectangle, payload int32) {
	edge := bounds.Width
	if bounds.Height < edge {
		edge = bounds.Height
	}
	if edge > 0 && (g.minExtent == 0 || edge < g.minExtent) {
		g.minExtent = edge
	}

	lo := g.key(bounds.X, bounds.Y)
	hi := g.key(bounds.X+bounds.Width, bounds.Y+bounds.Height)
	for cy := lo[1]; cy <= hi[1]; cy++ {
		for cx := lo[0]; cx <= hi[0]; cx++ {
			k := [2]int32{cx, cy}
			g.cells[k] = append(g.cells[k], entry{bounds, payload})
		}
	}
}

func (g *gridIndex) Clear() {
	for k := range g.cells {
		delete(g.cells, k)
	}
	g.minExtent = 0
}

func (g *gridIndex) RayCast(origin, dir rl.Vector2, maxDist float32) (int32, bool) {
	// March at half the smallest inserted extent so no stored bounds
	// can fit between consecutive samples. Half-cell steps would do
	// for cell-sized bounds but skip over anything smaller.
	step := g.cellSize / 2
	if g.minExtent > 0 && g.minExtent/2 < step {
		step = g.minExtent / 2
	}
	if step <= 0 {
		return 0, false
	}
	length := float32(math.Hypot(float64(dir.X), float64(dir.Y)))
	if length == 0 {
		return 0, false
	}
	nx, ny := dir.X/length, dir.Y/length

	for d := float32(0); d <= maxDist; d += step {
		px := origin.X + nx*d
		py := origin.Y + ny*d
		for _, e := range g.cells[g.key(px, py)] {
			if px >= e.bounds.X && px <= e.bounds.X+e.bounds.Width &&
				py >= e.bounds.Y && py <= e.bounds.Y+e.bounds.Height {
				return e.payload, true
			}
		}
	}
	return 0, false
}

func (g *gridIndex) ForEachNode(fn func(bounds rl.Rectangle)) {
	for k := range g.cells {
		fn(rl.Rectangle{
			X: float32(k[0]) * g.cellSize, Y: float32(k[1]) * g.cellSize,
			Width: g.cellSize, Height: g.cellSize,
		})
	}
}

func (g *gridIndex) ForEachLeaf(fn func(bounds rl.Rectangle, payload int32)) {
	seen := make(map[int32]bool)
	for _, cell := range g.cells {
		for _, e := range cell {
			if !seen[e.payload] {
				seen[e.payload] = true
				fn(e.bounds, e.payload)
			}
		}
	}
}

// Picker turns mouse clicks into system selections. The systems orbit,
// so the index is rebuilt from the current frame's positions at the
// moment of a click rather than cached across frames.
type Picker struct {
	index      SpatialIndex
	markerSize float32
	Selected   int32
	HasPick    bool
}

func NewPicker(markerSize float32) *Picker {
	return &Picker{
		index:      NewGridIndex(markerSize * 8),
		markerSize: markerSize,
		Selected:   -1,
	}
}

// rebuild repopulates the index with a marker box per system.
func (p *Picker) rebuild(systems []rl.Vector2) {
	p.index.Clear()
	half := p.markerSize / 2
	for i, pos := range systems {
		p.index.Insert(rl.Rectangle{
			X: pos.X - half, Y: pos.Y - half,
			Width: p.markerSize, Height: p.markerSize,
		}, int32(i))
	}
}

// Update resolves a click, if any, against the given system positions.
// The short downward cast from the cursor keeps the ray walk trivial.
func (p *Picker) Update(systems []rl.Vector2, camera rl.Camera2D) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	p.rebuild(systems)
	world := rl.GetScreenToWorld2D(rl.GetMousePosition(), camera)
	if hit, ok := p.index.RayCast(world, rl.Vector2{X: 0, Y: 1}, p.markerSize); ok {
		p.Selected = hit
		p.HasPick = true
		fmt.Printf("Selected system %d at (%.0f, %.0f)\n", hit, world.X, world.Y)
	} else {
		p.HasPick = false
		p.Selected = -1
	}
}

// DrawOverlay rings the selected system. Call inside the camera mode
// of the frame being drawn.
func (p *Picker) DrawOverlay(systems []rl.Vector2) {
	if !p.HasPick || int(p.Selected) >= len(systems) {
		return
	}
	rl.DrawCircleLinesV(systems[p.Selected], p.markerSize, rl.Gold)
}

// DrawDebug outlines the index over the current frame's positions:
// occupied grid nodes in gray, per-system leaf bounds in green. Call
// inside the camera mode.
func (p *Picker) DrawDebug(systems []rl.Vector2) {
	p.rebuild(systems)
	thick := p.markerSize / 20
	p.index.ForEachNode(func(b rl.Rectangle) {
		rl.DrawRectangleLinesEx(b, thick, rl.DarkGray)
	})
	p.index.ForEachLeaf(func(b rl.Rectangle, _ int32) {
		rl.DrawRectangleLinesEx(b, thick, rl.Green)
	})
}
