package graph

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Edge is a weighted undirected edge between two vertex ids.
type Edge struct {
	Source      int32
	Destination int32
	Weight      float64
}

// CompleteGraph returns every unordered vertex pair as an edge weighted
// by planar Euclidean distance. This is O(n^2) edges and the sort in
// MinimumSpanningTree is O(n^2 log n): fine for tens to low hundreds of
// systems, pathological beyond that. Callers working off 3D positions
// drop the height axis before projecting to these points.
func CompleteGraph(points []mgl64.Vec2) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{
				Source:      int32(i),
				Destination: int32(j),
				Weight:      points[i].Sub(points[j]).Len(),
			})
		}
	}
	return edges
}

// MinimumSpanningTree runs Kruskal's algorithm over the candidate
// edges and returns the accepted edges, vertexCount-1 of them when the
// input connects the whole vertex set. The sort is stable, so ties
// break by input order; that picks one of several equal-weight trees
// but never changes the total weight.
func MinimumSpanningTree(edges []Edge, vertexCount int) []Edge {
	if vertexCount <= 1 {
		return nil
	}

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	forest := NewDisjointSet(vertexCount)
	tree := make([]Edge, 0, vertexCount-1)
	for _, e := range sorted {
		if !forest.Union(e.Source, e.Destination) {
			continue // cycle
		}
		tree = append(tree, e)
		if len(tree) == vertexCount-1 {
			break
		}
	}
	return tree
}
