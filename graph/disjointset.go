// Package graph derives the hyperlane network: a minimum spanning tree
// over the sampled star systems, built with Kruskal's algorithm on an
// array-backed union-find forest.
package graph

import "fmt"

// DisjointSet is a union-find forest over vertex ids [0,n).
type DisjointSet struct {
	parent []int32
	rank   []int8
}

// NewDisjointSet creates n singleton components.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("graph: negative vertex count %d", n))
	}
	d := &DisjointSet{
		parent: make([]int32, n),
		rank:   make([]int8, n),
	}
	for i := range d.parent {
		d.parent[i] = int32(i)
	}
	return d
}

// Find returns the representative of x's component. Compression is
// done iteratively in two passes, so pathological chains cannot grow
// the stack.
func (d *DisjointSet) Find(x int32) int32 {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union merges the components containing x and y, by rank. It returns
// false if they were already in the same component.
func (d *DisjointSet) Union(x, y int32) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	return true
}
