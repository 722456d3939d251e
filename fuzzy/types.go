// Package fuzzy defines the data model and options for weighted,
// symmetric proximity-graph construction.
package fuzzy

// minEdgeStrength is the floor applied to every directed edge so that a
// retained neighbor never contributes a zero-strength edge.
const minEdgeStrength = 0.001

// Neighbor is one entry of a point's precomputed neighbor list.
//
// Distance is non-negative.  A point's neighbor list is pre-sorted
// ascending by distance by the caller and is never re-sorted here —
// callers own the ordering, this package trusts it.
type Neighbor struct {
	ID       string
	Distance float64
}

// NeighborGraph maps each point ID to its ordered neighbor list.
//
// Keys are unique.  A point may appear as a neighbor of another point
// without being a key itself; edges to such points are dropped during
// edge building (no implicit node creation).
type NeighborGraph map[string][]Neighbor

// WeightedNeighbor is a Neighbor annotated with its computed membership
// strength in (0, 1].  The nearest neighbor always receives weight
// exactly 1.0 by construction (its distance is the local zero point).
type WeightedNeighbor struct {
	Neighbor
	Weight float64
}

// DirectedEdge is one source→target edge with strength ≥ 0.001, emitted
// in source-point-major order (sources in lexicographic ID order).
type DirectedEdge struct {
	Source   string
	Target   string
	Strength float64
}

// WeightedEdge is one symmetrized edge per unordered endpoint pair,
// endpoints canonicalized so that Source < Target lexicographically.
type WeightedEdge struct {
	Source   string
	Target   string
	Strength float64
}

// SymmetryMode selects how two opposing directed strengths a (u→v) and
// b (v→u) are combined into one undirected strength.
//
//   - Union     — fuzzy union a + b − a·b (probabilistic OR); the default.
//   - Product   — a·b (probabilistic AND).
//   - Geometric — sqrt(a·b) (geometric mean).
//
// Any other value falls through to Union; an unknown mode is not an error.
type SymmetryMode int

const (
	// Union combines strengths as a + b − a·b (fuzzy set union).
	Union SymmetryMode = iota

	// Product combines strengths as a·b.
	Product

	// Geometric combines strengths as sqrt(a·b).
	Geometric
)

// Options configures graph construction.
//
// Fields:
//   - Neighbors   — explicit effective neighbor count k; values ≤ 0 mean
//     "derive" (see NeighborsFn and CalculateK).
//   - NeighborsFn — optional k as a function of graph size, consulted when
//     Neighbors ≤ 0.
//   - Mode        — symmetrization rule; zero value is Union.
//
// Example:
//
//	opts := fuzzy.DefaultOptions()
//	opts.Neighbors = 15
//	opts.Mode = fuzzy.Geometric
//
//	edges := fuzzy.BuildEdges(g, opts)
type Options struct {
	Neighbors   float64
	NeighborsFn func(n int) float64
	Mode        SymmetryMode
}

// DefaultOptions returns Options with the size-adaptive k default
// (CalculateK) and fuzzy-union symmetrization.
func DefaultOptions() Options {
	return Options{
		Neighbors:   0,
		NeighborsFn: nil,
		Mode:        Union,
	}
}
