package fuzzy

import (
	"math"
	"sort"
)

// directedEdges converts every point's weighted neighbors into directed
// edges, in source-point-major order (sources iterated in lexicographic
// ID order so output is deterministic over the map).
//
// Filtering (silent, never an error):
//   - self-referencing entries (neighbor ID equals the source) — dropped;
//   - entries referencing an ID absent from the graph's key set — dropped
//     (no implicit node creation).
//
// Strength is max(0.001, weight) so a retained neighbor never yields a
// zero-strength edge.
func directedEdges(g NeighborGraph, k float64) []DirectedEdge {
	sources := make([]string, 0, len(g))
	for id := range g {
		sources = append(sources, id)
	}
	sort.Strings(sources)

	edges := make([]DirectedEdge, 0, len(g))
	for _, src := range sources {
		for _, wn := range SmoothWeights(g[src], k) {
			if wn.ID == src {
				continue
			}
			if _, ok := g[wn.ID]; !ok {
				continue
			}
			edges = append(edges, DirectedEdge{
				Source:   src,
				Target:   wn.ID,
				Strength: math.Max(minEdgeStrength, wn.Weight),
			})
		}
	}

	return edges
}
