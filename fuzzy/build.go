package fuzzy

import "math"

// Constants of the size-based sigmoid default for k; see CalculateK.
const (
	kBase      = 2.0    // lower asymptote for tiny graphs
	kRange     = 23.8   // additional k gained as graphs grow
	kSteepness = 0.0015 // sigmoid steepness
	kMidpoint  = 1100.0 // graph size at the sigmoid midpoint
)

// BuildEdges — the graph assembler, first stage of the pipeline.
//
// Description:
//
//	Resolves the effective neighbor count k, builds directed edges via
//	per-point sigma calibration, and symmetrizes them into the final
//	weighted edge list consumed by layout.Run.
//
// k resolution, in priority order:
//  1. opts.Neighbors, when > 0;
//  2. opts.NeighborsFn(len(g)), when non-nil;
//  3. CalculateK(len(g)) — the size-based sigmoid default.
//
// Edge cases:
//   - Empty graph returns an empty (nil) edge list immediately, no error.
//
// Determinism: fully deterministic for a deterministic k resolution —
// randomness appears only in layout, never in graph construction.
//
// Complexity:
//
//	Time:   O(V·K·64 + E)
//	Memory: O(E)
func BuildEdges(g NeighborGraph, opts Options) []WeightedEdge {
	if len(g) == 0 {
		return nil
	}

	k := opts.Neighbors
	if k <= 0 {
		if opts.NeighborsFn != nil {
			k = opts.NeighborsFn(len(g))
		} else {
			k = CalculateK(len(g))
		}
	}

	return Symmetrize(directedEdges(g, k), opts.Mode)
}

// CalculateK returns the size-adaptive default effective neighbor count:
//
//	round(2 + 23.8 / (1 + exp(−0.0015·(n − 1100))))
//
// bounding k between 2 (small graphs) and ~25.8 (large graphs), with a
// smooth transition near n = 1100.
func CalculateK(n int) float64 {
	return math.Round(kBase + kRange/(1+math.Exp(-kSteepness*(float64(n)-kMidpoint))))
}
