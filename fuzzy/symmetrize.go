package fuzzy

import "math"

// pairKey addresses one direction of an unordered endpoint pair.
type pairKey struct {
	src, dst string
}

// Symmetrize — collapse opposing directed edges into undirected edges.
//
// Description:
//
//	For each unordered endpoint pair (u, v) with forward strength a
//	(u→v, 0 if absent) and reverse strength b (v→u, 0 if absent), emit
//	exactly one WeightedEdge whose strength is
//
//	  Union:     a + b − a·b   (fuzzy set union; the default)
//	  Product:   a·b
//	  Geometric: sqrt(a·b)
//
// Ordering:
//
//	Pairs are emitted in the order they first appear in the directed
//	edge list; output endpoints are canonicalized so Source < Target
//	lexicographically.  Each unordered pair appears exactly once.
//
// Edge cases:
//   - Unknown mode values fall through to Union (not an error).
//   - Empty input yields empty (nil) output.
//
// Complexity:
//
//	Time:   O(E)
//	Memory: O(E)
func Symmetrize(edges []DirectedEdge, mode SymmetryMode) []WeightedEdge {
	if len(edges) == 0 {
		return nil
	}

	strength := make(map[pairKey]float64, len(edges))
	for _, e := range edges {
		strength[pairKey{e.Source, e.Target}] = e.Strength
	}

	seen := make(map[pairKey]bool, len(edges))
	out := make([]WeightedEdge, 0, len(edges))
	for _, e := range edges {
		u, v := e.Source, e.Target
		if v < u {
			u, v = v, u
		}
		canon := pairKey{u, v}
		if seen[canon] {
			continue
		}
		seen[canon] = true

		fwd := strength[pairKey{u, v}]
		rev := strength[pairKey{v, u}]
		out = append(out, WeightedEdge{
			Source:   u,
			Target:   v,
			Strength: combine(fwd, rev, mode),
		})
	}

	return out
}

// combine applies the selected symmetrization rule; unknown modes use Union.
func combine(a, b float64, mode SymmetryMode) float64 {
	switch mode {
	case Product:
		return a * b
	case Geometric:
		return math.Sqrt(a * b)
	default:
		return a + b - a*b
	}
}
