package layout

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/fronx/umapper/fuzzy"
)

// spectralMinNodes is the graph size below which spectral
// initialization is skipped: random placement works fine for small
// graphs, and the eigendecomposition only pays off when there is
// global structure to preserve.
const spectralMinNodes = 50

// spectralJitter is the per-axis tie-breaking perturbation added to
// every spectral coordinate.
const spectralJitter = 1e-4

// SpectralPositions creates initial node positions from the spectrum of
// the weighted graph's symmetric normalized Laplacian
// L = I − D^(−1/2)·A·D^(−1/2): the two eigenvectors following the
// trivial one become the axes, scaled to [−10, 10], with a tiny seeded
// jitter to break ties.
//
// Fallback: graphs with fewer than 50 nodes, no usable edges, or a
// failed eigendecomposition fall back to RandomPositions with the same
// seed.
//
// Determinism: the seed fully determines the result.
//
// Complexity: O(n³) for the eigendecomposition; O(n²) memory.
func SpectralPositions(ids []string, edges []fuzzy.WeightedEdge, seed int64) []Node {
	n := len(ids)
	if n < spectralMinNodes || len(edges) == 0 {
		return RandomPositions(ids, seed)
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	adj := mat.NewSymDense(n, nil)
	degrees := make([]float64, n)
	for _, e := range edges {
		i, ok := index[e.Source]
		if !ok {
			continue
		}
		j, ok := index[e.Target]
		if !ok || i == j {
			continue
		}
		adj.SetSym(i, j, e.Strength)
		degrees[i] += e.Strength
		degrees[j] += e.Strength
	}

	laplacian := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		laplacian.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			if degrees[i] > 0 && degrees[j] > 0 {
				laplacian.SetSym(i, j, -adj.At(i, j)/math.Sqrt(degrees[i]*degrees[j]))
			}
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(laplacian, true); !ok {
		return RandomPositions(ids, seed)
	}

	// EigenSym orders eigenvalues ascending; columns 1 and 2 are the
	// first non-trivial eigenvectors.
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	nodes := make([]Node, n)
	rng := deriveRNG(seed, streamInitial)
	xs := scaleAxis(&vectors, 1, n)
	ys := scaleAxis(&vectors, 2, n)
	for i, id := range ids {
		nodes[i] = Node{
			ID: id,
			X:  xs[i] + (rng.Float64()*2-1)*spectralJitter,
			Y:  ys[i] + (rng.Float64()*2-1)*spectralJitter,
		}
	}

	return nodes
}

// scaleAxis extracts one eigenvector column and rescales it to
// [−10, 10]; a degenerate (constant) column collapses to all zeros.
func scaleAxis(vectors *mat.Dense, col, n int) []float64 {
	out := make([]float64, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		v := vectors.At(i, col)
		out[i] = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span <= 0 {
		for i := range out {
			out[i] = 0
		}

		return out
	}
	for i := range out {
		out[i] = (out[i]-lo)/span*2*initialSpan - initialSpan
	}

	return out
}
