// Package fuzzy turns a precomputed k-nearest-neighbor graph into a
// weighted, symmetric proximity graph — the first half of a UMAP-style
// embedding pipeline.
//
// 🚀 What does fuzzy do?
//
//	Each point's raw neighbor distances are converted into membership
//	strengths via a per-point smooth kernel, then opposing directed
//	edges are merged into one undirected weighted edge.  The result is
//	the edge list the layout package optimizes against.  It's used for:
//	  • Embedding visualization (UMAP-style 2D projection)
//	  • Graph sparsification with calibrated local connectivity
//	  • Any pipeline that needs soft, symmetric neighborhood weights
//
// ✨ Key features:
//   - per-point sigma calibration by binary search (64 iterations, tol 1e-5)
//     so neighbor weights sum to log2(k), with a safe fallback scale
//   - nearest neighbor always receives weight exactly 1.0
//   - selectable symmetrization: fuzzy union (default), product, geometric
//   - size-adaptive default for the effective neighbor count k
//   - silent-degradation contract: empty graphs, dangling references and
//     self-edges degrade to empty/filtered output, never an error
//
// ⚙️ Usage:
//
//	import "github.com/fronx/umapper/fuzzy"
//
//	g := fuzzy.NeighborGraph{
//	  "a": {{ID: "b", Distance: 0.1}, {ID: "c", Distance: 0.9}},
//	  "b": {{ID: "a", Distance: 0.1}, {ID: "c", Distance: 0.8}},
//	  "c": {{ID: "a", Distance: 0.9}, {ID: "b", Distance: 0.8}},
//	}
//
//	edges := fuzzy.BuildEdges(g, fuzzy.DefaultOptions())
//
// Determinism:
//
//	BuildEdges is fully deterministic — sources are iterated in
//	lexicographic ID order, symmetric pairs are emitted in first-appearance
//	order with lexicographically canonical endpoints, and no randomness
//	is involved anywhere in graph construction.
//
// Complexity:
//
//	Time:   O(V·(K·64 + K)) for calibration + O(E) for symmetrization
//	Memory: O(E)
//
// See layout/ for the second half of the pipeline and example_test.go
// for runnable scenarios.
package fuzzy
