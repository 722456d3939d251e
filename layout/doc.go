// Package layout optimizes 2D point positions over a weighted proximity
// graph via stochastic gradient descent — the second half of a
// UMAP-style embedding pipeline.
//
// 🚀 What does layout do?
//
//	Graph-adjacent points attract, random non-neighbors repel, and an
//	adaptive schedule steers the learning rate from a large initial
//	step size toward a small final one.  The result is a 2D arrangement
//	where graph proximity translates into visual proximity.  It's used
//	for:
//	  • Embedding visualization of documents, images, user profiles
//	  • Cluster inspection over precomputed k-NN graphs
//	  • Interactive frontends that render intermediate frames
//
// ✨ Key features:
//   - curve-parameter fitting: 8×8 grid search over the kernel family
//     1/(1 + a·d^(2b)) against the target spread/minDist behavior
//   - adaptive scheduling: node-count-driven learning-rate bounds,
//     negative-sampling rate, repulsion strength and edge-sample ratios
//   - front-loaded alpha: hold the initial rate for 20% of progress,
//     then ease toward the final rate
//   - negative sampling with strided, rotating edge coverage
//   - cooperative cancellation: context per epoch, plus a boolean
//     progress callback — returning false stops after the current epoch
//   - throttled progress reporting for responsive rendering hosts
//   - fully deterministic for a fixed seed (injected RNG, no globals)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/fronx/umapper/fuzzy"
//	  "github.com/fronx/umapper/layout"
//	)
//
//	edges := fuzzy.BuildEdges(g, fuzzy.DefaultOptions())
//	nodes := layout.RandomPositions(ids, 42)
//
//	final, err := layout.Run(ctx, nodes, edges,
//	  layout.WithEpochs(300),
//	  layout.WithOnProgress(func(p layout.Progress) bool {
//	    render(p.Nodes)
//	    return true // false cancels after the current epoch
//	  }),
//	)
//
// Concurrency:
//
//	A run is single-threaded and cooperative: the node arena is touched
//	only by the currently executing force update, and the only
//	suspension points are periodic runtime.Gosched() yields.  Separate
//	concurrent runs must not share node or edge slices.
//
// Errors:
//
//	The only error Run returns is a wrapped context error when ctx is
//	cancelled; callback-initiated cancellation returns the positions
//	computed so far with a nil error.  Degenerate numeric options never
//	error — they degrade (zero epochs returns the input unchanged).
//
// Complexity:
//
//	Time:   O(epochs · (E + E·sampleRatio·negativeRate))
//	Memory: O(V + E)
//
// See fuzzy/ for graph construction and example_test.go for runnable
// scenarios.
package layout
