// Package umapper turns precomputed k-nearest-neighbor graphs into 2D
// layouts suitable for visualization, using a UMAP-inspired two-stage
// pipeline.
//
// 🚀 What is umapper?
//
//	A pure computational library that brings together:
//		• fuzzy/  — weighted, symmetric proximity-graph construction
//		  (per-point sigma calibration, kernel weighting, fuzzy union)
//		• layout/ — SGD force layout (curve fitting, adaptive scheduling,
//		  negative sampling, cooperative cancellation, progress events)
//		• Embed   — the one-call convenience entrypoint chaining both
//
// ✨ Why choose umapper?
//
//   - Deterministic — every random draw flows from one injected seed
//   - Cooperative — context plus boolean progress-callback cancellation
//   - Robust — malformed-but-plausible input degrades silently instead
//     of erroring (empty graphs, dangling references, coincident points)
//   - Renderer-agnostic — intermediate frames arrive through a throttled
//     progress interface; nothing is persisted or drawn here
//
// Quick ASCII picture of the pipeline:
//
//	neighbor graph ──► fuzzy.BuildEdges ──► weighted edges
//	                                              │
//	initial positions ──────────► layout.Run ◄────┘
//	                                    │
//	                              final 2D nodes
//
// Quick usage:
//
//	g := fuzzy.NeighborGraph{
//	  "a": {{ID: "b", Distance: 0.1}, {ID: "c", Distance: 0.9}},
//	  "b": {{ID: "a", Distance: 0.1}, {ID: "c", Distance: 0.8}},
//	  "c": {{ID: "b", Distance: 0.8}, {ID: "a", Distance: 0.9}},
//	}
//
//	nodes, err := umapper.Embed(context.Background(), g,
//	  umapper.WithSeed(42),
//	)
//
// Neighbor search, high-dimensional input handling, persistence and
// rendering are out of scope — neighbor graphs arrive precomputed, and
// positions leave as plain values.
//
// See fuzzy/ and layout/ for the full per-stage documentation, and
// examples/ for runnable scenarios.
//
//	go get github.com/fronx/umapper
package umapper
