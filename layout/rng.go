// Package layout - RNG utilities for deterministic, reproducible runs.
//
// This file centralizes random generation for jitter, negative-sample
// draws and position initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical layouts across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Isolation: independent streams per concern so that, e.g., a jitter
//     draw never perturbs the negative-sampling sequence.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Streams are owned by one run
//     and never shared across runs.
package layout

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Stream identifiers for deriveSeed; one per independent concern.
const (
	streamJitter   uint64 = iota + 1 // coincident-point perturbation
	streamSampling                   // negative-sample target draws
	streamInitial                    // position initialization
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - One user seed must yield decorrelated substreams (jitter vs sampling
//     vs initialization) so changing one consumer never shifts another.
//   - A SplitMix64-style avalanche mix eliminates correlations.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; small
//     input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream for one concern
// of a run.
// Policy: seed==0 ⇒ use defaultRNGSeed as the parent; otherwise use the
// provided seed verbatim.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-concern RNGs.
//
// Complexity: O(1).
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
