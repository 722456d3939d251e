package fuzzy

import "math"

// SmoothWeights — per-point sigma calibration and kernel weighting.
//
// Description:
//
//	Given one point's neighbor list (pre-sorted ascending by distance)
//	and a continuous effective neighbor count k, annotate each neighbor
//	with a membership strength in (0, 1].  The nearest neighbor defines
//	the local zero point rho; a decay scale sigma is then calibrated so
//	that the strengths sum to log2(k).
//
// Algorithm Outline:
//  1. rho = distance of the first (nearest) neighbor.
//  2. Binary search sigma so that Σ_j φ(d_j − rho, sigma) ≈ log2(k),
//     where φ(delta, sigma) = 1 for delta ≤ 0, else exp(−delta/sigma).
//     Lower bound 0; the upper bound is unbounded — sigma is doubled
//     until the sum overshoots, then bisected.  At most 64 iterations,
//     tolerance 1e-5 on the sum.
//  3. If sigma collapses to 0 or goes non-finite, abort the search and
//     fall back to sigma = 1.0.
//  4. Weight per neighbor: 1.0 if distance ≤ rho, else
//     exp(−(distance − rho)/sigma).
//
// Edge cases:
//   - Empty input yields empty (nil) output, no error.
//   - Equal-to-rho distances (ties with the nearest) all weigh 1.0.
//
// Complexity:
//
//	Time:   O(64·K) per point, K = number of neighbors
//	Memory: O(K)
func SmoothWeights(neighbors []Neighbor, k float64) []WeightedNeighbor {
	if len(neighbors) == 0 {
		return nil
	}

	rho := neighbors[0].Distance
	sigma := calibrateSigma(neighbors, rho, math.Log2(k))

	out := make([]WeightedNeighbor, len(neighbors))
	for i, nb := range neighbors {
		w := 1.0
		if nb.Distance > rho {
			w = math.Exp(-(nb.Distance - rho) / sigma)
		}
		out[i] = WeightedNeighbor{Neighbor: nb, Weight: w}
	}

	return out
}

// sigmaFallback is the safe decay scale used when bisection collapses.
const sigmaFallback = 1.0

// sigmaTolerance is the convergence tolerance on the membership sum.
const sigmaTolerance = 1e-5

// sigmaMaxIterations caps the bisection loop.
const sigmaMaxIterations = 64

// calibrateSigma bisects for the sigma whose membership sum hits target.
// The search starts unbounded above: sigma doubles until the sum
// overshoots, after which classic bisection takes over.
func calibrateSigma(neighbors []Neighbor, rho, target float64) float64 {
	var (
		lo    = 0.0
		hi    = math.Inf(1)
		sigma = 1.0
	)
	for i := 0; i < sigmaMaxIterations; i++ {
		sum := membershipSum(neighbors, rho, sigma)
		if math.Abs(sum-target) < sigmaTolerance {
			return sigma
		}
		if sum > target {
			// Too much mass: shrink.
			hi = sigma
			sigma = (lo + hi) / 2
		} else {
			// Too little mass: grow, doubling while no upper bound exists.
			lo = sigma
			if math.IsInf(hi, 1) {
				sigma *= 2
			} else {
				sigma = (lo + hi) / 2
			}
		}
		if sigma == 0 || math.IsInf(sigma, 0) || math.IsNaN(sigma) {
			return sigmaFallback
		}
	}

	return sigma
}

// membershipSum evaluates Σ_j φ(d_j − rho, sigma) over the neighbor list.
func membershipSum(neighbors []Neighbor, rho, sigma float64) float64 {
	var sum float64
	for _, nb := range neighbors {
		delta := nb.Distance - rho
		if delta <= 0 {
			sum++
			continue
		}
		sum += math.Exp(-delta / sigma)
	}

	return sum
}
