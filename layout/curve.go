package layout

import "math"

// FitAB — curve-parameter fitting by exhaustive grid search.
//
// Description:
//
//	Fits the two shape parameters of the low-dimensional kernel
//	1/(1 + a·x^(2b)) so that it approximates the target membership
//	curve
//
//	  f(x) = 1                        for x < minDist
//	  f(x) = exp(−(x − minDist)/spread)  for x ≥ minDist
//
//	sampled at 300 evenly spaced points over [0, 3·spread).
//
// Algorithm Outline:
//  1. Evaluate the target curve at x_i = i·(3·spread)/300.
//  2. For every (a, b) of a fixed 8×8 candidate grid, accumulate the
//     sum of squared errors against the kernel.
//  3. Return the grid point with the smallest error.  Ties (and NaN
//     errors from degenerate inputs such as spread 0) keep the first
//     grid point, so the result is always deterministic.
//
// No failure mode: the best grid point is returned even when the fit
// error is large; there is no iterative refinement beyond the grid.
//
// Determinism: depends only on spread and minDist — identical across
// repeated calls, no randomness.
//
// Complexity:
//
//	Time:   O(8·8·300) — constant
//	Memory: O(300)
func FitAB(spread, minDist float64) ABParams {
	// Doubling ladder for a, linear ladder for b.
	aGrid := [8]float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8}
	bGrid := [8]float64{0.3, 0.5, 0.7, 0.9, 1.1, 1.3, 1.5, 1.7}

	const samples = 300
	step := 3 * spread / samples

	target := make([]float64, samples)
	xs := make([]float64, samples)
	for i := 0; i < samples; i++ {
		x := float64(i) * step
		xs[i] = x
		if x < minDist {
			target[i] = 1
		} else {
			target[i] = math.Exp(-(x - minDist) / spread)
		}
	}

	best := ABParams{A: aGrid[0], B: bGrid[0]}
	bestErr := math.Inf(1)
	for _, a := range aGrid {
		for _, b := range bGrid {
			var sse float64
			for i := 0; i < samples; i++ {
				fit := 1 / (1 + a*math.Pow(xs[i], 2*b))
				diff := fit - target[i]
				sse += diff * diff
			}
			if sse < bestErr {
				bestErr = sse
				best = ABParams{A: a, B: b}
			}
		}
	}

	return best
}
