package layout

import (
	"math"
	"math/rand"
)

// Force engine — the two position updates of the SGD loop.
//
// Both operate on the node arena by index and mutate two positions in
// place; neither returns a value.  Near-coincident points are nudged
// apart with a small random jitter before gradients are evaluated, so
// the division by distance never blows up.

// Numerical guards of the force updates.
const (
	coincidentDistSq = 1e-7  // below this, jitter before computing gradients
	jitterMagnitude  = 5e-4  // per-axis jitter half-range
	maxAxisStep      = 4.0   // per-axis displacement clamp
	repulsionEpsilon = 0.001 // keeps the repulsive denominator positive
	maxPushFraction  = 0.45  // cap of the overlap push, in units of alpha
)

// ApplyAttraction pulls the endpoints of one edge together.
//
// The gradient coefficient is −kernelGradient(d², a, b)·weight·alpha
// with kernelGradient(d², a, b) = 2ab·(d²)^(b−1) / (1 + a·(d²)^b).
//
// Endpoints closer than the minimum attractive distance 3 + minDist·50
// are first pushed apart along their unit separation by
// 0.45·alpha·overlap (overlap = 1 at full coincidence), and the
// gradient step is attenuated by max(0, 1 − overlap) — this prevents
// over-clustering at very small scales.  Each axis step is clamped to
// ±4.0 and applied as equal and opposite displacement.
func ApplyAttraction(nodes []Node, src, dst int, weight, alpha float64, ab ABParams, minDist float64, rng *rand.Rand) {
	dx, dy, distSq := separation(nodes, src, dst, rng)

	gradCoeff := -kernelGradient(distSq, ab) * weight * alpha

	attenuation := 1.0
	minAttract := 3 + minDist*50
	if dist := math.Sqrt(distSq); dist < minAttract {
		overlap := (minAttract - dist) / minAttract
		push := maxPushFraction * alpha * overlap
		nodes[src].X += push * dx / dist
		nodes[src].Y += push * dy / dist
		nodes[dst].X -= push * dx / dist
		nodes[dst].Y -= push * dy / dist
		attenuation = math.Max(0, 1-overlap)
	}

	stepX := clip(gradCoeff*dx) * attenuation
	stepY := clip(gradCoeff*dy) * attenuation
	nodes[src].X += stepX
	nodes[src].Y += stepY
	nodes[dst].X -= stepX
	nodes[dst].Y -= stepY
}

// ApplyRepulsion pushes two not-necessarily-connected nodes apart.
//
// No-op when the indices coincide.  The gradient coefficient is
// 2·repulsion·b / ((0.001 + d²)·(1 + a·(d²)^b))·alpha, each axis step
// clamped to ±4.0 and applied as opposite displacement.
func ApplyRepulsion(nodes []Node, src, dst int, alpha float64, ab ABParams, repulsion float64, rng *rand.Rand) {
	if src == dst {
		return
	}
	dx, dy, distSq := separation(nodes, src, dst, rng)

	gradCoeff := 2 * repulsion * ab.B / ((repulsionEpsilon + distSq) * (1 + ab.A*math.Pow(distSq, ab.B))) * alpha

	stepX := clip(gradCoeff * dx)
	stepY := clip(gradCoeff * dy)
	nodes[src].X += stepX
	nodes[src].Y += stepY
	nodes[dst].X -= stepX
	nodes[dst].Y -= stepY
}

// separation returns the delta src−dst and its squared length,
// jittering the source first when the points nearly coincide.
func separation(nodes []Node, src, dst int, rng *rand.Rand) (dx, dy, distSq float64) {
	dx = nodes[src].X - nodes[dst].X
	dy = nodes[src].Y - nodes[dst].Y
	distSq = dx*dx + dy*dy
	if distSq < coincidentDistSq {
		nodes[src].X += (rng.Float64()*2 - 1) * jitterMagnitude
		nodes[src].Y += (rng.Float64()*2 - 1) * jitterMagnitude
		dx = nodes[src].X - nodes[dst].X
		dy = nodes[src].Y - nodes[dst].Y
		distSq = dx*dx + dy*dy
	}

	return dx, dy, distSq
}

// kernelGradient evaluates 2ab·(d²)^(b−1) / (1 + a·(d²)^b).
func kernelGradient(distSq float64, ab ABParams) float64 {
	return 2 * ab.A * ab.B * math.Pow(distSq, ab.B-1) / (1 + ab.A*math.Pow(distSq, ab.B))
}

// clip bounds one axis step to ±4.0.
func clip(v float64) float64 {
	if v > maxAxisStep {
		return maxAxisStep
	}
	if v < -maxAxisStep {
		return -maxAxisStep
	}

	return v
}
