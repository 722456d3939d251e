package layout

// initialSpan is the half-range of initial coordinates: positions start
// inside [−10, 10] on each axis.
const initialSpan = 10.0

// RandomPositions creates one node per ID with coordinates drawn
// uniformly from [−10, 10] per axis.
//
// Determinism: the seed fully determines the result (seed 0 selects
// the package default seed, so the zero value is still reproducible).
//
// Complexity: O(n).
func RandomPositions(ids []string, seed int64) []Node {
	rng := deriveRNG(seed, streamInitial)

	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node{
			ID: id,
			X:  (rng.Float64()*2 - 1) * initialSpan,
			Y:  (rng.Float64()*2 - 1) * initialSpan,
		}
	}

	return nodes
}
