package layout_test

import (
	"fmt"
	"testing"

	"github.com/fronx/umapper/fuzzy"
	"github.com/fronx/umapper/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainIDs returns n sequential IDs and the chain edges linking them.
func chainIDs(n int) ([]string, []fuzzy.WeightedEdge) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%03d", i)
	}
	edges := make([]fuzzy.WeightedEdge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, fuzzy.WeightedEdge{Source: ids[i], Target: ids[i+1], Strength: 1})
	}

	return ids, edges
}

// TestRandomPositions_Reproducible verifies seed determinism and the
// seed-0 policy (0 selects the package default, equal to seed 1).
func TestRandomPositions_Reproducible(t *testing.T) {
	ids := []string{"a", "b", "c"}

	assert.Equal(t, layout.RandomPositions(ids, 42), layout.RandomPositions(ids, 42))
	assert.Equal(t, layout.RandomPositions(ids, 0), layout.RandomPositions(ids, 1),
		"seed 0 must select the default seed")
	assert.NotEqual(t, layout.RandomPositions(ids, 1), layout.RandomPositions(ids, 2))
}

// TestRandomPositions_Range verifies that every coordinate lands inside
// [−10, 10] and IDs are preserved in order.
func TestRandomPositions_Range(t *testing.T) {
	ids := []string{"x", "y", "z"}
	nodes := layout.RandomPositions(ids, 7)
	require.Len(t, nodes, 3)
	for i, n := range nodes {
		assert.Equal(t, ids[i], n.ID)
		assert.GreaterOrEqual(t, n.X, -10.0)
		assert.LessOrEqual(t, n.X, 10.0)
		assert.GreaterOrEqual(t, n.Y, -10.0)
		assert.LessOrEqual(t, n.Y, 10.0)
	}
}

// TestSpectralPositions_SmallGraphFallsBack verifies that graphs under
// 50 nodes use the random initializer.
func TestSpectralPositions_SmallGraphFallsBack(t *testing.T) {
	ids, edges := chainIDs(10)
	assert.Equal(t, layout.RandomPositions(ids, 5), layout.SpectralPositions(ids, edges, 5))
}

// TestSpectralPositions_NoEdgesFallsBack verifies the edgeless fallback.
func TestSpectralPositions_NoEdgesFallsBack(t *testing.T) {
	ids, _ := chainIDs(60)
	assert.Equal(t, layout.RandomPositions(ids, 5), layout.SpectralPositions(ids, nil, 5))
}

// TestSpectralPositions_Deterministic verifies seed determinism on a
// graph large enough to take the spectral path.
func TestSpectralPositions_Deterministic(t *testing.T) {
	ids, edges := chainIDs(60)

	first := layout.SpectralPositions(ids, edges, 9)
	second := layout.SpectralPositions(ids, edges, 9)
	assert.Equal(t, first, second)
}

// TestSpectralPositions_Range verifies the spectral path keeps every
// coordinate inside the initialization span (plus tie-break jitter).
func TestSpectralPositions_Range(t *testing.T) {
	ids, edges := chainIDs(60)
	nodes := layout.SpectralPositions(ids, edges, 3)
	require.Len(t, nodes, 60)
	for _, n := range nodes {
		assert.InDelta(t, 0, n.X, 10.001, "x within the ±10 span plus jitter")
		assert.InDelta(t, 0, n.Y, 10.001, "y within the ±10 span plus jitter")
	}
}

// TestSpectralPositions_ChainEndsSeparate verifies a structural
// property: on a long chain, the spectral axes place the two chain ends
// far apart (the Fiedler vector orders the chain).
func TestSpectralPositions_ChainEndsSeparate(t *testing.T) {
	ids, edges := chainIDs(80)
	nodes := layout.SpectralPositions(ids, edges, 1)
	require.Len(t, nodes, 80)

	endGap := dist(nodes[0], nodes[79])
	midGap := dist(nodes[39], nodes[40])
	assert.Greater(t, endGap, midGap, "chain ends must embed farther apart than mid neighbors")
}
