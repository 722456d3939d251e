package layout_test

import (
	"context"
	"testing"

	"github.com/fronx/umapper/fuzzy"
	"github.com/fronx/umapper/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleEdges is a non-trivial symmetric edge set on three nodes.
func triangleEdges() []fuzzy.WeightedEdge {
	return []fuzzy.WeightedEdge{
		{Source: "a", Target: "b", Strength: 1.0},
		{Source: "a", Target: "c", Strength: 0.8},
		{Source: "b", Target: "c", Strength: 0.6},
	}
}

// originNodes places n identified nodes at the origin.
func originNodes(ids ...string) []layout.Node {
	nodes := make([]layout.Node, len(ids))
	for i, id := range ids {
		nodes[i] = layout.Node{ID: id}
	}

	return nodes
}

// TestRun_EmptyInputs verifies the immediate-completion contract: no
// nodes, or no surviving edges, returns the positions unchanged with a
// nil error.
func TestRun_EmptyInputs(t *testing.T) {
	out, err := layout.Run(context.Background(), nil, triangleEdges())
	require.NoError(t, err)
	assert.Empty(t, out)

	nodes := originNodes("a", "b")
	out, err = layout.Run(context.Background(), nodes, nil)
	require.NoError(t, err)
	assert.Equal(t, nodes, out, "no edges means a zero-epoch run")
}

// TestRun_DropsUnresolvableAndSelfLoopEdges verifies edge preparation:
// edges referencing unknown IDs or forming self-loops never move a node.
func TestRun_DropsUnresolvableAndSelfLoopEdges(t *testing.T) {
	nodes := []layout.Node{{ID: "a", X: 1, Y: 2}, {ID: "b", X: 3, Y: 4}}
	edges := []fuzzy.WeightedEdge{
		{Source: "a", Target: "ghost", Strength: 1},
		{Source: "b", Target: "b", Strength: 1},
	}

	out, err := layout.Run(context.Background(), nodes, edges, layout.WithEpochs(20))
	require.NoError(t, err)
	assert.Equal(t, nodes, out, "all edges dropped, so positions stay put")
}

// TestRun_ZeroAndNegativeEpochs verifies the degenerate epoch contract:
// both yield the initial positions unchanged, no error.
func TestRun_ZeroAndNegativeEpochs(t *testing.T) {
	nodes := []layout.Node{{ID: "a", X: 1, Y: 1}, {ID: "b", X: 2, Y: 2}}
	edges := []fuzzy.WeightedEdge{{Source: "a", Target: "b", Strength: 1}}

	for _, epochs := range []int{0, -5} {
		out, err := layout.Run(context.Background(), nodes, edges, layout.WithEpochs(epochs))
		require.NoError(t, err)
		assert.Equal(t, nodes, out)
	}
}

// TestRun_DoesNotMutateInput verifies the owned-arena contract: the
// caller's node slice keeps its original positions.
func TestRun_DoesNotMutateInput(t *testing.T) {
	nodes := originNodes("a", "b", "c")
	_, err := layout.Run(context.Background(), nodes, triangleEdges(), layout.WithEpochs(50))
	require.NoError(t, err)
	assert.Equal(t, originNodes("a", "b", "c"), nodes)
}

// TestRun_Motion verifies that three nodes initialized at the origin
// spread out: after ≥50 epochs at least one node is off (0,0).
func TestRun_Motion(t *testing.T) {
	out, err := layout.Run(context.Background(), originNodes("a", "b", "c"), triangleEdges(),
		layout.WithEpochs(50),
		layout.WithSeed(42),
	)
	require.NoError(t, err)
	require.Len(t, out, 3)

	moved := false
	for _, n := range out {
		if n.X != 0 || n.Y != 0 {
			moved = true
		}
	}
	assert.True(t, moved, "at least one node must have moved off the origin")
}

// TestRun_DeterministicForFixedSeed verifies that identical inputs,
// options and seed reproduce the exact same layout.
func TestRun_DeterministicForFixedSeed(t *testing.T) {
	run := func() []layout.Node {
		out, err := layout.Run(context.Background(), originNodes("a", "b", "c"), triangleEdges(),
			layout.WithEpochs(80),
			layout.WithSeed(99),
		)
		require.NoError(t, err)

		return out
	}

	assert.Equal(t, run(), run())
}

// TestRun_CancellationExactness verifies the boolean callback contract:
// returning false on the 3rd delivered invocation stops the run, and
// the callback is invoked exactly 3 times total.
func TestRun_CancellationExactness(t *testing.T) {
	var calls int
	_, err := layout.Run(context.Background(), originNodes("a", "b", "c"), triangleEdges(),
		layout.WithEpochs(200),
		layout.WithProgressInterval(0),
		layout.WithSkipInitialUpdates(0),
		layout.WithRenderSampleRate(1),
		layout.WithOnProgress(func(layout.Progress) bool {
			calls++

			return calls != 3
		}),
	)
	require.NoError(t, err, "callback cancellation is not an error")
	assert.Equal(t, 3, calls, "no further callbacks after the cancelling one")
}

// TestRun_ProgressThrottling verifies suppression and sampling: with
// skip=2 and rate=2 over 10 always-qualifying epochs, the delivered
// intermediate reports are the 4th, 6th and 8th qualifying ones, plus
// the always-delivered final report.
func TestRun_ProgressThrottling(t *testing.T) {
	var events []layout.Progress
	_, err := layout.Run(context.Background(), originNodes("a", "b", "c"), triangleEdges(),
		layout.WithEpochs(10),
		layout.WithProgressInterval(0),
		layout.WithSkipInitialUpdates(2),
		layout.WithRenderSampleRate(2),
		layout.WithOnProgress(func(p layout.Progress) bool {
			events = append(events, p)

			return true
		}),
	)
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, []int{3, 5, 7, 9}, []int{events[0].Epoch, events[1].Epoch, events[2].Epoch, events[3].Epoch})
	for _, e := range events[:3] {
		assert.True(t, e.Intermediate)
	}

	final := events[len(events)-1]
	assert.False(t, final.Intermediate, "last epoch always reports a final frame")
	assert.Equal(t, 9, final.Epoch)
	assert.InDelta(t, 100.0, final.Progress, 1e-9)
	assert.Len(t, final.Nodes, 3)
}

// TestRun_ContextAlreadyCancelled verifies that a pre-cancelled context
// returns the initial positions unchanged plus a wrapped context error.
func TestRun_ContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nodes := []layout.Node{{ID: "a", X: 1, Y: 1}, {ID: "b", X: 2, Y: 2}}
	edges := []fuzzy.WeightedEdge{{Source: "a", Target: "b", Strength: 1}}

	out, err := layout.Run(ctx, nodes, edges, layout.WithEpochs(100))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, nodes, out, "no epoch ran, positions stay put")
}

// TestRun_TopologyPreservation verifies the statistical embedding
// property: with a–b tightly connected and c loosely attached, the
// embedded a–b distance undercuts a–c in a clear majority of seeded
// runs.
func TestRun_TopologyPreservation(t *testing.T) {
	edges := []fuzzy.WeightedEdge{
		{Source: "a", Target: "b", Strength: 1.0},
		{Source: "a", Target: "c", Strength: 0.05},
		{Source: "b", Target: "c", Strength: 0.05},
	}

	const trials = 20
	wins := 0
	for seed := int64(1); seed <= trials; seed++ {
		nodes := layout.RandomPositions([]string{"a", "b", "c"}, seed)
		out, err := layout.Run(context.Background(), nodes, edges,
			layout.WithEpochs(200),
			layout.WithSeed(seed),
		)
		require.NoError(t, err)

		byID := make(map[string]layout.Node, 3)
		for _, n := range out {
			byID[n.ID] = n
		}
		if dist(byID["a"], byID["b"]) < dist(byID["a"], byID["c"]) {
			wins++
		}
	}

	assert.Greater(t, wins, trials/2+2, "tight pair must embed closer in a clear majority of runs")
}
