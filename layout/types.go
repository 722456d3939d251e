// Package layout defines the position, parameter and progress types of
// the SGD force layout.
package layout

// Node is one positioned point of the layout.
//
// Nodes are created at initialization (random, spectral, or
// caller-supplied), mutated in place every epoch by the force engine,
// and never destroyed mid-run; the final snapshot is Run's return value.
type Node struct {
	ID string
	X  float64
	Y  float64
}

// ABParams holds the two shape parameters of the low-dimensional
// membership-strength kernel 1/(1 + a·d^(2b)), both > 0.  They are
// fitted once per run from spread and minDist and immutable thereafter.
type ABParams struct {
	A float64
	B float64
}

// EpochSettings bundles the scalars the scheduler derives once per run
// from node count, spread and options.  They stay constant for the
// run's duration except as consumed by the per-epoch alpha schedule.
type EpochSettings struct {
	// TotalEpochs is the number of optimization epochs to run.
	TotalEpochs int

	// InitialAlpha is the learning rate held through early progress.
	InitialAlpha float64

	// FinalAlpha is the learning rate eased toward late in the run.
	FinalAlpha float64

	// NegativeSampleRate is the number of random repulsion targets
	// drawn per sampled edge per epoch.
	NegativeSampleRate int

	// RepulsionStrength scales the repulsive gradient.
	RepulsionStrength float64
}

// Progress is the typed event delivered to the OnProgress callback.
type Progress struct {
	// Progress is the completed fraction of the run in percent, 0–100.
	Progress float64

	// Epoch is the zero-based epoch that just finished.
	Epoch int

	// Alpha is the learning rate the epoch ran at.
	Alpha float64

	// Intermediate is true for every report except the final one.
	Intermediate bool

	// Nodes is the live position arena; callers must copy it if they
	// retain it past the callback.
	Nodes []Node
}

// preparedEdge is a weighted edge rewritten against node-array indices
// for O(1) access in the hot loop; built once per run and immutable
// during iteration.
type preparedEdge struct {
	source int
	target int
	weight float64
}
