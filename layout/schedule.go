package layout

import "math"

// Adaptive scheduling — pure functions of (nodeCount, spread, options).
//
// Every scalar is overridable through Options; anything left at its
// zero value is derived here from graph size and spread, once per run.

// Constants of the derived initial-alpha logistic.
const (
	alphaFloor     = 0.25 // initial alpha for tiny graphs
	alphaRange     = 0.75 // additional alpha gained as graphs grow
	alphaMidpoint  = 30.0 // node count at the logistic midpoint
	alphaSteepness = 0.08
)

// Constants of the front-loaded per-epoch schedule.
const (
	alphaHoldFraction = 0.2 // fraction of progress spent at InitialAlpha
	alphaDecayPower   = 1.4 // easing exponent over the remaining progress
)

// Constants of the repulsion edge-sample ladder.
const (
	sampleFullBelow  = 1000.0 // node count with full edge coverage
	sampleFloorAbove = 9000.0 // node count where the ladder bottoms out
	sampleDecayPower = 1.5
	sampleRatioMin   = 0.05
	sampleRatioMax   = 1.0
)

// DeriveSettings resolves the per-run scalars: every option left at its
// zero value is replaced by its node-count/spread-derived default.
//
//   - InitialAlpha: logistic in node count — midpoint 30, steepness
//     0.08, range [0.25, 1.0]; larger graphs need larger initial steps.
//   - FinalAlpha:   min(initialAlpha, max(0.2, 0.1·initialAlpha)).
//   - NegativeSampleRate: clamp(round(log10(n+10)), 2, 12).
//   - RepulsionStrength:  max(0.2, spread).
//   - TotalEpochs: supplied value, clamped below at 0.
func DeriveSettings(nodeCount int, opts Options) EpochSettings {
	initial := opts.InitialAlpha
	if initial <= 0 {
		initial = alphaFloor + alphaRange/(1+math.Exp(-alphaSteepness*(float64(nodeCount)-alphaMidpoint)))
	}

	final := opts.FinalAlpha
	if final <= 0 {
		final = math.Min(initial, math.Max(0.2, 0.1*initial))
	}

	negative := opts.NegativeSampleRate
	if negative <= 0 {
		negative = clampInt(int(math.Round(math.Log10(float64(nodeCount)+10))), 2, 12)
	}

	repulsion := opts.RepulsionStrength
	if repulsion <= 0 {
		repulsion = math.Max(0.2, opts.Spread)
	}

	epochs := opts.Epochs
	if epochs < 0 {
		epochs = 0
	}

	return EpochSettings{
		TotalEpochs:        epochs,
		InitialAlpha:       initial,
		FinalAlpha:         final,
		NegativeSampleRate: negative,
		RepulsionStrength:  repulsion,
	}
}

// AlphaAt returns the learning rate for one epoch under the
// front-loaded schedule: hold InitialAlpha for the first 20% of
// progress, then ease toward FinalAlpha with exponent 1.4.
// The progress denominator clamps to 1 so a single-epoch run executes
// at InitialAlpha.
func AlphaAt(epoch int, s EpochSettings) float64 {
	denom := s.TotalEpochs - 1
	if denom < 1 {
		denom = 1
	}
	progress := float64(epoch) / float64(denom)
	if progress < alphaHoldFraction {
		return s.InitialAlpha
	}
	decay := (progress - alphaHoldFraction) / (1 - alphaHoldFraction)

	return s.InitialAlpha + (s.FinalAlpha-s.InitialAlpha)*math.Pow(decay, alphaDecayPower)
}

// RepulsionEdgeSample returns the fraction of edges visited per epoch
// for repulsion: full coverage up to 1000 nodes, an eased decay to 0.5
// between 1000 and 9000 nodes, the 0.5 floor beyond — always clamped
// to [0.05, 1.0].
func RepulsionEdgeSample(nodeCount int) float64 {
	n := float64(nodeCount)
	var ratio float64
	switch {
	case n <= sampleFullBelow:
		ratio = 1.0
	case n >= sampleFloorAbove:
		ratio = 0.5
	default:
		t := (n - sampleFullBelow) / (sampleFloorAbove - sampleFullBelow)
		ratio = 1 - 0.5*math.Pow(t, sampleDecayPower)
	}

	return math.Min(sampleRatioMax, math.Max(sampleRatioMin, ratio))
}

// FullCoverageRatio returns the fraction of early epochs that use full
// edge coverage regardless of the sample ratio:
// clamp(2500/(n+2500), 0.1, 0.3).
func FullCoverageRatio(nodeCount int) float64 {
	ratio := 2500 / (float64(nodeCount) + 2500)

	return math.Min(0.3, math.Max(0.1, ratio))
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
