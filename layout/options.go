package layout

import "time"

// Option configures a layout run via functional arguments.
// Out-of-range values never error: non-positive rates and alphas fall
// back to the scheduler's derived defaults, and negative epoch counts
// degrade to a zero-epoch run (initial positions unchanged).
type Option func(*Options)

// Options holds the tunables of a layout run.  The zero value of every
// derivable field means "derive from graph size and spread".
type Options struct {
	// MinDist is the minimum embedded distance the fitted kernel aims
	// to preserve between close neighbors.
	MinDist float64

	// Spread is the effective scale of embedded distances.
	Spread float64

	// Epochs is the total number of optimization epochs.
	Epochs int

	// InitialAlpha overrides the derived initial learning rate when > 0.
	InitialAlpha float64

	// FinalAlpha overrides the derived final learning rate when > 0.
	FinalAlpha float64

	// NegativeSampleRate overrides the derived negative-sample count
	// per edge when > 0.
	NegativeSampleRate int

	// RepulsionStrength overrides the derived repulsion scale when > 0.
	RepulsionStrength float64

	// ProgressInterval is the minimum wall-clock spacing between
	// qualifying progress reports.  The last epoch always qualifies.
	ProgressInterval time.Duration

	// SkipInitialUpdates suppresses the first n qualifying reports.
	SkipInitialUpdates int

	// RenderSampleRate delivers every n-th qualifying report after the
	// initial suppression window.
	RenderSampleRate int

	// OnProgress, when non-nil, receives throttled Progress events.
	// Returning false cancels the run after the current epoch;
	// callback cancellation is not an error.
	OnProgress func(Progress) bool

	// Seed drives all randomness of the run (jitter, negative-sample
	// draws).  Seed 0 selects the package default seed so the zero
	// value is still reproducible.
	Seed int64

	// Verbose prints a one-line epoch summary every 50 epochs.
	Verbose bool
}

// DefaultOptions returns the Options every run starts from:
//   - MinDist 0.1, Spread 1.0
//   - 300 epochs
//   - derived alphas, sample rate and repulsion strength
//   - 32ms progress interval, 10 suppressed reports, every 2nd delivered
//   - deterministic default seed, no callback, quiet.
func DefaultOptions() Options {
	return Options{
		MinDist:            0.1,
		Spread:             1.0,
		Epochs:             300,
		InitialAlpha:       0,
		FinalAlpha:         0,
		NegativeSampleRate: 0,
		RepulsionStrength:  0,
		ProgressInterval:   32 * time.Millisecond,
		SkipInitialUpdates: 10,
		RenderSampleRate:   2,
		OnProgress:         nil,
		Seed:               0,
		Verbose:            false,
	}
}

// WithMinDist sets the minimum embedded neighbor distance.
func WithMinDist(d float64) Option {
	return func(o *Options) { o.MinDist = d }
}

// WithSpread sets the effective scale of embedded distances.
func WithSpread(s float64) Option {
	return func(o *Options) { o.Spread = s }
}

// WithEpochs sets the total epoch count; values ≤ 0 yield a run that
// returns the initial positions unchanged.
func WithEpochs(n int) Option {
	return func(o *Options) { o.Epochs = n }
}

// WithInitialAlpha overrides the derived initial learning rate.
func WithInitialAlpha(a float64) Option {
	return func(o *Options) { o.InitialAlpha = a }
}

// WithFinalAlpha overrides the derived final learning rate.
func WithFinalAlpha(a float64) Option {
	return func(o *Options) { o.FinalAlpha = a }
}

// WithNegativeSampleRate overrides the derived negative-sample count.
func WithNegativeSampleRate(n int) Option {
	return func(o *Options) { o.NegativeSampleRate = n }
}

// WithRepulsionStrength overrides the derived repulsion scale.
func WithRepulsionStrength(r float64) Option {
	return func(o *Options) { o.RepulsionStrength = r }
}

// WithProgressInterval sets the minimum spacing between qualifying
// progress reports.
func WithProgressInterval(d time.Duration) Option {
	return func(o *Options) { o.ProgressInterval = d }
}

// WithSkipInitialUpdates suppresses the first n qualifying reports.
func WithSkipInitialUpdates(n int) Option {
	return func(o *Options) { o.SkipInitialUpdates = n }
}

// WithRenderSampleRate delivers every n-th qualifying report after the
// suppression window; values < 1 are treated as 1 (every report).
func WithRenderSampleRate(n int) Option {
	return func(o *Options) { o.RenderSampleRate = n }
}

// WithOnProgress registers the progress callback; returning false from
// it cancels the run after the current epoch.
func WithOnProgress(fn func(Progress) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithSeed fixes the run's random seed (0 selects the package default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithVerbose enables periodic epoch summaries on stdout.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}
