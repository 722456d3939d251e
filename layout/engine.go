package layout

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/fronx/umapper/fuzzy"
)

// Run — the SGD layout engine.
//
// Description:
//
//	Optimizes 2D node positions over a weighted symmetric edge list:
//	graph-adjacent nodes attract every epoch, random non-neighbors
//	repel via negative sampling.  The run is a resumable cooperative
//	computation: it checks ctx and the progress callback between
//	epochs and yields to the scheduler periodically.
//
// Algorithm Outline:
//  1. Copy the caller's nodes into an owned arena and rewrite edges
//     against arena indices, dropping self-loops and edges whose
//     endpoints are absent.  No nodes or no surviving edges ⇒ return
//     the positions unchanged (a completed zero-epoch run).
//  2. Derive EpochSettings, fit ABParams, and precompute the
//     repulsion-sample and full-coverage ratios — once, up front.
//  3. Per epoch:
//     a. checkpoint: ctx error ⇒ stop with a wrapped error before any
//     force of the epoch is applied;
//     b. alpha from the front-loaded schedule;
//     c. attractive update over every prepared edge in array order;
//     d. repulsive updates over a strided, rotating subset of edges
//     (full coverage during the early fullCoverageRatio fraction),
//     drawing NegativeSampleRate random targets per sampled edge
//     and skipping draws that hit either endpoint;
//     e. throttled progress report ⇒ callback; callback false ⇒ stop,
//     no error;
//     f. runtime.Gosched() every 5 epochs, and after every delivered
//     callback.
//
// Cancellation is cooperative and honored only between epochs; forces
// already applied in the current epoch are not rolled back.
//
// Errors:
//   - only a wrapped ctx.Err() when the context is cancelled; the
//     positions computed so far are returned alongside it.
//
// Determinism: identical inputs, options and seed ⇒ identical output.
//
// Complexity:
//
//	Time:   O(epochs · E · (1 + sampleRatio·NegativeSampleRate))
//	Memory: O(V + E)
func Run(ctx context.Context, nodes []Node, edges []fuzzy.WeightedEdge, opts ...Option) ([]Node, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Owned arena: the caller's slice is never mutated.
	arena := make([]Node, len(nodes))
	copy(arena, nodes)

	prepared := prepareEdges(arena, edges)
	if len(arena) == 0 || len(prepared) == 0 {
		return arena, nil
	}

	settings := DeriveSettings(len(arena), o)
	ab := FitAB(o.Spread, o.MinDist)
	sampleRatio := RepulsionEdgeSample(len(arena))
	coverage := FullCoverageRatio(len(arena))

	jitterRNG := deriveRNG(o.Seed, streamJitter)
	sampleRNG := deriveRNG(o.Seed, streamSampling)

	reporter := newReporter(o)

	denom := settings.TotalEpochs - 1
	if denom < 1 {
		denom = 1
	}

	for epoch := 0; epoch < settings.TotalEpochs; epoch++ {
		// Checkpoint before any force of the epoch: an already-cancelled
		// context leaves the positions of the previous epoch intact.
		if err := ctx.Err(); err != nil {
			return arena, fmt.Errorf("layout: %w", err)
		}

		progress := float64(epoch) / float64(denom)
		alpha := AlphaAt(epoch, settings)

		for _, e := range prepared {
			ApplyAttraction(arena, e.source, e.target, e.weight, alpha, ab, o.MinDist, jitterRNG)
		}

		if len(arena) > 1 {
			ratio := sampleRatio
			if progress < coverage {
				ratio = 1.0
			}
			stride := int(math.Round(1 / ratio))
			if stride < 1 {
				stride = 1
			}
			for i := epoch % stride; i < len(prepared); i += stride {
				e := prepared[i]
				for s := 0; s < settings.NegativeSampleRate; s++ {
					j := sampleRNG.Intn(len(arena))
					if j == e.source || j == e.target {
						continue
					}
					ApplyRepulsion(arena, e.source, j, alpha, ab, settings.RepulsionStrength, jitterRNG)
				}
			}
		}

		if o.Verbose && epoch%50 == 0 {
			fmt.Printf("layout: epoch %d/%d alpha=%.4f\n", epoch, settings.TotalEpochs, alpha)
		}

		last := epoch == settings.TotalEpochs-1
		if !reporter.report(Progress{
			Progress:     100 * progress,
			Epoch:        epoch,
			Alpha:        alpha,
			Intermediate: !last,
			Nodes:        arena,
		}, last) {
			break
		}

		if epoch%5 == 4 {
			runtime.Gosched()
		}
	}

	return arena, nil
}

// prepareEdges rewrites weighted edges against arena indices, dropping
// edges with unresolvable endpoints and self-loops.
func prepareEdges(arena []Node, edges []fuzzy.WeightedEdge) []preparedEdge {
	index := make(map[string]int, len(arena))
	for i, n := range arena {
		index[n.ID] = i
	}

	prepared := make([]preparedEdge, 0, len(edges))
	for _, e := range edges {
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok || si == ti {
			continue
		}
		prepared = append(prepared, preparedEdge{source: si, target: ti, weight: e.Strength})
	}

	return prepared
}

// reporter throttles progress delivery: a report qualifies at most once
// per ProgressInterval (the last epoch always qualifies); the first
// SkipInitialUpdates qualifying reports are suppressed, then every
// RenderSampleRate-th is delivered.  The delivered-call count is the
// observable contract of callback cancellation.
type reporter struct {
	fn         func(Progress) bool
	interval   time.Duration
	skip       int
	sampleRate int
	lastSent   time.Time
	qualified  int
}

func newReporter(o Options) *reporter {
	rate := o.RenderSampleRate
	if rate < 1 {
		rate = 1
	}

	return &reporter{
		fn:         o.OnProgress,
		interval:   o.ProgressInterval,
		skip:       o.SkipInitialUpdates,
		sampleRate: rate,
	}
}

// report returns false when the callback asked to cancel.  A yield
// follows every delivered callback so rendering hosts stay responsive.
func (r *reporter) report(p Progress, last bool) bool {
	if r.fn == nil {
		return true
	}

	if !last && time.Since(r.lastSent) < r.interval {
		return true
	}
	r.lastSent = time.Now()
	r.qualified++

	if !last {
		if r.qualified <= r.skip {
			return true
		}
		if (r.qualified-r.skip)%r.sampleRate != 0 {
			return true
		}
	}

	cont := r.fn(p)
	runtime.Gosched()

	return cont
}
