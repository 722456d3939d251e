package umapper

import (
	"context"
	"sort"

	"github.com/fronx/umapper/fuzzy"
	"github.com/fronx/umapper/layout"
)

// Option configures Embed via functional arguments.
type Option func(*Options)

// Options holds the tunables of one Embed call.
type Options struct {
	// Graph configures proximity-graph construction (k, symmetry mode).
	Graph fuzzy.Options

	// Layout is forwarded to layout.Run after the shared seed.
	Layout []layout.Option

	// Initial, when non-empty, supplies the starting positions and
	// wins over both initializers.
	Initial []layout.Node

	// Spectral selects spectral instead of random initialization.
	Spectral bool

	// Seed drives initialization and, unless overridden through
	// Layout, the layout run itself.  Seed 0 selects the package
	// default so the zero value stays reproducible.
	Seed int64
}

// DefaultOptions returns the Embed defaults: derived k, fuzzy-union
// symmetrization, random initialization, default seed.
func DefaultOptions() Options {
	return Options{
		Graph:    fuzzy.DefaultOptions(),
		Layout:   nil,
		Initial:  nil,
		Spectral: false,
		Seed:     0,
	}
}

// WithGraphOptions sets the proximity-graph construction options.
func WithGraphOptions(o fuzzy.Options) Option {
	return func(c *Options) { c.Graph = o }
}

// WithLayoutOptions appends options forwarded to layout.Run.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(c *Options) { c.Layout = append(c.Layout, opts...) }
}

// WithInitialPositions supplies starting positions; caller-supplied
// positions win over random and spectral initialization.
func WithInitialPositions(nodes []layout.Node) Option {
	return func(c *Options) { c.Initial = nodes }
}

// WithSpectralInit initializes positions from the graph Laplacian's
// eigenvectors instead of randomly (graphs under 50 nodes still fall
// back to random placement).
func WithSpectralInit() Option {
	return func(c *Options) { c.Spectral = true }
}

// WithSeed fixes the shared seed for initialization and layout.
func WithSeed(seed int64) Option {
	return func(c *Options) { c.Seed = seed }
}

// Embed — the convenience entrypoint merging graph build and layout.
//
// Description:
//
//	Chains fuzzy.BuildEdges → position initialization → layout.Run.
//	The node set is the lexicographically sorted key set of the
//	neighbor graph, so output order is deterministic.
//
// Edge cases:
//   - Empty graph returns an empty (nil) node slice and a nil error.
//
// Errors: only a wrapped context error, surfaced from layout.Run.
//
// Complexity: graph build O(V·K·64 + E) plus the layout run.
func Embed(ctx context.Context, g fuzzy.NeighborGraph, opts ...Option) ([]layout.Node, error) {
	c := DefaultOptions()
	for _, opt := range opts {
		opt(&c)
	}

	if len(g) == 0 {
		return nil, nil
	}

	edges := fuzzy.BuildEdges(g, c.Graph)

	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := c.Initial
	if len(nodes) == 0 {
		if c.Spectral {
			nodes = layout.SpectralPositions(ids, edges, c.Seed)
		} else {
			nodes = layout.RandomPositions(ids, c.Seed)
		}
	}

	// The shared seed goes first so explicit layout options can
	// override it.
	lopts := append([]layout.Option{layout.WithSeed(c.Seed)}, c.Layout...)

	return layout.Run(ctx, nodes, edges, lopts...)
}
