// SPDX-License-Identifier: MIT
// Package: visgraph/vg
//
// graph.go — Graph: configuration + built state + cached derived views.
//
// Concurrency:
//   • Build swaps the state under a write lock; views read under a read lock.
//   • Cached views live in owned fields and are reset by every Build.

package vg

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/visgraph/visibility"
)

// DefaultTitle is the Summary title used when WithTitle is absent.
const DefaultTitle = "Visibility Graph"

// Graph is a visibility graph under construction or built.
type Graph struct {
	cfg   visibility.Config
	log   *zap.Logger
	title string

	mu      sync.RWMutex
	series  visibility.Series
	res     *visibility.BuildResult
	degrees []int // cache: in + out
}

// New validates the configuration eagerly and returns an unbuilt Graph.
// Errors wrap ErrConfiguration.
func New(family visibility.Family, opts ...visibility.Option) (*Graph, error) {
	cfg, err := visibility.NewConfig(family, opts...)
	if err != nil {
		return nil, err
	}

	return FromConfig(cfg), nil
}

// FromConfig returns an unbuilt Graph over an already resolved configuration.
func FromConfig(cfg visibility.Config, opts ...GraphOption) *Graph {
	g := &Graph{cfg: cfg, log: zap.NewNop(), title: DefaultTitle}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the graph configuration.
func (g *Graph) Config() visibility.Config { return g.cfg }

// IsDirected reports whether edges carry an orientation.
func (g *Graph) IsDirected() bool { return g.cfg.Direction().IsDirected() }

// IsWeighted reports whether edges carry a weight.
func (g *Graph) IsWeighted() bool { return g.cfg.Weight().IsWeighted() }

// Build validates ys/xs (nil xs means positions 0..n-1) and computes the
// graph. With onlyDegrees set only degree views are available afterwards.
// On error the previous state is kept.
func (g *Graph) Build(ys, xs []float64, onlyDegrees bool) error {
	s, err := visibility.NewSeries(ys, xs)
	if err != nil {
		g.log.Debug("series rejected", zap.Int("len", len(ys)), zap.Error(err))
		return err
	}

	return g.BuildSeries(s, onlyDegrees)
}

// BuildSeries computes the graph of an already validated series.
func (g *Graph) BuildSeries(s visibility.Series, onlyDegrees bool) error {
	start := time.Now()
	res, err := visibility.Build(s, g.cfg, onlyDegrees)
	if err != nil {
		g.log.Debug("build rejected", zap.Error(err))
		return err
	}

	g.mu.Lock()
	g.series = s
	g.res = res
	g.degrees = nil
	g.mu.Unlock()

	g.log.Debug("visibility graph built",
		zap.Stringer("family", g.cfg.Family()),
		zap.Stringer("direction", g.cfg.Direction()),
		zap.Stringer("weight", g.cfg.Weight()),
		zap.Int("penetrable_limit", g.cfg.PenetrableLimit()),
		zap.Bool("dual_perspective", g.cfg.DualPerspective()),
		zap.Bool("only_degrees", onlyDegrees),
		zap.Int("vertices", s.Len()),
		zap.Int("edges", res.EdgeCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// IsBuilt reports whether a build has succeeded.
func (g *Graph) IsBuilt() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.res != nil
}

// state returns the built series and result, or ErrNotBuilt.
func (g *Graph) state() (visibility.Series, *visibility.BuildResult, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.res == nil {
		return visibility.Series{}, nil, ErrNotBuilt
	}

	return g.series, g.res, nil
}

// Result returns the underlying immutable build result.
func (g *Graph) Result() (*visibility.BuildResult, error) {
	_, res, err := g.state()

	return res, err
}

// NVertices returns the number of nodes.
func (g *Graph) NVertices() (int, error) {
	_, res, err := g.state()
	if err != nil {
		return 0, err
	}

	return res.NumVertices(), nil
}

// NEdges returns the number of edges (derived from degrees for degree-only builds).
func (g *Graph) NEdges() (int, error) {
	_, res, err := g.state()
	if err != nil {
		return 0, err
	}

	return res.EdgeCount(), nil
}

// edges returns the built edge list (shared) or an error.
func (g *Graph) edges() (*visibility.BuildResult, error) {
	_, res, err := g.state()
	if err != nil {
		return nil, err
	}
	if res.OnlyDegrees {
		return nil, ErrNoEdges
	}

	return res, nil
}

// Edges returns a copy of the edge list, sorted by (min, max) endpoint.
func (g *Graph) Edges() ([]visibility.Edge, error) {
	res, err := g.edges()
	if err != nil {
		return nil, err
	}

	return append([]visibility.Edge(nil), res.Edges...), nil
}

// EdgesUnweighted returns the (source, target) pairs.
func (g *Graph) EdgesUnweighted() ([][2]int, error) {
	res, err := g.edges()
	if err != nil {
		return nil, err
	}
	out := make([][2]int, len(res.Edges))
	for i, e := range res.Edges {
		out[i] = [2]int{e.Source, e.Target}
	}

	return out, nil
}

// Weights returns the edge weights in edge order.
func (g *Graph) Weights() ([]float64, error) {
	res, err := g.edges()
	if err != nil {
		return nil, err
	}
	if !res.Weighted {
		return nil, ErrUnweighted
	}
	out := make([]float64, len(res.Edges))
	for i, e := range res.Edges {
		out[i] = e.Weight
	}

	return out, nil
}

// Degrees returns in + out degree per node.
func (g *Graph) Degrees() ([]int, error) {
	d, err := g.cachedDegrees()
	if err != nil {
		return nil, err
	}

	return append([]int(nil), d...), nil
}

// cachedDegrees computes the degree sequence once per build.
func (g *Graph) cachedDegrees() ([]int, error) {
	g.mu.RLock()
	res, d := g.res, g.degrees
	g.mu.RUnlock()
	if res == nil {
		return nil, ErrNotBuilt
	}
	if d != nil {
		return d, nil
	}

	d = res.Degrees()
	g.mu.Lock()
	if g.res == res {
		g.degrees = d
	}
	g.mu.Unlock()

	return d, nil
}

// DegreesIn returns the in-degree per node. Undirected edges count toward
// their larger endpoint.
func (g *Graph) DegreesIn() ([]int, error) {
	_, res, err := g.state()
	if err != nil {
		return nil, err
	}

	return append([]int(nil), res.DegreesIn...), nil
}

// DegreesOut returns the out-degree per node.
func (g *Graph) DegreesOut() ([]int, error) {
	_, res, err := g.state()
	if err != nil {
		return nil, err
	}

	return append([]int(nil), res.DegreesOut...), nil
}
