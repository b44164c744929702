package vg_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/visgraph/vg"
	"github.com/katalvlaran/visgraph/visibility"
)

var sampleTS = []float64{3.0, 4.0, 2.0, 1.0}

// TestGraph_NotBuilt checks that every view rejects an unbuilt graph.
func TestGraph_NotBuilt(t *testing.T) {
	g, err := vg.New(visibility.Natural())
	require.NoError(t, err)
	assert.False(t, g.IsBuilt())

	_, err = g.Edges()
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, err = g.EdgesUnweighted()
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, err = g.Degrees()
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, err = g.DegreesIn()
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, err = g.NEdges()
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, _, err = g.DegreeCounts()
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, err = g.AdjacencyMatrix(vg.TriangleBoth, false, 0)
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, err = g.NodePositions()
	assert.ErrorIs(t, err, vg.ErrNotBuilt)
	_, err = g.Summary()
	assert.ErrorIs(t, err, visibility.ErrNotBuilt)
}

// TestGraph_NewRejectsConfig checks eager configuration errors.
func TestGraph_NewRejectsConfig(t *testing.T) {
	_, err := vg.New(visibility.Horizontal(), visibility.WithMaxWeight(2))
	assert.ErrorIs(t, err, vg.ErrConfiguration)
}

// TestGraph_BuildAndViews checks the basic views on sampleTS.
func TestGraph_BuildAndViews(t *testing.T) {
	g, err := vg.New(visibility.Natural(), visibility.WithWeight(visibility.Distance))
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, false))
	assert.True(t, g.IsBuilt())

	pairs, err := g.EdgesUnweighted()
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}}, pairs)

	w, err := g.Weights()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Sqrt2, math.Sqrt(5), math.Sqrt(13), math.Sqrt2}, w, 1e-12)

	d, err := g.Degrees()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 2}, d)
	d[0] = 99
	again, _ := g.Degrees()
	assert.Equal(t, 1, again[0], "views return copies")

	ks, counts, err := g.DegreeCounts()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ks)
	assert.Equal(t, []int{1, 2, 1}, counts)

	ks, ps, err := g.DegreeDistribution()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ks)
	assert.Equal(t, []float64{0.25, 0.5, 0.25}, ps)

	nv, _ := g.NVertices()
	ne, _ := g.NEdges()
	assert.Equal(t, 4, nv)
	assert.Equal(t, 4, ne)

	pos, err := g.NodePositions()
	require.NoError(t, err)
	assert.Equal(t, visibility.Point{X: 2, Y: 2}, pos[2])
}

// TestGraph_FailedBuildKeepsState checks that errors do not clobber results.
func TestGraph_FailedBuildKeepsState(t *testing.T) {
	g, err := vg.New(visibility.Horizontal())
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, false))

	err = g.Build(sampleTS, []float64{0, 0, 2, 3}, false)
	require.ErrorIs(t, err, vg.ErrInputShape)
	err = g.Build([]float64{1, math.NaN()}, nil, false)
	require.ErrorIs(t, err, vg.ErrInputShape)

	pairs, err := g.EdgesUnweighted()
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, pairs)
}

// TestGraph_Rebuild checks that caches are reset by a new build.
func TestGraph_Rebuild(t *testing.T) {
	g, err := vg.New(visibility.Natural())
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, false))
	d, _ := g.Degrees()
	require.Equal(t, []int{1, 3, 2, 2}, d)

	require.NoError(t, g.Build([]float64{1, 2}, nil, false))
	d, err = g.Degrees()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, d)
}

// TestGraph_OnlyDegrees checks the degree-only state.
func TestGraph_OnlyDegrees(t *testing.T) {
	g, err := vg.New(visibility.Natural(), visibility.WithDirection(visibility.LeftToRight))
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, true))

	_, err = g.Edges()
	assert.ErrorIs(t, err, vg.ErrNoEdges)
	_, err = g.AdjacencyMatrix(vg.TriangleBoth, false, 0)
	assert.ErrorIs(t, err, vg.ErrNoEdges)

	ne, err := g.NEdges()
	require.NoError(t, err)
	assert.Equal(t, 4, ne)
	in, _ := g.DegreesIn()
	out, _ := g.DegreesOut()
	assert.Equal(t, []int{0, 1, 1, 2}, in)
	assert.Equal(t, []int{1, 2, 1, 0}, out)
}

// TestGraph_BuiltEmpty checks "built with zero edges" against "not built".
func TestGraph_BuiltEmpty(t *testing.T) {
	g, err := vg.New(visibility.Natural())
	require.NoError(t, err)
	require.NoError(t, g.Build(nil, nil, false))

	edges, err := g.Edges()
	require.NoError(t, err)
	assert.Empty(t, edges)
	_, err = g.AdjacencyMatrix(vg.TriangleBoth, false, 0)
	assert.ErrorIs(t, err, vg.ErrEmptyGraph)
}

// TestGraph_AdjacencyMatrix checks triangle modes and weights.
func TestGraph_AdjacencyMatrix(t *testing.T) {
	g, err := vg.New(visibility.Natural(), visibility.WithWeight(visibility.AbsVDistance))
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, false))

	both, err := g.AdjacencyMatrix(vg.TriangleBoth, false, 0)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 0, 0]\n[1, 0, 1, 1]\n[0, 1, 0, 1]\n[0, 1, 1, 0]\n", both.String())

	upper, err := g.AdjacencyMatrix(vg.TriangleUpper, false, 0)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 0, 0]\n[0, 0, 1, 1]\n[0, 0, 0, 1]\n[0, 0, 0, 0]\n", upper.String())

	lower, err := g.AdjacencyMatrix(vg.TriangleLower, true, -1)
	require.NoError(t, err)
	assert.Equal(t, "[-1, -1, -1, -1]\n[1, -1, -1, -1]\n[-1, 2, -1, -1]\n[-1, 3, 1, -1]\n", lower.String())

	nan, err := g.AdjacencyMatrix(vg.TriangleBoth, true, math.NaN())
	require.NoError(t, err)
	v, _ := nan.At(0, 0)
	assert.True(t, math.IsNaN(v))
	v, _ = nan.At(3, 1)
	assert.Equal(t, 3.0, v)
}

// TestGraph_Strengths checks weighted and unweighted strengths against the
// degree counts of the build.
func TestGraph_Strengths(t *testing.T) {
	g, err := vg.New(visibility.Natural(), visibility.WithWeight(visibility.AbsVDistance))
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, false))

	out, in, err := g.Strengths()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 6, 3, 4}, out)
	assert.Equal(t, out, in)

	ttb, err := vg.New(visibility.Natural(), visibility.WithDirection(visibility.TopToBottom))
	require.NoError(t, err)
	require.NoError(t, ttb.Build(sampleTS, nil, false))

	out, in, err = ttb.Strengths()
	require.NoError(t, err)
	dOut, err := ttb.DegreesOut()
	require.NoError(t, err)
	dIn, err := ttb.DegreesIn()
	require.NoError(t, err)
	for i := range out {
		assert.Equal(t, float64(dOut[i]), out[i], "out %d", i)
		assert.Equal(t, float64(dIn[i]), in[i], "in %d", i)
	}
	assert.Equal(t, []float64{0, 3, 1, 0}, out)
	assert.Equal(t, []float64{1, 0, 1, 2}, in)
}

// TestGraph_AdjacencyDirected checks directed matrices and rejected modes.
func TestGraph_AdjacencyDirected(t *testing.T) {
	g, err := vg.New(visibility.Natural(), visibility.WithDirection(visibility.TopToBottom))
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, false))

	m, err := g.AdjacencyMatrix(vg.TriangleBoth, false, 0)
	require.NoError(t, err)
	assert.Equal(t, "[0, 0, 0, 0]\n[1, 0, 1, 1]\n[0, 0, 0, 1]\n[0, 0, 0, 0]\n", m.String())

	_, err = g.AdjacencyMatrix(vg.TriangleUpper, false, 0)
	assert.ErrorIs(t, err, vg.ErrConfiguration)
	_, err = g.AdjacencyMatrix(vg.TriangleBoth, true, 0)
	assert.ErrorIs(t, err, vg.ErrUnweighted)
	_, err = g.Weights()
	assert.ErrorIs(t, err, vg.ErrUnweighted)
}

// TestParseTriangle checks token parsing.
func TestParseTriangle(t *testing.T) {
	for _, tr := range []vg.Triangle{vg.TriangleBoth, vg.TriangleUpper, vg.TriangleLower} {
		got, err := vg.ParseTriangle(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	}
	_, err := vg.ParseTriangle("diagonal")
	assert.ErrorIs(t, err, vg.ErrConfiguration)
}

// TestGraph_Summary checks the rendered table.
func TestGraph_Summary(t *testing.T) {
	cfg, err := visibility.NewConfig(visibility.Natural(),
		visibility.WithDirection(visibility.LeftToRight),
		visibility.WithWeight(visibility.Slope),
		visibility.WithMinWeight(-1.2))
	require.NoError(t, err)
	g := vg.FromConfig(cfg, vg.WithTitle("Sample"))
	require.NoError(t, g.Build(sampleTS, nil, false))

	sum, err := g.Summary()
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Vertices)
	assert.Equal(t, 2, sum.Edges, "slopes -2 and -1.5 are filtered out")

	text := sum.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, "Sample", strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		assert.Len(t, line, 48, "line %q", line)
	}
	assert.Contains(t, text, "left_to_right")
	assert.Contains(t, text, "Parametric Max. Weight:")
	assert.True(t, strings.HasSuffix(lines[5], "-1.2"))
	assert.True(t, strings.HasSuffix(lines[6], "--"))
}

// TestGraph_Logger checks the debug build record.
func TestGraph_Logger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg, err := visibility.NewConfig(visibility.Circular(1))
	require.NoError(t, err)
	g := vg.FromConfig(cfg, vg.WithLogger(zap.New(core)), vg.WithLogger(nil))

	require.NoError(t, g.Build(sampleTS, nil, false))
	entries := logs.FilterMessage("visibility graph built").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "circular", fields["family"])
	assert.Equal(t, int64(4), fields["vertices"])

	require.Error(t, g.Build(sampleTS, []float64{1}, false))
	assert.Equal(t, 1, logs.FilterMessage("series rejected").Len())
}

// TestGraph_ConcurrentReaders exercises views from many goroutines.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g, err := vg.New(visibility.Natural())
	require.NoError(t, err)
	require.NoError(t, g.Build(sampleTS, nil, false))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := g.Degrees()
			assert.NoError(t, err)
			assert.Equal(t, []int{1, 3, 2, 2}, d)
			_, _, err = g.DegreeCounts()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
