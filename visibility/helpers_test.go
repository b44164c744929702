package visibility_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/visgraph/visibility"
	"github.com/stretchr/testify/require"
)

// sampleTS is the canonical four-point series used across tests.
var sampleTS = []float64{3.0, 4.0, 2.0, 1.0}

// sampleTS2 exercises ties between near-equal heights and negative values.
var sampleTS2 = []float64{0.25, 0.15, 1.50, -0.10, -0.30, 0.0, 0.20, 1.20, 1.85, -0.35}

// mustBuild builds ys (default positions) with the given family and options.
func mustBuild(t testing.TB, ys []float64, family visibility.Family, opts ...visibility.Option) *visibility.BuildResult {
	t.Helper()
	s, err := visibility.NewSeries(ys, nil)
	require.NoError(t, err)
	cfg, err := visibility.NewConfig(family, opts...)
	require.NoError(t, err)
	res, err := visibility.Build(s, cfg, false)
	require.NoError(t, err)

	return res
}

// pairs returns the oriented (source, target) pairs of res.
func pairs(res *visibility.BuildResult) [][2]int {
	out := make([][2]int, len(res.Edges))
	for i, e := range res.Edges {
		out[i] = [2]int{e.Source, e.Target}
	}

	return out
}

// unorderedPairs returns the (min, max) pairs of res, sorted.
func unorderedPairs(res *visibility.BuildResult) [][2]int {
	out := make([][2]int, len(res.Edges))
	for i, e := range res.Edges {
		a, b := e.Source, e.Target
		if a > b {
			a, b = b, a
		}
		out[i] = [2]int{a, b}
	}
	sortPairs(out)

	return out
}

// weights returns the weights of res in edge order.
func weights(res *visibility.BuildResult) []float64 {
	out := make([]float64, len(res.Edges))
	for i, e := range res.Edges {
		out[i] = e.Weight
	}

	return out
}

func sortPairs(ps [][2]int) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i][0] != ps[j][0] {
			return ps[i][0] < ps[j][0]
		}
		return ps[i][1] < ps[j][1]
	})
}

// bruteForce tests every pair against every intervening sample. O(n³).
func bruteForce(xs, ys []float64, family visibility.Family, m int) [][2]int {
	obstructs := func(a, b, c visibility.Point) bool {
		switch family.Kind() {
		case visibility.FamilyHorizontal:
			return visibility.HorizontalObstructs(a, b, c)
		case visibility.FamilyCircular:
			return visibility.CircularObstructs(a, b, c, family.Alpha())
		default:
			return visibility.NaturalObstructs(a, b, c)
		}
	}

	var out [][2]int
	for i := 0; i < len(ys); i++ {
		for j := i + 1; j < len(ys); j++ {
			pen := 0
			for k := i + 1; k < j; k++ {
				if obstructs(visibility.Point{X: xs[i], Y: ys[i]}, visibility.Point{X: xs[j], Y: ys[j]}, visibility.Point{X: xs[k], Y: ys[k]}) {
					pen++
				}
			}
			if pen <= m {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// randomSeries draws n samples; integer-valued series produce many ties.
func randomSeries(rng *rand.Rand, n int, integers bool) []float64 {
	ys := make([]float64, n)
	for i := range ys {
		if integers {
			ys[i] = float64(rng.Intn(5))
		} else {
			ys[i] = rng.NormFloat64()
		}
	}

	return ys
}

// randomPositions draws strictly increasing positions with uneven gaps.
func randomPositions(rng *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	x := 0.0
	for i := range xs {
		x += 0.1 + rng.Float64()*3
		xs[i] = x
	}

	return xs
}

// defaultPositions returns 0..n-1.
func defaultPositions(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	return xs
}
