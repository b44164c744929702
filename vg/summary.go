// SPDX-License-Identifier: MIT
// Package: visgraph/vg
//
// summary.go — fixed-width text summary of a built graph.

package vg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/visgraph/visibility"
)

// summaryWidth is the line width of the rendered summary.
const summaryWidth = 48

// Summary describes the configuration and size of a built graph.
type Summary struct {
	Title           string
	Family          string
	Direction       string
	Weight          string
	MinWeight       *float64
	MaxWeight       *float64
	PenetrableLimit int
	DualPerspective bool
	SeriesLength    int
	Vertices        int
	Edges           int
}

// Summary collects the graph description. Requires a successful Build.
func (g *Graph) Summary() (Summary, error) {
	s, res, err := g.state()
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Title:           g.title,
		Family:          g.cfg.Family().String(),
		Direction:       g.cfg.Direction().String(),
		Weight:          g.cfg.Weight().String(),
		PenetrableLimit: g.cfg.PenetrableLimit(),
		DualPerspective: g.cfg.DualPerspective(),
		SeriesLength:    s.Len(),
		Vertices:        res.NumVertices(),
		Edges:           res.EdgeCount(),
	}
	if g.cfg.Family().Kind() == visibility.FamilyCircular {
		sum.Family = fmt.Sprintf("circular (alpha=%g)", g.cfg.Family().Alpha())
	}
	if v, ok := g.cfg.MinWeight(); ok {
		sum.MinWeight = &v
	}
	if v, ok := g.cfg.MaxWeight(); ok {
		sum.MaxWeight = &v
	}

	return sum, nil
}

// String renders the summary as a fixed-width table.
func (s Summary) String() string {
	var sb strings.Builder
	pad := (summaryWidth - len(s.Title)) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", pad) + s.Title + "\n")
	sb.WriteString(strings.Repeat("=", summaryWidth) + "\n")

	bound := func(v *float64) string {
		if v == nil {
			return "--"
		}
		return strconv.FormatFloat(*v, 'g', -1, 64)
	}
	rows := [][2]string{
		{"General Type:", s.Family},
		{"Directed:", s.Direction},
		{"Weighted:", s.Weight},
		{"Parametric Min. Weight:", bound(s.MinWeight)},
		{"Parametric Max. Weight:", bound(s.MaxWeight)},
		{"Penetrable Limit:", strconv.Itoa(s.PenetrableLimit)},
		{"Dual Perspective:", strconv.FormatBool(s.DualPerspective)},
	}
	for _, r := range rows {
		keyValueLine(&sb, r[0], r[1])
	}
	sb.WriteString(strings.Repeat("-", summaryWidth) + "\n")
	keyValueLine(&sb, "Time Series Length:", strconv.Itoa(s.SeriesLength))
	keyValueLine(&sb, "No. Vertices:", strconv.Itoa(s.Vertices))
	keyValueLine(&sb, "No. Edges:", strconv.Itoa(s.Edges))
	sb.WriteString(strings.Repeat("=", summaryWidth) + "\n")

	return sb.String()
}

// keyValueLine writes key left-aligned and value right-aligned.
func keyValueLine(sb *strings.Builder, key, value string) {
	gap := summaryWidth - len(key) - len(value)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(key + strings.Repeat(" ", gap) + value + "\n")
}
