package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/visgraph/vg"
)

// outputMode selects the graph view written by build.
type outputMode string

const (
	modeEdgeList     outputMode = "el"
	modeDegreeSeq    outputMode = "ds"
	modeDegreeDist   outputMode = "dd"
	modeDegreeCounts outputMode = "dc"
	modeAdjacency    outputMode = "am"
	modeStrengths    outputMode = "ns"
)

var modeDescriptions = map[outputMode]string{
	modeEdgeList:     "edge list",
	modeDegreeSeq:    "degree sequence",
	modeDegreeDist:   "degree distribution",
	modeDegreeCounts: "degree counts",
	modeAdjacency:    "adjacency matrix",
	modeStrengths:    "node strengths",
}

func parseMode(s string) (outputMode, error) {
	m := outputMode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeDescriptions[m]; !ok {
		return "", errors.WithHint(errors.Newf("unknown output mode %q", s), "use one of: el, ds, dd, dc, am, ns")
	}

	return m, nil
}

func (m outputMode) description() string { return modeDescriptions[m] }

// degreesOnly reports whether the view needs degrees but no edge list.
func (m outputMode) degreesOnly() bool {
	return m == modeDegreeSeq || m == modeDegreeDist || m == modeDegreeCounts
}

// outputFormat is the encoding of the selected view.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", errors.WithHint(errors.Newf("unknown output format %q", s), "use one of: text, json, yaml")
	}
}

type edgeRecord struct {
	Source int      `json:"source" yaml:"source"`
	Target int      `json:"target" yaml:"target"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

type degreeProb struct {
	K int     `json:"k" yaml:"k"`
	P float64 `json:"p" yaml:"p"`
}

type degreeCount struct {
	K     int `json:"k" yaml:"k"`
	Count int `json:"count" yaml:"count"`
}

// textRow is implemented by records with a line-oriented text form.
type textRow interface{ text() string }

func (e edgeRecord) text() string {
	if e.Weight == nil {
		return fmt.Sprintf("%d %d", e.Source, e.Target)
	}

	return fmt.Sprintf("%d %d %s", e.Source, e.Target, formatFloat(*e.Weight))
}

func (d degreeProb) text() string  { return fmt.Sprintf("%d %s", d.K, formatFloat(d.P)) }
func (d degreeCount) text() string { return fmt.Sprintf("%d %d", d.K, d.Count) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// render writes the view selected by mode in the given format.
func render(w io.Writer, g *vg.Graph, mode outputMode, format outputFormat) error {
	var (
		rows    []textRow
		payload any
		err     error
	)
	switch mode {
	case modeEdgeList:
		rows, payload, err = edgeView(g)
	case modeDegreeSeq:
		rows, payload, err = degreeSeqView(g)
	case modeDegreeDist:
		rows, payload, err = degreeDistView(g)
	case modeDegreeCounts:
		rows, payload, err = degreeCountsView(g)
	case modeAdjacency:
		return renderAdjacency(w, g, format)
	case modeStrengths:
		rows, payload, err = strengthView(g)
	}
	if err != nil {
		return err
	}

	return encode(w, format, rows, payload)
}

func edgeView(g *vg.Graph) ([]textRow, any, error) {
	edges, err := g.Edges()
	if err != nil {
		return nil, nil, err
	}
	recs := make([]edgeRecord, len(edges))
	rows := make([]textRow, len(edges))
	for i, e := range edges {
		recs[i] = edgeRecord{Source: e.Source, Target: e.Target}
		if g.IsWeighted() {
			wgt := e.Weight
			recs[i].Weight = &wgt
		}
		rows[i] = recs[i]
	}

	return rows, recs, nil
}

type intRow int

func (d intRow) text() string { return strconv.Itoa(int(d)) }

func degreeSeqView(g *vg.Graph) ([]textRow, any, error) {
	ds, err := g.Degrees()
	if err != nil {
		return nil, nil, err
	}
	rows := make([]textRow, len(ds))
	for i, d := range ds {
		rows[i] = intRow(d)
	}

	return rows, ds, nil
}

type floatRow float64

func (v floatRow) text() string { return formatFloat(float64(v)) }

// strengthView lists out-strengths; undirected graphs have in == out.
func strengthView(g *vg.Graph) ([]textRow, any, error) {
	out, _, err := g.Strengths()
	if err != nil {
		return nil, nil, err
	}
	rows := make([]textRow, len(out))
	for i, v := range out {
		rows[i] = floatRow(v)
	}

	return rows, out, nil
}

func degreeDistView(g *vg.Graph) ([]textRow, any, error) {
	ks, ps, err := g.DegreeDistribution()
	if err != nil {
		return nil, nil, err
	}
	recs := make([]degreeProb, len(ks))
	rows := make([]textRow, len(ks))
	for i := range ks {
		recs[i] = degreeProb{K: ks[i], P: ps[i]}
		rows[i] = recs[i]
	}

	return rows, recs, nil
}

func degreeCountsView(g *vg.Graph) ([]textRow, any, error) {
	ks, ns, err := g.DegreeCounts()
	if err != nil {
		return nil, nil, err
	}
	recs := make([]degreeCount, len(ks))
	rows := make([]textRow, len(ks))
	for i := range ks {
		recs[i] = degreeCount{K: ks[i], Count: ns[i]}
		rows[i] = recs[i]
	}

	return rows, recs, nil
}

func renderAdjacency(w io.Writer, g *vg.Graph, format outputFormat) error {
	m, err := g.AdjacencyMatrix(vg.TriangleBoth, g.IsWeighted(), 0)
	if err != nil {
		return err
	}
	if format == formatText {
		_, err = io.WriteString(w, m.String())
		return errors.Wrap(err, "write output")
	}
	rows := make([][]float64, m.Rows())
	for i := range rows {
		if rows[i], err = m.Row(i); err != nil {
			return err
		}
	}

	return encode(w, format, nil, rows)
}

func encode(w io.Writer, format outputFormat, rows []textRow, payload any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(payload), "encode json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, r.text()); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		return nil
	}
}
