package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/visgraph/vg"
)

var buildFlagKeys = map[string]string{
	"type":             "graph.type",
	"alpha":            "graph.alpha",
	"directed":         "graph.directed",
	"weighted":         "graph.weighted",
	"penetrable-limit": "graph.penetrable_limit",
	"dual-perspective": "graph.dual_perspective",
	"concurrent":       "graph.concurrent",
	"mode":             "output.mode",
	"format":           "output.format",
}

func newBuildCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Build the visibility graph of a series file",
		Long: `Build reads a text file with one value per line, or "x y" per line for
explicit positions, and writes the chosen view of its visibility graph.

Modes:
  el  edge list: "source target [weight]"
  ds  degree sequence, one degree per node
  dd  degree distribution: "k p(k)"
  dc  degree counts: "k n(k)"
  am  adjacency matrix (weights when the graph is weighted)
  ns  node strengths: sum of outgoing edge weights per node`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, args[0], outPath)
		},
	}

	f := cmd.Flags()
	f.StringP("type", "t", "natural", "Graph type: natural, horizontal, circular")
	f.Float64("alpha", 1.0, "Arc parameter for --type circular")
	f.StringP("directed", "d", "", "Direction: left_to_right, top_to_bottom")
	f.StringP("weighted", "w", "", "Edge weight kind, e.g. distance, slope, abs_angle")
	f.Float64("min-weight", 0, "Drop edges with weight below this value")
	f.Float64("max-weight", 0, "Drop edges with weight above this value")
	f.IntP("penetrable-limit", "p", 0, "Obstructing samples tolerated per edge")
	f.Bool("dual-perspective", false, "Union with the graph of the reflected series")
	f.Bool("concurrent", false, "Run dual-perspective passes concurrently")
	f.StringP("mode", "m", "el", "Output mode: el, ds, dd, dc, am")
	f.StringP("format", "f", "text", "Output format: text, json, yaml")
	f.StringVarP(&outPath, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, input, outPath string) error {
	if err := a.bind(cmd.Flags(), buildFlagKeys); err != nil {
		return err
	}
	for name, key := range map[string]string{"min-weight": "graph.min_weight", "max-weight": "graph.max_weight"} {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetFloat64(name)
			a.v.Set(key, v)
		}
	}

	cfg, err := a.load()
	if err != nil {
		return err
	}
	vc, err := cfg.Graph.Visibility()
	if err != nil {
		return err
	}
	mode, err := parseMode(cfg.Output.Mode)
	if err != nil {
		return err
	}
	format, err := parseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	ys, xs, err := readSeriesFile(input)
	if err != nil {
		return err
	}
	a.log.Info("series loaded", zap.String("input", input), zap.Int("len", len(ys)))

	g := vg.FromConfig(vc, vg.WithLogger(a.log))
	onlyDegrees := mode.degreesOnly() && !vc.DualPerspective()
	if err := g.Build(ys, xs, onlyDegrees); err != nil {
		return errors.Wrapf(err, "build %s", input)
	}

	if outPath == "" {
		return render(cmd.OutOrStdout(), g, mode, format)
	}
	if err := writeFile(outPath, func(w io.Writer) error { return render(w, g, mode, format) }); err != nil {
		return err
	}
	s, err := g.Summary()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to file: %s\n", mode.description(), outPath)

	return nil
}

// writeFile creates path (its directory must exist) and fills it with fill.
func writeFile(path string, fill func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return errors.Wrapf(err, "output folder for %s", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "close output")
}
