package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/visgraph/series"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n, seed                int64
		amp, noise, trend, off float64
		freq, duty, f0, f1     float64
		triangular             bool
		outPath                string
	)

	cmd := &cobra.Command{
		Use:       "generate <kind>",
		Short:     "Write a synthetic series, one value per line",
		Long:      "Generate writes a deterministic synthetic series. Kinds: " + strings.Join(series.Kinds(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: series.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []series.Option{
				series.WithAmplitude(amp),
				series.WithNoise(noise),
				series.WithTrend(trend),
				series.WithOffset(off),
				series.WithFrequency(freq),
				series.WithDuty(duty),
				series.WithChirpRange(f0, f1),
			}
			if triangular {
				opts = append(opts, series.WithTriangular())
			}
			ys, err := series.Generate(args[0], int(n), seed, opts...)
			if err != nil {
				return err
			}
			a.log.Info("series generated", zap.String("kind", args[0]), zap.Int("len", len(ys)), zap.Int64("seed", seed))

			write := func(w io.Writer) error {
				rows := make([]textRow, len(ys))
				for i, y := range ys {
					rows[i] = floatRow(y)
				}
				return encode(w, formatText, rows, nil)
			}
			if outPath == "" {
				return write(cmd.OutOrStdout())
			}

			return writeFile(outPath, write)
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&n, "length", "n", 256, "Number of samples")
	f.Int64Var(&seed, "seed", 1, "Random seed")
	f.Float64Var(&amp, "amplitude", 1, "Waveform amplitude")
	f.Float64Var(&noise, "noise", 0, "Gaussian noise sigma")
	f.Float64Var(&trend, "trend", 0, "Linear trend per sample")
	f.Float64Var(&off, "offset", 0, "Constant offset")
	f.Float64Var(&freq, "frequency", 0.125, "Pulse frequency (cycles/sample)")
	f.Float64Var(&duty, "duty", 0.5, "Pulse duty cycle")
	f.BoolVar(&triangular, "triangular", false, "Triangular pulse shape")
	f.Float64Var(&f0, "f0", 0.02, "Chirp start frequency")
	f.Float64Var(&f1, "f1", 0.25, "Chirp end frequency")
	f.StringVarP(&outPath, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}
