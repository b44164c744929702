package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInputFormat indicates a malformed series file.
var ErrInputFormat = errors.New("malformed series file")

// readSeriesFile opens path and parses it with parseSeries.
func readSeriesFile(path string) (ys, xs []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "input file %s", path)
	}
	defer f.Close()

	return parseSeries(f)
}

// parseSeries reads one value per line ("y") or two ("x y"). Blank lines and
// lines starting with '#' are skipped. All data lines must have the same
// number of fields; xs is nil for single-column input.
func parseSeries(r io.Reader) (ys, xs []float64, err error) {
	sc := bufio.NewScanner(r)
	cols, line := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '\t' || r == ',' })
		if len(fields) < 1 || len(fields) > 2 {
			return nil, nil, errors.Wrapf(ErrInputFormat, "line %d: want 1 or 2 columns, got %d", line, len(fields))
		}
		if cols == 0 {
			cols = len(fields)
		} else if cols != len(fields) {
			return nil, nil, errors.Wrapf(ErrInputFormat, "line %d: mixed 1- and 2-column rows", line)
		}

		vals := make([]float64, len(fields))
		for i, s := range fields {
			v, perr := strconv.ParseFloat(s, 64)
			if perr != nil {
				return nil, nil, errors.Wrapf(ErrInputFormat, "line %d: %q is not a number", line, s)
			}
			vals[i] = v
		}
		if cols == 2 {
			xs = append(xs, vals[0])
		}
		ys = append(ys, vals[cols-1])
	}
	if err := sc.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read series")
	}

	return ys, xs, nil
}
