package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// writeInput stores body in a temporary series file.
func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "series.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestBuild_TextModes(t *testing.T) {
	in := writeInput(t, "1\n3\n2\n")
	tests := []struct {
		mode string
		want string
	}{
		{"el", "0 1\n1 2\n"},
		{"ds", "1\n2\n1\n"},
		{"dc", "1 2\n2 1\n"},
		{"dd", "1 0.6666666666666666\n2 0.3333333333333333\n"},
		{"am", "[0, 1, 0]\n[1, 0, 1]\n[0, 1, 0]\n"},
		{"ns", "1\n2\n1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out, err := execute(t, "build", in, "--mode", tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBuild_WeightedJSON(t *testing.T) {
	in := writeInput(t, "# header\n0 3\n1 1\n\n2 2\n")
	out, err := execute(t, "build", in, "-w", "h_distance", "-f", "json")
	require.NoError(t, err)

	var recs []edgeRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 3)
	for _, r := range recs {
		require.NotNil(t, r.Weight)
		assert.Equal(t, float64(r.Target-r.Source), *r.Weight)
	}
}

func TestBuild_WeightedStrengths(t *testing.T) {
	in := writeInput(t, "1\n3\n2\n")
	out, err := execute(t, "build", in, "-m", "ns", "-w", "abs_v_distance")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n1\n", out)
}

func TestBuild_YAMLDegreeCounts(t *testing.T) {
	in := writeInput(t, "3\n1\n2\n")
	out, err := execute(t, "build", in, "-m", "dc", "-f", "yaml")
	require.NoError(t, err)

	var recs []degreeCount
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	assert.Equal(t, []degreeCount{{K: 2, Count: 3}}, recs)
}

func TestBuild_MinWeightFlag(t *testing.T) {
	in := writeInput(t, "3\n1\n2\n")
	out, err := execute(t, "build", in, "-w", "h_distance", "--min-weight", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "0 2 2\n", out)
}

func TestBuild_ConfigFileAndEnv(t *testing.T) {
	in := writeInput(t, "1\n3\n2\n")
	cfgPath := filepath.Join(t.TempDir(), "visgraph.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[graph]\ntype = \"horizontal\"\n[output]\nmode = \"ds\"\n"), 0o600))

	out, err := execute(t, "--config", cfgPath, "build", in)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n1\n", out)

	t.Setenv("VISGRAPH_OUTPUT_MODE", "dc")
	out, err = execute(t, "--config", cfgPath, "build", in)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n2 1\n", out)

	out, err = execute(t, "--config", cfgPath, "build", in, "-m", "el")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 2\n", out)
}

func TestBuild_OutputFile(t *testing.T) {
	in := writeInput(t, "1\n3\n2\n")
	dst := filepath.Join(t.TempDir(), "edges.txt")
	out, err := execute(t, "build", in, "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved edge list to file: "+dst)
	assert.Contains(t, out, "Visibility Graph")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 2\n", string(data))

	_, err = execute(t, "build", in, "-o", filepath.Join(t.TempDir(), "missing", "edges.txt"))
	require.Error(t, err)
}

func TestBuild_DualPerspectiveDegrees(t *testing.T) {
	in := writeInput(t, "1\n3\n2\n")
	out, err := execute(t, "build", in, "--dual-perspective", "-m", "ds")
	require.NoError(t, err)
	assert.Equal(t, "2\n2\n2\n", out)
}

func TestBuild_Errors(t *testing.T) {
	in := writeInput(t, "1\n3\n2\n")
	tests := map[string][]string{
		"mode":      {"build", in, "-m", "xx"},
		"format":    {"build", in, "-f", "xml"},
		"family":    {"build", in, "-t", "diagonal"},
		"missing":   {"build", filepath.Join(t.TempDir(), "none.txt")},
		"malformed": {"build", writeInput(t, "1\nabc\n")},
		"mixed":     {"build", writeInput(t, "1\n2 3\n")},
		"xs":        {"build", writeInput(t, "0 1\n0 2\n")},
		"args":      {"build"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
		})
	}
}

func TestParseSeries(t *testing.T) {
	ys, xs, err := parseSeries(strings.NewReader("0.5, 1\n1.5\t-2\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2}, ys)
	assert.Equal(t, []float64{0.5, 1.5}, xs)

	ys, xs, err = parseSeries(strings.NewReader("4\n5\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, ys)
	assert.Nil(t, xs)

	_, _, err = parseSeries(strings.NewReader("1 2 3\n"))
	assert.ErrorIs(t, err, ErrInputFormat)
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "linear", "-n", "3", "--offset", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5\n2.5\n3.5\n", out)

	dst := filepath.Join(t.TempDir(), "walk.txt")
	_, err = execute(t, "generate", "brownian", "-n", "16", "--seed", "9", "-o", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 16)

	out, err = execute(t, "build", dst, "-m", "ds")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 16)

	_, err = execute(t, "generate", "sawtooth")
	require.Error(t, err)
	_, err = execute(t, "generate", "pulse", "-n", "0")
	require.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visgraph.toml")
	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)

	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	_, err = execute(t, "config", "init", path, "--force")
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	out, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Equal(t, string(written), out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info.Version)
}
