// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// kinds.go — name-based dispatch for command-line use.

package series

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownKind indicates an unsupported generator name.
var ErrUnknownKind = errors.New("series: unknown generator kind")

// ErrInvalidParams indicates that a generator rejected its parameters.
var ErrInvalidParams = errors.New("series: invalid generator parameters")

// Generator is the common signature of all generators.
type Generator func(n int, seed int64, opts ...Option) []float64

var generators = map[string]Generator{
	"pulse":    Pulse,
	"chirp":    Chirp,
	"noise":    WhiteNoise,
	"brownian": BrownianMotion,
	"linear":   Linear,
}

// Kinds lists the generator names accepted by Generate, sorted.
func Kinds() []string {
	out := make([]string, 0, len(generators))
	for k := range generators {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Generate runs the generator registered under kind.
func Generate(kind string, n int, seed int64, opts ...Option) ([]float64, error) {
	gen, ok := generators[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, errors.WithHint(errors.Wrapf(ErrUnknownKind, "kind %q", kind),
			"use one of: "+strings.Join(Kinds(), ", "))
	}
	out := gen(n, seed, opts...)
	if out == nil {
		return nil, errors.Wrapf(ErrInvalidParams, "%s with n=%d", kind, n)
	}

	return out, nil
}
