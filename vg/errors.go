// SPDX-License-Identifier: MIT
// Package: visgraph/vg
//
// errors.go — facade sentinels. ErrConfiguration, ErrInputShape and
// ErrNotBuilt are the visibility sentinels re-exported, so errors.Is works
// against either package.

package vg

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/visgraph/visibility"
)

var (
	// ErrConfiguration — invalid option combination (see visibility.ErrConfiguration).
	ErrConfiguration = visibility.ErrConfiguration

	// ErrInputShape — malformed series (see visibility.ErrInputShape).
	ErrInputShape = visibility.ErrInputShape

	// ErrNotBuilt — a view was requested before a successful Build.
	ErrNotBuilt = visibility.ErrNotBuilt

	// ErrNoEdges — an edge-based view was requested from a degree-only build.
	ErrNoEdges = errors.New("vg: edges not available for a degree-only build")

	// ErrUnweighted — a weight-based view was requested from an unweighted graph.
	ErrUnweighted = errors.New("vg: graph is unweighted")

	// ErrEmptyGraph — a matrix view was requested for a graph without vertices.
	ErrEmptyGraph = errors.New("vg: graph has no vertices")
)
