// SPDX-License-Identifier: MIT
// Package: visgraph/vg
//
// options.go — facade options.

package vg

import (
	"go.uber.org/zap"
)

// GraphOption customizes a Graph beyond its visibility configuration.
type GraphOption func(*Graph)

// WithLogger attaches a logger; Build reports timings and sizes at debug
// level. A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithTitle sets the title printed by Summary.
func WithTitle(title string) GraphOption {
	return func(g *Graph) { g.title = title }
}
